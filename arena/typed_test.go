package arena_test

import (
	"testing"

	"github.com/plus3/arena/arena"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Two handle kinds over the same mechanism. The compiler keeps them apart:
// a NodeId cannot be passed where an EdgeId is expected.
type NodeId arena.Id

type EdgeId arena.Id

type node struct {
	Name  string
	Edges []EdgeId
}

type edge struct {
	From, To NodeId
}

func TestTypedInsertGetRemove(t *testing.T) {
	nodes := arena.New[node]()

	id := arena.Insert[NodeId](nodes, node{Name: "root"})

	assert.True(t, arena.Contains(nodes, id))

	got := arena.Get(nodes, id)
	require.NotNil(t, got)
	assert.Equal(t, "root", got.Name)

	removed, ok := arena.Remove(nodes, id)
	assert.True(t, ok)
	assert.Equal(t, "root", removed.Name)
	assert.False(t, arena.Contains(nodes, id))
	assert.Nil(t, arena.Get(nodes, id))
}

func TestTypedRoundTrip(t *testing.T) {
	nodes := arena.New[node]()

	id := nodes.Insert(node{Name: "n"})
	typed := NodeId(id)

	// Converting to a handle kind and back yields the original Id
	assert.Equal(t, id, arena.Id(typed))
	assert.Equal(t, id.Index(), arena.Id(typed).Index())
	assert.Equal(t, id.Generation(), arena.Id(typed).Generation())
}

func TestTypedMustGet(t *testing.T) {
	nodes := arena.New[node]()

	id := arena.Insert[NodeId](nodes, node{Name: "root"})
	assert.Equal(t, "root", arena.MustGet(nodes, id).Name)

	arena.Remove(nodes, id)
	assert.Panics(t, func() {
		arena.MustGet(nodes, id)
	})
}

func TestTypedHandlesAcrossArenas(t *testing.T) {
	nodes := arena.New[node]()
	edges := arena.New[edge]()

	a := arena.Insert[NodeId](nodes, node{Name: "a"})
	b := arena.Insert[NodeId](nodes, node{Name: "b"})
	e := arena.Insert[EdgeId](edges, edge{From: a, To: b})

	arena.Get(nodes, a).Edges = append(arena.Get(nodes, a).Edges, e)

	link := arena.Get(edges, e)
	require.NotNil(t, link)
	assert.Equal(t, "a", arena.Get(nodes, link.From).Name)
	assert.Equal(t, "b", arena.Get(nodes, link.To).Name)

	// Node and edge slots are numbered independently; only the handle
	// kind tells them apart.
	assert.Equal(t, arena.Id(a).Index(), arena.Id(e).Index())
}

func TestTypedStaleAfterReuse(t *testing.T) {
	nodes := arena.New[node]()

	stale := arena.Insert[NodeId](nodes, node{Name: "old"})
	arena.Remove(nodes, stale)

	fresh := arena.Insert[NodeId](nodes, node{Name: "new"})

	assert.Equal(t, arena.Id(stale).Index(), arena.Id(fresh).Index())
	assert.Nil(t, arena.Get(nodes, stale))
	assert.Equal(t, "new", arena.Get(nodes, fresh).Name)
}
