// Package arena provides a generational slot-based object store: a growable
// container that hands out small copyable Ids for inserted values, with O(1)
// insert, remove, and lookup, and detection of stale Ids whose slot has been
// reused.
//
// Removed slots are threaded into an intra-storage free list and reused by
// later insertions. Every removal bumps the slot's generation counter, so an
// Id issued for a previous occupant of the slot can never resolve again.
// This makes the arena a good backing store for graphs, trees, and other
// structures with cyclic or shared references: nodes hold Ids instead of
// pointers to each other.
//
// The arena has no internal synchronization. Any number of readers may
// overlap, but a mutating operation (Insert, Remove, Clear, Retain, writes
// through iterator pointers) requires exclusive access. Wrap the arena in a
// mutex for cross-goroutine use.
package arena

import (
	"iter"
	"slices"
)

// slot is one storage unit. When present is true, value holds the live
// occupant. When present is false, nextFree links the slot into the free
// list. The generation counter only ever increases, and only on removal.
type slot[T any] struct {
	value      T
	generation uint32
	nextFree   uint32
	present    bool
}

// Arena is a growable container of slots addressed by generation-checked Ids.
// The zero value is an empty arena ready for use.
type Arena[T any] struct {
	slots     []slot[T]
	firstFree uint32
	freeCount uint32
}

// New creates an empty arena.
func New[T any]() *Arena[T] {
	return &Arena[T]{}
}

// NewWithCapacity creates an empty arena with room for n slots before the
// backing storage has to grow.
func NewWithCapacity[T any](n int) *Arena[T] {
	return &Arena[T]{
		slots: make([]slot[T], 0, n),
	}
}

// Collect builds an arena whose slots are exactly the given items in order.
// The returned arena has no free slots; item k is reachable as NewId(k, 0).
func Collect[T any](items []T) *Arena[T] {
	a := NewWithCapacity[T](len(items))
	for _, item := range items {
		a.Insert(item)
	}
	return a
}

// Len returns the number of values currently stored.
func (a *Arena[T]) Len() int {
	return len(a.slots) - int(a.freeCount)
}

// IsEmpty reports whether the arena stores no values.
func (a *Arena[T]) IsEmpty() bool {
	return a.Len() == 0
}

// Cap returns the number of slots the arena can hold before the backing
// storage has to grow.
func (a *Arena[T]) Cap() int {
	return cap(a.slots)
}

// Insert stores a value and returns the Id that resolves to it. The Id stays
// valid until the value is removed. Reuses a free slot when one is
// available, otherwise appends a new slot at generation 0.
func (a *Arena[T]) Insert(v T) Id {
	if a.freeCount > 0 {
		index := a.firstFree
		s := &a.slots[index]
		a.firstFree = s.nextFree
		a.freeCount--

		// The generation was already bumped when this slot was vacated,
		// so the Id minted here can never collide with the previous
		// occupant's.
		s.value = v
		s.present = true
		return NewId(index, s.generation)
	}

	index := uint32(len(a.slots))
	a.slots = append(a.slots, slot[T]{value: v, present: true})
	return NewId(index, 0)
}

// Remove deletes the value the Id resolves to and returns it. Returns the
// zero value and false when the Id is stale or out of bounds, leaving the
// arena untouched.
//
// Each removal increments the slot's 32-bit generation counter, which is
// what invalidates the consumed Id and all copies of it. The counter is
// never reset; after 2^32 removals from a single slot it would wrap and a
// very old Id could resolve again. No guard is in place for that.
func (a *Arena[T]) Remove(id Id) (T, bool) {
	var zero T
	if !a.Contains(id) {
		return zero, false
	}

	s := &a.slots[id.Index()]
	s.generation++

	old := s.value
	s.value = zero
	s.present = false
	s.nextFree = a.firstFree
	a.firstFree = id.Index()
	a.freeCount++

	return old, true
}

// Contains reports whether the Id currently resolves to a value.
func (a *Arena[T]) Contains(id Id) bool {
	index := id.Index()
	if index >= uint32(len(a.slots)) {
		return false
	}
	s := &a.slots[index]
	return s.present && s.generation == id.Generation()
}

// Get returns a pointer to the value the Id resolves to, or nil when the Id
// is stale or out of bounds. The pointer is valid for reads and writes until
// the next operation that mutates the arena.
func (a *Arena[T]) Get(id Id) *T {
	index := id.Index()
	if index >= uint32(len(a.slots)) {
		return nil
	}
	s := &a.slots[index]
	if !s.present || s.generation != id.Generation() {
		return nil
	}
	return &s.value
}

// MustGet is the indexed-access form of Get: the caller asserts the Id is
// known-good. Panics when the Id does not resolve.
func (a *Arena[T]) MustGet(id Id) *T {
	v := a.Get(id)
	if v == nil {
		panic(id.String() + " does not exist in Arena")
	}
	return v
}

// Reserve grows the backing storage so that additional new slots can be
// appended without reallocation, beyond what free-list reuse already
// provides. When the free list alone covers the requested count, no growth
// happens. Existing Ids stay valid; growth never relocates slots from the
// arena's point of view.
func (a *Arena[T]) Reserve(additional int) {
	needed := additional - int(a.freeCount)
	if needed <= 0 {
		return
	}
	a.slots = slices.Grow(a.slots, needed)
}

// Clear drops every stored value and resets the arena to length zero. The
// backing capacity is retained. Ids issued before Clear must be discarded:
// slots restart at generation 0, so an insertion after Clear can mint an Id
// numerically equal to a pre-Clear one.
func (a *Arena[T]) Clear() {
	clear(a.slots)
	a.slots = a.slots[:0]
	a.firstFree = 0
	a.freeCount = 0
}

// Extend inserts every item the iterator yields, discarding the Ids.
func (a *Arena[T]) Extend(items iter.Seq[T]) {
	for item := range items {
		a.Insert(item)
	}
}

// ExtendSlice inserts every item of the slice, discarding the Ids.
func (a *Arena[T]) ExtendSlice(items []T) {
	a.Reserve(len(items))
	for _, item := range items {
		a.Insert(item)
	}
}

// Retain removes every value for which keep returns false. Values are
// visited in slot order; removal goes through the normal path, so vacated
// slots get their generation bumped and join the free list.
func (a *Arena[T]) Retain(keep func(id Id, v *T) bool) {
	for index := range a.slots {
		s := &a.slots[index]
		if !s.present {
			continue
		}
		id := NewId(uint32(index), s.generation)
		if !keep(id, &s.value) {
			a.Remove(id)
		}
	}
}
