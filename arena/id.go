package arena

import "fmt"

// Id identifies one occupant of one arena slot. It encodes the slot's
// generation (upper 32 bits) and the slot index (lower 32 bits).
//
// An Id stays comparable and hashable like any integer, so it can be used as
// a map key, stored in sets, and copied freely. It carries no reference to
// the arena that issued it: validity must always be checked against the
// arena's current state with Contains, Get, or Remove.
type Id uint64

// NewId creates an Id from a slot index and a generation counter.
func NewId(index uint32, generation uint32) Id {
	return Id(uint64(generation)<<32 | uint64(index))
}

// Index extracts the slot index from the Id.
func (i Id) Index() uint32 {
	return uint32(i & 0xFFFFFFFF)
}

// Generation extracts the generation counter from the Id.
func (i Id) Generation() uint32 {
	return uint32(i >> 32)
}

func (i Id) String() string {
	return fmt.Sprintf("Id(%d, %d)", i.Index(), i.Generation())
}

// Handle is the capability contract for domain handle types. Any defined
// type over Id's representation qualifies:
//
//	type NodeId arena.Id
//	type EdgeId arena.Id
//
// NodeId and EdgeId are distinct types the compiler keeps apart, while the
// package-level generic operations accept either and convert to the raw Id
// for free. The round trip H(id) -> Id(h) is lossless.
type Handle interface {
	~uint64
}
