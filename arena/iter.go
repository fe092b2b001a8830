package arena

import "iter"

// Iter walks the arena's present values in slot order, skipping free slots.
// It is double-ended: Next consumes from the front, NextBack from the back,
// and the two ends meet in the middle. Once exhausted it stays exhausted.
//
// The pointers it yields refer into arena storage and are valid for reads
// and writes; do not Insert, Remove, or Clear while holding the iterator.
type Iter[T any] struct {
	slots    []slot[T]
	length   uint32
	returned uint32
}

// Iter returns an iterator over pointers to every present value, in
// ascending slot-index order.
func (a *Arena[T]) Iter() *Iter[T] {
	return &Iter[T]{
		slots:  a.slots,
		length: uint32(a.Len()),
	}
}

// Len returns the exact number of values remaining to be yielded.
func (it *Iter[T]) Len() int {
	return int(it.length - it.returned)
}

// Next yields the next value from the front, or false when the iterator is
// exhausted.
func (it *Iter[T]) Next() (*T, bool) {
	for len(it.slots) > 0 {
		s := &it.slots[0]
		it.slots = it.slots[1:]
		if s.present {
			it.returned++
			return &s.value, true
		}
	}
	return nil, false
}

// NextBack yields the next value from the back, or false when the iterator
// is exhausted.
func (it *Iter[T]) NextBack() (*T, bool) {
	for len(it.slots) > 0 {
		s := &it.slots[len(it.slots)-1]
		it.slots = it.slots[:len(it.slots)-1]
		if s.present {
			it.returned++
			return &s.value, true
		}
	}
	return nil, false
}

// IntoIter consumes the arena's storage and yields the values it owned. Same
// shape as Iter but the arena is left empty and the values come out by
// value, not behind pointers.
type IntoIter[T any] struct {
	slots    []slot[T]
	length   uint32
	returned uint32
}

// IntoIter detaches the arena's storage and returns a consuming iterator
// over the values it held. The arena is empty afterwards, as if Clear had
// been called, and can be reused.
func (a *Arena[T]) IntoIter() *IntoIter[T] {
	it := &IntoIter[T]{
		slots:  a.slots,
		length: uint32(a.Len()),
	}
	a.slots = nil
	a.firstFree = 0
	a.freeCount = 0
	return it
}

// Len returns the exact number of values remaining to be yielded.
func (it *IntoIter[T]) Len() int {
	return int(it.length - it.returned)
}

// Next yields the next owned value from the front, or false when the
// iterator is exhausted.
func (it *IntoIter[T]) Next() (T, bool) {
	for len(it.slots) > 0 {
		s := &it.slots[0]
		it.slots = it.slots[1:]
		if s.present {
			it.returned++
			return s.value, true
		}
	}
	var zero T
	return zero, false
}

// NextBack yields the next owned value from the back, or false when the
// iterator is exhausted.
func (it *IntoIter[T]) NextBack() (T, bool) {
	for len(it.slots) > 0 {
		s := &it.slots[len(it.slots)-1]
		it.slots = it.slots[:len(it.slots)-1]
		if s.present {
			it.returned++
			return s.value, true
		}
	}
	var zero T
	return zero, false
}

// All returns an iterator over (Id, pointer) pairs for every present value,
// in ascending slot-index order. The pointers allow in-place mutation.
func (a *Arena[T]) All() iter.Seq2[Id, *T] {
	return func(yield func(Id, *T) bool) {
		for index := range a.slots {
			s := &a.slots[index]
			if !s.present {
				continue
			}
			if !yield(NewId(uint32(index), s.generation), &s.value) {
				return
			}
		}
	}
}

// Values returns an iterator over copies of every present value, in
// ascending slot-index order.
func (a *Arena[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for index := range a.slots {
			if !a.slots[index].present {
				continue
			}
			if !yield(a.slots[index].value) {
				return
			}
		}
	}
}

// Backward returns an iterator over copies of every present value, in
// descending slot-index order.
func (a *Arena[T]) Backward() iter.Seq[T] {
	return func(yield func(T) bool) {
		for index := len(a.slots) - 1; index >= 0; index-- {
			if !a.slots[index].present {
				continue
			}
			if !yield(a.slots[index].value) {
				return
			}
		}
	}
}
