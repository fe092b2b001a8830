package arena_test

import (
	"testing"

	"github.com/plus3/arena/arena"
)

func BenchmarkInsert(b *testing.B) {
	a := arena.New[int]()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		a.Insert(i)
	}
}

func BenchmarkInsertWithReuse(b *testing.B) {
	a := arena.New[int]()
	id := a.Insert(0)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		a.Remove(id)
		id = a.Insert(i)
	}
}

func BenchmarkRemove(b *testing.B) {
	a := arena.New[int]()
	ids := make([]arena.Id, b.N)
	for i := 0; i < b.N; i++ {
		ids[i] = a.Insert(i)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		a.Remove(ids[i])
	}
}

func BenchmarkGet(b *testing.B) {
	a := arena.New[int]()
	id := a.Insert(42)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = a.Get(id)
	}
}

func BenchmarkContains(b *testing.B) {
	a := arena.New[int]()
	id := a.Insert(42)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = a.Contains(id)
	}
}

func BenchmarkIterDense(b *testing.B) {
	a := arena.New[int]()
	for i := 0; i < 1024; i++ {
		a.Insert(i)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		it := a.Iter()
		for _, ok := it.Next(); ok; _, ok = it.Next() {
		}
	}
}

func BenchmarkIterSparse(b *testing.B) {
	a := arena.New[int]()
	ids := make([]arena.Id, 1024)
	for i := range ids {
		ids[i] = a.Insert(i)
	}
	for i, id := range ids {
		if i%8 != 0 {
			a.Remove(id)
		}
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		it := a.Iter()
		for _, ok := it.Next(); ok; _, ok = it.Next() {
		}
	}
}

func BenchmarkValues(b *testing.B) {
	a := arena.New[int]()
	for i := 0; i < 1024; i++ {
		a.Insert(i)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		for range a.Values() {
		}
	}
}
