package arena

// The functions below are the typed-handle surface of the arena. They mirror
// the Arena methods but accept and return any Handle type, so domain code
// can keep distinct handle kinds (node ids, edge ids, ...) that the compiler
// refuses to mix, all backed by the same mechanism. The conversion between a
// handle kind and the raw Id is a relabeling of the same integer; nothing is
// computed at runtime.

// Insert stores a value and returns its handle as the given kind.
//
//	node := arena.Insert[NodeId](nodes, Node{Name: "root"})
func Insert[H Handle, T any](a *Arena[T], v T) H {
	return H(a.Insert(v))
}

// Remove deletes the value the handle resolves to and returns it. Returns
// the zero value and false when the handle is stale or out of bounds.
func Remove[H Handle, T any](a *Arena[T], h H) (T, bool) {
	return a.Remove(Id(h))
}

// Contains reports whether the handle currently resolves to a value.
func Contains[H Handle, T any](a *Arena[T], h H) bool {
	return a.Contains(Id(h))
}

// Get returns a pointer to the value the handle resolves to, or nil when
// the handle is stale or out of bounds.
func Get[H Handle, T any](a *Arena[T], h H) *T {
	return a.Get(Id(h))
}

// MustGet is the indexed-access form of Get. Panics when the handle does
// not resolve.
func MustGet[H Handle, T any](a *Arena[T], h H) *T {
	return a.MustGet(Id(h))
}
