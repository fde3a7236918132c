package fastvector

// Option configures a Vector at construction time.
type Option[T any] func(*Vector[T])

// WithReleaseFunc registers a hook that observes every element leaving the
// vector: the popped element, the victim of an erase, and each remaining
// element during Clear. The hook fires exactly once per departing element;
// internal moves (gap closing, overflow-to-inline migration) do not fire it.
//
// Release order is part of the container contract:
//   - repeated Pop releases in reverse append order,
//   - Clear releases overflow elements front to back, then live inline
//     slots front to back,
//   - Erase releases only the removed element.
//
// The hook runs synchronously on the calling goroutine and must not mutate
// the vector it was registered on. Overwriting an element through Set or Ref
// replaces its contents in place and is not a release.
//
// Example:
//
//	pool := newBufferPool()
//	v := fastvector.New(8, fastvector.WithReleaseFunc(func(b *buffer) {
//	    pool.Put(b)
//	}))
func WithReleaseFunc[T any](fn func(T)) Option[T] {
	return func(v *Vector[T]) {
		v.release = fn
	}
}
