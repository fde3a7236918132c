// Package fastvector provides a generic sequential container with a fixed
// inline region and a growable overflow region.
//
// A Vector stores its first elements in an inline buffer sized at
// construction and spills the rest into an overflow buffer on the heap.
// Short-lived sequences that stay within the inline capacity never touch the
// overflow path, which makes the container a good fit for hot paths that
// build up and tear down small element sets at high frequency. Indexing,
// iteration and mutation address the two regions through a single logical
// index space, so callers never see the seam.
//
// # Quick Start
//
//	v := fastvector.New[int](5)
//	v.Push(10, 20, 30)
//	v.Set(1, 25)
//
//	for i, e := range v.All() {
//	    fmt.Println(i, e)
//	}
//
//	last, ok := v.Pop() // 30, true
//
// # Inline Capacity
//
// The inline capacity is fixed per vector and chosen at construction:
//
//	v := fastvector.New[string](8)                           // 8 inline slots
//	v := fastvector.New[string](fastvector.DefaultInlineCapacity)
//	v := fastvector.New[string](0)                           // pure overflow
//	v := fastvector.Of("a", "b", "c")                        // default capacity, pre-filled
//
// A capacity of 0 is valid and turns the vector into a plain growable
// sequence; every element lives in overflow from the start.
//
// # Release Hook
//
// Elements that hold resources can be released exactly once as they leave
// the container:
//
//	v := fastvector.New[*Conn](4, fastvector.WithReleaseFunc(func(c *Conn) {
//	    c.Close()
//	}))
//
// Pop, Erase and Clear fire the hook for each element they remove; vacated
// slots are zeroed either way, so removed elements never pin memory.
//
// # Iterators
//
// Iterators are cheap values supporting random access:
//
//	for it := v.Begin(); !it.Equal(v.End()); it = it.Next() {
//	    if stale(it.Value()) {
//	        it = it.Erase() // next iteration lands on the following element
//	    }
//	}
//
// Erase returns an iterator one position before the erased element, so the
// classic erase-while-traversing loop needs no index bookkeeping.
//
// # Errors
//
// Checked access returns an OutOfRangeError that unwraps to ErrOutOfRange:
//
//	e, err := v.At(99)
//	if errors.Is(err, fastvector.ErrOutOfRange) {
//	    // handle out-of-range access
//	}
//
// Get, Set, Ref and Swap are the unchecked counterparts and panic on invalid
// indexes.
//
// # Key Features
//
//   - Inline-first storage with transparent heap overflow
//   - Full random-access iterator with erase-during-traversal support
//   - Optional release hook with exactly-once semantics
//   - Read-only views for borrowing code
//   - In-place sort, reverse and find
//   - Range-over-func iteration via All and Values
//
// A Vector is not safe for concurrent use; callers coordinate access when
// sharing one across goroutines.
package fastvector
