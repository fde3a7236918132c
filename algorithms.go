package fastvector

import "sort"

// sortAdapter exposes the live elements to package sort. Indexes arriving
// from the sorter are always in range, so it goes through slot directly.
type sortAdapter[T any] struct {
	vec *Vector[T]
	cmp func(a, b T) int
}

func (s sortAdapter[T]) Len() int { return s.vec.size }

func (s sortAdapter[T]) Less(i, j int) bool {
	return s.cmp(*s.vec.slot(i), *s.vec.slot(j)) < 0
}

func (s sortAdapter[T]) Swap(i, j int) {
	pi, pj := s.vec.slot(i), s.vec.slot(j)
	*pi, *pj = *pj, *pi
}

// Sort sorts the elements in place. cmp follows the usual three-way
// convention: negative when a orders before b, zero when they are
// equivalent, positive otherwise. The sort is not stable. Elements are
// swapped across the inline and overflow regions as needed; no release hook
// fires, since sorting only rearranges live elements.
func (v *Vector[T]) Sort(cmp func(a, b T) int) {
	sort.Sort(sortAdapter[T]{vec: v, cmp: cmp})
}

// Reverse reverses the order of the elements in place.
func (v *Vector[T]) Reverse() {
	for i, j := 0, v.size-1; i < j; i, j = i+1, j-1 {
		pi, pj := v.slot(i), v.slot(j)
		*pi, *pj = *pj, *pi
	}
}

// FindFunc returns an iterator at the first element satisfying pred, or
// End() when no element does. Combined with Iterator.Erase this gives the
// find-and-remove idiom:
//
//	if it := v.FindFunc(stale); !it.Equal(v.End()) {
//	    it.Erase()
//	}
func (v *Vector[T]) FindFunc(pred func(T) bool) Iterator[T] {
	for i := 0; i < v.size; i++ {
		if pred(*v.slot(i)) {
			return Iterator[T]{vec: v, idx: i}
		}
	}
	return v.End()
}

// Find returns an iterator at the first element equal to target, or End()
// when the vector does not contain it.
func Find[T comparable](v *Vector[T], target T) Iterator[T] {
	return v.FindFunc(func(e T) bool { return e == target })
}

// Index returns the logical index of the first element equal to target, or
// -1 when the vector does not contain it.
func Index[T comparable](v *Vector[T], target T) int {
	for i := 0; i < v.size; i++ {
		if *v.slot(i) == target {
			return i
		}
	}
	return -1
}

// Contains reports whether the vector holds at least one element equal to
// target.
func Contains[T comparable](v *Vector[T], target T) bool {
	return Index(v, target) >= 0
}
