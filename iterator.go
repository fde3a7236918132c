package fastvector

import (
	"cmp"
	"iter"
)

// Iterator is a random-access position inside a Vector: a (vector, index)
// pair that delegates every element access to the container. It stores no
// element data itself, so it stays valid across overflow growth; erasing or
// clearing shifts what it points at, which is exactly what the
// erase-during-traversal idiom relies on (see Erase).
//
// Iterators are values: navigation returns a shifted copy and never mutates
// the receiver. The zero Iterator belongs to no vector and must not be used;
// obtain iterators from Begin, End, or FindFunc.
type Iterator[T any] struct {
	vec *Vector[T]
	idx int
}

// Begin returns an iterator at logical index 0.
func (v *Vector[T]) Begin() Iterator[T] {
	return Iterator[T]{vec: v}
}

// End returns an iterator one past the last element. End is computed at call
// time, so loop conditions of the form !it.Equal(v.End()) track shrinkage
// during traversal.
func (v *Vector[T]) End() Iterator[T] {
	return Iterator[T]{vec: v, idx: v.size}
}

// Index returns the logical index the iterator points at.
func (it Iterator[T]) Index() int { return it.idx }

// Valid reports whether the iterator addresses a live element.
func (it Iterator[T]) Valid() bool {
	return it.vec != nil && it.idx >= 0 && it.idx < it.vec.size
}

// Value returns the element under the iterator. It panics if the iterator
// does not address a live element.
func (it Iterator[T]) Value() T { return it.vec.Get(it.idx) }

// Ref returns a pointer to the element under the iterator, with the same
// invalidation caveats as Vector.Ref.
func (it Iterator[T]) Ref() *T { return it.vec.Ref(it.idx) }

// Set replaces the element under the iterator.
func (it Iterator[T]) Set(val T) { it.vec.Set(it.idx, val) }

// Next returns an iterator advanced by one position.
func (it Iterator[T]) Next() Iterator[T] { return it.Add(1) }

// Prev returns an iterator moved back by one position.
func (it Iterator[T]) Prev() Iterator[T] { return it.Add(-1) }

// Add returns an iterator shifted by n positions. No bounds checking is
// performed; the result may be out of range and merely must not be
// dereferenced.
func (it Iterator[T]) Add(n int) Iterator[T] {
	return Iterator[T]{vec: it.vec, idx: it.idx + n}
}

// Sub returns an iterator shifted back by n positions.
func (it Iterator[T]) Sub(n int) Iterator[T] { return it.Add(-n) }

// Diff returns the signed index distance it - other. Both iterators must
// belong to the same vector; Diff panics otherwise.
func (it Iterator[T]) Diff(other Iterator[T]) int {
	if it.vec != other.vec {
		panic("fastvector: iterators belong to different vectors")
	}
	return it.idx - other.idx
}

// Equal reports whether both iterators address the same position of the same
// vector. Iterators over different vectors are never equal, whatever their
// indexes.
func (it Iterator[T]) Equal(other Iterator[T]) bool {
	return it.vec == other.vec && it.idx == other.idx
}

// Compare orders two positions within the same vector: -1, 0 or +1 as it is
// before, at or behind other. It panics when the iterators belong to
// different vectors.
func (it Iterator[T]) Compare(other Iterator[T]) int {
	if it.vec != other.vec {
		panic("fastvector: iterators belong to different vectors")
	}
	return cmp.Compare(it.idx, other.idx)
}

// Erase removes the element under the iterator via Vector.Erase. On success
// it returns an iterator one position before the erased index, so that the
// caller's next advance lands on the element that followed the erased one:
//
//	for it := v.Begin(); !it.Equal(v.End()); it = it.Next() {
//	    if drop(it.Value()) {
//	        it = it.Erase()
//	    }
//	}
//
// If the index was not live the vector is unchanged and the iterator is
// returned as is.
func (it Iterator[T]) Erase() Iterator[T] {
	if it.vec.Erase(it.idx) {
		return Iterator[T]{vec: it.vec, idx: it.idx - 1}
	}
	return it
}

// All returns an index/value sequence over the live elements for use with
// range. The vector must not be mutated during the walk; for erasing while
// traversing, use Iterator.Erase instead.
func (v *Vector[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i := 0; i < v.size; i++ {
			if !yield(i, *v.slot(i)) {
				return
			}
		}
	}
}

// Values returns a value sequence over the live elements for use with range.
func (v *Vector[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for i := 0; i < v.size; i++ {
			if !yield(*v.slot(i)) {
				return
			}
		}
	}
}

// ReadOnly is a read-only view of a Vector. It exposes the non-mutating
// parts of the container API and hands out read-only iterators, which makes
// it the type to pass to code that should observe but never modify the
// sequence.
type ReadOnly[T any] struct {
	vec *Vector[T]
}

// ReadOnly returns a read-only view backed by v. The view reflects later
// mutations made through v; it is a restriction, not a snapshot.
func (v *Vector[T]) ReadOnly() ReadOnly[T] {
	return ReadOnly[T]{vec: v}
}

// Len returns the number of elements currently held.
func (r ReadOnly[T]) Len() int { return r.vec.Len() }

// Get returns the element at logical index i, panicking like Vector.Get on
// an invalid index.
func (r ReadOnly[T]) Get(i int) T { return r.vec.Get(i) }

// At returns the element at logical index i or an OutOfRangeError.
func (r ReadOnly[T]) At(i int) (T, error) { return r.vec.At(i) }

// Begin returns a read-only iterator at logical index 0.
func (r ReadOnly[T]) Begin() ReadOnlyIterator[T] {
	return ReadOnlyIterator[T]{vec: r.vec}
}

// End returns a read-only iterator one past the last element.
func (r ReadOnly[T]) End() ReadOnlyIterator[T] {
	return ReadOnlyIterator[T]{vec: r.vec, idx: r.vec.size}
}

// All returns an index/value sequence over the live elements.
func (r ReadOnly[T]) All() iter.Seq2[int, T] { return r.vec.All() }

// Values returns a value sequence over the live elements.
func (r ReadOnly[T]) Values() iter.Seq[T] { return r.vec.Values() }

// String renders the live elements like Vector.String.
func (r ReadOnly[T]) String() string { return r.vec.String() }

// ReadOnlyIterator is the non-mutating counterpart of Iterator: identical
// navigation and comparison, no Set, Ref or Erase.
type ReadOnlyIterator[T any] struct {
	vec *Vector[T]
	idx int
}

// Index returns the logical index the iterator points at.
func (it ReadOnlyIterator[T]) Index() int { return it.idx }

// Valid reports whether the iterator addresses a live element.
func (it ReadOnlyIterator[T]) Valid() bool {
	return it.vec != nil && it.idx >= 0 && it.idx < it.vec.size
}

// Value returns the element under the iterator. It panics if the iterator
// does not address a live element.
func (it ReadOnlyIterator[T]) Value() T { return it.vec.Get(it.idx) }

// Next returns an iterator advanced by one position.
func (it ReadOnlyIterator[T]) Next() ReadOnlyIterator[T] { return it.Add(1) }

// Prev returns an iterator moved back by one position.
func (it ReadOnlyIterator[T]) Prev() ReadOnlyIterator[T] { return it.Add(-1) }

// Add returns an iterator shifted by n positions, without bounds checking.
func (it ReadOnlyIterator[T]) Add(n int) ReadOnlyIterator[T] {
	return ReadOnlyIterator[T]{vec: it.vec, idx: it.idx + n}
}

// Sub returns an iterator shifted back by n positions.
func (it ReadOnlyIterator[T]) Sub(n int) ReadOnlyIterator[T] { return it.Add(-n) }

// Diff returns the signed index distance it - other, panicking when the
// iterators belong to different vectors.
func (it ReadOnlyIterator[T]) Diff(other ReadOnlyIterator[T]) int {
	if it.vec != other.vec {
		panic("fastvector: iterators belong to different vectors")
	}
	return it.idx - other.idx
}

// Equal reports whether both iterators address the same position of the same
// vector.
func (it ReadOnlyIterator[T]) Equal(other ReadOnlyIterator[T]) bool {
	return it.vec == other.vec && it.idx == other.idx
}

// Compare orders two positions within the same vector, panicking when the
// iterators belong to different vectors.
func (it ReadOnlyIterator[T]) Compare(other ReadOnlyIterator[T]) int {
	if it.vec != other.vec {
		panic("fastvector: iterators belong to different vectors")
	}
	return cmp.Compare(it.idx, other.idx)
}
