package fastvector

import (
	"fmt"
	"strings"
)

// DefaultInlineCapacity is the inline capacity used by Of and by New when a
// negative capacity is passed.
const DefaultInlineCapacity = 5

// Vector is a generic sequential container that keeps its first elements in a
// fixed-size inline region and spills the rest into a growable overflow
// region. Both regions are stitched into one contiguous logical sequence
// indexed from 0.
//
// The inline region is sized exactly once at construction and never grows, so
// workloads that stay at or below the inline capacity pay no per-append
// allocations. The first append beyond the inline capacity reserves overflow
// space for another inline-capacity worth of elements.
//
// The zero value is a valid, empty vector with no inline region: every
// element goes to the overflow region, which makes it behave like a plain
// growable slice.
//
// A Vector is not safe for concurrent use. Distinct instances share no state
// and may be used from different goroutines freely.
type Vector[T any] struct {
	inline   []T // fixed region; len(inline) is the inline capacity
	overflow []T // growable region for logical indexes >= len(inline)
	size     int // logical element count across both regions
	release  func(T)
}

// New creates an empty vector with the given inline capacity. A capacity of
// zero disables the inline region entirely; a negative capacity is replaced
// by DefaultInlineCapacity.
func New[T any](inlineCapacity int, opts ...Option[T]) *Vector[T] {
	if inlineCapacity < 0 {
		inlineCapacity = DefaultInlineCapacity
	}

	v := &Vector[T]{}
	if inlineCapacity > 0 {
		v.inline = make([]T, inlineCapacity)
	}

	for _, opt := range opts {
		opt(v)
	}

	return v
}

// Of creates a vector with DefaultInlineCapacity seeded with the given
// values, appended in order.
func Of[T any](values ...T) *Vector[T] {
	v := New[T](DefaultInlineCapacity)
	v.Push(values...)
	return v
}

// Len returns the number of elements currently held.
func (v *Vector[T]) Len() int {
	return v.size
}

// slot resolves a logical index to its storage cell. Index i lives in the
// inline region iff i < len(inline), otherwise at overflow[i-len(inline)].
// Callers are responsible for bounds checking against the logical size.
func (v *Vector[T]) slot(i int) *T {
	if i < len(v.inline) {
		return &v.inline[i]
	}
	return &v.overflow[i-len(v.inline)]
}

// checkIndex panics unless i addresses a live element. Vacated inline slots
// sit between size and the inline capacity and must never be read through
// the unchecked accessors, so the check is against the logical size, not the
// physical region lengths.
func (v *Vector[T]) checkIndex(i int) {
	if i < 0 || i >= v.size {
		panic(fmt.Sprintf("fastvector: index %d out of range for size %d", i, v.size))
	}
}

// Push appends the given values in order. Elements are placed in the inline
// region while it has room and in the overflow region afterwards. The first
// spill reserves overflow capacity for one inline-capacity worth of elements
// to amortize the appends that typically follow.
//
// Push never invalidates logical indexes, but pointers obtained via Ref into
// the overflow region may dangle after it grows.
func (v *Vector[T]) Push(values ...T) {
	for _, val := range values {
		if v.size < len(v.inline) {
			v.inline[v.size] = val
		} else {
			if v.overflow == nil && len(v.inline) > 0 {
				v.overflow = make([]T, 0, len(v.inline))
			}
			v.overflow = append(v.overflow, val)
		}
		v.size++
	}
}

// Pop removes and returns the last element. It reports false on an empty
// vector, which is a no-op. The most recently appended element is always
// removed first, regardless of the region it occupies.
func (v *Vector[T]) Pop() (T, bool) {
	var zero T
	if v.size == 0 {
		return zero, false
	}

	v.size--

	var out T
	if v.size < len(v.inline) {
		out = v.inline[v.size]
		v.inline[v.size] = zero // zero out for GC
	} else {
		last := len(v.overflow) - 1
		out = v.overflow[last]
		v.overflow[last] = zero
		v.overflow = v.overflow[:last]
	}

	if v.release != nil {
		v.release(out)
	}
	return out, true
}

// Erase removes the element at logical index i and closes the gap, shifting
// every element behind it one position forward. It reports false without
// modifying the vector if i does not address a live element.
//
// Erasing in the inline region while overflow elements exist migrates the
// first overflow element into the last inline slot to keep the sequence
// contiguous, then shifts the whole overflow region. Erase is therefore
// O(inline capacity + overflow length) in the worst case; callers that do
// not need stable ordering are better served by Swap with the last index
// followed by Pop.
func (v *Vector[T]) Erase(i int) bool {
	if i < 0 || i >= v.size {
		return false
	}

	var zero T
	var victim T

	if n := len(v.inline); i < n {
		victim = v.inline[i]

		// Close the gap within the live inline prefix.
		live := min(v.size, n)
		copy(v.inline[i:live-1], v.inline[i+1:live])

		if v.size > n {
			// Logical index n must keep mapping to the first overflow
			// element, so it crosses the boundary now.
			v.inline[n-1] = v.overflow[0]
			last := len(v.overflow) - 1
			copy(v.overflow, v.overflow[1:])
			v.overflow[last] = zero
			v.overflow = v.overflow[:last]
		} else {
			v.inline[live-1] = zero // zero out for GC
		}
	} else {
		j := i - len(v.inline)
		victim = v.overflow[j]
		last := len(v.overflow) - 1
		copy(v.overflow[j:], v.overflow[j+1:])
		v.overflow[last] = zero
		v.overflow = v.overflow[:last]
	}

	v.size--

	if v.release != nil {
		v.release(victim)
	}
	return true
}

// Get returns the element at logical index i. The index must address a live
// element; Get panics otherwise. Use At for checked access.
func (v *Vector[T]) Get(i int) T {
	v.checkIndex(i)
	return *v.slot(i)
}

// Set replaces the element at logical index i. The previous occupant is
// overwritten in place; this is not a release. The index must address a live
// element; Set panics otherwise.
func (v *Vector[T]) Set(i int, val T) {
	v.checkIndex(i)
	*v.slot(i) = val
}

// Ref returns a pointer to the element at logical index i for in-place
// mutation. The pointer is invalidated by any subsequent mutating operation
// on the vector: erases shift elements under it and overflow growth may move
// the whole region. The index must address a live element; Ref panics
// otherwise.
func (v *Vector[T]) Ref(i int) *T {
	v.checkIndex(i)
	return v.slot(i)
}

// At returns the element at logical index i, or an OutOfRangeError if the
// vector is empty or i does not address a live element. It never panics.
func (v *Vector[T]) At(i int) (T, error) {
	if i < 0 || i >= v.size {
		var zero T
		return zero, &OutOfRangeError{Index: i, Size: v.size}
	}
	return *v.slot(i), nil
}

// Swap exchanges the elements at logical indexes i and j. Both must address
// live elements; Swap panics otherwise.
func (v *Vector[T]) Swap(i, j int) {
	v.checkIndex(i)
	v.checkIndex(j)
	pi, pj := v.slot(i), v.slot(j)
	*pi, *pj = *pj, *pi
}

// Clear removes every element and resets the size to zero. The overflow
// region is drained first, front to back, then the live inline slots front
// to back; a registered release hook observes each element in exactly that
// order. Storage is retained for reuse: the inline region keeps its capacity
// by construction and the overflow region keeps its allocation.
func (v *Vector[T]) Clear() {
	var zero T

	for j := range v.overflow {
		val := v.overflow[j]
		v.overflow[j] = zero // zero out for GC
		if v.release != nil {
			v.release(val)
		}
	}
	if v.overflow != nil {
		v.overflow = v.overflow[:0]
	}

	live := min(v.size, len(v.inline))
	for j := 0; j < live; j++ {
		val := v.inline[j]
		v.inline[j] = zero
		if v.release != nil {
			v.release(val)
		}
	}

	v.size = 0
}

// Clone returns a deep copy: same inline capacity, every element copied,
// same release hook. The clone shares no storage with the original, so
// mutating one never affects the other.
func (v *Vector[T]) Clone() *Vector[T] {
	c := &Vector[T]{size: v.size, release: v.release}

	if v.inline != nil {
		c.inline = make([]T, len(v.inline))
		copy(c.inline, v.inline[:min(v.size, len(v.inline))])
	}
	if len(v.overflow) > 0 {
		c.overflow = make([]T, len(v.overflow))
		copy(c.overflow, v.overflow)
	}

	return c
}

// String renders the live elements in slice style, e.g. "[1 2 3]".
func (v *Vector[T]) String() string {
	var sb strings.Builder
	sb.WriteByte('[')
	for i := 0; i < v.size; i++ {
		if i > 0 {
			sb.WriteByte(' ')
		}
		fmt.Fprintf(&sb, "%v", *v.slot(i))
	}
	sb.WriteByte(']')
	return sb.String()
}
