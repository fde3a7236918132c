package testutil

import (
	"math/rand"
	"sync"
)

// RNG struct encapsulates the random number generator and seed.
// It is thread-safe.
type RNG struct {
	rand *rand.Rand
	seed int64
	mu   sync.Mutex
}

// NewRNG creates a new RNG instance with the specified seed.
func NewRNG(seed int64) *RNG {
	return &RNG{
		rand: rand.New(rand.NewSource(seed)),
		seed: seed,
	}
}

// Reset resets the RNG to its initial seed.
func (r *RNG) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rand.Seed(r.seed)
}

// Seed returns the initial seed.
func (r *RNG) Seed() int64 {
	return r.seed
}

// Intn returns a non-negative pseudo-random number in [0,n).
func (r *RNG) Intn(n int) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Intn(n)
}

// Perm returns a pseudo-random permutation of the integers [0,n).
// Useful for driving erase operations in random order.
func (r *RNG) Perm(n int) []int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Perm(n)
}

// Ints returns a slice of n pseudo-random integers in [0,bound).
// Locks only once per call (preferred over calling Intn in a loop).
func (r *RNG) Ints(n, bound int) []int {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]int, n)
	for i := range out {
		out[i] = r.rand.Intn(bound)
	}

	return out
}

// Shuffle pseudo-randomizes the order of n elements using the provided swap
// function.
func (r *RNG) Shuffle(n int, swap func(i, j int)) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rand.Shuffle(n, swap)
}

// Float64 returns a pseudo-random number in [0.0,1.0).
func (r *RNG) Float64() float64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Float64()
}

// ReleaseRecorder captures the values and order of release-hook invocations.
// It is thread-safe, so a single recorder can observe vectors driven from
// multiple goroutines.
type ReleaseRecorder[T any] struct {
	mu    sync.Mutex
	order []T
}

// NewReleaseRecorder creates an empty recorder.
func NewReleaseRecorder[T any]() *ReleaseRecorder[T] {
	return &ReleaseRecorder[T]{}
}

// Record appends val to the recorded order.
func (r *ReleaseRecorder[T]) Record(val T) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.order = append(r.order, val)
}

// Hook returns a function suitable for fastvector.WithReleaseFunc that
// records every released value.
func (r *ReleaseRecorder[T]) Hook() func(T) {
	return r.Record
}

// Order returns a copy of the recorded values in release order.
func (r *ReleaseRecorder[T]) Order() []T {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]T, len(r.order))
	copy(out, r.order)
	return out
}

// Len returns the number of recorded releases.
func (r *ReleaseRecorder[T]) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.order)
}

// Reset discards everything recorded so far.
func (r *ReleaseRecorder[T]) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.order = nil
}
