// Package testutil provides testing utilities for fastvector.
//
// This package is intended for use in tests and benchmarks only.
// It provides a deterministic random source for randomized container
// workloads and a recorder for verifying release-hook behavior.
//
// # Deterministic Randomness
//
//	rng := testutil.NewRNG(seed)
//	n := rng.Intn(100)        // bounded int
//	order := rng.Perm(size)   // random erase order
//	vals := rng.Ints(64, 10)  // random payload slice
//
// # Release Recording
//
//	rec := testutil.NewReleaseRecorder[int]()
//	v := fastvector.New[int](5, fastvector.WithReleaseFunc(rec.Hook()))
//	v.Push(1, 2, 3)
//	v.Clear()
//	rec.Order() // the release order, e.g. [1 2 3]
package testutil
