// Copyright 2024 The Go Authors.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package pmergesort implements an in-place, stable, parallel sort over a
// contiguous array of fixed-size opaque elements addressed by pointer.
//
// The engine is built around symmetric merging (SymMerge): a short-run
// presort turns the input into sorted blocks, an in-place merge kernel
// (rotation-based SymMerge, with a linear-walk fallback for small sides)
// combines adjacent blocks, and a parallel driver fans both phases out
// across a worker pool with per-worker scratch buffers.
//
// Six entry points form the public contract: SymMergeSort (takes no
// scratch buffer from the Allocator, infallible), PMergeSort (parallel
// block-doubling sort, returns an error only on scratch-buffer allocation
// failure or a zero element size),
// WrapMergeSort (like PMergeSort but delegates the per-block presort to a
// caller-supplied sort), and their _r variants which additionally thread
// an opaque thunk through the comparator for reentrant use. Sort/SortFunc
// give a typed, generics-based convenience layer over the same core for
// ordinary Go slices.
package pmergesort
