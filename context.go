package pmergesort

import (
	"math"
	"unsafe"
)

// context holds everything a single call derives once from its Config and
// arguments: the array being sorted, the comparator, and the effectors
// and thresholds every kernel in this package reads. It is built once per
// public entry point call and passed down by pointer; nothing in it
// changes concurrently except through Aux, which is per-worker.
type context struct {
	base  unsafe.Pointer
	n     int
	sz    uintptr
	cmp   CompareFuncR
	thunk unsafe.Pointer

	cfg     Config
	workers int
	cutOff  int
	presort presortFunc
	wsort   WrapSortFunc
}

func newContext(base unsafe.Pointer, n int, sz uintptr, cmp CompareFuncR, thunk unsafe.Pointer, cfg Config, wsort WrapSortFunc) *context {
	probe := cfg.Probe
	if probe == nil {
		probe = DefaultProbe
	}
	workers := cfg.Workers
	if workers <= 0 {
		workers = probe.NumWorkers()
	}
	if workers < 1 {
		workers = 1
	}

	c := &context{
		base:    base,
		n:       n,
		sz:      sz,
		cmp:     cmp,
		thunk:   thunk,
		cfg:     cfg,
		workers: workers,
		cutOff:  deriveCutOff(n, cfg.CutOff),
		presort: selectPresort(cfg.Presort),
		wsort:   wsort,
	}
	return c
}

// deriveCutOff returns the minimum range length worth splitting across
// workers: isqrt(n)*16 when explicit is zero (§4.5), or explicit itself
// when the caller pinned one via WithCutOff.
func deriveCutOff(n, explicit int) int {
	if explicit > 0 {
		return explicit
	}
	return isqrt(n) * 16
}

func isqrt(n int) int {
	if n <= 0 {
		return 0
	}
	x := int(math.Sqrt(float64(n)))
	for x > 0 && x*x > n {
		x--
	}
	for (x+1)*(x+1) <= n {
		x++
	}
	return x
}

// allocator returns the Allocator a pass should use for its Aux buffers.
func (c *context) allocator() Allocator {
	if c.cfg.Allocator != nil {
		return c.cfg.Allocator
	}
	return defaultAllocator
}

// callWrapSort invokes the caller-supplied wsort over the sub-range
// [lo, hi), translating it into the (base, n, sz, cmp, thunk) shape
// WrapSortFunc expects.
func (c *context) callWrapSort(lo, hi int) {
	c.wsort(c.at(lo), hi-lo, c.sz, c.cmp, c.thunk)
}
