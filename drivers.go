package pmergesort

import "unsafe"

// WrapSortFunc is an externally supplied sort used as wrapmergesort's
// per-block presort (§4.4, SUPPLEMENTED FEATURES #4): it receives a
// pointer to the sub-block, its length and element size, and the call's
// comparator, and must sort that sub-block in place and stably.
type WrapSortFunc func(base unsafe.Pointer, n int, sz uintptr, cmp CompareFuncR, thunk unsafe.Pointer)

// symmergesortSerial sorts [lo, hi) with the fully serial, purely
// recursive driver of §4.4: below BlockLen it hands the range to the
// selected presort kernel; above it, it splits the range in half,
// recursively sorts both halves, and merges them with symMerge. This
// driver takes no scratch buffer from the Allocator and cannot fail,
// matching SymMergeSort's contract.
func symmergesortSerial(c *context, lo, hi int) {
	if hi-lo < c.cfg.BlockLen {
		c.presort(c, lo, hi)
		return
	}
	mid := lo + (hi-lo)/2
	symmergesortSerial(c, lo, mid)
	symmergesortSerial(c, mid, hi)
	symMerge(c, lo, mid, hi)
}

// pmergesortCore sorts [0, n) with the block-doubling driver of §4.4: a
// presort pass turns every BlockLen-sized block into a sorted run, then
// successive merge passes double the sorted-block size until it covers
// the whole array. Each pass is parallelized by runPass; pmergesortCore
// itself is purely sequential pass orchestration.
func pmergesortCore(c *context, wp WorkerPool) error {
	n := c.n
	if n < 2 {
		return nil
	}
	if err := c.runPresortPass(wp); err != nil {
		return wrapError("pmergesort", PhasePresort, err)
	}
	for bsz := c.cfg.BlockLen; bsz < n; bsz *= 2 {
		if err := c.runMergePass(wp, bsz); err != nil {
			return wrapError("pmergesort", PhaseMerge, err)
		}
	}
	return nil
}

// wrapmergesortCore is pmergesortCore with the built-in presort kernel
// replaced by a caller-supplied WrapSortFunc, applied over WrapBlockLen
// chunks instead of BlockLen ones (§4.4, SUPPLEMENTED FEATURES #4).
func wrapmergesortCore(c *context, wp WorkerPool) error {
	n := c.n
	if n < 2 {
		return nil
	}
	if err := c.runWrapPresortPass(wp); err != nil {
		return wrapError("wrapmergesort", PhasePresort, err)
	}
	unit := c.cfg.WrapBlockLen
	if unit <= 0 {
		unit = c.cfg.BlockLen
	}
	for bsz := unit; bsz < n; bsz *= 2 {
		if err := c.runMergePass(wp, bsz); err != nil {
			return wrapError("wrapmergesort", PhaseMerge, err)
		}
	}
	return nil
}
