package pmergesort

import "unsafe"

// SymMergeSort sorts n elements of size sz starting at base in place and
// stably, using cmp as the ordering. It runs entirely through symMerge's
// rotation-based merging, takes no scratch buffer from the Allocator, and
// cannot fail (§4.4, §7). It is not allocation-free: the call builds its
// context and pool, and small rotations copy through a temporary buffer
// of at most Config.TmpRot elements.
func SymMergeSort(base unsafe.Pointer, n int, sz uintptr, cmp CompareFunc, opts ...Option) {
	SymMergeSortR(base, n, sz, wrapCompare(cmp), nil, opts...)
}

// SymMergeSortR is SymMergeSort's reentrant variant: cmp additionally
// receives thunk on every call, so callers needing per-call state don't
// need package-level globals.
func SymMergeSortR(base unsafe.Pointer, n int, sz uintptr, cmp CompareFuncR, thunk unsafe.Pointer, opts ...Option) {
	if n < 2 || sz == 0 {
		return
	}
	cfg := DefaultConfig().apply(opts)
	c := newContext(base, n, sz, cmp, thunk, cfg, nil)
	wp := c.newPool()
	symmergesortParallel(c, wp, 0, n)
	if wp != nil {
		wp.Wait()
	}
}

// PMergeSort sorts n elements of size sz starting at base in place and
// stably, using the block-doubling driver of §4.4. It returns
// ErrInvalidInput if sz is zero (and n is at least 2); otherwise it returns
// a non-nil error only if a buffered merge's Allocator failed to produce a
// scratch buffer (§7); the array is left in a consistent, though not fully
// sorted, state in that case.
func PMergeSort(base unsafe.Pointer, n int, sz uintptr, cmp CompareFunc, opts ...Option) error {
	return PMergeSortR(base, n, sz, wrapCompare(cmp), nil, opts...)
}

// PMergeSortR is PMergeSort's reentrant variant.
func PMergeSortR(base unsafe.Pointer, n int, sz uintptr, cmp CompareFuncR, thunk unsafe.Pointer, opts ...Option) error {
	if n < 2 {
		return nil
	}
	if sz == 0 {
		return ErrInvalidInput
	}
	cfg := DefaultConfig().apply(opts)
	c := newContext(base, n, sz, cmp, thunk, cfg, nil)
	wp := c.newPool()
	err := pmergesortCore(c, wp)
	if wp != nil {
		if werr := wp.Wait(); werr != nil && err == nil {
			err = werr
		}
	}
	return err
}

// WrapMergeSort is PMergeSort with its built-in presort kernel replaced by
// wsort, a caller-supplied sort run over WrapBlockLen-sized chunks (§4.4,
// SUPPLEMENTED FEATURES #4). wsort must sort its given sub-range in place
// and stably.
func WrapMergeSort(base unsafe.Pointer, n int, sz uintptr, cmp CompareFunc, wsort WrapSortFunc, opts ...Option) error {
	return WrapMergeSortR(base, n, sz, wrapCompare(cmp), nil, wsort, opts...)
}

// WrapMergeSortR is WrapMergeSort's reentrant variant.
func WrapMergeSortR(base unsafe.Pointer, n int, sz uintptr, cmp CompareFuncR, thunk unsafe.Pointer, wsort WrapSortFunc, opts ...Option) error {
	if n < 2 {
		return nil
	}
	if sz == 0 || wsort == nil {
		return ErrInvalidInput
	}
	cfg := DefaultConfig().apply(opts)
	c := newContext(base, n, sz, cmp, thunk, cfg, wsort)
	wp := c.newPool()
	err := wrapmergesortCore(c, wp)
	if wp != nil {
		if werr := wp.Wait(); werr != nil && err == nil {
			err = werr
		}
	}
	return err
}

// newPool builds the WorkerPool a call should use: the caller-supplied
// one from Config.Pool if set, nil if only one worker is usable (every
// driver already has a fully serial fallback for that case), or a fresh
// pool sized to c.workers otherwise.
func (c *context) newPool() WorkerPool {
	if c.cfg.Pool != nil {
		return c.cfg.Pool
	}
	if c.workers <= 1 {
		return nil
	}
	return NewPool(c.workers)
}
