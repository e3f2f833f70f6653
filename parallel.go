package pmergesort

import "sync"

// symmergesortParallel is symmergesortSerial with one side of each split
// above the cut-off offered to the worker pool before being run inline:
// the left half always runs in the calling goroutine (so there's always
// forward progress even if the pool rejects every task), the right half
// is submitted first and, if accepted, runs concurrently with the left.
// Either way the caller waits for the right half before merging, so the
// recursion is a standard fork-join without ever blocking on a saturated
// pool (§4.5, §9).
func symmergesortParallel(c *context, wp WorkerPool, lo, hi int) {
	n := hi - lo
	if n < c.cfg.BlockLen {
		c.presort(c, lo, hi)
		return
	}
	if wp == nil || n <= c.cutOff {
		symmergesortSerial(c, lo, hi)
		return
	}

	mid := lo + n/2
	var wg sync.WaitGroup
	wg.Add(1)
	accepted := wp.Go(func() error {
		defer wg.Done()
		symmergesortParallel(c, wp, mid, hi)
		return nil
	})
	if !accepted {
		wg.Done()
		symmergesortParallel(c, wp, lo, mid)
		symmergesortParallel(c, wp, mid, hi)
	} else {
		symmergesortParallel(c, wp, lo, mid)
		wg.Wait()
	}
	symMerge(c, lo, mid, hi)
}

// runPass partitions [0, numUnits) of pass-specific units (presort blocks
// or merge pairs) into roughly c.workers contiguous slices, runs
// work on workers-1 of them via wp, and runs the last slice on the
// calling goroutine — so the caller never sits idle while workers run
// (§4.5). It returns the first non-nil error any worker's Aux recorded.
func (c *context) runPass(wp WorkerPool, numUnits int, work func(a *Aux, unitLo, unitHi int)) error {
	if numUnits == 0 {
		return nil
	}
	workers := c.workers
	if workers <= 1 || numUnits < 2 || wp == nil || c.n < c.cutOff {
		a := newAux(c.allocator())
		work(a, 0, numUnits)
		err := a.rc
		a.release()
		return err
	}
	if workers > numUnits {
		workers = numUnits
	}
	chunk := (numUnits + workers - 1) / workers
	workers = (numUnits + chunk - 1) / chunk

	auxes := make([]*Aux, workers)
	for i := range auxes {
		auxes[i] = newAux(c.allocator())
	}

	var wg sync.WaitGroup
	for w := 0; w < workers-1; w++ {
		lo := w * chunk
		hi := lo + chunk
		if hi > numUnits {
			hi = numUnits
		}
		a := auxes[w]
		wg.Add(1)
		accepted := wp.Go(func() error {
			defer wg.Done()
			work(a, lo, hi)
			return a.rc
		})
		if !accepted {
			wg.Done()
			work(a, lo, hi)
		}
	}

	lastLo := (workers - 1) * chunk
	lastHi := numUnits
	work(auxes[workers-1], lastLo, lastHi)
	wg.Wait()

	var rc error
	for _, a := range auxes {
		if a.rc != nil && rc == nil {
			rc = a.rc
		}
		a.release()
	}
	return rc
}

// runPresortPass applies c.presort to every BlockLen-sized block of
// [0, n), in parallel across roughly c.workers goroutines.
func (c *context) runPresortPass(wp WorkerPool) error {
	n := c.n
	unit := c.cfg.BlockLen
	numUnits := (n + unit - 1) / unit
	return c.runPass(wp, numUnits, func(_ *Aux, unitLo, unitHi int) {
		lo := unitLo * unit
		hi := unitHi * unit
		if hi > n {
			hi = n
		}
		for b := lo; b < hi; b += unit {
			e := b + unit
			if e > hi {
				e = hi
			}
			c.presort(c, b, e)
		}
	})
}

// runWrapPresortPass is runPresortPass for wrapmergesort: it calls the
// caller-supplied wsort over WrapBlockLen-sized chunks instead of the
// built-in presort kernel over BlockLen-sized ones.
func (c *context) runWrapPresortPass(wp WorkerPool) error {
	n := c.n
	unit := c.cfg.WrapBlockLen
	if unit <= 0 {
		unit = c.cfg.BlockLen
	}
	numUnits := (n + unit - 1) / unit
	return c.runPass(wp, numUnits, func(_ *Aux, unitLo, unitHi int) {
		lo := unitLo * unit
		hi := unitHi * unit
		if hi > n {
			hi = n
		}
		for b := lo; b < hi; b += unit {
			e := b + unit
			if e > hi {
				e = hi
			}
			c.callWrapSort(b, e)
		}
	})
}

// runMergePass merges every adjacent pair of bsz-sized sorted blocks in
// [0, n) — (b, b+bsz, b+2*bsz) — in parallel across roughly c.workers
// goroutines, each worker owning its own Aux scratch buffer.
func (c *context) runMergePass(wp WorkerPool, bsz int) error {
	n := c.n
	pairSize := 2 * bsz
	numPairs := (n + pairSize - 1) / pairSize
	return c.runPass(wp, numPairs, func(a *Aux, unitLo, unitHi int) {
		lo := unitLo * pairSize
		hiAll := unitHi * pairSize
		if hiAll > n {
			hiAll = n
		}
		for b := lo; b < hiAll; b += pairSize {
			mid := b + bsz
			if mid > n {
				mid = n
			}
			e := b + pairSize
			if e > n {
				e = n
			}
			if mid < e {
				if err := bufferedMerge(c, a, b, mid, e); err != nil && a.rc == nil {
					a.rc = err
				}
			}
		}
	})
}
