package pmergesort

// inplaceMerge merges the two already-sorted, adjacent ranges [a, m) and
// [m, b) in place without extra storage, by repeatedly finding where the
// next left-hand element belongs among the remaining right-hand elements
// and rotating that right-hand prefix in front of it. It is the kernel
// binsort_run uses to insert a whole natural run into the sorted prefix
// ("group rotation"), and inplace_symmerge's fallback once a side's length
// drops to Config.MinSubmergeLen1 or below.
//
// Once the right-hand range [m, b) being searched is no longer than
// Config.MinSubmergeLen2, the destination search walks linearly instead of
// binary-searching, since a handful of comparisons isn't worth the
// branching overhead of a binary search (§4.3).
func inplaceMerge(c *context, a, m, b int) {
	for a < m && m < b {
		// a[a] is already <= everything in [a+1, m); find where it sits
		// relative to [m, b) by locating the first element of [m, b) that
		// is not smaller than a[a].
		var j int
		if b-m <= c.cfg.MinSubmergeLen2 {
			j = linearLowerBound(c, a, m, b)
		} else {
			j = binaryLowerBound(c, a, m, b)
		}
		if j == m {
			// a[a] already belongs before everything remaining on the
			// right; nothing to rotate, advance past it.
			a++
			continue
		}
		rotateBlock(c, a, m, j)
		a += j - m
		m = j
	}
}

// binaryLowerBound returns the smallest index in [m, b) whose element is
// not smaller than a[a], or b if none is. Ties favor the left element
// (a[a]) sorting first, matching the stability rule of §4.3.
func binaryLowerBound(c *context, a, m, b int) int {
	lo, hi := m, b
	for lo < hi {
		mid := lo + (hi-lo)/2
		if c.cmpIdx(mid, a) < 0 {
			lo = mid + 1
		} else {
			hi = mid
		}
	}
	return lo
}

func linearLowerBound(c *context, a, m, b int) int {
	for m < b && c.cmpIdx(m, a) < 0 {
		m++
	}
	return m
}

// symMerge merges the adjacent sorted ranges [a, m) and [m, b) in place
// using the symmetric (Kim-Kutzner) algorithm: find the split point by
// binary search over the combined index space, rotate the two pieces that
// must trade places, and recurse on the two resulting halves. It defers to
// inplaceMerge once either side is no larger than Config.MinSubmergeLen1,
// and uses rotateBlock for the rotation itself (three reversals above
// Config.TmpRot elements, a buffered copy-rotate at or below it) in place
// of a juggling-style swap rotation (§4.3 step 4).
func symMerge(c *context, a, m, b int) {
	if a >= m || m >= b {
		return
	}
	if m-a <= c.cfg.MinSubmergeLen1 || b-m <= c.cfg.MinSubmergeLen1 {
		inplaceMerge(c, a, m, b)
		return
	}

	mid := a + (b-a)/2
	n := mid + m
	var start, r int
	if m > mid {
		start = n - b
		r = mid
	} else {
		start = a
		r = m
	}
	p := n - 1
	for start < r {
		q := start + (r-start)/2
		// !(a[p-q] < a[q]) i.e. a[q] <= a[p-q], keeping ties on the left.
		if c.cmpIdx(p-q, q) >= 0 {
			start = q + 1
		} else {
			r = q
		}
	}
	end := n - start

	rotateBlock(c, start, m, end)
	symMerge(c, a, start, mid)
	symMerge(c, mid, end, b)
}

// bufferedMerge merges [lo, mid) and [mid, hi) using aux's scratch buffer
// to hold whichever side is smaller, then fills the destination range in
// the direction that lets the buffered side be read in the order it's
// written: left-to-right when the left side is buffered, right-to-left
// when the right side is. Either way, ties favor the left source element,
// matching inplace_symmerge's stability rule. It is the merge kernel
// pmergesort/wrapmergesort use for their block-doubling passes; unlike
// symMerge/inplaceMerge it can fail, via aux's Allocator (§7).
func bufferedMerge(c *context, aux *Aux, lo, mid, hi int) error {
	if lo >= mid || mid >= hi {
		return nil
	}
	leftLen := mid - lo
	rightLen := hi - mid

	if leftLen <= rightLen {
		buf := aux.grow(leftLen * int(c.sz))
		if buf == nil {
			return aux.rc
		}
		copyRegion(bufAt(buf, 0, c.sz), c.at(lo), uintptr(leftLen)*c.sz)

		i, j, k := 0, mid, lo
		for i < leftLen && j < hi {
			if c.cmp(c.thunk, bufAt(buf, i, c.sz), c.at(j)) <= 0 {
				copyRegion(c.at(k), bufAt(buf, i, c.sz), c.sz)
				i++
			} else {
				if k != j {
					copyRegion(c.at(k), c.at(j), c.sz)
				}
				j++
			}
			k++
		}
		for i < leftLen {
			copyRegion(c.at(k), bufAt(buf, i, c.sz), c.sz)
			i++
			k++
		}
		return nil
	}

	buf := aux.grow(rightLen * int(c.sz))
	if buf == nil {
		return aux.rc
	}
	copyRegion(bufAt(buf, 0, c.sz), c.at(mid), uintptr(rightLen)*c.sz)

	i, j, k := mid-1, rightLen-1, hi-1
	for i >= lo && j >= 0 {
		if c.cmp(c.thunk, bufAt(buf, j, c.sz), c.at(i)) >= 0 {
			copyRegion(c.at(k), bufAt(buf, j, c.sz), c.sz)
			j--
		} else {
			if k != i {
				copyRegion(c.at(k), c.at(i), c.sz)
			}
			i--
		}
		k--
	}
	for j >= 0 {
		copyRegion(c.at(k), bufAt(buf, j, c.sz), c.sz)
		j--
		k--
	}
	return nil
}
