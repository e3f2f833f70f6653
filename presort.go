package pmergesort

// presortFunc sorts the range [lo, hi) in place; it is the common shape of
// the three presort kernels selected by Config.Presort.
type presortFunc func(c *context, lo, hi int)

func selectPresort(v PresortVariant) presortFunc {
	switch v {
	case PresortBinary:
		return binsort
	case PresortMergeRun:
		return binsortMergeRun
	default:
		return binsortRun
	}
}

// binsort sorts [lo, hi) with plain binary-insertion sort: each element is
// located in the already-sorted prefix via binary search and moved into
// place with a single rotation. It ignores any natural run structure in
// the input (§4.2).
func binsort(c *context, lo, hi int) {
	for i := lo + 1; i < hi; i++ {
		insertOne(c, lo, i)
	}
}

// insertOne moves element i into its sorted position within [lo, i).
func insertOne(c *context, lo, i int) {
	dst := binaryUpperBound(c, lo, i, i)
	if dst == i {
		return
	}
	rotateBlock(c, dst, i, i+1)
}

// binaryUpperBound returns the smallest index in [lo, hi) whose element is
// strictly greater than a[i], or hi if none is — i.e. the position at
// which a[i] should be inserted to land after any equal elements already
// present, preserving stability.
func binaryUpperBound(c *context, lo, hi, i int) int {
	l, h := lo, hi
	for l < h {
		mid := l + (h-l)/2
		if c.cmpIdx(i, mid) < 0 {
			h = mid
		} else {
			l = mid + 1
		}
	}
	return l
}

// detectRun finds the maximal run starting at i (comparing each element to
// its predecessor) and reverses it in place if it is descending, so that
// [i, runEnd) is ascending on return. The run's direction is decided by
// comparing a[i] with a[i-1]: it is descending only if a[i] < a[i-1].
func detectRun(c *context, lo, i, hi int) (runEnd int) {
	runEnd = i + 1
	if i <= lo {
		return runEnd
	}
	if c.cmpIdx(i, i-1) < 0 {
		for runEnd < hi && c.cmpIdx(runEnd, runEnd-1) < 0 {
			runEnd++
		}
		reverseRange(c, i, runEnd)
	} else {
		for runEnd < hi && c.cmpIdx(runEnd, runEnd-1) >= 0 {
			runEnd++
		}
	}
	return runEnd
}

// binsortRun sorts [lo, hi) by repeatedly detecting the next natural run,
// normalizing it to ascending order, and inserting the whole run into the
// sorted prefix with inplaceMerge's group-rotation walk. This is the
// default presort (§4.2): it does far fewer comparisons
// than element-at-a-time insertion when the input already has runs.
func binsortRun(c *context, lo, hi int) {
	if hi-lo < 2 {
		return
	}
	i := lo + 1
	for i < hi {
		runEnd := detectRun(c, lo, i, hi)
		inplaceMerge(c, lo, i, runEnd)
		i = runEnd
	}
}

// binsortMergeRun is binsortRun's sibling: it inserts each detected run
// into the sorted prefix using the full symMerge kernel instead of a
// group-rotation walk. symMerge's extra bookkeeping costs more for short
// runs, but its recursive split keeps rotation sizes down when a run is
// long relative to the prefix, where each of binsortRun's group rotations
// moves the whole remaining prefix (§4.2, "SUPPLEMENTED FEATURES" #3).
func binsortMergeRun(c *context, lo, hi int) {
	if hi-lo < 2 {
		return
	}
	i := lo + 1
	for i < hi {
		runEnd := detectRun(c, lo, i, hi)
		symMerge(c, lo, i, runEnd)
		i = runEnd
	}
}
