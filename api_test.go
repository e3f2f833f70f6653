package pmergesort

import (
	"math/rand"
	"sort"
	"sync"
	"testing"
	"unsafe"
)

func intLess(a, b int) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

func intCompareFunc(a, b unsafe.Pointer) int {
	return intLess(*(*int)(a), *(*int)(b))
}

func runEntryPoints(t *testing.T, vals []int, opts ...Option) {
	t.Helper()
	n := len(vals)
	if n < 2 {
		return
	}
	sz := unsafe.Sizeof(vals[0])

	t.Run("SymMergeSort", func(t *testing.T) {
		got := cloneInts(vals)
		SymMergeSort(unsafe.Pointer(&got[0]), n, sz, intCompareFunc, opts...)
		checkSorted(t, got, vals)
	})
	t.Run("PMergeSort", func(t *testing.T) {
		got := cloneInts(vals)
		if err := PMergeSort(unsafe.Pointer(&got[0]), n, sz, intCompareFunc, opts...); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		checkSorted(t, got, vals)
	})
	t.Run("WrapMergeSort", func(t *testing.T) {
		got := cloneInts(vals)
		wsort := func(base unsafe.Pointer, n int, sz uintptr, cmp CompareFuncR, thunk unsafe.Pointer) {
			s := unsafe.Slice((*int)(base), n)
			sort.Ints(s)
		}
		if err := WrapMergeSort(unsafe.Pointer(&got[0]), n, sz, intCompareFunc, wsort, opts...); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		checkSorted(t, got, vals)
	})
}

func checkSorted(t *testing.T, got, original []int) {
	t.Helper()
	if !isSorted(got) {
		t.Fatalf("not sorted: %v", got)
	}
	if !isPermutation(got, original) {
		t.Fatalf("got %v, not a permutation of %v", got, original)
	}
}

func TestEntryPointsSortRandomInputs(t *testing.T) {
	rng := rand.New(rand.NewSource(1234))
	sizes := []int{0, 1, 2, 3, 8, 31, 32, 33, 100, 257, 1000}
	for _, n := range sizes {
		vals := randomInts(rng, n, 200)
		runEntryPoints(t, vals)
	}
}

func TestEntryPointsAlreadySorted(t *testing.T) {
	vals := make([]int, 500)
	for i := range vals {
		vals[i] = i
	}
	runEntryPoints(t, vals)
}

func TestEntryPointsReverseSorted(t *testing.T) {
	vals := make([]int, 500)
	for i := range vals {
		vals[i] = len(vals) - i
	}
	runEntryPoints(t, vals)
}

func TestEntryPointsManyDuplicates(t *testing.T) {
	rng := rand.New(rand.NewSource(99))
	vals := randomInts(rng, 400, 3)
	runEntryPoints(t, vals)
}

func TestEntryPointsConfigVariants(t *testing.T) {
	rng := rand.New(rand.NewSource(5))
	vals := randomInts(rng, 500, 1000)
	runEntryPoints(t, vals, WithBlockLen(4))
	runEntryPoints(t, vals, WithPresort(PresortBinary))
	runEntryPoints(t, vals, WithPresort(PresortMergeRun))
	runEntryPoints(t, vals, WithWorkers(1))
	runEntryPoints(t, vals, WithCutOff(16))
	runEntryPoints(t, vals, WithSubmergeThresholds(2, 1))
	runEntryPoints(t, vals, WithTmpRot(2))
}

func TestEntryPointsIdempotent(t *testing.T) {
	rng := rand.New(rand.NewSource(17))
	vals := randomInts(rng, 300, 500)
	once := cloneInts(vals)
	if err := PMergeSort(unsafe.Pointer(&once[0]), len(once), unsafe.Sizeof(once[0]), intCompareFunc); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	twice := cloneInts(once)
	if err := PMergeSort(unsafe.Pointer(&twice[0]), len(twice), unsafe.Sizeof(twice[0]), intCompareFunc); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for i := range once {
		if once[i] != twice[i] {
			t.Fatalf("sorting a sorted slice again changed it: %v vs %v", once, twice)
		}
	}
}

func TestStabilityAcrossEntryPoints(t *testing.T) {
	rng := rand.New(rand.NewSource(2024))
	for trial := 0; trial < 50; trial++ {
		n := rng.Intn(400)
		if n < 2 {
			continue
		}
		vals := newTagged(rng, n, 6)
		sym := append([]taggedInt(nil), vals...)
		wrap := append([]taggedInt(nil), vals...)
		cmp := func(a, b unsafe.Pointer) int {
			x, y := (*taggedInt)(a), (*taggedInt)(b)
			return intLess(x.val, y.val)
		}
		if err := PMergeSort(unsafe.Pointer(&vals[0]), n, unsafe.Sizeof(vals[0]), cmp); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		isStableSorted(t, vals)

		SymMergeSort(unsafe.Pointer(&sym[0]), n, unsafe.Sizeof(sym[0]), cmp)
		isStableSorted(t, sym)

		wsort := func(base unsafe.Pointer, m int, _ uintptr, _ CompareFuncR, _ unsafe.Pointer) {
			s := unsafe.Slice((*taggedInt)(base), m)
			sort.SliceStable(s, func(i, j int) bool { return s[i].val < s[j].val })
		}
		if err := WrapMergeSort(unsafe.Pointer(&wrap[0]), n, unsafe.Sizeof(wrap[0]), cmp, wsort); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		isStableSorted(t, wrap)
	}
}

// TestReentrantCallsDoNotRace exercises the _r variants concurrently with
// distinct thunks, the scenario §8 calls out for reentrancy: no shared
// package-level state may leak between concurrent calls.
func TestReentrantCallsDoNotRace(t *testing.T) {
	var wg sync.WaitGroup
	for g := 0; g < 8; g++ {
		g := g
		wg.Add(1)
		go func() {
			defer wg.Done()
			rng := rand.New(rand.NewSource(int64(g)))
			vals := randomInts(rng, 200, 1000)
			offset := g * 1000
			thunk := unsafe.Pointer(&offset)
			cmp := func(thunk unsafe.Pointer, a, b unsafe.Pointer) int {
				off := *(*int)(thunk)
				x, y := *(*int)(a)+off, *(*int)(b)+off
				return intLess(x, y)
			}
			if err := PMergeSortR(unsafe.Pointer(&vals[0]), len(vals), unsafe.Sizeof(vals[0]), cmp, thunk); err != nil {
				t.Errorf("goroutine %d: unexpected error: %v", g, err)
				return
			}
			if !isSorted(vals) {
				t.Errorf("goroutine %d: not sorted: %v", g, vals)
			}
		}()
	}
	wg.Wait()
}

func TestWrapMergeSortRejectsNilWsort(t *testing.T) {
	vals := []int{2, 1}
	err := WrapMergeSort(unsafe.Pointer(&vals[0]), len(vals), unsafe.Sizeof(vals[0]), intCompareFunc, nil)
	if err != ErrInvalidInput {
		t.Fatalf("got %v, want ErrInvalidInput", err)
	}
}

func TestAllocFailurePropagatesThroughPMergeSort(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	vals := randomInts(rng, 500, 1000)
	alloc := &FaultAllocator{FailAfter: 0}
	err := PMergeSort(unsafe.Pointer(&vals[0]), len(vals), unsafe.Sizeof(vals[0]), intCompareFunc, WithAllocator(alloc))
	if err == nil {
		t.Fatal("expected an allocation failure error")
	}
	var serr *SortError
	if !asSortError(err, &serr) {
		t.Fatalf("got %v (%T), want *SortError", err, err)
	}
	if serr.Phase != PhaseMerge {
		t.Fatalf("got phase %v, want %v", serr.Phase, PhaseMerge)
	}
}

func asSortError(err error, target **SortError) bool {
	se, ok := err.(*SortError)
	if ok {
		*target = se
	}
	return ok
}
