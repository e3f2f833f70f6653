// Command pmergesortcli sorts newline-delimited records from stdin (or a
// file) and writes the sorted records to stdout, for exercising the
// library's three drivers from the command line.
//
// Strings are sorted indirectly: the library's raw byte-range primitives
// relocate elements with a plain memory copy, which is only safe for
// pointer-free element types (see generics.go's checkElemType), so this
// demo sorts a pointer-free []int index array instead, using the _r
// comparator's thunk to reach back into the original string slice — the
// same indirection a caller sorting non-POD records would use.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"sort"
	"strconv"
	"unsafe"

	"github.com/geek0x0/pmergesort"
)

func main() {
	driver := flag.String("driver", "pmergesort", "driver to use: symmergesort, pmergesort, wrapmergesort")
	numeric := flag.Bool("numeric", false, "treat each line as a number instead of a string")
	workers := flag.Int("workers", 0, "worker cap (0 = use runtime.NumCPU)")
	flag.Parse()

	var in io.Reader = os.Stdin
	if path := flag.Arg(0); path != "" {
		f, err := os.Open(path)
		if err != nil {
			log.Fatalf("pmergesortcli: %v", err)
		}
		defer f.Close()
		in = f
	}

	lines, err := readLines(in)
	if err != nil {
		log.Fatalf("pmergesortcli: %v", err)
	}

	opts := []pmergesort.Option{pmergesort.WithWorkers(*workers)}

	if *numeric {
		vals, err := toFloats(lines)
		if err != nil {
			log.Fatalf("pmergesortcli: %v", err)
		}
		if err := sortFloats(*driver, vals, opts); err != nil {
			log.Fatalf("pmergesortcli: %v", err)
		}
		for _, v := range vals {
			fmt.Println(strconv.FormatFloat(v, 'g', -1, 64))
		}
		return
	}

	order, err := sortStringIndices(*driver, lines, opts)
	if err != nil {
		log.Fatalf("pmergesortcli: %v", err)
	}
	for _, i := range order {
		fmt.Println(lines[i])
	}
}

func readLines(r io.Reader) ([]string, error) {
	var lines []string
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 64*1024), 1<<20)
	for sc.Scan() {
		lines = append(lines, sc.Text())
	}
	return lines, sc.Err()
}

func toFloats(lines []string) ([]float64, error) {
	vals := make([]float64, len(lines))
	for i, l := range lines {
		v, err := strconv.ParseFloat(l, 64)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", i+1, err)
		}
		vals[i] = v
	}
	return vals, nil
}

func sortFloats(driver string, vals []float64, opts []pmergesort.Option) error {
	less := func(a, b float64) bool { return a < b }
	switch driver {
	case "symmergesort":
		pmergesort.SortStable(vals, less, opts...)
		return nil
	case "wrapmergesort":
		return wrapFloats(vals, opts)
	default:
		return pmergesort.Sort(vals, less, opts...)
	}
}

// wrapFloats demonstrates WrapMergeSort by delegating the per-block
// presort to the standard library's sort.Float64s instead of this
// package's own binsort kernels.
func wrapFloats(vals []float64, opts []pmergesort.Option) error {
	if len(vals) < 2 {
		return nil
	}
	wsort := func(base unsafe.Pointer, n int, sz uintptr, cmp pmergesort.CompareFuncR, thunk unsafe.Pointer) {
		s := unsafe.Slice((*float64)(base), n)
		sort.Float64s(s)
	}
	cmp := func(a, b unsafe.Pointer) int {
		x, y := *(*float64)(a), *(*float64)(b)
		switch {
		case x < y:
			return -1
		case x > y:
			return 1
		default:
			return 0
		}
	}
	return pmergesort.WrapMergeSort(unsafe.Pointer(&vals[0]), len(vals), unsafe.Sizeof(vals[0]), cmp, wsort, opts...)
}

// sortStringIndices returns the permutation of [0, len(lines)) that puts
// lines in ascending order, computed by sorting the indices themselves
// (an []int, safely memmove-able) with a reentrant comparator whose thunk
// points back at lines.
func sortStringIndices(driver string, lines []string, opts []pmergesort.Option) ([]int, error) {
	order := make([]int, len(lines))
	for i := range order {
		order[i] = i
	}
	if len(order) < 2 {
		return order, nil
	}

	thunk := unsafe.Pointer(&lines)
	cmp := func(thunk unsafe.Pointer, a, b unsafe.Pointer) int {
		strs := *(*[]string)(thunk)
		ia, ib := *(*int)(a), *(*int)(b)
		switch {
		case strs[ia] < strs[ib]:
			return -1
		case strs[ia] > strs[ib]:
			return 1
		default:
			return 0
		}
	}

	base := unsafe.Pointer(&order[0])
	n := len(order)
	sz := unsafe.Sizeof(order[0])

	switch driver {
	case "symmergesort":
		pmergesort.SymMergeSortR(base, n, sz, cmp, thunk, opts...)
		return order, nil
	case "wrapmergesort":
		wsort := func(wbase unsafe.Pointer, wn int, wsz uintptr, wcmp pmergesort.CompareFuncR, wthunk unsafe.Pointer) {
			idx := unsafe.Slice((*int)(wbase), wn)
			strs := *(*[]string)(wthunk)
			sort.Slice(idx, func(i, j int) bool { return strs[idx[i]] < strs[idx[j]] })
		}
		return order, pmergesort.WrapMergeSortR(base, n, sz, cmp, thunk, wsort, opts...)
	default:
		return order, pmergesort.PMergeSortR(base, n, sz, cmp, thunk, opts...)
	}
}
