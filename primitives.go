package pmergesort

import "unsafe"

// CompareFunc is a three-way strict weak order over two elements addressed
// by pointer into the array under sort: negative if a sorts before b, zero
// if equivalent, positive if a sorts after b.
type CompareFunc func(a, b unsafe.Pointer) int

// CompareFuncR is the reentrant comparator shape used internally and by the
// _r public entry points: it additionally receives an opaque thunk, so a
// caller needing per-call state doesn't need package-level globals (§5).
type CompareFuncR func(thunk unsafe.Pointer, a, b unsafe.Pointer) int

func wrapCompare(cmp CompareFunc) CompareFuncR {
	return func(_ unsafe.Pointer, a, b unsafe.Pointer) int { return cmp(a, b) }
}

// swapWord4/8/16 move a fixed-width element a whole machine word (or two)
// at a time instead of byte-at-a-time; hasAVX2 gates their use to hardware
// known to handle unaligned wide loads/stores efficiently (§4.6). Plain Go
// memory operations, not actual SIMD instructions — the AVX2 check is a
// proxy for "this is a modern enough amd64 to make the wider move a win".
func swapWord4(a, b unsafe.Pointer) {
	pa, pb := (*uint32)(a), (*uint32)(b)
	*pa, *pb = *pb, *pa
}

func swapWord8(a, b unsafe.Pointer) {
	pa, pb := (*uint64)(a), (*uint64)(b)
	*pa, *pb = *pb, *pa
}

func swapWord16(a, b unsafe.Pointer) {
	type word16 struct{ lo, hi uint64 }
	pa, pb := (*word16)(a), (*word16)(b)
	*pa, *pb = *pb, *pa
}

// elemPtr returns the address of element i in an array starting at base
// with element size sz.
func elemPtr(base unsafe.Pointer, i int, sz uintptr) unsafe.Pointer {
	return unsafe.Add(base, uintptr(i)*sz)
}

// swapRegion exchanges the sz bytes at a and b. It never aliases: callers
// must not pass overlapping a, b ranges.
func swapRegion(a, b unsafe.Pointer, sz uintptr) {
	if hasAVX2() {
		switch sz {
		case 4:
			swapWord4(a, b)
			return
		case 8:
			swapWord8(a, b)
			return
		case 16:
			swapWord16(a, b)
			return
		}
	}
	pa := unsafe.Slice((*byte)(a), sz)
	pb := unsafe.Slice((*byte)(b), sz)
	for i := uintptr(0); i < sz; i++ {
		pa[i], pb[i] = pb[i], pa[i]
	}
}

// copyRegion copies sz bytes from src to dst; copy's documented overlap
// handling makes this safe whether or not the ranges alias.
func copyRegion(dst, src unsafe.Pointer, sz uintptr) {
	pdst := unsafe.Slice((*byte)(dst), sz)
	psrc := unsafe.Slice((*byte)(src), sz)
	copy(pdst, psrc)
}

// swapIdx exchanges elements i and j of the array described by c.
func (c *context) swapIdx(i, j int) {
	if i == j {
		return
	}
	swapRegion(elemPtr(c.base, i, c.sz), elemPtr(c.base, j, c.sz), c.sz)
}

// cmpIdx compares elements i and j using the call's comparator.
func (c *context) cmpIdx(i, j int) int {
	return c.cmp(c.thunk, elemPtr(c.base, i, c.sz), elemPtr(c.base, j, c.sz))
}

// at returns the address of element i.
func (c *context) at(i int) unsafe.Pointer {
	return elemPtr(c.base, i, c.sz)
}

// bufAt returns the address of element idx within a raw byte buffer whose
// elements are sz bytes wide, for merge kernels that stage elements in a
// scratch []byte before writing them back through the array.
func bufAt(buf []byte, idx int, sz uintptr) unsafe.Pointer {
	if len(buf) == 0 {
		return nil
	}
	return unsafe.Add(unsafe.Pointer(&buf[0]), uintptr(idx)*sz)
}

// reverseRange reverses the elements in [lo, hi).
func reverseRange(c *context, lo, hi int) {
	for lo < hi-1 {
		c.swapIdx(lo, hi-1)
		lo++
		hi--
	}
}
