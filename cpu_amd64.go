//go:build amd64

package pmergesort

import "golang.org/x/sys/cpu"

// hasAVX2 gates the word-at-a-time 4/8/16-byte specializations in
// primitives.go. It is a performance choice only: every path it selects
// between produces the same observable result (§4.6).
func hasAVX2() bool {
	return cpu.X86.HasAVX2
}
