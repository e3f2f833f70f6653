package pmergesort

import (
	"math/rand"
	"testing"
)

func TestRotateBlockBothShapes(t *testing.T) {
	for _, tmpRot := range []int{8, 1} { // 1 forces the three-reversal path on every non-empty rotation
		for _, n := range []int{2, 3, 7, 20, 100} {
			for split := 1; split < n; split++ {
				vals := make([]int, n)
				for i := range vals {
					vals[i] = i
				}
				c := newIntContext(t, vals, WithTmpRot(tmpRot))
				rotateBlock(c, 0, split, n)

				want := make([]int, 0, n)
				for i := split; i < n; i++ {
					want = append(want, i)
				}
				for i := 0; i < split; i++ {
					want = append(want, i)
				}
				for i := range vals {
					if vals[i] != want[i] {
						t.Fatalf("tmpRot=%d n=%d split=%d: got %v want %v", tmpRot, n, split, vals, want)
					}
				}
			}
		}
	}
}

func TestRotateBlockDegenerate(t *testing.T) {
	vals := []int{1, 2, 3}
	c := newIntContext(t, vals)
	rotateBlock(c, 0, 0, 3)
	if vals[0] != 1 || vals[1] != 2 || vals[2] != 3 {
		t.Fatalf("empty u-side should be a no-op, got %v", vals)
	}
	rotateBlock(c, 0, 3, 3)
	if vals[0] != 1 || vals[1] != 2 || vals[2] != 3 {
		t.Fatalf("empty v-side should be a no-op, got %v", vals)
	}
}

func TestRotateBlockRandom(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	for trial := 0; trial < 200; trial++ {
		n := 1 + rng.Intn(50)
		split := rng.Intn(n + 1)
		vals := randomInts(rng, n, 1000)
		before := cloneInts(vals)
		c := newIntContext(t, vals, WithTmpRot(1+rng.Intn(12)))
		rotateBlock(c, 0, split, n)

		want := append(append([]int{}, before[split:]...), before[:split]...)
		for i := range vals {
			if vals[i] != want[i] {
				t.Fatalf("trial %d: got %v want %v", trial, vals, want)
			}
		}
	}
}
