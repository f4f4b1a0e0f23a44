package core

import "testing"

func TestRNGDirectionDeterministic(t *testing.T) {
	a := NewRNG(7)
	b := NewRNG(7)
	left, right := 0, 0
	for i := 0; i < 1000; i++ {
		da, db := a.Direction(), b.Direction()
		if da != db {
			t.Fatalf("draw %d diverged: %d vs %d", i, da, db)
		}
		switch da {
		case -1:
			left++
		case 1:
			right++
		default:
			t.Fatalf("Direction returned %d", da)
		}
	}
	if left == 0 || right == 0 {
		t.Fatalf("expected both directions, got left=%d right=%d", left, right)
	}
}

func TestRNGReseedRepeatsSequence(t *testing.T) {
	r := NewRNG(3)
	first := []int{r.IntN(100), r.IntN(100), r.IntN(100)}
	r.Reseed(3)
	for i, want := range first {
		if got := r.IntN(100); got != want {
			t.Fatalf("draw %d after reseed = %d, expected %d", i, got, want)
		}
	}
	for i := 0; i < 100; i++ {
		if f := r.Float64(); f < 0 || f >= 1 {
			t.Fatalf("Float64 out of range: %v", f)
		}
	}
}
