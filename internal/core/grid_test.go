package core

import "testing"

func TestByteGridBounds(t *testing.T) {
	g := NewByteGrid(4, 3)
	g.Set(3, 2, 7)
	if got := g.At(3, 2); got != 7 {
		t.Fatalf("At(3,2) = %d, expected 7", got)
	}

	g.Set(-1, 0, 9)
	g.Set(4, 0, 9)
	g.Set(0, 3, 9)
	for i, v := range g.Cells() {
		if v == 9 {
			t.Fatalf("out-of-range Set leaked into index %d", i)
		}
	}
	if got := g.At(10, 10); got != 0 {
		t.Fatalf("out-of-range At = %d, expected 0", got)
	}
}

func TestByteGridClampsDimensions(t *testing.T) {
	g := NewByteGrid(0, -5)
	if g.W != 1 || g.H != 1 || len(g.Cells()) != 1 {
		t.Fatalf("expected 1x1 grid, got %dx%d with %d cells", g.W, g.H, len(g.Cells()))
	}
}

func TestByteGridCopyFrom(t *testing.T) {
	src := NewByteGrid(2, 2)
	src.Fill(3)
	dst := NewByteGrid(2, 2)
	if !dst.CopyFrom(src) {
		t.Fatal("CopyFrom with matching dimensions failed")
	}
	if dst.At(1, 1) != 3 {
		t.Fatalf("expected copied value 3, got %d", dst.At(1, 1))
	}
	if dst.CopyFrom(NewByteGrid(3, 2)) {
		t.Fatal("CopyFrom should reject mismatched dimensions")
	}
}

func TestByteGridWrap(t *testing.T) {
	g := NewByteGrid(5, 4)
	x, y := g.Wrap(-1, 4)
	if x != 4 || y != 0 {
		t.Fatalf("Wrap(-1,4) = (%d,%d), expected (4,0)", x, y)
	}
}
