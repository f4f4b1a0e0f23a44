package life

import "testing"

func expectAlive(t *testing.T, l *Life, step string, alive map[[2]int]bool) {
	t.Helper()
	size := l.Size()
	for y := 0; y < size.H; y++ {
		for x := 0; x < size.W; x++ {
			got := l.cur.At(x, y) == 1
			if got != alive[[2]int{x, y}] {
				t.Fatalf("%s: cell (%d,%d) alive=%v, expected %v", step, x, y, got, !got)
			}
		}
	}
}

func TestBlinkerOscillation(t *testing.T) {
	l := New(5, 5)
	l.Paint(2, 1)
	l.Paint(2, 2)
	l.Paint(2, 3)

	l.Step()
	expectAlive(t, l, "first step", map[[2]int]bool{{1, 2}: true, {2, 2}: true, {3, 2}: true})

	l.Step()
	expectAlive(t, l, "second step", map[[2]int]bool{{2, 1}: true, {2, 2}: true, {2, 3}: true})
}

func TestGliderWrapsAroundEdges(t *testing.T) {
	l := New(6, 6)
	for _, p := range [][2]int{{1, 0}, {2, 1}, {0, 2}, {1, 2}, {2, 2}} {
		l.Paint(p[0], p[1])
	}
	// A glider returns to its shape shifted by (1,1) every four generations;
	// after 24 it has crossed the 6x6 torus back to the start.
	for i := 0; i < 24; i++ {
		l.Step()
	}
	expectAlive(t, l, "after 24 steps", map[[2]int]bool{{1, 0}: true, {2, 1}: true, {0, 2}: true, {1, 2}: true, {2, 2}: true})
}

func TestResetDeterministic(t *testing.T) {
	a, b := New(16, 16), New(16, 16)
	a.Reset(7)
	b.Reset(7)
	alive := 0
	for i, v := range a.Cells() {
		if b.Cells()[i] != v {
			t.Fatalf("reset with equal seeds diverged at %d", i)
		}
		alive += int(v)
	}
	if alive == 0 {
		t.Fatal("expected some live cells at default density")
	}

	a.Clear()
	for _, v := range a.Cells() {
		if v != 0 {
			t.Fatal("Clear left live cells")
		}
	}
}
