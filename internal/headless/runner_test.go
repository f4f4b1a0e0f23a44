package headless

import (
	"context"
	"errors"
	"testing"

	"falling-sand/internal/config"
	"falling-sand/internal/sims/sand"
)

func columnScene() *config.Scene {
	return &config.Scene{
		Name:   "column",
		Width:  5,
		Height: 6,
		Placements: []config.Placement{
			{Material: "sand", X: 2, Y: 0, H: 3},
			{Material: "water", X: 0, Y: 0},
		},
	}
}

func TestRunSettlesAndConserves(t *testing.T) {
	opts := Options{World: sand.DefaultConfig(), Scene: columnScene(), Ticks: 40}
	res, err := Run(context.Background(), opts)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if res.Width != 5 || res.Height != 6 {
		t.Fatalf("scene size not applied: %dx%d", res.Width, res.Height)
	}
	if !res.Conserved() {
		t.Fatalf("counts changed: %v -> %v", res.Initial, res.Final)
	}
	if res.Initial[sand.Sand] != 3 || res.Initial[sand.Water] != 1 {
		t.Fatalf("unexpected initial counts %v", res.Initial)
	}
	if res.SettledAt <= 0 || res.SettledAt >= res.Ticks {
		t.Fatalf("expected the scene to settle inside the run, got %d", res.SettledAt)
	}
	for y := 0; y < res.Height-1; y++ {
		for x := 0; x < res.Width; x++ {
			if res.Grid.At(x, y) == sand.Sand && res.Grid.At(x, y+1) == sand.Air {
				t.Fatalf("sand floating at (%d,%d)\n%s", x, y, RenderASCII(res.Grid))
			}
		}
	}
}

func TestRunStillMoving(t *testing.T) {
	opts := Options{World: sand.DefaultConfig(), Scene: columnScene(), Ticks: 1}
	res, err := Run(context.Background(), opts)
	if err != nil {
		t.Fatal(err)
	}
	if res.SettledAt != -1 {
		t.Fatalf("expected -1 for a run cut short, got %d", res.SettledAt)
	}
}

func TestRunDeterministic(t *testing.T) {
	cfg := sand.DefaultConfig()
	cfg.Seed = 99
	s, err := config.LoadScene("hourglass")
	if err != nil {
		t.Fatal(err)
	}
	opts := Options{World: cfg, Scene: &s, Ticks: 60}
	a, err := Run(context.Background(), opts)
	if err != nil {
		t.Fatal(err)
	}
	b, err := Run(context.Background(), opts)
	if err != nil {
		t.Fatal(err)
	}
	if RenderASCII(a.Grid) != RenderASCII(b.Grid) {
		t.Fatal("same seed produced different grids")
	}
}

func TestRunCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := Run(ctx, Options{World: sand.DefaultConfig(), Ticks: 10})
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}

func TestRenderASCII(t *testing.T) {
	g := sand.NewGrid(3, 3)
	g.Set(0, 0, sand.Sand)
	g.Set(1, 1, sand.Water)
	g.Set(2, 2, sand.Sand)
	want := "#..\n.~.\n..#\n"
	if out := RenderASCII(g); out != want {
		t.Fatalf("got %q want %q", out, want)
	}
	if Glyph(sand.Material(200)) != '?' {
		t.Fatal("unknown material should render as ?")
	}
}
