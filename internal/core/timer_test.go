package core

import (
	"testing"
	"time"
)

func TestFixedStepCadence(t *testing.T) {
	clock := time.Unix(0, 0)
	fs := NewFixedStep(10)
	fs.now = func() time.Time { return clock }

	if !fs.ShouldStep() {
		t.Fatal("first poll should step immediately")
	}
	clock = clock.Add(50 * time.Millisecond)
	if fs.ShouldStep() {
		t.Fatal("half a step elapsed, expected no tick")
	}
	clock = clock.Add(50 * time.Millisecond)
	if !fs.ShouldStep() {
		t.Fatal("a full step elapsed, expected a tick")
	}
}

func TestFixedStepDropsBacklog(t *testing.T) {
	clock := time.Unix(0, 0)
	fs := NewFixedStep(10)
	fs.now = func() time.Time { return clock }
	fs.ShouldStep()

	clock = clock.Add(time.Second)
	ticks := 0
	for i := 0; i < 20; i++ {
		if fs.ShouldStep() {
			ticks++
		}
	}
	if ticks != 2 {
		t.Fatalf("expected backlog capped at 2 ticks, got %d", ticks)
	}
}

func TestFixedStepDefaultsInvalidRate(t *testing.T) {
	fs := NewFixedStep(0)
	if fs.TPS() != 60 {
		t.Fatalf("expected default 60 TPS, got %d", fs.TPS())
	}
}

func TestFixedStepDueKeepsRateAboveFrameRate(t *testing.T) {
	clock := time.Unix(0, 0)
	fs := NewFixedStep(60)
	fs.now = func() time.Time { return clock }

	steps := 0
	for frame := 0; frame < 30; frame++ {
		steps += fs.Due()
		clock = clock.Add(time.Second / 30)
	}
	if steps < 59 || steps > 60 {
		t.Fatalf("expected about 60 ticks over 30 frames at 60 tps, got %d", steps)
	}
}
