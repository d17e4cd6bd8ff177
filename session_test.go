package brush

import (
	"math"
	"testing"
)

func TestSessionBeginReturnsTouchPoint(t *testing.T) {
	p := DefaultParams()
	p.Smoothing = 90
	s := newStrokeSession(p, 1)

	// Even with heavy smoothing, the stroke starts exactly where the
	// pointer went down.
	start := Pt(33.3, 44.4)
	if got := s.begin(InputSample{Point: start, Pressure: PressureNeutral, Device: DevicePen}); got != start {
		t.Errorf("begin = %v, want %v", got, start)
	}
}

func TestSessionMoveSchedulesStamps(t *testing.T) {
	p := DefaultParams()
	p.Size = 20
	p.SpacingPct = 25
	s := newStrokeSession(p, 1)

	s.begin(Sample(0, 0))
	points := s.move(Sample(50, 0))
	if len(points) != 10 {
		t.Fatalf("move emitted %d stamps, want 10", len(points))
	}
}

func TestSessionTracksPressure(t *testing.T) {
	s := newStrokeSession(DefaultParams(), 1)
	s.begin(PenSample(0, 0, 0.3))
	if s.pressure != 0.3 {
		t.Errorf("pressure after begin = %v, want 0.3", s.pressure)
	}
	s.move(PenSample(5, 0, 0.9))
	if s.pressure != 0.9 {
		t.Errorf("pressure after move = %v, want 0.9", s.pressure)
	}
}

func TestSessionJitterDeterministic(t *testing.T) {
	p := DefaultParams()
	p.JitterPct = 50
	p.Size = 10

	a := newStrokeSession(p, 42)
	b := newStrokeSession(p, 42)
	for i := 0; i < 5; i++ {
		pa := a.jitter(Pt(20, 20))
		pb := b.jitter(Pt(20, 20))
		if pa != pb {
			t.Fatalf("jitter diverged with identical seeds: %v vs %v", pa, pb)
		}
	}
}

func TestSessionJitterBounded(t *testing.T) {
	p := DefaultParams()
	p.JitterPct = 50
	p.Size = 10
	s := newStrokeSession(p, 7)

	maxR := p.JitterPct / 100 * p.Size
	for i := 0; i < 100; i++ {
		j := s.jitter(Pt(0, 0))
		if d := math.Hypot(j.X, j.Y); d > maxR+1e-9 {
			t.Fatalf("jittered point %v is %v from center, bound is %v", j, d, maxR)
		}
	}
}

func TestSessionNoJitterPassThrough(t *testing.T) {
	s := newStrokeSession(DefaultParams(), 1)
	if got := s.jitter(Pt(12, 34)); got != Pt(12, 34) {
		t.Errorf("jitter with JitterPct 0 moved the point to %v", got)
	}
}
