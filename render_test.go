package brush

import "testing"

func TestRenderThrottleCoalesces(t *testing.T) {
	renders := 0
	throttle := NewRenderThrottle(func() { renders++ })

	for i := 0; i < 20; i++ {
		throttle.Invalidate()
	}
	throttle.Flush()

	if renders != 1 {
		t.Errorf("renders = %d after 20 invalidations and one flush, want 1", renders)
	}
}

func TestRenderThrottleIdleFlush(t *testing.T) {
	renders := 0
	throttle := NewRenderThrottle(func() { renders++ })

	throttle.Flush()
	throttle.Flush()
	if renders != 0 {
		t.Errorf("renders = %d with nothing pending, want 0", renders)
	}
}

func TestRenderThrottleNeverDrops(t *testing.T) {
	renders := 0
	throttle := NewRenderThrottle(func() { renders++ })

	// A pending invalidation survives idle frames until flushed.
	throttle.Invalidate()
	if !throttle.Pending() {
		t.Fatal("invalidation not pending")
	}
	throttle.Flush()
	if throttle.Pending() {
		t.Error("still pending after flush")
	}

	throttle.Invalidate()
	throttle.Flush()
	if renders != 2 {
		t.Errorf("renders = %d, want one per flushed invalidation", renders)
	}
}

func TestRenderThrottlePerFrame(t *testing.T) {
	renders := 0
	throttle := NewRenderThrottle(func() { renders++ })

	// Three frames with work, one idle frame.
	for frame := 0; frame < 3; frame++ {
		throttle.Invalidate()
		throttle.Invalidate()
		throttle.Flush()
	}
	throttle.Flush()

	if renders != 3 {
		t.Errorf("renders = %d over 3 busy frames, want 3", renders)
	}
	if throttle.Flushes() != 3 {
		t.Errorf("Flushes = %d, want 3", throttle.Flushes())
	}
}
