package brush

// RenderThrottle coalesces surface repaints to at most one per frame.
// Tools call Invalidate after every stamp; the host UI loop calls Flush
// once per frame. N invalidations between flushes produce exactly one
// render, always with the latest surface state, and a pending
// invalidation is never dropped: it stays pending until the next Flush.
//
// RenderThrottle is single-threaded, like the rest of the stroke path.
type RenderThrottle struct {
	render  func()
	pending bool
	flushes int
}

// NewRenderThrottle creates a throttle that invokes render on Flush
// when repaints are pending.
func NewRenderThrottle(render func()) *RenderThrottle {
	return &RenderThrottle{render: render}
}

// Invalidate marks the surface as needing a repaint.
func (t *RenderThrottle) Invalidate() {
	t.pending = true
}

// Pending reports whether a repaint is waiting for the next Flush.
func (t *RenderThrottle) Pending() bool {
	return t.pending
}

// Flush fires the render callback if a repaint is pending.
// Call once per UI frame.
func (t *RenderThrottle) Flush() {
	if !t.pending {
		return
	}
	t.pending = false
	t.flushes++
	if t.render != nil {
		t.render()
	}
}

// Flushes returns the number of renders actually fired.
func (t *RenderThrottle) Flushes() int {
	return t.flushes
}
