package brush

// Params is an immutable snapshot of brush configuration, resolved once
// per stroke. Tools copy it at gesture start, so changing the host's
// configuration mid-stroke never affects the stroke in flight.
type Params struct {
	// Size is the brush diameter in pixels.
	Size float64

	// Hardness controls the width of the soft edge, 0-100.
	// 100 produces a hard circle with no falloff.
	Hardness float64

	// Opacity is the base stamp opacity, 0-1.
	Opacity float64

	// Flow is the base paint flow, 0-1. Effective stamp strength is
	// Opacity * Flow.
	Flow float64

	// SpacingPct is the distance between consecutive stamps as a
	// percent of Size. Values at or below zero stamp continuously.
	SpacingPct float64

	// JitterPct scatters stamp centers within JitterPct/100*Size of the
	// scheduled point. Zero disables jitter.
	JitterPct float64

	// Smoothing is the path stabilizer strength, 0-100.
	// Zero is pass-through.
	Smoothing float64

	// PressureSize, PressureOpacity and PressureFlow independently
	// enable pressure dynamics for the corresponding parameter.
	PressureSize    bool
	PressureOpacity bool
	PressureFlow    bool

	// Curve is the pressure response curve.
	Curve Curve

	// Color is the paint color used by drawing tools.
	Color RGBA
}

// DefaultParams returns the default brush configuration:
// a 10px, 50%-hardness, fully opaque black brush with 25% spacing
// and no pressure dynamics.
func DefaultParams() Params {
	return Params{
		Size:       10,
		Hardness:   50,
		Opacity:    1,
		Flow:       1,
		SpacingPct: 25,
		Color:      Black,
	}
}

// Normalize returns a copy of the parameters with every field clamped
// to its documented range. Tools call it once per stroke so the engine
// never sees out-of-range configuration.
func (pr Params) Normalize() Params {
	if pr.Size < 1 {
		pr.Size = 1
	}
	pr.Hardness = clampRange(pr.Hardness, 0, 100)
	pr.Opacity = clamp01(pr.Opacity)
	pr.Flow = clamp01(pr.Flow)
	if pr.SpacingPct < 0 {
		pr.SpacingPct = 0
	}
	if pr.JitterPct < 0 {
		pr.JitterPct = 0
	}
	pr.Smoothing = clampRange(pr.Smoothing, 0, 100)
	return pr
}

// clampRange restricts a value to [lo, hi].
func clampRange(x, lo, hi float64) float64 {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}

// Config supplies a read-only Params snapshot per stroke. Hosts that
// let the user edit brush settings between gestures implement Config;
// the active tool re-reads it at every gesture start.
type Config interface {
	// BrushParams returns the current brush configuration.
	BrushParams() Params
}

// StaticConfig is a Config that always returns the same parameters.
type StaticConfig struct {
	Params Params
}

// BrushParams implements Config.
func (c StaticConfig) BrushParams() Params { return c.Params }
