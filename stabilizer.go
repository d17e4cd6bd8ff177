package brush

// Stabilizer is a small smoothing filter that suppresses hand jitter in
// the pointer path. It is an exponential follow filter: each processed
// point moves a fixed fraction of the way from the previous smoothed
// point toward the raw input. Higher strength means a smaller fraction
// and therefore more lag.
//
// The first Process call after Reset returns its input unchanged, so a
// stroke always begins exactly where the user touched down.
type Stabilizer struct {
	strength float64
	last     Point
	primed   bool
}

// minFollow keeps the filter responsive at full strength. Without a
// floor, strength 100 would freeze the smoothed point in place.
const minFollow = 0.1

// NewStabilizer creates a stabilizer with the given strength (0-100).
// Strength 0 is pass-through.
func NewStabilizer(strength float64) *Stabilizer {
	return &Stabilizer{strength: clampRange(strength, 0, 100)}
}

// Strength returns the configured smoothing strength.
func (s *Stabilizer) Strength() float64 { return s.strength }

// Reset clears the internal lag state. Call at gesture start.
func (s *Stabilizer) Reset() {
	s.primed = false
}

// Process returns a smoothed point for the given raw input point.
func (s *Stabilizer) Process(p Point) Point {
	if !s.primed {
		s.primed = true
		s.last = p
		return p
	}
	follow := 1 - s.strength/100*(1-minFollow)
	s.last = s.last.Lerp(p, follow)
	return s.last
}
