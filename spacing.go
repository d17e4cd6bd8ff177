package brush

import "math"

// minSpacing is the smallest usable spacing distance in pixels.
// It keeps tiny brushes at low spacing percentages from scheduling an
// unbounded number of stamps.
const minSpacing = 0.1

// continuousSpacing is the threshold at or below which the scheduler
// switches to continuous stamping. At such low spacing the distance
// accumulator would under-stamp on sub-pixel segments, so a denser
// fallback set of points guarantees coverage instead.
const continuousSpacing = 0.5

// SpacingDistance converts a brush size and spacing percentage into a
// pixel distance between consecutive stamps, floored at minSpacing.
func SpacingDistance(size, spacingPct float64) float64 {
	return math.Max(minSpacing, size*spacingPct/100)
}

// Scheduler decides how many stamps to place, and where, between the
// previous and current smoothed path points. It carries the distance
// accumulated since the last emitted stamp across segments, so stamp
// spacing stays even through a polyline of short segments.
type Scheduler struct {
	accumulated float64
}

// NewScheduler creates a scheduler with an empty accumulator.
func NewScheduler() *Scheduler {
	return &Scheduler{}
}

// Reset clears the accumulated distance. Call at gesture start.
func (s *Scheduler) Reset() {
	s.accumulated = 0
}

// Accumulated returns the distance carried since the last stamp.
func (s *Scheduler) Accumulated() float64 {
	return s.accumulated
}

// Schedule returns the stamp points to place along the segment from
// last to next for a brush of the given size and spacing distance.
//
// When the accumulated distance reaches spacing, ceil(accumulated /
// spacing) evenly spaced points are emitted along the segment and the
// accumulator resets. Below the continuous-spacing threshold a denser
// fallback emits at least one point per segment without resetting the
// accumulator, so thin fast strokes never show gaps.
func (s *Scheduler) Schedule(last, next Point, spacing, size float64) []Point {
	segLen := last.Distance(next)
	s.accumulated += segLen

	switch {
	case s.accumulated >= spacing:
		steps := int(math.Ceil(s.accumulated / spacing))
		points := make([]Point, 0, steps)
		for i := 1; i <= steps; i++ {
			t := float64(i) / float64(steps)
			points = append(points, last.Lerp(next, t))
		}
		s.accumulated = 0
		return points

	case spacing <= continuousSpacing:
		step := math.Max(1, size/3)
		steps := int(math.Max(1, math.Ceil(segLen/step)))
		points := make([]Point, 0, steps)
		for i := 1; i <= steps; i++ {
			t := float64(i) / float64(steps)
			points = append(points, last.Lerp(next, t))
		}
		return points

	default:
		return nil
	}
}
