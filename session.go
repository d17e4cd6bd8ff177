package brush

import (
	"math"
	"math/rand"
)

// strokeSession is the per-gesture state threading the pipeline together
// from pointer-down to pointer-up. A tool creates one on InputStart and
// discards it on InputEnd (or on an aborted gesture); sessions are never
// shared across gestures, so a failure mid-stroke cannot leak state into
// the next stroke.
type strokeSession struct {
	params    Params
	spacing   float64
	stab      *Stabilizer
	sched     *Scheduler
	last      Point // last smoothed point
	lastStamp Point
	pressure  float64
	rng       *rand.Rand
}

// newStrokeSession snapshots the parameters and prepares the filters.
// seed fixes the jitter sequence; 0 leaves jitter seeded per session.
func newStrokeSession(params Params, seed int64) *strokeSession {
	if seed == 0 {
		seed = rand.Int63()
	}
	return &strokeSession{
		params:  params,
		spacing: SpacingDistance(params.Size, params.SpacingPct),
		stab:    NewStabilizer(params.Smoothing),
		sched:   NewScheduler(),
		rng:     rand.New(rand.NewSource(seed)),
	}
}

// begin processes the pointer-down sample and returns the point for the
// initial stamp. The stabilizer is reset first, so the stroke begins
// exactly where the user touched down.
func (s *strokeSession) begin(in InputSample) Point {
	s.pressure = NormalizePressure(in)
	s.stab.Reset()
	s.sched.Reset()
	p := s.stab.Process(in.Point)
	s.last = p
	s.lastStamp = p
	return p
}

// move processes a pointer-move sample and returns the stamp points
// scheduled along the smoothed segment, jitter applied.
func (s *strokeSession) move(in InputSample) []Point {
	s.pressure = NormalizePressure(in)
	p := s.stab.Process(in.Point)
	points := s.sched.Schedule(s.last, p, s.spacing, s.params.Size)
	s.last = p
	if n := len(points); n > 0 {
		s.lastStamp = points[n-1]
		for i := range points {
			points[i] = s.jitter(points[i])
		}
	}
	return points
}

// jitter scatters a stamp center within JitterPct/100 * Size of the
// scheduled point. Zero jitter returns the point unchanged.
func (s *strokeSession) jitter(p Point) Point {
	if s.params.JitterPct <= 0 {
		return p
	}
	maxR := s.params.JitterPct / 100 * s.params.Size
	ang := s.rng.Float64() * 2 * math.Pi
	r := s.rng.Float64() * maxR
	return Pt(p.X+math.Cos(ang)*r, p.Y+math.Sin(ang)*r)
}
