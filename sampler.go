package brush

import "math"

// SampleMode selects how sampled source pixels are blended into the
// destination region.
type SampleMode uint8

const (
	// SampleClone copies source pixels, weighting the written alpha by
	// the stamp strength.
	SampleClone SampleMode = iota

	// SampleHeal pulls destination color toward the source while keeping
	// part of the destination's local texture.
	SampleHeal
)

// String returns the mode name.
func (m SampleMode) String() string {
	switch m {
	case SampleClone:
		return "clone"
	case SampleHeal:
		return "heal"
	default:
		return "unknown"
	}
}

// healTextureStrength is the fixed fraction of the destination's local
// texture preserved by a heal stamp. It is a heuristic coefficient, not
// a gradient-domain solve.
const healTextureStrength = 0.7

// Sampler maintains the clone/heal source anchor: a source point plus a
// running offset vector (destination - source). Once a stroke
// establishes the offset, every later stamp samples at a constant
// relative displacement from its destination, so the sampled imagery
// tracks the hand instead of smearing a fixed point.
//
// The anchor survives across gestures; strokes after the first keep
// sampling at the displacement established when painting began.
type Sampler struct {
	source    Point
	offset    Point
	hasSource bool
	anchored  bool
}

// NewSampler creates a sampler with no source set.
func NewSampler() *Sampler {
	return &Sampler{}
}

// SetSource anchors the source at p and clears the offset. The next
// painting stamp re-establishes the displacement from its destination.
// A source-set gesture never paints.
func (s *Sampler) SetSource(p Point) {
	s.source = p
	s.offset = Point{}
	s.hasSource = true
	s.anchored = false
}

// EnsureSource defaults the source to p when no source was ever set,
// so a stroke without an explicit source clones from where it starts.
func (s *Sampler) EnsureSource(p Point) {
	if !s.hasSource {
		s.SetSource(p)
	}
}

// HasSource reports whether a source point has been set.
func (s *Sampler) HasSource() bool { return s.hasSource }

// Source returns the current source point.
func (s *Sampler) Source() Point { return s.source }

// Offset returns the current (destination - source) displacement.
func (s *Sampler) Offset() Point { return s.offset }

// samplePoint returns the source point for a stamp at destination d and
// updates the offset. The first stamp after SetSource samples the
// source itself and fixes offset = d - source; every later stamp
// samples d - offset, keeping d minus the sampled point constant.
func (s *Sampler) samplePoint(d Point) Point {
	if !s.anchored {
		s.offset = d.Sub(s.source)
		s.anchored = true
		return s.source
	}
	sample := d.Sub(s.offset)
	s.offset = d.Sub(sample)
	return sample
}

// Stamp reads a source region anchored by the sampler, blends it with
// the destination region centered on d, and writes the result back.
// Both regions clip symmetrically to the surface bounds; if the overlap
// collapses to zero area the stamp is a silent no-op.
func (s *Sampler) Stamp(dst Surface, d Point, size, strength float64, mode SampleMode) error {
	sample := s.samplePoint(d)
	strength = clamp01(strength)
	if strength <= 0 {
		return nil
	}

	srcFp := RegionAround(sample, size)
	dstFp := RegionAround(d, size)

	// The displacement between the two footprints in integer texels.
	vx := dstFp.X - srcFp.X
	vy := dstFp.Y - srcFp.Y

	w, h := dst.Width(), dst.Height()

	// Clip both regions so they keep corresponding texel-for-texel:
	// the destination clip intersected with the source clip shifted
	// into destination space.
	srcClip := srcFp.Clamp(w, h)
	shifted := Region{X: srcClip.X + vx, Y: srcClip.Y + vy, W: srcClip.W, H: srcClip.H}
	dstR := dstFp.Clamp(w, h).Intersect(shifted)
	if dstR.Empty() {
		return nil
	}
	srcR := Region{X: dstR.X - vx, Y: dstR.Y - vy, W: dstR.W, H: dstR.H}

	srcBuf, err := dst.GetRegion(srcR)
	if err != nil {
		return err
	}
	dstBuf, err := dst.GetRegion(dstR)
	if err != nil {
		return err
	}
	if srcBuf == nil || dstBuf == nil {
		return nil
	}

	for y := 0; y < dstR.H; y++ {
		srow := srcBuf.Pix[y*srcBuf.Stride:]
		drow := dstBuf.Pix[y*dstBuf.Stride:]
		for x := 0; x < dstR.W; x++ {
			i := x * 4
			switch mode {
			case SampleClone:
				cloneTexel(srow[i:i+4:i+4], drow[i:i+4:i+4], strength)
			case SampleHeal:
				healTexel(srow[i:i+4:i+4], drow[i:i+4:i+4], strength)
			}
		}
	}

	return dst.PutRegion(dstBuf, dstR.X, dstR.Y)
}

// cloneTexel copies the source texel, weighting the written alpha by
// strength.
func cloneTexel(src, dst []uint8, strength float64) {
	dst[0] = src[0]
	dst[1] = src[1]
	dst[2] = src[2]
	dst[3] = uint8(math.Round(float64(src[3]) * strength))
}

// healTexel blends the source texel toward the destination's local
// texture: the color difference is scaled by healTextureStrength and
// added back onto the source color, then the result is mixed with the
// destination by strength.
func healTexel(src, dst []uint8, strength float64) {
	for c := 0; c < 3; c++ {
		sc := float64(src[c])
		dc := float64(dst[c])
		healed := sc + (dc-sc)*healTextureStrength
		out := dc + (healed-dc)*strength
		dst[c] = uint8(clamp255(math.Round(out)))
	}

	sa := float64(src[3])
	da := float64(dst[3])
	healedA := math.Max(sa, da)
	outA := da + (healedA-da)*strength
	dst[3] = uint8(clamp255(math.Round(outA)))
}
