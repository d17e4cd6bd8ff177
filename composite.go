package brush

import (
	"fmt"
	"math"

	"github.com/gogpu/brush/internal/blend"
)

// StampMode selects how a stamp is composited onto the surface.
type StampMode uint8

const (
	// StampDraw alpha-blends the brush color over the destination.
	StampDraw StampMode = iota

	// StampErase subtracts stamp coverage from the destination alpha.
	// Color channels are untouched, so erased pixels can be restored.
	StampErase

	// StampAntiErase restores previously erased destination alpha up to
	// the stamp coverage. It is the inverse of StampErase.
	StampAntiErase
)

// String returns the mode name.
func (m StampMode) String() string {
	switch m {
	case StampDraw:
		return "draw"
	case StampErase:
		return "erase"
	case StampAntiErase:
		return "anti-erase"
	default:
		return "unknown"
	}
}

// Compositor applies paint and erase stamps to a surface. It owns the
// mask cache, so repeated stamps at the same (size, hardness) reuse one
// rasterized mask.
type Compositor struct {
	masks *MaskCache
}

// NewCompositor creates a compositor over the given mask cache.
// A nil cache gets a private cache with the default bound.
func NewCompositor(masks *MaskCache) *Compositor {
	if masks == nil {
		masks = NewMaskCache(0)
	}
	return &Compositor{masks: masks}
}

// Masks returns the compositor's mask cache.
func (c *Compositor) Masks() *MaskCache { return c.masks }

// Stamp composites one brush stamp centered on p. Effective strength is
// opacity * flow * color alpha; a zero-strength stamp, or one whose
// clipped footprint is empty, is a silent no-op.
//
// Tiny (size <= 2) and hard (hardness >= 100) brushes take a fast path
// that computes circle coverage directly instead of rasterizing a mask.
func (c *Compositor) Stamp(dst Surface, p Point, size, hardness, opacity, flow float64, color RGBA, mode StampMode) error {
	if size < 1 {
		size = 1
	}
	strength := clamp01(opacity * flow)
	if mode == StampDraw {
		strength *= clamp01(color.A)
	}
	if strength <= 0 {
		return nil
	}

	footprint := RegionAround(p, size)
	region := footprint.Clamp(dst.Width(), dst.Height())
	if region.Empty() {
		return nil
	}

	// coverage returns stamp coverage in [0, 1] at an absolute surface
	// texel.
	var coverage func(ax, ay int) float64
	if size <= 2 || hardness >= 100 {
		radius := size / 2
		coverage = func(ax, ay int) float64 {
			return circleCoverage(float64(ax)+0.5, float64(ay)+0.5, p.X, p.Y, radius)
		}
	} else {
		mask, err := c.masks.Get(size, hardness)
		if err != nil {
			return fmt.Errorf("build stamp mask: %w", err)
		}
		ox, oy := footprint.X, footprint.Y
		coverage = func(ax, ay int) float64 {
			return float64(mask.At(ax-ox, ay-oy)) / 255
		}
	}

	buf, err := dst.GetRegion(region)
	if err != nil {
		return err
	}
	if buf == nil {
		return nil
	}

	nc := color.NRGBA()
	for y := 0; y < region.H; y++ {
		row := buf.Pix[y*buf.Stride:]
		for x := 0; x < region.W; x++ {
			a := coverage(region.X+x, region.Y+y) * strength
			if a <= 0 {
				continue
			}
			ab := uint8(math.Round(clamp01(a) * 255))
			i := x * 4

			switch mode {
			case StampDraw:
				r, g, b, al := blend.SourceOver(
					nc.R, nc.G, nc.B, ab,
					row[i], row[i+1], row[i+2], row[i+3],
				)
				row[i], row[i+1], row[i+2], row[i+3] = r, g, b, al
			case StampErase:
				row[i+3] = blend.EraseAlpha(row[i+3], ab)
			case StampAntiErase:
				row[i+3] = blend.RestoreAlpha(row[i+3], ab)
			}
		}
	}

	return dst.PutRegion(buf, region.X, region.Y)
}
