package brush

import "math"

// StampMask is a square anti-aliased alpha raster for one brush stamp.
// Values range from 0 (fully transparent) to 255 (fully opaque).
//
// The mask is radially symmetric: fully opaque within the inner radius
// (radius * hardness/100), quadratic falloff to 0 between the inner and
// outer radius, and 0 beyond. Rasterization is deterministic, so two
// masks built from the same (size, hardness) are bit-identical.
type StampMask struct {
	side     int
	size     float64
	hardness float64
	data     []uint8
}

// rasterizeMask builds the alpha grid for a brush of the given diameter
// and hardness. The grid side is ceil(size); alpha is sampled at texel
// centers.
func rasterizeMask(size, hardness float64) *StampMask {
	side := int(math.Ceil(size))
	if side < 1 {
		side = 1
	}
	m := &StampMask{
		side:     side,
		size:     size,
		hardness: hardness,
		data:     make([]uint8, side*side),
	}

	radius := size / 2
	innerR := radius * hardness / 100
	cx := size / 2
	cy := size / 2

	for y := 0; y < side; y++ {
		fy := float64(y) + 0.5
		for x := 0; x < side; x++ {
			fx := float64(x) + 0.5
			d := math.Hypot(fx-cx, fy-cy)

			var a float64
			switch {
			case d <= innerR:
				a = 1
			case d >= radius:
				a = 0
			default:
				t := (d - innerR) / (radius - innerR)
				a = (1 - t) * (1 - t)
			}
			m.data[y*side+x] = uint8(clamp255(a * 255))
		}
	}
	return m
}

// Side returns the mask side length in texels.
func (m *StampMask) Side() int { return m.side }

// Size returns the brush diameter the mask was built for.
func (m *StampMask) Size() float64 { return m.size }

// Hardness returns the hardness the mask was built for.
func (m *StampMask) Hardness() float64 { return m.hardness }

// At returns the mask alpha at (x, y).
// Returns 0 for coordinates outside the mask bounds.
func (m *StampMask) At(x, y int) uint8 {
	if x < 0 || x >= m.side || y < 0 || y >= m.side {
		return 0
	}
	return m.data[y*m.side+x]
}

// Data returns the underlying alpha slice. Callers must not modify it:
// masks are shared through the cache.
func (m *StampMask) Data() []uint8 {
	return m.data
}
