package brush

import "math"

// Region is a pixel rectangle. A region with W <= 0 or H <= 0 is a
// legal empty region: every operation treats it as a no-op, never an
// error.
type Region struct {
	X, Y, W, H int
}

// Rg is a convenience function to create a Region.
func Rg(x, y, w, h int) Region {
	return Region{X: x, Y: y, W: w, H: h}
}

// Empty reports whether the region covers no pixels.
func (r Region) Empty() bool {
	return r.W <= 0 || r.H <= 0
}

// Clamp returns the region clipped to a surface of the given
// dimensions. The result may be empty.
func (r Region) Clamp(width, height int) Region {
	x0 := max(r.X, 0)
	y0 := max(r.Y, 0)
	x1 := min(r.X+r.W, width)
	y1 := min(r.Y+r.H, height)
	return Region{X: x0, Y: y0, W: x1 - x0, H: y1 - y0}
}

// Intersect returns the overlap of two regions. The result may be empty.
func (r Region) Intersect(o Region) Region {
	x0 := max(r.X, o.X)
	y0 := max(r.Y, o.Y)
	x1 := min(r.X+r.W, o.X+o.W)
	y1 := min(r.Y+r.H, o.Y+o.H)
	return Region{X: x0, Y: y0, W: x1 - x0, H: y1 - y0}
}

// RegionAround returns the square region of side ceil(size) centered
// on p, the footprint of one brush stamp.
func RegionAround(p Point, size float64) Region {
	side := int(math.Ceil(size))
	if side < 1 {
		side = 1
	}
	x := int(math.Round(p.X - size/2))
	y := int(math.Round(p.Y - size/2))
	return Region{X: x, Y: y, W: side, H: side}
}
