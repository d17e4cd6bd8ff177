package brush

import "math"

// sdfAntialiasWidth controls the smoothstep transition width in pixels.
// A value of 0.7 produces smooth anti-aliasing at standard DPI.
const sdfAntialiasWidth = 0.7

// circleCoverage computes anti-aliased coverage for a filled circle
// using a signed distance field approach.
//
// Parameters:
//   - px, py: pixel center coordinates
//   - cx, cy: circle center
//   - radius: circle radius
//
// Returns a coverage value in [0, 1] where 1 means fully inside.
func circleCoverage(px, py, cx, cy, radius float64) float64 {
	dist := math.Hypot(px-cx, py-cy)
	sdf := dist - radius
	return smoothstepCoverage(sdf)
}

// smoothstepCoverage converts a signed distance to an anti-aliased
// coverage value using a Hermite smoothstep function.
//
// sdf < -afwidth => 1.0 (fully inside)
// sdf > +afwidth => 0.0 (fully outside)
// Otherwise       => smooth transition
func smoothstepCoverage(sdf float64) float64 {
	if sdf >= sdfAntialiasWidth {
		return 0
	}
	if sdf <= -sdfAntialiasWidth {
		return 1
	}
	t := (sdf + sdfAntialiasWidth) / (2 * sdfAntialiasWidth)
	// Hermite smoothstep: 3t^2 - 2t^3
	return 1 - (t * t * (3 - 2*t))
}
