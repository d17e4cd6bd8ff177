// Package blend implements the byte-level alpha arithmetic used when
// compositing brush stamps onto straight-alpha (NRGBA) pixel buffers.
//
// Unlike premultiplied compositing pipelines, brush stamping works on
// straight alpha so that erasing can reduce the alpha channel while
// leaving the color channels untouched, and anti-erasing can restore
// them. All values are bytes in the range 0-255.
package blend

// MulDiv255 multiplies two byte values and divides by 255 with proper
// rounding. Formula: (a * b + 127) / 255.
// The +127 provides correct rounding (equivalent to adding 0.5 before
// truncation).
func MulDiv255(a, b byte) byte {
	return byte((uint16(a)*uint16(b) + 127) / 255)
}

// ClampAdd adds two byte values with clamping to 255.
func ClampAdd(a, b byte) byte {
	sum := uint16(a) + uint16(b)
	if sum > 255 {
		return 255
	}
	return byte(sum)
}

// MaxByte returns the larger of two bytes.
func MaxByte(a, b byte) byte {
	if a > b {
		return a
	}
	return b
}

// SourceOver composites a straight-alpha source texel over a
// straight-alpha destination texel.
// Formula: outA = Sa + Da*(1-Sa); outC = (Sc*Sa + Dc*Da*(1-Sa)) / outA.
func SourceOver(sr, sg, sb, sa, dr, dg, db, da byte) (r, g, b, a byte) {
	if sa == 0 {
		return dr, dg, db, da
	}
	if sa == 255 || da == 0 {
		return sr, sg, sb, sa
	}

	invSa := 255 - sa
	daw := MulDiv255(da, invSa) // destination weight
	outA := ClampAdd(sa, daw)

	// Weighted average of the straight colors. outA is nonzero here
	// because sa > 0.
	r = weighted(sr, sa, dr, daw, outA)
	g = weighted(sg, sa, dg, daw, outA)
	b = weighted(sb, sa, db, daw, outA)
	return r, g, b, outA
}

// weighted computes (c1*w1 + c2*w2) / wSum with rounding.
func weighted(c1, w1, c2, w2, wSum byte) byte {
	num := uint32(c1)*uint32(w1) + uint32(c2)*uint32(w2)
	return byte((num + uint32(wSum)/2) / uint32(wSum))
}

// EraseAlpha subtracts stamp coverage from the destination alpha.
// Formula: Da * (1 - a). Color channels are left to the caller.
func EraseAlpha(da, a byte) byte {
	return MulDiv255(da, 255-a)
}

// RestoreAlpha restores previously erased destination alpha up to the
// stamp coverage, never reducing it.
// Formula: max(Da, a).
func RestoreAlpha(da, a byte) byte {
	return MaxByte(da, a)
}
