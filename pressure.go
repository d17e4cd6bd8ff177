package brush

// Device identifies the kind of input device that produced a sample.
type Device uint8

const (
	// DevicePen is a stylus with a real pressure signal.
	DevicePen Device = iota

	// DeviceMouse has no pressure signal; samples report the neutral value.
	DeviceMouse

	// DeviceTouch is a finger contact. Some platforms synthesize pressure
	// for touch, so touch samples are passed through like pen samples.
	DeviceTouch
)

// PressureNeutral is the pressure value reported when no pressure signal
// is available. Dynamics treat it as "pressure off".
const PressureNeutral = 0.5

// InputSample is one raw pointer event as delivered by the host UI loop.
type InputSample struct {
	Point    Point
	Pressure float64
	Device   Device
}

// Sample creates a pressureless InputSample at (x, y).
// It is a convenience for mouse-driven hosts and tests.
func Sample(x, y float64) InputSample {
	return InputSample{Point: Pt(x, y), Pressure: PressureNeutral, Device: DeviceMouse}
}

// PenSample creates an InputSample at (x, y) with the given stylus pressure.
func PenSample(x, y, pressure float64) InputSample {
	return InputSample{Point: Pt(x, y), Pressure: pressure, Device: DevicePen}
}

// NormalizePressure converts a raw input sample into a pressure in [0, 1].
//
// Mouse samples, and samples whose raw pressure equals the device neutral
// value, carry no pressure signal and normalize to PressureNeutral.
// All other values pass through clamped to [0, 1].
func NormalizePressure(s InputSample) float64 {
	if s.Device == DeviceMouse || s.Pressure == PressureNeutral {
		return PressureNeutral
	}
	return clamp01(s.Pressure)
}

// Curve selects the pressure response curve applied before deriving
// size/opacity/flow multipliers.
type Curve uint8

const (
	// CurveLinear passes pressure through unchanged.
	CurveLinear Curve = iota

	// CurveEaseIn responds slowly at light pressure: p².
	CurveEaseIn

	// CurveEaseOut responds quickly at light pressure: 1-(1-p)².
	CurveEaseOut

	// CurveEaseInOut is slow at both ends.
	CurveEaseInOut

	// CurveCustom is reserved for host-supplied curve points.
	// Without a curve editor it falls back to linear.
	CurveCustom
)

// String returns the curve name.
func (c Curve) String() string {
	switch c {
	case CurveLinear:
		return "linear"
	case CurveEaseIn:
		return "ease-in"
	case CurveEaseOut:
		return "ease-out"
	case CurveEaseInOut:
		return "ease-in-out"
	case CurveCustom:
		return "custom"
	default:
		return "unknown"
	}
}

// ApplyCurve maps a pressure value through a response curve.
// The input is clamped to [0, 1] before curve application, and every
// curve maps 0 to 0 and 1 to 1.
func ApplyCurve(p float64, c Curve) float64 {
	p = clamp01(p)
	switch c {
	case CurveEaseIn:
		return p * p
	case CurveEaseOut:
		return 1 - (1-p)*(1-p)
	case CurveEaseInOut:
		if p < 0.5 {
			return 2 * p * p
		}
		t := -2*p + 2
		return 1 - t*t/2
	default:
		// linear and custom (no curve-point editor)
		return p
	}
}

// DynamicSize derives the stamp size from the base size and pressure.
// Pressure scales the size between 30% and 100% of the base, floored
// at 1 pixel. When size dynamics are disabled, or the pressure carries
// no signal, the base size is returned unchanged.
func (pr Params) DynamicSize(pressure float64) float64 {
	if !pr.PressureSize || pressure == PressureNeutral {
		return pr.Size
	}
	cv := ApplyCurve(pressure, pr.Curve)
	size := pr.Size * (0.3 + cv*0.7)
	if size < 1 {
		return 1
	}
	return size
}

// DynamicOpacity derives the stamp opacity from the base opacity and
// pressure. Disabled dynamics or a neutral pressure return the base.
func (pr Params) DynamicOpacity(pressure float64) float64 {
	if !pr.PressureOpacity || pressure == PressureNeutral {
		return pr.Opacity
	}
	return pr.Opacity * ApplyCurve(pressure, pr.Curve)
}

// DynamicFlow derives the stamp flow from the base flow and pressure.
// Disabled dynamics or a neutral pressure return the base.
func (pr Params) DynamicFlow(pressure float64) float64 {
	if !pr.PressureFlow || pressure == PressureNeutral {
		return pr.Flow
	}
	return pr.Flow * ApplyCurve(pressure, pr.Curve)
}
