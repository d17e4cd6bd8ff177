package brush

import (
	"errors"
	"image"
)

// Surface errors. A failing surface aborts the current stamp (and
// usually the gesture); it is logged and recovered, never propagated as
// a panic from the per-stamp hot path.
var (
	// ErrSurfaceLocked reports that the target surface refuses writes,
	// e.g. a locked layer in the host application.
	ErrSurfaceLocked = errors.New("brush: surface is locked")

	// ErrNoContext reports that the surface cannot provide pixel access,
	// e.g. the active layer was deleted mid-gesture.
	ErrNoContext = errors.New("brush: drawing context unavailable")
)

// Surface is the raster target a tool edits. The host application
// implements Surface over its layer/canvas representation; Pixmap is
// the in-memory reference implementation.
//
// Pixel buffers are straight-alpha *image.NRGBA. GetRegion with an
// empty region returns (nil, nil); PutRegion with a nil or empty image
// is a no-op. Both may fail with ErrSurfaceLocked or ErrNoContext.
type Surface interface {
	// Width returns the surface width in pixels.
	Width() int

	// Height returns the surface height in pixels.
	Height() int

	// GetRegion returns a copy of the pixels in r, which must already
	// be clamped to the surface bounds.
	GetRegion(r Region) (*image.NRGBA, error)

	// PutRegion writes img to the surface with its top-left corner at
	// (x, y). Pixels falling outside the surface are dropped.
	PutRegion(img *image.NRGBA, x, y int) error

	// RequestRender asks the host to repaint the surface. Calls are
	// cheap and may be issued per stamp; hosts coalesce them (see
	// RenderThrottle).
	RequestRender()
}

// History receives undo commits from tools. Save is debounced by the
// host and may complete asynchronously; SaveNow must complete before it
// returns. Tools call Save at gesture end, except the heal tool which
// uses SaveNow so the blended result is captured immediately.
type History interface {
	Save()
	SaveNow()
}
