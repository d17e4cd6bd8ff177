// Package brush provides a raster brush stroke engine for Go.
//
// # Overview
//
// brush is a Pure Go pixel-editing engine designed to integrate with the
// GoGPU ecosystem. It turns a sequence of raw pointer samples into discrete
// pixel-level edits on a raster surface, and is the shared core behind
// pencil, eraser, clone and heal tools.
//
// # Quick Start
//
//	import "github.com/gogpu/brush"
//
//	// Create a surface and a tool context
//	pm := brush.NewPixmap(512, 512)
//	tc := brush.NewToolContext(pm)
//
//	// Configure a pencil and draw a stroke
//	pencil := brush.NewPencil()
//	pencil.Init(brush.DefaultParams(), tc)
//	pencil.InputStart(brush.Sample(10, 10), brush.Modifiers{})
//	pencil.InputMove(brush.Sample(60, 10), brush.Modifiers{})
//	pencil.InputEnd(brush.Modifiers{})
//
//	// Save the result
//	pm.SavePNG("stroke.png")
//
// # Pipeline
//
// Every gesture runs the same pipeline: pressure normalization, path
// stabilization, pressure dynamics, distance-based stamp scheduling, and
// per-stamp compositing (paint/erase) or source sampling (clone/heal).
// Brush masks are anti-aliased alpha rasters cached per (size, hardness).
//
// # Architecture
//
// The library is organized into:
//   - Public API: Tool, ToolContext, Surface, Params, Pixmap
//   - Engine: Stabilizer, Scheduler, MaskCache, Sampler
//   - Internal: blend (fixed-point alpha arithmetic)
//   - cache: bounded FIFO cache with statistics
//
// # Coordinate System
//
// Uses standard computer graphics coordinates:
//   - Origin (0,0) at top-left
//   - X increases right
//   - Y increases down
//
// # Concurrency
//
// The engine is single-threaded by design: input samples arrive one at a
// time from the host UI loop and the active tool is the sole writer to the
// surface for the duration of a gesture. Surface repaints are coalesced
// through RenderThrottle so many stamps in one frame cause one repaint.
package brush

// Version information
const (
	// Version is the current version of the library
	Version = "0.1.0"

	// VersionMajor is the major version
	VersionMajor = 0

	// VersionMinor is the minor version
	VersionMinor = 1

	// VersionPatch is the patch version
	VersionPatch = 0
)
