package brush

import "errors"

// PaintTool is the shared pencil/eraser implementation: scheduled
// stamps composited onto the surface through the mask cache. The pencil
// draws with the configured color; the eraser subtracts alpha, or
// restores it when the anti-erase modifier is held at gesture start.
type PaintTool struct {
	name string
	mode StampMode

	ctx    *ToolContext
	params Params
	comp   *Compositor
	seed   int64

	session     *strokeSession
	gestureMode StampMode
}

// NewPencil creates a drawing tool.
func NewPencil(opts ...ToolOption) *PaintTool {
	return newPaintTool("pencil", StampDraw, opts)
}

// NewEraser creates an erasing tool. Holding the anti-erase modifier at
// gesture start makes the gesture restore previously erased pixels
// instead of clearing new ones.
func NewEraser(opts ...ToolOption) *PaintTool {
	return newPaintTool("eraser", StampErase, opts)
}

func newPaintTool(name string, mode StampMode, opts []ToolOption) *PaintTool {
	var o toolOptions
	for _, opt := range opts {
		opt(&o)
	}
	return &PaintTool{
		name: name,
		mode: mode,
		comp: NewCompositor(o.masks),
		seed: o.seed,
	}
}

// Name implements Tool.
func (t *PaintTool) Name() string { return t.name }

// Init implements Tool.
func (t *PaintTool) Init(params Params, tc *ToolContext) error {
	if tc == nil || tc.Surface() == nil {
		return errors.New("brush: paint tool needs a surface")
	}
	t.params = params.Normalize()
	t.ctx = tc
	return nil
}

// InputStart implements Tool. It begins a gesture and places the
// initial stamp. A call while already drawing is a no-op.
func (t *PaintTool) InputStart(s InputSample, mods Modifiers) {
	if t.ctx == nil || t.session != nil {
		return
	}

	params := t.ctx.resolveParams(t.params)
	t.session = newStrokeSession(params, t.seed)

	t.gestureMode = t.mode
	if t.mode == StampErase && mods.AntiErase {
		t.gestureMode = StampAntiErase
	}

	p := t.session.begin(s)
	if t.stampAt(t.session.jitter(p)) {
		t.ctx.invalidate()
	}
}

// InputMove implements Tool. It schedules and places stamps along the
// smoothed segment. A call while idle is a no-op.
func (t *PaintTool) InputMove(s InputSample, _ Modifiers) {
	if t.session == nil {
		return
	}

	points := t.session.move(s)
	placed := false
	for _, p := range points {
		if !t.stampAt(p) {
			return
		}
		placed = true
	}
	if placed {
		t.ctx.invalidate()
	}
}

// InputEnd implements Tool. It ends the gesture, flushes any pending
// render, and commits the stroke to history. A call while idle is a
// no-op.
func (t *PaintTool) InputEnd(_ Modifiers) {
	if t.session == nil {
		return
	}
	t.session = nil
	t.ctx.flushRender()
	t.ctx.commit(false)
}

// stampAt places one stamp with the session's pressure dynamics
// applied. It reports whether the gesture should continue: an
// unavailable surface aborts the whole gesture, while other per-stamp
// failures only skip the stamp.
func (t *PaintTool) stampAt(p Point) bool {
	pr := t.session.params
	pressure := t.session.pressure

	size := pr.DynamicSize(pressure)
	opacity := pr.DynamicOpacity(pressure)
	flow := pr.DynamicFlow(pressure)

	err := t.comp.Stamp(t.ctx.Surface(), p, size, pr.Hardness, opacity, flow, pr.Color, t.gestureMode)
	if err == nil {
		return true
	}

	Logger().Warn("stamp failed",
		"tool", t.name, "mode", t.gestureMode.String(),
		"x", p.X, "y", p.Y, "err", err)

	if errors.Is(err, ErrSurfaceLocked) || errors.Is(err, ErrNoContext) {
		t.session = nil
		t.ctx.flushRender()
		return false
	}
	return true
}
