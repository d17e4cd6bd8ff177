package brush

import "errors"

// CloneTool is the shared clone/heal implementation: scheduled stamps
// that read a source region through the Sampler's anchor and blend it
// into the destination region. The clone tool copies source pixels; the
// heal tool mixes source color with the destination's local texture.
type CloneTool struct {
	name string
	mode SampleMode

	ctx     *ToolContext
	params  Params
	sampler *Sampler
	seed    int64

	session *strokeSession
}

// NewClone creates a clone (rubber stamp) tool.
func NewClone(opts ...ToolOption) *CloneTool {
	return newCloneTool("clone", SampleClone, opts)
}

// NewHeal creates a heal tool. Heal commits to history synchronously at
// gesture end, so the blended result is captured immediately.
func NewHeal(opts ...ToolOption) *CloneTool {
	return newCloneTool("heal", SampleHeal, opts)
}

func newCloneTool(name string, mode SampleMode, opts []ToolOption) *CloneTool {
	var o toolOptions
	for _, opt := range opts {
		opt(&o)
	}
	sampler := o.sampler
	if sampler == nil {
		sampler = NewSampler()
	}
	return &CloneTool{
		name:    name,
		mode:    mode,
		sampler: sampler,
		seed:    o.seed,
	}
}

// Name implements Tool.
func (t *CloneTool) Name() string { return t.name }

// Sampler returns the tool's source anchor. It survives across
// gestures; see Sampler for the offset semantics.
func (t *CloneTool) Sampler() *Sampler { return t.sampler }

// Init implements Tool.
func (t *CloneTool) Init(params Params, tc *ToolContext) error {
	if tc == nil || tc.Surface() == nil {
		return errors.New("brush: clone tool needs a surface")
	}
	t.params = params.Normalize()
	t.ctx = tc
	return nil
}

// InputStart implements Tool. With the source-set modifier held it only
// anchors the source and paints nothing. Otherwise it begins a gesture,
// defaulting the source to the start point when none was ever set, and
// places the initial stamp. A call while already drawing is a no-op.
func (t *CloneTool) InputStart(s InputSample, mods Modifiers) {
	if t.ctx == nil || t.session != nil {
		return
	}

	if mods.SetSource {
		t.sampler.SetSource(s.Point)
		return
	}

	params := t.ctx.resolveParams(t.params)
	t.session = newStrokeSession(params, t.seed)

	p := t.session.begin(s)
	t.sampler.EnsureSource(p)

	if t.stampAt(t.session.jitter(p)) {
		t.ctx.invalidate()
	}
}

// InputMove implements Tool. A call while idle is a no-op.
func (t *CloneTool) InputMove(s InputSample, _ Modifiers) {
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
// render, and commits to history: debounced for clone, synchronous for
// heal. A call while idle is a no-op.
func (t *CloneTool) InputEnd(_ Modifiers) {
	if t.session == nil {
		return
	}
	t.session = nil
	t.ctx.flushRender()
	t.ctx.commit(t.mode == SampleHeal)
}

// stampAt places one sampling stamp with pressure dynamics applied.
// It reports whether the gesture should continue.
func (t *CloneTool) stampAt(d Point) bool {
	pr := t.session.params
	pressure := t.session.pressure

	size := pr.DynamicSize(pressure)
	strength := pr.DynamicOpacity(pressure) * pr.DynamicFlow(pressure)

	err := t.sampler.Stamp(t.ctx.Surface(), d, size, strength, t.mode)
	if err == nil {
		return true
	}

	Logger().Warn("sample stamp failed",
		"tool", t.name, "mode", t.mode.String(),
		"x", d.X, "y", d.Y, "err", err)

	if errors.Is(err, ErrSurfaceLocked) || errors.Is(err, ErrNoContext) {
		t.session = nil
		t.ctx.flushRender()
		return false
	}
	return true
}
