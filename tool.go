package brush

import "fmt"

// Modifiers carries the modifier keys held during a gesture.
type Modifiers struct {
	// SetSource marks a clone/heal source-set gesture
	// (modifier-qualified click). Source-set gestures never paint.
	SetSource bool

	// AntiErase switches the eraser to restoring previously erased
	// pixels for the duration of the gesture.
	AntiErase bool
}

// Tool is the interface every brush tool exposes to the host. Concrete
// tools (pencil, eraser, clone, heal) are configurations of the shared
// stroke pipeline behind this interface.
//
// Lifecycle is a two-state machine: idle and drawing. InputStart moves
// idle to drawing, InputMove keeps drawing, InputEnd returns to idle.
// Any call outside the expected state is a no-op, not an error.
type Tool interface {
	// Name returns the tool identifier, e.g. "pencil".
	Name() string

	// Init binds the tool to its parameters and context.
	// It must be called before any input handler.
	Init(params Params, tc *ToolContext) error

	// InputStart begins a gesture at the sample point.
	InputStart(s InputSample, mods Modifiers)

	// InputMove extends the active gesture. No-op while idle.
	InputMove(s InputSample, mods Modifiers)

	// InputEnd finishes the active gesture: pending renders are
	// flushed and the result is committed to history. No-op while idle.
	InputEnd(mods Modifiers)
}

// ToolContext carries the collaborators a tool edits through: the
// target surface, the undo history, the render throttle, and an
// optional live configuration source re-read at each gesture start.
type ToolContext struct {
	surface  Surface
	history  History
	config   Config
	throttle *RenderThrottle
}

// ToolContextOption configures a ToolContext during creation.
type ToolContextOption func(*ToolContext)

// WithHistory attaches an undo history store.
func WithHistory(h History) ToolContextOption {
	return func(tc *ToolContext) { tc.history = h }
}

// WithConfig attaches a live brush configuration source. When set,
// tools re-read it at every gesture start instead of using the
// parameters passed to Init.
func WithConfig(c Config) ToolContextOption {
	return func(tc *ToolContext) { tc.config = c }
}

// WithRenderThrottle attaches a repaint coalescer. Without one, every
// stamp batch requests a render directly from the surface.
func WithRenderThrottle(t *RenderThrottle) ToolContextOption {
	return func(tc *ToolContext) { tc.throttle = t }
}

// NewToolContext creates a context over the given surface.
func NewToolContext(surface Surface, opts ...ToolContextOption) *ToolContext {
	tc := &ToolContext{surface: surface}
	for _, opt := range opts {
		opt(tc)
	}
	return tc
}

// Surface returns the target surface.
func (tc *ToolContext) Surface() Surface { return tc.surface }

// History returns the attached history store, or nil.
func (tc *ToolContext) History() History { return tc.history }

// Throttle returns the attached render throttle, or nil.
func (tc *ToolContext) Throttle() *RenderThrottle { return tc.throttle }

// resolveParams returns the per-stroke parameter snapshot: the live
// configuration when one is attached, the fallback otherwise, always
// normalized.
func (tc *ToolContext) resolveParams(fallback Params) Params {
	if tc.config != nil {
		return tc.config.BrushParams().Normalize()
	}
	return fallback.Normalize()
}

// invalidate schedules a repaint for the stamps just placed.
func (tc *ToolContext) invalidate() {
	if tc.throttle != nil {
		tc.throttle.Invalidate()
		return
	}
	if tc.surface != nil {
		tc.surface.RequestRender()
	}
}

// flushRender fires any pending repaint. Called at gesture end so the
// finished stroke is visible before the history commit.
func (tc *ToolContext) flushRender() {
	if tc.throttle != nil {
		tc.throttle.Flush()
	}
}

// commit saves the gesture result to history. immediate selects the
// synchronous variant.
func (tc *ToolContext) commit(immediate bool) {
	if tc.history == nil {
		return
	}
	if immediate {
		tc.history.SaveNow()
		return
	}
	tc.history.Save()
}

// toolOptions holds optional tool configuration shared by the concrete
// tool constructors.
type toolOptions struct {
	seed    int64
	masks   *MaskCache
	sampler *Sampler
}

// ToolOption configures a tool during creation.
type ToolOption func(*toolOptions)

// WithJitterSeed fixes the jitter random sequence, making scattered
// stamp placement reproducible.
func WithJitterSeed(seed int64) ToolOption {
	return func(o *toolOptions) { o.seed = seed }
}

// WithMaskCache shares a mask cache between tools, so switching between
// pencil and eraser reuses rasterized masks.
func WithMaskCache(c *MaskCache) ToolOption {
	return func(o *toolOptions) { o.masks = c }
}

// WithSampler shares a source anchor between clone and heal tools, so
// switching tools keeps sampling from the same displacement.
func WithSampler(s *Sampler) ToolOption {
	return func(o *toolOptions) { o.sampler = s }
}

// Registry maps tool names to tools, the surface a host uses to look up
// and activate tools.
type Registry struct {
	tools map[string]Tool
	order []string
}

// NewRegistry creates an empty tool registry.
func NewRegistry() *Registry {
	return &Registry{tools: make(map[string]Tool)}
}

// Register adds a tool. Registering a duplicate name is an error.
func (r *Registry) Register(t Tool) error {
	name := t.Name()
	if _, ok := r.tools[name]; ok {
		return fmt.Errorf("tool %q already registered", name)
	}
	r.tools[name] = t
	r.order = append(r.order, name)
	return nil
}

// Lookup returns the tool registered under name.
func (r *Registry) Lookup(name string) (Tool, bool) {
	t, ok := r.tools[name]
	return t, ok
}

// Names returns the registered tool names in registration order.
func (r *Registry) Names() []string {
	out := make([]string, len(r.order))
	copy(out, r.order)
	return out
}
