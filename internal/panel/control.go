package panel

import (
	"github.com/accessrig/overlay-panel-control/internal/event"
	"github.com/accessrig/overlay-panel-control/internal/viewer"
)

// Context hands a handler the panel's immutable descriptor and the viewer's
// mutable instance state for the duration of a single dispatch call. The
// runtime stamps in the control the event is currently being offered to, so
// the control can reach its own state slot without knowing its slot name.
type Context struct {
	Descriptor *Descriptor
	State      *InstanceState

	control  string
	stateKey string
}

// ControlName names the control currently being offered the event. It is
// empty when the panel root (default handlers) is running.
func (c *Context) ControlName() string {
	return c.control
}

// ControlState returns the per-viewer state slot of the current control, or
// nil when none has been seeded.
func (c *Context) ControlState() any {
	if c.State == nil || c.stateKey == "" {
		return nil
	}
	return c.State.Controls[c.stateKey]
}

// SetControlState replaces the state slot of the current control.
func (c *Context) SetControlState(v any) {
	if c.State.Controls == nil {
		c.State.Controls = make(map[string]any)
	}
	c.State.Controls[c.stateKey] = v
}

// Handler reacts to one event.
type Handler func(id viewer.ID, ctx *Context, ev event.Event)

// Control is the contract every widget satisfies to plug into the panel
// runtime. Handle reports whether the control consumed the event; declining
// passes it to the next ancestor in the focus chain.
type Control interface {
	Handle(id viewer.ID, ctx *Context, ev event.Event) bool
}

// Handlers is a table-backed Control covering a subset of the vocabulary.
type Handlers map[event.Name]Handler

func (h Handlers) Handle(id viewer.ID, ctx *Context, ev event.Event) bool {
	fn, ok := h[ev.Name]
	if ok {
		fn(id, ctx, ev)
	}
	return ok
}

// Focusable controls are told when the focus pointer arrives and leaves.
type Focusable interface {
	Focused(id viewer.ID, ctx *Context)
	Unfocused(id viewer.ID, ctx *Context)
}

// Rebuilder controls recompute derived state during the host's periodic
// rebuild sweep. Rebuild runs top-down from the panel, so a parent may have
// replaced or dropped a child before the child's own Rebuild would run.
type Rebuilder interface {
	Rebuild(id viewer.ID, ctx *Context)
}

// Seeder controls supply the initial per-viewer state slot on a viewer's
// first open of the owning panel.
type Seeder interface {
	Seed(id viewer.ID) any
}

// Composite controls own nested focus among children. FocusPath returns the
// chain below the control, shallowest first; the runtime offers events
// deepest-first before bubbling back through the composite itself.
type Composite interface {
	FocusPath(id viewer.ID, ctx *Context) []Control
}

// Renderer is implemented by controls that can draw themselves for a host
// display. The runtime never calls it; only hosts do.
type Renderer interface {
	View(id viewer.ID, ctx *Context) string
}
