package panel

import (
	"fmt"

	"github.com/accessrig/overlay-panel-control/internal/event"
	"github.com/accessrig/overlay-panel-control/internal/logging/events"
	"github.com/accessrig/overlay-panel-control/internal/viewer"
)

// InstanceState is the mutable, per-viewer data of one open panel: the active
// tab, the focused control within it, and one state slot per control. It is
// owned by the session store and handed to handlers by reference for the
// duration of a single dispatch call. Control slots are keyed "tab/control"
// so the same control name may recur across tabs.
type InstanceState struct {
	TabIndex int
	Focus    string
	Controls map[string]any
}

func NewInstanceState() *InstanceState {
	return &InstanceState{Controls: make(map[string]any)}
}

func stateKey(tab, control string) string {
	return tab + "/" + control
}

// ActiveTab returns the tab the instance state points at, clamping a stale
// index, or nil for a panel with no declared tabs (the panel is then
// self-focused and only its default handlers run).
func ActiveTab(desc *Descriptor, st *InstanceState) *Tab {
	if len(desc.Tabs) == 0 {
		return nil
	}
	if st.TabIndex < 0 || st.TabIndex >= len(desc.Tabs) {
		st.TabIndex = 0
	}
	return desc.Tabs[st.TabIndex]
}

// Seed creates the per-viewer state slots that do not exist yet and places
// initial focus. Reopening a panel leaves existing slots and focus untouched.
func Seed(id viewer.ID, desc *Descriptor, st *InstanceState) {
	if st.Controls == nil {
		st.Controls = make(map[string]any)
	}
	for _, tab := range desc.Tabs {
		for _, slot := range tab.Slots {
			seeder, ok := slot.Control.(Seeder)
			if !ok {
				continue
			}
			key := stateKey(tab.Name, slot.Name)
			if _, exists := st.Controls[key]; exists {
				continue
			}
			st.Controls[key] = seeder.Seed(id)
		}
	}
	tab := ActiveTab(desc, st)
	if tab != nil && st.Focus == "" && len(tab.Slots) > 0 {
		setFocus(id, desc, st, tab, 0)
	}
}

// FocusNext moves focus to the next control of the active tab in declaration
// order, wrapping. The outgoing control is unfocused before the incoming one
// is focused.
func FocusNext(id viewer.ID, desc *Descriptor, st *InstanceState) {
	moveFocus(id, desc, st, 1)
}

// FocusPrev is FocusNext in the other direction.
func FocusPrev(id viewer.ID, desc *Descriptor, st *InstanceState) {
	moveFocus(id, desc, st, -1)
}

func moveFocus(id viewer.ID, desc *Descriptor, st *InstanceState, delta int) {
	tab := ActiveTab(desc, st)
	if tab == nil || len(tab.Slots) == 0 {
		return
	}
	cur := tab.slotIndex(st.Focus)
	if cur < 0 {
		setFocus(id, desc, st, tab, 0)
		return
	}
	n := len(tab.Slots)
	setFocus(id, desc, st, tab, (cur+delta+n)%n)
}

func setFocus(id viewer.ID, desc *Descriptor, st *InstanceState, tab *Tab, idx int) {
	from := st.Focus
	if prev := tab.slotIndex(from); prev >= 0 {
		slot := tab.Slots[prev]
		if f, ok := slot.Control.(Focusable); ok {
			f.Unfocused(id, ctxFor(desc, st, tab, slot))
		}
	}
	slot := tab.Slots[idx]
	st.Focus = slot.Name
	if f, ok := slot.Control.(Focusable); ok {
		f.Focused(id, ctxFor(desc, st, tab, slot))
	}
	events.Focus.Move(int(id), desc.Name, from, slot.Name)
}

// NextTab switches to the following declared tab and resets focus to that
// tab's first control. Panels with zero or one tab are unaffected.
func NextTab(id viewer.ID, desc *Descriptor, st *InstanceState) {
	switchTab(id, desc, st, 1)
}

// PrevTab is NextTab in the other direction.
func PrevTab(id viewer.ID, desc *Descriptor, st *InstanceState) {
	switchTab(id, desc, st, -1)
}

func switchTab(id viewer.ID, desc *Descriptor, st *InstanceState, delta int) {
	n := len(desc.Tabs)
	if n <= 1 {
		return
	}
	if tab := ActiveTab(desc, st); tab != nil {
		if prev := tab.slotIndex(st.Focus); prev >= 0 {
			slot := tab.Slots[prev]
			if f, ok := slot.Control.(Focusable); ok {
				f.Unfocused(id, ctxFor(desc, st, tab, slot))
			}
		}
	}
	st.TabIndex = (st.TabIndex + delta + n) % n
	st.Focus = ""
	tab := desc.Tabs[st.TabIndex]
	events.Focus.Tab(int(id), desc.Name, tab.Name)
	if len(tab.Slots) > 0 {
		slot := tab.Slots[0]
		st.Focus = slot.Name
		if f, ok := slot.Control.(Focusable); ok {
			f.Focused(id, ctxFor(desc, st, tab, slot))
		}
		events.Focus.Move(int(id), desc.Name, "", slot.Name)
	}
}

// HandleEvent offers ev to the focus chain deepest-first, then to the panel's
// default handlers, then to the built-in tab/focus behaviour, and finally
// swallows it: an open modal panel must never let input fall through to the
// host underneath. The error return carries focus-state contract violations
// by panel authors; there is nothing recoverable in it.
func HandleEvent(id viewer.ID, desc *Descriptor, st *InstanceState, ev event.Event) error {
	tab := ActiveTab(desc, st)
	if tab != nil && len(tab.Slots) > 0 {
		if st.Focus == "" {
			setFocus(id, desc, st, tab, 0)
		}
		idx := tab.slotIndex(st.Focus)
		if idx < 0 {
			return fmt.Errorf("panel %q: focused control %q not declared in tab %q", desc.Name, st.Focus, tab.Name)
		}
		slot := tab.Slots[idx]
		ctx := ctxFor(desc, st, tab, slot)
		chain := []Control{slot.Control}
		if comp, ok := slot.Control.(Composite); ok {
			chain = append(chain, comp.FocusPath(id, ctx)...)
		}
		for i := len(chain) - 1; i >= 0; i-- {
			if chain[i].Handle(id, ctx, ev) {
				return nil
			}
		}
	}
	root := &Context{Descriptor: desc, State: st}
	if fn, ok := desc.Defaults[ev.Name]; ok {
		fn(id, root, ev)
		return nil
	}
	switch ev.Name {
	case event.TabForward:
		NextTab(id, desc, st)
	case event.TabBackward:
		PrevTab(id, desc, st)
	case event.Down:
		FocusNext(id, desc, st)
	case event.Up:
		FocusPrev(id, desc, st)
	}
	return nil
}

// Rebuild recomputes the panel top-down: the panel's own derived state first,
// then the active tab's controls in declaration order. The ordering is
// deliberate: a parent may decide a child is gone before the child's own
// rebuild would run.
func Rebuild(id viewer.ID, desc *Descriptor, st *InstanceState) {
	if desc.RebuildFn != nil {
		desc.RebuildFn(id, &Context{Descriptor: desc, State: st})
	}
	tab := ActiveTab(desc, st)
	if tab == nil {
		return
	}
	for _, slot := range tab.Slots {
		if rb, ok := slot.Control.(Rebuilder); ok {
			rb.Rebuild(id, ctxFor(desc, st, tab, slot))
		}
	}
}

// ContextFor builds the context a host needs to call optional control
// interfaces (such as Renderer) outside a dispatch.
func ContextFor(desc *Descriptor, st *InstanceState, tab *Tab, slot Slot) *Context {
	return ctxFor(desc, st, tab, slot)
}

func ctxFor(desc *Descriptor, st *InstanceState, tab *Tab, slot Slot) *Context {
	return &Context{
		Descriptor: desc,
		State:      st,
		control:    slot.Name,
		stateKey:   stateKey(tab.Name, slot.Name),
	}
}
