package panel

import (
	"fmt"

	"github.com/accessrig/overlay-panel-control/internal/event"
	"github.com/accessrig/overlay-panel-control/internal/viewer"
)

// Slot binds a named control into a tab. Declaration order is focus order.
type Slot struct {
	Name    string
	Control Control
}

// Tab groups named controls within a panel.
type Tab struct {
	Name  string
	Slots []Slot
}

func (t *Tab) slotIndex(name string) int {
	if name == "" {
		return -1
	}
	for i, slot := range t.Slots {
		if slot.Name == name {
			return i
		}
	}
	return -1
}

// Descriptor is the immutable, build-once shape of a panel: its tabs, their
// controls, and the panel's default handlers. One descriptor is shared by
// every viewer who opens that panel; it is never rebuilt and never mutated.
type Descriptor struct {
	Name      string
	Tabs      []*Tab
	Defaults  Handlers
	RebuildFn func(id viewer.ID, ctx *Context)
}

// BuilderFunc produces a panel's static shape. It runs at most once per
// process lifetime; it may read viewer identity through lazy values but must
// not require a specific viewer.
type BuilderFunc func(b *Builder)

// Builder is the handle a panel builder receives.
type Builder struct {
	desc *Descriptor
}

// AddTab declares a tab and populates it through fn. A duplicate tab name is
// a fatal configuration error and panics at build time.
func (b *Builder) AddTab(name string, fn func(*TabBuilder)) {
	for _, tab := range b.desc.Tabs {
		if tab.Name == name {
			panic(fmt.Sprintf("panel %q: duplicate tab %q", b.desc.Name, name))
		}
	}
	tab := &Tab{Name: name}
	b.desc.Tabs = append(b.desc.Tabs, tab)
	if fn != nil {
		fn(&TabBuilder{panel: b.desc.Name, tab: tab})
	}
}

// On installs a panel default handler, run when nothing in the focus chain
// consumed the event.
func (b *Builder) On(name event.Name, fn Handler) {
	if b.desc.Defaults == nil {
		b.desc.Defaults = Handlers{}
	}
	b.desc.Defaults[name] = fn
}

// OnRebuild installs the panel's own derived-state recomputation, run before
// the active tab's controls during a rebuild sweep.
func (b *Builder) OnRebuild(fn func(id viewer.ID, ctx *Context)) {
	b.desc.RebuildFn = fn
}

// TabBuilder adds controls to one tab.
type TabBuilder struct {
	panel string
	tab   *Tab
}

// AddControl declares a named control in the tab. A duplicate control name
// within the tab is a fatal configuration error and panics at build time.
func (tb *TabBuilder) AddControl(name string, ctrl Control) {
	if tb.tab.slotIndex(name) >= 0 {
		panic(fmt.Sprintf("panel %q tab %q: duplicate control %q", tb.panel, tb.tab.Name, name))
	}
	tb.tab.Slots = append(tb.tab.Slots, Slot{Name: name, Control: ctrl})
}
