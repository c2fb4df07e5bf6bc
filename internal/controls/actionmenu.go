// Package controls provides leaf widgets built on the panel control
// contract.
package controls

import (
	"strings"

	"github.com/lithammer/fuzzysearch/fuzzy"

	"github.com/accessrig/overlay-panel-control/internal/event"
	"github.com/accessrig/overlay-panel-control/internal/lazy"
	"github.com/accessrig/overlay-panel-control/internal/panel"
	"github.com/accessrig/overlay-panel-control/internal/viewer"
)

// Item is one activatable entry in an ActionMenu. Label and Disabled may be
// per-viewer computations; they are resolved on every refresh, never cached
// across viewers.
type Item struct {
	ID       string
	Label    lazy.Value[string]
	Disabled lazy.Value[bool]
	Action   func(id viewer.ID, ctx *panel.Context)
}

// ActionMenu is a static list of actions with a per-viewer cursor. It handles
// up/down and left-click itself and declines everything else, so tab switches
// and right-click fallbacks bubble to the panel.
type ActionMenu struct {
	Items []Item

	// Announce, when set, receives cursor and activation feedback. Hosts
	// plug their per-viewer speech or display output in here.
	Announce func(id viewer.ID, text string)
}

// State is the menu's per-viewer instance state: the cursor plus the
// resolved, possibly filtered view of the items.
type State struct {
	Cursor  int
	Filter  string
	Labels  []string
	Visible []int
}

// Seed implements panel.Seeder.
func (m *ActionMenu) Seed(id viewer.ID) any {
	st := &State{}
	m.refresh(id, st)
	return st
}

// Rebuild implements panel.Rebuilder. Labels may be lazy per-viewer values
// and can change between host sweeps.
func (m *ActionMenu) Rebuild(id viewer.ID, ctx *panel.Context) {
	m.refresh(id, m.state(ctx))
}

// Handle implements panel.Control.
func (m *ActionMenu) Handle(id viewer.ID, ctx *panel.Context, ev event.Event) bool {
	st := m.state(ctx)
	switch ev.Name {
	case event.Up:
		m.move(id, st, -1)
		return true
	case event.Down:
		m.move(id, st, 1)
		return true
	case event.LeftClick:
		m.activate(id, ctx, st)
		return true
	}
	return false
}

// Focused implements panel.Focusable; arriving focus re-resolves labels and
// announces the current entry.
func (m *ActionMenu) Focused(id viewer.ID, ctx *panel.Context) {
	st := m.state(ctx)
	m.refresh(id, st)
	if len(st.Labels) > 0 {
		m.say(id, st.Labels[st.Cursor])
	}
}

// Unfocused implements panel.Focusable.
func (m *ActionMenu) Unfocused(id viewer.ID, ctx *panel.Context) {}

// SetFilter narrows the visible entries to fuzzy matches of query. An empty
// query restores the full list.
func (m *ActionMenu) SetFilter(id viewer.ID, ctx *panel.Context, query string) {
	st := m.state(ctx)
	st.Filter = strings.TrimSpace(query)
	m.refresh(id, st)
}

// View implements panel.Renderer for hosts that draw to a terminal.
func (m *ActionMenu) View(id viewer.ID, ctx *panel.Context) string {
	st := m.state(ctx)
	if len(st.Labels) == 0 {
		if st.Filter != "" {
			return "(no matches for " + st.Filter + ")"
		}
		return "(empty)"
	}
	var b strings.Builder
	for i, label := range st.Labels {
		marker := "  "
		if i == st.Cursor {
			marker = "> "
		}
		b.WriteString(marker)
		b.WriteString(label)
		if m.Items[st.Visible[i]].Disabled.Resolve(id) {
			b.WriteString(" (disabled)")
		}
		if i < len(st.Labels)-1 {
			b.WriteByte('\n')
		}
	}
	return b.String()
}

func (m *ActionMenu) state(ctx *panel.Context) *State {
	st, _ := ctx.ControlState().(*State)
	if st == nil {
		st = &State{}
		ctx.SetControlState(st)
	}
	return st
}

// refresh re-resolves labels for the viewer and applies the fuzzy filter,
// clamping the cursor to the visible range.
func (m *ActionMenu) refresh(id viewer.ID, st *State) {
	st.Visible = st.Visible[:0]
	st.Labels = st.Labels[:0]
	for i, item := range m.Items {
		label := item.Label.Resolve(id)
		if st.Filter != "" && !fuzzy.MatchFold(st.Filter, label) {
			continue
		}
		st.Visible = append(st.Visible, i)
		st.Labels = append(st.Labels, label)
	}
	if len(st.Visible) == 0 {
		st.Cursor = 0
		return
	}
	if st.Cursor >= len(st.Visible) {
		st.Cursor = len(st.Visible) - 1
	}
	if st.Cursor < 0 {
		st.Cursor = 0
	}
}

func (m *ActionMenu) move(id viewer.ID, st *State, delta int) {
	n := len(st.Visible)
	if n == 0 {
		return
	}
	st.Cursor = (st.Cursor + delta + n) % n
	m.say(id, st.Labels[st.Cursor])
}

func (m *ActionMenu) activate(id viewer.ID, ctx *panel.Context, st *State) {
	if st.Cursor < 0 || st.Cursor >= len(st.Visible) {
		return
	}
	item := m.Items[st.Visible[st.Cursor]]
	if item.Disabled.Resolve(id) {
		m.say(id, st.Labels[st.Cursor]+" is disabled")
		return
	}
	if item.Action != nil {
		item.Action(id, ctx)
	}
}

func (m *ActionMenu) say(id viewer.ID, text string) {
	if m.Announce != nil {
		m.Announce(id, text)
	}
}
