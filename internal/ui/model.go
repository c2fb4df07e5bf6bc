// Package ui implements the terminal demo host: a Bubble Tea program that
// plays the role the game engine would, translating key presses through the
// keymap into dispatched events and drawing whatever panel is active.
package ui

import (
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/accessrig/overlay-panel-control/internal/dispatch"
	"github.com/accessrig/overlay-panel-control/internal/event"
	"github.com/accessrig/overlay-panel-control/internal/keymap"
	"github.com/accessrig/overlay-panel-control/internal/logging"
	"github.com/accessrig/overlay-panel-control/internal/logging/events"
	"github.com/accessrig/overlay-panel-control/internal/panel"
	"github.com/accessrig/overlay-panel-control/internal/session"
	"github.com/accessrig/overlay-panel-control/internal/theme"
	"github.com/accessrig/overlay-panel-control/internal/viewer"
)

const (
	transcriptLines = 6
	rebuildInterval = time.Second
)

var styles = theme.Default()

type keyBindings struct {
	Quit       key.Binding
	NextViewer key.Binding
}

func defaultKeyBindings() keyBindings {
	return keyBindings{
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c", "q"),
			key.WithHelp("q", "quit"),
		),
		NextViewer: key.NewBinding(
			key.WithKeys("v"),
			key.WithHelp("v", "next viewer"),
		),
	}
}

type keymapMsg struct {
	ev keymap.Event
}

type rebuildMsg struct{}

// Model hosts the panel runtime for a handful of simulated viewers. Exactly
// one viewer is "holding the keyboard" at a time; switching viewers shows
// that stacks and instance states never bleed across identities.
type Model struct {
	registry   *panel.Registry
	store      *session.Store
	dispatcher *dispatch.Dispatcher
	keymap     keymap.Table
	watcher    *keymap.Watcher
	rootPanel  string

	active  viewer.ID
	viewers int
	tick    event.Tick

	transcript map[viewer.ID][]string
	errMsg     string
	infoMsg    string
	width      int
	height     int
	showFooter bool
	keys       keyBindings
}

// NewModel wires a fresh registry, store, and dispatcher, and registers the
// demo panels. The watcher may be nil when no keymap file is configured.
func NewModel(table keymap.Table, watcher *keymap.Watcher, viewers, width, height int, showFooter bool) *Model {
	if viewers < 1 {
		viewers = 1
	}
	registry := panel.NewRegistry()
	store := session.NewStore(registry)
	store.Reset()
	m := &Model{
		registry:   registry,
		store:      store,
		keymap:     table,
		watcher:    watcher,
		viewers:    viewers,
		transcript: make(map[viewer.ID][]string),
		width:      width,
		height:     height,
		showFooter: showFooter,
		keys:       defaultKeyBindings(),
	}
	m.rootPanel = RegisterDemoPanels(registry, m)
	m.dispatcher = dispatch.New(store, func() event.Tick { return m.tick })
	return m
}

// OpenPanel implements Host.
func (m *Model) OpenPanel(id viewer.ID, name string) error {
	return m.store.OpenPanel(id, name)
}

// ClosePanel implements Host.
func (m *Model) ClosePanel(id viewer.ID) {
	m.store.ClosePanel(id)
}

// Announce implements Host, keeping a short per-viewer transcript in place of
// the game's speech output.
func (m *Model) Announce(id viewer.ID, text string) {
	lines := append(m.transcript[id], text)
	if len(lines) > transcriptLines {
		lines = lines[len(lines)-transcriptLines:]
	}
	m.transcript[id] = lines
}

// Init is part of the tea.Model interface.
func (m *Model) Init() tea.Cmd {
	cmds := []tea.Cmd{scheduleRebuild()}
	if m.watcher != nil {
		cmds = append(cmds, waitForKeymapEvent(m.watcher))
	}
	return tea.Batch(cmds...)
}

// Update responds to Bubble Tea messages.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	case keymapMsg:
		m.handleKeymapEvent(msg.ev)
		return m, waitForKeymapEvent(m.watcher)
	case rebuildMsg:
		m.rebuildOpenPanels()
		return m, scheduleRebuild()
	}
	return m, nil
}

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Quit) {
		return m, tea.Quit
	}
	if key.Matches(msg, m.keys.NextViewer) {
		m.active = (m.active + 1) % viewer.ID(m.viewers)
		m.infoMsg = "viewer " + m.active.String()
		return m, nil
	}
	binding, ok := m.keymap[msg.String()]
	if !ok {
		return m, nil
	}
	// Each host delivery is its own discrete time step in this demo.
	m.tick++
	m.errMsg = ""
	handled, err := m.dispatcher.Dispatch(m.active, event.Event{Name: binding.Event, Mods: binding.Mods})
	if err != nil {
		logging.Error(err)
		m.errMsg = err.Error()
		return m, nil
	}
	if !handled && binding.Event == event.LeftClick {
		// The UI is closed; the host default for the click is to open it.
		if err := m.store.OpenPanel(m.active, m.rootPanel); err != nil {
			logging.Error(err)
			m.errMsg = err.Error()
		}
	}
	return m, nil
}

func (m *Model) handleKeymapEvent(ev keymap.Event) {
	if ev.Err != nil {
		logging.Error(ev.Err)
		m.errMsg = ev.Err.Error()
		return
	}
	m.keymap = ev.Table
	// A keymap change is a configuration change; prior UI state is invalid.
	m.store.Reset()
	m.infoMsg = "keymap reloaded, panels closed"
	events.App.KeymapReloaded("", len(ev.Table))
}

// rebuildOpenPanels is the host-driven periodic sweep: every open panel of
// every viewer recomputes derived state top-down.
func (m *Model) rebuildOpenPanels() {
	for id := viewer.ID(0); id < viewer.ID(m.viewers); id++ {
		name, open := m.store.ActivePanelName(id)
		if !open {
			continue
		}
		desc, err := m.registry.Lookup(name)
		if err != nil {
			logging.Error(err)
			continue
		}
		if inst, ok := m.store.ActiveInstanceState(id); ok {
			panel.Rebuild(id, desc, inst)
		}
	}
}

func scheduleRebuild() tea.Cmd {
	return tea.Tick(rebuildInterval, func(time.Time) tea.Msg {
		return rebuildMsg{}
	})
}

func waitForKeymapEvent(w *keymap.Watcher) tea.Cmd {
	if w == nil {
		return nil
	}
	return func() tea.Msg {
		ev, ok := <-w.Events()
		if !ok {
			return nil
		}
		return keymapMsg{ev: ev}
	}
}
