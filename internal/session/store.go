// Package session owns all per-viewer UI state: the stack of open panels and
// the instance state of every panel a viewer has ever opened. One Store
// exists per process; it is constructed explicitly and injected rather than
// reached as an ambient singleton so tests can build a fresh one each time.
package session

import (
	"github.com/accessrig/overlay-panel-control/internal/logging/events"
	"github.com/accessrig/overlay-panel-control/internal/panel"
	"github.com/accessrig/overlay-panel-control/internal/viewer"
)

// Frame is one entry in a viewer's panel stack. The top frame names the
// active panel; the name is guaranteed registered at push time.
type Frame struct {
	PanelName string
}

// ViewerState is everything the runtime keeps for one viewer. PanelStates
// outlives the stack: closing a panel keeps its instance state so a reopen
// resumes where the viewer left off.
type ViewerState struct {
	Stack       []Frame
	PanelStates map[string]*panel.InstanceState
}

// Store keys all UI state by viewer identity. No state is shared across
// viewers; the descriptor cache inside the registry is the only cross-viewer
// resource.
type Store struct {
	registry *panel.Registry
	viewers  map[viewer.ID]*ViewerState
}

func NewStore(registry *panel.Registry) *Store {
	return &Store{
		registry: registry,
		viewers:  make(map[viewer.ID]*ViewerState),
	}
}

// Reset discards every viewer's stacks and panel states. The host calls it at
// process start and on any configuration change; the store cannot tell a
// save-reload from a fresh session, so both arrive here.
func (s *Store) Reset() {
	s.viewers = make(map[viewer.ID]*ViewerState)
	events.Panel.Reset()
}

// StateFor returns the state for id, creating an empty one on first sight.
func (s *Store) StateFor(id viewer.ID) *ViewerState {
	st, ok := s.viewers[id]
	if !ok {
		st = &ViewerState{PanelStates: make(map[string]*panel.InstanceState)}
		s.viewers[id] = st
	}
	return st
}

// OpenPanel resolves the descriptor (forcing the first build if needed),
// seeds the viewer's instance state on the first open of this viewer+name
// pair, and pushes a frame. Reopening after a close reuses the prior
// instance state rather than resetting it.
func (s *Store) OpenPanel(id viewer.ID, name string) error {
	desc, err := s.registry.Lookup(name)
	if err != nil {
		return err
	}
	st := s.StateFor(id)
	inst, ok := st.PanelStates[name]
	if !ok {
		inst = panel.NewInstanceState()
		st.PanelStates[name] = inst
	}
	panel.Seed(id, desc, inst)
	st.Stack = append(st.Stack, Frame{PanelName: name})
	events.Panel.Open(int(id), name, len(st.Stack))
	return nil
}

// ClosePanel pops the active panel. The panel underneath, if any, becomes
// active again with its instance state untouched.
func (s *Store) ClosePanel(id viewer.ID) (string, bool) {
	st := s.StateFor(id)
	if len(st.Stack) == 0 {
		return "", false
	}
	top := st.Stack[len(st.Stack)-1]
	st.Stack = st.Stack[:len(st.Stack)-1]
	events.Panel.Close(int(id), top.PanelName, len(st.Stack))
	return top.PanelName, true
}

// ActivePanelName returns the top of the viewer's stack. ok is false when the
// stack is empty and the UI is considered closed.
func (s *Store) ActivePanelName(id viewer.ID) (string, bool) {
	st := s.StateFor(id)
	if len(st.Stack) == 0 {
		return "", false
	}
	return st.Stack[len(st.Stack)-1].PanelName, true
}

// ActiveInstanceState returns the instance state backing the active panel,
// creating an empty one if missing. OpenPanel normally created it already;
// the lazy creation here covers hosts poking at state out of band.
func (s *Store) ActiveInstanceState(id viewer.ID) (*panel.InstanceState, bool) {
	name, ok := s.ActivePanelName(id)
	if !ok {
		return nil, false
	}
	st := s.StateFor(id)
	inst, ok := st.PanelStates[name]
	if !ok {
		inst = panel.NewInstanceState()
		st.PanelStates[name] = inst
	}
	return inst, true
}

// Registry exposes the registry this store resolves panel names against.
func (s *Store) Registry() *panel.Registry {
	return s.registry
}
