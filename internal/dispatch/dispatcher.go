// Package dispatch routes abstract input events from the host to the active
// panel of the addressed viewer.
package dispatch

import (
	"github.com/accessrig/overlay-panel-control/internal/event"
	"github.com/accessrig/overlay-panel-control/internal/logging/events"
	"github.com/accessrig/overlay-panel-control/internal/panel"
	"github.com/accessrig/overlay-panel-control/internal/session"
	"github.com/accessrig/overlay-panel-control/internal/viewer"
)

// Clock supplies the host's current discrete time step. The debounce compares
// ticks for equality only.
type Clock func() event.Tick

type debounceKey struct {
	viewer viewer.ID
	name   event.Name
}

// Dispatcher delivers one event at a time to the top of a viewer's panel
// stack. The same-tick debounce is keyed per (viewer, event name): hosts map
// several physical bindings onto one logical action and deliver each of them,
// and only the first within a tick may act, or cursor moves and clicks would
// double-apply. Keying by viewer keeps one viewer's input from suppressing
// another's.
type Dispatcher struct {
	store *session.Store
	clock Clock
	last  map[debounceKey]event.Tick
}

func New(store *session.Store, clock Clock) *Dispatcher {
	return &Dispatcher{
		store: store,
		clock: clock,
		last:  make(map[debounceKey]event.Tick),
	}
}

// Dispatch reports whether a panel swallowed the event. False means the UI is
// closed for this viewer and the host's own default behaviour applies. An
// open panel always swallows, whether or not any control reacted. The error
// return carries panel-author contract violations only; there is no
// recoverable failure here.
func (d *Dispatcher) Dispatch(id viewer.ID, ev event.Event) (bool, error) {
	name, open := d.store.ActivePanelName(id)
	if !open {
		events.Dispatch.Ignored(int(id), string(ev.Name))
		return false, nil
	}
	tick := event.NoTick
	if d.clock != nil {
		tick = d.clock()
	}
	key := debounceKey{viewer: id, name: ev.Name}
	if last, seen := d.last[key]; seen && tick != event.NoTick && last == tick {
		events.Dispatch.Debounced(int(id), string(ev.Name), int64(tick))
		return true, nil
	}
	desc, err := d.store.Registry().Lookup(name)
	if err != nil {
		return false, err
	}
	inst, _ := d.store.ActiveInstanceState(id)
	if err := panel.HandleEvent(id, desc, inst, ev); err != nil {
		return false, err
	}
	d.last[key] = tick
	events.Dispatch.Handled(int(id), string(ev.Name), name, int64(tick))
	return true, nil
}

// EventNames returns the full ordered vocabulary so hosts can wire every
// logical action to their input bindings without hardcoding the list.
func (d *Dispatcher) EventNames() []event.Name {
	return event.Names()
}
