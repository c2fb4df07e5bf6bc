// Package event declares the fixed vocabulary of abstract input events the
// host can deliver to the overlay, plus the discrete tick type the dispatcher
// debounces against.
package event

// Name identifies one logical input event.
type Name string

const (
	Up          Name = "evt_up"
	Down        Name = "evt_down"
	Left        Name = "evt_left"
	Right       Name = "evt_right"
	TabForward  Name = "evt_tab_forward"
	TabBackward Name = "evt_tab_backward"
	LeftClick   Name = "evt_left_click"
	RightClick  Name = "evt_right_click"
)

// Names returns the complete vocabulary in a stable order so bulk operations
// (wiring host key bindings, building handler tables) never hardcode the list.
func Names() []Name {
	return []Name{
		Up,
		Down,
		Left,
		Right,
		TabForward,
		TabBackward,
		LeftClick,
		RightClick,
	}
}

// Valid reports whether n belongs to the vocabulary.
func Valid(n Name) bool {
	for _, known := range Names() {
		if n == known {
			return true
		}
	}
	return false
}

// Modifiers carries the modifier flags the host attaches to click variants.
type Modifiers struct {
	Ctrl  bool
	Shift bool
	Alt   bool
}

// Event is one abstract input event as delivered by the host.
type Event struct {
	Name Name
	Mods Modifiers
}

// Tick is the host's discrete time step. The dispatcher compares ticks for
// equality only; wall-clock time never enters the debounce.
type Tick int64

// NoTick is the debounce sentinel. No real tick compares equal to it.
const NoTick Tick = -1
