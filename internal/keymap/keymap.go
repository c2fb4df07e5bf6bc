// Package keymap maps physical key chords to the logical event vocabulary.
// The defaults cover every event; a config file can rebind or add chords.
package keymap

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"

	"github.com/accessrig/overlay-panel-control/internal/event"
)

// Binding is the logical action a key chord resolves to.
type Binding struct {
	Event event.Name
	Mods  event.Modifiers
}

// Table maps key chords (Bubble Tea key strings) to bindings.
type Table map[string]Binding

// Default returns the built-in bindings. Several chords map to the same
// logical event on purpose; the dispatcher's same-tick debounce absorbs the
// duplicates when a host delivers more than one per tick.
func Default() Table {
	return Table{
		"up":        {Event: event.Up},
		"k":         {Event: event.Up},
		"down":      {Event: event.Down},
		"j":         {Event: event.Down},
		"left":      {Event: event.Left},
		"h":         {Event: event.Left},
		"right":     {Event: event.Right},
		"l":         {Event: event.Right},
		"tab":       {Event: event.TabForward},
		"shift+tab": {Event: event.TabBackward},
		"enter":     {Event: event.LeftClick},
		" ":         {Event: event.LeftClick},
		"alt+enter": {Event: event.LeftClick, Mods: event.Modifiers{Alt: true}},
		"r":         {Event: event.RightClick},
		"R":         {Event: event.RightClick, Mods: event.Modifiers{Shift: true}},
		"ctrl+r":    {Event: event.RightClick, Mods: event.Modifiers{Ctrl: true}},
	}
}

// Load merges overrides from a config file over the defaults. An empty path
// yields the defaults unchanged. File entries map a chord to an event name
// with optional modifier suffixes, e.g. "evt_right_click+ctrl".
func Load(path string) (Table, error) {
	table := Default()
	if strings.TrimSpace(path) == "" {
		return table, nil
	}
	v := viper.New()
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("read keymap: %w", err)
	}
	for _, chord := range v.AllKeys() {
		binding, err := ParseBinding(v.GetString(chord))
		if err != nil {
			return nil, fmt.Errorf("keymap chord %q: %w", chord, err)
		}
		table[chord] = binding
	}
	return table, nil
}

// ParseBinding parses "event_name" or "event_name+mod[+mod...]".
func ParseBinding(spec string) (Binding, error) {
	parts := strings.Split(strings.TrimSpace(spec), "+")
	if len(parts) == 0 || parts[0] == "" {
		return Binding{}, fmt.Errorf("empty binding")
	}
	name := event.Name(parts[0])
	if !event.Valid(name) {
		return Binding{}, fmt.Errorf("unknown event %q", parts[0])
	}
	b := Binding{Event: name}
	for _, mod := range parts[1:] {
		switch strings.ToLower(strings.TrimSpace(mod)) {
		case "ctrl":
			b.Mods.Ctrl = true
		case "shift":
			b.Mods.Shift = true
		case "alt":
			b.Mods.Alt = true
		default:
			return Binding{}, fmt.Errorf("unknown modifier %q", mod)
		}
	}
	return b, nil
}

// Chords returns the chords bound to a given event name, unordered.
func (t Table) Chords(name event.Name) []string {
	var chords []string
	for chord, binding := range t {
		if binding.Event == name {
			chords = append(chords, chord)
		}
	}
	return chords
}
