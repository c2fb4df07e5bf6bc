package keymap

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/accessrig/overlay-panel-control/internal/event"
)

func TestDefaultCoversVocabulary(t *testing.T) {
	table := Default()
	for _, name := range event.Names() {
		if len(table.Chords(name)) == 0 {
			t.Fatalf("default keymap has no chord for %s", name)
		}
	}
}

func TestDefaultChordsResolve(t *testing.T) {
	table := Default()
	cases := []struct {
		chord string
		want  event.Name
	}{
		{"up", event.Up},
		{"k", event.Up},
		{"j", event.Down},
		{"tab", event.TabForward},
		{"shift+tab", event.TabBackward},
		{"enter", event.LeftClick},
		{" ", event.LeftClick},
		{"r", event.RightClick},
	}
	for _, tc := range cases {
		binding, ok := table[tc.chord]
		if !ok {
			t.Fatalf("expected chord %q to be bound", tc.chord)
		}
		if binding.Event != tc.want {
			t.Fatalf("chord %q: expected %s, got %s", tc.chord, tc.want, binding.Event)
		}
	}
}

func TestParseBinding(t *testing.T) {
	cases := []struct {
		spec    string
		want    Binding
		wantErr bool
	}{
		{spec: "evt_up", want: Binding{Event: event.Up}},
		{spec: "evt_right_click+ctrl", want: Binding{Event: event.RightClick, Mods: event.Modifiers{Ctrl: true}}},
		{spec: "evt_left_click+shift+alt", want: Binding{Event: event.LeftClick, Mods: event.Modifiers{Shift: true, Alt: true}}},
		{spec: "evt_left_click+CTRL", want: Binding{Event: event.LeftClick, Mods: event.Modifiers{Ctrl: true}}},
		{spec: "", wantErr: true},
		{spec: "evt_bogus", wantErr: true},
		{spec: "evt_up+hyper", wantErr: true},
	}
	for _, tc := range cases {
		got, err := ParseBinding(tc.spec)
		if tc.wantErr {
			if err == nil {
				t.Fatalf("spec %q: expected error", tc.spec)
			}
			continue
		}
		if err != nil {
			t.Fatalf("spec %q: unexpected error: %v", tc.spec, err)
		}
		if got != tc.want {
			t.Fatalf("spec %q: expected %+v, got %+v", tc.spec, tc.want, got)
		}
	}
}

func TestLoadEmptyPathYieldsDefaults(t *testing.T) {
	table, err := Load("")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(table) != len(Default()) {
		t.Fatalf("expected defaults untouched, got %d entries", len(table))
	}
}

func TestLoadMergesOverridesOverDefaults(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "keymap.yaml")
	contents := "j: evt_up\nx: evt_right_click+ctrl\n"
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		t.Fatalf("write keymap: %v", err)
	}

	table, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := table["j"].Event; got != event.Up {
		t.Fatalf("expected j rebound to evt_up, got %s", got)
	}
	if got := table["x"]; got.Event != event.RightClick || !got.Mods.Ctrl {
		t.Fatalf("expected new chord x bound to ctrl right-click, got %+v", got)
	}
	if got := table["k"].Event; got != event.Up {
		t.Fatalf("expected untouched default k to survive, got %s", got)
	}
}

func TestLoadRejectsInvalidBinding(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "keymap.yaml")
	if err := os.WriteFile(path, []byte("j: evt_nope\n"), 0o644); err != nil {
		t.Fatalf("write keymap: %v", err)
	}
	if _, err := Load(path); err == nil {
		t.Fatalf("expected error for invalid event name")
	}
}

func TestLoadMissingFileFails(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Fatalf("expected error for missing file")
	}
}
