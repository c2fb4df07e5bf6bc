package keymap

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/accessrig/overlay-panel-control/internal/event"
)

const watchTimeout = 5 * time.Second

func writeKeymapFile(t *testing.T, path, contents string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		t.Fatalf("write keymap: %v", err)
	}
}

func TestWatcherReloadsOnWrite(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "keymap.yaml")
	writeKeymapFile(t, path, "j: evt_down\n")

	w, err := NewWatcher(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	defer w.Stop()

	writeKeymapFile(t, path, "j: evt_up\n")

	select {
	case ev := <-w.Events():
		if ev.Err != nil {
			t.Fatalf("unexpected reload error: %v", ev.Err)
		}
		if got := ev.Table["j"].Event; got != event.Up {
			t.Fatalf("expected reloaded binding evt_up, got %s", got)
		}
	case <-time.After(watchTimeout):
		t.Fatalf("timed out waiting for a reload event")
	}
}

func TestWatcherReportsBrokenFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "keymap.yaml")
	writeKeymapFile(t, path, "j: evt_down\n")

	w, err := NewWatcher(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	defer w.Stop()

	writeKeymapFile(t, path, "j: evt_bogus\n")

	select {
	case ev := <-w.Events():
		if ev.Err == nil {
			t.Fatalf("expected a reload error for an invalid binding")
		}
	case <-time.After(watchTimeout):
		t.Fatalf("timed out waiting for a reload event")
	}
}

func TestWatcherIgnoresSiblingFiles(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "keymap.yaml")
	writeKeymapFile(t, path, "j: evt_down\n")

	w, err := NewWatcher(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	defer w.Stop()

	writeKeymapFile(t, filepath.Join(dir, "other.yaml"), "noise\n")

	select {
	case ev := <-w.Events():
		t.Fatalf("unexpected event for a sibling file: %+v", ev)
	case <-time.After(500 * time.Millisecond):
	}
}

func TestWatcherStopClosesEvents(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "keymap.yaml")
	writeKeymapFile(t, path, "j: evt_down\n")

	w, err := NewWatcher(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	w.Stop()

	select {
	case _, ok := <-w.Events():
		if ok {
			t.Fatalf("expected the events channel to close after Stop")
		}
	case <-time.After(watchTimeout):
		t.Fatalf("timed out waiting for the events channel to close")
	}
}
