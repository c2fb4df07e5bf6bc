// Package app bootstraps the demo host around the panel runtime.
package app

import (
	"errors"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/accessrig/overlay-panel-control/internal/keymap"
	"github.com/accessrig/overlay-panel-control/internal/logging"
	"github.com/accessrig/overlay-panel-control/internal/ui"
)

// Config describes user-provided application options.
type Config struct {
	KeymapPath string
	Viewers    int
	Width      int
	Height     int
	ShowFooter bool
}

// Run bootstraps and executes the Bubble Tea program.
func Run(cfg Config) error {
	table, err := keymap.Load(cfg.KeymapPath)
	if err != nil {
		return fmt.Errorf("load keymap: %w", err)
	}

	var watcher *keymap.Watcher
	if cfg.KeymapPath != "" {
		watcher, err = keymap.NewWatcher(cfg.KeymapPath)
		if err != nil {
			// A dead watcher only costs live reloads; start anyway.
			logging.Error(fmt.Errorf("watch keymap: %w", err))
			watcher = nil
		} else {
			defer watcher.Stop()
		}
	}

	model := ui.NewModel(table, watcher, cfg.Viewers, cfg.Width, cfg.Height, cfg.ShowFooter)
	program := tea.NewProgram(model, tea.WithAltScreen())
	_, err = program.Run()
	if errors.Is(err, tea.ErrProgramKilled) {
		return nil
	}
	return err
}
