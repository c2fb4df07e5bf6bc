package main

import (
	"fmt"
	"os"

	"github.com/google/uuid"
	"golang.org/x/term"

	"github.com/accessrig/overlay-panel-control/internal/app"
	"github.com/accessrig/overlay-panel-control/internal/config"
	"github.com/accessrig/overlay-panel-control/internal/logging"
	"github.com/accessrig/overlay-panel-control/internal/logging/events"
)

func main() {
	runtimeCfg := config.MustLoad()
	logging.Configure(runtimeCfg.Logging.FilePath)
	logging.SetTraceEnabled(runtimeCfg.Logging.Trace)

	events.App.Start(startupTracePayload(runtimeCfg))

	if err := app.Run(runtimeCfg.App); err != nil {
		logging.Error(err)
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// startupTracePayload bundles runtime context for trace logging.
func startupTracePayload(cfg config.Config) map[string]interface{} {
	flags := make(map[string]interface{}, len(cfg.Flags))
	for k, v := range cfg.Flags {
		flags[k] = v
	}
	payload := map[string]interface{}{
		"session": uuid.NewString(),
		"argv":    cfg.Args,
		"flags":   flags,
		"config":  cfg,
	}
	if exe, err := os.Executable(); err == nil {
		payload["executable"] = exe
	}
	if cwd, err := os.Getwd(); err == nil {
		payload["cwd"] = cwd
	}
	payload["tty"] = collectTTYDetails()
	return payload
}

type ttyProbeResult struct {
	Name       string `json:"name"`
	IsTerminal bool   `json:"is_terminal"`
	Width      int    `json:"width,omitempty"`
	Height     int    `json:"height,omitempty"`
	Error      string `json:"error,omitempty"`
}

// collectTTYDetails inspects standard descriptors for terminal support and
// dimensions.
func collectTTYDetails() []ttyProbeResult {
	probes := []struct {
		name string
		fd   uintptr
	}{
		{"stdin", os.Stdin.Fd()},
		{"stdout", os.Stdout.Fd()},
		{"stderr", os.Stderr.Fd()},
	}
	results := make([]ttyProbeResult, 0, len(probes))
	for _, probe := range probes {
		entry := ttyProbeResult{Name: probe.name}
		fd := int(probe.fd)
		if fd >= 0 && term.IsTerminal(fd) {
			entry.IsTerminal = true
			if width, height, err := term.GetSize(fd); err == nil {
				entry.Width = width
				entry.Height = height
			} else {
				entry.Error = err.Error()
			}
		}
		results = append(results, entry)
	}
	return results
}
