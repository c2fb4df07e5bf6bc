// Package config loads runtime configuration from CLI flags and environment
// variables. Flags win over environment values.
package config

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/accessrig/overlay-panel-control/internal/app"
)

// Config captures runtime configuration for the application.
type Config struct {
	App     app.Config
	Logging Logging
	Flags   map[string]string
	Args    []string
}

type Logging struct {
	FilePath string
	Trace    bool
}

const (
	envKeymap  = "OVERLAY_PANEL_KEYMAP"
	envViewers = "OVERLAY_PANEL_VIEWERS"
	envWidth   = "OVERLAY_PANEL_WIDTH"
	envHeight  = "OVERLAY_PANEL_HEIGHT"
	envFooter  = "OVERLAY_PANEL_FOOTER"
	envTrace   = "OVERLAY_PANEL_TRACE"
	envLogFile = "OVERLAY_PANEL_LOG_FILE"
)

// Load parses configuration from CLI arguments and environment variables.
func Load() (Config, error) {
	return LoadArgs(os.Args[1:], os.Environ())
}

// LoadArgs allows tests to supply specific args/environment.
func LoadArgs(args []string, environ []string) (Config, error) {
	env := parseEnv(environ)

	fs := flag.NewFlagSet("overlay-panel-control", flag.ContinueOnError)
	fs.SetOutput(new(strings.Builder))

	keymapPath := fs.String("keymap", envOrDefault(env, envKeymap, ""), "path to a keymap override file (yaml); watched for changes")
	viewers := fs.Int("viewers", envOrInt(env, envViewers, 2), "number of simulated viewers")
	width := fs.Int("width", envOrInt(env, envWidth, 0), "desired viewport width in cells (0 uses terminal width)")
	height := fs.Int("height", envOrInt(env, envHeight, 0), "desired viewport height in rows (0 uses terminal height)")
	footer := fs.Bool("footer", envOrBool(env, envFooter, true), "show the footer hint row")
	trace := fs.Bool("trace", envOrBool(env, envTrace, false), "enable verbose JSON trace logging")
	logFile := fs.String("log-file", envOrDefault(env, envLogFile, ""), "path to the log file")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	if *viewers < 1 {
		return Config{}, fmt.Errorf("viewers must be >= 1 (got %d)", *viewers)
	}
	if *width < 0 {
		return Config{}, fmt.Errorf("width must be >= 0 (got %d)", *width)
	}
	if *height < 0 {
		return Config{}, fmt.Errorf("height must be >= 0 (got %d)", *height)
	}

	cfg := Config{
		App: app.Config{
			KeymapPath: *keymapPath,
			Viewers:    *viewers,
			Width:      *width,
			Height:     *height,
			ShowFooter: *footer,
		},
		Logging: Logging{
			FilePath: *logFile,
			Trace:    *trace,
		},
		Flags: map[string]string{
			"keymap":  *keymapPath,
			"viewers": strconv.Itoa(*viewers),
			"width":   strconv.Itoa(*width),
			"height":  strconv.Itoa(*height),
			"footer":  strconv.FormatBool(*footer),
			"trace":   strconv.FormatBool(*trace),
			"logFile": *logFile,
		},
		Args: append([]string(nil), args...),
	}

	return cfg, nil
}

func parseEnv(environ []string) map[string]string {
	values := make(map[string]string, len(environ))
	for _, entry := range environ {
		if entry == "" {
			continue
		}
		parts := strings.SplitN(entry, "=", 2)
		if len(parts) != 2 {
			continue
		}
		values[parts[0]] = parts[1]
	}
	return values
}

func envOrDefault(env map[string]string, key, fallback string) string {
	if v, ok := env[key]; ok {
		return v
	}
	return fallback
}

func envOrInt(env map[string]string, key string, fallback int) int {
	v, ok := env[key]
	if !ok || strings.TrimSpace(v) == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return parsed
}

func envOrBool(env map[string]string, key string, fallback bool) bool {
	v, ok := env[key]
	if !ok || strings.TrimSpace(v) == "" {
		return fallback
	}
	parsed, err := strconv.ParseBool(v)
	if err != nil {
		return fallback
	}
	return parsed
}

// MustLoad returns configuration or exits.
func MustLoad() Config {
	cfg, err := Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Configuration error: %v\n", err)
		os.Exit(2)
	}
	return cfg
}
