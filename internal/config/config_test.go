package config

import (
	"strings"
	"testing"
)

func TestLoadArgsDefaults(t *testing.T) {
	cfg, err := LoadArgs(nil, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.App.Viewers != 2 {
		t.Fatalf("expected default viewers 2, got %d", cfg.App.Viewers)
	}
	if cfg.App.KeymapPath != "" || cfg.App.Width != 0 || cfg.App.Height != 0 {
		t.Fatalf("unexpected non-zero defaults: %+v", cfg.App)
	}
	if !cfg.App.ShowFooter {
		t.Fatalf("expected footer enabled by default")
	}
	if cfg.Logging.Trace {
		t.Fatalf("expected trace disabled by default")
	}
}

func TestLoadArgsFlags(t *testing.T) {
	args := []string{"-keymap", "keys.yaml", "-viewers", "4", "-width", "80", "-height", "24", "-footer=false", "-trace", "-log-file", "out.log"}
	cfg, err := LoadArgs(args, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.App.KeymapPath != "keys.yaml" || cfg.App.Viewers != 4 || cfg.App.Width != 80 || cfg.App.Height != 24 {
		t.Fatalf("unexpected app config: %+v", cfg.App)
	}
	if cfg.App.ShowFooter {
		t.Fatalf("expected footer disabled")
	}
	if !cfg.Logging.Trace || cfg.Logging.FilePath != "out.log" {
		t.Fatalf("unexpected logging config: %+v", cfg.Logging)
	}
	if cfg.Flags["viewers"] != "4" {
		t.Fatalf("expected flags snapshot to record viewers=4, got %q", cfg.Flags["viewers"])
	}
}

func TestLoadArgsEnvironment(t *testing.T) {
	environ := []string{
		"OVERLAY_PANEL_KEYMAP=env.yaml",
		"OVERLAY_PANEL_VIEWERS=3",
		"OVERLAY_PANEL_FOOTER=false",
		"OVERLAY_PANEL_TRACE=1",
	}
	cfg, err := LoadArgs(nil, environ)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.App.KeymapPath != "env.yaml" || cfg.App.Viewers != 3 {
		t.Fatalf("unexpected app config from env: %+v", cfg.App)
	}
	if cfg.App.ShowFooter || !cfg.Logging.Trace {
		t.Fatalf("env booleans not applied: footer=%v trace=%v", cfg.App.ShowFooter, cfg.Logging.Trace)
	}
}

func TestLoadArgsFlagsWinOverEnvironment(t *testing.T) {
	cfg, err := LoadArgs([]string{"-viewers", "5"}, []string{"OVERLAY_PANEL_VIEWERS=9"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.App.Viewers != 5 {
		t.Fatalf("expected flag to win over env, got %d", cfg.App.Viewers)
	}
}

func TestLoadArgsMalformedEnvFallsBack(t *testing.T) {
	cfg, err := LoadArgs(nil, []string{"OVERLAY_PANEL_VIEWERS=lots", "OVERLAY_PANEL_FOOTER=maybe"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.App.Viewers != 2 || !cfg.App.ShowFooter {
		t.Fatalf("expected defaults for malformed env, got %+v", cfg.App)
	}
}

func TestLoadArgsValidation(t *testing.T) {
	cases := []struct {
		name string
		args []string
		want string
	}{
		{name: "zero viewers", args: []string{"-viewers", "0"}, want: "viewers"},
		{name: "negative width", args: []string{"-width", "-1"}, want: "width"},
		{name: "negative height", args: []string{"-height", "-2"}, want: "height"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := LoadArgs(tc.args, nil)
			if err == nil {
				t.Fatalf("expected error")
			}
			if !strings.Contains(err.Error(), tc.want) {
				t.Fatalf("expected error mentioning %q, got %v", tc.want, err)
			}
		})
	}
}

func TestLoadArgsUnknownFlagFails(t *testing.T) {
	if _, err := LoadArgs([]string{"-bogus"}, nil); err == nil {
		t.Fatalf("expected error for unknown flag")
	}
}
