package events

import "github.com/accessrig/overlay-panel-control/internal/logging"

type AppTracer struct{}

var App = AppTracer{}

func (AppTracer) Start(payload map[string]interface{}) {
	logging.Trace("app.start", payload)
}

func (AppTracer) KeymapReloaded(path string, bindings int) {
	logging.Trace("app.keymap-reload", map[string]interface{}{
		"path":     path,
		"bindings": bindings,
	})
}
