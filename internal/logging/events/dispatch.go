package events

import "github.com/accessrig/overlay-panel-control/internal/logging"

type DispatchTracer struct{}

var Dispatch = DispatchTracer{}

func (DispatchTracer) Handled(viewer int, event, panel string, tick int64) {
	logging.Trace("dispatch.handled", map[string]interface{}{
		"viewer": viewer,
		"event":  event,
		"panel":  panel,
		"tick":   tick,
	})
}

func (DispatchTracer) Debounced(viewer int, event string, tick int64) {
	logging.Trace("dispatch.debounced", map[string]interface{}{
		"viewer": viewer,
		"event":  event,
		"tick":   tick,
	})
}

func (DispatchTracer) Ignored(viewer int, event string) {
	logging.Trace("dispatch.ignored", map[string]interface{}{
		"viewer": viewer,
		"event":  event,
	})
}
