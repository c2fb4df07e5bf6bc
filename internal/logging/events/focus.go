package events

import "github.com/accessrig/overlay-panel-control/internal/logging"

type FocusTracer struct{}

var Focus = FocusTracer{}

func (FocusTracer) Move(viewer int, panel, from, to string) {
	logging.Trace("focus.move", map[string]interface{}{
		"viewer": viewer,
		"panel":  panel,
		"from":   from,
		"to":     to,
	})
}

func (FocusTracer) Tab(viewer int, panel, tab string) {
	logging.Trace("focus.tab", map[string]interface{}{
		"viewer": viewer,
		"panel":  panel,
		"tab":    tab,
	})
}
