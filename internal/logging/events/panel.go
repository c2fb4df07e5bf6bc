package events

import "github.com/accessrig/overlay-panel-control/internal/logging"

type PanelTracer struct{}

var Panel = PanelTracer{}

func (PanelTracer) Built(name string) {
	logging.Trace("panel.built", map[string]interface{}{"panel": name})
}

func (PanelTracer) Open(viewer int, name string, depth int) {
	logging.Trace("panel.open", map[string]interface{}{
		"viewer": viewer,
		"panel":  name,
		"depth":  depth,
	})
}

func (PanelTracer) Close(viewer int, name string, depth int) {
	logging.Trace("panel.close", map[string]interface{}{
		"viewer": viewer,
		"panel":  name,
		"depth":  depth,
	})
}

func (PanelTracer) Reset() {
	logging.Trace("panel.reset", nil)
}
