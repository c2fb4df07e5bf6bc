package ui

import (
	"fmt"

	"github.com/accessrig/overlay-panel-control/internal/controls"
	"github.com/accessrig/overlay-panel-control/internal/event"
	"github.com/accessrig/overlay-panel-control/internal/lazy"
	"github.com/accessrig/overlay-panel-control/internal/panel"
	"github.com/accessrig/overlay-panel-control/internal/viewer"
)

// Host is what demo panels need from the application driving them: stack
// mutations and an announcement sink. The runtime itself never sees it.
type Host interface {
	OpenPanel(id viewer.ID, name string) error
	ClosePanel(id viewer.ID)
	Announce(id viewer.ID, text string)
}

// RegisterDemoPanels wires the built-in example panels into reg and returns
// the name of the root panel. Registration happens once, at load time,
// before any dispatch.
func RegisterDemoPanels(reg *panel.Registry, host Host) string {
	closeTop := func(id viewer.ID, ctx *panel.Context, ev event.Event) {
		host.ClosePanel(id)
	}

	help := reg.MustRegister("help", func(b *panel.Builder) {
		// No tabs: the panel is self-focused and runs on defaults alone.
		b.On(event.LeftClick, closeTop)
		b.On(event.RightClick, closeTop)
	})

	settings := reg.MustRegister("settings", func(b *panel.Builder) {
		b.AddTab("display", func(t *panel.TabBuilder) {
			t.AddControl("scale", &controls.ActionMenu{
				Items: []controls.Item{
					{ID: "scale-small", Label: lazy.Lit("Small interface")},
					{ID: "scale-large", Label: lazy.Lit("Large interface")},
				},
				Announce: host.Announce,
			})
			t.AddControl("contrast", &controls.ActionMenu{
				Items: []controls.Item{
					{ID: "contrast-normal", Label: lazy.Lit("Normal contrast")},
					{ID: "contrast-high", Label: lazy.Lit("High contrast")},
				},
				Announce: host.Announce,
			})
		})
		b.AddTab("audio", func(t *panel.TabBuilder) {
			t.AddControl("volume", &controls.ActionMenu{
				Items: []controls.Item{
					{ID: "vol-up", Label: lazy.Fn(func(id viewer.ID) string {
						return fmt.Sprintf("Raise volume (viewer %s)", id)
					})},
					{ID: "vol-down", Label: lazy.Lit("Lower volume")},
				},
				Announce: host.Announce,
			})
		})
		b.On(event.RightClick, closeTop)
	})

	return reg.MustRegister("main-menu", func(b *panel.Builder) {
		b.AddTab("actions", func(t *panel.TabBuilder) {
			t.AddControl("menu", &controls.ActionMenu{
				Items: []controls.Item{
					{
						ID:    "open-settings",
						Label: lazy.Lit("Open settings"),
						Action: func(id viewer.ID, ctx *panel.Context) {
							if err := host.OpenPanel(id, settings); err != nil {
								host.Announce(id, err.Error())
							}
						},
					},
					{
						ID:    "open-help",
						Label: lazy.Lit("Help"),
						Action: func(id viewer.ID, ctx *panel.Context) {
							if err := host.OpenPanel(id, help); err != nil {
								host.Announce(id, err.Error())
							}
						},
					},
					{
						ID:       "fast-travel",
						Label:    lazy.Lit("Fast travel"),
						Disabled: lazy.Fn(func(id viewer.ID) bool { return id != 0 }),
						Action: func(id viewer.ID, ctx *panel.Context) {
							host.Announce(id, "Travelling…")
						},
					},
					{
						ID:    "close",
						Label: lazy.Lit("Close menu"),
						Action: func(id viewer.ID, ctx *panel.Context) {
							host.ClosePanel(id)
						},
					},
				},
				Announce: host.Announce,
			})
		})
		b.On(event.RightClick, closeTop)
	})
}
