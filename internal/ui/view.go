package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/accessrig/overlay-panel-control/internal/panel"
)

// View implements tea.Model.
func (m *Model) View() string {
	sections := []string{
		styles.Header.Render(fmt.Sprintf("overlay panel control — viewer %s — tick %d", m.active, m.tick)),
	}
	if body := m.viewActivePanel(); body != "" {
		sections = append(sections, body)
	} else {
		sections = append(sections, styles.Info.Render("(no panel open — press enter)"))
	}
	if lines := m.transcript[m.active]; len(lines) > 0 {
		sections = append(sections, styles.Transcript.Render(strings.Join(lines, "\n")))
	}
	if m.errMsg != "" {
		sections = append(sections, styles.Error.Render(m.errMsg))
	} else if m.infoMsg != "" {
		sections = append(sections, styles.Info.Render(m.infoMsg))
	}
	if m.showFooter {
		sections = append(sections, styles.Footer.Render("↑/↓ focus · tab tabs · enter click · r right-click · v viewer · q quit"))
	}
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m *Model) viewActivePanel() string {
	name, open := m.store.ActivePanelName(m.active)
	if !open {
		return ""
	}
	desc, err := m.registry.Lookup(name)
	if err != nil {
		return styles.Error.Render(err.Error())
	}
	inst, ok := m.store.ActiveInstanceState(m.active)
	if !ok {
		return ""
	}
	lines := []string{styles.Header.Render(desc.Name)}
	if row := renderTabRow(desc, inst); row != "" {
		lines = append(lines, row)
	}
	lines = append(lines, m.renderControls(desc, inst)...)
	return styles.PanelBox.Render(strings.Join(lines, "\n"))
}

func renderTabRow(desc *panel.Descriptor, inst *panel.InstanceState) string {
	if len(desc.Tabs) < 2 {
		return ""
	}
	parts := make([]string, 0, len(desc.Tabs))
	for i, tab := range desc.Tabs {
		if i == inst.TabIndex {
			parts = append(parts, styles.ActiveTab.Render(" "+tab.Name+" "))
		} else {
			parts = append(parts, styles.Tab.Render(" "+tab.Name+" "))
		}
	}
	return strings.Join(parts, " ")
}

func (m *Model) renderControls(desc *panel.Descriptor, inst *panel.InstanceState) []string {
	tab := panel.ActiveTab(desc, inst)
	if tab == nil {
		return []string{styles.Info.Render("(left-click or right-click to close)")}
	}
	var lines []string
	for _, slot := range tab.Slots {
		label := slot.Name
		if slot.Name == inst.Focus {
			label = styles.Focused.Render("▸ " + label)
		} else {
			label = styles.Control.Render("  " + label)
		}
		lines = append(lines, label)
		renderer, ok := slot.Control.(panel.Renderer)
		if !ok || slot.Name != inst.Focus {
			continue
		}
		body := renderer.View(m.active, panel.ContextFor(desc, inst, tab, slot))
		for _, row := range strings.Split(body, "\n") {
			lines = append(lines, styles.Control.Render("    "+row))
		}
	}
	return lines
}
