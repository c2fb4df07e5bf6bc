// Package theme holds the Lip Gloss styles shared across the demo host UI.
package theme

import "github.com/charmbracelet/lipgloss"

// Styles describes reusable Lip Gloss styles shared across the UI.
type Styles struct {
	Header     *lipgloss.Style
	Tab        *lipgloss.Style
	ActiveTab  *lipgloss.Style
	Control    *lipgloss.Style
	Focused    *lipgloss.Style
	Transcript *lipgloss.Style
	Error      *lipgloss.Style
	Info       *lipgloss.Style
	Footer     *lipgloss.Style
	PanelBox   *lipgloss.Style
}

var defaultStyles = Styles{
	Header: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Bold(true),
	),
	Tab: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
	),
	ActiveTab: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Background(lipgloss.Color("238")).Bold(true),
	),
	Control: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("249")),
	),
	Focused: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("33")).Bold(true),
	),
	Transcript: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("250")).Italic(true),
	),
	Error: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true),
	),
	Info: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("249")),
	),
	Footer: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
	),
	PanelBox: ptr(
		lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("240")).Padding(0, 1),
	),
}

// Default exposes the standard style set used across the application.
func Default() *Styles {
	return &defaultStyles
}

func ptr(style lipgloss.Style) *lipgloss.Style {
	return &style
}
