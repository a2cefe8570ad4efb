package tui

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"
	"github.com/ionut-t/wordy/ui/help"
)

func (m model) renderHelp() string {
	return lipgloss.JoinVertical(
		lipgloss.Left,
		m.renderHelpSection("Focus", focusBindings),
		"",
		m.renderHelpSection("Actions", actionBindings),
		"",
		m.renderHelpSection("General", generalBindings),
	)
}

func (m model) renderHelpSection(title string, bindings []key.Binding) string {
	palette := m.palette()

	return palette.TextStyle().Bold(true).Render(title) + "\n" +
		help.RenderHelpView(max(m.width-4, 20), palette, bindings)
}
