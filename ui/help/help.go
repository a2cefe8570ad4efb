package help

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/ionut-t/wordy/ui/styles"
)

type Model struct {
	viewport viewport.Model
}

func New() Model {
	vp := viewport.New(0, 0)

	return Model{
		viewport: vp,
	}
}

func (m *Model) SetSize(width, height int) {
	m.viewport.Width = width
	m.viewport.Height = height
}

func (m *Model) SetContent(helpText string) {
	m.viewport.SetContent(lipgloss.NewStyle().Padding(1, 1).Render(helpText))
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	vp, cmd := m.viewport.Update(msg)
	m.viewport = vp

	return m, cmd
}

func (m Model) View() string {
	return m.viewport.View()
}

// RenderHelpView renders a help view for key bindings with their descriptions.
func RenderHelpView(width int, palette styles.Palette, keys []key.Binding) string {
	var sb strings.Builder

	enabledBindings := make([]key.Binding, 0)
	maxKeyWidth := 0

	keyStyle := palette.Fg(palette.Info)
	descStyle := palette.TextStyle()

	for _, binding := range keys {
		if !binding.Enabled() {
			continue
		}

		enabledBindings = append(enabledBindings, binding)
		maxKeyWidth = max(maxKeyWidth, lipgloss.Width(keyStyle.Render(binding.Help().Key)))
	}

	for _, binding := range enabledBindings {
		renderedKey := keyStyle.Render(binding.Help().Key)
		currentWidth := lipgloss.Width(renderedKey)
		padding := strings.Repeat(" ", maxKeyWidth-currentWidth+2)

		totalIndentation := 2 + currentWidth + max(0, maxKeyWidth-currentWidth+2)

		desc := strings.Split(binding.Help().Desc, "\n")

		var renderedDescription strings.Builder
		for i, line := range desc {
			if i != 0 {
				renderedDescription.WriteString("\n" + strings.Repeat(" ", totalIndentation))
			}

			renderedDescription.WriteString(descStyle.Render(strings.TrimSpace(line)))
		}

		sb.WriteString(fmt.Sprintf("• %s%s%s\n",
			renderedKey,
			padding,
			renderedDescription.String(),
		))
	}

	return lipgloss.NewStyle().Width(width).Render(strings.Trim(sb.String(), "\n"))
}
