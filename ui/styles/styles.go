package styles

import (
	"github.com/charmbracelet/lipgloss"
)

var ViewPadding = lipgloss.NewStyle().Padding(0, 1)

// Border returns a rounded border in the given colour.
func Border(hex string) lipgloss.Style {
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(hex))
}

// ActiveBorder is the border of the focused element.
func (p Palette) ActiveBorder() lipgloss.Style {
	return Border(p.Primary)
}

// InactiveBorder is the border of every other element.
func (p Palette) InactiveBorder() lipgloss.Style {
	return Border(p.Muted)
}
