package markdown

import (
	"strings"

	"github.com/charmbracelet/glamour"
)

type Model struct {
	renderer *glamour.TermRenderer
	error    error
}

// New creates a renderer for one of glamour's standard styles, wrapping at
// width.
func New(style string, width int) Model {
	renderer, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle(style),
		glamour.WithWordWrap(max(width, 20)),
	)

	return Model{
		renderer: renderer,
		error:    err,
	}
}

// Render renders markdown
func (m Model) Render(markdown string) (string, error) {
	if m.error != nil {
		return "", m.error
	}

	out, err := m.renderer.Render(markdown)
	if err != nil {
		return "", err
	}

	return strings.Trim(out, "\n"), nil
}
