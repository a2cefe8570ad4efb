package styles

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"
)

// Hex parses a colour, falling back to black.
func Hex(s string) colorful.Color {
	c, err := colorful.Hex(s)
	if err != nil {
		return colorful.Color{}
	}
	return c
}

// Fade blends fg onto bg at the given alpha, 0 being fully bg.
func Fade(fg, bg string, alpha float64) lipgloss.Color {
	alpha = min(max(alpha, 0), 1)
	return lipgloss.Color(Hex(bg).BlendRgb(Hex(fg), alpha).Clamped().Hex())
}

// Gradient colours each rune of text along from -> to. With background set
// the gradient paints the cell background and fg colours the text.
func Gradient(text string, from, to colorful.Color, background bool, fg string) string {
	runes := []rune(text)
	if len(runes) == 0 {
		return ""
	}

	var sb strings.Builder

	for i, r := range runes {
		t := 0.0
		if len(runes) > 1 {
			t = float64(i) / float64(len(runes)-1)
		}

		c := lipgloss.Color(from.BlendLab(to, t).Clamped().Hex())
		style := lipgloss.NewStyle()

		if background {
			style = style.Background(c).Foreground(lipgloss.Color(fg))
		} else {
			style = style.Foreground(c)
		}

		sb.WriteString(style.Render(string(r)))
	}

	return sb.String()
}
