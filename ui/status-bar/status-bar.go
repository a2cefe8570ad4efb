package statusbar

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/ionut-t/wordy/ui/styles"
)

// Info is what the status bar shows.
type Info struct {
	Mode        string
	Celebrating bool
	Words       int
	Progress    int
	Target      int
}

func StatusBarView(info Info, palette styles.Palette, width int) string {
	bar := palette.SurfaceStyle()
	bg := bar.GetBackground()

	separator := bar.Render(" | ")

	modeName := palette.PrimaryStyle().Background(bg).Bold(true).Render(strings.ToUpper(info.Mode))

	parts := []string{modeName}

	if info.Celebrating {
		parts = append(parts, palette.Fg(palette.Warning).Background(bg).Render("🌈 rainbow"))
	}

	parts = append(parts, palette.AccentStyle().Background(bg).Render(fmt.Sprintf("%d words", info.Words)))

	if info.Progress > 0 && info.Target > 0 {
		parts = append(parts, palette.MutedStyle().Background(bg).Render(
			strings.Repeat("•", info.Progress)+strings.Repeat("·", max(info.Target-info.Progress, 0)),
		))
	}

	left := bar.Padding(0, 1).Render(strings.Join(parts, separator))

	helpText := palette.Fg(palette.Info).Background(bg).PaddingRight(1).Render("? Help")

	displayedInfoWidth := width -
		lipgloss.Width(left) -
		lipgloss.Width(helpText)

	spaces := bar.Render(strings.Repeat(" ", max(0, displayedInfoWidth)))

	return bar.Width(width).Render(
		lipgloss.JoinHorizontal(
			lipgloss.Right,
			left,
			spaces,
			helpText,
		),
	)
}
