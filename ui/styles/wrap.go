package styles

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Wrap breaks text into lines of at most width cells without splitting
// words. Words longer than width stay on their own line.
func Wrap(width int, text string) string {
	var lines []string

	for line := range strings.SplitSeq(text, "\n") {
		if lipgloss.Width(line) <= width {
			lines = append(lines, line)
			continue
		}

		var currentLine strings.Builder
		for _, word := range strings.Fields(line) {
			if currentLine.Len() == 0 {
				currentLine.WriteString(word)
				continue
			}

			if lipgloss.Width(currentLine.String()+" "+word) <= width {
				currentLine.WriteString(" " + word)
				continue
			}

			lines = append(lines, currentLine.String())
			currentLine.Reset()
			currentLine.WriteString(word)
		}

		if currentLine.Len() > 0 {
			lines = append(lines, currentLine.String())
		}
	}

	return strings.Join(lines, "\n")
}
