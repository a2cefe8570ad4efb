package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/ionut-t/wordy/internal/notify"
	"github.com/ionut-t/wordy/ui/styles"
)

const notificationMaxWidth = 40

func (m model) toneColour(tone notify.Tone) string {
	palette := m.palette()

	switch tone {
	case notify.ToneFast:
		return palette.Accent
	case notify.ToneGood:
		return palette.Success
	case notify.ToneSlow:
		return palette.Warning
	case notify.ToneError:
		return palette.Error
	default:
		return palette.Info
	}
}

// renderNotifications stacks the live notifications, one box per kind,
// faded by their current opacity.
func (m model) renderNotifications() []string {
	palette := m.palette()
	width := min(notificationMaxWidth, max(m.width-2*borderSize, 1))

	var boxes []string

	for _, kind := range notify.Kinds {
		note, ok := m.session.Notes.Active(kind)
		if !ok {
			continue
		}

		alpha := m.session.Notes.Opacity(kind)
		if alpha <= 0 {
			continue
		}

		fg := styles.Fade(m.toneColour(note.Tone), palette.Background, alpha)
		text := styles.Fade(palette.Text, palette.Background, alpha)

		box := lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(fg).
			Foreground(text).
			Padding(0, 1).
			Render(styles.Wrap(width-2, note.Message))

		boxes = append(boxes, box)
	}

	return boxes
}

// overlayNotifications splices the notification stack over the top right
// corner of view.
func (m model) overlayNotifications(view string) string {
	boxes := m.renderNotifications()
	if len(boxes) == 0 {
		return view
	}

	lines := strings.Split(view, "\n")
	stack := strings.Split(lipgloss.JoinVertical(lipgloss.Right, boxes...), "\n")

	top := 1
	for i, row := range stack {
		y := top + i
		if y >= len(lines) {
			break
		}

		w := ansi.StringWidth(row)
		x := max(m.width-w-1, 0)

		line := lines[y]
		if pad := x - ansi.StringWidth(line); pad > 0 {
			line += strings.Repeat(" ", pad)
		}

		lines[y] = ansi.Truncate(line, x, "") + row + ansi.TruncateLeft(line, x+w, "")
	}

	return strings.Join(lines, "\n")
}
