package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/ionut-t/wordy/internal/page"
	"github.com/ionut-t/wordy/internal/session"
	"github.com/ionut-t/wordy/internal/sequence"
	"github.com/ionut-t/wordy/pkg/words"
	statusbar "github.com/ionut-t/wordy/ui/status-bar"
	"github.com/ionut-t/wordy/ui/styles"
	"github.com/lucasb-eyer/go-colorful"
)

func (m model) View() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}

	if m.showHelp {
		return m.overlayNotifications(lipgloss.JoinVertical(
			lipgloss.Left,
			lipgloss.NewStyle().Height(max(m.height-statusBarHeight, 0)).Render(m.help.View()),
			m.renderStatusBar(),
		))
	}

	body := styles.ViewPadding.Render(lipgloss.JoinVertical(
		lipgloss.Left,
		m.renderHeader(),
		m.renderAnchors(),
		m.renderInput(),
		m.renderButtons(),
		m.renderContent(),
	))

	return m.overlayNotifications(lipgloss.JoinVertical(
		lipgloss.Left,
		body,
		m.renderStatusBar(),
	))
}

func (m model) innerWidth() int {
	return max(m.width-styles.ViewPadding.GetHorizontalFrameSize(), borderSize+1)
}

// rainbow returns the current keyframe colours while rainbow mode is on.
func (m model) rainbow() ([2]colorful.Color, bool) {
	if !m.session.Page.HasClass(page.ClassRainbow) {
		return [2]colorful.Color{}, false
	}

	sheet, ok := m.session.Page.Stylesheet(page.Rainbow.Name)
	if !ok {
		return [2]colorful.Color{}, false
	}

	elapsed := m.session.Timers.Now().Sub(m.session.Mode.CelebratingSince())
	return sheet.Sample(elapsed), true
}

func (m model) renderHeader() string {
	palette := m.palette()
	title := "✨ wordy"

	var rendered string
	if stops, ok := m.rainbow(); ok {
		rendered = lipgloss.NewStyle().Bold(true).Render(styles.Gradient(title, stops[0], stops[1], false, ""))
	} else {
		rendered = palette.PrimaryStyle().Bold(true).Render(title)
	}

	subtitle := palette.MutedStyle().Render("  " + m.session.Mode.Mode().String() + " mode")

	return ansi.Truncate(rendered+subtitle, m.innerWidth(), "…")
}

func (m model) renderAnchors() string {
	var parts []string

	for _, a := range session.Anchors {
		el, ok := m.session.Page.Element(a.ID)
		if !ok {
			continue
		}
		parts = append(parts, m.renderAnchor(el))
	}

	return strings.Join(parts, strings.Repeat(" ", buttonGap))
}

func (m model) renderAnchor(el *page.Element) string {
	palette := m.palette()
	style := palette.AccentStyle().Underline(true)

	if m.focus == el.ID {
		style = style.Reverse(true)
	} else if m.hovered == el.ID {
		style = style.Bold(true)
	}

	return style.Render(el.Text)
}

func (m model) renderInput() string {
	palette := m.palette()

	border := palette.InactiveBorder()
	if m.focus == page.InputText {
		border = palette.ActiveBorder()
	}

	return border.Width(m.innerWidth() - borderSize).Render(m.input.View())
}

func (m model) renderButtons() string {
	var parts []string

	for _, id := range []string{page.PredictButton, page.ModeToggle} {
		el, ok := m.session.Page.Element(id)
		if !ok {
			continue
		}

		if len(parts) > 0 {
			parts = append(parts, strings.Repeat(" ", buttonGap))
		}
		parts = append(parts, m.renderButton(el))
	}

	if el, ok := m.session.Page.Element(page.WordCounter); ok {
		parts = append(parts, m.palette().MutedStyle().Padding(1, buttonGap).Render(el.Text))
	}

	return lipgloss.JoinHorizontal(lipgloss.Top, parts...)
}

func (m model) renderButton(el *page.Element) string {
	palette := m.palette()

	var label string
	switch {
	case el.Gradient != [2]string{}:
		label = styles.Gradient(" "+el.Text+" ", styles.Hex(el.Gradient[0]), styles.Hex(el.Gradient[1]), true, "#000000")
	case el.Disabled:
		label = palette.MutedStyle().Render(" " + el.Text + " ")
	case el.HasClass(page.ClassPrimary):
		label = palette.PrimaryStyle().Bold(true).Render(" " + el.Text + " ")
	default:
		label = palette.TextStyle().Render(" " + el.Text + " ")
	}

	return styles.Border(m.borderColour(el)).Render(label)
}

// borderColour paints focus first, then the rainbow, then the hover glow.
func (m model) borderColour(el *page.Element) string {
	palette := m.palette()

	if m.focus == el.ID {
		return palette.Primary
	}

	if stops, ok := m.rainbow(); ok {
		return stops[0].Clamped().Hex()
	}

	if el.Glow > 0 {
		return string(styles.Fade(palette.Primary, palette.Background, el.Glow))
	}

	return palette.Muted
}

func (m model) renderContent() string {
	palette := m.palette()

	border := palette.InactiveBorder()
	if stops, ok := m.rainbow(); ok {
		border = styles.Border(stops[1].Clamped().Hex())
	}

	return border.
		Width(m.innerWidth() - borderSize).
		Height(m.contentHeight()).
		Render(m.content.View())
}

func (m model) renderStatusBar() string {
	info := statusbar.Info{
		Mode:        m.session.Mode.Mode().String(),
		Celebrating: m.session.Mode.Celebrating(),
		Words:       words.Count(m.session.Text()),
		Progress:    m.session.Cursor(),
		Target:      len(sequence.Konami),
	}

	return statusbar.StatusBarView(info, m.palette(), m.width)
}
