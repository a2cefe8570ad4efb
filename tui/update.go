package tui

import (
	"slices"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/ionut-t/wordy/internal/keymap"
	"github.com/ionut-t/wordy/internal/page"
	"github.com/ionut-t/wordy/internal/session"
	"github.com/ionut-t/wordy/pkg/clipboard"
)

// handleKey routes a key press. The recognizer sees every key before
// anything else does, whatever has focus.
func (m *model) handleKey(msg tea.KeyMsg) (tea.Cmd, bool) {
	seq := m.session.OnKey(msg.String())

	if key.Matches(msg, keymap.ForceQuit) {
		return nil, true
	}

	if m.showHelp {
		switch {
		case key.Matches(msg, keymap.Help), key.Matches(msg, keymap.Cancel), key.Matches(msg, keymap.Quit):
			m.showHelp = false
			return seq, false
		}

		var cmd tea.Cmd
		m.help, cmd = m.help.Update(msg)
		return tea.Batch(seq, cmd), false
	}

	switch {
	case key.Matches(msg, keymap.NextFocus):
		return tea.Batch(seq, m.cycleFocus(1)), false

	case key.Matches(msg, keymap.PrevFocus):
		return tea.Batch(seq, m.cycleFocus(-1)), false
	}

	if m.focus == page.InputText {
		switch {
		case key.Matches(msg, keymap.Cancel):
			m.focusOn(page.PredictButton)
			return seq, false

		case key.Matches(msg, keymap.Submit):
			return tea.Batch(seq, m.session.Press()), false
		}

		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		m.session.SetText(m.input.Value())

		return tea.Batch(seq, cmd), false
	}

	var cmd tea.Cmd

	switch {
	case key.Matches(msg, keymap.Quit):
		return nil, true

	case key.Matches(msg, keymap.Help):
		m.showHelp = true
		m.help.SetContent(m.renderHelp())

	case key.Matches(msg, keymap.Insert):
		cmd = m.focusOn(page.InputText)

	case key.Matches(msg, keymap.Submit):
		cmd = m.activate(m.focus)

	case key.Matches(msg, keymap.ToggleMode):
		cmd = m.session.Toggle()

	case key.Matches(msg, keymap.Predict):
		cmd = m.session.Press()

	case key.Matches(msg, keymap.Copy):
		cmd = copyText(m.session.Text())

	case key.Matches(msg, keymap.Section):
		if i := int(msg.String()[0] - '1'); i >= 0 && i < len(session.Anchors) {
			cmd = m.activate(session.Anchors[i].ID)
		}

	case key.Matches(msg, keymap.ScrollUp), key.Matches(msg, keymap.ScrollDown):
		m.stopScroll()
		m.content, cmd = m.content.Update(msg)
	}

	return tea.Batch(seq, cmd), false
}

func (m *model) handleMouse(msg tea.MouseMsg) tea.Cmd {
	id := m.zoneAt(msg.X, msg.Y)

	switch {
	case msg.Action == tea.MouseActionMotion:
		m.hover(id)
		return nil

	case msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft:
		m.hover(id)
		if id == "" || id == contentZone {
			return nil
		}

		cmd := m.focusOn(id)
		if id == page.InputText {
			return cmd
		}

		return tea.Batch(cmd, m.activate(id))

	case msg.Button == tea.MouseButtonWheelUp || msg.Button == tea.MouseButtonWheelDown:
		if id != contentZone {
			return nil
		}

		m.stopScroll()

		var cmd tea.Cmd
		m.content, cmd = m.content.Update(msg)
		return cmd
	}

	return nil
}

// hover moves the pointer onto id, leaving whatever it was over before.
func (m *model) hover(id string) {
	if id == m.hovered {
		return
	}

	if m.hovered != "" {
		m.session.Hover(m.hovered, false)
	}

	m.hovered = id

	if id != "" {
		m.session.Hover(id, true)
	}
}

// activate clicks the element id.
func (m *model) activate(id string) tea.Cmd {
	switch id {
	case page.PredictButton:
		return m.session.Press()

	case page.ModeToggle:
		return m.session.Toggle()
	}

	el, ok := m.session.Page.Element(id)
	if !ok || !el.HasClass(page.ClassAnchor) {
		return nil
	}

	row, ok := m.content.Offset(el.Href)
	if !ok {
		return nil
	}

	m.session.ScrollTo(m.content.YOffset(), row, m.content.Limit())
	m.scrolling = true

	return nil
}

func (m *model) stopScroll() {
	m.session.Scroll.Stop()
	m.scrolling = false
}

// focusOrder is input, predict, toggle, then the anchors, skipping
// anything not mounted.
func (m model) focusOrder() []string {
	ids := []string{page.InputText, page.PredictButton, page.ModeToggle}
	for _, a := range session.Anchors {
		ids = append(ids, a.ID)
	}

	return slices.DeleteFunc(ids, func(id string) bool {
		_, ok := m.session.Page.Element(id)
		return !ok
	})
}

func (m *model) cycleFocus(step int) tea.Cmd {
	order := m.focusOrder()
	if len(order) == 0 {
		return nil
	}

	i := slices.Index(order, m.focus)
	next := (i + step + len(order)) % len(order)
	if i < 0 {
		next = 0
	}

	return m.focusOn(order[next])
}

func (m *model) focusOn(id string) tea.Cmd {
	m.focus = id

	if id == page.InputText {
		return m.input.Focus()
	}

	m.input.Blur()
	return nil
}

func copyText(text string) tea.Cmd {
	return func() tea.Msg {
		return clipboardMsg{err: clipboard.Write(text)}
	}
}
