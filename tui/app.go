package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/ionut-t/wordy/internal/config"
	"github.com/ionut-t/wordy/internal/mode"
	"github.com/ionut-t/wordy/internal/notify"
	"github.com/ionut-t/wordy/internal/session"
	"github.com/ionut-t/wordy/internal/timer"
	"github.com/ionut-t/wordy/tui/content"
	"github.com/ionut-t/wordy/ui/help"
	"github.com/ionut-t/wordy/ui/styles"
)

type model struct {
	config        config.Config
	session       *session.State
	width, height int

	input   textinput.Model
	content content.Model
	help    help.Model

	focus    string
	hovered  string
	showHelp bool

	// framing is set while a frame tick is in flight.
	framing bool
	// scrolling is set while the content pane follows the scroll animator.
	scrolling bool
}

// New builds the UI. timers may be nil, in which case real time drives
// every timer.
func New(cfg config.Config, timers *timer.Service) model {
	input := textinput.New()
	input.Placeholder = inputPlaceholder
	input.Prompt = "› "

	m := model{
		config:  cfg,
		session: session.New(cfg, timers),
		input:   input,
		content: content.New(0, 0, content.Sections),
		help:    help.New(),
	}

	m.focusOn(m.focusOrder()[0])

	return m
}

func (m model) Init() tea.Cmd {
	return tea.Batch(
		tea.SetWindowTitle("wordy"),
		textinput.Blink,
	)
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.updateSize()

	case tea.KeyMsg:
		var quit bool
		cmd, quit = m.handleKey(msg)
		if quit {
			return m, tea.Quit
		}

	case tea.MouseMsg:
		cmd = m.handleMouse(msg)

	case timer.FiredMsg:
		cmd = m.session.Route(msg)

	case frameMsg:
		m.framing = false
		m.applyScroll()

	case clipboardMsg:
		if msg.err != nil {
			cmd = m.session.Status(notify.ToneError, msg.err.Error())
		} else {
			cmd = m.session.Status(notify.ToneInfo, copiedMessage)
		}

	default:
		m.input, cmd = m.input.Update(msg)
	}

	m.content.SetStyle(m.palette().Markdown)

	return m, tea.Batch(cmd, m.nextFrame())
}

func (m *model) updateSize() {
	width := max(m.width-styles.ViewPadding.GetHorizontalFrameSize(), 0)

	m.input.Width = max(width-borderSize-promptWidth-1, 1)

	m.content.SetSize(max(width-borderSize, 0), m.contentHeight())

	m.help.SetSize(m.width, max(m.height-statusBarHeight, 0))
	m.help.SetContent(m.renderHelp())
}

// nextFrame schedules a frame tick when something animates and none is in
// flight.
func (m *model) nextFrame() tea.Cmd {
	if m.framing || !(m.session.Animating() || m.scrolling) {
		return nil
	}

	m.framing = true

	return tea.Tick(FrameInterval, func(time.Time) tea.Msg {
		return frameMsg{}
	})
}

func (m *model) applyScroll() {
	if !m.scrolling {
		return
	}

	m.content.SetYOffset(m.session.Scroll.Position())

	if !m.session.Scroll.Animating() {
		m.scrolling = false
	}
}

func (m model) mode() mode.DisplayMode {
	return m.session.Mode.Mode()
}

func (m model) palette() styles.Palette {
	return styles.For(m.mode() == mode.Cyber)
}
