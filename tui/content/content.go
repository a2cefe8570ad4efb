package content

import (
	"log/slog"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/ionut-t/wordy/ui/markdown"
)

// Section is one anchor target of the content pane.
type Section struct {
	ID    string
	Title string
	Body  string
}

var Sections = []Section{
	{
		ID:    "about",
		Title: "About",
		Body: `**wordy** is a small playground around a single text input.

Type into the input to watch the live word counter, press **PREDICT** to run
a prediction and get feedback on how fast it was, and switch between the
*classic* and *cyber* looks whenever you like.

Some things are not on the menu. You will have to find them.`,
	},
	{
		ID:    "usage",
		Title: "Usage",
		Body: `1. Focus the input with **tab** or **i** and type a sentence.
2. Press **enter** (or click **PREDICT**) to start a prediction. The button is
   busy for a moment and then tells you how it went.
3. Click the mode toggle, or press **t** when the input is not focused, to
   switch display modes.
4. Jump around this pane with the anchors at the top or the keys **1** to **3**.

Notifications stack in the top right corner and fade out on their own.`,
	},
	{
		ID:    "shortcuts",
		Title: "Shortcuts",
		Body: "| key | action |\n" +
			"| --- | --- |\n" +
			"| `tab` / `shift+tab` | move focus |\n" +
			"| `enter` | activate the focused element |\n" +
			"| `t` | toggle classic / cyber mode |\n" +
			"| `p` | press predict |\n" +
			"| `y` | copy the input |\n" +
			"| `1` - `3` | scroll to a section |\n" +
			"| `?` | help |\n" +
			"| `q` | quit |",
	},
}

type Model struct {
	width, height int
	style         string
	sections      []Section
	offsets       map[string]int
	viewport      viewport.Model
	error         error
}

func New(width, height int, sections []Section) Model {
	return Model{
		width:    width,
		height:   height,
		sections: sections,
		offsets:  make(map[string]int, len(sections)),
		viewport: viewport.New(width, height),
	}
}

// SetSize resizes the pane and re-renders when the width changed.
func (m *Model) SetSize(width, height int) {
	m.viewport.Width = width
	m.viewport.Height = height
	m.height = height

	if width != m.width {
		m.width = width
		m.render()
	}
}

// SetStyle switches the glamour style of the sections.
func (m *Model) SetStyle(style string) {
	if style == m.style {
		return
	}

	m.style = style
	m.render()
}

func (m *Model) render() {
	if m.width <= 0 || m.style == "" {
		return
	}

	renderer := markdown.New(m.style, m.width)

	var lines []string
	m.error = nil

	for _, s := range m.sections {
		out, err := renderer.Render("## " + s.Title + "\n\n" + s.Body)
		if err != nil {
			slog.Warn("failed to render section", "section", s.ID, "error", err)
			m.error = err
			out = lipgloss.NewStyle().Bold(true).Render(s.Title) + "\n\n" + s.Body
		}

		m.offsets[s.ID] = len(lines)
		lines = append(lines, strings.Split(out, "\n")...)
		lines = append(lines, "")
	}

	y := m.viewport.YOffset
	m.viewport.SetContent(strings.Join(lines, "\n"))
	m.viewport.SetYOffset(y)
}

// Offset returns the first row of the section named by an anchor href such
// as "#usage".
func (m Model) Offset(href string) (int, bool) {
	row, ok := m.offsets[strings.TrimPrefix(href, "#")]
	return row, ok
}

// Limit is the largest row the pane can scroll to.
func (m Model) Limit() int {
	return max(m.viewport.TotalLineCount()-m.viewport.Height, 0)
}

func (m Model) YOffset() int {
	return m.viewport.YOffset
}

func (m *Model) SetYOffset(row int) {
	m.viewport.SetYOffset(row)
}

func (m Model) Error() error {
	return m.error
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
