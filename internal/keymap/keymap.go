package keymap

import "github.com/charmbracelet/bubbles/key"

var Quit = key.NewBinding(
	key.WithKeys("q"),
	key.WithHelp("q", "quit (when the input is not focused)"),
)

var ForceQuit = key.NewBinding(
	key.WithKeys("ctrl+c"),
	key.WithHelp("ctrl+c", "force quit"),
)

var Help = key.NewBinding(
	key.WithKeys("?"),
	key.WithHelp("?", "toggle help view"),
)

var Cancel = key.NewBinding(
	key.WithKeys("esc"),
	key.WithHelp("esc", "leave the input / close help"),
)

var Submit = key.NewBinding(
	key.WithKeys("enter"),
	key.WithHelp("enter", "activate the focused element (predict from the input)"),
)

var NextFocus = key.NewBinding(
	key.WithKeys("tab"),
	key.WithHelp("tab", "focus the next element"),
)

var PrevFocus = key.NewBinding(
	key.WithKeys("shift+tab"),
	key.WithHelp("shift+tab", "focus the previous element"),
)

var Insert = key.NewBinding(
	key.WithKeys("i"),
	key.WithHelp("i", "focus the input"),
)

var ToggleMode = key.NewBinding(
	key.WithKeys("t"),
	key.WithHelp("t", "toggle classic / cyber mode"),
)

var Predict = key.NewBinding(
	key.WithKeys("p"),
	key.WithHelp("p", "press predict"),
)

var Copy = key.NewBinding(
	key.WithKeys("y"),
	key.WithHelp("y", "copy the input to the clipboard"),
)

var Section = key.NewBinding(
	key.WithKeys("1", "2", "3"),
	key.WithHelp("1-3", "scroll to a section"),
)

var ScrollUp = key.NewBinding(
	key.WithKeys("pgup", "ctrl+u"),
	key.WithHelp("pgup/ctrl+u", "scroll the content up"),
)

var ScrollDown = key.NewBinding(
	key.WithKeys("pgdown", "ctrl+d"),
	key.WithHelp("pgdown/ctrl+d", "scroll the content down"),
)
