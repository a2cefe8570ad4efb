package tui

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/ionut-t/wordy/internal/keymap"
)

var focusBindings = []key.Binding{
	keymap.NextFocus,
	keymap.PrevFocus,
	keymap.Insert,
	keymap.Cancel,
	keymap.Submit,
}

var actionBindings = []key.Binding{
	keymap.ToggleMode,
	keymap.Predict,
	keymap.Copy,
	keymap.Section,
	keymap.ScrollUp,
	keymap.ScrollDown,
}

var generalBindings = []key.Binding{
	keymap.Help,
	keymap.Quit,
	keymap.ForceQuit,
}
