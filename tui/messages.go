package tui

// frameMsg redraws an animation frame.
type frameMsg struct{}

// clipboardMsg reports the outcome of a copy.
type clipboardMsg struct {
	err error
}
