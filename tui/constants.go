package tui

import "time"

// FrameInterval is the redraw period while something animates.
const FrameInterval = 50 * time.Millisecond

// Layout constants
const (
	headerHeight     = 2
	statusBarHeight  = 1
	contentMinHeight = 3
	inputPlaceholder = "Type a sentence..."

	// borderSize is the horizontal (and vertical) size of a rounded border.
	borderSize  = 2
	promptWidth = 2
	buttonGap   = 2
)

const copiedMessage = "📋 Copied to clipboard"
