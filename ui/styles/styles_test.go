package styles

import (
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"
)

func TestWrap(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		width    int
		input    string
		expected string
	}{
		{name: "fits", width: 20, input: "short line", expected: "short line"},
		{name: "breaks on words", width: 10, input: "rainbow mode deactivated", expected: "rainbow\nmode\ndeactivated"},
		{name: "keeps existing newlines", width: 20, input: "one\ntwo", expected: "one\ntwo"},
		{name: "packs words", width: 11, input: "aa bb cc dd ee", expected: "aa bb cc dd\nee"},
		{name: "empty", width: 5, input: "", expected: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.expected, Wrap(tt.width, tt.input))
		})
	}
}

func TestFade(t *testing.T) {
	t.Parallel()

	assert.Equal(t, lipgloss.Color("#000000"), Fade("#ffffff", "#000000", 0))
	assert.Equal(t, lipgloss.Color("#ffffff"), Fade("#ffffff", "#000000", 1))
	assert.Equal(t, lipgloss.Color("#ffffff"), Fade("#ffffff", "#000000", 3))
}

func TestGradientKeepsText(t *testing.T) {
	t.Parallel()

	out := Gradient("PREDICT", Hex("#00ff88"), Hex("#00d4ff"), true, "#000000")
	assert.Equal(t, "PREDICT", ansi.Strip(out))
	assert.Empty(t, Gradient("", Hex("#000000"), Hex("#ffffff"), false, ""))
}

func TestFor(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "cyber", For(true).Name)
	assert.Equal(t, "classic", For(false).Name)
}
