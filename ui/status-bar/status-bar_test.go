package statusbar

import (
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/ionut-t/wordy/ui/styles"
	"github.com/stretchr/testify/assert"
)

func TestStatusBarView(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		info     Info
		contains []string
		missing  []string
	}{
		{
			name:     "classic",
			info:     Info{Mode: "classic", Words: 3},
			contains: []string{"CLASSIC", "3 words", "? Help"},
			missing:  []string{"rainbow"},
		},
		{
			name:     "celebrating",
			info:     Info{Mode: "cyber", Celebrating: true},
			contains: []string{"CYBER", "rainbow", "0 words"},
		},
		{
			name:     "sequence progress",
			info:     Info{Mode: "classic", Progress: 2, Target: 4},
			contains: []string{"••··"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			out := StatusBarView(tt.info, styles.Cyber, 80)
			plain := ansi.Strip(out)

			for _, s := range tt.contains {
				assert.Contains(t, plain, s)
			}
			for _, s := range tt.missing {
				assert.NotContains(t, plain, s)
			}
			assert.Equal(t, 80, lipgloss.Width(out))
		})
	}
}
