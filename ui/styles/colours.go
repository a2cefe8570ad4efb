package styles

import (
	"sync"

	catppuccin "github.com/catppuccin/go"
	"github.com/charmbracelet/lipgloss"
)

// Palette is the set of colours one display mode renders with.
type Palette struct {
	Name       string
	Background string
	Surface    string
	Text       string
	Muted      string
	Primary    string
	Accent     string
	Success    string
	Warning    string
	Error      string
	Info       string
	// Markdown is the glamour standard style for the content sections.
	Markdown string
}

var classic = sync.OnceValue(func() Palette {
	flavour := catppuccin.Latte
	markdown := "light"

	if lipgloss.HasDarkBackground() {
		flavour = catppuccin.Mocha
		markdown = "dark"
	}

	return Palette{
		Name:       "classic",
		Background: flavour.Base().Hex,
		Surface:    flavour.Surface0().Hex,
		Text:       flavour.Text().Hex,
		Muted:      flavour.Overlay1().Hex,
		Primary:    flavour.Sapphire().Hex,
		Accent:     flavour.Teal().Hex,
		Success:    flavour.Green().Hex,
		Warning:    flavour.Yellow().Hex,
		Error:      flavour.Red().Hex,
		Info:       flavour.Blue().Hex,
		Markdown:   markdown,
	}
})

// Cyber is the neon palette of cyber mode.
var Cyber = Palette{
	Name:       "cyber",
	Background: "#0a0e27",
	Surface:    "#16213e",
	Text:       "#e0f7ff",
	Muted:      "#5c6f9e",
	Primary:    "#00ff88",
	Accent:     "#00d4ff",
	Success:    "#00ff88",
	Warning:    "#ffd166",
	Error:      "#ff0080",
	Info:       "#00d4ff",
	Markdown:   "dracula",
}

// Classic is the catppuccin palette, Mocha on dark terminals and Latte on
// light ones.
func Classic() Palette {
	return classic()
}

// For returns the palette of the cyber or classic mode.
func For(cyber bool) Palette {
	if cyber {
		return Cyber
	}
	return Classic()
}

func (p Palette) Fg(hex string) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(lipgloss.Color(hex))
}

func (p Palette) TextStyle() lipgloss.Style {
	return p.Fg(p.Text)
}

func (p Palette) MutedStyle() lipgloss.Style {
	return p.Fg(p.Muted)
}

func (p Palette) PrimaryStyle() lipgloss.Style {
	return p.Fg(p.Primary)
}

func (p Palette) AccentStyle() lipgloss.Style {
	return p.Fg(p.Accent)
}

func (p Palette) SurfaceStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Background(lipgloss.Color(p.Surface)).
		Foreground(lipgloss.Color(p.Text))
}
