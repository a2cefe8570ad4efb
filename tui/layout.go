package tui

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/ionut-t/wordy/internal/page"
	"github.com/ionut-t/wordy/internal/session"
	"github.com/ionut-t/wordy/ui/styles"
)

// contentZone is the id of the content pane for hit testing.
const contentZone = "content"

// blockHeight is the height of a single bordered line.
const blockHeight = 1 + borderSize

type zone struct {
	id         string
	x, y, w, h int
}

func (z zone) contains(x, y int) bool {
	return x >= z.x && x < z.x+z.w && y >= z.y && y < z.y+z.h
}

func (m model) contentHeight() int {
	return max(m.height-headerHeight-2*blockHeight-borderSize-statusBarHeight, contentMinHeight)
}

// zones mirrors the layout View renders, top to bottom.
func (m model) zones() []zone {
	left := styles.ViewPadding.GetPaddingLeft()

	var zs []zone

	x := left
	for _, a := range session.Anchors {
		el, ok := m.session.Page.Element(a.ID)
		if !ok {
			continue
		}

		w := lipgloss.Width(m.renderAnchor(el))
		zs = append(zs, zone{id: a.ID, x: x, y: headerHeight - 1, w: w, h: 1})
		x += w + buttonGap
	}

	y := headerHeight
	zs = append(zs, zone{id: page.InputText, x: left, y: y, w: lipgloss.Width(m.renderInput()), h: blockHeight})
	y += blockHeight

	x = left
	for _, id := range []string{page.PredictButton, page.ModeToggle} {
		el, ok := m.session.Page.Element(id)
		if !ok {
			continue
		}

		w := lipgloss.Width(m.renderButton(el))
		zs = append(zs, zone{id: id, x: x, y: y, w: w, h: blockHeight})
		x += w + buttonGap
	}
	y += blockHeight

	zs = append(zs, zone{id: contentZone, x: left, y: y, w: m.width - left, h: m.contentHeight() + borderSize})

	return zs
}

// zoneAt returns the id under the cell at x, y, or "" over empty space.
func (m model) zoneAt(x, y int) string {
	for _, z := range m.zones() {
		if z.contains(x, y) {
			return z.id
		}
	}
	return ""
}
