package mode

import (
	"log/slog"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/ionut-t/wordy/internal/notify"
	"github.com/ionut-t/wordy/internal/page"
	"github.com/ionut-t/wordy/internal/timer"
)

// DisplayMode is the base visual theme of the page.
type DisplayMode int

const (
	Classic DisplayMode = iota
	Cyber
)

func (m DisplayMode) String() string {
	if m == Cyber {
		return "cyber"
	}
	return "classic"
}

// Other returns the mode a toggle would switch to.
func (m DisplayMode) Other() DisplayMode {
	if m == Cyber {
		return Classic
	}
	return Cyber
}

// Class returns the body class marking m.
func (m DisplayMode) Class() string {
	if m == Cyber {
		return page.ClassCyber
	}
	return page.ClassClassic
}

// Label names the action that switches to m.
func (m DisplayMode) Label() string {
	if m == Cyber {
		return "⚡ Cyber Mode"
	}
	return "🕹 Classic Mode"
}

// Announcement is the theme notification shown when m is entered.
func (m DisplayMode) Announcement() string {
	if m == Cyber {
		return "⚡ Cyber mode engaged"
	}
	return "🕹 Classic mode restored"
}

const (
	CelebrationMessage = "🎉 Easter Egg Unlocked! Rainbow Mode Activated!"
	DeactivatedMessage = "🌈 Rainbow mode deactivated"
)

type Config struct {
	// Celebration is how long rainbow mode lasts after the last activation.
	Celebration       time.Duration
	ThemeNotice       notify.Timing
	CelebrationNotice notify.Timing
}

// Controller owns the display mode and the celebration overlay. The page is
// only ever written to.
type Controller struct {
	cfg    Config
	page   *page.Page
	timers *timer.Service
	notes  *notify.Queue

	mode        DisplayMode
	celebrating bool
	since       time.Time
	expiry      timer.Handle
}

// New creates a controller in Classic mode and projects that state.
func New(cfg Config, p *page.Page, timers *timer.Service, notes *notify.Queue) *Controller {
	c := &Controller{
		cfg:    cfg,
		page:   p,
		timers: timers,
		notes:  notes,
		mode:   Classic,
	}

	c.apply()

	return c
}

// Toggle switches to the other mode and returns it.
func (c *Controller) Toggle() (DisplayMode, tea.Cmd) {
	c.mode = c.mode.Other()
	c.apply()

	_, cmd := c.notes.Show(notify.Theme, c.mode.Announcement(), c.cfg.ThemeNotice.Visible, c.cfg.ThemeNotice.Fade)

	slog.Debug("display mode toggled", "mode", c.mode)

	return c.mode, cmd
}

// Activate turns rainbow mode on, or restarts its window when already on.
func (c *Controller) Activate() tea.Cmd {
	c.timers.Cancel(c.expiry)

	c.celebrating = true
	c.since = c.timers.Now()
	c.page.AddClass(page.ClassRainbow)

	_, noteCmd := c.notes.ShowTone(
		notify.Celebration,
		notify.ToneGood,
		CelebrationMessage,
		c.cfg.CelebrationNotice.Visible,
		c.cfg.CelebrationNotice.Fade,
	)

	var expiryCmd tea.Cmd
	c.expiry, expiryCmd = c.timers.After(c.cfg.Celebration)

	slog.Debug("celebration activated", "duration", c.cfg.Celebration)

	return tea.Batch(noteCmd, expiryCmd)
}

// Update ends rainbow mode when msg is its live expiry.
func (c *Controller) Update(msg timer.FiredMsg) tea.Cmd {
	if !c.timers.Consume(c.expiry, msg) {
		return nil
	}

	c.expiry = timer.Handle{}
	c.celebrating = false
	c.page.RemoveClass(page.ClassRainbow)

	_, cmd := c.notes.Show(notify.Theme, DeactivatedMessage, c.cfg.ThemeNotice.Visible, c.cfg.ThemeNotice.Fade)

	slog.Debug("celebration expired")

	return cmd
}

func (c *Controller) Mode() DisplayMode {
	return c.mode
}

func (c *Controller) Celebrating() bool {
	return c.celebrating
}

// CelebratingSince returns when the running celebration was last activated.
func (c *Controller) CelebratingSince() time.Time {
	return c.since
}

// ExpiresAt returns when the running celebration ends.
func (c *Controller) ExpiresAt() (time.Time, bool) {
	return c.timers.Deadline(c.expiry)
}

func (c *Controller) apply() {
	c.page.RemoveClass(c.mode.Other().Class())
	c.page.AddClass(c.mode.Class())

	// The control names the mode the next press switches to.
	if el, ok := c.page.Element(page.ModeToggle); ok {
		el.Text = c.mode.Other().Label()
	}
}
