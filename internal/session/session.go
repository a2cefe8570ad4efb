package session

import (
	"log/slog"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/ionut-t/wordy/internal/config"
	"github.com/ionut-t/wordy/internal/mode"
	"github.com/ionut-t/wordy/internal/notify"
	"github.com/ionut-t/wordy/internal/page"
	"github.com/ionut-t/wordy/internal/predict"
	"github.com/ionut-t/wordy/internal/scroll"
	"github.com/ionut-t/wordy/internal/sequence"
	"github.com/ionut-t/wordy/internal/timer"
	"github.com/ionut-t/wordy/pkg/words"
)

const PredictLabel = "⚡ PREDICT"

// Anchors are the in-page links, in tab order. Href names the content
// section they scroll to.
var Anchors = []page.Element{
	{ID: "anchor-about", Text: "About", Href: "#about"},
	{ID: "anchor-usage", Text: "Usage", Href: "#usage"},
	{ID: "anchor-shortcuts", Text: "Shortcuts", Href: "#shortcuts"},
}

// Hover glow alphas.
const (
	GlowHover = 0.8
	GlowRest  = 0.4
)

// State is the UI state of one run. It is created once and handed to the
// event bindings by reference; nothing else holds UI state.
type State struct {
	Page    *page.Page
	Timers  *timer.Service
	Notes   *notify.Queue
	Mode    *mode.Controller
	Predict *predict.Button
	Scroll  *scroll.Animator

	cfg    config.Config
	konami *sequence.Recognizer[string]
	text   string
}

// New builds the session. timers may be nil, in which case tea.Tick backs
// every timer.
func New(cfg config.Config, timers *timer.Service) *State {
	if timers == nil {
		timers = timer.New()
	}

	p := page.New()
	p.Inject(page.Rainbow)

	p.Mount(page.Element{ID: page.InputText})
	p.Mount(page.Element{ID: page.PredictButton, Text: PredictLabel}, page.ClassPrimary)

	if cfg.WordCounter {
		p.Mount(page.Element{ID: page.WordCounter, Text: words.Label(0)})
	}

	if cfg.ModeToggle {
		p.Mount(page.Element{ID: page.ModeToggle})
	}

	for _, a := range Anchors {
		p.Mount(a, page.ClassAnchor)
	}

	notes := notify.New(timers)

	s := &State{
		Page:   p,
		Timers: timers,
		Notes:  notes,
		Mode: mode.New(mode.Config{
			Celebration:       cfg.Celebration,
			ThemeNotice:       notify.Timing(cfg.ThemeNotice),
			CelebrationNotice: notify.Timing(cfg.CelebrationNotice),
		}, p, timers, notes),
		Predict: predict.New(predict.Config{
			Processing: cfg.Processing,
			Notice:     notify.Timing(cfg.StatusNotice),
		}, p, timers, notes),
		Scroll: scroll.NewAnimator(cfg.ScrollDuration, timers.Now),
		cfg:    cfg,
	}

	s.konami = sequence.New(sequence.Konami, func() {
		slog.Info("konami code entered")
	})

	return s
}

// OnKey feeds a key name to the sequence recognizer.
func (s *State) OnKey(code string) tea.Cmd {
	if s.konami.OnInput(code) {
		return s.Mode.Activate()
	}
	return nil
}

// Cursor returns the recognizer progress.
func (s *State) Cursor() int {
	return s.konami.Cursor()
}

// Toggle flips the display mode.
func (s *State) Toggle() tea.Cmd {
	_, cmd := s.Mode.Toggle()
	return cmd
}

// Activate starts or restarts rainbow mode.
func (s *State) Activate() tea.Cmd {
	return s.Mode.Activate()
}

// Press presses the predict button.
func (s *State) Press() tea.Cmd {
	return s.Predict.Press()
}

// SetText records the input text and refreshes the counter.
func (s *State) SetText(text string) {
	if text == s.text {
		return
	}

	s.text = text
	s.Page.SetText(page.WordCounter, words.Label(words.Count(text)))
}

func (s *State) Text() string {
	return s.text
}

// Hover applies the hover glow to a primary element.
func (s *State) Hover(id string, inside bool) {
	el, ok := s.Page.Element(id)
	if !ok || !el.HasClass(page.ClassPrimary) {
		return
	}

	if inside {
		el.Glow = GlowHover
	} else {
		el.Glow = GlowRest
	}
}

// ScrollTo smoothly scrolls from the current row to the section at row,
// keeping the configured offset above it.
func (s *State) ScrollTo(from, row, limit int) {
	s.Scroll.Stop()
	s.Scroll.Start(from, scroll.Target(row, s.cfg.ScrollOffset, s.cfg.ScrollUnit, limit))
}

// Status shows a status notification with the configured timing.
func (s *State) Status(tone notify.Tone, message string) tea.Cmd {
	_, cmd := s.Notes.ShowTone(notify.Status, tone, message, s.cfg.StatusNotice.Visible, s.cfg.StatusNotice.Fade)
	return cmd
}

// Route hands a timer firing to its owner. Stale firings fall through every
// owner untouched.
func (s *State) Route(msg timer.FiredMsg) tea.Cmd {
	return tea.Batch(
		s.Notes.Update(msg),
		s.Mode.Update(msg),
		s.Predict.Update(msg),
	)
}

// Animating reports whether the view needs frame ticks.
func (s *State) Animating() bool {
	return s.Notes.Animating() || s.Scroll.Animating() || s.Mode.Celebrating()
}
