package session

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/ionut-t/wordy/internal/config"
	"github.com/ionut-t/wordy/internal/mode"
	"github.com/ionut-t/wordy/internal/notify"
	"github.com/ionut-t/wordy/internal/page"
	"github.com/ionut-t/wordy/internal/sequence"
	"github.com/ionut-t/wordy/internal/timer"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newState(t *testing.T, mutate func(*config.Config)) (*timer.Fake, *State) {
	t.Helper()

	cfg := config.Default()
	if mutate != nil {
		mutate(&cfg)
	}

	fake := timer.NewFake()
	return fake, New(cfg, fake.Service())
}

func run(fake *timer.Fake, s *State, d time.Duration) {
	fake.Run(d, func(msg tea.Msg) {
		if fired, ok := msg.(timer.FiredMsg); ok {
			s.Route(fired)
		}
	})
}

func TestInitialState(t *testing.T) {
	t.Parallel()

	_, s := newState(t, nil)

	assert.Equal(t, mode.Classic, s.Mode.Mode())
	assert.Equal(t, 0, s.Notes.Len())
	assert.Equal(t, 0, s.Cursor())
	assert.False(t, s.Animating())

	_, ok := s.Page.Stylesheet(page.Rainbow.Name)
	assert.True(t, ok, "keyframes are injected at startup")
	assert.False(t, s.Page.Inject(page.Rainbow))

	counter, ok := s.Page.Element(page.WordCounter)
	require.True(t, ok)
	assert.Equal(t, "0 words", counter.Text)

	anchors := s.Page.Select(page.ClassAnchor)
	require.Len(t, anchors, len(Anchors))
	assert.Equal(t, "#about", anchors[0].Href)
}

func TestOptionalElements(t *testing.T) {
	t.Parallel()

	_, s := newState(t, func(c *config.Config) {
		c.WordCounter = false
		c.ModeToggle = false
	})

	s.SetText("one two three")
	assert.Equal(t, "one two three", s.Text())

	_, ok := s.Page.Element(page.WordCounter)
	assert.False(t, ok)

	s.Toggle()
	assert.Equal(t, mode.Cyber, s.Mode.Mode())
}

func TestSetTextUpdatesCounter(t *testing.T) {
	t.Parallel()

	_, s := newState(t, nil)
	counter, _ := s.Page.Element(page.WordCounter)

	tests := []struct {
		input    string
		expected string
	}{
		{input: "", expected: "0 words"},
		{input: "   ", expected: "0 words"},
		{input: "one two", expected: "2 words"},
		{input: "  one   two  ", expected: "2 words"},
	}

	for _, tt := range tests {
		s.SetText(tt.input)
		assert.Equal(t, tt.expected, counter.Text, "input %q", tt.input)
	}
}

func TestKonamiActivatesCelebration(t *testing.T) {
	t.Parallel()

	fake, s := newState(t, nil)

	for _, code := range sequence.Konami[:len(sequence.Konami)-1] {
		s.OnKey(code)
	}
	assert.False(t, s.Mode.Celebrating())

	// A long pause does not expire partial progress.
	run(fake, s, time.Hour)
	s.OnKey("a")

	assert.True(t, s.Mode.Celebrating())
	assert.True(t, s.Page.HasClass(page.ClassRainbow))
	assert.Equal(t, 0, s.Cursor())
	assert.True(t, s.Animating())

	run(fake, s, 6*time.Second)
	assert.False(t, s.Mode.Celebrating())
}

func TestHover(t *testing.T) {
	t.Parallel()

	_, s := newState(t, nil)

	s.Hover(page.PredictButton, true)
	btn, _ := s.Page.Element(page.PredictButton)
	assert.Equal(t, GlowHover, btn.Glow)

	s.Hover(page.PredictButton, false)
	assert.Equal(t, GlowRest, btn.Glow)

	s.Hover(page.ModeToggle, true)
	toggle, _ := s.Page.Element(page.ModeToggle)
	assert.Zero(t, toggle.Glow, "only primary buttons glow")

	s.Hover("missing", true)
}

func TestPredictFlowThroughRoute(t *testing.T) {
	t.Parallel()

	fake, s := newState(t, nil)

	s.Press()
	assert.True(t, s.Predict.Processing())

	run(fake, s, 2*time.Second)
	assert.False(t, s.Predict.Processing())

	note, ok := s.Notes.Active(notify.Status)
	require.True(t, ok)
	assert.Equal(t, notify.ToneFast, note.Tone)
}

func TestThemeSupersedeAcrossComponents(t *testing.T) {
	t.Parallel()

	fake, s := newState(t, nil)

	s.Toggle()
	run(fake, s, 100*time.Millisecond)
	s.Toggle()

	note, ok := s.Notes.Active(notify.Theme)
	require.True(t, ok)
	assert.Equal(t, mode.Classic.Announcement(), note.Message)
	assert.Equal(t, 1, s.Notes.Len())

	run(fake, s, time.Minute)
	assert.Equal(t, 0, s.Notes.Len())
	assert.Equal(t, 0, s.Timers.Len())
}

func TestScrollTo(t *testing.T) {
	t.Parallel()

	fake, s := newState(t, nil)

	s.ScrollTo(0, 40, 100)
	assert.Equal(t, 36, s.Scroll.Target())
	assert.True(t, s.Animating())

	fake.Advance(time.Second)
	assert.Equal(t, 36, s.Scroll.Position())
	assert.False(t, s.Animating())
}

func TestStatus(t *testing.T) {
	t.Parallel()

	_, s := newState(t, nil)

	s.Status(notify.ToneError, "clipboard unavailable")

	note, ok := s.Notes.Active(notify.Status)
	require.True(t, ok)
	assert.Equal(t, "clipboard unavailable", note.Message)
	assert.Equal(t, 2*time.Second, note.Visible)
}
