package mode

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/ionut-t/wordy/internal/notify"
	"github.com/ionut-t/wordy/internal/page"
	"github.com/ionut-t/wordy/internal/timer"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testConfig = Config{
	Celebration:       6000 * time.Millisecond,
	ThemeNotice:       notify.Timing{Visible: 2000 * time.Millisecond, Fade: 300 * time.Millisecond},
	CelebrationNotice: notify.Timing{Visible: 3000 * time.Millisecond, Fade: 300 * time.Millisecond},
}

type fixture struct {
	fake  *timer.Fake
	page  *page.Page
	notes *notify.Queue
	mode  *Controller
}

func newFixture(withToggle bool) *fixture {
	fake := timer.NewFake()
	svc := fake.Service()
	p := page.New()

	if withToggle {
		p.Mount(page.Element{ID: page.ModeToggle})
	}

	notes := notify.New(svc)

	return &fixture{
		fake:  fake,
		page:  p,
		notes: notes,
		mode:  New(testConfig, p, svc, notes),
	}
}

func (f *fixture) run(d time.Duration) {
	f.fake.Run(d, func(msg tea.Msg) {
		fired, ok := msg.(timer.FiredMsg)
		if !ok {
			return
		}
		f.notes.Update(fired)
		f.mode.Update(fired)
	})
}

func (f *fixture) label(t *testing.T) string {
	t.Helper()
	el, ok := f.page.Element(page.ModeToggle)
	require.True(t, ok)
	return el.Text
}

func TestInitialState(t *testing.T) {
	t.Parallel()

	f := newFixture(true)

	assert.Equal(t, Classic, f.mode.Mode())
	assert.False(t, f.mode.Celebrating())
	assert.Equal(t, []string{page.ClassClassic}, f.page.Classes())
	assert.Equal(t, "⚡ Cyber Mode", f.label(t))
	assert.Equal(t, 0, f.notes.Len())
}

func TestTogglePairs(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		toggles  int
		expected DisplayMode
	}{
		{name: "once", toggles: 1, expected: Cyber},
		{name: "twice", toggles: 2, expected: Classic},
		{name: "three times", toggles: 3, expected: Cyber},
		{name: "ten times", toggles: 10, expected: Classic},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			f := newFixture(true)

			var got DisplayMode
			for range tt.toggles {
				got, _ = f.mode.Toggle()
			}

			assert.Equal(t, tt.expected, got)
			assert.Equal(t, tt.expected, f.mode.Mode())
			assert.Equal(t, []string{tt.expected.Class()}, f.page.Classes())
			assert.Equal(t, tt.expected.Other().Label(), f.label(t))
		})
	}
}

func TestToggleAnnouncesNewMode(t *testing.T) {
	t.Parallel()

	f := newFixture(true)

	f.mode.Toggle()
	note, ok := f.notes.Active(notify.Theme)
	require.True(t, ok)
	assert.Equal(t, "⚡ Cyber mode engaged", note.Message)
	assert.Equal(t, "🕹 Classic Mode", f.label(t))

	f.mode.Toggle()
	note, ok = f.notes.Active(notify.Theme)
	require.True(t, ok)
	assert.Equal(t, "🕹 Classic mode restored", note.Message)
	assert.Equal(t, 1, f.notes.Len())
}

func TestToggleWithoutControl(t *testing.T) {
	t.Parallel()

	f := newFixture(false)

	got, _ := f.mode.Toggle()
	assert.Equal(t, Cyber, got)

	_, ok := f.page.Element(page.ModeToggle)
	assert.False(t, ok)
}

func TestActivateExpires(t *testing.T) {
	t.Parallel()

	f := newFixture(true)
	start := f.fake.Now()

	f.mode.Activate()
	assert.True(t, f.mode.Celebrating())
	assert.True(t, f.page.HasClass(page.ClassRainbow))

	note, ok := f.notes.Active(notify.Celebration)
	require.True(t, ok)
	assert.Equal(t, CelebrationMessage, note.Message)

	until, ok := f.mode.ExpiresAt()
	require.True(t, ok)
	assert.Equal(t, start.Add(6*time.Second), until)

	f.run(6*time.Second - time.Millisecond)
	assert.True(t, f.mode.Celebrating())

	f.run(time.Millisecond)
	assert.False(t, f.mode.Celebrating())
	assert.False(t, f.page.HasClass(page.ClassRainbow))

	note, ok = f.notes.Active(notify.Theme)
	require.True(t, ok)
	assert.Equal(t, DeactivatedMessage, note.Message)

	_, ok = f.mode.ExpiresAt()
	assert.False(t, ok)
}

func TestActivateRestartsWindow(t *testing.T) {
	t.Parallel()

	f := newFixture(true)
	start := f.fake.Now()

	var ended time.Duration
	f.mode.Activate()
	f.run(1000 * time.Millisecond)
	f.mode.Activate()

	for f.mode.Celebrating() {
		f.run(100 * time.Millisecond)
		if f.fake.Now().Sub(start) > 10*time.Second {
			t.Fatal("celebration never ended")
		}
	}
	ended = f.fake.Now().Sub(start)

	assert.Equal(t, 7000*time.Millisecond, ended)

	// The stale 6000ms timer must not have ended the second window early,
	// and nothing fires afterwards.
	f.run(10 * time.Second)
	assert.False(t, f.mode.Celebrating())
}

func TestCelebrationIndependentOfMode(t *testing.T) {
	t.Parallel()

	f := newFixture(true)

	f.mode.Activate()
	f.mode.Toggle()

	assert.True(t, f.mode.Celebrating())
	assert.Equal(t, Cyber, f.mode.Mode())
	assert.Equal(t, []string{page.ClassCyber, page.ClassRainbow}, f.page.Classes())

	f.run(6 * time.Second)

	assert.False(t, f.mode.Celebrating())
	assert.Equal(t, Cyber, f.mode.Mode())
	assert.Equal(t, []string{page.ClassCyber}, f.page.Classes())
}

func TestModeStrings(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "classic", Classic.String())
	assert.Equal(t, "cyber", Cyber.String())
	assert.Equal(t, Classic, Cyber.Other())
}
