package timer

import (
	"sort"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// Fake is a virtual clock and scheduler. Scheduled runs are kept until the
// clock passes their deadline; a cancelled handle still fires here, exactly
// as a real tea.Tick would.
type Fake struct {
	now     time.Time
	seq     int
	entries []fakeEntry
}

type fakeEntry struct {
	due time.Time
	seq int
	fn  func(time.Time) tea.Msg
}

func NewFake() *Fake {
	return &Fake{now: time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)}
}

// Service returns a timer service driven by f.
func (f *Fake) Service() *Service {
	return New(WithScheduler(f.Schedule), WithClock(f.Now))
}

func (f *Fake) Now() time.Time {
	return f.now
}

// Schedule records the run and returns a nil command.
func (f *Fake) Schedule(d time.Duration, fn func(time.Time) tea.Msg) tea.Cmd {
	f.seq++
	f.entries = append(f.entries, fakeEntry{due: f.now.Add(d), seq: f.seq, fn: fn})
	return nil
}

// Advance moves the clock forward by d and returns the messages of every run
// that came due, earliest first.
func (f *Fake) Advance(d time.Duration) []tea.Msg {
	var msgs []tea.Msg
	f.step(f.now.Add(d), func(msg tea.Msg) {
		msgs = append(msgs, msg)
	})
	return msgs
}

// Run moves the clock forward by d, delivering each due message at its own
// deadline. Runs scheduled by deliver are picked up if they fall within d.
func (f *Fake) Run(d time.Duration, deliver func(tea.Msg)) {
	f.step(f.now.Add(d), deliver)
}

func (f *Fake) step(end time.Time, deliver func(tea.Msg)) {
	for {
		sort.SliceStable(f.entries, func(i, j int) bool {
			if f.entries[i].due.Equal(f.entries[j].due) {
				return f.entries[i].seq < f.entries[j].seq
			}
			return f.entries[i].due.Before(f.entries[j].due)
		})

		if len(f.entries) == 0 || f.entries[0].due.After(end) {
			break
		}

		e := f.entries[0]
		f.entries = f.entries[1:]

		if e.due.After(f.now) {
			f.now = e.due
		}

		deliver(e.fn(e.due))
	}

	f.now = end
}

// Scheduled returns the number of runs that have not come due yet,
// cancelled or not.
func (f *Fake) Scheduled() int {
	return len(f.entries)
}
