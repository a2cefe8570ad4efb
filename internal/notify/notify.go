package notify

import (
	"log/slog"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"
	"github.com/ionut-t/wordy/internal/timer"
)

// Kind is a notification channel. Each kind holds at most one live
// notification.
type Kind int

const (
	Status Kind = iota
	Theme
	Celebration
)

// Kinds lists every kind in display order.
var Kinds = []Kind{Status, Theme, Celebration}

func (k Kind) String() string {
	switch k {
	case Status:
		return "status"
	case Theme:
		return "theme"
	case Celebration:
		return "celebration"
	default:
		return "unknown"
	}
}

// Tone selects the colour of a notification.
type Tone int

const (
	ToneInfo Tone = iota
	ToneFast
	ToneGood
	ToneSlow
	ToneError
)

// Phase is the lifecycle stage of a notification.
type Phase int

const (
	Hidden Phase = iota
	FadingIn
	Visible
	FadingOut
	Removed
)

func (p Phase) String() string {
	switch p {
	case Hidden:
		return "hidden"
	case FadingIn:
		return "fading-in"
	case Visible:
		return "visible"
	case FadingOut:
		return "fading-out"
	case Removed:
		return "removed"
	default:
		return "unknown"
	}
}

type Notification struct {
	ID      uuid.UUID
	Kind    Kind
	Tone    Tone
	Message string
	// Visible is how long the notification holds at full opacity.
	Visible time.Duration
	// Fade is the duration of each of the fade-in and fade-out.
	Fade time.Duration
}

// Timing is how long a notification holds and fades.
type Timing struct {
	Visible time.Duration
	Fade    time.Duration
}

// Handle refers to one shown notification.
type Handle struct {
	Kind Kind
	ID   uuid.UUID
}

type entry struct {
	note  Notification
	phase Phase
	since time.Time
	timer timer.Handle
}

// Queue owns the notification slots.
type Queue struct {
	timers *timer.Service
	slots  map[Kind]*entry
}

func New(timers *timer.Service) *Queue {
	return &Queue{
		timers: timers,
		slots:  make(map[Kind]*entry),
	}
}

// Show displays message on the kind's slot, replacing whatever it holds.
func (q *Queue) Show(kind Kind, message string, visible, fade time.Duration) (Handle, tea.Cmd) {
	return q.ShowTone(kind, ToneInfo, message, visible, fade)
}

// ShowTone is Show with an explicit tone.
func (q *Queue) ShowTone(kind Kind, tone Tone, message string, visible, fade time.Duration) (Handle, tea.Cmd) {
	if e, ok := q.slots[kind]; ok {
		slog.Debug("notification superseded", "kind", kind, "id", e.note.ID, "phase", e.phase)
		q.teardown(e)
	}

	e := &entry{
		note: Notification{
			ID:      uuid.New(),
			Kind:    kind,
			Tone:    tone,
			Message: message,
			Visible: max(visible, 0),
			Fade:    max(fade, 0),
		},
		phase: Hidden,
	}
	q.slots[kind] = e

	cmd := q.enter(e, FadingIn, e.note.Fade)

	return Handle{Kind: kind, ID: e.note.ID}, cmd
}

// Update advances the notification owning msg. Messages for torn down or
// already advanced notifications are ignored.
func (q *Queue) Update(msg timer.FiredMsg) tea.Cmd {
	for _, kind := range Kinds {
		e, ok := q.slots[kind]
		if !ok || !q.timers.Consume(e.timer, msg) {
			continue
		}

		switch e.phase {
		case FadingIn:
			return q.enter(e, Visible, e.note.Visible)
		case Visible:
			return q.enter(e, FadingOut, e.note.Fade)
		case FadingOut:
			e.phase = Removed
			delete(q.slots, kind)
			return nil
		}
	}

	return nil
}

func (q *Queue) enter(e *entry, phase Phase, d time.Duration) tea.Cmd {
	q.timers.Cancel(e.timer)

	e.phase = phase
	e.since = q.timers.Now()

	var cmd tea.Cmd
	e.timer, cmd = q.timers.After(d)

	return cmd
}

func (q *Queue) teardown(e *entry) {
	q.timers.Cancel(e.timer)
	e.timer = timer.Handle{}
	e.phase = Removed
	delete(q.slots, e.note.Kind)
}

// Dismiss removes the kind's notification without fading it out.
func (q *Queue) Dismiss(kind Kind) {
	if e, ok := q.slots[kind]; ok {
		q.teardown(e)
	}
}

// Live reports whether h still refers to the notification on its slot.
func (q *Queue) Live(h Handle) bool {
	e, ok := q.slots[h.Kind]
	return ok && e.note.ID == h.ID
}

// Active returns the kind's live notification.
func (q *Queue) Active(kind Kind) (Notification, bool) {
	e, ok := q.slots[kind]
	if !ok {
		return Notification{}, false
	}
	return e.note, true
}

// Phase returns the lifecycle stage of the kind's slot.
func (q *Queue) Phase(kind Kind) Phase {
	e, ok := q.slots[kind]
	if !ok {
		return Removed
	}
	return e.phase
}

// Opacity returns how visible the kind's notification is right now, 0 to 1.
func (q *Queue) Opacity(kind Kind) float64 {
	e, ok := q.slots[kind]
	if !ok {
		return 0
	}

	switch e.phase {
	case FadingIn:
		return progress(q.timers.Now().Sub(e.since), e.note.Fade)
	case Visible:
		return 1
	case FadingOut:
		return 1 - progress(q.timers.Now().Sub(e.since), e.note.Fade)
	default:
		return 0
	}
}

// Animating reports whether any notification is mid-fade.
func (q *Queue) Animating() bool {
	for _, e := range q.slots {
		if e.phase == FadingIn || e.phase == FadingOut {
			return true
		}
	}
	return false
}

// Len returns the number of live notifications.
func (q *Queue) Len() int {
	return len(q.slots)
}

func progress(elapsed, total time.Duration) float64 {
	if total <= 0 {
		return 1
	}
	return min(max(float64(elapsed)/float64(total), 0), 1)
}
