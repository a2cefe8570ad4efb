package timer

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// ID identifies one scheduled run.
type ID uint64

// Handle is retained by whoever schedules a timer. The zero Handle refers to
// nothing and is never pending.
type Handle struct {
	id ID
}

// ID returns the identifier the fired message will carry.
func (h Handle) ID() ID {
	return h.id
}

// IsZero reports whether the handle was never assigned.
func (h Handle) IsZero() bool {
	return h.id == 0
}

// FiredMsg is delivered when a scheduled run comes due.
type FiredMsg struct {
	ID   ID
	Time time.Time
}

// ScheduleFunc turns a delay into a command that eventually produces a message.
type ScheduleFunc func(d time.Duration, fn func(time.Time) tea.Msg) tea.Cmd

// Service hands out one-shot timers and tracks which of them are still
// pending. Commands produced by the service cannot be recalled once
// returned to the runtime, so cancelling only forgets the handle and the
// eventual FiredMsg is rejected by Consume.
type Service struct {
	next     ID
	pending  map[ID]time.Time
	schedule ScheduleFunc
	now      func() time.Time
}

type Option func(*Service)

// WithScheduler replaces tea.Tick as the scheduling primitive.
func WithScheduler(fn ScheduleFunc) Option {
	return func(s *Service) {
		s.schedule = fn
	}
}

// WithClock replaces time.Now.
func WithClock(now func() time.Time) Option {
	return func(s *Service) {
		s.now = now
	}
}

func New(opts ...Option) *Service {
	s := &Service{
		pending:  make(map[ID]time.Time),
		schedule: tea.Tick,
		now:      time.Now,
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// After schedules a run once d has elapsed.
func (s *Service) After(d time.Duration) (Handle, tea.Cmd) {
	s.next++
	id := s.next
	s.pending[id] = s.now().Add(d)

	cmd := s.schedule(d, func(t time.Time) tea.Msg {
		return FiredMsg{ID: id, Time: t}
	})

	return Handle{id: id}, cmd
}

// Cancel forgets a pending handle. It reports whether the handle was pending.
func (s *Service) Cancel(h Handle) bool {
	if h.IsZero() {
		return false
	}

	if _, ok := s.pending[h.id]; !ok {
		return false
	}

	delete(s.pending, h.id)
	return true
}

// Pending reports whether h is scheduled and neither fired nor cancelled.
func (s *Service) Pending(h Handle) bool {
	if h.IsZero() {
		return false
	}

	_, ok := s.pending[h.id]
	return ok
}

// Deadline returns when h is due.
func (s *Service) Deadline(h Handle) (time.Time, bool) {
	t, ok := s.pending[h.id]
	return t, ok
}

// Consume reports whether msg is the live firing of h. A true result
// retires the handle, so a duplicate delivery is rejected.
func (s *Service) Consume(h Handle, msg FiredMsg) bool {
	if h.IsZero() || msg.ID != h.id {
		return false
	}

	if _, ok := s.pending[h.id]; !ok {
		return false
	}

	delete(s.pending, h.id)
	return true
}

// Len returns the number of pending timers.
func (s *Service) Len() int {
	return len(s.pending)
}

func (s *Service) Now() time.Time {
	return s.now()
}
