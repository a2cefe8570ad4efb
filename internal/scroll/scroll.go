package scroll

import (
	"math"
	"time"
)

// Swing is the default easing curve of a smooth scroll.
func Swing(p float64) float64 {
	return 0.5 - math.Cos(p*math.Pi)/2
}

// Target returns the row to scroll to so that the section at row lands
// offset units below the top, clamped to [0, limit]. unit is the number of
// offset units per row.
func Target(row, offset, unit, limit int) int {
	if unit <= 0 {
		unit = 1
	}

	rows := int(math.Round(float64(offset) / float64(unit)))
	return min(max(row-rows, 0), max(limit, 0))
}

// Animator eases a scroll position between two rows over a fixed duration.
type Animator struct {
	duration time.Duration
	now      func() time.Time

	from, to int
	start    time.Time
	running  bool
}

func NewAnimator(duration time.Duration, now func() time.Time) *Animator {
	if now == nil {
		now = time.Now
	}

	return &Animator{
		duration: duration,
		now:      now,
	}
}

// Start stops any running scroll and begins a new one from the current row.
func (a *Animator) Start(from, to int) {
	a.from = from
	a.to = to
	a.start = a.now()
	a.running = from != to && a.duration > 0
}

// Stop halts the scroll where it is.
func (a *Animator) Stop() {
	if !a.running {
		return
	}

	a.from = a.Position()
	a.to = a.from
	a.running = false
}

// Position returns the row for the current instant. Once the duration has
// elapsed the animator settles on its target.
func (a *Animator) Position() int {
	if !a.running {
		return a.to
	}

	elapsed := a.now().Sub(a.start)
	if elapsed >= a.duration {
		a.running = false
		return a.to
	}

	p := Swing(float64(elapsed) / float64(a.duration))
	return a.from + int(math.Round(float64(a.to-a.from)*p))
}

// Animating reports whether a scroll is still in progress.
func (a *Animator) Animating() bool {
	if a.running && a.now().Sub(a.start) >= a.duration {
		a.running = false
	}
	return a.running
}

// Target returns the row the animator is heading to.
func (a *Animator) Target() int {
	return a.to
}
