package predict

import (
	"log/slog"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/ionut-t/wordy/internal/notify"
	"github.com/ionut-t/wordy/internal/page"
	"github.com/ionut-t/wordy/internal/timer"
	"github.com/ionut-t/wordy/pkg/utils"
)

const ProcessingLabel = "🔄 PROCESSING..."

var (
	ProcessingGradient = [2]string{"#00d4ff", "#ff0080"}
	DoneGradient       = [2]string{"#00ff88", "#00d4ff"}
)

// Feedback thresholds.
const (
	FastThreshold = 50 * time.Millisecond
	GoodThreshold = 200 * time.Millisecond
)

// Feedback classifies a prediction timing.
func Feedback(timing time.Duration) (notify.Tone, string) {
	switch {
	case timing < FastThreshold:
		return notify.ToneFast, "🚀 Lightning Fast!"
	case timing < GoodThreshold:
		return notify.ToneGood, "✅ Good Speed!"
	default:
		return notify.ToneSlow, "⏱️ Processing..."
	}
}

type Config struct {
	// Processing is how long the button stays busy after a press.
	Processing time.Duration
	Notice     notify.Timing
}

// Button drives the predict button through its processing window.
type Button struct {
	cfg    Config
	page   *page.Page
	timers *timer.Service
	notes  *notify.Queue

	original string
	window   timer.Handle
	deadline time.Time
}

func New(cfg Config, p *page.Page, timers *timer.Service, notes *notify.Queue) *Button {
	return &Button{
		cfg:    cfg,
		page:   p,
		timers: timers,
		notes:  notes,
	}
}

// Press starts the processing window. Presses on a missing, disabled or
// already busy button do nothing.
func (b *Button) Press() tea.Cmd {
	el, ok := b.page.Element(page.PredictButton)
	if !ok || el.Disabled || b.Processing() {
		return nil
	}

	b.original = el.Text
	el.Text = ProcessingLabel
	el.Disabled = true
	el.Gradient = ProcessingGradient

	var cmd tea.Cmd
	b.window, cmd = b.timers.After(b.cfg.Processing)
	b.deadline, _ = b.timers.Deadline(b.window)

	slog.Debug("prediction started", "window", b.cfg.Processing)

	return cmd
}

// Update restores the button when msg closes its processing window.
func (b *Button) Update(msg timer.FiredMsg) tea.Cmd {
	if !b.timers.Consume(b.window, msg) {
		return nil
	}

	b.window = timer.Handle{}

	if el, ok := b.page.Element(page.PredictButton); ok {
		el.Text = b.original
		el.Disabled = false
		el.Gradient = DoneGradient
	}

	timing := max(msg.Time.Sub(b.deadline), 0)
	tone, message := Feedback(timing)

	slog.Debug("prediction finished", "timing", utils.Duration(timing), "tone", tone)

	_, cmd := b.notes.ShowTone(notify.Status, tone, message, b.cfg.Notice.Visible, b.cfg.Notice.Fade)

	return cmd
}

// Processing reports whether the processing window is open.
func (b *Button) Processing() bool {
	return b.timers.Pending(b.window)
}
