package timer

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAfterAndConsume(t *testing.T) {
	t.Parallel()

	fake := NewFake()
	svc := fake.Service()

	h, _ := svc.After(100 * time.Millisecond)
	require.True(t, svc.Pending(h))

	deadline, ok := svc.Deadline(h)
	require.True(t, ok)
	assert.Equal(t, fake.Now().Add(100*time.Millisecond), deadline)

	assert.Empty(t, fake.Advance(99*time.Millisecond))

	msgs := fake.Advance(time.Millisecond)
	require.Len(t, msgs, 1)

	fired := msgs[0].(FiredMsg)
	assert.Equal(t, h.ID(), fired.ID)
	assert.True(t, svc.Consume(h, fired))
	assert.False(t, svc.Consume(h, fired), "second delivery must be rejected")
	assert.Equal(t, 0, svc.Len())
}

func TestCancelledTimerIsRejected(t *testing.T) {
	t.Parallel()

	fake := NewFake()
	svc := fake.Service()

	h, _ := svc.After(time.Second)
	assert.True(t, svc.Cancel(h))
	assert.False(t, svc.Cancel(h))

	msgs := fake.Advance(time.Second)
	require.Len(t, msgs, 1, "the underlying tick still fires")
	assert.False(t, svc.Consume(h, msgs[0].(FiredMsg)))
}

func TestConsumeIgnoresForeignHandles(t *testing.T) {
	t.Parallel()

	fake := NewFake()
	svc := fake.Service()

	a, _ := svc.After(time.Second)
	b, _ := svc.After(time.Second)

	msgs := fake.Advance(time.Second)
	require.Len(t, msgs, 2)

	first := msgs[0].(FiredMsg)
	assert.False(t, svc.Consume(b, first))
	assert.True(t, svc.Consume(a, first))
	assert.True(t, svc.Pending(b))
}

func TestZeroHandle(t *testing.T) {
	t.Parallel()

	svc := New()
	var h Handle

	assert.True(t, h.IsZero())
	assert.False(t, svc.Pending(h))
	assert.False(t, svc.Cancel(h))
	assert.False(t, svc.Consume(h, FiredMsg{}))
}

func TestDefaultSchedulerProducesTick(t *testing.T) {
	t.Parallel()

	svc := New()
	h, cmd := svc.After(time.Millisecond)
	require.NotNil(t, cmd)

	msg := cmd()
	fired, ok := msg.(FiredMsg)
	require.True(t, ok)
	assert.True(t, svc.Consume(h, fired))
}

func TestFakeRunDeliversChainedTimers(t *testing.T) {
	t.Parallel()

	fake := NewFake()
	svc := fake.Service()
	start := fake.Now()

	var fires []time.Duration
	h, _ := svc.After(time.Second)

	fake.Run(5*time.Second, func(msg tea.Msg) {
		fired := msg.(FiredMsg)
		if !svc.Consume(h, fired) {
			return
		}
		fires = append(fires, fake.Now().Sub(start))
		if len(fires) < 3 {
			h, _ = svc.After(time.Second)
		}
	})

	assert.Equal(t, []time.Duration{time.Second, 2 * time.Second, 3 * time.Second}, fires)
	assert.Equal(t, start.Add(5*time.Second), fake.Now())
}
