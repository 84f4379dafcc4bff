package classic

import (
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStopwatchTicks(t *testing.T) {
	clock := clockwork.NewFakeClock()
	start := clock.Now()
	w := NewStopwatch(clock, 10*time.Millisecond)

	ticks := make(chan time.Time, 4)
	require.True(t, w.Start(func(now time.Time) {
		select {
		case ticks <- now:
		default:
		}
	}))
	defer w.Stop()

	assert.False(t, w.Start(func(time.Time) {}), "second start should be refused")
	assert.True(t, w.Running())

	clock.Advance(10 * time.Millisecond)
	select {
	case now := <-ticks:
		assert.Equal(t, 10*time.Millisecond, now.Sub(start))
	case <-time.After(waitFor):
		t.Fatal("expected a tick")
	}
}

func TestStopwatchStop(t *testing.T) {
	clock := clockwork.NewFakeClock()
	w := NewStopwatch(clock, 10*time.Millisecond)

	select {
	case <-w.Done():
	default:
		t.Fatal("an idle stopwatch should report done")
	}
	assert.False(t, w.Stop(), "stopping an idle stopwatch is a no-op")

	ticks := make(chan struct{}, 4)
	w.Start(func(time.Time) {
		select {
		case ticks <- struct{}{}:
		default:
		}
	})
	done := w.Done()
	assert.True(t, w.Stop())
	assert.False(t, w.Running())

	select {
	case <-done:
	case <-time.After(waitFor):
		t.Fatal("goroutine should exit after stop")
	}

	clock.Advance(50 * time.Millisecond)
	select {
	case <-ticks:
		t.Fatal("no ticks expected after stop")
	case <-time.After(20 * time.Millisecond):
	}
}

func TestStopwatchRestart(t *testing.T) {
	clock := clockwork.NewFakeClock()
	w := NewStopwatch(clock, 10*time.Millisecond)

	w.Start(func(time.Time) {})
	w.Stop()

	ticks := make(chan struct{}, 1)
	require.True(t, w.Start(func(time.Time) {
		select {
		case ticks <- struct{}{}:
		default:
		}
	}))
	defer w.Stop()

	clock.Advance(10 * time.Millisecond)
	select {
	case <-ticks:
	case <-time.After(waitFor):
		t.Fatal("restarted stopwatch should tick")
	}
}
