package classic

import (
	"sync"
	"time"

	"github.com/jonboulle/clockwork"
)

// Stopwatch runs a callback on a fixed interval until stopped.
// It can be started again after Stop.
type Stopwatch struct {
	clock    clockwork.Clock
	interval time.Duration

	mu   sync.Mutex
	stop chan struct{}
	done chan struct{}
}

// NewStopwatch creates a stopped stopwatch.
func NewStopwatch(clock clockwork.Clock, interval time.Duration) *Stopwatch {
	done := make(chan struct{})
	close(done)
	return &Stopwatch{
		clock:    clock,
		interval: interval,
		done:     done,
	}
}

// Start begins ticking. Returns false if the stopwatch is already running.
func (w *Stopwatch) Start(onTick func(now time.Time)) bool {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.stop != nil {
		return false
	}

	// The ticker is created here rather than in the goroutine so that it is
	// registered with the clock by the time Start returns.
	ticker := w.clock.NewTicker(w.interval)
	stop := make(chan struct{})
	done := make(chan struct{})
	w.stop = stop
	w.done = done

	go func() {
		defer close(done)
		defer ticker.Stop()
		for {
			select {
			case <-stop:
				return
			case now := <-ticker.Chan():
				// A tick and a stop can be ready together; stop wins.
				select {
				case <-stop:
					return
				default:
				}
				onTick(now)
			}
		}
	}()
	return true
}

// Stop cancels the ticking goroutine without waiting for it to exit.
// Returns false if the stopwatch was not running.
func (w *Stopwatch) Stop() bool {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.stop == nil {
		return false
	}
	close(w.stop)
	w.stop = nil
	return true
}

// Running returns true between Start and Stop.
func (w *Stopwatch) Running() bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.stop != nil
}

// Done returns a channel closed once the most recent ticking goroutine has exited.
func (w *Stopwatch) Done() <-chan struct{} {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.done
}
