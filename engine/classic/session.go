package classic

import (
	"math/rand/v2"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"
	"github.com/rs/zerolog"

	"numgrid/engine"
	"numgrid/types"
)

// Session implements the GameEngine interface for the classic 1-50 game.
type Session struct {
	id    uuid.UUID
	cfg   engine.GameConfig
	clock clockwork.Clock
	log   zerolog.Logger
	rng   *rand.Rand
	seed  uint64

	mu        sync.Mutex
	gen       uint64 // bumped on every reset, stale timer callbacks compare against it
	board     [types.Cells]int
	pending   []int
	target    int
	started   bool
	startedAt time.Time
	finished  bool
	final     time.Duration
	screen    string

	watch   *Stopwatch
	summary clockwork.Timer

	tickCallback    func(elapsed time.Duration)
	summaryCallback func(final time.Duration)
}

// Option configures a Session.
type Option func(*Session)

// WithClock replaces the real clock, mostly for tests.
func WithClock(c clockwork.Clock) Option {
	return func(s *Session) {
		s.clock = c
	}
}

// WithLogger sets the session logger.
func WithLogger(l zerolog.Logger) Option {
	return func(s *Session) {
		s.log = l
	}
}

// NewSession creates a session and deals the first board.
func NewSession(cfg engine.GameConfig, opts ...Option) *Session {
	defaults := engine.DefaultConfig()
	if cfg.TickInterval <= 0 {
		cfg.TickInterval = defaults.TickInterval
	}
	if cfg.SummaryDelay < 0 {
		cfg.SummaryDelay = defaults.SummaryDelay
	}

	s := &Session{
		id:    uuid.New(),
		cfg:   cfg,
		clock: clockwork.NewRealClock(),
		log:   zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.rng, s.seed = newRand(cfg.Seed)
	s.log = s.log.With().Str("session", s.id.String()[:8]).Logger()
	s.watch = NewStopwatch(s.clock, cfg.TickInterval)

	s.log.Debug().Uint64("seed", s.seed).Msg("session created")
	s.Reset()
	return s
}

// ID returns the session id.
func (s *Session) ID() uuid.UUID {
	return s.id
}

// Seed returns the seed the session's boards are dealt from.
func (s *Session) Seed() uint64 {
	return s.seed
}

// Reset discards the current game and deals a fresh board.
func (s *Session) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.cancelTimersLocked()
	s.gen++
	s.board, s.pending = deal(s.rng)
	s.target = 1
	s.started = false
	s.startedAt = time.Time{}
	s.finished = false
	s.final = 0
	s.screen = types.ScreenPlay

	s.log.Debug().Uint64("generation", s.gen).Msg("game reset")
}

// HandleInput maps a display-space point to a cell and taps it.
func (s *Session) HandleInput(x, y float64, vp types.Viewport) engine.TapResult {
	index, ok := types.CellIndexAt(x, y, vp)
	if !ok {
		return engine.TapResult{Index: -1}
	}
	return s.Tap(index)
}

// Tap taps the cell at the given board index.
// Taps after completion, off the board, or on anything but the target are ignored.
func (s *Session) Tap(index int) engine.TapResult {
	res := engine.TapResult{Index: index}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.finished || index < 0 || index >= types.Cells {
		return res
	}
	if s.board[index] != s.target {
		return res
	}

	now := s.clock.Now()
	res.Accepted = true
	res.Tapped = s.target

	if s.target == 1 {
		s.started = true
		s.startedAt = now
		s.startTimerLocked()
		res.Started = true
		s.log.Debug().Int("index", index).Msg("timer started")
	}

	if len(s.pending) > 0 {
		s.board[index] = s.pending[0]
		s.pending = s.pending[1:]
	} else {
		s.board[index] = types.Empty
	}
	res.Placed = s.board[index]
	s.target++

	if s.target > types.MaxNumber {
		s.watch.Stop()
		s.final = roundElapsed(now.Sub(s.startedAt))
		s.finished = true
		s.scheduleSummaryLocked()
		res.Completed = true
		s.log.Debug().Str("seconds", FormatSeconds(s.final)).Msg("game complete")
	}
	return res
}

// GetGridState returns a snapshot of the current state.
func (s *Session) GetGridState() *types.GridState {
	s.mu.Lock()
	defer s.mu.Unlock()

	phase := types.PhasePlaying
	if s.finished {
		phase = types.PhaseFinished
	}
	pending := make([]int, len(s.pending))
	copy(pending, s.pending)
	return &types.GridState{
		Board:        s.board,
		Pending:      pending,
		Target:       s.target,
		Phase:        phase,
		Screen:       s.screen,
		Started:      s.started,
		FinalElapsed: s.final,
		Generation:   s.gen,
	}
}

// Elapsed returns the running time since the first correct tap.
func (s *Session) Elapsed() (time.Duration, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.started || s.finished {
		return 0, false
	}
	return s.clock.Since(s.startedAt), true
}

// FinalElapsed returns the frozen completion time, rounded to hundredths.
func (s *Session) FinalElapsed() (time.Duration, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.final, s.finished
}

// OnTick registers a callback fired on every timer tick while the timer runs.
func (s *Session) OnTick(f func(elapsed time.Duration)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.tickCallback = f
}

// OnSummary registers a callback fired when the summary view should be shown.
func (s *Session) OnSummary(f func(final time.Duration)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.summaryCallback = f
}

// Close stops all timers.
func (s *Session) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cancelTimersLocked()
	s.gen++
	s.log.Debug().Msg("session closed")
}

func (s *Session) startTimerLocked() {
	gen := s.gen
	s.watch.Start(func(now time.Time) {
		s.tick(gen, now)
	})
}

func (s *Session) tick(gen uint64, now time.Time) {
	s.mu.Lock()
	if gen != s.gen || !s.started || s.finished {
		s.mu.Unlock()
		return
	}
	elapsed := now.Sub(s.startedAt)
	callback := s.tickCallback
	s.mu.Unlock()

	if callback != nil {
		callback(elapsed)
	}
}

func (s *Session) scheduleSummaryLocked() {
	gen := s.gen
	s.summary = s.clock.AfterFunc(s.cfg.SummaryDelay, func() {
		s.showSummary(gen)
	})
}

func (s *Session) showSummary(gen uint64) {
	s.mu.Lock()
	if gen != s.gen || !s.finished {
		s.mu.Unlock()
		return
	}
	s.screen = types.ScreenSummary
	s.summary = nil
	final := s.final
	callback := s.summaryCallback
	s.mu.Unlock()

	if callback != nil {
		callback(final)
	}
}

// cancelTimersLocked stops the stopwatch and any pending summary transition.
func (s *Session) cancelTimersLocked() {
	if s.watch.Stop() {
		s.log.Debug().Msg("timer cancelled")
	}
	if s.summary != nil {
		s.summary.Stop()
		s.summary = nil
	}
}

var _ engine.GameEngine = (*Session)(nil)
