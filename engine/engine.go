// Package engine defines the interface for number grid game engines.
package engine

import (
	"time"

	"numgrid/types"
)

// GameEngine defines the interface for one player's game session.
type GameEngine interface {
	// Reset discards the current game and deals a fresh board.
	// Any running timer or pending summary transition is cancelled.
	Reset()

	// HandleInput maps a display-space point to a cell and taps it.
	HandleInput(x, y float64, vp types.Viewport) TapResult

	// Tap taps the cell at the given board index.
	Tap(index int) TapResult

	// GetGridState returns a snapshot of the current state.
	GetGridState() *types.GridState

	// Elapsed returns the running time since the first correct tap.
	// ok is false when the timer is not running.
	Elapsed() (elapsed time.Duration, ok bool)

	// OnTick registers a callback fired on every timer tick while the timer runs.
	// It is called from the timer goroutine.
	OnTick(func(elapsed time.Duration))

	// OnSummary registers a callback fired once the summary view should be shown.
	// It is called from a timer goroutine, after GameConfig.SummaryDelay.
	OnSummary(func(final time.Duration))

	// Close stops all timers. The engine must not be used afterwards.
	Close()
}

// TapResult describes what a tap did.
type TapResult struct {
	Accepted  bool // the tapped cell held the target
	Started   bool // this tap started the timer
	Completed bool // this tap finished the game
	Index     int  // board index, -1 when off the grid
	Tapped    int  // number that was tapped
	Placed    int  // number now in the cell, types.Empty when vacated
}

// GameConfig holds configuration for starting a new game.
type GameConfig struct {
	Seed         uint64        // 0 picks a random seed per session
	TickInterval time.Duration // timer display refresh interval
	SummaryDelay time.Duration // delay between completion and the summary view
}

// DefaultConfig returns a reasonable default configuration.
func DefaultConfig() GameConfig {
	return GameConfig{
		Seed:         0,
		TickInterval: 10 * time.Millisecond,
		SummaryDelay: 100 * time.Millisecond,
	}
}
