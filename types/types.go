// Package types contains shared data structures for numgrid.
package types

import "time"

const (
	// GridSize is the number of rows and columns on the board.
	GridSize = 5
	// Cells is the number of board slots.
	Cells = GridSize * GridSize
	// MaxNumber is the last number the player has to tap.
	MaxNumber = 2 * Cells
	// Empty marks a vacated cell.
	Empty = 0
)

// Phase values for GridState.Phase.
const (
	PhasePlaying  = "playing"
	PhaseFinished = "finished"
)

// Screen values for GridState.Screen.
const (
	ScreenPlay    = "play"
	ScreenSummary = "summary"
)

// GridState is a snapshot of a game session.
// Board is row-major: index = row*GridSize + col, 0 means empty.
type GridState struct {
	Board        [Cells]int    `json:"board"`
	Pending      []int         `json:"pending"`
	Target       int           `json:"target"`
	Phase        string        `json:"phase"`
	Screen       string        `json:"screen"`
	Started      bool          `json:"started"`
	FinalElapsed time.Duration `json:"final_elapsed"`
	Generation   uint64        `json:"generation"`
}

// Finished returns true once every number has been tapped.
func (g *GridState) Finished() bool {
	return g.Phase == PhaseFinished
}

// At returns the value at the given column and row, or Empty when out of range.
func (g *GridState) At(col, row int) int {
	p := CellPos{Col: col, Row: row}
	if !p.Valid() {
		return Empty
	}
	return g.Board[p.Index()]
}

// IndexOf returns the board index holding n, or -1.
func (g *GridState) IndexOf(n int) int {
	if n == Empty {
		return -1
	}
	for i, v := range g.Board {
		if v == n {
			return i
		}
	}
	return -1
}

// Remaining returns how many numbers are still on the board.
func (g *GridState) Remaining() int {
	count := 0
	for _, v := range g.Board {
		if v != Empty {
			count++
		}
	}
	return count
}

// CellPos represents a position on the board.
type CellPos struct {
	Col int
	Row int
}

// Valid reports whether the position lies on the board.
func (p CellPos) Valid() bool {
	return p.Col >= 0 && p.Col < GridSize && p.Row >= 0 && p.Row < GridSize
}

// Index returns the row-major board index.
func (p CellPos) Index() int {
	return p.Row*GridSize + p.Col
}

// PosOf converts a board index back to a position.
func PosOf(index int) CellPos {
	return CellPos{Col: index % GridSize, Row: index / GridSize}
}
