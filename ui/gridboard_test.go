package ui

import (
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/jonboulle/clockwork"
	"github.com/rivo/tview"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"numgrid/config"
	"numgrid/engine"
	"numgrid/engine/classic"
	"numgrid/types"
)

func newSimScreen(t *testing.T) tcell.SimulationScreen {
	t.Helper()
	s := tcell.NewSimulationScreen("UTF-8")
	require.NoError(t, s.Init())
	s.SetSize(80, 30)
	t.Cleanup(s.Fini)
	return s
}

func newTestBoard(t *testing.T) (*GridBoardUI, *classic.Session, *Screens) {
	t.Helper()
	cfg := config.DefaultConfig
	cfg.Seed = 8
	session := classic.NewSession(cfg.GameConfig(), classic.WithClock(clockwork.NewFakeClock()))
	t.Cleanup(session.Close)

	status := NewStatusPanel(&cfg)
	board := NewGridBoard(tview.NewApplication(), &cfg, status)
	summary := NewSummaryCard(&cfg, board.Reset)
	screens := NewScreens(CreateGameLayout(board, status, &cfg), summary)
	board.ConnectEngine(session, screens)
	board.Box.SetRect(2, 1, 40, 15)
	return board, session, screens
}

// cellCenter returns the screen position in the middle of a board cell.
func cellCenter(board *GridBoardUI, index int) (int, int) {
	x, y, _, _ := board.Box.GetInnerRect()
	p := types.PosOf(index)
	return x + p.Col*board.cfg.Theme.CellWidth + 3, y + p.Row*board.cfg.Theme.CellHeight + 1
}

func TestDrawGridPaintsCells(t *testing.T) {
	s := newSimScreen(t)
	cfg := config.DefaultConfig
	styles := boardStyles(&cfg)

	var state types.GridState
	state.Board[0] = 7
	state.Board[1] = 42
	// Board[2] stays empty.
	DrawGrid(s, &state, cfg.Theme, styles, 0, 0, nil)

	// Cell 0: columns 0-6, rows 0-1, label "7" centered at column 3, row 0.
	r, _, style, _ := s.GetContent(3, 0)
	assert.Equal(t, '7', r)
	fg, bg, _ := style.Decompose()
	assert.Equal(t, tcell.PaletteColor(cfg.Theme.Colors.Label), fg)
	assert.Equal(t, tcell.PaletteColor(cfg.Theme.Colors.CellLow), bg)

	// Cell 1 holds a high number and gets the darker fill.
	r, _, style, _ = s.GetContent(8+2, 0)
	assert.Equal(t, '4', r)
	_, bg, _ = style.Decompose()
	assert.Equal(t, tcell.PaletteColor(cfg.Theme.Colors.CellHigh), bg)

	// Gap column between cells shows the background.
	_, _, style, _ = s.GetContent(7, 0)
	_, bg, _ = style.Decompose()
	assert.Equal(t, tcell.PaletteColor(cfg.Theme.Colors.Background), bg)

	// Empty cell is skipped entirely.
	for col := 16; col < 24; col++ {
		r, _, style, _ = s.GetContent(col, 0)
		_, bg, _ = style.Decompose()
		assert.Equal(t, ' ', r)
		assert.Equal(t, tcell.PaletteColor(cfg.Theme.Colors.Background), bg)
	}
}

func TestDrawGridKeepsGapsAtAnyCellSize(t *testing.T) {
	for _, size := range []struct{ w, h int }{{8, 3}, {3, 2}, {5, 4}} {
		s := newSimScreen(t)
		cfg := config.DefaultConfig
		cfg.Theme.CellWidth = size.w
		cfg.Theme.CellHeight = size.h

		var state types.GridState
		state.Board[0] = 1
		state.Board[1] = 2
		state.Board[types.GridSize] = 3
		DrawGrid(s, &state, cfg.Theme, boardStyles(&cfg), 0, 0, nil)

		bgAt := func(x, y int) tcell.Color {
			_, _, style, _ := s.GetContent(x, y)
			_, bg, _ := style.Decompose()
			return bg
		}
		background := tcell.PaletteColor(cfg.Theme.Colors.Background)
		low := tcell.PaletteColor(cfg.Theme.Colors.CellLow)

		// Last column of cell 0 and last row of cell 0 stay background.
		assert.Equal(t, background, bgAt(size.w-1, 0), "gap column at %dx%d", size.w, size.h)
		assert.Equal(t, background, bgAt(0, size.h-1), "gap row at %dx%d", size.w, size.h)
		// The neighbours start right after the gap.
		assert.Equal(t, low, bgAt(size.w, 0))
		assert.Equal(t, low, bgAt(0, size.h))
		assert.Equal(t, low, bgAt(0, 0))
	}
}

func TestFillRectInsetsEveryCell(t *testing.T) {
	theme := config.DefaultConfig.Theme
	for i := 0; i < types.Cells; i++ {
		p := types.PosOf(i)
		x, y, w, h := FillRect(theme, p)
		assert.Equal(t, p.Col*theme.CellWidth, x)
		assert.Equal(t, p.Row*theme.CellHeight, y)
		assert.Equal(t, theme.CellWidth-1, w)
		assert.Equal(t, theme.CellHeight-1, h)
	}

	theme.CellHeight = 1
	_, _, _, h := FillRect(theme, types.CellPos{Col: 2, Row: 4})
	assert.Equal(t, 1, h, "single-row cells keep their row")
}

func TestDrawGridHighlightsCursor(t *testing.T) {
	s := newSimScreen(t)
	cfg := config.DefaultConfig
	var state types.GridState
	state.Board[6] = 3

	DrawGrid(s, &state, cfg.Theme, boardStyles(&cfg), 0, 0, &types.CellPos{Col: 1, Row: 1})
	_, _, style, _ := s.GetContent(8, 3)
	_, bg, _ := style.Decompose()
	assert.Equal(t, tcell.PaletteColor(cfg.Theme.Colors.CursorBG), bg)
}

func TestTapAtPlaysTarget(t *testing.T) {
	board, session, _ := newTestBoard(t)
	index := session.GetGridState().IndexOf(1)

	x, y := cellCenter(board, index)
	res := board.TapAt(x, y)
	assert.True(t, res.Accepted)
	assert.True(t, res.Started)
	assert.Equal(t, index, res.Index)
	assert.Equal(t, 2, session.GetGridState().Target)
}

func TestTapAtIgnoresWrongCellAndOffGrid(t *testing.T) {
	board, session, _ := newTestBoard(t)
	before := session.GetGridState()

	x, y := cellCenter(board, before.IndexOf(3))
	assert.False(t, board.TapAt(x, y).Accepted)

	// Just right of the board.
	res := board.TapAt(2+41, 2)
	assert.False(t, res.Accepted)
	assert.Equal(t, -1, res.Index)

	assert.Equal(t, before, session.GetGridState())
}

func TestKeyboardSelectionPlays(t *testing.T) {
	board, session, _ := newTestBoard(t)
	assert.Nil(t, board.SelectedTile())

	board.MoveSelection(1, 0)
	require.NotNil(t, board.SelectedTile())
	assert.Equal(t, types.CellPos{Col: 2, Row: 2}, *board.SelectedTile())

	target := types.PosOf(session.GetGridState().IndexOf(1))
	for board.SelectedTile().Col != target.Col {
		if board.SelectedTile().Col < target.Col {
			board.MoveSelection(1, 0)
		} else {
			board.MoveSelection(-1, 0)
		}
	}
	for board.SelectedTile().Row != target.Row {
		if board.SelectedTile().Row < target.Row {
			board.MoveSelection(0, 1)
		} else {
			board.MoveSelection(0, -1)
		}
	}
	assert.True(t, board.PlaySelected().Accepted)

	// Moving off the edge keeps the cursor in place.
	for i := 0; i < types.GridSize+2; i++ {
		board.MoveSelection(-1, 0)
	}
	assert.Equal(t, 0, board.SelectedTile().Col)
}

func TestCompletionFreezesStatus(t *testing.T) {
	board, session, screens := newTestBoard(t)
	var res engine.TapResult
	for n := 1; n <= types.MaxNumber; n++ {
		x, y := cellCenter(board, session.GetGridState().IndexOf(n))
		res = board.TapAt(x, y)
		require.True(t, res.Accepted)
	}
	assert.True(t, res.Completed)
	assert.Equal(t, "Time: 0.00 s", board.status.Text())
	assert.Equal(t, PagePlay, screens.Current(), "summary waits for the engine's delay")

	board.Reset()
	assert.Equal(t, 1, session.GetGridState().Target)
	assert.Equal(t, PagePlay, screens.Current())
}

func TestResetReturnsToPlay(t *testing.T) {
	board, _, screens := newTestBoard(t)
	screens.ShowSummary(0)
	require.Equal(t, PageSummary, screens.Current())

	board.Reset()
	assert.Equal(t, PagePlay, screens.Current())
	assert.Nil(t, board.SelectedTile())
}
