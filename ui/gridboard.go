// Package ui provides custom controls for tview to play the number grid in the terminal.
package ui

import (
	"math"
	"strconv"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"numgrid/config"
	"numgrid/engine"
	"numgrid/types"
)

type GridBoardUI struct {
	Box     *tview.Box
	app     *tview.Application
	eng     engine.GameEngine
	cfg     *config.Config
	status  *StatusPanel
	screens *Screens
	styles  []tcell.Color
	selX    int
	selY    int
}

func NewGridBoard(app *tview.Application, c *config.Config, status *StatusPanel) *GridBoardUI {
	gridBoard := &GridBoardUI{
		Box:    tview.NewBox(),
		app:    app,
		status: status,
		selX:   -1,
		selY:   -1,
	}
	gridBoard.SetConfig(c)
	gridBoard.Box.SetDrawFunc(func(screen tcell.Screen, x int, y int, width int, height int) (int, int, int, int) {
		if gridBoard.eng == nil {
			return x, y, width, height
		}
		DrawGrid(screen, gridBoard.eng.GetGridState(), gridBoard.cfg.Theme, gridBoard.styles, x, y, gridBoard.SelectedTile())
		return x, y, width, height
	})
	gridBoard.Box.SetMouseCapture(func(action tview.MouseAction, event *tcell.EventMouse) (tview.MouseAction, *tcell.EventMouse) {
		if action != tview.MouseLeftDown {
			return action, event
		}
		x, y := event.Position()
		if !gridBoard.Box.InRect(x, y) {
			return action, event
		}
		gridBoard.TapAt(x, y)
		return action, nil
	})
	return gridBoard
}

// ConnectEngine connects the board to a game engine and the screen controller.
func (g *GridBoardUI) ConnectEngine(e engine.GameEngine, screens *Screens) {
	g.eng = e
	g.screens = screens

	e.OnTick(func(time.Duration) {
		// The engine is asked again on the UI goroutine, a reset may have
		// happened since this tick was queued.
		g.app.QueueUpdateDraw(func() {
			if elapsed, ok := g.eng.Elapsed(); ok {
				g.status.SetElapsed(elapsed)
			}
		})
	})

	e.OnSummary(func(time.Duration) {
		g.app.QueueUpdateDraw(func() {
			state := g.eng.GetGridState()
			if state.Screen == types.ScreenSummary {
				g.screens.ShowSummary(state.FinalElapsed)
			}
		})
	})

	g.status.Reset()
}

// Viewport returns where the grid is drawn, in terminal cells.
func (g *GridBoardUI) Viewport() types.Viewport {
	x, y, _, _ := g.Box.GetInnerRect()
	w, h := BoardSize(g.cfg.Theme)
	return types.Viewport{
		Left:   float64(x),
		Top:    float64(y),
		Width:  float64(w),
		Height: float64(h),
	}
}

// TapAt taps whatever cell is drawn at the given screen position.
func (g *GridBoardUI) TapAt(x, y int) engine.TapResult {
	if g.eng == nil {
		return engine.TapResult{Index: -1}
	}
	// Aim at the middle of the terminal cell that was clicked.
	res := g.eng.HandleInput(float64(x)+0.5, float64(y)+0.5, g.Viewport())
	g.afterTap(res)
	return res
}

// PlaySelected taps the cell under the keyboard cursor.
func (g *GridBoardUI) PlaySelected() engine.TapResult {
	sel := g.SelectedTile()
	if sel == nil || g.eng == nil {
		return engine.TapResult{Index: -1}
	}
	res := g.eng.Tap(sel.Index())
	g.afterTap(res)
	return res
}

func (g *GridBoardUI) afterTap(res engine.TapResult) {
	if !res.Accepted {
		return
	}
	if res.Completed {
		g.ResetSelection()
		if final, ok := finalElapsed(g.eng); ok {
			g.status.SetElapsed(final)
		}
	}
}

// Reset starts a new game and returns to the play view.
func (g *GridBoardUI) Reset() {
	if g.eng == nil {
		return
	}
	g.eng.Reset()
	g.ResetSelection()
	g.status.Reset()
	if g.screens != nil {
		g.screens.ShowPlay()
	}
}

func (g *GridBoardUI) SelectedTile() *types.CellPos {
	if g.selX == -1 && g.selY == -1 {
		return nil
	}
	return &types.CellPos{Col: g.selX, Row: g.selY}
}

func (g *GridBoardUI) MoveSelection(h, v int) {
	if g.eng == nil || g.eng.GetGridState().Finished() {
		g.ResetSelection()
		return
	}
	if g.SelectedTile() == nil {
		// No selection yet, start in the middle
		g.selX = types.GridSize / 2
		g.selY = types.GridSize / 2
		return
	}
	next := types.CellPos{Col: g.selX + h, Row: g.selY + v}
	if !next.Valid() {
		return
	}
	g.selX = next.Col
	g.selY = next.Row
}

func (g *GridBoardUI) ResetSelection() {
	g.selX = -1
	g.selY = -1
}

func (g *GridBoardUI) SetConfig(c *config.Config) {
	g.styles = boardStyles(c)
	g.cfg = c
}

// BoardSize returns the drawn grid size in terminal cells.
func BoardSize(theme config.Theme) (width, height int) {
	return types.GridSize * theme.CellWidth, types.GridSize * theme.CellHeight
}

// DrawGrid paints the board with its top-left corner at (left, top).
// Empty cells are left as gaps in the background.
func DrawGrid(s tcell.Screen, state *types.GridState, theme config.Theme, styles []tcell.Color, left, top int, sel *types.CellPos) {
	boardW, boardH := BoardSize(theme)
	bg := tcell.StyleDefault.Background(styles[styleBackground])
	for row := top; row < top+boardH; row++ {
		for col := left; col < left+boardW; col++ {
			s.SetContent(col, row, ' ', nil, bg)
		}
	}

	for i, num := range state.Board {
		pos := types.PosOf(i)
		x0, y0, fillW, fillH := FillRect(theme, pos)
		x0 += left
		y0 += top
		selected := sel != nil && *sel == pos

		if num == types.Empty {
			if selected {
				s.SetContent(x0+fillW/2, y0+(fillH-1)/2, '·', nil, bg.Foreground(styles[styleCursor]))
			}
			continue
		}

		cellColor := styles[styleCellLow]
		if num > types.Cells {
			cellColor = styles[styleCellHigh]
		}
		if selected && theme.DrawCursorBackground {
			cellColor = styles[styleCursor]
		}
		style := tcell.StyleDefault.Background(cellColor).Foreground(styles[styleLabel])
		drawCell(s, style, x0, y0, fillW, fillH)

		label := strconv.Itoa(num)
		lx := x0 + (fillW-len(label))/2
		ly := y0 + (fillH-1)/2
		for j, ch := range label {
			s.SetContent(lx+j, ly, ch, nil, style.Bold(true))
		}
	}
}

// FillRect maps the inset square of a cell on the native surface onto
// terminal cells, relative to the board's top-left corner. The margin rounds
// down to whole columns and rows, so every cell keeps at least one column of
// background on its right and, when taller than one row, one row below it.
func FillRect(theme config.Theme, pos types.CellPos) (x, y, w, h int) {
	sx, sy, sw, sh := types.CellRect(pos)
	scaleX := float64(theme.CellWidth) / types.CellSize
	scaleY := float64(theme.CellHeight) / types.CellSize
	x = int(math.Floor(sx * scaleX))
	y = int(math.Floor(sy * scaleY))
	w = max(1, int(math.Floor((sx+sw)*scaleX))-x)
	h = max(1, int(math.Floor((sy+sh)*scaleY))-y)
	return x, y, w, h
}

// drawCell fills a w by h rectangle.
func drawCell(s tcell.Screen, style tcell.Style, x, y, w, h int) {
	for row := y; row < y+h; row++ {
		for col := x; col < x+w; col++ {
			s.SetContent(col, row, ' ', nil, style)
		}
	}
}

func finalElapsed(e engine.GameEngine) (time.Duration, bool) {
	state := e.GetGridState()
	return state.FinalElapsed, state.Finished()
}
