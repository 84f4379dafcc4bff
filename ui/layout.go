package ui

import (
	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"numgrid/config"
)

// CreateGameLayout centers the board with the status panel underneath.
func CreateGameLayout(board *GridBoardUI, status *StatusPanel, c *config.Config) *tview.Flex {
	boardWidth, boardHeight := BoardSize(c.Theme)

	centerRow := tview.NewFlex().SetDirection(tview.FlexColumn)
	centerRow.AddItem(nil, 0, 1, false)               // left spacer
	centerRow.AddItem(board.Box, boardWidth, 0, true) // board (fixed width)
	centerRow.AddItem(nil, 0, 1, false)               // right spacer

	frame := tview.NewFlex().SetDirection(tview.FlexRow)
	frame.AddItem(nil, 0, 1, false)                // top spacer
	frame.AddItem(centerRow, boardHeight, 0, true) // board row (fixed height)
	frame.AddItem(nil, 1, 0, false)                // gap
	frame.AddItem(status.Box(), 2, 0, false)       // timer + hints
	frame.AddItem(nil, 0, 1, false)                // bottom spacer
	return frame
}

// CenterPrimitive centers p in the available space at the size reported by size.
func CenterPrimitive(p tview.Primitive, size func() (int, int)) tview.Primitive {
	return &centered{item: p, size: size, Box: tview.NewBox()}
}

// centered lays out its item in the middle of its own rect on every draw,
// so the size can change with the content.
type centered struct {
	*tview.Box
	item tview.Primitive
	size func() (int, int)
}

func (c *centered) Draw(screen tcell.Screen) {
	x, y, width, height := c.GetRect()
	w, h := c.size()
	if w > width {
		w = width
	}
	if h > height {
		h = height
	}
	c.item.SetRect(x+(width-w)/2, y+(height-h)/2, w, h)
	c.item.Draw(screen)
}

func (c *centered) Focus(delegate func(p tview.Primitive)) {
	delegate(c.item)
}

func (c *centered) HasFocus() bool {
	return c.item.HasFocus()
}

func (c *centered) InputHandler() func(event *tcell.EventKey, setFocus func(p tview.Primitive)) {
	return c.item.InputHandler()
}

func (c *centered) MouseHandler() func(action tview.MouseAction, event *tcell.EventMouse, setFocus func(p tview.Primitive)) (consumed bool, capture tview.Primitive) {
	return c.item.MouseHandler()
}
