package ui

import (
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"numgrid/config"
)

// SummaryCard is the end-of-game view: a rounded card with the final time
// and a play-again button.
type SummaryCard struct {
	*tview.Box
	labels  config.Labels
	message string
	button  *MenuButton
	buttonX int
	buttonY int
}

// NewSummaryCard creates a summary card. onPlayAgain runs when the button is pressed.
func NewSummaryCard(c *config.Config, onPlayAgain func()) *SummaryCard {
	labels := c.Labels()
	card := &SummaryCard{
		Box:    tview.NewBox(),
		labels: labels,
		button: NewMenuButton(labels.PlayAgain, true, onPlayAgain),
	}
	card.button.SetFocused(true)
	card.SetFinal(0)
	return card
}

// SetFinal sets the completion time shown on the card.
func (c *SummaryCard) SetFinal(final time.Duration) {
	c.message = SummaryText(c.labels, final)
}

// Message returns the end-of-game message.
func (c *SummaryCard) Message() string {
	return c.message
}

// Size returns the width and height the card wants.
func (c *SummaryCard) Size() (int, int) {
	width := tview.TaggedStringWidth(c.message) + 6
	if width < 36 {
		width = 36
	}
	return width, 11
}

// Draw renders the card with rounded borders.
func (c *SummaryCard) Draw(screen tcell.Screen) {
	c.Box.DrawForSubclass(screen, c)

	x, y, width, height := c.GetInnerRect()
	if width < 10 || height < 9 {
		return
	}

	borderStyle := tcell.StyleDefault.Foreground(MenuColors.Border).Background(MenuColors.CardBG)
	bgStyle := tcell.StyleDefault.Background(MenuColors.CardBG)

	// Fill background
	for row := y; row < y+height; row++ {
		for col := x; col < x+width; col++ {
			screen.SetContent(col, row, ' ', nil, bgStyle)
		}
	}

	// Top border: ╭───╮
	screen.SetContent(x, y, '╭', nil, borderStyle)
	for col := x + 1; col < x+width-1; col++ {
		screen.SetContent(col, y, '─', nil, borderStyle)
	}
	screen.SetContent(x+width-1, y, '╮', nil, borderStyle)

	// Side borders
	for row := y + 1; row < y+height-1; row++ {
		screen.SetContent(x, row, '│', nil, borderStyle)
		screen.SetContent(x+width-1, row, '│', nil, borderStyle)
	}

	// Bottom border: ╰───╯
	screen.SetContent(x, y+height-1, '╰', nil, borderStyle)
	for col := x + 1; col < x+width-1; col++ {
		screen.SetContent(col, y+height-1, '─', nil, borderStyle)
	}
	screen.SetContent(x+width-1, y+height-1, '╯', nil, borderStyle)

	// Title with hexagon decoration
	inner := width - 2
	tview.Print(screen, "[#87afaf]⬡[-]  [::b]"+tview.Escape(c.labels.Title), x+1, y+2, inner, tview.AlignCenter, MenuColors.Title)

	// Divider: ├───┤
	divY := y + 4
	screen.SetContent(x, divY, '├', nil, borderStyle)
	for col := x + 1; col < x+width-1; col++ {
		screen.SetContent(col, divY, '─', nil, borderStyle)
	}
	screen.SetContent(x+width-1, divY, '┤', nil, borderStyle)

	tview.Print(screen, tview.Escape(c.message), x+1, y+6, inner, tview.AlignCenter, MenuColors.Label)

	c.buttonX = x + (width-c.button.Width())/2
	c.buttonY = y + 8
	c.button.Draw(screen, c.buttonX, c.buttonY)
}

// InputHandler presses the button on Enter.
func (c *SummaryCard) InputHandler() func(event *tcell.EventKey, setFocus func(p tview.Primitive)) {
	return c.WrapInputHandler(func(event *tcell.EventKey, setFocus func(p tview.Primitive)) {
		c.button.HandleKey(event)
	})
}

// MouseHandler presses the button when it is clicked.
func (c *SummaryCard) MouseHandler() func(action tview.MouseAction, event *tcell.EventMouse, setFocus func(p tview.Primitive)) (consumed bool, capture tview.Primitive) {
	return c.WrapMouseHandler(func(action tview.MouseAction, event *tcell.EventMouse, setFocus func(p tview.Primitive)) (consumed bool, capture tview.Primitive) {
		x, y := event.Position()
		if !c.InRect(x, y) {
			return false, nil
		}
		setFocus(c)
		if action == tview.MouseLeftClick && c.buttonHit(x, y) {
			c.button.Press()
		}
		return true, nil
	})
}

func (c *SummaryCard) buttonHit(x, y int) bool {
	return y == c.buttonY && x >= c.buttonX && x < c.buttonX+c.button.Width()
}
