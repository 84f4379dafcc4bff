package ui

import (
	"fmt"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"numgrid/config"
	"numgrid/engine/classic"
)

// StatusPanel shows the timer display and key hints under the board.
// Every method is a no-op on a nil panel.
type StatusPanel struct {
	box    *tview.TextView
	labels config.Labels
	timer  string
}

// NewStatusPanel creates a new status panel.
func NewStatusPanel(c *config.Config) *StatusPanel {
	panel := &StatusPanel{
		box:    tview.NewTextView(),
		labels: c.Labels(),
	}

	panel.box.SetDynamicColors(true)
	panel.box.SetBorder(false)
	panel.box.SetTextAlign(tview.AlignCenter)
	panel.box.SetTextColor(tcell.PaletteColor(c.Theme.Colors.Status))

	panel.Reset()
	return panel
}

// Box returns the underlying tview component.
func (p *StatusPanel) Box() *tview.TextView {
	if p == nil {
		return nil
	}
	return p.box
}

// SetElapsed updates the timer display.
func (p *StatusPanel) SetElapsed(elapsed time.Duration) {
	if p == nil {
		return
	}
	p.timer = TimerText(p.labels, elapsed)
	p.refresh()
}

// Reset puts the timer display back to zero.
func (p *StatusPanel) Reset() {
	p.SetElapsed(0)
}

// Text returns the current timer display.
func (p *StatusPanel) Text() string {
	if p == nil {
		return ""
	}
	return p.timer
}

func (p *StatusPanel) refresh() {
	if p.box == nil {
		return
	}
	p.box.SetText(fmt.Sprintf("[::b]%s[-:-:-]\n[gray]%s[-]", tview.Escape(p.timer), tview.Escape(p.labels.Hint)))
}

// TimerText formats the running timer display, e.g. "Time: 1.23 s".
func TimerText(l config.Labels, elapsed time.Duration) string {
	return fmt.Sprintf("%s%s %s", l.Timer, classic.FormatSeconds(elapsed), l.Unit)
}

// SummaryText formats the end-of-game message.
func SummaryText(l config.Labels, final time.Duration) string {
	return fmt.Sprintf("%s%s %s", l.Complete, classic.FormatSeconds(final), l.Unit)
}
