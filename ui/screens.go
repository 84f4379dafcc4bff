package ui

import (
	"time"

	"github.com/rivo/tview"
)

// Page names, one per view.
const (
	PagePlay    = "play"
	PageSummary = "summary"
)

// Screens switches between the play view and the summary view.
type Screens struct {
	pages   *tview.Pages
	summary *SummaryCard
}

// NewScreens builds the page stack with the play view in front.
func NewScreens(play tview.Primitive, summary *SummaryCard) *Screens {
	pages := tview.NewPages()
	pages.AddPage(PagePlay, play, true, true)
	pages.AddPage(PageSummary, CenterPrimitive(summary, summary.Size), true, false)
	return &Screens{
		pages:   pages,
		summary: summary,
	}
}

// Pages returns the root primitive.
func (s *Screens) Pages() *tview.Pages {
	return s.pages
}

// ShowPlay hides the summary and shows the board.
func (s *Screens) ShowPlay() {
	s.pages.SwitchToPage(PagePlay)
}

// ShowSummary hides the board and shows the end-of-game message.
func (s *Screens) ShowSummary(final time.Duration) {
	s.summary.SetFinal(final)
	s.pages.SwitchToPage(PageSummary)
}

// Current returns the name of the visible page.
func (s *Screens) Current() string {
	name, _ := s.pages.GetFrontPage()
	return name
}
