package ui

import (
	"github.com/gdamore/tcell/v2"

	"numgrid/config"
)

// MenuColors defines the Nord-inspired color palette for the summary card.
var MenuColors = struct {
	Border      tcell.Color // Muted blue-gray for borders
	CardBG      tcell.Color // Dark gray background
	Title       tcell.Color // Bright white for title
	TitleAccent tcell.Color // Blue accent for decoration
	Label       tcell.Color // Light gray for labels
	Hint        tcell.Color // Dim gray for hints
	ButtonFocus tcell.Color // Focused button
	ButtonText  tcell.Color // Button text
}{
	Border:      tcell.PaletteColor(60),
	CardBG:      tcell.PaletteColor(236),
	Title:       tcell.PaletteColor(255),
	TitleAccent: tcell.PaletteColor(109),
	Label:       tcell.PaletteColor(250),
	Hint:        tcell.PaletteColor(245),
	ButtonFocus: tcell.PaletteColor(109),
	ButtonText:  tcell.PaletteColor(255),
}

// Indexes into the board style table.
const (
	styleBackground = iota
	styleCellLow
	styleCellHigh
	styleLabel
	styleCursor
	styleStatus
)

// boardStyles builds the board color table from the theme.
func boardStyles(c *config.Config) []tcell.Color {
	colors := c.Theme.Colors
	return []tcell.Color{
		tcell.PaletteColor(colors.Background), // 0
		tcell.PaletteColor(colors.CellLow),    // 1
		tcell.PaletteColor(colors.CellHigh),   // 2
		tcell.PaletteColor(colors.Label),      // 3
		tcell.PaletteColor(colors.CursorBG),   // 4
		tcell.PaletteColor(colors.Status),     // 5
	}
}
