package types

import "math"

// Surface coordinate system:
// - The board is painted on a square native surface of SurfaceSize units.
// - Each cell is CellSize units wide and high, origin top-left.
// - Input arrives in display space, where the surface may be drawn at a
//   different size (terminal cells, scaled canvas) and offset.

const (
	// SurfaceSize is the side length of the native drawing surface.
	SurfaceSize = 600.0
	// CellSize is the side length of one cell on the native surface.
	CellSize = SurfaceSize / GridSize
	// CellMargin is the inset of a cell's filled square on each side.
	CellMargin = 2.0
)

// Viewport is where the surface is shown in display space.
type Viewport struct {
	Left   float64
	Top    float64
	Width  float64
	Height float64
}

// ToSurface converts a display-space point into native surface coordinates.
// ok is false when the viewport has no area.
func ToSurface(x, y float64, vp Viewport) (sx, sy float64, ok bool) {
	if vp.Width <= 0 || vp.Height <= 0 {
		return 0, 0, false
	}
	scaleX := SurfaceSize / vp.Width
	scaleY := SurfaceSize / vp.Height
	return (x - vp.Left) * scaleX, (y - vp.Top) * scaleY, true
}

// CellAt maps a native surface point to the cell under it.
func CellAt(sx, sy float64) (CellPos, bool) {
	p := CellPos{
		Col: int(math.Floor(sx / CellSize)),
		Row: int(math.Floor(sy / CellSize)),
	}
	return p, p.Valid()
}

// CellIndexAt maps a display-space point to a board index.
// Returns -1, false when the point is off the grid.
func CellIndexAt(x, y float64, vp Viewport) (int, bool) {
	sx, sy, ok := ToSurface(x, y, vp)
	if !ok {
		return -1, false
	}
	p, ok := CellAt(sx, sy)
	if !ok {
		return -1, false
	}
	return p.Index(), true
}

// CellRect returns the filled square of a cell on the native surface,
// already inset by CellMargin.
func CellRect(p CellPos) (x, y, w, h float64) {
	return float64(p.Col)*CellSize + CellMargin,
		float64(p.Row)*CellSize + CellMargin,
		CellSize - 2*CellMargin,
		CellSize - 2*CellMargin
}

// FromSurface converts a native surface point into display space.
func FromSurface(sx, sy float64, vp Viewport) (x, y float64) {
	return vp.Left + sx*vp.Width/SurfaceSize, vp.Top + sy*vp.Height/SurfaceSize
}
