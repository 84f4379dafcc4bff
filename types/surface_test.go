package types

import (
	"testing"
)

func TestCellIndexAtNativeSize(t *testing.T) {
	vp := Viewport{Width: SurfaceSize, Height: SurfaceSize}
	tests := []struct {
		x, y  float64
		index int
		ok    bool
	}{
		{0, 0, 0, true},
		{119.9, 0, 0, true},
		{120, 0, 1, true},
		{300, 300, 12, true},
		{599.9, 599.9, 24, true},
		{600, 10, -1, false},
		{10, 600, -1, false},
		{-0.1, 10, -1, false},
		{10, -5, -1, false},
	}
	for _, tt := range tests {
		index, ok := CellIndexAt(tt.x, tt.y, vp)
		if index != tt.index || ok != tt.ok {
			t.Fatalf("(%v,%v): expected (%d,%v), got (%d,%v)", tt.x, tt.y, tt.index, tt.ok, index, ok)
		}
	}
}

func TestCellIndexAtScaledViewport(t *testing.T) {
	// Surface drawn at half size, offset by (100, 50).
	vp := Viewport{Left: 100, Top: 50, Width: 300, Height: 300}

	index, ok := CellIndexAt(100+150, 50+150, vp)
	if !ok || index != 12 {
		t.Fatalf("center should map to 12, got (%d,%v)", index, ok)
	}
	index, ok = CellIndexAt(100+59, 50+61, vp)
	if !ok || index != 5 {
		t.Fatalf("expected row 1 col 0 (5), got (%d,%v)", index, ok)
	}
	if _, ok := CellIndexAt(99, 60, vp); ok {
		t.Fatal("point left of the viewport should be rejected")
	}
	if _, ok := CellIndexAt(401, 60, vp); ok {
		t.Fatal("point right of the viewport should be rejected")
	}
}

func TestCellIndexAtNonSquareViewport(t *testing.T) {
	// Terminal cells are roughly twice as tall as wide.
	vp := Viewport{Width: 40, Height: 15}
	index, ok := CellIndexAt(39.5, 14.5, vp)
	if !ok || index != 24 {
		t.Fatalf("bottom-right should map to 24, got (%d,%v)", index, ok)
	}
	index, ok = CellIndexAt(8.5, 3.5, vp)
	if !ok || index != 6 {
		t.Fatalf("expected 6, got (%d,%v)", index, ok)
	}
}

func TestCellIndexAtEmptyViewport(t *testing.T) {
	if _, ok := CellIndexAt(1, 1, Viewport{}); ok {
		t.Fatal("zero-sized viewport should reject every point")
	}
}

func TestCellRectInset(t *testing.T) {
	x, y, w, h := CellRect(CellPos{Col: 1, Row: 2})
	if x != CellSize+CellMargin || y != 2*CellSize+CellMargin {
		t.Fatalf("unexpected origin (%v,%v)", x, y)
	}
	if w != CellSize-2*CellMargin || h != CellSize-2*CellMargin {
		t.Fatalf("unexpected size (%v,%v)", w, h)
	}
}

func TestFromSurfaceInvertsToSurface(t *testing.T) {
	vp := Viewport{Left: 4, Top: 2, Width: 40, Height: 15}
	x, y := FromSurface(360, 240, vp)
	sx, sy, ok := ToSurface(x, y, vp)
	if !ok || sx != 360 || sy != 240 {
		t.Fatalf("round trip failed: (%v,%v,%v)", sx, sy, ok)
	}
}
