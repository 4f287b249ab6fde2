package core

import "testing"

func TestViewportToCell(t *testing.T) {
	v := NewViewport(800, 600, 80, 24)

	tests := []struct {
		name     string
		x, y     float64
		col, row int
	}{
		{"origin", 0, 0, 0, 0},
		{"inside last cell", 799, 599, 79, 23},
		{"far edge clamps", 800, 600, 79, 23},
		{"negative clamps", -10, -10, 0, 0},
		{"middle", 400, 300, 40, 12},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			col, row := v.ToCell(tc.x, tc.y)
			if col != tc.col || row != tc.row {
				t.Errorf("ToCell(%v, %v) = (%d, %d), want (%d, %d)", tc.x, tc.y, col, row, tc.col, tc.row)
			}
		})
	}
}

func TestViewportToLogical(t *testing.T) {
	v := NewViewport(800, 600, 80, 24)

	x, y := v.ToLogical(0, 0)
	if x != 5 || y != 12.5 {
		t.Errorf("ToLogical(0, 0) = (%v, %v), want (5, 12.5)", x, y)
	}

	// Round trip through the cell center lands in the same cell
	for _, col := range []int{0, 13, 79} {
		lx, ly := v.ToLogical(col, 7)
		c, r := v.ToCell(lx, ly)
		if c != col || r != 7 {
			t.Errorf("round trip of (%d, 7) gave (%d, %d)", col, c, r)
		}
	}
}

func TestViewportCellRect(t *testing.T) {
	v := NewViewport(800, 600, 80, 24)

	x, y, w, h := v.CellRect(NewRect(25, 80, 90, 30))
	if x != 2 || y != 3 || w != 10 || h != 2 {
		t.Errorf("CellRect = (%d, %d, %d, %d), want (2, 3, 10, 2)", x, y, w, h)
	}

	// Tiny rects still occupy a cell
	_, _, w, h = v.CellRect(NewRect(100, 100, 1, 1))
	if w != 1 || h != 1 {
		t.Errorf("tiny rect should cover one cell, got %dx%d", w, h)
	}
}

func TestNewViewportGuardsZero(t *testing.T) {
	v := NewViewport(800, 600, 0, -3)
	if v.Cols != 1 || v.Rows != 1 {
		t.Errorf("grid should be at least 1x1, got %dx%d", v.Cols, v.Rows)
	}
}
