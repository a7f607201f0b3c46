package render

import (
	"image/color"

	"agelife/internal/life"
)

// Layout places a rows×cols board on a pixel surface, with Gap pixels of
// GapColor around every cell.
type Layout struct {
	Rows, Cols int
	CellSize   int
	Gap        int
}

// NewLayout returns a layout with one-pixel gaps. Non-positive cell sizes fall
// back to 1.
func NewLayout(rows, cols, cellSize int) Layout {
	if cellSize <= 0 {
		cellSize = 1
	}
	return Layout{Rows: rows, Cols: cols, CellSize: cellSize, Gap: 1}
}

func (l Layout) pitch() int { return l.CellSize + l.Gap }

// Size returns the board's pixel width and height.
func (l Layout) Size() (int, int) {
	return l.Cols*l.pitch() + l.Gap, l.Rows*l.pitch() + l.Gap
}

// Origin returns the top-left pixel of cell (row, col).
func (l Layout) Origin(row, col int) (int, int) {
	return l.Gap + col*l.pitch(), l.Gap + row*l.pitch()
}

// CellAt maps a pixel to the cell under it. Pixels on a gap or outside the
// board report ok=false.
func (l Layout) CellAt(x, y int) (row, col int, ok bool) {
	x -= l.Gap
	y -= l.Gap
	if x < 0 || y < 0 {
		return 0, 0, false
	}
	col, row = x/l.pitch(), y/l.pitch()
	if row >= l.Rows || col >= l.Cols {
		return 0, 0, false
	}
	if x%l.pitch() >= l.CellSize || y%l.pitch() >= l.CellSize {
		return 0, 0, false
	}
	return row, col, true
}

// FillBoardRGBA paints g into buf, an RGBA buffer of the layout's Size. It
// returns false without touching buf when the sizes disagree.
func FillBoardRGBA(buf []byte, g life.Grid, l Layout) bool {
	w, h := l.Size()
	if len(buf) != 4*w*h || g.Rows() != l.Rows || g.Cols() != l.Cols {
		return false
	}
	fillRect(buf, w, 0, 0, w, h, GapColor)
	for i := 0; i < l.Rows; i++ {
		for j := 0; j < l.Cols; j++ {
			x, y := l.Origin(i, j)
			fillRect(buf, w, x, y, l.CellSize, l.CellSize, AgeColor(g.At(i, j)))
		}
	}
	return true
}

func fillRect(buf []byte, stride, x0, y0, w, h int, c color.RGBA) {
	for y := y0; y < y0+h; y++ {
		row := y * stride
		for x := x0; x < x0+w; x++ {
			base := (row + x) * 4
			buf[base+0] = c.R
			buf[base+1] = c.G
			buf[base+2] = c.B
			buf[base+3] = c.A
		}
	}
}
