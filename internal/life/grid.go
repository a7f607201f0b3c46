package life

import (
	"fmt"
	"strings"
)

// Board dimensions used by the interactive front ends.
const (
	NumRows = 20
	NumCols = 30
)

// Age is the value of a single cell. Zero is dead; a live cell holds the number
// of generations it has been alive, starting at 1.
type Age uint32

const (
	// Dead marks an empty cell.
	Dead Age = 0
	// Newborn is the age of a freshly painted or freshly born cell.
	Newborn Age = 1
)

// Alive reports whether the cell holds a live value.
func (a Age) Alive() bool { return a > 0 }

// Grid is a fixed-size board of cell ages stored as nested rows. Grids are
// treated as values: every mutating operation returns a new Grid and leaves
// the receiver untouched.
type Grid struct {
	rows, cols int
	cells      [][]Age
}

// NewEmpty returns a rows×cols grid with every cell dead.
func NewEmpty(rows, cols int) Grid {
	if rows < 0 {
		rows = 0
	}
	if cols < 0 {
		cols = 0
	}
	cells := make([][]Age, rows)
	for i := range cells {
		cells[i] = make([]Age, cols)
	}
	return Grid{rows: rows, cols: cols, cells: cells}
}

// Rows returns the number of rows.
func (g Grid) Rows() int { return g.rows }

// Cols returns the number of columns.
func (g Grid) Cols() int { return g.cols }

// InBounds reports whether (row, col) addresses a cell of the grid.
func (g Grid) InBounds(row, col int) bool {
	return row >= 0 && row < g.rows && col >= 0 && col < g.cols
}

// At returns the age stored at (row, col). It panics when the coordinates are
// outside the grid.
func (g Grid) At(row, col int) Age {
	g.mustContain(row, col)
	return g.cells[row][col]
}

// SetCell returns a copy of g with (row, col) set to v. Coordinates outside the
// grid are a caller bug and panic.
func SetCell(g Grid, row, col int, v Age) Grid {
	g.mustContain(row, col)
	next := g.clone()
	next.cells[row][col] = v
	return next
}

// Population counts the live cells.
func (g Grid) Population() int {
	n := 0
	for _, row := range g.cells {
		for _, c := range row {
			if c.Alive() {
				n++
			}
		}
	}
	return n
}

// MaxAge returns the age of the oldest live cell, or Dead for an empty board.
func (g Grid) MaxAge() Age {
	var oldest Age
	for _, row := range g.cells {
		for _, c := range row {
			if c > oldest {
				oldest = c
			}
		}
	}
	return oldest
}

// Equal reports whether both grids have the same shape and cell ages.
func (g Grid) Equal(o Grid) bool {
	if g.rows != o.rows || g.cols != o.cols {
		return false
	}
	for i := range g.cells {
		for j := range g.cells[i] {
			if g.cells[i][j] != o.cells[i][j] {
				return false
			}
		}
	}
	return true
}

// SameShape reports whether both grids have the same live/dead pattern,
// ignoring ages.
func (g Grid) SameShape(o Grid) bool {
	if g.rows != o.rows || g.cols != o.cols {
		return false
	}
	for i := range g.cells {
		for j := range g.cells[i] {
			if g.cells[i][j].Alive() != o.cells[i][j].Alive() {
				return false
			}
		}
	}
	return true
}

// String renders the grid with '#' for live cells and '.' for dead ones.
func (g Grid) String() string {
	var b strings.Builder
	b.Grow(g.rows * (g.cols + 1))
	for _, row := range g.cells {
		for _, c := range row {
			if c.Alive() {
				b.WriteByte('#')
				continue
			}
			b.WriteByte('.')
		}
		b.WriteByte('\n')
	}
	return b.String()
}

func (g Grid) clone() Grid {
	cells := make([][]Age, g.rows)
	for i, row := range g.cells {
		cells[i] = append([]Age(nil), row...)
	}
	return Grid{rows: g.rows, cols: g.cols, cells: cells}
}

func (g Grid) mustContain(row, col int) {
	if !g.InBounds(row, col) {
		panic(fmt.Sprintf("life: cell (%d,%d) outside %dx%d grid", row, col, g.rows, g.cols))
	}
}
