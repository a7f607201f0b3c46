package life

import "math"

// neighborOffsets lists the Moore neighborhood as (drow, dcol) pairs.
var neighborOffsets = [8][2]int{
	{0, 1},
	{0, -1},
	{1, -1},
	{-1, 1},
	{1, 1},
	{-1, -1},
	{1, 0},
	{-1, 0},
}

// CountLiveNeighbors returns how many of the eight cells around (row, col) are
// alive. The board does not wrap: positions past an edge count as dead.
func CountLiveNeighbors(g Grid, row, col int) int {
	n := 0
	for _, off := range neighborOffsets {
		r, c := row+off[0], col+off[1]
		if r < 0 || r >= g.rows || c < 0 || c >= g.cols {
			continue
		}
		if g.cells[r][c].Alive() {
			n++
		}
	}
	return n
}

// Step computes the next generation of g. Every neighbor count is taken from g
// itself, which is never modified.
//
// A live cell with two or three live neighbors survives and ages by one; any
// other live cell dies. A dead cell with exactly three live neighbors is born
// with age 1.
func Step(g Grid) Grid {
	next := NewEmpty(g.rows, g.cols)
	for i := 0; i < g.rows; i++ {
		for j := 0; j < g.cols; j++ {
			n := CountLiveNeighbors(g, i, j)
			cur := g.cells[i][j]
			switch {
			case cur.Alive() && (n == 2 || n == 3):
				next.cells[i][j] = older(cur)
			case !cur.Alive() && n == 3:
				next.cells[i][j] = Newborn
			}
		}
	}
	return next
}

func older(a Age) Age {
	if a == math.MaxUint32 {
		return a
	}
	return a + 1
}
