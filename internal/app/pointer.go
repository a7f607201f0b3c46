package app

import "agelife/internal/render"

// margin surrounds the board inside the window.
const margin = 12

// gestureSink receives the draw gestures a pointer produces.
type gestureSink interface {
	OnGestureStart(row, col int)
	OnGestureMove(row, col int)
	OnGestureEnd()
}

// boardCells maps window pixels to cells of a board drawn at (margin, margin).
func boardCells(l render.Layout) func(x, y int) (int, int, bool) {
	return func(x, y int) (int, int, bool) {
		return l.CellAt(x-margin, y-margin)
	}
}

// pointerTracker follows one mouse button or touch at a time and turns its
// press, drag and release into gestures. Presses that blocked reports true for
// (the control bar) never start tracking.
type pointerTracker struct {
	sink    gestureSink
	cellAt  func(x, y int) (int, int, bool)
	blocked func(x, y int) bool

	active  bool
	touch   bool
	id      int
	last    [2]int
	hasLast bool
}

func newPointerTracker(sink gestureSink, cellAt func(x, y int) (int, int, bool), blocked func(x, y int) bool) *pointerTracker {
	return &pointerTracker{sink: sink, cellAt: cellAt, blocked: blocked}
}

// tracking reports whether the given mouse (touch=false) or touch id owns the
// current gesture.
func (p *pointerTracker) tracking(touch bool, id int) bool {
	if !p.active || p.touch != touch {
		return false
	}
	return !touch || p.id == id
}

// press starts tracking a pointer. It reports false when another pointer is
// already tracked or the press is blocked. A press off the board is still
// tracked so its release ends the gesture.
func (p *pointerTracker) press(x, y int, touch bool, id int) bool {
	if p.active || (p.blocked != nil && p.blocked(x, y)) {
		return false
	}
	p.active, p.touch, p.id = true, touch, id
	p.hasLast = false
	row, col, ok := p.cellAt(x, y)
	if !ok {
		return true
	}
	p.sink.OnGestureStart(row, col)
	p.last, p.hasLast = [2]int{row, col}, true
	return true
}

// drag reports a move only when the pointer enters a new cell.
func (p *pointerTracker) drag(x, y int) {
	if !p.active {
		return
	}
	row, col, ok := p.cellAt(x, y)
	if !ok {
		return
	}
	cell := [2]int{row, col}
	if p.hasLast && cell == p.last {
		return
	}
	p.sink.OnGestureMove(row, col)
	p.last, p.hasLast = cell, true
}

func (p *pointerTracker) release() {
	if !p.active {
		return
	}
	p.active, p.touch, p.id = false, false, 0
	p.hasLast = false
	p.sink.OnGestureEnd()
}
