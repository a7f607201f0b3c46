// Package control turns pointer gestures, commands and timer ticks into board
// updates. Editing and playback are mutually exclusive: while the simulation
// runs every gesture is ignored.
//
// A Controller is not safe for concurrent use. Front ends call it, and drive
// its Scheduler, from a single event loop.
package control

import (
	"io"
	"time"

	"agelife/internal/core"
	"agelife/internal/life"

	"github.com/charmbracelet/log"
)

// TickInterval separates two generations while the simulation runs.
const TickInterval = 100 * time.Millisecond

// drawSession lives from gesture start to gesture end.
type drawSession struct {
	paint life.Age
}

// Controller owns the board, the running flag and the active draw session.
type Controller struct {
	grid    life.Grid
	running bool
	session *drawSession

	// epoch changes on every start, stop and clear. A tick only steps the
	// board when it was scheduled in the current epoch.
	epoch      uint64
	generation int

	sched  core.Scheduler
	src    life.Source
	logger *log.Logger
}

// New returns an idle controller with an empty board. A nil logger discards
// output.
func New(sched core.Scheduler, src life.Source, logger *log.Logger) *Controller {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Controller{
		grid:   life.NewEmpty(life.NumRows, life.NumCols),
		sched:  sched,
		src:    src,
		logger: logger,
	}
}

// Grid returns the current board.
func (c *Controller) Grid() life.Grid { return c.grid }

// Running reports whether the simulation is playing.
func (c *Controller) Running() bool { return c.running }

// Generation counts the steps taken since the board was last edited.
func (c *Controller) Generation() int { return c.generation }

// State reports the interaction state.
func (c *Controller) State() core.Mode {
	switch {
	case c.running:
		return core.ModeRunning
	case c.session != nil:
		return core.ModeDrawing
	}
	return core.ModeIdle
}

// PaintValue returns the value the active gesture paints with.
func (c *Controller) PaintValue() (life.Age, bool) {
	if c.session == nil {
		return life.Dead, false
	}
	return c.session.paint, true
}

// Status snapshots what a front end displays around the board.
func (c *Controller) Status() core.Status {
	return core.Status{
		Mode:       c.State(),
		Running:    c.running,
		Generation: c.generation,
		Population: c.grid.Population(),
	}
}

// OnGestureStart begins a draw session on (row, col). Touching a live cell
// erases for the rest of the gesture; touching a dead cell draws.
func (c *Controller) OnGestureStart(row, col int) {
	if c.running {
		return
	}
	paint := life.Newborn
	if c.grid.At(row, col).Alive() {
		paint = life.Dead
	}
	c.session = &drawSession{paint: paint}
	c.paint(row, col)
}

// OnGestureMove paints (row, col) with the session's value. It does nothing
// outside a gesture or while running.
func (c *Controller) OnGestureMove(row, col int) {
	if c.running || c.session == nil {
		return
	}
	c.paint(row, col)
}

// OnGestureEnd closes the draw session, wherever the pointer was released.
func (c *Controller) OnGestureEnd() {
	c.session = nil
}

// OnStart begins playback. The first generation is computed on the next turn
// of the event loop.
func (c *Controller) OnStart() {
	if c.running {
		return
	}
	c.running = true
	c.session = nil
	c.epoch++
	c.logger.Debug("simulation started", "generation", c.generation, "population", c.grid.Population())
	c.schedule(0)
}

// OnStop pauses playback. A tick that is already scheduled still fires but
// leaves the board alone.
func (c *Controller) OnStop() {
	if !c.running {
		return
	}
	c.running = false
	c.epoch++
	c.logger.Debug("simulation stopped", "generation", c.generation)
}

// Toggle starts a stopped simulation and stops a running one.
func (c *Controller) Toggle() {
	if c.running {
		c.OnStop()
		return
	}
	c.OnStart()
}

// OnRandomize fills the board with a random soup. It is ignored while running.
func (c *Controller) OnRandomize() {
	if c.running {
		return
	}
	c.grid = life.NewRandom(life.NumRows, life.NumCols, life.RandomAliveProbability, c.src)
	c.generation = 0
	c.logger.Debug("board randomized", "population", c.grid.Population())
}

// OnClear empties the board, stops playback and drops any draw session.
func (c *Controller) OnClear() {
	c.grid = life.NewEmpty(life.NumRows, life.NumCols)
	c.running = false
	c.session = nil
	c.generation = 0
	c.epoch++
	c.logger.Debug("board cleared")
}

func (c *Controller) paint(row, col int) {
	c.grid = life.SetCell(c.grid, row, col, c.session.paint)
	c.generation = 0
}

func (c *Controller) schedule(d time.Duration) {
	epoch := c.epoch
	c.sched.AfterFunc(d, func() { c.tick(epoch) })
}

func (c *Controller) tick(epoch uint64) {
	if !c.running || epoch != c.epoch {
		return
	}
	c.grid = life.Step(c.grid)
	c.generation++
	c.logger.Debug("generation", "generation", c.generation, "population", c.grid.Population())
	c.schedule(TickInterval)
}
