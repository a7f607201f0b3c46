//go:build ebiten

package app

import (
	"context"
	"errors"
	"time"

	"agelife/internal/control"
	"agelife/internal/core"
	"agelife/internal/frontend"
	"agelife/internal/life"
	"agelife/internal/render"
	"agelife/internal/ui"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Game adapts a controller to the ebiten.Game interface.
type Game struct {
	ctx     context.Context
	ctl     *control.Controller
	clock   *core.DeferQueue
	painter *render.GridPainter
	hud     *ui.HUD
	pointer *pointerTracker
}

// New constructs a Game drawing cells of scale pixels.
func New(ctx context.Context, ctl *control.Controller, clock *core.DeferQueue, scale int) *Game {
	layout := render.NewLayout(life.NumRows, life.NumCols, scale)
	w, h := layout.Size()
	hud := ui.NewHUD(h+2*margin, w+2*margin)
	return &Game{
		ctx:     ctx,
		ctl:     ctl,
		clock:   clock,
		painter: render.NewGridPainter(layout),
		hud:     hud,
		pointer: newPointerTracker(ctl, boardCells(layout), hud.Contains),
	}
}

// Update handles per-frame input and fires due simulation ticks.
func (g *Game) Update() error {
	if g.ctx.Err() != nil {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) || inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
		g.ctl.Toggle()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.ctl.OnRandomize()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyC) {
		g.ctl.OnClear()
	}

	switch g.hud.Update(g.ctl.Status()) {
	case ui.CommandToggle:
		g.ctl.Toggle()
	case ui.CommandRandomize:
		g.ctl.OnRandomize()
	case ui.CommandClear:
		g.ctl.OnClear()
	}

	g.updateMouse()
	g.updateTouch()
	g.updateCursor()

	g.clock.Advance(time.Now())
	return nil
}

func (g *Game) updateMouse() {
	x, y := ebiten.CursorPosition()
	switch {
	case inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft):
		g.pointer.press(x, y, false, 0)
	case !g.pointer.tracking(false, 0):
		// a touch owns the gesture, or nothing is pressed
	case inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft):
		g.pointer.release()
	default:
		g.pointer.drag(x, y)
	}
}

func (g *Game) updateTouch() {
	if !g.pointer.active {
		for _, id := range inpututil.AppendJustPressedTouchIDs(nil) {
			x, y := ebiten.TouchPosition(id)
			if g.pointer.press(x, y, true, int(id)) {
				return
			}
		}
		return
	}
	if !g.pointer.touch {
		return
	}
	id := ebiten.TouchID(g.pointer.id)
	if inpututil.IsTouchJustReleased(id) {
		g.pointer.release()
		return
	}
	g.pointer.drag(ebiten.TouchPosition(id))
}

func (g *Game) updateCursor() {
	x, y := ebiten.CursorPosition()
	_, _, onBoard := g.pointer.cellAt(x, y)
	if onBoard && g.ctl.Status().Editable() {
		ebiten.SetCursorShape(ebiten.CursorShapePointer)
		return
	}
	ebiten.SetCursorShape(ebiten.CursorShapeDefault)
}

// Draw renders the board and the control bar.
func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(render.BackgroundColor)
	g.painter.Blit(screen, g.ctl.Grid(), margin, margin)
	g.hud.Draw(screen, g.ctl.Status())
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return windowSize(g.painter.Layout())
}

func windowSize(l render.Layout) (int, int) {
	w, h := l.Size()
	return w + 2*margin, h + 2*margin + ui.BarHeight
}

// Window is the ebiten front end.
type Window struct {
	scale  int
	tps    int
	logger *log.Logger
}

// Name identifies the front end.
func (w *Window) Name() string { return "ebiten" }

// Run opens the window and blocks until it is closed.
func (w *Window) Run(ctx context.Context, ctl *control.Controller, clock *core.DeferQueue) error {
	game := New(ctx, ctl, clock, w.scale)
	width, height := windowSize(game.painter.Layout())

	ebiten.SetWindowTitle("agelife — Conway's Game of Life")
	ebiten.SetTPS(w.tps)
	ebiten.SetWindowSize(width, height)

	w.logger.Info("window opened", "width", width, "height", height)
	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		return err
	}
	return nil
}

func init() {
	frontend.Register("ebiten", func(opts frontend.Options) (frontend.Frontend, error) {
		logger := opts.Logger
		if logger == nil {
			logger = log.Default()
		}
		return &Window{scale: opts.Scale, tps: opts.TPS, logger: logger}, nil
	})
}
