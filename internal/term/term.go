// Package term is a terminal front end built on tcell. Each cell is two
// columns wide so the board keeps a roughly square aspect.
package term

import (
	"context"
	"fmt"
	"io"
	"time"

	"agelife/internal/control"
	"agelife/internal/core"
	"agelife/internal/frontend"
	"agelife/internal/life"
	"agelife/internal/render"

	"github.com/charmbracelet/log"
	"github.com/gdamore/tcell/v2"
	"golang.org/x/sync/errgroup"
)

const (
	cellWidth = 2
	// frame is how often the clock is advanced and the screen redrawn.
	frame = 16 * time.Millisecond
)

// Terminal renders the board with tcell and maps mouse and keys to controller
// calls.
type Terminal struct {
	screen tcell.Screen
	logger *log.Logger

	ctl       *control.Controller
	clock     *core.DeferQueue
	mouseDown bool
}

// New returns a terminal front end using the process's tty.
func New(opts frontend.Options) (*Terminal, error) {
	return newTerminal(opts, nil), nil
}

func newTerminal(opts frontend.Options, screen tcell.Screen) *Terminal {
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Terminal{screen: screen, logger: logger}
}

// Name identifies the front end.
func (t *Terminal) Name() string { return "term" }

// Run owns the screen until the user quits or ctx is cancelled. One goroutine
// pumps tcell events; the loop goroutine is the only one touching ctl.
func (t *Terminal) Run(ctx context.Context, ctl *control.Controller, clock *core.DeferQueue) error {
	if t.screen == nil {
		s, err := tcell.NewScreen()
		if err != nil {
			return fmt.Errorf("open terminal: %w", err)
		}
		t.screen = s
	}
	if err := t.screen.Init(); err != nil {
		return fmt.Errorf("init terminal: %w", err)
	}
	defer t.screen.Fini()
	t.screen.EnableMouse(tcell.MouseDragEvents)
	t.screen.HideCursor()
	t.attach(ctl, clock)

	events := make(chan tcell.Event)
	quit := make(chan struct{})
	group, groupCtx := errgroup.WithContext(ctx)

	group.Go(func() error {
		t.screen.ChannelEvents(events, quit)
		return nil
	})
	group.Go(func() error {
		defer close(quit)
		return t.loop(groupCtx, events)
	})

	err := group.Wait()
	t.logger.Info("terminal closed", "generation", ctl.Generation())
	return err
}

func (t *Terminal) attach(ctl *control.Controller, clock *core.DeferQueue) {
	t.ctl = ctl
	t.clock = clock
	t.mouseDown = false
}

func (t *Terminal) loop(ctx context.Context, events <-chan tcell.Event) error {
	ticker := time.NewTicker(frame)
	defer ticker.Stop()

	t.draw()
	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-events:
			if !ok {
				return nil
			}
			if t.handleEvent(ev) {
				return nil
			}
		case now := <-ticker.C:
			t.clock.Advance(now)
		}
		t.draw()
	}
}

// handleEvent applies one tcell event and reports whether the user asked to
// quit.
func (t *Terminal) handleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		t.screen.Sync()
	case *tcell.EventKey:
		return t.handleKey(ev)
	case *tcell.EventMouse:
		t.handleMouse(ev)
	}
	return false
}

func (t *Terminal) handleKey(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return true
	case tcell.KeyEnter:
		t.ctl.Toggle()
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'q', 'Q':
			return true
		case ' ':
			t.ctl.Toggle()
		case 'r', 'R':
			t.ctl.OnRandomize()
		case 'c', 'C':
			t.ctl.OnClear()
		}
	}
	return false
}

func (t *Terminal) handleMouse(ev *tcell.EventMouse) {
	x, y := ev.Position()
	row, col, onBoard := cellAt(x, y)
	pressed := ev.Buttons()&tcell.Button1 != 0

	switch {
	case pressed && !t.mouseDown:
		t.mouseDown = true
		if onBoard {
			t.ctl.OnGestureStart(row, col)
		}
	case pressed:
		if onBoard {
			t.ctl.OnGestureMove(row, col)
		}
	case t.mouseDown:
		t.mouseDown = false
		t.ctl.OnGestureEnd()
	}
}

func cellAt(x, y int) (row, col int, ok bool) {
	if x < 0 || y < 0 {
		return 0, 0, false
	}
	row, col = y, x/cellWidth
	if row >= life.NumRows || col >= life.NumCols {
		return 0, 0, false
	}
	return row, col, true
}

func (t *Terminal) draw() {
	g := t.ctl.Grid()
	for i := 0; i < g.Rows(); i++ {
		for j := 0; j < g.Cols(); j++ {
			style := tcell.StyleDefault.Background(tcellColor(render.AgeColor(g.At(i, j))))
			for k := 0; k < cellWidth; k++ {
				t.screen.SetContent(j*cellWidth+k, i, ' ', nil, style)
			}
		}
	}
	t.drawStatus(g.Rows() + 1)
	t.screen.Show()
}

func (t *Terminal) drawStatus(y int) {
	st := t.ctl.Status()
	line := fmt.Sprintf("[space] %-5s [r] randomize [c] clear [q] quit  gen %d  pop %d",
		st.ToggleLabel(), st.Generation, st.Population)
	if !st.Editable() {
		line += "  (running, editing locked)"
	}
	w, _ := t.screen.Size()
	style := tcell.StyleDefault.
		Foreground(tcellColor(render.AgeColor(render.MaxAgeShade))).
		Background(tcellColor(render.BackgroundColor))
	x := 0
	for _, r := range line {
		t.screen.SetContent(x, y, r, nil, style)
		x++
	}
	for ; x < w; x++ {
		t.screen.SetContent(x, y, ' ', nil, style)
	}
}

func init() {
	frontend.Register("term", func(opts frontend.Options) (frontend.Frontend, error) {
		fe, err := New(opts)
		if err != nil {
			return nil, err
		}
		return fe, nil
	})
}
