package term

import (
	"context"
	"strings"
	"testing"
	"time"

	"agelife/internal/control"
	"agelife/internal/core"
	"agelife/internal/frontend"
	"agelife/internal/life"
	"agelife/internal/render"

	"github.com/gdamore/tcell/v2"
)

type constSource float64

func (s constSource) Float64() float64 { return float64(s) }

func newAttached(t *testing.T) (*Terminal, tcell.SimulationScreen, *control.Controller, *core.DeferQueue) {
	t.Helper()
	s := tcell.NewSimulationScreen("UTF-8")
	if err := s.Init(); err != nil {
		t.Fatalf("init simulation screen: %v", err)
	}
	t.Cleanup(s.Fini)
	s.SetSize(80, 24)

	clock := core.NewDeferQueue(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC))
	ctl := control.New(clock, constSource(0.9), nil)
	term := newTerminal(frontend.Options{}, s)
	term.attach(ctl, clock)
	return term, s, ctl, clock
}

func mouse(x, y int, btn tcell.ButtonMask) *tcell.EventMouse {
	return tcell.NewEventMouse(x, y, btn, tcell.ModNone)
}

func key(r rune) *tcell.EventKey {
	return tcell.NewEventKey(tcell.KeyRune, r, tcell.ModNone)
}

func TestMouseDragDraws(t *testing.T) {
	term, _, ctl, _ := newAttached(t)

	term.handleEvent(mouse(0, 2, tcell.Button1))
	term.handleEvent(mouse(3, 2, tcell.Button1))
	term.handleEvent(mouse(4, 2, tcell.Button1))
	term.handleEvent(mouse(4, 2, tcell.ButtonNone))

	g := ctl.Grid()
	for _, c := range [][2]int{{2, 0}, {2, 1}, {2, 2}} {
		if g.At(c[0], c[1]) != life.Newborn {
			t.Fatalf("cell %v not drawn", c)
		}
	}
	if g.Population() != 3 {
		t.Fatalf("population = %d, expected 3", g.Population())
	}
	if ctl.State() != core.ModeIdle {
		t.Fatalf("state after release = %s", ctl.State())
	}

	// Motion without a button held paints nothing.
	term.handleEvent(mouse(10, 5, tcell.ButtonNone))
	if ctl.Grid().Population() != 3 {
		t.Fatal("hover changed the board")
	}
}

func TestReleaseOffBoardEndsGesture(t *testing.T) {
	term, _, ctl, _ := newAttached(t)

	term.handleEvent(mouse(0, 0, tcell.Button1))
	term.handleEvent(mouse(79, 23, tcell.Button1))
	term.handleEvent(mouse(79, 23, tcell.ButtonNone))

	if ctl.State() != core.ModeIdle {
		t.Fatalf("state = %s, expected idle", ctl.State())
	}
	if ctl.Grid().Population() != 1 {
		t.Fatalf("population = %d, expected 1", ctl.Grid().Population())
	}
}

func TestKeys(t *testing.T) {
	term, _, ctl, clock := newAttached(t)

	term.handleEvent(key('r'))
	if got := ctl.Grid().Population(); got != life.NumRows*life.NumCols {
		t.Fatalf("randomize population = %d", got)
	}

	term.handleEvent(key(' '))
	if !ctl.Running() {
		t.Fatal("space did not start the simulation")
	}
	clock.AdvanceBy(control.TickInterval)
	if ctl.Generation() == 0 {
		t.Fatal("no generation after advancing the clock")
	}

	term.handleEvent(key('c'))
	if ctl.Running() || ctl.Grid().Population() != 0 {
		t.Fatal("clear did not reset the board")
	}

	if !term.handleEvent(key('q')) {
		t.Fatal("q did not request quit")
	}
	if !term.handleEvent(tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone)) {
		t.Fatal("escape did not request quit")
	}
}

func TestDrawPaintsAgesAndStatus(t *testing.T) {
	term, s, ctl, _ := newAttached(t)
	term.handleEvent(mouse(2, 1, tcell.Button1))
	term.handleEvent(mouse(2, 1, tcell.ButtonNone))

	term.draw()

	_, _, style, _ := s.GetContent(2, 1)
	_, bg, _ := style.Decompose()
	if want := tcellColor(render.AgeColor(life.Newborn)); bg != want {
		t.Fatalf("live cell background = %v, expected %v", bg, want)
	}
	_, _, style, _ = s.GetContent(0, 0)
	_, bg, _ = style.Decompose()
	if want := tcellColor(render.DeadColor); bg != want {
		t.Fatalf("dead cell background = %v, expected %v", bg, want)
	}

	var status strings.Builder
	for x := 0; x < 40; x++ {
		r, _, _, _ := s.GetContent(x, life.NumRows+1)
		status.WriteRune(r)
	}
	if !strings.Contains(status.String(), "Start") {
		t.Fatalf("status line %q lacks the start label", status.String())
	}

	ctl.OnStart()
	term.draw()
	status.Reset()
	for x := 0; x < 40; x++ {
		r, _, _, _ := s.GetContent(x, life.NumRows+1)
		status.WriteRune(r)
	}
	if !strings.Contains(status.String(), "Stop") {
		t.Fatalf("status line %q lacks the stop label", status.String())
	}
}

func TestRunStopsOnCancel(t *testing.T) {
	s := tcell.NewSimulationScreen("UTF-8")
	clock := core.NewDeferQueue(time.Now())
	ctl := control.New(clock, constSource(0), nil)
	term := newTerminal(frontend.Options{}, s)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- term.Run(ctx, ctl, clock) }()
	cancel()

	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("Run returned %v", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("Run did not return after cancel")
	}
}
