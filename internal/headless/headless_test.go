package headless

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"agelife/internal/control"
	"agelife/internal/core"
	"agelife/internal/frontend"
	"agelife/internal/life"
)

func newRun(t *testing.T, generations int) (*Runner, *bytes.Buffer, *control.Controller, *core.DeferQueue) {
	t.Helper()
	var out bytes.Buffer
	r, err := New(frontend.Options{Generations: generations, Out: &out})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	clock := core.NewDeferQueue(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC))
	return r, &out, control.New(clock, core.NewRNG(42), nil), clock
}

func TestRunPlaysGenerations(t *testing.T) {
	r, out, ctl, clock := newRun(t, 12)

	if err := r.Run(context.Background(), ctl, clock); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if ctl.Generation() != 12 {
		t.Fatalf("generation = %d, expected 12", ctl.Generation())
	}
	if ctl.Running() {
		t.Fatal("simulation still running after Run")
	}

	lines := strings.Split(strings.TrimSuffix(out.String(), "\n"), "\n")
	if len(lines) != life.NumRows+1 {
		t.Fatalf("output has %d lines, expected %d", len(lines), life.NumRows+1)
	}
	if !strings.HasPrefix(lines[0], "generation 12 population ") {
		t.Fatalf("header = %q", lines[0])
	}
	if lines[1] != strings.Split(ctl.Grid().String(), "\n")[0] {
		t.Fatalf("first board row = %q", lines[1])
	}

	// The stale tick left behind by stop must not advance the board.
	before := ctl.Grid()
	clock.AdvanceBy(time.Second)
	if !ctl.Grid().Equal(before) {
		t.Fatal("board changed after Run returned")
	}
}

func TestRunZeroGenerationsPrintsSeed(t *testing.T) {
	r, out, ctl, clock := newRun(t, 0)

	if err := r.Run(context.Background(), ctl, clock); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if ctl.Generation() != 0 || ctl.Grid().MaxAge() != life.Newborn {
		t.Fatalf("unexpected board after zero generations: gen %d oldest %d", ctl.Generation(), ctl.Grid().MaxAge())
	}
	if !strings.HasPrefix(out.String(), "generation 0 ") {
		t.Fatalf("output = %q", out.String())
	}
}

func TestRunHonoursCancel(t *testing.T) {
	r, _, ctl, clock := newRun(t, 1000)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if err := r.Run(ctx, ctl, clock); !errors.Is(err, context.Canceled) {
		t.Fatalf("Run error = %v, expected context.Canceled", err)
	}
	if ctl.Running() {
		t.Fatal("simulation still running after cancel")
	}
}

func TestNewRejectsNegativeGenerations(t *testing.T) {
	if _, err := New(frontend.Options{Generations: -1}); err == nil {
		t.Fatal("expected error for negative generations")
	}
}
