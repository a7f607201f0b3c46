// Package headless drives the controller without any display: it seeds a
// random soup, plays a fixed number of generations on a simulated clock and
// prints the final board.
package headless

import (
	"context"
	"fmt"
	"io"
	"os"

	"agelife/internal/control"
	"agelife/internal/core"
	"agelife/internal/frontend"

	"github.com/charmbracelet/log"
)

// Runner is the headless front end.
type Runner struct {
	generations int
	out         io.Writer
	logger      *log.Logger
}

// New returns a Runner for opts.Generations generations writing to opts.Out
// (stdout when nil).
func New(opts frontend.Options) (*Runner, error) {
	if opts.Generations < 0 {
		return nil, fmt.Errorf("headless: negative generation count %d", opts.Generations)
	}
	out := opts.Out
	if out == nil {
		out = os.Stdout
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Runner{generations: opts.Generations, out: out, logger: logger}, nil
}

// Name identifies the front end.
func (r *Runner) Name() string { return "headless" }

// Run randomizes the board, plays the configured generations and writes the
// result. Cancelling ctx stops between generations.
func (r *Runner) Run(ctx context.Context, ctl *control.Controller, clock *core.DeferQueue) error {
	ctl.OnRandomize()
	r.logger.Info("seeded board", "population", ctl.Grid().Population())
	if r.generations > 0 {
		ctl.OnStart()
		clock.AdvanceBy(0)
		for ctl.Generation() < r.generations {
			if err := ctx.Err(); err != nil {
				ctl.OnStop()
				return err
			}
			clock.AdvanceBy(control.TickInterval)
		}
		ctl.OnStop()
	}

	st := ctl.Status()
	r.logger.Info("run finished", "generation", st.Generation, "population", st.Population,
		"oldest", ctl.Grid().MaxAge())
	if _, err := fmt.Fprintf(r.out, "generation %d population %d\n%s", st.Generation, st.Population, ctl.Grid()); err != nil {
		return fmt.Errorf("headless: write board: %w", err)
	}
	return nil
}

func init() {
	frontend.Register("headless", func(opts frontend.Options) (frontend.Frontend, error) {
		fe, err := New(opts)
		if err != nil {
			return nil, err
		}
		return fe, nil
	})
}
