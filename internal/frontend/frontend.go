// Package frontend keeps the registry of user interfaces that can drive a
// control.Controller.
package frontend

import (
	"context"
	"errors"
	"fmt"
	"io"
	"sort"

	"agelife/internal/control"
	"agelife/internal/core"

	"github.com/charmbracelet/log"
)

// ErrUnknownFrontend is returned by Lookup for unregistered names.
var ErrUnknownFrontend = errors.New("unknown frontend")

// Options carries the presentation settings a front end may use.
type Options struct {
	// Scale is the edge of one cell in pixels.
	Scale int
	// TPS is the frame rate of graphical front ends.
	TPS int
	// Generations bounds headless runs.
	Generations int

	Logger *log.Logger
	Out    io.Writer
}

// Frontend owns the event loop: it feeds gestures and commands to the
// controller and advances the clock that fires its ticks. Run returns when the
// user quits or ctx is cancelled.
type Frontend interface {
	Name() string
	Run(ctx context.Context, ctl *control.Controller, clock *core.DeferQueue) error
}

// Factory constructs a Frontend.
type Factory func(opts Options) (Frontend, error)

var frontends = map[string]Factory{}

// Register adds a front end factory under the provided name.
func Register(name string, f Factory) {
	if name == "" || f == nil {
		return
	}
	frontends[name] = f
}

// Lookup returns the factory registered under name.
func Lookup(name string) (Factory, error) {
	f, ok := frontends[name]
	if !ok {
		return nil, fmt.Errorf("%w %q (have %v)", ErrUnknownFrontend, name, Names())
	}
	return f, nil
}

// Names lists the registered front ends in sorted order.
func Names() []string {
	names := make([]string, 0, len(frontends))
	for name := range frontends {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
