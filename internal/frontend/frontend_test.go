package frontend

import (
	"context"
	"errors"
	"testing"

	"agelife/internal/control"
	"agelife/internal/core"
)

type nopFrontend struct{}

func (nopFrontend) Name() string { return "nop" }

func (nopFrontend) Run(context.Context, *control.Controller, *core.DeferQueue) error { return nil }

func TestRegistry(t *testing.T) {
	Register("nop", func(Options) (Frontend, error) { return nopFrontend{}, nil })
	Register("", func(Options) (Frontend, error) { return nopFrontend{}, nil })
	Register("nil", nil)

	f, err := Lookup("nop")
	if err != nil {
		t.Fatalf("Lookup(nop): %v", err)
	}
	fe, err := f(Options{})
	if err != nil || fe.Name() != "nop" {
		t.Fatalf("factory returned %v, %v", fe, err)
	}

	if _, err := Lookup("nil"); !errors.Is(err, ErrUnknownFrontend) {
		t.Fatalf("Lookup(nil) error = %v", err)
	}
	for _, name := range Names() {
		if name == "" || name == "nil" {
			t.Fatalf("registry accepted %q", name)
		}
	}
}
