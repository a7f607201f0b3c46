//go:build !ebiten

package app

import "agelife/internal/frontend"

func init() {
	frontend.Register("ebiten", func(frontend.Options) (frontend.Frontend, error) {
		return nil, ErrNeedsEbiten
	})
}
