package app

import "errors"

// ErrNeedsEbiten is returned by the ebiten front end in builds without the
// ebiten tag.
var ErrNeedsEbiten = errors.New("the ebiten frontend requires building with -tags ebiten")
