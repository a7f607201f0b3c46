//go:build ebiten

package render

import (
	"agelife/internal/life"

	"github.com/hajimehoshi/ebiten/v2"
)

// GridPainter keeps one image of the board and refreshes it from a grid.
type GridPainter struct {
	layout Layout
	img    *ebiten.Image
	buf    []byte
}

// NewGridPainter allocates a painter for the given layout.
func NewGridPainter(l Layout) *GridPainter {
	w, h := l.Size()
	return &GridPainter{layout: l, img: ebiten.NewImage(w, h), buf: make([]byte, 4*w*h)}
}

// Blit uploads g into the painter image and draws it at (x, y).
func (gp *GridPainter) Blit(dst *ebiten.Image, g life.Grid, x, y int) {
	if !FillBoardRGBA(gp.buf, g, gp.layout) {
		return
	}
	gp.img.WritePixels(gp.buf)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(x), float64(y))
	dst.DrawImage(gp.img, op)
}

// Layout returns the painter's board geometry.
func (gp *GridPainter) Layout() Layout { return gp.layout }
