//go:build ebiten

package ui

import (
	"fmt"
	"image"
	"image/color"

	"agelife/internal/core"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

var (
	startColor    = color.RGBA{R: 25, G: 135, B: 84, A: 255}
	stopColor     = color.RGBA{R: 220, G: 53, B: 69, A: 255}
	primaryColor  = color.RGBA{R: 13, G: 110, B: 253, A: 255}
	disabledColor = color.RGBA{R: 70, G: 80, B: 95, A: 255}
	textColor     = color.RGBA{R: 230, G: 230, B: 235, A: 255}
	dimTextColor  = color.RGBA{R: 209, G: 213, B: 219, A: 255}
)

// HUD renders the control bar and reports button clicks.
type HUD struct {
	buttons []Button
	pixel   *ebiten.Image
	top     int
	width   int
}

// NewHUD lays the bar out at vertical offset top across width pixels.
func NewHUD(top, width int) *HUD {
	h := &HUD{buttons: LayoutButtons(buttonGap, top+buttonGap), top: top, width: width}
	h.pixel = ebiten.NewImage(1, 1)
	h.pixel.Fill(color.White)
	return h
}

// Update returns the command clicked this frame.
func (h *HUD) Update(st core.Status) Command {
	if h == nil || !inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		return CommandNone
	}
	x, y := ebiten.CursorPosition()
	return HitTest(h.buttons, st, x, y)
}

// Contains reports whether (x, y) falls on the bar.
func (h *HUD) Contains(x, y int) bool {
	return image.Pt(x, y).In(image.Rect(0, h.top, h.width, h.top+BarHeight))
}

// Draw paints the buttons and the generation readout.
func (h *HUD) Draw(screen *ebiten.Image, st core.Status) {
	if h == nil {
		return
	}
	face := basicfont.Face7x13
	for _, b := range h.buttons {
		h.fillRect(screen, b.Rect, buttonColor(b.Command, st))
		label := Label(b.Command, st)
		bounds := text.BoundString(face, label)
		x := b.Rect.Min.X + (b.Rect.Dx()-bounds.Dx())/2
		y := b.Rect.Min.Y + (b.Rect.Dy()+bounds.Dy())/2
		text.Draw(screen, label, face, x, y, textColor)
	}
	last := h.buttons[len(h.buttons)-1].Rect
	info := fmt.Sprintf("gen %d  pop %d", st.Generation, st.Population)
	text.Draw(screen, info, face, last.Max.X+2*buttonGap, last.Min.Y+15, dimTextColor)
}

func (h *HUD) fillRect(dst *ebiten.Image, r image.Rectangle, c color.Color) {
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(r.Dx()), float64(r.Dy()))
	op.GeoM.Translate(float64(r.Min.X), float64(r.Min.Y))
	op.ColorScale.ScaleWithColor(c)
	dst.DrawImage(h.pixel, op)
}

func buttonColor(cmd Command, st core.Status) color.Color {
	if !Enabled(cmd, st) {
		return disabledColor
	}
	switch cmd {
	case CommandToggle:
		if st.Running {
			return stopColor
		}
		return startColor
	case CommandClear:
		return stopColor
	}
	return primaryColor
}
