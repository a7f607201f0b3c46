package render

import (
	"image/color"

	"agelife/internal/life"
)

// MaxAgeShade is the age at which the live-cell ramp stops brightening.
const MaxAgeShade = 20

var (
	// DeadColor fills dead cells.
	DeadColor = color.RGBA{R: 0x1f, G: 0x29, B: 0x37, A: 0xff}
	// GapColor fills the lines between cells.
	GapColor = color.RGBA{R: 0x37, G: 0x41, B: 0x51, A: 0xff}
	// BackgroundColor fills the window around the board.
	BackgroundColor = color.RGBA{R: 0x1a, G: 0x1a, B: 0x2e, A: 0xff}
)

// AgeColor maps a cell age to its display color. Live cells run from a dark
// green at age 1 to a pale cyan at MaxAgeShade and stay there.
func AgeColor(a life.Age) color.RGBA {
	if !a.Alive() {
		return DeadColor
	}
	t := float64(a) / MaxAgeShade
	if t > 1 {
		t = 1
	}
	return color.RGBA{
		R: uint8(5 + t*105),
		G: uint8(150 + t*105),
		B: uint8(105 + t*78),
		A: 0xff,
	}
}
