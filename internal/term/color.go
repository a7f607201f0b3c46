package term

import (
	"image/color"

	"github.com/gdamore/tcell/v2"
)

func tcellColor(c color.RGBA) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}
