// Package ui draws the control bar under the board: the start/stop,
// randomize and clear buttons plus a generation readout.
package ui

import (
	"image"

	"agelife/internal/core"
)

// Command is an action triggered from the control bar.
type Command int

const (
	CommandNone Command = iota
	CommandToggle
	CommandRandomize
	CommandClear
)

const (
	buttonWidth  = 84
	buttonHeight = 22
	buttonGap    = 8

	// BarHeight is the vertical space the control bar needs.
	BarHeight = buttonHeight + 2*buttonGap
)

// Button is one clickable control in bar coordinates.
type Button struct {
	Command Command
	Rect    image.Rectangle
}

// LayoutButtons places the buttons left to right starting at (x, y).
func LayoutButtons(x, y int) []Button {
	cmds := []Command{CommandToggle, CommandRandomize, CommandClear}
	buttons := make([]Button, len(cmds))
	for i, cmd := range cmds {
		left := x + i*(buttonWidth+buttonGap)
		buttons[i] = Button{Command: cmd, Rect: image.Rect(left, y, left+buttonWidth, y+buttonHeight)}
	}
	return buttons
}

// HitTest returns the enabled button under (x, y).
func HitTest(buttons []Button, st core.Status, x, y int) Command {
	pt := image.Pt(x, y)
	for _, b := range buttons {
		if pt.In(b.Rect) && Enabled(b.Command, st) {
			return b.Command
		}
	}
	return CommandNone
}

// Label is the caption drawn on a button.
func Label(cmd Command, st core.Status) string {
	switch cmd {
	case CommandToggle:
		return st.ToggleLabel()
	case CommandRandomize:
		return "Randomize"
	case CommandClear:
		return "Clear"
	}
	return ""
}

// Enabled reports whether a button reacts to clicks. Randomize is disabled
// while the simulation runs.
func Enabled(cmd Command, st core.Status) bool {
	switch cmd {
	case CommandNone:
		return false
	case CommandRandomize:
		return st.Editable()
	}
	return true
}
