package core

// Mode names the interaction state a front end should reflect.
type Mode string

const (
	ModeIdle    Mode = "idle"
	ModeDrawing Mode = "drawing"
	ModeRunning Mode = "running"
)

// Status is a snapshot of what a front end shows besides the cells.
type Status struct {
	Mode       Mode
	Running    bool
	Generation int
	Population int
}

// ToggleLabel is the caption of the start/stop control.
func (s Status) ToggleLabel() string {
	if s.Running {
		return "Stop"
	}
	return "Start"
}

// Editable reports whether gestures currently change the board. Front ends use
// it to pick the pointer affordance and to grey out randomize.
func (s Status) Editable() bool { return !s.Running }
