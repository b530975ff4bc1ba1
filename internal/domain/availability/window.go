package availability

import (
	"errors"
	"time"
)

var ErrInvalidWindow = errors.New("end_time must be after start_time")

// State is the lifecycle of one proposed availability window.
type State string

const (
	StateCandidate State = "CANDIDATE"
	StateSelected  State = "SELECTED"
	StateDiscarded State = "DISCARDED"
)

func (s State) String() string {
	return string(s)
}

func (s State) IsValid() bool {
	switch s {
	case StateCandidate, StateSelected, StateDiscarded:
		return true
	default:
		return false
	}
}

// Window is a half-open [start, end) time range a participant claims to be
// free in.
type Window struct {
	start time.Time
	end   time.Time
}

func NewWindow(start, end time.Time) (Window, error) {
	if !end.After(start) {
		return Window{}, ErrInvalidWindow
	}
	return Window{start: start, end: end}, nil
}

func (w Window) Start() time.Time {
	return w.start
}

func (w Window) End() time.Time {
	return w.end
}

// Contains reports whether [slotStart, slotEnd) lies fully inside the window.
func (w Window) Contains(slotStart, slotEnd time.Time) bool {
	return !slotStart.Before(w.start) && !slotEnd.After(w.end)
}
