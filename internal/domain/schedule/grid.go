package schedule

import (
	"errors"
	"time"
)

var (
	ErrInvalidDuration = errors.New("duration must be positive")
	ErrInvalidWindow   = errors.New("window_end must be after window_start")
)

// Slot is one fixed-length candidate meeting time inside a request window.
type Slot struct {
	Start time.Time
	End   time.Time
}

// BuildGrid partitions [windowStart, windowEnd) into ordered back-to-back
// slots of exactly duration each. A trailing remainder shorter than duration
// is dropped. The result is deterministic for a given input.
func BuildGrid(windowStart, windowEnd time.Time, duration time.Duration) ([]Slot, error) {
	if duration <= 0 {
		return nil, ErrInvalidDuration
	}
	if !windowEnd.After(windowStart) {
		return nil, ErrInvalidWindow
	}

	var slots []Slot
	for start := windowStart; !start.Add(duration).After(windowEnd); start = start.Add(duration) {
		slots = append(slots, Slot{Start: start, End: start.Add(duration)})
	}
	return slots, nil
}
