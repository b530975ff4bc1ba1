package schedule

import (
	"errors"
	"strings"
	"time"
)

var (
	ErrMissingWindow   = errors.New("hard constraints must contain window_start and window_end")
	ErrMalformedWindow = errors.New("window_start and window_end must be ISO-8601 timestamps")
)

// Monday-first day codes; see DayCode for the time.Weekday mapping.
var DayCodes = [7]string{"MON", "TUE", "WED", "THU", "FRI", "SAT", "SUN"}

const (
	TimeOfDayMorning   = "MORNING"
	TimeOfDayAfternoon = "AFTERNOON"
	TimeOfDayEvening   = "EVENING"
	TimeOfDayOffHours  = "OFF_HOURS"
)

// HardConstraints is the non-negotiable scheduling window for a meeting request.
type HardConstraints struct {
	WindowStart time.Time
	WindowEnd   time.Time
	Timezone    string
}

// SoftConstraints are preferred-but-not-required scheduling attributes, used
// only to break ties between equally attended slots.
type SoftConstraints struct {
	PreferredDaysOfWeek []string
	PreferredTimeOfDay  []string
}

// ParseHardConstraints reads the persisted hard_constraints mapping. Missing
// or unparsable window fields are a hard validation failure, never a default.
func ParseHardConstraints(raw map[string]any) (HardConstraints, error) {
	if raw == nil {
		return HardConstraints{}, ErrMissingWindow
	}

	start, err := timestampField(raw, "window_start")
	if err != nil {
		return HardConstraints{}, err
	}
	end, err := timestampField(raw, "window_end")
	if err != nil {
		return HardConstraints{}, err
	}

	tz := "UTC"
	if v, ok := raw["timezone"].(string); ok && v != "" {
		tz = v
	}

	return HardConstraints{WindowStart: start, WindowEnd: end, Timezone: tz}, nil
}

// ParseSoftConstraints normalizes the persisted soft_constraints mapping.
// Each preference field may be a single code or a list of codes; both shapes
// collapse to an uppercase slice. A nil mapping yields empty preferences.
func ParseSoftConstraints(raw map[string]any) SoftConstraints {
	if raw == nil {
		return SoftConstraints{}
	}
	return SoftConstraints{
		PreferredDaysOfWeek: normalizeCodes(raw["preferred_days_of_week"]),
		PreferredTimeOfDay:  normalizeCodes(raw["preferred_time_of_day"]),
	}
}

// DayCode returns the MON..SUN code for t's weekday.
func DayCode(t time.Time) string {
	// time.Weekday is Sunday-first
	return DayCodes[(int(t.Weekday())+6)%7]
}

// TimeOfDayBucket classifies t by its start hour:
// MORNING [6,12), AFTERNOON [12,17), EVENING [17,22), OFF_HOURS otherwise.
func TimeOfDayBucket(t time.Time) string {
	switch h := t.Hour(); {
	case h >= 6 && h < 12:
		return TimeOfDayMorning
	case h >= 12 && h < 17:
		return TimeOfDayAfternoon
	case h >= 17 && h < 22:
		return TimeOfDayEvening
	default:
		return TimeOfDayOffHours
	}
}

func timestampField(raw map[string]any, key string) (time.Time, error) {
	v, ok := raw[key]
	if !ok || v == nil {
		return time.Time{}, ErrMissingWindow
	}
	s, ok := v.(string)
	if !ok {
		return time.Time{}, ErrMalformedWindow
	}
	return parseISOTimestamp(s)
}

func parseISOTimestamp(s string) (time.Time, error) {
	for _, layout := range []string{time.RFC3339, "2006-01-02T15:04:05"} {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, ErrMalformedWindow
}

func normalizeCodes(v any) []string {
	switch val := v.(type) {
	case nil:
		return nil
	case string:
		return normalizeCodeList([]string{val})
	case []string:
		return normalizeCodeList(val)
	case []any:
		codes := make([]string, 0, len(val))
		for _, item := range val {
			if s, ok := item.(string); ok {
				codes = append(codes, s)
			}
		}
		return normalizeCodeList(codes)
	default:
		return nil
	}
}

func normalizeCodeList(codes []string) []string {
	out := make([]string, 0, len(codes))
	for _, c := range codes {
		c = strings.ToUpper(strings.TrimSpace(c))
		if c != "" {
			out = append(out, c)
		}
	}
	if len(out) == 0 {
		return nil
	}
	return out
}
