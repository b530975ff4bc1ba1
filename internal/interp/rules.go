package interp

import (
	"context"
	"sort"
	"strings"
	"time"

	"meetline/internal/domain/schedule"
	"meetline/internal/pkg/clock"
)

var baseDays = [7]string{"mon", "tue", "wed", "thu", "fri", "sat", "sun"}

var fullDayNames = map[string]int{
	"monday":    0,
	"tuesday":   1,
	"wednesday": 2,
	"thursday":  3,
	"friday":    4,
	"saturday":  5,
	"sunday":    6,
}

// RuleInterpreter is the deterministic parser. It implements both
// interpreter interfaces and backs the LLM variants as their fallback.
type RuleInterpreter struct {
	clock clock.Clock
}

func NewRuleInterpreter(clk clock.Clock) *RuleInterpreter {
	return &RuleInterpreter{clock: clk}
}

// ParseConstraints derives a scheduling window of 7 days from now, or 14
// when the instruction says "next two weeks", plus whatever day and
// time-of-day preferences the text mentions.
func (r *RuleInterpreter) ParseConstraints(_ context.Context, instruction, timezone string) (*ParsedConstraints, error) {
	loc, err := time.LoadLocation(timezone)
	if err != nil {
		loc = time.UTC
		timezone = "UTC"
	}
	now := r.clock.Now().In(loc)

	windowEnd := now.AddDate(0, 0, 7)
	lower := strings.ToLower(instruction)
	if strings.Contains(lower, "next two weeks") {
		windowEnd = now.AddDate(0, 0, 14)
	}

	return &ParsedConstraints{
		Hard: schedule.HardConstraints{
			WindowStart: now,
			WindowEnd:   windowEnd,
			Timezone:    timezone,
		},
		Soft: schedule.SoftConstraints{
			PreferredDaysOfWeek: extractPreferredDays(lower),
			PreferredTimeOfDay:  extractPreferredTimeOfDay(lower),
		},
	}, nil
}

// ExtractWindows returns the first duration-sized block of the scheduling
// window, clamped to its end. Richer extraction is the LLM variant's job.
func (r *RuleInterpreter) ExtractWindows(_ context.Context, _ string, windowStart, windowEnd time.Time, duration time.Duration) ([]schedule.Slot, error) {
	end := windowStart.Add(duration)
	if end.After(windowEnd) {
		end = windowEnd
	}
	return []schedule.Slot{{Start: windowStart, End: end}}, nil
}

// extractPreferredDays handles explicit days ("Tuesday", "thu"), and
// inclusive ranges ("mon-wed", "tue to thu").
func extractPreferredDays(lower string) []string {
	normalized := strings.NewReplacer("–", "-", "—", "-", " to ", "-").Replace(lower)

	found := map[string]struct{}{}

	for i := range baseDays {
		for j := i; j < len(baseDays); j++ {
			if strings.Contains(normalized, baseDays[i]+"-"+baseDays[j]) {
				for k := i; k <= j; k++ {
					found[schedule.DayCodes[k]] = struct{}{}
				}
			}
		}
	}

	for name, idx := range fullDayNames {
		if strings.Contains(normalized, name) {
			found[schedule.DayCodes[idx]] = struct{}{}
		}
	}

	for i, base := range baseDays {
		if strings.Contains(normalized, base) {
			found[schedule.DayCodes[i]] = struct{}{}
		}
	}

	if len(found) == 0 {
		return nil
	}
	codes := make([]string, 0, len(found))
	for code := range found {
		codes = append(codes, code)
	}
	sort.Strings(codes)
	return codes
}

func extractPreferredTimeOfDay(lower string) []string {
	var tod []string
	if strings.Contains(lower, "morning") {
		tod = append(tod, schedule.TimeOfDayMorning)
	}
	if strings.Contains(lower, "afternoon") {
		tod = append(tod, schedule.TimeOfDayAfternoon)
	}
	if strings.Contains(lower, "evening") || strings.Contains(lower, "night") {
		tod = append(tod, schedule.TimeOfDayEvening)
	}
	return tod
}
