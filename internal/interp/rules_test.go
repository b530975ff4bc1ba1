//go:build unit

package interp_test

import (
	"context"
	"testing"
	"time"

	"meetline/internal/interp"
	"meetline/internal/pkg/clock"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testNow = time.Date(2025, 6, 2, 9, 0, 0, 0, time.UTC) // Monday

func newRules() *interp.RuleInterpreter {
	return interp.NewRuleInterpreter(clock.NewMockClock(testNow))
}

func TestRuleInterpreter_ParseConstraints(t *testing.T) {
	ctx := context.Background()

	t.Run("default window is seven days", func(t *testing.T) {
		parsed, err := newRules().ParseConstraints(ctx, "whenever works", "UTC")
		require.NoError(t, err)

		assert.Equal(t, testNow, parsed.Hard.WindowStart)
		assert.Equal(t, testNow.AddDate(0, 0, 7), parsed.Hard.WindowEnd)
		assert.Equal(t, "UTC", parsed.Hard.Timezone)
		assert.Empty(t, parsed.Soft.PreferredDaysOfWeek)
		assert.Empty(t, parsed.Soft.PreferredTimeOfDay)
	})

	t.Run("next two weeks widens the window", func(t *testing.T) {
		parsed, err := newRules().ParseConstraints(ctx, "sometime in the next two weeks", "UTC")
		require.NoError(t, err)

		assert.Equal(t, testNow.AddDate(0, 0, 14), parsed.Hard.WindowEnd)
	})

	t.Run("day range is inclusive", func(t *testing.T) {
		parsed, err := newRules().ParseConstraints(ctx, "Tue-Thu would be best", "UTC")
		require.NoError(t, err)

		assert.Equal(t, []string{"THU", "TUE", "WED"}, parsed.Soft.PreferredDaysOfWeek)
	})

	t.Run("to spelled out acts as a range", func(t *testing.T) {
		parsed, err := newRules().ParseConstraints(ctx, "mon to wed", "UTC")
		require.NoError(t, err)

		assert.Equal(t, []string{"MON", "TUE", "WED"}, parsed.Soft.PreferredDaysOfWeek)
	})

	t.Run("full day names and times of day", func(t *testing.T) {
		parsed, err := newRules().ParseConstraints(ctx, "Friday morning or evening", "UTC")
		require.NoError(t, err)

		assert.Equal(t, []string{"FRI"}, parsed.Soft.PreferredDaysOfWeek)
		assert.Equal(t, []string{"MORNING", "EVENING"}, parsed.Soft.PreferredTimeOfDay)
	})

	t.Run("night maps to evening", func(t *testing.T) {
		parsed, err := newRules().ParseConstraints(ctx, "late at night", "UTC")
		require.NoError(t, err)

		assert.Equal(t, []string{"EVENING"}, parsed.Soft.PreferredTimeOfDay)
	})

	t.Run("unknown timezone falls back to UTC", func(t *testing.T) {
		parsed, err := newRules().ParseConstraints(ctx, "anytime", "Not/AZone")
		require.NoError(t, err)

		assert.Equal(t, "UTC", parsed.Hard.Timezone)
	})
}

func TestRuleInterpreter_ExtractWindows(t *testing.T) {
	ctx := context.Background()
	windowStart := testNow
	windowEnd := testNow.Add(48 * time.Hour)

	t.Run("first block of the window", func(t *testing.T) {
		windows, err := newRules().ExtractWindows(ctx, "anything", windowStart, windowEnd, 30*time.Minute)
		require.NoError(t, err)
		require.Len(t, windows, 1)

		assert.Equal(t, windowStart, windows[0].Start)
		assert.Equal(t, windowStart.Add(30*time.Minute), windows[0].End)
	})

	t.Run("clamped to window end", func(t *testing.T) {
		shortEnd := windowStart.Add(10 * time.Minute)
		windows, err := newRules().ExtractWindows(ctx, "anything", windowStart, shortEnd, 30*time.Minute)
		require.NoError(t, err)
		require.Len(t, windows, 1)

		assert.Equal(t, shortEnd, windows[0].End)
	})
}
