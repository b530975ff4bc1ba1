//go:build unit

package telephony_test

import (
	"testing"
	"time"

	"meetline/internal/telephony"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGreetingTwiML(t *testing.T) {
	xml, err := telephony.GreetingTwiML("/twilio/voice/gather")
	require.NoError(t, err)

	assert.Contains(t, xml, "<Gather")
	assert.Contains(t, xml, `input="speech dtmf"`)
	assert.Contains(t, xml, `action="/twilio/voice/gather"`)
	assert.Contains(t, xml, `numDigits="1"`)
	assert.Contains(t, xml, "press 1 for the earliest available time")
	assert.Contains(t, xml, "follow up by message")
}

func TestConfirmationTwiML(t *testing.T) {
	start := time.Date(2025, 6, 3, 14, 30, 0, 0, time.UTC)

	t.Run("renders in the lead timezone", func(t *testing.T) {
		xml, err := telephony.ConfirmationTwiML(start, "UTC")
		require.NoError(t, err)

		assert.Contains(t, xml, "Tuesday June 03 at 14:30")
	})

	t.Run("unknown timezone falls back to UTC", func(t *testing.T) {
		xml, err := telephony.ConfirmationTwiML(start, "Not/AZone")
		require.NoError(t, err)

		assert.Contains(t, xml, "Tuesday June 03 at 14:30")
	})
}

func TestGoodbyeTwiML(t *testing.T) {
	xml, err := telephony.GoodbyeTwiML("Goodbye.")
	require.NoError(t, err)

	assert.Contains(t, xml, "<Say>Goodbye.</Say>")
}
