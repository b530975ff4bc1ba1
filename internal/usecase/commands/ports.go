package commands

import (
	"context"
	"time"

	"meetline/internal/domain/schedule"
)

// Dialer places an outbound voice call and returns the provider's call id.
type Dialer interface {
	StartCall(ctx context.Context, toPhone string) (string, error)
}

// AvailabilityExtractor turns free-form availability text into concrete time
// windows clamped to the request's scheduling window.
type AvailabilityExtractor interface {
	ExtractWindows(ctx context.Context, text string, windowStart, windowEnd time.Time, duration time.Duration) ([]schedule.Slot, error)
}
