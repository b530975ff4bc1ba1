package request

import (
	"time"

	"meetline/internal/usecase/commands"

	"github.com/google/uuid"
)

type CreateMeetingRequestRequest struct {
	OwnerID         string         `json:"owner_id" binding:"required"`
	Title           string         `json:"title" binding:"required"`
	DurationMinutes int            `json:"duration_minutes" binding:"required,gt=0"`
	MaxBookings     int            `json:"max_bookings"`
	WindowStart     *time.Time     `json:"window_start,omitempty"`
	WindowEnd       *time.Time     `json:"window_end,omitempty"`
	Timezone        string         `json:"timezone,omitempty"`
	HardConstraints map[string]any `json:"hard_constraints,omitempty"`
	SoftConstraints map[string]any `json:"soft_constraints,omitempty"`
}

// ToCommand accepts either a ready-made hard_constraints object or the plain
// window_start/window_end pair of the simple create flow.
func (r CreateMeetingRequestRequest) ToCommand() commands.CreateMeetingRequestRequest {
	hard := r.HardConstraints
	if hard == nil && r.WindowStart != nil && r.WindowEnd != nil {
		tz := r.Timezone
		if tz == "" {
			tz = "UTC"
		}
		hard = map[string]any{
			"window_start": r.WindowStart.Format(time.RFC3339),
			"window_end":   r.WindowEnd.Format(time.RFC3339),
			"timezone":     tz,
		}
	}

	return commands.CreateMeetingRequestRequest{
		OwnerID:         r.OwnerID,
		Title:           r.Title,
		DurationMinutes: r.DurationMinutes,
		MaxBookings:     r.MaxBookings,
		HardConstraints: hard,
		SoftConstraints: r.SoftConstraints,
	}
}

type AvailabilityWindowRequest struct {
	StartTime time.Time `json:"start_time" binding:"required"`
	EndTime   time.Time `json:"end_time" binding:"required"`
}

type ReplaceAvailabilityRequest struct {
	LeadID     uuid.UUID                   `json:"lead_id" binding:"required"`
	Windows    []AvailabilityWindowRequest `json:"windows" binding:"required,min=1,dive"`
	SourceText *string                     `json:"source_text,omitempty"`
}

func (r ReplaceAvailabilityRequest) ToWindows() []commands.AvailabilityWindowInput {
	windows := make([]commands.AvailabilityWindowInput, len(r.Windows))
	for i, w := range r.Windows {
		windows[i] = commands.AvailabilityWindowInput{
			StartTime:  w.StartTime,
			EndTime:    w.EndTime,
			SourceText: r.SourceText,
		}
	}
	return windows
}
