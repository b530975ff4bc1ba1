package queries

import (
	"time"

	"github.com/google/uuid"
)

// Read models (DTO for read side)

type MeetingRequestView struct {
	ID              uuid.UUID      `json:"id"`
	OwnerID         string         `json:"owner_id"`
	Title           string         `json:"title"`
	DurationMinutes int            `json:"duration_minutes"`
	MaxBookings     int            `json:"max_bookings"`
	Status          string         `json:"status"`
	HardConstraints map[string]any `json:"hard_constraints"`
	SoftConstraints map[string]any `json:"soft_constraints,omitempty"`
	CreatedAt       time.Time      `json:"created_at"`
}

type SlotView struct {
	ID        uuid.UUID `json:"id"`
	StartTime time.Time `json:"start_time"`
	EndTime   time.Time `json:"end_time"`
	State     string    `json:"state"`
}

type AvailabilityView struct {
	ID         uuid.UUID `json:"id"`
	LeadID     uuid.UUID `json:"lead_id"`
	StartTime  time.Time `json:"start_time"`
	EndTime    time.Time `json:"end_time"`
	State      string    `json:"state"`
	Score      *float64  `json:"score,omitempty"`
	SourceText *string   `json:"source_text,omitempty"`
}

// SuggestedSlotView is the ephemeral optimizer outcome; it is computed per
// request and never persisted.
type SuggestedSlotView struct {
	StartTime      time.Time   `json:"start_time"`
	EndTime        time.Time   `json:"end_time"`
	ParticipantIDs []uuid.UUID `json:"participant_lead_ids"`
	Score          float64     `json:"score"`
}

type LeadView struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Phone     string    `json:"phone"`
	Email     *string   `json:"email,omitempty"`
	Company   *string   `json:"company,omitempty"`
	Timezone  *string   `json:"timezone,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

type MeetingView struct {
	ID               uuid.UUID  `json:"id"`
	LeadID           uuid.UUID  `json:"lead_id"`
	MeetingRequestID uuid.UUID  `json:"meeting_request_id"`
	CallID           *uuid.UUID `json:"call_id,omitempty"`
	ScheduledStart   time.Time  `json:"scheduled_start_time"`
	ScheduledEnd     time.Time  `json:"scheduled_end_time"`
	CreatedAt        time.Time  `json:"created_at"`
}

type CallView struct {
	ID               uuid.UUID  `json:"id"`
	LeadID           *uuid.UUID `json:"lead_id,omitempty"`
	MeetingRequestID *uuid.UUID `json:"meeting_request_id,omitempty"`
	ProviderCallID   string     `json:"provider_call_id"`
	Direction        string     `json:"direction"`
	Status           string     `json:"status"`
	ErrorCode        *string    `json:"error_code,omitempty"`
	ErrorMessage     *string    `json:"error_message,omitempty"`
	CreatedAt        time.Time  `json:"created_at"`
	UpdatedAt        time.Time  `json:"updated_at"`
}
