//go:build unit

package builder

import (
	"time"

	reqdto "meetline/internal/handler/dto/request"
	"meetline/internal/usecase/queries"

	"github.com/google/uuid"
)

type MeetingRequestBuilder struct {
	ID              uuid.UUID
	OwnerID         string
	Title           string
	DurationMinutes int
	MaxBookings     int
	Status          string
	WindowStart     time.Time
	WindowEnd       time.Time
	Timezone        string
	CreatedAt       time.Time
}

func NewMeetingRequestBuilder() *MeetingRequestBuilder {
	windowStart := time.Date(2025, 6, 2, 9, 0, 0, 0, time.UTC)
	return &MeetingRequestBuilder{
		ID:              uuid.New(),
		OwnerID:         "owner-1",
		Title:           "Quarterly sync",
		DurationMinutes: 30,
		MaxBookings:     1,
		Status:          "ACTIVE",
		WindowStart:     windowStart,
		WindowEnd:       windowStart.Add(8 * time.Hour),
		Timezone:        "UTC",
		CreatedAt:       windowStart.Add(-24 * time.Hour),
	}
}

func (b *MeetingRequestBuilder) With(mutate func(*MeetingRequestBuilder)) *MeetingRequestBuilder {
	mutate(b)
	return b
}

func (b *MeetingRequestBuilder) HardConstraints() map[string]any {
	return map[string]any{
		"window_start": b.WindowStart.Format(time.RFC3339),
		"window_end":   b.WindowEnd.Format(time.RFC3339),
		"timezone":     b.Timezone,
	}
}

func (b *MeetingRequestBuilder) BuildCreateRequestDTO() reqdto.CreateMeetingRequestRequest {
	windowStart := b.WindowStart
	windowEnd := b.WindowEnd
	return reqdto.CreateMeetingRequestRequest{
		OwnerID:         b.OwnerID,
		Title:           b.Title,
		DurationMinutes: b.DurationMinutes,
		MaxBookings:     b.MaxBookings,
		WindowStart:     &windowStart,
		WindowEnd:       &windowEnd,
		Timezone:        b.Timezone,
	}
}

func (b *MeetingRequestBuilder) BuildView() *queries.MeetingRequestView {
	return &queries.MeetingRequestView{
		ID:              b.ID,
		OwnerID:         b.OwnerID,
		Title:           b.Title,
		DurationMinutes: b.DurationMinutes,
		MaxBookings:     b.MaxBookings,
		Status:          b.Status,
		HardConstraints: b.HardConstraints(),
		CreatedAt:       b.CreatedAt,
	}
}

func (b *MeetingRequestBuilder) BuildDetail() *queries.MeetingRequestDetail {
	view := b.BuildView()
	slots := make([]*queries.SlotView, 0, 2)
	for i := 0; i < 2; i++ {
		start := b.WindowStart.Add(time.Duration(i*b.DurationMinutes) * time.Minute)
		slots = append(slots, &queries.SlotView{
			ID:        uuid.New(),
			StartTime: start,
			EndTime:   start.Add(time.Duration(b.DurationMinutes) * time.Minute),
			State:     "AVAILABLE",
		})
	}
	return &queries.MeetingRequestDetail{Request: *view, Slots: slots}
}
