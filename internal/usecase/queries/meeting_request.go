package queries

import (
	"context"
	"time"

	"meetline/internal/domain/schedule"
	"meetline/internal/infra"
	"meetline/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrMeetingRequestNotFound = errs.New("meeting request not found")
	ErrInvalidConfiguration   = errs.New("meeting request configuration is invalid")
)

type MeetingRequestDetail struct {
	Request MeetingRequestView `json:"meeting_request"`
	Slots   []*SlotView        `json:"slots"`
}

type MeetingRequestQueries interface {
	GetByID(ctx context.Context, id uuid.UUID) (*MeetingRequestDetail, error)
	// SuggestedSlot runs the optimizer over the request's current CANDIDATE
	// availabilities without committing anything. A nil view with a nil
	// error means there is nothing to suggest yet.
	SuggestedSlot(ctx context.Context, id uuid.UUID, minParticipants int) (*SuggestedSlotView, error)
	AvailabilitiesByRequest(ctx context.Context, id uuid.UUID) ([]*AvailabilityView, error)
	MeetingsByRequest(ctx context.Context, id uuid.UUID) ([]*MeetingView, error)
}

type MeetingRequestReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*MeetingRequestView, error)
	FindSlotsByRequest(ctx context.Context, meetingRequestID uuid.UUID) ([]*SlotView, error)
	FindParticipantWindows(ctx context.Context, meetingRequestID uuid.UUID) ([]schedule.ParticipantWindow, error)
	FindAvailabilitiesByRequest(ctx context.Context, meetingRequestID uuid.UUID) ([]*AvailabilityView, error)
}

type MeetingReadStore interface {
	FindByRequest(ctx context.Context, meetingRequestID uuid.UUID) ([]*MeetingView, error)
}

type meetingRequestQueriesImpl struct {
	store    MeetingRequestReadStore
	meetings MeetingReadStore
}

func NewMeetingRequestQueries(store MeetingRequestReadStore, meetings MeetingReadStore) MeetingRequestQueries {
	return &meetingRequestQueriesImpl{store: store, meetings: meetings}
}

func (q *meetingRequestQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*MeetingRequestDetail, error) {
	view, err := q.store.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrMeetingRequestNotFound
		}
		return nil, err
	}

	slots, err := q.store.FindSlotsByRequest(ctx, id)
	if err != nil {
		return nil, err
	}

	return &MeetingRequestDetail{Request: *view, Slots: slots}, nil
}

func (q *meetingRequestQueriesImpl) SuggestedSlot(ctx context.Context, id uuid.UUID, minParticipants int) (*SuggestedSlotView, error) {
	view, err := q.store.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrMeetingRequestNotFound
		}
		return nil, err
	}

	hard, err := schedule.ParseHardConstraints(view.HardConstraints)
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidConfiguration)
	}
	soft := schedule.ParseSoftConstraints(view.SoftConstraints)

	windows, err := q.store.FindParticipantWindows(ctx, id)
	if err != nil {
		return nil, err
	}

	duration := time.Duration(view.DurationMinutes) * time.Minute
	best, err := schedule.FindBestSlot(hard, duration, soft, windows, minParticipants)
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidConfiguration)
	}
	if best == nil {
		return nil, nil
	}

	return &SuggestedSlotView{
		StartTime:      best.Start,
		EndTime:        best.End,
		ParticipantIDs: best.ParticipantIDs,
		Score:          best.Score,
	}, nil
}

func (q *meetingRequestQueriesImpl) AvailabilitiesByRequest(ctx context.Context, id uuid.UUID) ([]*AvailabilityView, error) {
	if _, err := q.store.FindByID(ctx, id); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrMeetingRequestNotFound
		}
		return nil, err
	}
	return q.store.FindAvailabilitiesByRequest(ctx, id)
}

func (q *meetingRequestQueriesImpl) MeetingsByRequest(ctx context.Context, id uuid.UUID) ([]*MeetingView, error) {
	if _, err := q.store.FindByID(ctx, id); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrMeetingRequestNotFound
		}
		return nil, err
	}
	return q.meetings.FindByRequest(ctx, id)
}
