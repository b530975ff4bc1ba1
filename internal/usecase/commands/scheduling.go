package commands

import (
	"context"
	"time"

	"meetline/internal/domain/meeting"
	"meetline/internal/domain/schedule"
	"meetline/internal/infra"
	"meetline/internal/pkg/errs"
	"meetline/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrMeetingRequestNotFound = errs.New("meeting request not found")
	ErrInvalidScheduleConfig  = errs.New("invalid schedule configuration")
	ErrNoConfirmableSlot      = errs.New("no slot satisfies the constraints")
	ErrRequestNotActive       = errs.New("meeting request is not active")
)

type CreateMeetingRequestRequest struct {
	OwnerID         string
	Title           string
	DurationMinutes int
	MaxBookings     int
	HardConstraints map[string]any
	SoftConstraints map[string]any
}

type CreateMeetingRequestResult struct {
	MeetingRequestID uuid.UUID
	SlotCount        int
}

type ConfirmBestSlotResult struct {
	StartTime      time.Time
	EndTime        time.Time
	Score          float64
	ParticipantIDs []uuid.UUID
	PrimaryLeadID  uuid.UUID
	MeetingID      uuid.UUID
}

type SchedulingCommands interface {
	CreateMeetingRequest(ctx context.Context, req CreateMeetingRequestRequest) (*CreateMeetingRequestResult, error)
	// ConfirmBestSlot re-runs the optimizer inside a transaction and books the
	// winning slot: one meeting for the primary lead, SELECTED transitions for
	// that lead's containing windows only, and the request moves to COMPLETED.
	ConfirmBestSlot(ctx context.Context, meetingRequestID uuid.UUID, minParticipants int) (*ConfirmBestSlotResult, error)
}

type schedulingUseCaseImpl struct {
	uow shared.UnitOfWork
}

func NewSchedulingUseCase(uow shared.UnitOfWork) SchedulingCommands {
	return &schedulingUseCaseImpl{uow: uow}
}

func (uc *schedulingUseCaseImpl) CreateMeetingRequest(ctx context.Context, req CreateMeetingRequestRequest) (*CreateMeetingRequestResult, error) {
	hard, err := schedule.ParseHardConstraints(req.HardConstraints)
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidScheduleConfig)
	}
	if req.DurationMinutes <= 0 {
		return nil, errs.Mark(schedule.ErrInvalidDuration, ErrInvalidScheduleConfig)
	}

	duration := time.Duration(req.DurationMinutes) * time.Minute
	grid, err := schedule.BuildGrid(hard.WindowStart, hard.WindowEnd, duration)
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidScheduleConfig)
	}

	maxBookings := req.MaxBookings
	if maxBookings <= 0 {
		maxBookings = 1
	}

	var result CreateMeetingRequestResult
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		id, derr := tx.MeetingRequests().Create(ctx, tx.DB(), shared.NewMeetingRequest{
			OwnerID:         req.OwnerID,
			Title:           req.Title,
			DurationMinutes: req.DurationMinutes,
			MaxBookings:     maxBookings,
			Status:          meeting.StatusActive,
			HardConstraints: req.HardConstraints,
			SoftConstraints: req.SoftConstraints,
		})
		if derr != nil {
			return derr
		}

		if derr := tx.Slots().CreateBatch(ctx, tx.DB(), id, grid); derr != nil {
			return derr
		}

		result = CreateMeetingRequestResult{MeetingRequestID: id, SlotCount: len(grid)}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &result, nil
}

func (uc *schedulingUseCaseImpl) ConfirmBestSlot(ctx context.Context, meetingRequestID uuid.UUID, minParticipants int) (*ConfirmBestSlotResult, error) {
	var result ConfirmBestSlotResult
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		snap, derr := tx.Reads().MeetingRequestByID(ctx, meetingRequestID)
		if derr != nil {
			if infra.IsKind(derr, infra.KindNotFound) {
				return ErrMeetingRequestNotFound
			}
			return derr
		}
		if snap.Status != meeting.StatusActive {
			return ErrRequestNotActive
		}

		hard, derr := schedule.ParseHardConstraints(snap.HardConstraints)
		if derr != nil {
			return errs.Mark(derr, ErrInvalidScheduleConfig)
		}
		soft := schedule.ParseSoftConstraints(snap.SoftConstraints)

		candidates, derr := tx.Reads().CandidateWindowsByRequest(ctx, meetingRequestID)
		if derr != nil {
			return derr
		}

		windows := make([]schedule.ParticipantWindow, len(candidates))
		for i, c := range candidates {
			windows[i] = schedule.ParticipantWindow{
				ParticipantID: c.LeadID,
				Start:         c.StartTime,
				End:           c.EndTime,
			}
		}

		duration := time.Duration(snap.DurationMinutes) * time.Minute
		best, derr := schedule.FindBestSlot(hard, duration, soft, windows, minParticipants)
		if derr != nil {
			return errs.Mark(derr, ErrInvalidScheduleConfig)
		}
		if best == nil {
			return ErrNoConfirmableSlot
		}

		primary := schedule.SelectPrimary(best.ParticipantIDs)
		if _, derr = tx.Availabilities().MarkSelectedContaining(ctx, tx.DB(), meetingRequestID, primary, best.Start, best.End); derr != nil {
			return derr
		}

		meetingID, derr := tx.Meetings().Create(ctx, tx.DB(), shared.NewMeeting{
			LeadID:           primary,
			MeetingRequestID: meetingRequestID,
			StartTime:        best.Start,
			EndTime:          best.End,
		})
		if derr != nil {
			return derr
		}

		if derr = tx.MeetingRequests().UpdateStatus(ctx, tx.DB(), meetingRequestID, meeting.StatusCompleted); derr != nil {
			return derr
		}

		result = ConfirmBestSlotResult{
			StartTime:      best.Start,
			EndTime:        best.End,
			Score:          best.Score,
			ParticipantIDs: best.ParticipantIDs,
			PrimaryLeadID:  primary,
			MeetingID:      meetingID,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &result, nil
}
