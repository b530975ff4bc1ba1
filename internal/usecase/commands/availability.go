package commands

import (
	"context"
	"strings"
	"time"

	"meetline/internal/domain/availability"
	"meetline/internal/domain/meeting"
	"meetline/internal/domain/schedule"
	"meetline/internal/infra"
	"meetline/internal/pkg/errs"
	"meetline/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrInvalidAvailabilityWindow = errs.New("availability window is invalid")
	ErrCallNotFound              = errs.New("call not found")
)

type AvailabilityWindowInput struct {
	StartTime  time.Time
	EndTime    time.Time
	SourceText *string
}

type GatherInput struct {
	ProviderCallID string
	SpeechResult   string
	Digits         string
}

type GatherOutcome struct {
	AvailabilityIDs []uuid.UUID
	FirstStart      time.Time
	Timezone        string
}

type AvailabilityCommands interface {
	// ReplaceAvailability swaps the lead's CANDIDATE windows for the given
	// set in one transaction. Every window is validated before anything is
	// deleted, so a bad batch leaves existing rows untouched.
	ReplaceAvailability(ctx context.Context, meetingRequestID, leadID uuid.UUID, windows []AvailabilityWindowInput) ([]uuid.UUID, error)
	// RecordGatherInput resolves a voice-gather callback to its lead and
	// request, extracts availability windows from speech or keypad digits,
	// and stores them as that lead's availability.
	RecordGatherInput(ctx context.Context, input GatherInput) (*GatherOutcome, error)
}

type availabilityUseCaseImpl struct {
	uow       shared.UnitOfWork
	extractor AvailabilityExtractor
}

func NewAvailabilityUseCase(uow shared.UnitOfWork, extractor AvailabilityExtractor) AvailabilityCommands {
	return &availabilityUseCaseImpl{uow: uow, extractor: extractor}
}

func (uc *availabilityUseCaseImpl) ReplaceAvailability(ctx context.Context, meetingRequestID, leadID uuid.UUID, windows []AvailabilityWindowInput) ([]uuid.UUID, error) {
	rows := make([]shared.NewAvailability, len(windows))
	for i, w := range windows {
		if _, err := availability.NewWindow(w.StartTime, w.EndTime); err != nil {
			return nil, errs.Mark(err, ErrInvalidAvailabilityWindow)
		}
		rows[i] = shared.NewAvailability{
			MeetingRequestID: meetingRequestID,
			LeadID:           leadID,
			StartTime:        w.StartTime,
			EndTime:          w.EndTime,
			SourceText:       w.SourceText,
		}
	}

	var ids []uuid.UUID
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

		if derr = tx.Availabilities().DeleteCandidates(ctx, tx.DB(), meetingRequestID, leadID); derr != nil {
			return derr
		}

		ids, derr = tx.Availabilities().CreateBatch(ctx, tx.DB(), rows)
		return derr
	})
	if err != nil {
		return nil, err
	}

	return ids, nil
}

func (uc *availabilityUseCaseImpl) RecordGatherInput(ctx context.Context, input GatherInput) (*GatherOutcome, error) {
	call, err := uc.uow.CommandReads().CallByProviderID(ctx, input.ProviderCallID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrCallNotFound
		}
		return nil, err
	}
	if call.LeadID == nil || call.MeetingRequestID == nil {
		return nil, ErrCallNotFound
	}

	snap, err := uc.uow.CommandReads().MeetingRequestByID(ctx, *call.MeetingRequestID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrMeetingRequestNotFound
		}
		return nil, err
	}

	hard, err := schedule.ParseHardConstraints(snap.HardConstraints)
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidScheduleConfig)
	}
	duration := time.Duration(snap.DurationMinutes) * time.Minute

	var extracted []schedule.Slot
	if strings.TrimSpace(input.SpeechResult) != "" {
		extracted, err = uc.extractor.ExtractWindows(ctx, input.SpeechResult, hard.WindowStart, hard.WindowEnd, duration)
		if err != nil {
			return nil, err
		}
	} else {
		extracted = windowsFromDigits(hard, duration, input.Digits)
	}
	if len(extracted) == 0 {
		extracted = windowsFromDigits(hard, duration, "1")
	}

	sourceText := strings.TrimSpace(input.SpeechResult)
	if sourceText == "" {
		sourceText = strings.TrimSpace(input.Digits)
	}

	windows := make([]AvailabilityWindowInput, len(extracted))
	for i, w := range extracted {
		text := sourceText
		windows[i] = AvailabilityWindowInput{StartTime: w.Start, EndTime: w.End, SourceText: &text}
	}

	ids, err := uc.ReplaceAvailability(ctx, *call.MeetingRequestID, *call.LeadID, windows)
	if err != nil {
		return nil, err
	}

	return &GatherOutcome{
		AvailabilityIDs: ids,
		FirstStart:      extracted[0].Start,
		Timezone:        hard.Timezone,
	}, nil
}

// windowsFromDigits maps keypad input to the Nth duration-sized slot of the
// window: '1' is the first slot, '2' the second, clamped to the last.
func windowsFromDigits(hard schedule.HardConstraints, duration time.Duration, digits string) []schedule.Slot {
	if duration <= 0 || !hard.WindowEnd.After(hard.WindowStart) {
		return nil
	}

	totalSlots := int(hard.WindowEnd.Sub(hard.WindowStart) / duration)
	if totalSlots < 1 {
		totalSlots = 1
	}

	idx := 1
	if digits != "" && digits[0] >= '1' && digits[0] <= '9' {
		idx = int(digits[0] - '0')
	}
	if idx > totalSlots {
		idx = totalSlots
	}

	start := hard.WindowStart.Add(time.Duration(idx-1) * duration)
	end := start.Add(duration)
	if end.After(hard.WindowEnd) {
		end = hard.WindowEnd
	}

	return []schedule.Slot{{Start: start, End: end}}
}
