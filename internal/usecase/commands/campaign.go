package commands

import (
	"context"
	"log/slog"

	"meetline/internal/domain/meeting"
	"meetline/internal/usecase/shared"

	"github.com/google/uuid"
)

type CampaignLead struct {
	Name     string
	Phone    string
	Email    *string
	Company  *string
	Timezone *string
}

type LaunchCampaignRequest struct {
	OwnerID         string
	Title           string
	DurationMinutes int
	MaxBookings     int
	HardConstraints map[string]any
	SoftConstraints map[string]any
	Leads           []CampaignLead
}

type CampaignLeadOutcome struct {
	LeadID         uuid.UUID
	Phone          string
	CallID         *uuid.UUID
	ProviderCallID string
	DialError      string
}

type LaunchCampaignResult struct {
	MeetingRequestID uuid.UUID
	SlotCount        int
	Outcomes         []CampaignLeadOutcome
}

type CampaignCommands interface {
	// LaunchCampaign creates the meeting request, upserts every lead, and
	// dials each one. A failed dial is recorded per lead and never aborts
	// the rest of the batch.
	LaunchCampaign(ctx context.Context, req LaunchCampaignRequest) (*LaunchCampaignResult, error)
}

type campaignUseCaseImpl struct {
	uow        shared.UnitOfWork
	scheduling SchedulingCommands
	dialer     Dialer
}

func NewCampaignUseCase(uow shared.UnitOfWork, scheduling SchedulingCommands, dialer Dialer) CampaignCommands {
	return &campaignUseCaseImpl{uow: uow, scheduling: scheduling, dialer: dialer}
}

func (uc *campaignUseCaseImpl) LaunchCampaign(ctx context.Context, req LaunchCampaignRequest) (*LaunchCampaignResult, error) {
	created, err := uc.scheduling.CreateMeetingRequest(ctx, CreateMeetingRequestRequest{
		OwnerID:         req.OwnerID,
		Title:           req.Title,
		DurationMinutes: req.DurationMinutes,
		MaxBookings:     req.MaxBookings,
		HardConstraints: req.HardConstraints,
		SoftConstraints: req.SoftConstraints,
	})
	if err != nil {
		return nil, err
	}

	leadIDs := make([]uuid.UUID, len(req.Leads))
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		for i, lead := range req.Leads {
			id, derr := tx.Leads().UpsertByPhone(ctx, tx.DB(), shared.NewLead{
				Name:     lead.Name,
				Phone:    lead.Phone,
				Email:    lead.Email,
				Company:  lead.Company,
				Timezone: lead.Timezone,
			})
			if derr != nil {
				return derr
			}
			leadIDs[i] = id
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	// Dialing happens outside the transaction; the provider call is the
	// external side effect and each lead succeeds or fails independently.
	outcomes := make([]CampaignLeadOutcome, len(req.Leads))
	for i, lead := range req.Leads {
		outcome := CampaignLeadOutcome{LeadID: leadIDs[i], Phone: lead.Phone}

		providerCallID, dialErr := uc.dialer.StartCall(ctx, lead.Phone)
		if dialErr != nil {
			slog.Warn("campaign dial failed",
				"meeting_request_id", created.MeetingRequestID,
				"lead_id", leadIDs[i],
				"error", dialErr.Error())
			outcome.DialError = dialErr.Error()
			outcomes[i] = outcome
			continue
		}

		leadID := leadIDs[i]
		requestID := created.MeetingRequestID
		var callID uuid.UUID
		err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
			var derr error
			callID, derr = tx.Calls().Create(ctx, tx.DB(), shared.NewCall{
				LeadID:           &leadID,
				MeetingRequestID: &requestID,
				ProviderCallID:   providerCallID,
				Direction:        meeting.CallDirectionOutbound,
				Status:           meeting.CallStatusInitiated,
			})
			return derr
		})
		if err != nil {
			slog.Warn("failed to record campaign call",
				"meeting_request_id", created.MeetingRequestID,
				"lead_id", leadIDs[i],
				"provider_call_id", providerCallID,
				"error", err.Error())
			outcome.DialError = err.Error()
		} else {
			outcome.CallID = &callID
			outcome.ProviderCallID = providerCallID
		}
		outcomes[i] = outcome
	}

	return &LaunchCampaignResult{
		MeetingRequestID: created.MeetingRequestID,
		SlotCount:        created.SlotCount,
		Outcomes:         outcomes,
	}, nil
}
