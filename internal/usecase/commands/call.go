package commands

import (
	"context"

	"meetline/internal/domain/meeting"
	"meetline/internal/pkg/errs"
	"meetline/internal/usecase/shared"

	"github.com/google/uuid"
)

var ErrDialFailed = errs.New("failed to start outbound call")

const defaultTestLeadName = "Test Lead"

type TestCallRequest struct {
	Phone            string
	Name             *string
	MeetingRequestID *uuid.UUID
}

type TestCallResult struct {
	CallID         uuid.UUID
	ProviderCallID string
	LeadID         uuid.UUID
}

type CallStatusUpdate struct {
	ProviderCallID string
	Status         string
	ErrorCode      *string
	ErrorMessage   *string
}

type CallCommands interface {
	// TestCall upserts a lead for the phone number, dials it, and records
	// the resulting call.
	TestCall(ctx context.Context, req TestCallRequest) (*TestCallResult, error)
	// UpdateCallStatus applies a provider status callback. Unknown provider
	// call ids return false without error; providers retry callbacks and may
	// reference calls this system never placed.
	UpdateCallStatus(ctx context.Context, update CallStatusUpdate) (bool, error)
}

type callUseCaseImpl struct {
	uow    shared.UnitOfWork
	dialer Dialer
}

func NewCallUseCase(uow shared.UnitOfWork, dialer Dialer) CallCommands {
	return &callUseCaseImpl{uow: uow, dialer: dialer}
}

func (uc *callUseCaseImpl) TestCall(ctx context.Context, req TestCallRequest) (*TestCallResult, error) {
	name := defaultTestLeadName
	if req.Name != nil && *req.Name != "" {
		name = *req.Name
	}

	var leadID uuid.UUID
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		var derr error
		leadID, derr = tx.Leads().UpsertByPhone(ctx, tx.DB(), shared.NewLead{
			Name:  name,
			Phone: req.Phone,
		})
		return derr
	})
	if err != nil {
		return nil, err
	}

	providerCallID, err := uc.dialer.StartCall(ctx, req.Phone)
	if err != nil {
		return nil, errs.Mark(err, ErrDialFailed)
	}

	var callID uuid.UUID
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		var derr error
		callID, derr = tx.Calls().Create(ctx, tx.DB(), shared.NewCall{
			LeadID:           &leadID,
			MeetingRequestID: req.MeetingRequestID,
			ProviderCallID:   providerCallID,
			Direction:        meeting.CallDirectionOutbound,
			Status:           meeting.CallStatusInitiated,
		})
		return derr
	})
	if err != nil {
		return nil, err
	}

	return &TestCallResult{CallID: callID, ProviderCallID: providerCallID, LeadID: leadID}, nil
}

func (uc *callUseCaseImpl) UpdateCallStatus(ctx context.Context, update CallStatusUpdate) (bool, error) {
	var updated bool
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		var derr error
		updated, derr = tx.Calls().UpdateStatusByProviderID(
			ctx, tx.DB(),
			update.ProviderCallID, update.Status,
			update.ErrorCode, update.ErrorMessage,
		)
		return derr
	})
	if err != nil {
		return false, err
	}

	return updated, nil
}
