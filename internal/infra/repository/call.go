package repository

import (
	"context"

	"meetline/internal/infra"
	"meetline/internal/infra/db"
	"meetline/internal/usecase/shared"

	"github.com/google/uuid"
)

type CallRepository struct{}

func NewCallRepository() *CallRepository {
	return &CallRepository{}
}

func (r *CallRepository) Create(ctx context.Context, tx db.DBTX, c shared.NewCall) (uuid.UUID, error) {
	row := tx.QueryRow(ctx, `
		INSERT INTO calls
			(lead_id, meeting_request_id, provider_call_id, direction, status)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id`,
		c.LeadID, c.MeetingRequestID, c.ProviderCallID, c.Direction, c.Status,
	)

	var id uuid.UUID
	if err := row.Scan(&id); err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to create call", err, kindOf(err))
	}

	return id, nil
}

func (r *CallRepository) UpdateStatusByProviderID(ctx context.Context, tx db.DBTX, providerCallID, status string, errorCode, errorMessage *string) (bool, error) {
	tag, err := tx.Exec(ctx, `
		UPDATE calls
		SET status        = $2,
		    error_code    = $3,
		    error_message = $4,
		    updated_at    = now()
		WHERE provider_call_id = $1`,
		providerCallID, status, errorCode, errorMessage,
	)
	if err != nil {
		return false, infra.WrapRepoErr("failed to update call status", err)
	}

	return tag.RowsAffected() > 0, nil
}
