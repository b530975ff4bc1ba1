package readstore

import (
	"context"
	"errors"

	"meetline/internal/infra"
	"meetline/internal/infra/db"
	"meetline/internal/usecase/queries"
	"meetline/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type CallReadStore struct {
	db db.DBTX
}

func NewCallReadStore(db db.DBTX) *CallReadStore {
	return &CallReadStore{db: db}
}

func (r *CallReadStore) FindByProviderID(ctx context.Context, providerCallID string) (*shared.CallSnapshot, error) {
	row := r.db.QueryRow(ctx, `
		SELECT id, lead_id, meeting_request_id, provider_call_id, status
		FROM calls
		WHERE provider_call_id = $1`, providerCallID)

	var snap shared.CallSnapshot
	err := row.Scan(&snap.ID, &snap.LeadID, &snap.MeetingRequestID, &snap.ProviderCallID, &snap.Status)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("call not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find call by provider ID", err)
	}

	return &snap, nil
}

func (r *CallReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.CallView, error) {
	row := r.db.QueryRow(ctx, `
		SELECT id, lead_id, meeting_request_id, provider_call_id, direction,
		       status, error_code, error_message, created_at, updated_at
		FROM calls
		WHERE id = $1`, id)

	var view queries.CallView
	err := row.Scan(
		&view.ID,
		&view.LeadID,
		&view.MeetingRequestID,
		&view.ProviderCallID,
		&view.Direction,
		&view.Status,
		&view.ErrorCode,
		&view.ErrorMessage,
		&view.CreatedAt,
		&view.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("call not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find call by ID", err)
	}

	return &view, nil
}
