package readstore

import (
	"context"
	"errors"

	"meetline/internal/infra"
	"meetline/internal/infra/db"
	"meetline/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type LeadReadStore struct {
	db db.DBTX
}

func NewLeadReadStore(db db.DBTX) *LeadReadStore {
	return &LeadReadStore{db: db}
}

func (r *LeadReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.LeadView, error) {
	return r.findOne(ctx, `
		SELECT id, name, phone, email, company, timezone, created_at
		FROM leads
		WHERE id = $1`, id)
}

func (r *LeadReadStore) FindByPhone(ctx context.Context, phone string) (*queries.LeadView, error) {
	return r.findOne(ctx, `
		SELECT id, name, phone, email, company, timezone, created_at
		FROM leads
		WHERE phone = $1`, phone)
}

func (r *LeadReadStore) findOne(ctx context.Context, query string, arg any) (*queries.LeadView, error) {
	row := r.db.QueryRow(ctx, query, arg)

	var view queries.LeadView
	err := row.Scan(
		&view.ID,
		&view.Name,
		&view.Phone,
		&view.Email,
		&view.Company,
		&view.Timezone,
		&view.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("lead not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find lead", err)
	}

	return &view, nil
}
