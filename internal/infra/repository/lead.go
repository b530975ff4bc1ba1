package repository

import (
	"context"

	"meetline/internal/infra"
	"meetline/internal/infra/db"
	"meetline/internal/usecase/shared"

	"github.com/google/uuid"
)

type LeadRepository struct{}

func NewLeadRepository() *LeadRepository {
	return &LeadRepository{}
}

// UpsertByPhone keeps the phone number as the natural key so a lead re-dialed
// across campaigns maps to one row.
func (r *LeadRepository) UpsertByPhone(ctx context.Context, tx db.DBTX, lead shared.NewLead) (uuid.UUID, error) {
	row := tx.QueryRow(ctx, `
		INSERT INTO leads (name, phone, email, company, timezone)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (phone) DO UPDATE SET
			name       = EXCLUDED.name,
			email      = COALESCE(EXCLUDED.email, leads.email),
			company    = COALESCE(EXCLUDED.company, leads.company),
			timezone   = COALESCE(EXCLUDED.timezone, leads.timezone),
			updated_at = now()
		RETURNING id`,
		lead.Name, lead.Phone, lead.Email, lead.Company, lead.Timezone,
	)

	var id uuid.UUID
	if err := row.Scan(&id); err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to upsert lead", err, kindOf(err))
	}

	return id, nil
}
