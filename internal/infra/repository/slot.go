package repository

import (
	"context"

	"meetline/internal/domain/schedule"
	"meetline/internal/infra"
	"meetline/internal/infra/db"

	"github.com/google/uuid"
)

type SlotRepository struct{}

func NewSlotRepository() *SlotRepository {
	return &SlotRepository{}
}

func (r *SlotRepository) CreateBatch(ctx context.Context, tx db.DBTX, meetingRequestID uuid.UUID, slots []schedule.Slot) error {
	for _, s := range slots {
		_, err := tx.Exec(ctx, `
			INSERT INTO meeting_slots (meeting_request_id, start_time, end_time)
			VALUES ($1, $2, $3)`,
			meetingRequestID, s.Start, s.End,
		)
		if err != nil {
			return infra.WrapRepoErr("failed to create meeting slot", err, kindOf(err))
		}
	}

	return nil
}
