package repository

import (
	"context"
	"time"

	"meetline/internal/infra"
	"meetline/internal/infra/db"
	"meetline/internal/usecase/shared"

	"github.com/google/uuid"
)

type AvailabilityRepository struct{}

func NewAvailabilityRepository() *AvailabilityRepository {
	return &AvailabilityRepository{}
}

func (r *AvailabilityRepository) DeleteCandidates(ctx context.Context, tx db.DBTX, meetingRequestID, leadID uuid.UUID) error {
	_, err := tx.Exec(ctx, `
		DELETE FROM participant_availabilities
		WHERE meeting_request_id = $1 AND lead_id = $2 AND state = 'CANDIDATE'`,
		meetingRequestID, leadID,
	)
	if err != nil {
		return infra.WrapRepoErr("failed to delete candidate availabilities", err)
	}

	return nil
}

func (r *AvailabilityRepository) CreateBatch(ctx context.Context, tx db.DBTX, rows []shared.NewAvailability) ([]uuid.UUID, error) {
	ids := make([]uuid.UUID, 0, len(rows))
	for _, a := range rows {
		row := tx.QueryRow(ctx, `
			INSERT INTO participant_availabilities
				(meeting_request_id, lead_id, start_time, end_time, source_text)
			VALUES ($1, $2, $3, $4, $5)
			RETURNING id`,
			a.MeetingRequestID, a.LeadID, a.StartTime, a.EndTime, a.SourceText,
		)

		var id uuid.UUID
		if err := row.Scan(&id); err != nil {
			return nil, infra.WrapRepoErr("failed to create availability", err, kindOf(err))
		}
		ids = append(ids, id)
	}

	return ids, nil
}

func (r *AvailabilityRepository) MarkSelectedContaining(ctx context.Context, tx db.DBTX, meetingRequestID, leadID uuid.UUID, slotStart, slotEnd time.Time) (int64, error) {
	tag, err := tx.Exec(ctx, `
		UPDATE participant_availabilities
		SET state = 'SELECTED'
		WHERE meeting_request_id = $1
		  AND lead_id = $2
		  AND state = 'CANDIDATE'
		  AND start_time <= $3
		  AND end_time >= $4`,
		meetingRequestID, leadID, slotStart, slotEnd,
	)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to mark availabilities selected", err)
	}

	return tag.RowsAffected(), nil
}
