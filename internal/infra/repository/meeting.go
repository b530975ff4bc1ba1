package repository

import (
	"context"

	"meetline/internal/infra"
	"meetline/internal/infra/db"
	"meetline/internal/usecase/shared"

	"github.com/google/uuid"
)

type MeetingRepository struct{}

func NewMeetingRepository() *MeetingRepository {
	return &MeetingRepository{}
}

func (r *MeetingRepository) Create(ctx context.Context, tx db.DBTX, m shared.NewMeeting) (uuid.UUID, error) {
	row := tx.QueryRow(ctx, `
		INSERT INTO meetings
			(lead_id, meeting_request_id, call_id,
			 scheduled_start_time, scheduled_end_time)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id`,
		m.LeadID, m.MeetingRequestID, m.CallID, m.StartTime, m.EndTime,
	)

	var id uuid.UUID
	if err := row.Scan(&id); err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to create meeting", err, kindOf(err))
	}

	return id, nil
}
