package repository

import (
	"context"

	"meetline/internal/domain/meeting"
	"meetline/internal/infra"
	"meetline/internal/infra/db"
	"meetline/internal/usecase/shared"

	"github.com/google/uuid"
)

type MeetingRequestRepository struct{}

func NewMeetingRequestRepository() *MeetingRequestRepository {
	return &MeetingRequestRepository{}
}

func (r *MeetingRequestRepository) Create(ctx context.Context, tx db.DBTX, req shared.NewMeetingRequest) (uuid.UUID, error) {
	row := tx.QueryRow(ctx, `
		INSERT INTO meeting_requests
			(owner_id, title, duration_minutes, max_bookings, status,
			 hard_constraints, soft_constraints)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id`,
		req.OwnerID,
		req.Title,
		req.DurationMinutes,
		req.MaxBookings,
		string(req.Status),
		req.HardConstraints,
		req.SoftConstraints,
	)

	var id uuid.UUID
	if err := row.Scan(&id); err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to create meeting request", err, kindOf(err))
	}

	return id, nil
}

func (r *MeetingRequestRepository) UpdateStatus(ctx context.Context, tx db.DBTX, id uuid.UUID, status meeting.RequestStatus) error {
	tag, err := tx.Exec(ctx, `
		UPDATE meeting_requests
		SET status = $2, updated_at = now()
		WHERE id = $1`, id, string(status))
	if err != nil {
		return infra.WrapRepoErr("failed to update meeting request status", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("meeting request not found", nil, infra.KindNotFound)
	}

	return nil
}
