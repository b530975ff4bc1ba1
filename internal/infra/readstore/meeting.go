package readstore

import (
	"context"

	"meetline/internal/infra"
	"meetline/internal/infra/db"
	"meetline/internal/usecase/queries"

	"github.com/google/uuid"
)

type MeetingReadStore struct {
	db db.DBTX
}

func NewMeetingReadStore(db db.DBTX) *MeetingReadStore {
	return &MeetingReadStore{db: db}
}

func (r *MeetingReadStore) FindByRequest(ctx context.Context, meetingRequestID uuid.UUID) ([]*queries.MeetingView, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, lead_id, meeting_request_id, call_id,
		       scheduled_start_time, scheduled_end_time, created_at
		FROM meetings
		WHERE meeting_request_id = $1
		ORDER BY scheduled_start_time, lead_id`, meetingRequestID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find meetings", err)
	}
	defer rows.Close()

	var views []*queries.MeetingView
	for rows.Next() {
		var v queries.MeetingView
		err := rows.Scan(
			&v.ID,
			&v.LeadID,
			&v.MeetingRequestID,
			&v.CallID,
			&v.ScheduledStart,
			&v.ScheduledEnd,
			&v.CreatedAt,
		)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan meeting row", err)
		}
		views = append(views, &v)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate meeting rows", err)
	}

	return views, nil
}
