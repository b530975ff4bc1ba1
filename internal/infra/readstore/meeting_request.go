package readstore

import (
	"context"
	"errors"

	"meetline/internal/domain/meeting"
	"meetline/internal/domain/schedule"
	"meetline/internal/infra"
	"meetline/internal/infra/db"
	"meetline/internal/usecase/queries"
	"meetline/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type MeetingRequestReadStore struct {
	db db.DBTX
}

func NewMeetingRequestReadStore(db db.DBTX) *MeetingRequestReadStore {
	return &MeetingRequestReadStore{db: db}
}

const meetingRequestColumns = `
	id, owner_id, title, duration_minutes, max_bookings, status,
	hard_constraints, soft_constraints, created_at`

func (r *MeetingRequestReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.MeetingRequestView, error) {
	row := r.db.QueryRow(ctx, `
		SELECT `+meetingRequestColumns+`
		FROM meeting_requests
		WHERE id = $1`, id)

	var view queries.MeetingRequestView
	err := row.Scan(
		&view.ID,
		&view.OwnerID,
		&view.Title,
		&view.DurationMinutes,
		&view.MaxBookings,
		&view.Status,
		&view.HardConstraints,
		&view.SoftConstraints,
		&view.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("meeting request not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find meeting request by ID", err)
	}

	return &view, nil
}

func (r *MeetingRequestReadStore) FindSnapshotByID(ctx context.Context, id uuid.UUID) (*shared.MeetingRequestSnapshot, error) {
	row := r.db.QueryRow(ctx, `
		SELECT id, owner_id, title, duration_minutes, max_bookings, status,
		       hard_constraints, soft_constraints
		FROM meeting_requests
		WHERE id = $1`, id)

	var (
		snap   shared.MeetingRequestSnapshot
		status string
	)
	err := row.Scan(
		&snap.ID,
		&snap.OwnerID,
		&snap.Title,
		&snap.DurationMinutes,
		&snap.MaxBookings,
		&status,
		&snap.HardConstraints,
		&snap.SoftConstraints,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("meeting request not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find meeting request snapshot", err)
	}
	snap.Status = meeting.RequestStatus(status)

	return &snap, nil
}

func (r *MeetingRequestReadStore) FindSlotsByRequest(ctx context.Context, meetingRequestID uuid.UUID) ([]*queries.SlotView, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, start_time, end_time, state
		FROM meeting_slots
		WHERE meeting_request_id = $1
		ORDER BY start_time`, meetingRequestID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find slots", err)
	}
	defer rows.Close()

	var slots []*queries.SlotView
	for rows.Next() {
		var s queries.SlotView
		if err := rows.Scan(&s.ID, &s.StartTime, &s.EndTime, &s.State); err != nil {
			return nil, infra.WrapRepoErr("failed to scan slot row", err)
		}
		slots = append(slots, &s)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate slot rows", err)
	}

	return slots, nil
}

// FindParticipantWindows returns the CANDIDATE availabilities shaped for the
// optimizer, ordered for deterministic scoring.
func (r *MeetingRequestReadStore) FindParticipantWindows(ctx context.Context, meetingRequestID uuid.UUID) ([]schedule.ParticipantWindow, error) {
	rows, err := r.db.Query(ctx, `
		SELECT lead_id, start_time, end_time
		FROM participant_availabilities
		WHERE meeting_request_id = $1 AND state = 'CANDIDATE'
		ORDER BY lead_id, start_time`, meetingRequestID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find participant windows", err)
	}
	defer rows.Close()

	var windows []schedule.ParticipantWindow
	for rows.Next() {
		var w schedule.ParticipantWindow
		if err := rows.Scan(&w.ParticipantID, &w.Start, &w.End); err != nil {
			return nil, infra.WrapRepoErr("failed to scan participant window", err)
		}
		windows = append(windows, w)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate participant windows", err)
	}

	return windows, nil
}

func (r *MeetingRequestReadStore) FindCandidateWindows(ctx context.Context, meetingRequestID uuid.UUID) ([]shared.AvailabilityWindowSnapshot, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, lead_id, start_time, end_time
		FROM participant_availabilities
		WHERE meeting_request_id = $1 AND state = 'CANDIDATE'
		ORDER BY lead_id, start_time`, meetingRequestID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find candidate windows", err)
	}
	defer rows.Close()

	var windows []shared.AvailabilityWindowSnapshot
	for rows.Next() {
		var w shared.AvailabilityWindowSnapshot
		if err := rows.Scan(&w.ID, &w.LeadID, &w.StartTime, &w.EndTime); err != nil {
			return nil, infra.WrapRepoErr("failed to scan candidate window", err)
		}
		windows = append(windows, w)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate candidate windows", err)
	}

	return windows, nil
}

func (r *MeetingRequestReadStore) FindAvailabilitiesByRequest(ctx context.Context, meetingRequestID uuid.UUID) ([]*queries.AvailabilityView, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, lead_id, start_time, end_time, state, score, source_text
		FROM participant_availabilities
		WHERE meeting_request_id = $1
		ORDER BY lead_id, start_time`, meetingRequestID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find availabilities", err)
	}
	defer rows.Close()

	var views []*queries.AvailabilityView
	for rows.Next() {
		var v queries.AvailabilityView
		if err := rows.Scan(&v.ID, &v.LeadID, &v.StartTime, &v.EndTime, &v.State, &v.Score, &v.SourceText); err != nil {
			return nil, infra.WrapRepoErr("failed to scan availability row", err)
		}
		views = append(views, &v)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate availability rows", err)
	}

	return views, nil
}
