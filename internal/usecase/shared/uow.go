package shared

import (
	"context"
	"time"

	"meetline/internal/domain/meeting"
	"meetline/internal/domain/schedule"
	"meetline/internal/infra/db"

	"github.com/google/uuid"
)

type UnitOfWork interface {
	// Within: Full transaction for write operations with retry logic
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// WithDB: Single query operations using implicit transactions
	WithDB(ctx context.Context, fn func(ctx context.Context, db db.DBTX) error) error
	// CommandReads: Direct access to command reads for validation outside transactions
	CommandReads() CommandReads
}

type Tx interface {
	MeetingRequests() MeetingRequestRepository
	Slots() SlotRepository
	Availabilities() AvailabilityRepository
	Meetings() MeetingRepository
	Leads() LeadRepository
	Calls() CallRepository
	Reads() CommandReads
	DB() db.DBTX
}

// CommandReads are the write-side lookups commands need before mutating.
type CommandReads interface {
	MeetingRequestByID(ctx context.Context, id uuid.UUID) (*MeetingRequestSnapshot, error)
	CandidateWindowsByRequest(ctx context.Context, meetingRequestID uuid.UUID) ([]AvailabilityWindowSnapshot, error)
	CallByProviderID(ctx context.Context, providerCallID string) (*CallSnapshot, error)
}

// Minimal snapshots for command read operations
type MeetingRequestSnapshot struct {
	ID              uuid.UUID
	OwnerID         string
	Title           string
	DurationMinutes int
	MaxBookings     int
	Status          meeting.RequestStatus
	HardConstraints map[string]any
	SoftConstraints map[string]any
}

type AvailabilityWindowSnapshot struct {
	ID        uuid.UUID
	LeadID    uuid.UUID
	StartTime time.Time
	EndTime   time.Time
}

type CallSnapshot struct {
	ID               uuid.UUID
	LeadID           *uuid.UUID
	MeetingRequestID *uuid.UUID
	ProviderCallID   string
	Status           string
}

// Write-side parameter records

type NewMeetingRequest struct {
	OwnerID         string
	Title           string
	DurationMinutes int
	MaxBookings     int
	Status          meeting.RequestStatus
	HardConstraints map[string]any
	SoftConstraints map[string]any
}

type NewAvailability struct {
	MeetingRequestID uuid.UUID
	LeadID           uuid.UUID
	StartTime        time.Time
	EndTime          time.Time
	SourceText       *string
}

type NewMeeting struct {
	LeadID           uuid.UUID
	MeetingRequestID uuid.UUID
	CallID           *uuid.UUID
	StartTime        time.Time
	EndTime          time.Time
}

type NewLead struct {
	Name     string
	Phone    string
	Email    *string
	Company  *string
	Timezone *string
}

type NewCall struct {
	LeadID           *uuid.UUID
	MeetingRequestID *uuid.UUID
	ProviderCallID   string
	Direction        string
	Status           string
}

type MeetingRequestRepository interface {
	Create(ctx context.Context, tx db.DBTX, req NewMeetingRequest) (uuid.UUID, error)
	UpdateStatus(ctx context.Context, tx db.DBTX, id uuid.UUID, status meeting.RequestStatus) error
}

type SlotRepository interface {
	CreateBatch(ctx context.Context, tx db.DBTX, meetingRequestID uuid.UUID, slots []schedule.Slot) error
}

type AvailabilityRepository interface {
	DeleteCandidates(ctx context.Context, tx db.DBTX, meetingRequestID, leadID uuid.UUID) error
	CreateBatch(ctx context.Context, tx db.DBTX, rows []NewAvailability) ([]uuid.UUID, error)
	// MarkSelectedContaining flips the lead's CANDIDATE rows fully containing
	// [slotStart, slotEnd) to SELECTED and returns how many rows changed.
	MarkSelectedContaining(ctx context.Context, tx db.DBTX, meetingRequestID, leadID uuid.UUID, slotStart, slotEnd time.Time) (int64, error)
}

type MeetingRepository interface {
	Create(ctx context.Context, tx db.DBTX, m NewMeeting) (uuid.UUID, error)
}

type LeadRepository interface {
	UpsertByPhone(ctx context.Context, tx db.DBTX, lead NewLead) (uuid.UUID, error)
}

type CallRepository interface {
	Create(ctx context.Context, tx db.DBTX, c NewCall) (uuid.UUID, error)
	// UpdateStatusByProviderID returns false when no call matches the
	// provider's id; callers treat that as a benign no-op.
	UpdateStatusByProviderID(ctx context.Context, tx db.DBTX, providerCallID, status string, errorCode, errorMessage *string) (bool, error)
}
