package uow

import (
	"context"
	"crypto/rand"
	"encoding/binary"
	"errors"
	"log/slog"
	"time"

	"meetline/internal/infra/db"
	"meetline/internal/infra/readstore"
	"meetline/internal/infra/repository"
	"meetline/internal/pkg/errs"
	"meetline/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

const (
	pgErrCodeSerializationFailure = "40001"
	pgErrCodeDeadlockDetected     = "40P01"
)

var (
	errTransactionBegin   = errs.New("failed to begin transaction")
	errTransactionCommit  = errs.New("failed to commit transaction")
	errMaxRetriesExceeded = errs.New("transaction failed after max retries")
)

type PostgresUoW struct {
	pool *pgxpool.Pool
}

func NewPostgresUoW(pool *pgxpool.Pool) shared.UnitOfWork {
	return &PostgresUoW{pool: pool}
}

// ReadCommitted prevents dirty reads while allowing concurrent writes
func (u *PostgresUoW) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	return u.runInTxWithOptions(ctx, pgx.TxOptions{IsoLevel: pgx.ReadCommitted}, fn)
}

func (u *PostgresUoW) WithDB(ctx context.Context, fn func(ctx context.Context, db db.DBTX) error) error {
	return fn(ctx, u.pool)
}

func (u *PostgresUoW) CommandReads() shared.CommandReads {
	return &commandReads{dbtx: u.pool}
}

// Avoids defer accumulation in retry loops to prevent connection leaks
func (u *PostgresUoW) runInTxWithOptions(ctx context.Context, options pgx.TxOptions, fn func(ctx context.Context, tx shared.Tx) error) error {
	const maxRetries = 3
	base := 100 * time.Millisecond

	for attempt := 0; attempt <= maxRetries; attempt++ {
		pgxTx, err := u.pool.BeginTx(ctx, options)
		if err != nil {
			return errs.Mark(err, errTransactionBegin)
		}

		tx := &pgTx{dbtx: pgxTx}

		err = fn(ctx, tx)
		if err == nil {
			if err = pgxTx.Commit(ctx); err == nil {
				return nil
			}
			err = errs.Mark(err, errTransactionCommit)
		}

		if rollbackErr := pgxTx.Rollback(ctx); rollbackErr != nil {
			if !errors.Is(rollbackErr, pgx.ErrTxClosed) {
				slog.Warn("rollback failed", "attempt", attempt+1, "error", rollbackErr.Error())
			}
		}

		if !shouldRetry(err, attempt, maxRetries) {
			if attempt == maxRetries {
				slog.Error("transaction failed after max retries",
					"attempts", attempt+1,
					"error", err.Error())
				return errs.Mark(err, errMaxRetriesExceeded)
			}
			return err
		}

		waitTime := calculateBackoff(attempt, base)

		slog.Warn("retrying transaction due to retryable error",
			"attempt", attempt+1,
			"wait_ms", waitTime.Milliseconds(),
			"error", err.Error())

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(waitTime):
		}
	}

	return errMaxRetriesExceeded
}

func shouldRetry(err error, attempt, maxRetries int) bool {
	return isRetryableError(err) && attempt < maxRetries
}

func calculateBackoff(attempt int, base time.Duration) time.Duration {
	waitTime := time.Duration(1<<attempt) * base
	jitter := cryptoRandInt63n(int64(waitTime / 5))
	return waitTime + time.Duration(jitter)
}

func cryptoRandInt63n(n int64) int64 {
	if n <= 0 {
		return 0
	}
	var buf [8]byte
	if _, err := rand.Read(buf[:]); err != nil {
		// Fallback to a simple calculation if crypto/rand fails
		return 0
	}
	// Safe conversion: mask high bit to ensure positive int64
	uval := binary.BigEndian.Uint64(buf[:]) & 0x7FFFFFFFFFFFFFFF
	// #nosec G115 -- Intentionally safe conversion after masking
	return int64(uval) % n
}

func isRetryableError(err error) bool {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return false
	}

	switch pgErr.Code {
	case pgErrCodeSerializationFailure, pgErrCodeDeadlockDetected:
		return true
	default:
		return false
	}
}

type pgTx struct {
	dbtx db.DBTX

	// Lazy-initialized repositories
	meetingRequestRepo shared.MeetingRequestRepository
	slotRepo           shared.SlotRepository
	availabilityRepo   shared.AvailabilityRepository
	meetingRepo        shared.MeetingRepository
	leadRepo           shared.LeadRepository
	callRepo           shared.CallRepository
	commandReads       shared.CommandReads
}

func (t *pgTx) DB() db.DBTX {
	return t.dbtx
}

func (t *pgTx) MeetingRequests() shared.MeetingRequestRepository {
	if t.meetingRequestRepo == nil {
		t.meetingRequestRepo = repository.NewMeetingRequestRepository()
	}
	return t.meetingRequestRepo
}

func (t *pgTx) Slots() shared.SlotRepository {
	if t.slotRepo == nil {
		t.slotRepo = repository.NewSlotRepository()
	}
	return t.slotRepo
}

func (t *pgTx) Availabilities() shared.AvailabilityRepository {
	if t.availabilityRepo == nil {
		t.availabilityRepo = repository.NewAvailabilityRepository()
	}
	return t.availabilityRepo
}

func (t *pgTx) Meetings() shared.MeetingRepository {
	if t.meetingRepo == nil {
		t.meetingRepo = repository.NewMeetingRepository()
	}
	return t.meetingRepo
}

func (t *pgTx) Leads() shared.LeadRepository {
	if t.leadRepo == nil {
		t.leadRepo = repository.NewLeadRepository()
	}
	return t.leadRepo
}

func (t *pgTx) Calls() shared.CallRepository {
	if t.callRepo == nil {
		t.callRepo = repository.NewCallRepository()
	}
	return t.callRepo
}

func (t *pgTx) Reads() shared.CommandReads {
	if t.commandReads == nil {
		t.commandReads = &commandReads{dbtx: t.dbtx}
	}
	return t.commandReads
}

type commandReads struct {
	dbtx db.DBTX

	// Lazy-initialized readstores
	meetingRequestStore *readstore.MeetingRequestReadStore
	callStore           *readstore.CallReadStore
}

func (r *commandReads) requests() *readstore.MeetingRequestReadStore {
	if r.meetingRequestStore == nil {
		r.meetingRequestStore = readstore.NewMeetingRequestReadStore(r.dbtx)
	}
	return r.meetingRequestStore
}

func (r *commandReads) MeetingRequestByID(ctx context.Context, id uuid.UUID) (*shared.MeetingRequestSnapshot, error) {
	return r.requests().FindSnapshotByID(ctx, id)
}

func (r *commandReads) CandidateWindowsByRequest(ctx context.Context, meetingRequestID uuid.UUID) ([]shared.AvailabilityWindowSnapshot, error) {
	return r.requests().FindCandidateWindows(ctx, meetingRequestID)
}

func (r *commandReads) CallByProviderID(ctx context.Context, providerCallID string) (*shared.CallSnapshot, error) {
	if r.callStore == nil {
		r.callStore = readstore.NewCallReadStore(r.dbtx)
	}
	return r.callStore.FindByProviderID(ctx, providerCallID)
}
