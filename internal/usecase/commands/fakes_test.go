//go:build unit

package commands_test

import (
	"context"
	"time"

	"meetline/internal/domain/meeting"
	"meetline/internal/domain/schedule"
	"meetline/internal/infra"
	"meetline/internal/infra/db"
	"meetline/internal/usecase/shared"

	"github.com/google/uuid"
)

// fakeStore is the in-memory state behind the fake unit of work. Repos and
// reads share it so a test can seed lookups and inspect writes.
type fakeStore struct {
	requests  map[uuid.UUID]*shared.MeetingRequestSnapshot
	windows   map[uuid.UUID][]shared.AvailabilityWindowSnapshot
	leads     map[string]uuid.UUID
	calls     map[string]*shared.CallSnapshot
	knownCall map[string]bool

	createdRequests []shared.NewMeetingRequest
	createdSlots    map[uuid.UUID][]schedule.Slot
	statusChanges   map[uuid.UUID]meeting.RequestStatus

	deletedCandidates [][2]uuid.UUID
	createdWindows    []shared.NewAvailability
	selections        []selection

	createdMeetings []shared.NewMeeting
	upsertedLeads   []shared.NewLead
	createdCalls    []shared.NewCall
	statusUpdates   []callStatusRecord

	upsertErr error
	dialerErr error
}

type selection struct {
	MeetingRequestID uuid.UUID
	LeadID           uuid.UUID
	SlotStart        time.Time
	SlotEnd          time.Time
}

type callStatusRecord struct {
	ProviderCallID string
	Status         string
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		requests:      make(map[uuid.UUID]*shared.MeetingRequestSnapshot),
		windows:       make(map[uuid.UUID][]shared.AvailabilityWindowSnapshot),
		leads:         make(map[string]uuid.UUID),
		calls:         make(map[string]*shared.CallSnapshot),
		knownCall:     make(map[string]bool),
		createdSlots:  make(map[uuid.UUID][]schedule.Slot),
		statusChanges: make(map[uuid.UUID]meeting.RequestStatus),
	}
}

type fakeUoW struct {
	store *fakeStore
}

func (u *fakeUoW) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	return fn(ctx, &fakeTx{store: u.store})
}

func (u *fakeUoW) WithDB(ctx context.Context, fn func(ctx context.Context, dbtx db.DBTX) error) error {
	return fn(ctx, nil)
}

func (u *fakeUoW) CommandReads() shared.CommandReads {
	return &fakeReads{store: u.store}
}

type fakeTx struct {
	store *fakeStore
}

func (t *fakeTx) MeetingRequests() shared.MeetingRequestRepository {
	return &fakeMeetingRequestRepo{store: t.store}
}
func (t *fakeTx) Slots() shared.SlotRepository  { return &fakeSlotRepo{store: t.store} }
func (t *fakeTx) Meetings() shared.MeetingRepository {
	return &fakeMeetingRepo{store: t.store}
}
func (t *fakeTx) Leads() shared.LeadRepository { return &fakeLeadRepo{store: t.store} }
func (t *fakeTx) Calls() shared.CallRepository { return &fakeCallRepo{store: t.store} }
func (t *fakeTx) Availabilities() shared.AvailabilityRepository {
	return &fakeAvailabilityRepo{store: t.store}
}
func (t *fakeTx) Reads() shared.CommandReads { return &fakeReads{store: t.store} }
func (t *fakeTx) DB() db.DBTX                { return nil }

type fakeReads struct {
	store *fakeStore
}

func (r *fakeReads) MeetingRequestByID(_ context.Context, id uuid.UUID) (*shared.MeetingRequestSnapshot, error) {
	snap, ok := r.store.requests[id]
	if !ok {
		return nil, infra.WrapRepoErr("meeting request not found", nil, infra.KindNotFound)
	}
	return snap, nil
}

func (r *fakeReads) CandidateWindowsByRequest(_ context.Context, meetingRequestID uuid.UUID) ([]shared.AvailabilityWindowSnapshot, error) {
	return r.store.windows[meetingRequestID], nil
}

func (r *fakeReads) CallByProviderID(_ context.Context, providerCallID string) (*shared.CallSnapshot, error) {
	call, ok := r.store.calls[providerCallID]
	if !ok {
		return nil, infra.WrapRepoErr("call not found", nil, infra.KindNotFound)
	}
	return call, nil
}

type fakeMeetingRequestRepo struct {
	store *fakeStore
}

func (r *fakeMeetingRequestRepo) Create(_ context.Context, _ db.DBTX, req shared.NewMeetingRequest) (uuid.UUID, error) {
	r.store.createdRequests = append(r.store.createdRequests, req)
	id := uuid.New()
	r.store.requests[id] = &shared.MeetingRequestSnapshot{
		ID:              id,
		OwnerID:         req.OwnerID,
		Title:           req.Title,
		DurationMinutes: req.DurationMinutes,
		MaxBookings:     req.MaxBookings,
		Status:          req.Status,
		HardConstraints: req.HardConstraints,
		SoftConstraints: req.SoftConstraints,
	}
	return id, nil
}

func (r *fakeMeetingRequestRepo) UpdateStatus(_ context.Context, _ db.DBTX, id uuid.UUID, status meeting.RequestStatus) error {
	if _, ok := r.store.requests[id]; !ok {
		return infra.WrapRepoErr("meeting request not found", nil, infra.KindNotFound)
	}
	r.store.statusChanges[id] = status
	return nil
}

type fakeSlotRepo struct {
	store *fakeStore
}

func (r *fakeSlotRepo) CreateBatch(_ context.Context, _ db.DBTX, meetingRequestID uuid.UUID, slots []schedule.Slot) error {
	r.store.createdSlots[meetingRequestID] = append(r.store.createdSlots[meetingRequestID], slots...)
	return nil
}

type fakeAvailabilityRepo struct {
	store *fakeStore
}

func (r *fakeAvailabilityRepo) DeleteCandidates(_ context.Context, _ db.DBTX, meetingRequestID, leadID uuid.UUID) error {
	r.store.deletedCandidates = append(r.store.deletedCandidates, [2]uuid.UUID{meetingRequestID, leadID})
	return nil
}

func (r *fakeAvailabilityRepo) CreateBatch(_ context.Context, _ db.DBTX, rows []shared.NewAvailability) ([]uuid.UUID, error) {
	ids := make([]uuid.UUID, len(rows))
	for i, row := range rows {
		ids[i] = uuid.New()
		r.store.createdWindows = append(r.store.createdWindows, row)
	}
	return ids, nil
}

func (r *fakeAvailabilityRepo) MarkSelectedContaining(_ context.Context, _ db.DBTX, meetingRequestID, leadID uuid.UUID, slotStart, slotEnd time.Time) (int64, error) {
	r.store.selections = append(r.store.selections, selection{
		MeetingRequestID: meetingRequestID,
		LeadID:           leadID,
		SlotStart:        slotStart,
		SlotEnd:          slotEnd,
	})
	return 1, nil
}

type fakeMeetingRepo struct {
	store *fakeStore
}

func (r *fakeMeetingRepo) Create(_ context.Context, _ db.DBTX, m shared.NewMeeting) (uuid.UUID, error) {
	r.store.createdMeetings = append(r.store.createdMeetings, m)
	return uuid.New(), nil
}

type fakeLeadRepo struct {
	store *fakeStore
}

func (r *fakeLeadRepo) UpsertByPhone(_ context.Context, _ db.DBTX, lead shared.NewLead) (uuid.UUID, error) {
	if r.store.upsertErr != nil {
		return uuid.Nil, r.store.upsertErr
	}
	r.store.upsertedLeads = append(r.store.upsertedLeads, lead)
	if id, ok := r.store.leads[lead.Phone]; ok {
		return id, nil
	}
	id := uuid.New()
	r.store.leads[lead.Phone] = id
	return id, nil
}

type fakeCallRepo struct {
	store *fakeStore
}

func (r *fakeCallRepo) Create(_ context.Context, _ db.DBTX, c shared.NewCall) (uuid.UUID, error) {
	r.store.createdCalls = append(r.store.createdCalls, c)
	return uuid.New(), nil
}

func (r *fakeCallRepo) UpdateStatusByProviderID(_ context.Context, _ db.DBTX, providerCallID, status string, _, _ *string) (bool, error) {
	r.store.statusUpdates = append(r.store.statusUpdates, callStatusRecord{ProviderCallID: providerCallID, Status: status})
	return r.store.knownCall[providerCallID], nil
}

// stubDialer answers per phone number.
type stubDialer struct {
	sids   map[string]string
	errs   map[string]error
	dialed []string
}

func (d *stubDialer) StartCall(_ context.Context, toPhone string) (string, error) {
	d.dialed = append(d.dialed, toPhone)
	if err, ok := d.errs[toPhone]; ok {
		return "", err
	}
	if sid, ok := d.sids[toPhone]; ok {
		return sid, nil
	}
	return "CA-" + toPhone, nil
}

type stubExtractor struct {
	slots []schedule.Slot
	err   error
	texts []string
}

func (e *stubExtractor) ExtractWindows(_ context.Context, text string, _, _ time.Time, _ time.Duration) ([]schedule.Slot, error) {
	e.texts = append(e.texts, text)
	return e.slots, e.err
}
