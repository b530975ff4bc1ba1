//go:build unit

package commands_test

import (
	"bytes"
	"context"
	"testing"
	"time"

	"meetline/internal/domain/meeting"
	"meetline/internal/usecase/commands"
	"meetline/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var windowStart = time.Date(2025, 6, 2, 9, 0, 0, 0, time.UTC)

func hardConstraintsJSON(start, end time.Time) map[string]any {
	return map[string]any{
		"window_start": start.Format(time.RFC3339),
		"window_end":   end.Format(time.RFC3339),
		"timezone":     "UTC",
	}
}

func seedActiveRequest(store *fakeStore, durationMinutes int, windowHours int) uuid.UUID {
	id := uuid.New()
	store.requests[id] = &shared.MeetingRequestSnapshot{
		ID:              id,
		OwnerID:         "owner-1",
		Title:           "Quarterly sync",
		DurationMinutes: durationMinutes,
		MaxBookings:     1,
		Status:          meeting.StatusActive,
		HardConstraints: hardConstraintsJSON(windowStart, windowStart.Add(time.Duration(windowHours)*time.Hour)),
	}
	return id
}

func TestCreateMeetingRequest(t *testing.T) {
	t.Run("creates the request with a slot per duration block", func(t *testing.T) {
		store := newFakeStore()
		uc := commands.NewSchedulingUseCase(&fakeUoW{store: store})

		result, err := uc.CreateMeetingRequest(context.Background(), commands.CreateMeetingRequestRequest{
			OwnerID:         "owner-1",
			Title:           "Quarterly sync",
			DurationMinutes: 30,
			HardConstraints: hardConstraintsJSON(windowStart, windowStart.Add(8*time.Hour)),
		})

		require.NoError(t, err)
		assert.Equal(t, 16, result.SlotCount)
		require.Len(t, store.createdRequests, 1)
		assert.Equal(t, meeting.StatusActive, store.createdRequests[0].Status)
		assert.Equal(t, 1, store.createdRequests[0].MaxBookings)

		slots := store.createdSlots[result.MeetingRequestID]
		require.Len(t, slots, 16)
		assert.Equal(t, windowStart, slots[0].Start)
		assert.Equal(t, windowStart.Add(30*time.Minute), slots[0].End)
		assert.Equal(t, windowStart.Add(8*time.Hour), slots[15].End)
	})

	t.Run("rejects missing window bounds", func(t *testing.T) {
		store := newFakeStore()
		uc := commands.NewSchedulingUseCase(&fakeUoW{store: store})

		_, err := uc.CreateMeetingRequest(context.Background(), commands.CreateMeetingRequestRequest{
			OwnerID:         "owner-1",
			Title:           "broken",
			DurationMinutes: 30,
			HardConstraints: map[string]any{"timezone": "UTC"},
		})

		assert.ErrorIs(t, err, commands.ErrInvalidScheduleConfig)
		assert.Empty(t, store.createdRequests)
	})

	t.Run("rejects non-positive duration", func(t *testing.T) {
		store := newFakeStore()
		uc := commands.NewSchedulingUseCase(&fakeUoW{store: store})

		_, err := uc.CreateMeetingRequest(context.Background(), commands.CreateMeetingRequestRequest{
			OwnerID:         "owner-1",
			Title:           "broken",
			DurationMinutes: 0,
			HardConstraints: hardConstraintsJSON(windowStart, windowStart.Add(8*time.Hour)),
		})

		assert.ErrorIs(t, err, commands.ErrInvalidScheduleConfig)
	})
}

func TestConfirmBestSlot(t *testing.T) {
	leadA := uuid.New()
	leadB := uuid.New()
	primary := leadA
	if bytes.Compare(leadB[:], leadA[:]) < 0 {
		primary = leadB
	}

	seedOverlap := func(store *fakeStore, requestID uuid.UUID) {
		store.windows[requestID] = []shared.AvailabilityWindowSnapshot{
			{ID: uuid.New(), LeadID: leadA, StartTime: windowStart.Add(time.Hour), EndTime: windowStart.Add(2 * time.Hour)},
			{ID: uuid.New(), LeadID: leadB, StartTime: windowStart.Add(90 * time.Minute), EndTime: windowStart.Add(150 * time.Minute)},
		}
	}

	t.Run("books the best slot and completes the request", func(t *testing.T) {
		store := newFakeStore()
		requestID := seedActiveRequest(store, 30, 8)
		seedOverlap(store, requestID)
		uc := commands.NewSchedulingUseCase(&fakeUoW{store: store})

		result, err := uc.ConfirmBestSlot(context.Background(), requestID, 1)

		require.NoError(t, err)
		// earliest slot where both leads fit
		assert.Equal(t, windowStart.Add(90*time.Minute), result.StartTime)
		assert.Equal(t, windowStart.Add(2*time.Hour), result.EndTime)
		assert.ElementsMatch(t, []uuid.UUID{leadA, leadB}, result.ParticipantIDs)
		assert.Equal(t, primary, result.PrimaryLeadID)
		assert.NotEqual(t, uuid.Nil, result.MeetingID)

		require.Len(t, store.createdMeetings, 1)
		booked := store.createdMeetings[0]
		assert.Equal(t, requestID, booked.MeetingRequestID)
		assert.Equal(t, primary, booked.LeadID)
		assert.Equal(t, result.StartTime, booked.StartTime)
		assert.Equal(t, result.EndTime, booked.EndTime)

		require.Len(t, store.selections, 1)
		assert.Equal(t, primary, store.selections[0].LeadID)
		assert.Equal(t, result.StartTime, store.selections[0].SlotStart)

		assert.Equal(t, meeting.StatusCompleted, store.statusChanges[requestID])
	})

	t.Run("returns not found for unknown request", func(t *testing.T) {
		store := newFakeStore()
		uc := commands.NewSchedulingUseCase(&fakeUoW{store: store})

		_, err := uc.ConfirmBestSlot(context.Background(), uuid.New(), 1)
		assert.ErrorIs(t, err, commands.ErrMeetingRequestNotFound)
	})

	t.Run("rejects a request that is no longer active", func(t *testing.T) {
		store := newFakeStore()
		requestID := seedActiveRequest(store, 30, 8)
		store.requests[requestID].Status = meeting.StatusCompleted
		seedOverlap(store, requestID)
		uc := commands.NewSchedulingUseCase(&fakeUoW{store: store})

		_, err := uc.ConfirmBestSlot(context.Background(), requestID, 1)

		assert.ErrorIs(t, err, commands.ErrRequestNotActive)
		assert.Empty(t, store.createdMeetings)
		assert.Empty(t, store.statusChanges)
	})

	t.Run("reports no confirmable slot when the quorum cannot be met", func(t *testing.T) {
		store := newFakeStore()
		requestID := seedActiveRequest(store, 30, 8)
		store.windows[requestID] = []shared.AvailabilityWindowSnapshot{
			{ID: uuid.New(), LeadID: leadA, StartTime: windowStart, EndTime: windowStart.Add(time.Hour)},
		}
		uc := commands.NewSchedulingUseCase(&fakeUoW{store: store})

		_, err := uc.ConfirmBestSlot(context.Background(), requestID, 2)

		assert.ErrorIs(t, err, commands.ErrNoConfirmableSlot)
		assert.Empty(t, store.createdMeetings)
		assert.Empty(t, store.selections)
	})

	t.Run("no availabilities at all yields no confirmable slot", func(t *testing.T) {
		store := newFakeStore()
		requestID := seedActiveRequest(store, 30, 8)
		uc := commands.NewSchedulingUseCase(&fakeUoW{store: store})

		_, err := uc.ConfirmBestSlot(context.Background(), requestID, 1)
		assert.ErrorIs(t, err, commands.ErrNoConfirmableSlot)
	})
}
