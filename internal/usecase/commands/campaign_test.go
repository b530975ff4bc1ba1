//go:build unit

package commands_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"meetline/internal/domain/meeting"
	"meetline/internal/usecase/commands"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLaunchCampaign(t *testing.T) {
	newRequest := func(leads []commands.CampaignLead) commands.LaunchCampaignRequest {
		return commands.LaunchCampaignRequest{
			OwnerID:         "owner-1",
			Title:           "Roadmap review",
			DurationMinutes: 30,
			HardConstraints: hardConstraintsJSON(windowStart, windowStart.Add(8*time.Hour)),
			Leads:           leads,
		}
	}

	t.Run("dials every lead and records the calls", func(t *testing.T) {
		store := newFakeStore()
		uow := &fakeUoW{store: store}
		dialer := &stubDialer{sids: map[string]string{
			"+15550001": "CA-one",
			"+15550002": "CA-two",
		}}
		uc := commands.NewCampaignUseCase(uow, commands.NewSchedulingUseCase(uow), dialer)

		result, err := uc.LaunchCampaign(context.Background(), newRequest([]commands.CampaignLead{
			{Name: "Ada", Phone: "+15550001"},
			{Name: "Grace", Phone: "+15550002"},
		}))

		require.NoError(t, err)
		assert.Equal(t, 16, result.SlotCount)
		assert.Equal(t, []string{"+15550001", "+15550002"}, dialer.dialed)

		require.Len(t, result.Outcomes, 2)
		for i, outcome := range result.Outcomes {
			assert.NotNil(t, outcome.CallID, "outcome %d should carry a call id", i)
			assert.Empty(t, outcome.DialError)
		}
		assert.Equal(t, "CA-one", result.Outcomes[0].ProviderCallID)

		require.Len(t, store.createdCalls, 2)
		for _, call := range store.createdCalls {
			assert.Equal(t, meeting.CallDirectionOutbound, call.Direction)
			assert.Equal(t, meeting.CallStatusInitiated, call.Status)
			require.NotNil(t, call.MeetingRequestID)
			assert.Equal(t, result.MeetingRequestID, *call.MeetingRequestID)
		}
	})

	t.Run("a failed dial is recorded and does not abort the batch", func(t *testing.T) {
		store := newFakeStore()
		uow := &fakeUoW{store: store}
		dialer := &stubDialer{errs: map[string]error{
			"+15550001": errors.New("provider unreachable"),
		}}
		uc := commands.NewCampaignUseCase(uow, commands.NewSchedulingUseCase(uow), dialer)

		result, err := uc.LaunchCampaign(context.Background(), newRequest([]commands.CampaignLead{
			{Name: "Ada", Phone: "+15550001"},
			{Name: "Grace", Phone: "+15550002"},
		}))

		require.NoError(t, err)
		require.Len(t, result.Outcomes, 2)
		assert.Contains(t, result.Outcomes[0].DialError, "provider unreachable")
		assert.Nil(t, result.Outcomes[0].CallID)
		assert.NotNil(t, result.Outcomes[1].CallID)

		require.Len(t, store.createdCalls, 1)
		assert.Equal(t, "CA-+15550002", store.createdCalls[0].ProviderCallID)
	})

	t.Run("reuses an existing lead for a known phone number", func(t *testing.T) {
		store := newFakeStore()
		uow := &fakeUoW{store: store}
		dialer := &stubDialer{}
		uc := commands.NewCampaignUseCase(uow, commands.NewSchedulingUseCase(uow), dialer)

		first, err := uc.LaunchCampaign(context.Background(), newRequest([]commands.CampaignLead{
			{Name: "Ada", Phone: "+15550001"},
		}))
		require.NoError(t, err)

		second, err := uc.LaunchCampaign(context.Background(), newRequest([]commands.CampaignLead{
			{Name: "Ada L.", Phone: "+15550001"},
		}))
		require.NoError(t, err)

		assert.Equal(t, first.Outcomes[0].LeadID, second.Outcomes[0].LeadID)
		assert.NotEqual(t, first.MeetingRequestID, second.MeetingRequestID)
	})

	t.Run("invalid constraints fail before any lead is touched", func(t *testing.T) {
		store := newFakeStore()
		uow := &fakeUoW{store: store}
		dialer := &stubDialer{}
		uc := commands.NewCampaignUseCase(uow, commands.NewSchedulingUseCase(uow), dialer)

		req := newRequest([]commands.CampaignLead{{Name: "Ada", Phone: "+15550001"}})
		req.HardConstraints = map[string]any{"timezone": "UTC"}

		_, err := uc.LaunchCampaign(context.Background(), req)

		assert.ErrorIs(t, err, commands.ErrInvalidScheduleConfig)
		assert.Empty(t, dialer.dialed)
		assert.Empty(t, store.upsertedLeads)
	})
}
