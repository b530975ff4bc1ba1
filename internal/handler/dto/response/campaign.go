package response

import (
	"meetline/internal/usecase/commands"

	"github.com/google/uuid"
)

type CampaignLeadOutcomeResponse struct {
	LeadID         uuid.UUID  `json:"lead_id"`
	Phone          string     `json:"phone"`
	CallID         *uuid.UUID `json:"call_id,omitempty"`
	ProviderCallID string     `json:"provider_call_id,omitempty"`
	DialError      string     `json:"dial_error,omitempty"`
}

type LaunchCampaignResponse struct {
	MeetingRequestID uuid.UUID                     `json:"meeting_request_id"`
	SlotCount        int                           `json:"slot_count"`
	Leads            []CampaignLeadOutcomeResponse `json:"leads"`
}

func FromLaunchCampaignResult(result *commands.LaunchCampaignResult) *LaunchCampaignResponse {
	leads := make([]CampaignLeadOutcomeResponse, len(result.Outcomes))
	for i, o := range result.Outcomes {
		leads[i] = CampaignLeadOutcomeResponse{
			LeadID:         o.LeadID,
			Phone:          o.Phone,
			CallID:         o.CallID,
			ProviderCallID: o.ProviderCallID,
			DialError:      o.DialError,
		}
	}
	return &LaunchCampaignResponse{
		MeetingRequestID: result.MeetingRequestID,
		SlotCount:        result.SlotCount,
		Leads:            leads,
	}
}
