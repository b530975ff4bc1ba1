package response

import (
	"time"

	"meetline/internal/interp"
	"meetline/internal/usecase/commands"

	"github.com/google/uuid"
)

type TestCallResponse struct {
	CallID         uuid.UUID `json:"call_id"`
	ProviderCallID string    `json:"provider_call_id"`
	LeadID         uuid.UUID `json:"lead_id"`
}

func FromTestCallResult(result *commands.TestCallResult) *TestCallResponse {
	return &TestCallResponse{
		CallID:         result.CallID,
		ProviderCallID: result.ProviderCallID,
		LeadID:         result.LeadID,
	}
}

type HardConstraintsResponse struct {
	WindowStart time.Time `json:"window_start"`
	WindowEnd   time.Time `json:"window_end"`
	Timezone    string    `json:"timezone"`
}

type SoftConstraintsResponse struct {
	PreferredDaysOfWeek []string `json:"preferred_days_of_week,omitempty"`
	PreferredTimeOfDay  []string `json:"preferred_time_of_day,omitempty"`
}

type ParsedConstraintsResponse struct {
	HardConstraints HardConstraintsResponse `json:"hard_constraints"`
	SoftConstraints SoftConstraintsResponse `json:"soft_constraints"`
}

func FromParsedConstraints(parsed *interp.ParsedConstraints) *ParsedConstraintsResponse {
	return &ParsedConstraintsResponse{
		HardConstraints: HardConstraintsResponse{
			WindowStart: parsed.Hard.WindowStart,
			WindowEnd:   parsed.Hard.WindowEnd,
			Timezone:    parsed.Hard.Timezone,
		},
		SoftConstraints: SoftConstraintsResponse{
			PreferredDaysOfWeek: parsed.Soft.PreferredDaysOfWeek,
			PreferredTimeOfDay:  parsed.Soft.PreferredTimeOfDay,
		},
	}
}
