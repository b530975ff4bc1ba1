package request

import (
	"time"

	"meetline/internal/usecase/commands"
)

type CampaignLeadRequest struct {
	Name     string  `json:"name" binding:"required"`
	Phone    string  `json:"phone" binding:"required"`
	Email    *string `json:"email,omitempty"`
	Company  *string `json:"company,omitempty"`
	Timezone *string `json:"timezone,omitempty"`
}

type LaunchCampaignRequest struct {
	OwnerID         string                `json:"owner_id" binding:"required"`
	Title           string                `json:"title" binding:"required"`
	DurationMinutes int                   `json:"duration_minutes" binding:"required,gt=0"`
	MaxBookings     int                   `json:"max_bookings"`
	WindowStart     time.Time             `json:"window_start" binding:"required"`
	WindowEnd       time.Time             `json:"window_end" binding:"required"`
	Timezone        string                `json:"timezone,omitempty"`
	SoftConstraints map[string]any        `json:"soft_constraints,omitempty"`
	Leads           []CampaignLeadRequest `json:"leads" binding:"required,min=1,dive"`
}

func (r LaunchCampaignRequest) ToCommand() commands.LaunchCampaignRequest {
	tz := r.Timezone
	if tz == "" {
		tz = "UTC"
	}

	leads := make([]commands.CampaignLead, len(r.Leads))
	for i, l := range r.Leads {
		leads[i] = commands.CampaignLead{
			Name:     l.Name,
			Phone:    l.Phone,
			Email:    l.Email,
			Company:  l.Company,
			Timezone: l.Timezone,
		}
	}

	return commands.LaunchCampaignRequest{
		OwnerID:         r.OwnerID,
		Title:           r.Title,
		DurationMinutes: r.DurationMinutes,
		MaxBookings:     r.MaxBookings,
		HardConstraints: map[string]any{
			"window_start": r.WindowStart.Format(time.RFC3339),
			"window_end":   r.WindowEnd.Format(time.RFC3339),
			"timezone":     tz,
		},
		SoftConstraints: r.SoftConstraints,
		Leads:           leads,
	}
}
