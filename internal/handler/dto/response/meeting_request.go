package response

import (
	"time"

	"meetline/internal/usecase/commands"
	"meetline/internal/usecase/queries"

	"github.com/google/uuid"
)

type MeetingRequestResponse struct {
	MeetingRequest queries.MeetingRequestView `json:"meeting_request"`
	Slots          []*queries.SlotView        `json:"slots"`
}

func FromMeetingRequestDetail(d *queries.MeetingRequestDetail) *MeetingRequestResponse {
	slots := d.Slots
	if slots == nil {
		slots = []*queries.SlotView{}
	}
	return &MeetingRequestResponse{
		MeetingRequest: d.Request,
		Slots:          slots,
	}
}

type SuggestedSlotResponse struct {
	MeetingRequestID uuid.UUID                  `json:"meeting_request_id"`
	Slot             *queries.SuggestedSlotView `json:"slot"`
}

type AvailabilityItemResponse struct {
	ID        uuid.UUID `json:"id"`
	StartTime time.Time `json:"start_time"`
	EndTime   time.Time `json:"end_time"`
}

type ReplaceAvailabilityResponse struct {
	MeetingRequestID uuid.UUID                  `json:"meeting_request_id"`
	LeadID           uuid.UUID                  `json:"lead_id"`
	Availabilities   []AvailabilityItemResponse `json:"availabilities"`
}

type AvailabilityListResponse struct {
	MeetingRequestID uuid.UUID                   `json:"meeting_request_id"`
	Availabilities   []*queries.AvailabilityView `json:"availabilities"`
}

func NewAvailabilityListResponse(meetingRequestID uuid.UUID, views []*queries.AvailabilityView) *AvailabilityListResponse {
	if views == nil {
		views = []*queries.AvailabilityView{}
	}
	return &AvailabilityListResponse{MeetingRequestID: meetingRequestID, Availabilities: views}
}

type MeetingListResponse struct {
	MeetingRequestID uuid.UUID              `json:"meeting_request_id"`
	Meetings         []*queries.MeetingView `json:"meetings"`
}

func NewMeetingListResponse(meetingRequestID uuid.UUID, views []*queries.MeetingView) *MeetingListResponse {
	if views == nil {
		views = []*queries.MeetingView{}
	}
	return &MeetingListResponse{MeetingRequestID: meetingRequestID, Meetings: views}
}

type ConfirmedSlotResponse struct {
	StartTime          time.Time   `json:"start_time"`
	EndTime            time.Time   `json:"end_time"`
	ParticipantLeadIDs []uuid.UUID `json:"participant_lead_ids"`
	Score              float64     `json:"score"`
}

type ConfirmBestSlotResponse struct {
	MeetingRequestID uuid.UUID             `json:"meeting_request_id"`
	PrimaryLeadID    uuid.UUID             `json:"primary_lead_id"`
	MeetingID        uuid.UUID             `json:"meeting_id"`
	Slot             ConfirmedSlotResponse `json:"slot"`
}

func FromConfirmBestSlotResult(meetingRequestID uuid.UUID, result *commands.ConfirmBestSlotResult) *ConfirmBestSlotResponse {
	return &ConfirmBestSlotResponse{
		MeetingRequestID: meetingRequestID,
		PrimaryLeadID:    result.PrimaryLeadID,
		MeetingID:        result.MeetingID,
		Slot: ConfirmedSlotResponse{
			StartTime:          result.StartTime,
			EndTime:            result.EndTime,
			ParticipantLeadIDs: result.ParticipantIDs,
			Score:              result.Score,
		},
	}
}
