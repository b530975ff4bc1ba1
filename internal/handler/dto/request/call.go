package request

import (
	"github.com/google/uuid"
)

type TestCallRequest struct {
	Phone            string     `json:"phone" binding:"required"`
	Name             *string    `json:"name,omitempty"`
	MeetingRequestID *uuid.UUID `json:"meeting_request_id,omitempty"`
}

type ParseConstraintsRequest struct {
	Instruction string `json:"instruction" binding:"required"`
	Timezone    string `json:"timezone,omitempty"`
}
