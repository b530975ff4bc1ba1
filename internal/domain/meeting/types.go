package meeting

// RequestStatus tracks the lifecycle of a meeting request. Transitions are
// driven by booking outcomes; a confirmed booking completes the request.
type RequestStatus string

const (
	StatusActive    RequestStatus = "ACTIVE"
	StatusCompleted RequestStatus = "COMPLETED"
	StatusCancelled RequestStatus = "CANCELLED"
)

func (s RequestStatus) String() string {
	return string(s)
}

func (s RequestStatus) IsValid() bool {
	switch s {
	case StatusActive, StatusCompleted, StatusCancelled:
		return true
	default:
		return false
	}
}

// SlotState is the lifecycle of an advisory persisted grid slot. The
// optimizer regenerates its own grid and never reads these.
type SlotState string

const (
	SlotAvailable SlotState = "AVAILABLE"
	SlotHeld      SlotState = "HELD"
	SlotBooked    SlotState = "BOOKED"
	SlotExpired   SlotState = "EXPIRED"
)

func (s SlotState) String() string {
	return string(s)
}

// CallStatus values mirror the telephony provider's callback vocabulary
// (queued, ringing, in-progress, completed, busy, failed, no-answer,
// canceled). They are stored verbatim; only the initial state is ours.
const CallStatusInitiated = "initiated"

const CallDirectionOutbound = "outbound"
