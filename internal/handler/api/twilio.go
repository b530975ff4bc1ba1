package api

import (
	"errors"
	"log/slog"
	"net/http"

	"meetline/internal/telephony"
	"meetline/internal/usecase/commands"

	"github.com/gin-gonic/gin"
)

const emptyTwiML = "<Response></Response>"

// TwilioHandler serves the provider webhooks. Every voice response is TwiML
// and always 200; the provider treats other statuses as a failed call leg.
type TwilioHandler struct {
	calls        commands.CallCommands
	availability commands.AvailabilityCommands
	gatherAction string
}

func NewTwilioHandler(calls commands.CallCommands, availability commands.AvailabilityCommands) *TwilioHandler {
	return &TwilioHandler{
		calls:        calls,
		availability: availability,
		gatherAction: "/twilio/voice/gather",
	}
}

// @Summary Call status callback
// @Description Receive provider call status updates (CallSid, CallStatus, ErrorCode)
// @Tags twilio
// @Accept x-www-form-urlencoded
// @Produce xml
// @Success 200
// @Router /twilio/status [post]
func (h *TwilioHandler) Status(c *gin.Context) {
	update := commands.CallStatusUpdate{
		ProviderCallID: c.PostForm("CallSid"),
		Status:         c.PostForm("CallStatus"),
	}
	if v := c.PostForm("ErrorCode"); v != "" {
		update.ErrorCode = &v
	}
	if v := c.PostForm("ErrorMessage"); v != "" {
		update.ErrorMessage = &v
	}

	updated, err := h.calls.UpdateCallStatus(c.Request.Context(), update)
	if err != nil {
		slog.Error("call status update failed",
			"provider_call_id", update.ProviderCallID,
			"error", err.Error())
	} else if !updated {
		slog.Warn("status callback for unknown call", "provider_call_id", update.ProviderCallID)
	}

	c.Data(http.StatusOK, "text/xml", []byte(emptyTwiML))
}

// @Summary Voice webhook
// @Description Greet the lead and gather speech or keypad availability
// @Tags twilio
// @Accept x-www-form-urlencoded
// @Produce xml
// @Success 200
// @Router /twilio/voice [post]
func (h *TwilioHandler) Voice(c *gin.Context) {
	xml, err := telephony.GreetingTwiML(h.gatherAction)
	if err != nil {
		slog.Error("failed to render greeting", "error", err.Error())
		c.Data(http.StatusOK, "application/xml", []byte(emptyTwiML))
		return
	}
	c.Data(http.StatusOK, "application/xml", []byte(xml))
}

// @Summary Voice gather callback
// @Description Record availability from speech or digits and confirm it back to the caller
// @Tags twilio
// @Accept x-www-form-urlencoded
// @Produce xml
// @Success 200
// @Router /twilio/voice/gather [post]
func (h *TwilioHandler) VoiceGather(c *gin.Context) {
	input := commands.GatherInput{
		ProviderCallID: c.PostForm("CallSid"),
		SpeechResult:   c.PostForm("SpeechResult"),
		Digits:         c.PostForm("Digits"),
	}

	outcome, err := h.availability.RecordGatherInput(c.Request.Context(), input)
	if err != nil {
		h.respondGatherFailure(c, input.ProviderCallID, err)
		return
	}

	xml, err := telephony.ConfirmationTwiML(outcome.FirstStart, outcome.Timezone)
	if err != nil {
		slog.Error("failed to render confirmation", "error", err.Error())
		c.Data(http.StatusOK, "application/xml", []byte(emptyTwiML))
		return
	}
	c.Data(http.StatusOK, "application/xml", []byte(xml))
}

func (h *TwilioHandler) respondGatherFailure(c *gin.Context, providerCallID string, err error) {
	var message string
	switch {
	case errors.Is(err, commands.ErrCallNotFound):
		message = "Thanks. I could not match this call, but we will follow up manually. Goodbye."
	case errors.Is(err, commands.ErrMeetingRequestNotFound), errors.Is(err, commands.ErrInvalidScheduleConfig):
		message = "Thanks. The meeting request configuration is missing, so we will follow up later. Goodbye."
	default:
		slog.Error("gather handling failed", "provider_call_id", providerCallID, "error", err.Error())
		message = "Thanks. Something went wrong on our side, but we will follow up. Goodbye."
	}

	xml, renderErr := telephony.GoodbyeTwiML(message)
	if renderErr != nil {
		slog.Error("failed to render goodbye", "error", renderErr.Error())
		c.Data(http.StatusOK, "application/xml", []byte(emptyTwiML))
		return
	}
	c.Data(http.StatusOK, "application/xml", []byte(xml))
}
