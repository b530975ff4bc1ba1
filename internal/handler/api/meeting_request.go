package api

import (
	"errors"
	"net/http"
	"strconv"

	reqdto "meetline/internal/handler/dto/request"
	resdto "meetline/internal/handler/dto/response"
	"meetline/internal/handler/httperr"
	"meetline/internal/usecase/commands"
	"meetline/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type MeetingRequestHandler struct {
	scheduling   commands.SchedulingCommands
	availability commands.AvailabilityCommands
	q            queries.MeetingRequestQueries
}

func NewMeetingRequestHandler(
	scheduling commands.SchedulingCommands,
	availability commands.AvailabilityCommands,
	q queries.MeetingRequestQueries,
) *MeetingRequestHandler {
	return &MeetingRequestHandler{scheduling: scheduling, availability: availability, q: q}
}

// @Summary Create meeting request
// @Description Create a meeting request with auto-generated slots over its scheduling window
// @Tags meeting-requests
// @Accept json
// @Produce json
// @Param request body reqdto.CreateMeetingRequestRequest true "Create meeting request"
// @Success 201 {object} resdto.MeetingRequestResponse
// @Failure 400 {object} map[string]string
// @Router /meeting-requests [post]
func (h *MeetingRequestHandler) Create(c *gin.Context) {
	var req reqdto.CreateMeetingRequestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}

	result, err := h.scheduling.CreateMeetingRequest(c.Request.Context(), req.ToCommand())
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Create meeting request failed", nil)
		return
	}

	detail, err := h.q.GetByID(c.Request.Context(), result.MeetingRequestID)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to load meeting request", nil)
		return
	}
	c.JSON(http.StatusCreated, resdto.FromMeetingRequestDetail(detail))
}

// @Summary Get meeting request
// @Description Get a meeting request and its slots
// @Tags meeting-requests
// @Produce json
// @Param id path string true "Meeting request ID"
// @Success 200 {object} resdto.MeetingRequestResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /meeting-requests/{id} [get]
func (h *MeetingRequestHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", nil)
		return
	}

	detail, err := h.q.GetByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, queries.ErrMeetingRequestNotFound) {
			httperr.AbortWithError(c, http.StatusNotFound, err, "Meeting request not found", nil)
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to load meeting request", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromMeetingRequestDetail(detail))
}

// @Summary Replace availability
// @Description Replace a lead's candidate availability windows for this request
// @Tags meeting-requests
// @Accept json
// @Produce json
// @Param id path string true "Meeting request ID"
// @Param request body reqdto.ReplaceAvailabilityRequest true "Availability windows"
// @Success 200 {object} resdto.ReplaceAvailabilityResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /meeting-requests/{id}/availability [post]
func (h *MeetingRequestHandler) ReplaceAvailability(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", nil)
		return
	}

	var req reqdto.ReplaceAvailabilityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}

	windows := req.ToWindows()
	ids, err := h.availability.ReplaceAvailability(c.Request.Context(), id, req.LeadID, windows)
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrMeetingRequestNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Meeting request not found", nil)
		case errors.Is(err, commands.ErrRequestNotActive):
			httperr.AbortWithError(c, http.StatusConflict, err, "Meeting request is not active", nil)
		case errors.Is(err, commands.ErrInvalidAvailabilityWindow):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid availability window", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to record availability", nil)
		}
		return
	}

	items := make([]resdto.AvailabilityItemResponse, len(ids))
	for i, availabilityID := range ids {
		items[i] = resdto.AvailabilityItemResponse{
			ID:        availabilityID,
			StartTime: windows[i].StartTime,
			EndTime:   windows[i].EndTime,
		}
	}
	c.JSON(http.StatusOK, resdto.ReplaceAvailabilityResponse{
		MeetingRequestID: id,
		LeadID:           req.LeadID,
		Availabilities:   items,
	})
}

// @Summary Suggested slot
// @Description Compute the best slot from current availabilities without booking it
// @Tags meeting-requests
// @Produce json
// @Param id path string true "Meeting request ID"
// @Param min_participants query int false "Minimum attending participants (default 1)"
// @Success 200 {object} resdto.SuggestedSlotResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /meeting-requests/{id}/suggested-slot [get]
func (h *MeetingRequestHandler) SuggestedSlot(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", nil)
		return
	}

	slot, err := h.q.SuggestedSlot(c.Request.Context(), id, minParticipants(c))
	if err != nil {
		switch {
		case errors.Is(err, queries.ErrMeetingRequestNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Meeting request not found", nil)
		case errors.Is(err, queries.ErrInvalidConfiguration):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid schedule configuration", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to compute slot", nil)
		}
		return
	}

	c.JSON(http.StatusOK, resdto.SuggestedSlotResponse{MeetingRequestID: id, Slot: slot})
}

// @Summary Confirm best slot
// @Description Book the best slot: create meetings, mark availabilities selected, complete the request
// @Tags meeting-requests
// @Produce json
// @Param id path string true "Meeting request ID"
// @Param min_participants query int false "Minimum attending participants (default 1)"
// @Success 200 {object} resdto.ConfirmBestSlotResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /meeting-requests/{id}/confirm-best-slot [post]
func (h *MeetingRequestHandler) ConfirmBestSlot(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", nil)
		return
	}

	result, err := h.scheduling.ConfirmBestSlot(c.Request.Context(), id, minParticipants(c))
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrMeetingRequestNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Meeting request not found", nil)
		case errors.Is(err, commands.ErrRequestNotActive):
			httperr.AbortWithError(c, http.StatusConflict, err, "Meeting request is not active", nil)
		case errors.Is(err, commands.ErrNoConfirmableSlot):
			httperr.AbortWithError(c, http.StatusConflict, err, "No suitable slot found to confirm", nil)
		case errors.Is(err, commands.ErrInvalidScheduleConfig):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid schedule configuration", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to confirm slot", nil)
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromConfirmBestSlotResult(id, result))
}

// @Summary List availabilities
// @Description List every recorded availability window for this request
// @Tags meeting-requests
// @Produce json
// @Param id path string true "Meeting request ID"
// @Success 200 {object} resdto.AvailabilityListResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /meeting-requests/{id}/availabilities [get]
func (h *MeetingRequestHandler) Availabilities(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", nil)
		return
	}

	views, err := h.q.AvailabilitiesByRequest(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, queries.ErrMeetingRequestNotFound) {
			httperr.AbortWithError(c, http.StatusNotFound, err, "Meeting request not found", nil)
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to load availabilities", nil)
		return
	}

	c.JSON(http.StatusOK, resdto.NewAvailabilityListResponse(id, views))
}

// @Summary List meetings
// @Description List the meetings booked for this request
// @Tags meeting-requests
// @Produce json
// @Param id path string true "Meeting request ID"
// @Success 200 {object} resdto.MeetingListResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /meeting-requests/{id}/meetings [get]
func (h *MeetingRequestHandler) Meetings(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", nil)
		return
	}

	views, err := h.q.MeetingsByRequest(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, queries.ErrMeetingRequestNotFound) {
			httperr.AbortWithError(c, http.StatusNotFound, err, "Meeting request not found", nil)
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to load meetings", nil)
		return
	}

	c.JSON(http.StatusOK, resdto.NewMeetingListResponse(id, views))
}

func minParticipants(c *gin.Context) int {
	min := 1
	if v := c.Query("min_participants"); v != "" {
		if iv, err := strconv.Atoi(v); err == nil && iv > 0 {
			min = iv
		}
	}
	return min
}
