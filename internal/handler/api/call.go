package api

import (
	"errors"
	"net/http"

	reqdto "meetline/internal/handler/dto/request"
	resdto "meetline/internal/handler/dto/response"
	"meetline/internal/handler/httperr"
	"meetline/internal/interp"
	"meetline/internal/usecase/commands"
	"meetline/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type CallHandler struct {
	cmds        commands.CallCommands
	q           queries.CallQueries
	constraints interp.ConstraintInterpreter
}

func NewCallHandler(cmds commands.CallCommands, q queries.CallQueries, constraints interp.ConstraintInterpreter) *CallHandler {
	return &CallHandler{cmds: cmds, q: q, constraints: constraints}
}

// @Summary Get call
// @Description Get a call with its latest provider status
// @Tags calls
// @Produce json
// @Param id path string true "Call ID"
// @Success 200 {object} queries.CallView
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /calls/{id} [get]
func (h *CallHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", nil)
		return
	}

	view, err := h.q.GetByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, queries.ErrCallNotFound) {
			httperr.AbortWithError(c, http.StatusNotFound, err, "Call not found", nil)
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to load call", nil)
		return
	}

	c.JSON(http.StatusOK, view)
}

// @Summary Test outbound call
// @Description Upsert a lead for the phone number and place an outbound call to it
// @Tags calls
// @Accept json
// @Produce json
// @Param request body reqdto.TestCallRequest true "Test call request"
// @Success 201 {object} resdto.TestCallResponse
// @Failure 400 {object} map[string]string
// @Failure 502 {object} map[string]string
// @Router /calls/test [post]
func (h *CallHandler) TestCall(c *gin.Context) {
	var req reqdto.TestCallRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}

	result, err := h.cmds.TestCall(c.Request.Context(), commands.TestCallRequest{
		Phone:            req.Phone,
		Name:             req.Name,
		MeetingRequestID: req.MeetingRequestID,
	})
	if err != nil {
		if errors.Is(err, commands.ErrDialFailed) {
			httperr.AbortWithError(c, http.StatusBadGateway, err, "Failed to start call", nil)
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to create call", nil)
		return
	}

	c.JSON(http.StatusCreated, resdto.FromTestCallResult(result))
}

// @Summary Parse scheduling constraints
// @Description Turn a natural-language instruction into hard and soft constraints
// @Tags constraints
// @Accept json
// @Produce json
// @Param request body reqdto.ParseConstraintsRequest true "Instruction to parse"
// @Success 200 {object} resdto.ParsedConstraintsResponse
// @Failure 400 {object} map[string]string
// @Router /constraints/parse [post]
func (h *CallHandler) ParseConstraints(c *gin.Context) {
	var req reqdto.ParseConstraintsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}

	timezone := req.Timezone
	if timezone == "" {
		timezone = "UTC"
	}

	parsed, err := h.constraints.ParseConstraints(c.Request.Context(), req.Instruction, timezone)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to parse constraints", nil)
		return
	}

	c.JSON(http.StatusOK, resdto.FromParsedConstraints(parsed))
}
