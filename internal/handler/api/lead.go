package api

import (
	"errors"
	"net/http"

	"meetline/internal/handler/httperr"
	"meetline/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type LeadHandler struct {
	q queries.LeadQueries
}

func NewLeadHandler(q queries.LeadQueries) *LeadHandler {
	return &LeadHandler{q: q}
}

// @Summary Get lead
// @Description Get a lead by id
// @Tags leads
// @Produce json
// @Param id path string true "Lead ID"
// @Success 200 {object} queries.LeadView
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /leads/{id} [get]
func (h *LeadHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", nil)
		return
	}

	view, err := h.q.GetByID(c.Request.Context(), id)
	if err != nil {
		h.abortLeadError(c, err)
		return
	}

	c.JSON(http.StatusOK, view)
}

// @Summary Find lead by phone
// @Description Look up a lead by its phone number
// @Tags leads
// @Produce json
// @Param phone query string true "Phone number"
// @Success 200 {object} queries.LeadView
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /leads [get]
func (h *LeadHandler) GetByPhone(c *gin.Context) {
	phone := c.Query("phone")
	if phone == "" {
		httperr.AbortWithError(c, http.StatusBadRequest, errors.New("missing phone"), "phone query parameter is required", nil)
		return
	}

	view, err := h.q.GetByPhone(c.Request.Context(), phone)
	if err != nil {
		h.abortLeadError(c, err)
		return
	}

	c.JSON(http.StatusOK, view)
}

func (h *LeadHandler) abortLeadError(c *gin.Context, err error) {
	if errors.Is(err, queries.ErrLeadNotFound) {
		httperr.AbortWithError(c, http.StatusNotFound, err, "Lead not found", nil)
		return
	}
	httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to load lead", nil)
}
