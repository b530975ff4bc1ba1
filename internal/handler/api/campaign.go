package api

import (
	"errors"
	"net/http"

	reqdto "meetline/internal/handler/dto/request"
	resdto "meetline/internal/handler/dto/response"
	"meetline/internal/handler/httperr"
	"meetline/internal/usecase/commands"

	"github.com/gin-gonic/gin"
)

type CampaignHandler struct {
	cmds commands.CampaignCommands
}

func NewCampaignHandler(cmds commands.CampaignCommands) *CampaignHandler {
	return &CampaignHandler{cmds: cmds}
}

// @Summary Launch campaign
// @Description Create a meeting request, upsert the leads, and dial each one
// @Tags campaigns
// @Accept json
// @Produce json
// @Param request body reqdto.LaunchCampaignRequest true "Campaign definition"
// @Success 201 {object} resdto.LaunchCampaignResponse
// @Failure 400 {object} map[string]string
// @Router /campaigns [post]
func (h *CampaignHandler) Launch(c *gin.Context) {
	var req reqdto.LaunchCampaignRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}

	result, err := h.cmds.LaunchCampaign(c.Request.Context(), req.ToCommand())
	if err != nil {
		if errors.Is(err, commands.ErrInvalidScheduleConfig) {
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid schedule configuration", nil)
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Launch campaign failed", nil)
		return
	}

	c.JSON(http.StatusCreated, resdto.FromLaunchCampaignResult(result))
}
