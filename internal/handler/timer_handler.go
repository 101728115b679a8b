package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	apperrors "timers/internal/errors"
	"timers/internal/middleware"
	"timers/internal/model"
	"timers/internal/service"
)

type TimerHandler struct {
	timerService *service.TimerService
}

type startTimerRequest struct {
	Description string `json:"description"`
}

func NewTimerHandler(timerService *service.TimerService) *TimerHandler {
	return &TimerHandler{timerService: timerService}
}

func (h *TimerHandler) List(c *gin.Context) {
	user := middleware.CurrentUser(c)
	if user == nil {
		writeError(c, apperrors.Unauthorized("", "please login or signup"))
		return
	}

	var filter model.TimerFilter
	if raw := c.Query("active"); raw != "" {
		active, err := strconv.ParseBool(raw)
		if err != nil {
			writeError(c, apperrors.BadRequest(apperrors.CodeInvalidFilter, "active must be true or false"))
			return
		}
		filter.Active = &active
	}

	timers, apiErr := h.timerService.ListTimers(c.Request.Context(), user, filter)
	if apiErr != nil {
		writeError(c, apiErr)
		return
	}
	c.JSON(http.StatusOK, timers)
}

func (h *TimerHandler) Start(c *gin.Context) {
	user := middleware.CurrentUser(c)
	if user == nil {
		writeError(c, apperrors.Unauthorized("", "please login or signup"))
		return
	}

	var req startTimerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeInvalidJSON(c)
		return
	}

	started, apiErr := h.timerService.StartTimer(c.Request.Context(), user, req.Description)
	if apiErr != nil {
		writeError(c, apiErr)
		return
	}
	c.JSON(http.StatusOK, started)
}

func (h *TimerHandler) Stop(c *gin.Context) {
	user := middleware.CurrentUser(c)
	if user == nil {
		writeError(c, apperrors.Unauthorized("", "please login or signup"))
		return
	}

	if apiErr := h.timerService.StopTimer(c.Request.Context(), user, c.Param("id")); apiErr != nil {
		writeError(c, apiErr)
		return
	}
	c.Status(http.StatusNoContent)
}
