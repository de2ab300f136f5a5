package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"agendados/internal/service"
)

// ScheduleHandler handles callback scheduling endpoints.
type ScheduleHandler struct {
	scheduleService service.ScheduleService
}

// NewScheduleHandler creates a new ScheduleHandler.
func NewScheduleHandler(scheduleService service.ScheduleService) *ScheduleHandler {
	return &ScheduleHandler{scheduleService: scheduleService}
}

// Options handles GET /api/v1/schedule/options
// @Summary Selectable callback dates
// @Tags schedule
// @Produce json
// @Success 200 {object} Response{data=service.DateOptions}
// @Security BearerAuth
// @Router /schedule/options [get]
func (h *ScheduleHandler) Options(c *gin.Context) {
	opts, err := h.scheduleService.Options(c.Request.Context())
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, opts)
}

// Evaluate handles POST /api/v1/schedule/evaluate
// @Summary Check a callback slot
// @Description Flags slots on Sundays, holidays or outside business hours.
// @Tags schedule
// @Accept json
// @Produce json
// @Param body body service.EvaluateInput true "Slot"
// @Success 200 {object} Response{data=service.Evaluation}
// @Failure 422 {object} ErrorResponseBody "Invalid date or time"
// @Security BearerAuth
// @Router /schedule/evaluate [post]
func (h *ScheduleHandler) Evaluate(c *gin.Context) {
	var input service.EvaluateInput
	if err := c.ShouldBindJSON(&input); err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	ev, err := h.scheduleService.Evaluate(c.Request.Context(), input)
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, ev)
}

// ListHolidays handles GET /api/v1/schedule/holidays
// @Summary List registered holidays
// @Tags schedule
// @Produce json
// @Success 200 {object} Response{data=[]domain.Holiday}
// @Security BearerAuth
// @Router /schedule/holidays [get]
func (h *ScheduleHandler) ListHolidays(c *gin.Context) {
	holidays, err := h.scheduleService.ListHolidays(c.Request.Context())
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, holidays)
}

// AddHoliday handles POST /api/v1/schedule/holidays
// @Summary Register a holiday
// @Tags schedule
// @Accept json
// @Produce json
// @Param body body service.AddHolidayInput true "Holiday"
// @Success 201 {object} Response{data=domain.Holiday}
// @Failure 409 {object} ErrorResponseBody "Already registered"
// @Security BearerAuth
// @Router /schedule/holidays [post]
func (h *ScheduleHandler) AddHoliday(c *gin.Context) {
	var input service.AddHolidayInput
	if err := c.ShouldBindJSON(&input); err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	holiday, err := h.scheduleService.AddHoliday(c.Request.Context(), input)
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondCreated(c, holiday)
}

// DeleteHoliday handles DELETE /api/v1/schedule/holidays/:id
// @Summary Remove a holiday
// @Tags schedule
// @Produce json
// @Param id path string true "Holiday ID"
// @Success 200 {object} Response{data=MessageResponse}
// @Failure 404 {object} ErrorResponseBody "Not found"
// @Security BearerAuth
// @Router /schedule/holidays/{id} [delete]
func (h *ScheduleHandler) DeleteHoliday(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	if err := h.scheduleService.DeleteHoliday(c.Request.Context(), id); err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, MessageResponse{Message: "holiday deleted"})
}
