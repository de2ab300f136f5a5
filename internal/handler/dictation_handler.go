package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"agendados/internal/dictation"
	"agendados/internal/service"
)

// DictationHandler handles dictation endpoints.
type DictationHandler struct {
	dictationService service.DictationService
}

// NewDictationHandler creates a new DictationHandler.
func NewDictationHandler(dictationService service.DictationService) *DictationHandler {
	return &DictationHandler{dictationService: dictationService}
}

// Parse handles POST /api/v1/dictation/parse
// @Summary Parse a dictation
// @Description Extracts client fields from free-form Spanish dictation. Fields not mentioned are omitted.
// @Tags dictation
// @Accept json
// @Produce json
// @Param body body DictationRequest true "Dictated text"
// @Success 200 {object} Response{data=dictation.Result}
// @Failure 400 {object} ErrorResponseBody "Validation error"
// @Security BearerAuth
// @Router /dictation/parse [post]
func (h *DictationHandler) Parse(c *gin.Context) {
	var req DictationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	RespondOK(c, h.dictationService.Parse(req.Text))
}

// Apply handles POST /api/v1/dictation/apply
// @Summary Merge a dictation into a client draft
// @Tags dictation
// @Accept json
// @Produce json
// @Param body body service.ApplyDictationInput true "Dictated text and current draft"
// @Success 200 {object} Response{data=service.DictationOutcome}
// @Failure 400 {object} ErrorResponseBody "Validation error"
// @Security BearerAuth
// @Router /dictation/apply [post]
func (h *DictationHandler) Apply(c *gin.Context) {
	var input service.ApplyDictationInput
	if err := c.ShouldBindJSON(&input); err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	out, err := h.dictationService.Apply(c.Request.Context(), input)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, out)
}

// Phone handles POST /api/v1/dictation/phone
// @Summary Extract a spoken phone number
// @Tags dictation
// @Accept json
// @Produce json
// @Param body body DictationRequest true "Dictated text"
// @Success 200 {object} Response{data=PhoneResponse}
// @Failure 400 {object} ErrorResponseBody "Validation error"
// @Security BearerAuth
// @Router /dictation/phone [post]
func (h *DictationHandler) Phone(c *gin.Context) {
	var req DictationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	phone := dictation.ExtractPhoneDigits(req.Text)
	RespondOK(c, PhoneResponse{Phone: phone, Found: phone != ""})
}
