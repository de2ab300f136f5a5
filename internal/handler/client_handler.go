package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"agendados/internal/domain"
	"agendados/internal/service"
)

// ClientHandler handles client record endpoints.
type ClientHandler struct {
	clientService service.ClientService
}

// NewClientHandler creates a new ClientHandler.
func NewClientHandler(clientService service.ClientService) *ClientHandler {
	return &ClientHandler{clientService: clientService}
}

// NewDraft handles GET /api/v1/clients/draft
// @Summary Get an empty client form
// @Description Returns a blank draft scheduled at 10:30 AM on the next business day.
// @Tags clients
// @Produce json
// @Success 200 {object} Response{data=domain.ClientDraft}
// @Security BearerAuth
// @Router /clients/draft [get]
func (h *ClientHandler) NewDraft(c *gin.Context) {
	draft, err := h.clientService.NewDraft(c.Request.Context())
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, draft)
}

// Save handles POST /api/v1/clients
// @Summary Save a client
// @Description Creates the client, or overwrites the one with the same phone.
// @Tags clients
// @Accept json
// @Produce json
// @Param body body domain.ClientDraft true "Client form"
// @Success 201 {object} Response{data=domain.ClientRecord}
// @Failure 422 {object} ErrorResponseBody "Missing name, invalid phone or schedule"
// @Security BearerAuth
// @Router /clients [post]
func (h *ClientHandler) Save(c *gin.Context) {
	agentID, ok := extractAgentID(c)
	if !ok {
		return
	}

	var draft domain.ClientDraft
	if err := c.ShouldBindJSON(&draft); err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	rec, err := h.clientService.Save(c.Request.Context(), agentID, draft)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondCreated(c, rec)
}

// List handles GET /api/v1/clients
// @Summary List clients
// @Tags clients
// @Produce json
// @Param offset query int false "Offset for pagination" default(0)
// @Param limit query int false "Limit for pagination (max 100)" default(20)
// @Success 200 {object} Response{data=[]domain.ClientRecord,meta=PagMeta}
// @Security BearerAuth
// @Router /clients [get]
func (h *ClientHandler) List(c *gin.Context) {
	agentID, ok := extractAgentID(c)
	if !ok {
		return
	}

	offset, limit := parsePagination(c)
	recs, total, err := h.clientService.List(c.Request.Context(), agentID, offset, limit)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondPaginated(c, recs, PagMeta{Total: total, Offset: offset, Limit: limit})
}

// Upcoming handles GET /api/v1/clients/upcoming
// @Summary List pending callbacks
// @Tags clients
// @Produce json
// @Success 200 {object} Response{data=[]domain.ClientRecord}
// @Security BearerAuth
// @Router /clients/upcoming [get]
func (h *ClientHandler) Upcoming(c *gin.Context) {
	agentID, ok := extractAgentID(c)
	if !ok {
		return
	}

	recs, err := h.clientService.ListUpcoming(c.Request.Context(), agentID)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, recs)
}

// GetByID handles GET /api/v1/clients/:id
// @Summary Get a client
// @Tags clients
// @Produce json
// @Param id path string true "Client ID"
// @Success 200 {object} Response{data=domain.ClientRecord}
// @Failure 404 {object} ErrorResponseBody "Not found"
// @Security BearerAuth
// @Router /clients/{id} [get]
func (h *ClientHandler) GetByID(c *gin.Context) {
	agentID, ok := extractAgentID(c)
	if !ok {
		return
	}
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	rec, err := h.clientService.GetByID(c.Request.Context(), agentID, id)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, rec)
}

// SetAlarm handles PUT /api/v1/clients/:id/alarm
// @Summary Turn a callback alarm on or off
// @Tags clients
// @Accept json
// @Produce json
// @Param id path string true "Client ID"
// @Param body body AlarmRequest true "Alarm state"
// @Success 200 {object} Response{data=MessageResponse}
// @Failure 404 {object} ErrorResponseBody "Not found"
// @Security BearerAuth
// @Router /clients/{id}/alarm [put]
func (h *ClientHandler) SetAlarm(c *gin.Context) {
	agentID, ok := extractAgentID(c)
	if !ok {
		return
	}
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var req AlarmRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	if err := h.clientService.SetAlarm(c.Request.Context(), agentID, id, *req.Active); err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, MessageResponse{Message: "alarm updated"})
}

// DeleteMany handles POST /api/v1/clients/delete
// @Summary Delete several clients
// @Tags clients
// @Accept json
// @Produce json
// @Param body body DeleteClientsRequest true "Client IDs"
// @Success 200 {object} Response{data=DeleteClientsResponse}
// @Security BearerAuth
// @Router /clients/delete [post]
func (h *ClientHandler) DeleteMany(c *gin.Context) {
	agentID, ok := extractAgentID(c)
	if !ok {
		return
	}

	var req DeleteClientsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	n, err := h.clientService.DeleteMany(c.Request.Context(), agentID, req.IDs)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, DeleteClientsResponse{Deleted: n})
}

// Lookup handles POST /api/v1/clients/lookup
// @Summary Find a client by a spoken phone number
// @Tags clients
// @Accept json
// @Produce json
// @Param body body DictationRequest true "Spoken phone number"
// @Success 200 {object} Response{data=domain.ClientRecord}
// @Failure 404 {object} ErrorResponseBody "No client with that phone"
// @Security BearerAuth
// @Router /clients/lookup [post]
func (h *ClientHandler) Lookup(c *gin.Context) {
	agentID, ok := extractAgentID(c)
	if !ok {
		return
	}

	var req DictationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	rec, err := h.clientService.LookupByPhone(c.Request.Context(), agentID, req.Text)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, rec)
}

// Search handles POST /api/v1/clients/search
// @Summary Find clients by a spoken name
// @Tags clients
// @Accept json
// @Produce json
// @Param body body DictationRequest true "Spoken name"
// @Success 200 {object} Response{data=[]service.NameMatch}
// @Failure 404 {object} ErrorResponseBody "No similar name"
// @Security BearerAuth
// @Router /clients/search [post]
func (h *ClientHandler) Search(c *gin.Context) {
	agentID, ok := extractAgentID(c)
	if !ok {
		return
	}

	var req DictationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	matches, err := h.clientService.SearchByName(c.Request.Context(), agentID, req.Text)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, matches)
}
