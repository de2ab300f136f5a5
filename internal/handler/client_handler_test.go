package handler_test

import (
	"errors"
	"net/http"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"agendados/internal/domain"
	"agendados/internal/handler"
	"agendados/internal/service"
	"agendados/mocks"
)

func TestClientHandler_Save_Created(t *testing.T) {
	svc := new(mocks.MockClientService)
	h := handler.NewClientHandler(svc)
	agentID := uuid.New()

	draft := domain.ClientDraft{Name: "Ana", Phone: "987654321", ScheduledDate: "2026-10-19", Hour: 10, Minute: 30, IsAM: true}
	svc.On("Save", mock.Anything, agentID, draft).Return(&domain.ClientRecord{ID: uuid.New(), Name: "ANA"}, nil)

	c, w := newContext(t, http.MethodPost, "/api/v1/clients", draft, agentID)
	h.Save(c)

	assert.Equal(t, http.StatusCreated, w.Code)
	svc.AssertExpectations(t)
}

func TestClientHandler_Save_ValidationErrors(t *testing.T) {
	svc := new(mocks.MockClientService)
	h := handler.NewClientHandler(svc)
	agentID := uuid.New()

	svc.On("Save", mock.Anything, agentID, mock.AnythingOfType("domain.ClientDraft")).
		Return(nil, errors.Join(domain.ErrMissingName, domain.ErrInvalidPhone))

	c, w := newContext(t, http.MethodPost, "/api/v1/clients", domain.ClientDraft{}, agentID)
	h.Save(c)

	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	resp := decode(t, w)
	assert.Equal(t, "INVALID_CLIENT", resp.Error.Code)
	assert.Contains(t, resp.Error.Message, "9 digits")
}

func TestClientHandler_RequiresAgent(t *testing.T) {
	h := handler.NewClientHandler(new(mocks.MockClientService))

	c, w := newContext(t, http.MethodGet, "/api/v1/clients", nil, uuid.Nil)
	h.List(c)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestClientHandler_List_Paginated(t *testing.T) {
	svc := new(mocks.MockClientService)
	h := handler.NewClientHandler(svc)
	agentID := uuid.New()

	svc.On("List", mock.Anything, agentID, 0, 20).Return([]domain.ClientRecord{{Name: "ANA"}}, 1, nil)

	c, w := newContext(t, http.MethodGet, "/api/v1/clients?limit=500", nil, agentID)
	h.List(c)

	assert.Equal(t, http.StatusOK, w.Code)
	resp := decode(t, w)
	assert.Equal(t, 1, resp.Meta.Total)
	assert.Equal(t, 20, resp.Meta.Limit)
}

func TestClientHandler_GetByID_InvalidID(t *testing.T) {
	h := handler.NewClientHandler(new(mocks.MockClientService))

	c, w := newContext(t, http.MethodGet, "/api/v1/clients/abc", nil, uuid.New())
	c.Params = append(c.Params, ginParam("id", "abc"))
	h.GetByID(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestClientHandler_SetAlarm(t *testing.T) {
	svc := new(mocks.MockClientService)
	h := handler.NewClientHandler(svc)
	agentID, id := uuid.New(), uuid.New()

	svc.On("SetAlarm", mock.Anything, agentID, id, false).Return(nil)

	c, w := newContext(t, http.MethodPut, "/api/v1/clients/"+id.String()+"/alarm", map[string]bool{"active": false}, agentID)
	c.Params = append(c.Params, ginParam("id", id.String()))
	h.SetAlarm(c)

	assert.Equal(t, http.StatusOK, w.Code)
	svc.AssertExpectations(t)
}

func TestClientHandler_SetAlarm_RequiresActive(t *testing.T) {
	h := handler.NewClientHandler(new(mocks.MockClientService))
	id := uuid.New()

	c, w := newContext(t, http.MethodPut, "/api/v1/clients/"+id.String()+"/alarm", map[string]string{}, uuid.New())
	c.Params = append(c.Params, ginParam("id", id.String()))
	h.SetAlarm(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestClientHandler_DeleteMany(t *testing.T) {
	svc := new(mocks.MockClientService)
	h := handler.NewClientHandler(svc)
	agentID := uuid.New()
	ids := []uuid.UUID{uuid.New(), uuid.New()}

	svc.On("DeleteMany", mock.Anything, agentID, ids).Return(2, nil)

	c, w := newContext(t, http.MethodPost, "/api/v1/clients/delete", handler.DeleteClientsRequest{IDs: ids}, agentID)
	h.DeleteMany(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"success":true,"data":{"deleted":2}}`, w.Body.String())
}

func TestClientHandler_Lookup_NotFound(t *testing.T) {
	svc := new(mocks.MockClientService)
	h := handler.NewClientHandler(svc)
	agentID := uuid.New()

	svc.On("LookupByPhone", mock.Anything, agentID, "987654321").Return(nil, domain.ErrClientNotFound)

	c, w := newContext(t, http.MethodPost, "/api/v1/clients/lookup", handler.DictationRequest{Text: "987654321"}, agentID)
	h.Lookup(c)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "CLIENT_NOT_FOUND", decode(t, w).Error.Code)
}

func TestClientHandler_Search(t *testing.T) {
	svc := new(mocks.MockClientService)
	h := handler.NewClientHandler(svc)
	agentID := uuid.New()

	svc.On("SearchByName", mock.Anything, agentID, "maria lopes").
		Return([]service.NameMatch{{Client: domain.ClientRecord{Name: "MARIA LOPEZ"}, Score: 0.96}}, nil)

	c, w := newContext(t, http.MethodPost, "/api/v1/clients/search", handler.DictationRequest{Text: "maria lopes"}, agentID)
	h.Search(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "MARIA LOPEZ")
}
