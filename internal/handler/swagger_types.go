package handler

import (
	"github.com/google/uuid"

	"agendados/internal/domain"
	"agendados/internal/service"
)

// Request and response bodies that are not service DTOs. swag reads these
// for the OpenAPI document.

// DictationRequest carries dictated or spoken text.
type DictationRequest struct {
	Text string `json:"text" binding:"required" example:"cliente Rosa Diaz celular 987 654 321 monto pp 5 mil a las 4 pm"`
}

// PhoneResponse is the phone number found in a dictation.
type PhoneResponse struct {
	Phone string `json:"phone" example:"987654321"`
	Found bool   `json:"found" example:"true"`
}

// AlarmRequest switches a callback alarm.
type AlarmRequest struct {
	Active *bool `json:"active" binding:"required" example:"false"`
}

// DeleteClientsRequest lists the clients to delete.
type DeleteClientsRequest struct {
	IDs []uuid.UUID `json:"ids" binding:"required,min=1"`
}

// DeleteClientsResponse reports how many clients were removed.
type DeleteClientsResponse struct {
	Deleted int `json:"deleted" example:"2"`
}

// RegisterResponse is returned after sign-up.
type RegisterResponse struct {
	Agent  *domain.Agent      `json:"agent"`
	Tokens *service.TokenPair `json:"tokens"`
}

// HealthResponse represents the health check response.
type HealthResponse struct {
	Status string `json:"status" example:"ok"`
	Error  string `json:"error,omitempty"`
}

// MessageResponse represents a simple message response.
type MessageResponse struct {
	Message string `json:"message" example:"alarm updated"`
}

// Response wraps a successful response with data.
type Response struct {
	Success bool        `json:"success" example:"true"`
	Data    interface{} `json:"data,omitempty"`
	Meta    *PagMeta    `json:"meta,omitempty"`
}

// ErrorResponseBody wraps an error response.
type ErrorResponseBody struct {
	Success bool      `json:"success" example:"false"`
	Error   *APIError `json:"error"`
}
