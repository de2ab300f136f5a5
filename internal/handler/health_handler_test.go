package handler_test

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"agendados/internal/handler"
)

type fakePinger struct{ err error }

func (p fakePinger) PingContext(context.Context) error { return p.err }

func TestHealthHandler_Readiness(t *testing.T) {
	c, w := newContext(t, http.MethodGet, "/readyz", nil, uuid.Nil)
	handler.NewHealthHandler(fakePinger{}).Readiness(c)
	assert.Equal(t, http.StatusOK, w.Code)

	c, w = newContext(t, http.MethodGet, "/readyz", nil, uuid.Nil)
	handler.NewHealthHandler(fakePinger{err: errors.New("down")}).Readiness(c)
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	assert.Contains(t, w.Body.String(), "database not reachable")
}

func TestHealthHandler_Liveness(t *testing.T) {
	c, w := newContext(t, http.MethodGet, "/healthz", nil, uuid.Nil)
	handler.NewHealthHandler(fakePinger{}).Liveness(c)
	assert.JSONEq(t, `{"status":"ok"}`, w.Body.String())
}
