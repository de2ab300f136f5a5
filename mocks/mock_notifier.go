package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"agendados/internal/domain"
)

// MockNotifier is a mock implementation of port.Notifier.
type MockNotifier struct {
	mock.Mock
}

func (m *MockNotifier) SendReminder(ctx context.Context, agent *domain.Agent, client *domain.ClientRecord) error {
	args := m.Called(ctx, agent, client)
	return args.Error(0)
}
