package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"agendados/internal/domain"
)

// MockHolidayRepo is a mock implementation of port.HolidayRepository.
type MockHolidayRepo struct {
	mock.Mock
}

func (m *MockHolidayRepo) Create(ctx context.Context, h *domain.Holiday) error {
	args := m.Called(ctx, h)
	return args.Error(0)
}

func (m *MockHolidayRepo) List(ctx context.Context) ([]domain.Holiday, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Holiday), args.Error(1)
}

func (m *MockHolidayRepo) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
