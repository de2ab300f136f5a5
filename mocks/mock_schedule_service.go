package mocks

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"agendados/internal/domain"
	"agendados/internal/service"
)

// MockScheduleService is a mock implementation of service.ScheduleService.
type MockScheduleService struct {
	mock.Mock
}

func (m *MockScheduleService) Options(ctx context.Context) (*service.DateOptions, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.DateOptions), args.Error(1)
}

func (m *MockScheduleService) DefaultDate(ctx context.Context) (time.Time, error) {
	args := m.Called(ctx)
	return args.Get(0).(time.Time), args.Error(1)
}

func (m *MockScheduleService) Evaluate(ctx context.Context, input service.EvaluateInput) (*service.Evaluation, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.Evaluation), args.Error(1)
}

func (m *MockScheduleService) ScheduledAt(date string, hour, minute int, isAM bool) (time.Time, error) {
	args := m.Called(date, hour, minute, isAM)
	return args.Get(0).(time.Time), args.Error(1)
}

func (m *MockScheduleService) Now() time.Time {
	args := m.Called()
	return args.Get(0).(time.Time)
}

func (m *MockScheduleService) AddHoliday(ctx context.Context, input service.AddHolidayInput) (*domain.Holiday, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Holiday), args.Error(1)
}

func (m *MockScheduleService) ListHolidays(ctx context.Context) ([]domain.Holiday, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Holiday), args.Error(1)
}

func (m *MockScheduleService) DeleteHoliday(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
