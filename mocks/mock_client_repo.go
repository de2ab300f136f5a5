package mocks

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"agendados/internal/domain"
)

// MockClientRepo is a mock implementation of port.ClientRepository.
type MockClientRepo struct {
	mock.Mock
}

func (m *MockClientRepo) Upsert(ctx context.Context, rec *domain.ClientRecord) error {
	args := m.Called(ctx, rec)
	return args.Error(0)
}

func (m *MockClientRepo) GetByID(ctx context.Context, agentID, id uuid.UUID) (*domain.ClientRecord, error) {
	args := m.Called(ctx, agentID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ClientRecord), args.Error(1)
}

func (m *MockClientRepo) GetByPhone(ctx context.Context, agentID uuid.UUID, phone string) (*domain.ClientRecord, error) {
	args := m.Called(ctx, agentID, phone)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ClientRecord), args.Error(1)
}

func (m *MockClientRepo) ListByAgent(ctx context.Context, agentID uuid.UUID, offset, limit int) ([]domain.ClientRecord, int, error) {
	args := m.Called(ctx, agentID, offset, limit)
	if args.Get(0) == nil {
		return nil, args.Int(1), args.Error(2)
	}
	return args.Get(0).([]domain.ClientRecord), args.Int(1), args.Error(2)
}

func (m *MockClientRepo) ListAll(ctx context.Context, agentID uuid.UUID) ([]domain.ClientRecord, error) {
	args := m.Called(ctx, agentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ClientRecord), args.Error(1)
}

func (m *MockClientRepo) ListUpcoming(ctx context.Context, agentID uuid.UUID, from time.Time) ([]domain.ClientRecord, error) {
	args := m.Called(ctx, agentID, from)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ClientRecord), args.Error(1)
}

func (m *MockClientRepo) SetAlarm(ctx context.Context, agentID, id uuid.UUID, active bool) error {
	args := m.Called(ctx, agentID, id, active)
	return args.Error(0)
}

func (m *MockClientRepo) DeleteMany(ctx context.Context, agentID uuid.UUID, ids []uuid.UUID) (int, error) {
	args := m.Called(ctx, agentID, ids)
	return args.Int(0), args.Error(1)
}

func (m *MockClientRepo) ClaimDue(ctx context.Context, now time.Time, limit int) ([]domain.ClientRecord, error) {
	args := m.Called(ctx, now, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ClientRecord), args.Error(1)
}
