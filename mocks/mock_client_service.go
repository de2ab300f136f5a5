package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"agendados/internal/domain"
	"agendados/internal/service"
)

// MockClientService is a mock implementation of service.ClientService.
type MockClientService struct {
	mock.Mock
}

func (m *MockClientService) NewDraft(ctx context.Context) (domain.ClientDraft, error) {
	args := m.Called(ctx)
	return args.Get(0).(domain.ClientDraft), args.Error(1)
}

func (m *MockClientService) Save(ctx context.Context, agentID uuid.UUID, draft domain.ClientDraft) (*domain.ClientRecord, error) {
	args := m.Called(ctx, agentID, draft)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ClientRecord), args.Error(1)
}

func (m *MockClientService) GetByID(ctx context.Context, agentID, id uuid.UUID) (*domain.ClientRecord, error) {
	args := m.Called(ctx, agentID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ClientRecord), args.Error(1)
}

func (m *MockClientService) List(ctx context.Context, agentID uuid.UUID, offset, limit int) ([]domain.ClientRecord, int, error) {
	args := m.Called(ctx, agentID, offset, limit)
	if args.Get(0) == nil {
		return nil, args.Int(1), args.Error(2)
	}
	return args.Get(0).([]domain.ClientRecord), args.Int(1), args.Error(2)
}

func (m *MockClientService) ListUpcoming(ctx context.Context, agentID uuid.UUID) ([]domain.ClientRecord, error) {
	args := m.Called(ctx, agentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ClientRecord), args.Error(1)
}

func (m *MockClientService) SetAlarm(ctx context.Context, agentID, id uuid.UUID, active bool) error {
	args := m.Called(ctx, agentID, id, active)
	return args.Error(0)
}

func (m *MockClientService) DeleteMany(ctx context.Context, agentID uuid.UUID, ids []uuid.UUID) (int, error) {
	args := m.Called(ctx, agentID, ids)
	return args.Int(0), args.Error(1)
}

func (m *MockClientService) LookupByPhone(ctx context.Context, agentID uuid.UUID, spoken string) (*domain.ClientRecord, error) {
	args := m.Called(ctx, agentID, spoken)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ClientRecord), args.Error(1)
}

func (m *MockClientService) SearchByName(ctx context.Context, agentID uuid.UUID, spoken string) ([]service.NameMatch, error) {
	args := m.Called(ctx, agentID, spoken)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]service.NameMatch), args.Error(1)
}
