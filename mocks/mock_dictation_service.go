package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"agendados/internal/dictation"
	"agendados/internal/service"
)

// MockDictationService is a mock implementation of service.DictationService.
type MockDictationService struct {
	mock.Mock
}

func (m *MockDictationService) Parse(text string) dictation.Result {
	args := m.Called(text)
	return args.Get(0).(dictation.Result)
}

func (m *MockDictationService) Apply(ctx context.Context, input service.ApplyDictationInput) (*service.DictationOutcome, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.DictationOutcome), args.Error(1)
}
