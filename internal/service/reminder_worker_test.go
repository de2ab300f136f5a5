package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"agendados/internal/domain"
	"agendados/internal/schedule"
	"agendados/internal/service"
	"agendados/mocks"
)

func newReminderWorker(clients *mocks.MockClientRepo, agents *mocks.MockAgentRepo, notifier *mocks.MockNotifier, poll time.Duration) *service.ReminderWorker {
	return service.NewReminderWorker(clients, agents, notifier, schedule.FixedClock{T: saturdayNoon}, service.ReminderConfig{
		PollInterval: poll,
		BatchSize:    10,
		Concurrency:  2,
	}, discardLogger())
}

func TestReminderWorker_RunOnce(t *testing.T) {
	clients := new(mocks.MockClientRepo)
	agents := new(mocks.MockAgentRepo)
	notifier := new(mocks.MockNotifier)
	w := newReminderWorker(clients, agents, notifier, time.Minute)

	active := &domain.Agent{ID: uuid.New(), Email: "a@agendados.pe", IsActive: true}
	inactive := &domain.Agent{ID: uuid.New(), Email: "b@agendados.pe"}
	due := []domain.ClientRecord{
		{ID: uuid.New(), AgentID: active.ID, Name: "ANA"},
		{ID: uuid.New(), AgentID: inactive.ID, Name: "LUIS"},
		{ID: uuid.New(), AgentID: active.ID, Name: "ROSA"},
	}

	clients.On("ClaimDue", mock.Anything, saturdayNoon, 10).Return(due, nil)
	agents.On("GetByID", mock.Anything, active.ID).Return(active, nil)
	agents.On("GetByID", mock.Anything, inactive.ID).Return(inactive, nil)
	notifier.On("SendReminder", mock.Anything, active, mock.MatchedBy(func(c *domain.ClientRecord) bool {
		return c.Name == "ANA"
	})).Return(nil)
	notifier.On("SendReminder", mock.Anything, active, mock.MatchedBy(func(c *domain.ClientRecord) bool {
		return c.Name == "ROSA"
	})).Return(errors.New("ses throttled"))

	sent := w.RunOnce(context.Background())

	assert.Equal(t, 1, sent)
	notifier.AssertNumberOfCalls(t, "SendReminder", 2)
}

func TestReminderWorker_RunOnce_ClaimError(t *testing.T) {
	clients := new(mocks.MockClientRepo)
	notifier := new(mocks.MockNotifier)
	w := newReminderWorker(clients, new(mocks.MockAgentRepo), notifier, time.Minute)

	clients.On("ClaimDue", mock.Anything, mock.Anything, mock.Anything).Return(nil, errors.New("db down"))

	assert.Equal(t, 0, w.RunOnce(context.Background()))
	notifier.AssertNotCalled(t, "SendReminder", mock.Anything, mock.Anything, mock.Anything)
}

func TestReminderWorker_Start_StopsOnCancel(t *testing.T) {
	clients := new(mocks.MockClientRepo)
	w := newReminderWorker(clients, new(mocks.MockAgentRepo), new(mocks.MockNotifier), 10*time.Millisecond)

	clients.On("ClaimDue", mock.Anything, mock.Anything, mock.Anything).Return([]domain.ClientRecord{}, nil)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		w.Start(ctx)
		close(done)
	}()

	time.Sleep(50 * time.Millisecond)
	cancel()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("worker did not stop after cancel")
	}
	clients.AssertCalled(t, "ClaimDue", mock.Anything, mock.Anything, 10)
}
