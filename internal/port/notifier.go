package port

import (
	"context"

	"agendados/internal/domain"
)

// Notifier delivers callback reminders to agents.
type Notifier interface {
	SendReminder(ctx context.Context, agent *domain.Agent, client *domain.ClientRecord) error
}
