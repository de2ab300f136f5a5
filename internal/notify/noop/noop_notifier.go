package noop

import (
	"context"
	"log/slog"
	"time"

	"agendados/internal/domain"
	"agendados/internal/notify"
	"agendados/internal/port"
)

type noopNotifier struct {
	logger *slog.Logger
	loc    *time.Location
}

// NewNoopNotifier creates a Notifier that only logs reminders.
func NewNoopNotifier(logger *slog.Logger, loc *time.Location) port.Notifier {
	return &noopNotifier{logger: logger, loc: loc}
}

func (n *noopNotifier) SendReminder(ctx context.Context, agent *domain.Agent, client *domain.ClientRecord) error {
	msg := notify.BuildReminder(agent, client, n.loc)
	n.logger.InfoContext(ctx, "reminder (noop)",
		slog.String("agent_email", agent.Email),
		slog.String("client_id", client.ID.String()),
		slog.String("subject", msg.Subject),
	)
	return nil
}
