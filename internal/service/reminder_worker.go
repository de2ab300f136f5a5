package service

import (
	"context"
	"log/slog"
	"time"

	"golang.org/x/sync/errgroup"

	"agendados/internal/domain"
	"agendados/internal/port"
	"agendados/internal/schedule"
)

// ReminderConfig holds settings for the reminder worker.
type ReminderConfig struct {
	PollInterval time.Duration
	BatchSize    int
	Concurrency  int
	SendTimeout  time.Duration
}

// ReminderWorker polls for due callbacks and notifies their agents.
type ReminderWorker struct {
	clientRepo port.ClientRepository
	agentRepo  port.AgentRepository
	notifier   port.Notifier
	clock      schedule.Clock
	cfg        ReminderConfig
	logger     *slog.Logger
}

// NewReminderWorker creates a new ReminderWorker.
func NewReminderWorker(
	clientRepo port.ClientRepository,
	agentRepo port.AgentRepository,
	notifier port.Notifier,
	clock schedule.Clock,
	cfg ReminderConfig,
	logger *slog.Logger,
) *ReminderWorker {
	if cfg.PollInterval <= 0 {
		cfg.PollInterval = 30 * time.Second
	}
	if cfg.Concurrency <= 0 {
		cfg.Concurrency = 1
	}
	if cfg.BatchSize <= 0 {
		cfg.BatchSize = 50
	}
	if cfg.SendTimeout <= 0 {
		cfg.SendTimeout = 30 * time.Second
	}
	return &ReminderWorker{
		clientRepo: clientRepo,
		agentRepo:  agentRepo,
		notifier:   notifier,
		clock:      clock,
		cfg:        cfg,
		logger:     logger.With(slog.String("component", "reminder_worker")),
	}
}

// Start runs the polling loop until ctx is canceled. In-flight reminders
// are allowed to finish before it returns.
func (w *ReminderWorker) Start(ctx context.Context) {
	ticker := time.NewTicker(w.cfg.PollInterval)
	defer ticker.Stop()

	w.logger.Info("started",
		slog.Duration("poll", w.cfg.PollInterval),
		slog.Int("batch", w.cfg.BatchSize),
		slog.Int("concurrency", w.cfg.Concurrency),
	)

	for {
		select {
		case <-ctx.Done():
			w.logger.Info("shutdown complete")
			return
		case <-ticker.C:
			w.RunOnce(ctx)
		}
	}
}

// RunOnce claims the reminders due now and sends them. It returns the
// number of reminders delivered.
func (w *ReminderWorker) RunOnce(ctx context.Context) int {
	due, err := w.clientRepo.ClaimDue(ctx, w.clock.Now(), w.cfg.BatchSize)
	if err != nil {
		if ctx.Err() == nil {
			w.logger.Error("claim due reminders", slog.Any("error", err))
		}
		return 0
	}
	if len(due) == 0 {
		return 0
	}

	var g errgroup.Group
	g.SetLimit(w.cfg.Concurrency)
	sent := make([]bool, len(due))
	for i := range due {
		rec := &due[i]
		g.Go(func() error {
			// Claimed rows are already marked notified, so sends finish
			// even during shutdown.
			sendCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), w.cfg.SendTimeout)
			defer cancel()
			sent[i] = w.send(sendCtx, rec)
			return nil
		})
	}
	_ = g.Wait()

	n := 0
	for _, ok := range sent {
		if ok {
			n++
		}
	}
	return n
}

func (w *ReminderWorker) send(ctx context.Context, rec *domain.ClientRecord) bool {
	log := w.logger.With(slog.String("client_id", rec.ID.String()), slog.String("agent_id", rec.AgentID.String()))

	agent, err := w.agentRepo.GetByID(ctx, rec.AgentID)
	if err != nil {
		log.Error("load agent for reminder", slog.Any("error", err))
		return false
	}
	if !agent.IsActive {
		log.Info("skipping reminder for inactive agent")
		return false
	}
	if err := w.notifier.SendReminder(ctx, agent, rec); err != nil {
		log.Error("send reminder", slog.Any("error", err))
		return false
	}
	log.Info("reminder sent", slog.Time("scheduled_at", rec.ScheduledAt))
	return true
}
