package port

import (
	"context"
	"time"

	"github.com/google/uuid"

	"agendados/internal/domain"
)

// AgentRepository defines the contract for agent persistence.
type AgentRepository interface {
	Create(ctx context.Context, agent *domain.Agent) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Agent, error)
	GetByEmail(ctx context.Context, email string) (*domain.Agent, error)
}

// ClientRepository defines the contract for client record persistence.
// Every query is scoped to the owning agent except ClaimDue, which serves the
// reminder worker across agents.
type ClientRepository interface {
	// Upsert inserts the record or, when the agent already has a client with
	// the same phone, overwrites it keeping its id and created_at.
	Upsert(ctx context.Context, rec *domain.ClientRecord) error
	GetByID(ctx context.Context, agentID, id uuid.UUID) (*domain.ClientRecord, error)
	GetByPhone(ctx context.Context, agentID uuid.UUID, phone string) (*domain.ClientRecord, error)
	ListByAgent(ctx context.Context, agentID uuid.UUID, offset, limit int) ([]domain.ClientRecord, int, error)
	ListAll(ctx context.Context, agentID uuid.UUID) ([]domain.ClientRecord, error)
	ListUpcoming(ctx context.Context, agentID uuid.UUID, from time.Time) ([]domain.ClientRecord, error)
	SetAlarm(ctx context.Context, agentID, id uuid.UUID, active bool) error
	DeleteMany(ctx context.Context, agentID uuid.UUID, ids []uuid.UUID) (int, error)
	// ClaimDue marks up to limit active alarms scheduled at or before now as
	// notified and returns them. Concurrent callers never claim the same row.
	ClaimDue(ctx context.Context, now time.Time, limit int) ([]domain.ClientRecord, error)
}

// HolidayRepository defines the contract for one-off holiday persistence.
type HolidayRepository interface {
	Create(ctx context.Context, h *domain.Holiday) error
	List(ctx context.Context) ([]domain.Holiday, error)
	Delete(ctx context.Context, id uuid.UUID) error
}
