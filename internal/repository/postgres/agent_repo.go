package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"agendados/internal/domain"
	"agendados/internal/port"
)

type agentRepo struct {
	db *sqlx.DB
}

// NewAgentRepo creates a new PostgreSQL-backed AgentRepository.
func NewAgentRepo(db *sqlx.DB) port.AgentRepository {
	return &agentRepo{db: db}
}

func (r *agentRepo) Create(ctx context.Context, agent *domain.Agent) error {
	agent.ID = uuid.New()
	agent.Email = strings.ToLower(strings.TrimSpace(agent.Email))
	now := time.Now().UTC()
	agent.CreatedAt = now
	agent.UpdatedAt = now

	query := `INSERT INTO agents (id, email, full_name, password_hash, is_active, created_at, updated_at)
		VALUES (:id, :email, :full_name, :password_hash, :is_active, :created_at, :updated_at)`

	if _, err := r.db.NamedExecContext(ctx, query, agent); err != nil {
		if isUniqueViolation(err, "agents_email_key") {
			return domain.ErrDuplicateEmail
		}
		return fmt.Errorf("agentRepo.Create: %w", err)
	}
	return nil
}

func (r *agentRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Agent, error) {
	var agent domain.Agent
	err := r.db.GetContext(ctx, &agent, "SELECT * FROM agents WHERE id = $1", id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("agentRepo.GetByID: %w", err)
	}
	return &agent, nil
}

func (r *agentRepo) GetByEmail(ctx context.Context, email string) (*domain.Agent, error) {
	var agent domain.Agent
	err := r.db.GetContext(ctx, &agent, "SELECT * FROM agents WHERE email = $1",
		strings.ToLower(strings.TrimSpace(email)))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("agentRepo.GetByEmail: %w", err)
	}
	return &agent, nil
}
