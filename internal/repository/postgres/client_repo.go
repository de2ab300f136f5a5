package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"agendados/internal/domain"
	"agendados/internal/port"
)

type clientRepo struct {
	db *sqlx.DB
}

// NewClientRepo creates a new PostgreSQL-backed ClientRepository.
func NewClientRepo(db *sqlx.DB) port.ClientRepository {
	return &clientRepo{db: db}
}

func (r *clientRepo) Upsert(ctx context.Context, rec *domain.ClientRecord) error {
	if rec.ID == uuid.Nil {
		rec.ID = uuid.New()
	}
	now := time.Now().UTC()
	rec.CreatedAt = now
	rec.UpdatedAt = now

	query := `INSERT INTO client_records (
			id, agent_id, name, phone, personal_loan_amount, personal_loan_rate, debt,
			debt_purchase_amount, debt_purchase_rate, comment, scheduled_at, alarm_active,
			notified_at, created_at, updated_at)
		VALUES (
			:id, :agent_id, :name, :phone, :personal_loan_amount, :personal_loan_rate, :debt,
			:debt_purchase_amount, :debt_purchase_rate, :comment, :scheduled_at, :alarm_active,
			NULL, :created_at, :updated_at)
		ON CONFLICT (agent_id, phone) DO UPDATE SET
			name = EXCLUDED.name,
			personal_loan_amount = EXCLUDED.personal_loan_amount,
			personal_loan_rate = EXCLUDED.personal_loan_rate,
			debt = EXCLUDED.debt,
			debt_purchase_amount = EXCLUDED.debt_purchase_amount,
			debt_purchase_rate = EXCLUDED.debt_purchase_rate,
			comment = EXCLUDED.comment,
			scheduled_at = EXCLUDED.scheduled_at,
			alarm_active = EXCLUDED.alarm_active,
			notified_at = NULL,
			updated_at = EXCLUDED.updated_at
		RETURNING id, created_at, updated_at`

	query, args, err := sqlx.Named(query, rec)
	if err != nil {
		return fmt.Errorf("clientRepo.Upsert bind: %w", err)
	}
	row := r.db.QueryRowxContext(ctx, r.db.Rebind(query), args...)
	if err := row.Scan(&rec.ID, &rec.CreatedAt, &rec.UpdatedAt); err != nil {
		return fmt.Errorf("clientRepo.Upsert: %w", err)
	}
	rec.NotifiedAt = nil
	return nil
}

func (r *clientRepo) GetByID(ctx context.Context, agentID, id uuid.UUID) (*domain.ClientRecord, error) {
	var rec domain.ClientRecord
	err := r.db.GetContext(ctx, &rec,
		"SELECT * FROM client_records WHERE agent_id = $1 AND id = $2", agentID, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("clientRepo.GetByID: %w", err)
	}
	return &rec, nil
}

func (r *clientRepo) GetByPhone(ctx context.Context, agentID uuid.UUID, phone string) (*domain.ClientRecord, error) {
	var rec domain.ClientRecord
	err := r.db.GetContext(ctx, &rec,
		"SELECT * FROM client_records WHERE agent_id = $1 AND phone = $2", agentID, phone)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("clientRepo.GetByPhone: %w", err)
	}
	return &rec, nil
}

func (r *clientRepo) ListByAgent(ctx context.Context, agentID uuid.UUID, offset, limit int) ([]domain.ClientRecord, int, error) {
	var total int
	err := r.db.GetContext(ctx, &total, "SELECT COUNT(*) FROM client_records WHERE agent_id = $1", agentID)
	if err != nil {
		return nil, 0, fmt.Errorf("clientRepo.ListByAgent count: %w", err)
	}

	var recs []domain.ClientRecord
	err = r.db.SelectContext(ctx, &recs,
		`SELECT * FROM client_records WHERE agent_id = $1
		ORDER BY scheduled_at, created_at LIMIT $2 OFFSET $3`, agentID, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("clientRepo.ListByAgent: %w", err)
	}
	return recs, total, nil
}

func (r *clientRepo) ListAll(ctx context.Context, agentID uuid.UUID) ([]domain.ClientRecord, error) {
	var recs []domain.ClientRecord
	err := r.db.SelectContext(ctx, &recs,
		"SELECT * FROM client_records WHERE agent_id = $1 ORDER BY scheduled_at, created_at", agentID)
	if err != nil {
		return nil, fmt.Errorf("clientRepo.ListAll: %w", err)
	}
	return recs, nil
}

func (r *clientRepo) ListUpcoming(ctx context.Context, agentID uuid.UUID, from time.Time) ([]domain.ClientRecord, error) {
	var recs []domain.ClientRecord
	err := r.db.SelectContext(ctx, &recs,
		`SELECT * FROM client_records
		WHERE agent_id = $1 AND alarm_active AND scheduled_at >= $2
		ORDER BY scheduled_at`, agentID, from)
	if err != nil {
		return nil, fmt.Errorf("clientRepo.ListUpcoming: %w", err)
	}
	return recs, nil
}

func (r *clientRepo) SetAlarm(ctx context.Context, agentID, id uuid.UUID, active bool) error {
	result, err := r.db.ExecContext(ctx,
		`UPDATE client_records SET alarm_active = $1, notified_at = NULL, updated_at = $2
		WHERE agent_id = $3 AND id = $4`, active, time.Now().UTC(), agentID, id)
	if err != nil {
		return fmt.Errorf("clientRepo.SetAlarm: %w", err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *clientRepo) DeleteMany(ctx context.Context, agentID uuid.UUID, ids []uuid.UUID) (int, error) {
	if len(ids) == 0 {
		return 0, nil
	}
	query, args, err := sqlx.In("DELETE FROM client_records WHERE agent_id = ? AND id IN (?)", agentID, ids)
	if err != nil {
		return 0, fmt.Errorf("clientRepo.DeleteMany bind: %w", err)
	}
	result, err := r.db.ExecContext(ctx, r.db.Rebind(query), args...)
	if err != nil {
		return 0, fmt.Errorf("clientRepo.DeleteMany: %w", err)
	}
	rows, _ := result.RowsAffected()
	return int(rows), nil
}

func (r *clientRepo) ClaimDue(ctx context.Context, now time.Time, limit int) ([]domain.ClientRecord, error) {
	var recs []domain.ClientRecord
	err := r.db.SelectContext(ctx, &recs,
		`UPDATE client_records SET alarm_active = FALSE, notified_at = $1, updated_at = $1
		WHERE id IN (
			SELECT id FROM client_records
			WHERE alarm_active AND notified_at IS NULL AND scheduled_at <= $1
			ORDER BY scheduled_at
			LIMIT $2
			FOR UPDATE SKIP LOCKED
		)
		RETURNING *`, now.UTC(), limit)
	if err != nil {
		return nil, fmt.Errorf("clientRepo.ClaimDue: %w", err)
	}
	return recs, nil
}
