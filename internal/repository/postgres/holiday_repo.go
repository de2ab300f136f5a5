package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"agendados/internal/domain"
	"agendados/internal/port"
)

type holidayRepo struct {
	db *sqlx.DB
}

// NewHolidayRepo creates a new PostgreSQL-backed HolidayRepository.
func NewHolidayRepo(db *sqlx.DB) port.HolidayRepository {
	return &holidayRepo{db: db}
}

func (r *holidayRepo) Create(ctx context.Context, h *domain.Holiday) error {
	h.ID = uuid.New()
	h.CreatedAt = time.Now().UTC()

	_, err := r.db.ExecContext(ctx,
		`INSERT INTO holidays (id, holiday_date, description, created_at) VALUES ($1, $2, $3, $4)`,
		h.ID, h.Date.Format(domain.DateLayout), h.Description, h.CreatedAt)
	if err != nil {
		if isUniqueViolation(err, "holidays_holiday_date_key") {
			return domain.ErrDuplicateHoliday
		}
		return fmt.Errorf("holidayRepo.Create: %w", err)
	}
	return nil
}

func (r *holidayRepo) List(ctx context.Context) ([]domain.Holiday, error) {
	var holidays []domain.Holiday
	if err := r.db.SelectContext(ctx, &holidays, "SELECT * FROM holidays ORDER BY holiday_date"); err != nil {
		return nil, fmt.Errorf("holidayRepo.List: %w", err)
	}
	return holidays, nil
}

func (r *holidayRepo) Delete(ctx context.Context, id uuid.UUID) error {
	result, err := r.db.ExecContext(ctx, "DELETE FROM holidays WHERE id = $1", id)
	if err != nil {
		return fmt.Errorf("holidayRepo.Delete: %w", err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrNotFound
	}
	return nil
}
