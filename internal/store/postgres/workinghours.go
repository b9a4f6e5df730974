package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/agendahub/agendahub/internal/domain"
)

// WorkingHoursRepo relies on the UNIQUE (provider_id, day_of_week) constraint
// (migrations/postgres) as the authoritative guard against duplicate weekdays;
// violations surface as domain.ErrConflict.
type WorkingHoursRepo struct {
	pool *pgxpool.Pool
}

func NewWorkingHoursRepo(pool *pgxpool.Pool) *WorkingHoursRepo {
	return &WorkingHoursRepo{pool: pool}
}

func (r *WorkingHoursRepo) Create(ctx context.Context, w *domain.WorkingHours) error {
	_, err := r.pool.Exec(ctx,
		`INSERT INTO working_hours (id, provider_id, day_of_week, start_minutes, end_minutes,
		                            break_windows, time_zone, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
		w.ID, w.ProviderID, w.DayOfWeek, w.StartMinutes, w.EndMinutes,
		w.BreakWindows, w.TimeZone, w.CreatedAt, w.UpdatedAt,
	)
	if isUniqueViolation(err) {
		return fmt.Errorf("workingHoursRepo.Create: day %s: %w", w.DayOfWeek, domain.ErrConflict)
	}
	if err != nil {
		return fmt.Errorf("workingHoursRepo.Create: %w", err)
	}

	return nil
}

func (r *WorkingHoursRepo) GetByID(ctx context.Context, providerID, id uuid.UUID) (*domain.WorkingHours, error) {
	var w domain.WorkingHours

	err := r.pool.QueryRow(ctx,
		`SELECT id, provider_id, day_of_week, start_minutes, end_minutes, break_windows, time_zone, created_at, updated_at
		 FROM working_hours WHERE provider_id = $1 AND id = $2`,
		providerID, id,
	).Scan(&w.ID, &w.ProviderID, &w.DayOfWeek, &w.StartMinutes, &w.EndMinutes, &w.BreakWindows, &w.TimeZone, &w.CreatedAt, &w.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("workingHoursRepo.GetByID: %w", domain.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("workingHoursRepo.GetByID: %w", err)
	}

	return &w, nil
}

func (r *WorkingHoursRepo) GetByDay(ctx context.Context, providerID uuid.UUID, day domain.Weekday) (*domain.WorkingHours, error) {
	var w domain.WorkingHours

	err := r.pool.QueryRow(ctx,
		`SELECT id, provider_id, day_of_week, start_minutes, end_minutes, break_windows, time_zone, created_at, updated_at
		 FROM working_hours WHERE provider_id = $1 AND day_of_week = $2`,
		providerID, day,
	).Scan(&w.ID, &w.ProviderID, &w.DayOfWeek, &w.StartMinutes, &w.EndMinutes, &w.BreakWindows, &w.TimeZone, &w.CreatedAt, &w.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("workingHoursRepo.GetByDay: %w", domain.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("workingHoursRepo.GetByDay: %w", err)
	}

	return &w, nil
}

func (r *WorkingHoursRepo) Update(ctx context.Context, w *domain.WorkingHours) error {
	tag, err := r.pool.Exec(ctx,
		`UPDATE working_hours SET day_of_week = $1, start_minutes = $2, end_minutes = $3,
		        break_windows = $4, time_zone = $5, updated_at = $6
		 WHERE provider_id = $7 AND id = $8`,
		w.DayOfWeek, w.StartMinutes, w.EndMinutes,
		w.BreakWindows, w.TimeZone, w.UpdatedAt,
		w.ProviderID, w.ID,
	)
	if isUniqueViolation(err) {
		return fmt.Errorf("workingHoursRepo.Update: day %s: %w", w.DayOfWeek, domain.ErrConflict)
	}
	if err != nil {
		return fmt.Errorf("workingHoursRepo.Update: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("workingHoursRepo.Update: %w", domain.ErrNotFound)
	}

	return nil
}

func (r *WorkingHoursRepo) Delete(ctx context.Context, providerID, id uuid.UUID) (bool, error) {
	tag, err := r.pool.Exec(ctx,
		`DELETE FROM working_hours WHERE provider_id = $1 AND id = $2`,
		providerID, id,
	)
	if err != nil {
		return false, fmt.Errorf("workingHoursRepo.Delete: %w", err)
	}

	return tag.RowsAffected() > 0, nil
}

func (r *WorkingHoursRepo) List(ctx context.Context, providerID uuid.UUID) ([]*domain.WorkingHours, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id, provider_id, day_of_week, start_minutes, end_minutes, break_windows, time_zone, created_at, updated_at
		 FROM working_hours WHERE provider_id = $1 ORDER BY created_at`,
		providerID,
	)
	if err != nil {
		return nil, fmt.Errorf("workingHoursRepo.List: %w", err)
	}
	defer rows.Close()

	var hours []*domain.WorkingHours
	for rows.Next() {
		var w domain.WorkingHours

		err = rows.Scan(&w.ID, &w.ProviderID, &w.DayOfWeek, &w.StartMinutes, &w.EndMinutes, &w.BreakWindows, &w.TimeZone, &w.CreatedAt, &w.UpdatedAt)
		if err != nil {
			return nil, fmt.Errorf("workingHoursRepo.List: scan: %w", err)
		}
		hours = append(hours, &w)
	}
	err = rows.Err()
	if err != nil {
		return nil, fmt.Errorf("workingHoursRepo.List: rows: %w", err)
	}

	return hours, nil
}
