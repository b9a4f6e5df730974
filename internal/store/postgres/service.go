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

type ServiceRepo struct {
	pool *pgxpool.Pool
}

func NewServiceRepo(pool *pgxpool.Pool) *ServiceRepo {
	return &ServiceRepo{pool: pool}
}

func (r *ServiceRepo) Create(ctx context.Context, s *domain.Service) error {
	_, err := r.pool.Exec(ctx,
		`INSERT INTO services (id, provider_id, name, description, duration_minutes, price, currency,
		                       is_active, buffer_before, buffer_after, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`,
		s.ID, s.ProviderID, s.Name, s.Description, s.DurationMinutes, s.Price, s.Currency,
		s.IsActive, s.BufferBefore, s.BufferAfter, s.CreatedAt, s.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("serviceRepo.Create: %w", err)
	}

	return nil
}

func (r *ServiceRepo) GetByID(ctx context.Context, providerID, id uuid.UUID) (*domain.Service, error) {
	var s domain.Service

	err := r.pool.QueryRow(ctx,
		`SELECT id, provider_id, name, description, duration_minutes, price, currency,
		        is_active, buffer_before, buffer_after, created_at, updated_at
		 FROM services WHERE provider_id = $1 AND id = $2`,
		providerID, id,
	).Scan(&s.ID, &s.ProviderID, &s.Name, &s.Description, &s.DurationMinutes, &s.Price, &s.Currency,
		&s.IsActive, &s.BufferBefore, &s.BufferAfter, &s.CreatedAt, &s.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("serviceRepo.GetByID: %w", domain.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("serviceRepo.GetByID: %w", err)
	}

	return &s, nil
}

func (r *ServiceRepo) Update(ctx context.Context, s *domain.Service) error {
	tag, err := r.pool.Exec(ctx,
		`UPDATE services SET name = $1, description = $2, duration_minutes = $3, price = $4,
		        currency = $5, is_active = $6, buffer_before = $7, buffer_after = $8, updated_at = $9
		 WHERE provider_id = $10 AND id = $11`,
		s.Name, s.Description, s.DurationMinutes, s.Price,
		s.Currency, s.IsActive, s.BufferBefore, s.BufferAfter, s.UpdatedAt,
		s.ProviderID, s.ID,
	)
	if err != nil {
		return fmt.Errorf("serviceRepo.Update: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("serviceRepo.Update: %w", domain.ErrNotFound)
	}

	return nil
}

func (r *ServiceRepo) Delete(ctx context.Context, providerID, id uuid.UUID) (bool, error) {
	tag, err := r.pool.Exec(ctx,
		`DELETE FROM services WHERE provider_id = $1 AND id = $2`,
		providerID, id,
	)
	if err != nil {
		return false, fmt.Errorf("serviceRepo.Delete: %w", err)
	}

	return tag.RowsAffected() > 0, nil
}

func (r *ServiceRepo) List(ctx context.Context, providerID uuid.UUID) ([]*domain.Service, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id, provider_id, name, description, duration_minutes, price, currency,
		        is_active, buffer_before, buffer_after, created_at, updated_at
		 FROM services WHERE provider_id = $1 ORDER BY created_at DESC`,
		providerID,
	)
	if err != nil {
		return nil, fmt.Errorf("serviceRepo.List: %w", err)
	}
	defer rows.Close()

	var services []*domain.Service
	for rows.Next() {
		var s domain.Service

		err = rows.Scan(&s.ID, &s.ProviderID, &s.Name, &s.Description, &s.DurationMinutes, &s.Price, &s.Currency,
			&s.IsActive, &s.BufferBefore, &s.BufferAfter, &s.CreatedAt, &s.UpdatedAt)
		if err != nil {
			return nil, fmt.Errorf("serviceRepo.List: scan: %w", err)
		}
		services = append(services, &s)
	}
	err = rows.Err()
	if err != nil {
		return nil, fmt.Errorf("serviceRepo.List: rows: %w", err)
	}

	return services, nil
}

func (r *ServiceRepo) Exists(ctx context.Context, providerID, id uuid.UUID) (bool, error) {
	var exists bool

	err := r.pool.QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM services WHERE provider_id = $1 AND id = $2)`,
		providerID, id,
	).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("serviceRepo.Exists: %w", err)
	}

	return exists, nil
}
