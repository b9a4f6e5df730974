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

type CustomerRepo struct {
	pool *pgxpool.Pool
}

func NewCustomerRepo(pool *pgxpool.Pool) *CustomerRepo {
	return &CustomerRepo{pool: pool}
}

func (r *CustomerRepo) Create(ctx context.Context, c *domain.Customer) error {
	_, err := r.pool.Exec(ctx,
		`INSERT INTO customers (id, provider_id, name, email, phone, notes, tags, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
		c.ID, c.ProviderID, c.Name, c.Email, c.Phone, c.Notes, c.Tags, c.CreatedAt, c.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("customerRepo.Create: %w", err)
	}

	return nil
}

func (r *CustomerRepo) GetByID(ctx context.Context, providerID, id uuid.UUID) (*domain.Customer, error) {
	var c domain.Customer

	err := r.pool.QueryRow(ctx,
		`SELECT id, provider_id, name, email, phone, notes, tags, created_at, updated_at
		 FROM customers WHERE provider_id = $1 AND id = $2`,
		providerID, id,
	).Scan(&c.ID, &c.ProviderID, &c.Name, &c.Email, &c.Phone, &c.Notes, &c.Tags, &c.CreatedAt, &c.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("customerRepo.GetByID: %w", domain.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("customerRepo.GetByID: %w", err)
	}

	return &c, nil
}

func (r *CustomerRepo) List(ctx context.Context, providerID uuid.UUID) ([]*domain.Customer, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id, provider_id, name, email, phone, notes, tags, created_at, updated_at
		 FROM customers WHERE provider_id = $1 ORDER BY created_at DESC`,
		providerID,
	)
	if err != nil {
		return nil, fmt.Errorf("customerRepo.List: %w", err)
	}
	defer rows.Close()

	var customers []*domain.Customer
	for rows.Next() {
		var c domain.Customer

		err = rows.Scan(&c.ID, &c.ProviderID, &c.Name, &c.Email, &c.Phone, &c.Notes, &c.Tags, &c.CreatedAt, &c.UpdatedAt)
		if err != nil {
			return nil, fmt.Errorf("customerRepo.List: scan: %w", err)
		}
		customers = append(customers, &c)
	}
	err = rows.Err()
	if err != nil {
		return nil, fmt.Errorf("customerRepo.List: rows: %w", err)
	}

	return customers, nil
}

func (r *CustomerRepo) Exists(ctx context.Context, providerID, id uuid.UUID) (bool, error) {
	var exists bool

	err := r.pool.QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM customers WHERE provider_id = $1 AND id = $2)`,
		providerID, id,
	).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("customerRepo.Exists: %w", err)
	}

	return exists, nil
}
