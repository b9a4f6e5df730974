package domain

import (
	"context"
	"time"

	"github.com/google/uuid"
)

type Customer struct {
	ID         uuid.UUID
	ProviderID uuid.UUID
	Name       string
	Email      *string
	Phone      *string
	Notes      *string
	Tags       []string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

type CustomerRepository interface {
	Create(ctx context.Context, c *Customer) error
	GetByID(ctx context.Context, providerID, id uuid.UUID) (*Customer, error)
	List(ctx context.Context, providerID uuid.UUID) ([]*Customer, error)
	Exists(ctx context.Context, providerID, id uuid.UUID) (bool, error)
}
