package domain

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Service is a bookable catalog entry (haircut, massage, ...), priced in the
// provider's currency. Price is fixed-point internally; it only becomes a
// float at the JSON boundary.
type Service struct {
	ID              uuid.UUID
	ProviderID      uuid.UUID
	Name            string
	Description     *string
	DurationMinutes int
	Price           *decimal.Decimal
	Currency        string
	IsActive        bool
	BufferBefore    int
	BufferAfter     int
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

type ServiceRepository interface {
	Create(ctx context.Context, s *Service) error
	GetByID(ctx context.Context, providerID, id uuid.UUID) (*Service, error)
	Update(ctx context.Context, s *Service) error
	Delete(ctx context.Context, providerID, id uuid.UUID) (bool, error)
	List(ctx context.Context, providerID uuid.UUID) ([]*Service, error)
	Exists(ctx context.Context, providerID, id uuid.UUID) (bool, error)
}
