package domain

import (
	"context"
	"time"

	"github.com/google/uuid"
)

type BlockType string

const (
	BlockTypeManual      BlockType = "manual"
	BlockTypeLunch       BlockType = "lunch"
	BlockTypeMaintenance BlockType = "maintenance"
	BlockTypeHoliday     BlockType = "holiday"
	BlockTypeOther       BlockType = "other"
)

// Block is a provider-wide unavailability window overriding normal working
// hours. Blocks are independent of appointments; no overlap check exists
// between the two.
type Block struct {
	ID         uuid.UUID
	ProviderID uuid.UUID
	StartsAt   time.Time
	EndsAt     time.Time
	Reason     *string
	Type       BlockType
	Metadata   map[string]any
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

type BlockRepository interface {
	Create(ctx context.Context, b *Block) error
	List(ctx context.Context, providerID uuid.UUID) ([]*Block, error)
	Delete(ctx context.Context, providerID, id uuid.UUID) (bool, error)
}
