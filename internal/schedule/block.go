package schedule

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/agendahub/agendahub/internal/domain"
)

// CreateBlockInput takes timestamps as RFC 3339 strings so unparsable input
// maps onto BLOCK_INVALID_RANGE rather than a transport-level error.
type CreateBlockInput struct {
	StartsAt string
	EndsAt   string
	Reason   *string
	Type     string
	Metadata map[string]any
}

func (s *Service) CreateBlock(ctx context.Context, providerID uuid.UUID, in CreateBlockInput) (*BlockView, error) {
	startsAt, err1 := time.Parse(time.RFC3339, in.StartsAt)
	endsAt, err2 := time.Parse(time.RFC3339, in.EndsAt)
	if err1 != nil || err2 != nil {
		return nil, domain.ErrBlockInvalidRange
	}
	if !endsAt.After(startsAt) {
		return nil, domain.ErrBlockInvalidRange
	}

	blockType := domain.BlockType(in.Type)
	if blockType == "" {
		blockType = domain.BlockTypeManual
	}

	now := s.now()
	b := &domain.Block{
		ID:         uuid.New(),
		ProviderID: providerID,
		StartsAt:   startsAt,
		EndsAt:     endsAt,
		Reason:     normalizeOptional(in.Reason),
		Type:       blockType,
		Metadata:   in.Metadata,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	if err := s.store.Blocks().Create(ctx, b); err != nil {
		return nil, fmt.Errorf("schedule.CreateBlock: %w", err)
	}

	s.invalidateOverview(ctx, providerID)
	return sanitizeBlock(b), nil
}

func (s *Service) ListBlocks(ctx context.Context, providerID uuid.UUID) ([]*BlockView, error) {
	blocks, err := s.store.Blocks().List(ctx, providerID)
	if err != nil {
		return nil, fmt.Errorf("schedule.ListBlocks: %w", err)
	}

	views := make([]*BlockView, len(blocks))
	for i, b := range blocks {
		views[i] = sanitizeBlock(b)
	}
	return views, nil
}

func (s *Service) DeleteBlock(ctx context.Context, providerID, id uuid.UUID) (bool, error) {
	deleted, err := s.store.Blocks().Delete(ctx, providerID, id)
	if err != nil {
		return false, fmt.Errorf("schedule.DeleteBlock: %w", err)
	}
	if deleted {
		s.invalidateOverview(ctx, providerID)
	}
	return deleted, nil
}
