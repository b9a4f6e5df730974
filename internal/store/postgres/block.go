package postgres

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/agendahub/agendahub/internal/domain"
)

type BlockRepo struct {
	pool *pgxpool.Pool
}

func NewBlockRepo(pool *pgxpool.Pool) *BlockRepo {
	return &BlockRepo{pool: pool}
}

func (r *BlockRepo) Create(ctx context.Context, b *domain.Block) error {
	_, err := r.pool.Exec(ctx,
		`INSERT INTO blocks (id, provider_id, starts_at, ends_at, reason, type, metadata, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
		b.ID, b.ProviderID, b.StartsAt, b.EndsAt, b.Reason, b.Type, b.Metadata, b.CreatedAt, b.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("blockRepo.Create: %w", err)
	}

	return nil
}

func (r *BlockRepo) List(ctx context.Context, providerID uuid.UUID) ([]*domain.Block, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id, provider_id, starts_at, ends_at, reason, type, metadata, created_at, updated_at
		 FROM blocks WHERE provider_id = $1 ORDER BY starts_at DESC`,
		providerID,
	)
	if err != nil {
		return nil, fmt.Errorf("blockRepo.List: %w", err)
	}
	defer rows.Close()

	var blocks []*domain.Block
	for rows.Next() {
		var b domain.Block

		err = rows.Scan(&b.ID, &b.ProviderID, &b.StartsAt, &b.EndsAt, &b.Reason, &b.Type, &b.Metadata, &b.CreatedAt, &b.UpdatedAt)
		if err != nil {
			return nil, fmt.Errorf("blockRepo.List: scan: %w", err)
		}
		blocks = append(blocks, &b)
	}
	err = rows.Err()
	if err != nil {
		return nil, fmt.Errorf("blockRepo.List: rows: %w", err)
	}

	return blocks, nil
}

func (r *BlockRepo) Delete(ctx context.Context, providerID, id uuid.UUID) (bool, error) {
	tag, err := r.pool.Exec(ctx,
		`DELETE FROM blocks WHERE provider_id = $1 AND id = $2`,
		providerID, id,
	)
	if err != nil {
		return false, fmt.Errorf("blockRepo.Delete: %w", err)
	}

	return tag.RowsAffected() > 0, nil
}
