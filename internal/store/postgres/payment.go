package postgres

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/agendahub/agendahub/internal/domain"
)

type PaymentRepo struct {
	pool *pgxpool.Pool
}

func NewPaymentRepo(pool *pgxpool.Pool) *PaymentRepo {
	return &PaymentRepo{pool: pool}
}

func (r *PaymentRepo) Create(ctx context.Context, p *domain.PaymentRecord) error {
	_, err := r.pool.Exec(ctx,
		`INSERT INTO payment_records (id, provider_id, appointment_id, customer_id, amount, currency,
		                              method, status, description, recorded_at, received_at, metadata,
		                              created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)`,
		p.ID, p.ProviderID, p.AppointmentID, p.CustomerID, p.Amount, p.Currency,
		p.Method, p.Status, p.Description, p.RecordedAt, p.ReceivedAt, p.Metadata,
		p.CreatedAt, p.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("paymentRepo.Create: %w", err)
	}

	return nil
}

func (r *PaymentRepo) List(ctx context.Context, providerID uuid.UUID) ([]*domain.PaymentRecord, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id, provider_id, appointment_id, customer_id, amount, currency,
		        method, status, description, recorded_at, received_at, metadata, created_at, updated_at
		 FROM payment_records WHERE provider_id = $1 ORDER BY recorded_at DESC`,
		providerID,
	)
	if err != nil {
		return nil, fmt.Errorf("paymentRepo.List: %w", err)
	}
	defer rows.Close()

	var payments []*domain.PaymentRecord
	for rows.Next() {
		var p domain.PaymentRecord

		err = rows.Scan(&p.ID, &p.ProviderID, &p.AppointmentID, &p.CustomerID, &p.Amount, &p.Currency,
			&p.Method, &p.Status, &p.Description, &p.RecordedAt, &p.ReceivedAt, &p.Metadata, &p.CreatedAt, &p.UpdatedAt)
		if err != nil {
			return nil, fmt.Errorf("paymentRepo.List: scan: %w", err)
		}
		payments = append(payments, &p)
	}
	err = rows.Err()
	if err != nil {
		return nil, fmt.Errorf("paymentRepo.List: rows: %w", err)
	}

	return payments, nil
}
