package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/agendahub/agendahub/internal/domain"
)

type AppointmentRepo struct {
	pool *pgxpool.Pool
}

func NewAppointmentRepo(pool *pgxpool.Pool) *AppointmentRepo {
	return &AppointmentRepo{pool: pool}
}

func (r *AppointmentRepo) Create(ctx context.Context, a *domain.Appointment) error {
	_, err := r.pool.Exec(ctx,
		`INSERT INTO appointments (id, provider_id, customer_id, service_id, starts_at, ends_at,
		                           status, price, currency, source, notes, metadata, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)`,
		a.ID, a.ProviderID, a.CustomerID, a.ServiceID, a.StartsAt, a.EndsAt,
		a.Status, a.Price, a.Currency, a.Source, a.Notes, a.Metadata, a.CreatedAt, a.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("appointmentRepo.Create: %w", err)
	}

	return nil
}

// List returns the provider's appointments ordered by start time, with the
// referenced customer and service joined in.
func (r *AppointmentRepo) List(ctx context.Context, providerID uuid.UUID) ([]*domain.Appointment, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT a.id, a.provider_id, a.customer_id, a.service_id, a.starts_at, a.ends_at,
		        a.status, a.price, a.currency, a.source, a.notes, a.metadata, a.created_at, a.updated_at,
		        c.name, c.email, c.phone, c.notes, c.tags, c.created_at, c.updated_at,
		        s.name, s.description, s.duration_minutes, s.price, s.currency,
		        s.is_active, s.buffer_before, s.buffer_after, s.created_at, s.updated_at
		 FROM appointments a
		 LEFT JOIN customers c ON c.id = a.customer_id AND c.provider_id = a.provider_id
		 LEFT JOIN services s ON s.id = a.service_id AND s.provider_id = a.provider_id
		 WHERE a.provider_id = $1
		 ORDER BY a.starts_at`,
		providerID,
	)
	if err != nil {
		return nil, fmt.Errorf("appointmentRepo.List: %w", err)
	}
	defer rows.Close()

	var appointments []*domain.Appointment
	for rows.Next() {
		var (
			a domain.Appointment

			custName      *string
			custEmail     *string
			custPhone     *string
			custNotes     *string
			custTags      []string
			custCreatedAt *time.Time
			custUpdatedAt *time.Time

			svcName        *string
			svcDescription *string
			svcDuration    *int
			svcPrice       *decimal.Decimal
			svcCurrency    *string
			svcIsActive    *bool
			svcBufBefore   *int
			svcBufAfter    *int
			svcCreatedAt   *time.Time
			svcUpdatedAt   *time.Time
		)

		err = rows.Scan(&a.ID, &a.ProviderID, &a.CustomerID, &a.ServiceID, &a.StartsAt, &a.EndsAt,
			&a.Status, &a.Price, &a.Currency, &a.Source, &a.Notes, &a.Metadata, &a.CreatedAt, &a.UpdatedAt,
			&custName, &custEmail, &custPhone, &custNotes, &custTags, &custCreatedAt, &custUpdatedAt,
			&svcName, &svcDescription, &svcDuration, &svcPrice, &svcCurrency,
			&svcIsActive, &svcBufBefore, &svcBufAfter, &svcCreatedAt, &svcUpdatedAt)
		if err != nil {
			return nil, fmt.Errorf("appointmentRepo.List: scan: %w", err)
		}

		if a.CustomerID != nil && custName != nil {
			a.Customer = &domain.Customer{
				ID:         *a.CustomerID,
				ProviderID: a.ProviderID,
				Name:       *custName,
				Email:      custEmail,
				Phone:      custPhone,
				Notes:      custNotes,
				Tags:       custTags,
				CreatedAt:  *custCreatedAt,
				UpdatedAt:  *custUpdatedAt,
			}
		}
		if a.ServiceID != nil && svcName != nil {
			a.Service = &domain.Service{
				ID:              *a.ServiceID,
				ProviderID:      a.ProviderID,
				Name:            *svcName,
				Description:     svcDescription,
				DurationMinutes: *svcDuration,
				Price:           svcPrice,
				Currency:        *svcCurrency,
				IsActive:        *svcIsActive,
				BufferBefore:    *svcBufBefore,
				BufferAfter:     *svcBufAfter,
				CreatedAt:       *svcCreatedAt,
				UpdatedAt:       *svcUpdatedAt,
			}
		}

		appointments = append(appointments, &a)
	}
	err = rows.Err()
	if err != nil {
		return nil, fmt.Errorf("appointmentRepo.List: rows: %w", err)
	}

	return appointments, nil
}

func (r *AppointmentRepo) Exists(ctx context.Context, providerID, id uuid.UUID) (bool, error) {
	var exists bool

	err := r.pool.QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM appointments WHERE provider_id = $1 AND id = $2)`,
		providerID, id,
	).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("appointmentRepo.Exists: %w", err)
	}

	return exists, nil
}

func (r *AppointmentRepo) AnyOverlapping(ctx context.Context, providerID uuid.UUID, startsAt, endsAt time.Time) (bool, error) {
	var exists bool

	err := r.pool.QueryRow(
		ctx,
		`SELECT EXISTS (
		   SELECT 1 FROM appointments
		   WHERE provider_id = $1 AND status <> 'cancelled' AND starts_at < $3 AND ends_at > $2
		 )`,
		providerID, startsAt, endsAt,
	).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("appointmentRepo.AnyOverlapping: %w", err)
	}

	return exists, nil
}
