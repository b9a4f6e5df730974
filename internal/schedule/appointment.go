package schedule

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/agendahub/agendahub/internal/domain"
)

type CreateAppointmentInput struct {
	CustomerID *uuid.UUID
	ServiceID  *uuid.UUID
	StartsAt   time.Time
	EndsAt     time.Time
	Status     string
	Source     string
	Price      *decimal.Decimal
	Currency   string
	Notes      *string
	Metadata   map[string]any
}

// CreateAppointment verifies that any referenced customer/service belongs to
// the calling provider before persisting. Overlapping appointments are
// allowed unless overlap enforcement was opted into.
func (s *Service) CreateAppointment(ctx context.Context, providerID uuid.UUID, in CreateAppointmentInput) (*AppointmentView, error) {
	if in.CustomerID != nil {
		ok, err := s.store.Customers().Exists(ctx, providerID, *in.CustomerID)
		if err != nil {
			return nil, fmt.Errorf("schedule.CreateAppointment: %w", err)
		}
		if !ok {
			return nil, domain.ErrCustomerNotFound
		}
	}

	if in.ServiceID != nil {
		ok, err := s.store.Services().Exists(ctx, providerID, *in.ServiceID)
		if err != nil {
			return nil, fmt.Errorf("schedule.CreateAppointment: %w", err)
		}
		if !ok {
			return nil, domain.ErrServiceNotFound
		}
	}

	if s.enforceOverlap {
		overlapping, err := s.store.Appointments().AnyOverlapping(ctx, providerID, in.StartsAt, in.EndsAt)
		if err != nil {
			return nil, fmt.Errorf("schedule.CreateAppointment: %w", err)
		}
		if overlapping {
			return nil, domain.ErrAppointmentOverlap
		}
	}

	status := domain.AppointmentStatus(in.Status)
	if status == "" {
		status = domain.AppointmentStatusPending
	}
	source := domain.AppointmentSource(in.Source)
	if source == "" {
		source = domain.AppointmentSourceManual
	}

	now := s.now()
	a := &domain.Appointment{
		ID:         uuid.New(),
		ProviderID: providerID,
		CustomerID: in.CustomerID,
		ServiceID:  in.ServiceID,
		StartsAt:   in.StartsAt,
		EndsAt:     in.EndsAt,
		Status:     status,
		Price:      in.Price,
		Currency:   normalizeCurrency(in.Currency),
		Source:     source,
		Notes:      normalizeOptional(in.Notes),
		Metadata:   in.Metadata,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	if err := s.store.Appointments().Create(ctx, a); err != nil {
		return nil, fmt.Errorf("schedule.CreateAppointment: %w", err)
	}

	s.invalidateOverview(ctx, providerID)
	return sanitizeAppointment(a), nil
}

func (s *Service) ListAppointments(ctx context.Context, providerID uuid.UUID) ([]*AppointmentView, error) {
	appointments, err := s.store.Appointments().List(ctx, providerID)
	if err != nil {
		return nil, fmt.Errorf("schedule.ListAppointments: %w", err)
	}

	views := make([]*AppointmentView, len(appointments))
	for i, a := range appointments {
		views[i] = sanitizeAppointment(a)
	}
	return views, nil
}
