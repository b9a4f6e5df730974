package schedule

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/agendahub/agendahub/internal/domain"
)

type RecordPaymentInput struct {
	AppointmentID *uuid.UUID
	CustomerID    *uuid.UUID
	Amount        decimal.Decimal
	Currency      string
	Method        string
	Status        string
	Description   *string
	RecordedAt    *time.Time
	ReceivedAt    *time.Time
	Metadata      map[string]any
}

// RecordPayment verifies that any referenced appointment/customer belongs to
// the calling provider before persisting.
func (s *Service) RecordPayment(ctx context.Context, providerID uuid.UUID, in RecordPaymentInput) (*PaymentView, error) {
	if in.AppointmentID != nil {
		ok, err := s.store.Appointments().Exists(ctx, providerID, *in.AppointmentID)
		if err != nil {
			return nil, fmt.Errorf("schedule.RecordPayment: %w", err)
		}
		if !ok {
			return nil, domain.ErrAppointmentNotFound
		}
	}

	if in.CustomerID != nil {
		ok, err := s.store.Customers().Exists(ctx, providerID, *in.CustomerID)
		if err != nil {
			return nil, fmt.Errorf("schedule.RecordPayment: %w", err)
		}
		if !ok {
			return nil, domain.ErrCustomerNotFound
		}
	}

	status := domain.PaymentStatus(in.Status)
	if status == "" {
		status = domain.PaymentStatusReceived
	}

	now := s.now()
	recordedAt := now
	if in.RecordedAt != nil {
		recordedAt = *in.RecordedAt
	}

	p := &domain.PaymentRecord{
		ID:            uuid.New(),
		ProviderID:    providerID,
		AppointmentID: in.AppointmentID,
		CustomerID:    in.CustomerID,
		Amount:        in.Amount,
		Currency:      normalizeCurrency(in.Currency),
		Method:        domain.PaymentMethod(in.Method),
		Status:        status,
		Description:   normalizeOptional(in.Description),
		RecordedAt:    recordedAt,
		ReceivedAt:    in.ReceivedAt,
		Metadata:      in.Metadata,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	if err := s.store.Payments().Create(ctx, p); err != nil {
		return nil, fmt.Errorf("schedule.RecordPayment: %w", err)
	}

	s.invalidateOverview(ctx, providerID)
	return sanitizePayment(p), nil
}

func (s *Service) ListPayments(ctx context.Context, providerID uuid.UUID) ([]*PaymentView, error) {
	payments, err := s.store.Payments().List(ctx, providerID)
	if err != nil {
		return nil, fmt.Errorf("schedule.ListPayments: %w", err)
	}

	views := make([]*PaymentView, len(payments))
	for i, p := range payments {
		views[i] = sanitizePayment(p)
	}
	return views, nil
}
