package domain

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type AppointmentStatus string

const (
	AppointmentStatusPending   AppointmentStatus = "pending"
	AppointmentStatusConfirmed AppointmentStatus = "confirmed"
	AppointmentStatusCompleted AppointmentStatus = "completed"
	AppointmentStatusCancelled AppointmentStatus = "cancelled"
	AppointmentStatusNoShow    AppointmentStatus = "no_show"
)

type AppointmentSource string

const (
	AppointmentSourceManual      AppointmentSource = "manual"
	AppointmentSourceOnline      AppointmentSource = "online"
	AppointmentSourceImported    AppointmentSource = "imported"
	AppointmentSourceIntegration AppointmentSource = "integration"
)

type Appointment struct {
	ID         uuid.UUID
	ProviderID uuid.UUID
	CustomerID *uuid.UUID
	ServiceID  *uuid.UUID
	StartsAt   time.Time
	EndsAt     time.Time
	Status     AppointmentStatus
	Price      *decimal.Decimal
	Currency   string
	Source     AppointmentSource
	Notes      *string
	Metadata   map[string]any
	CreatedAt  time.Time
	UpdatedAt  time.Time

	// Denormalized on List; nil when the reference is absent.
	Customer *Customer
	Service  *Service
}

type AppointmentRepository interface {
	Create(ctx context.Context, a *Appointment) error
	List(ctx context.Context, providerID uuid.UUID) ([]*Appointment, error)
	Exists(ctx context.Context, providerID, id uuid.UUID) (bool, error)
	AnyOverlapping(ctx context.Context, providerID uuid.UUID, startsAt, endsAt time.Time) (bool, error)
}
