package domain

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type PaymentMethod string

const (
	PaymentMethodPix        PaymentMethod = "pix"
	PaymentMethodCash       PaymentMethod = "cash"
	PaymentMethodCreditCard PaymentMethod = "credit_card"
	PaymentMethodDebitCard  PaymentMethod = "debit_card"
	PaymentMethodTransfer   PaymentMethod = "transfer"
	PaymentMethodVoucher    PaymentMethod = "voucher"
	PaymentMethodOther      PaymentMethod = "other"
)

type PaymentStatus string

const (
	PaymentStatusPending   PaymentStatus = "pending"
	PaymentStatusReceived  PaymentStatus = "received"
	PaymentStatusRefunded  PaymentStatus = "refunded"
	PaymentStatusCancelled PaymentStatus = "cancelled"
)

type PaymentRecord struct {
	ID            uuid.UUID
	ProviderID    uuid.UUID
	AppointmentID *uuid.UUID
	CustomerID    *uuid.UUID
	Amount        decimal.Decimal
	Currency      string
	Method        PaymentMethod
	Status        PaymentStatus
	Description   *string
	RecordedAt    time.Time
	ReceivedAt    *time.Time
	Metadata      map[string]any
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

type PaymentRepository interface {
	Create(ctx context.Context, p *PaymentRecord) error
	List(ctx context.Context, providerID uuid.UUID) ([]*PaymentRecord, error)
}
