package v1

import (
	"context"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/agendahub/agendahub/internal/schedule"
)

type RecordPaymentInput struct {
	Body struct {
		AppointmentID *uuid.UUID     `json:"appointmentId,omitempty" doc:"Appointment the payment settles"`
		CustomerID    *uuid.UUID     `json:"customerId,omitempty" doc:"Customer who paid"`
		Amount        float64        `json:"amount" minimum:"0" doc:"Amount paid"`
		Currency      string         `json:"currency,omitempty" doc:"ISO currency code, defaults to BRL"`
		Method        string         `json:"method,omitempty" doc:"Payment method (pix, cash, credit_card, ...)"`
		Status        string         `json:"status,omitempty" doc:"Payment status, defaults to received"`
		Description   *string        `json:"description,omitempty" doc:"Free-form description"`
		RecordedAt    *time.Time     `json:"recordedAt,omitempty" doc:"When the payment was recorded, defaults to now"`
		ReceivedAt    *time.Time     `json:"receivedAt,omitempty" doc:"When the money arrived"`
		Metadata      map[string]any `json:"metadata,omitempty" doc:"Arbitrary metadata"`
	}
}

type RecordPaymentOutput struct {
	Body *schedule.PaymentView
}

type ListPaymentsOutput struct {
	Body []*schedule.PaymentView
}

func RegisterPaymentRoutes(api huma.API, svc Scheduler) {
	huma.Register(api, huma.Operation{
		OperationID: "record-payment",
		Method:      http.MethodPost,
		Path:        "/payments",
		Summary:     "Record a payment",
		Tags:        []string{"Payments"},
	}, func(ctx context.Context, input *RecordPaymentInput) (*RecordPaymentOutput, error) {
		providerID, err := providerFromContext(ctx)
		if err != nil {
			return nil, err
		}

		recorded, err := svc.RecordPayment(ctx, providerID, schedule.RecordPaymentInput{
			AppointmentID: input.Body.AppointmentID,
			CustomerID:    input.Body.CustomerID,
			Amount:        decimal.NewFromFloat(input.Body.Amount),
			Currency:      input.Body.Currency,
			Method:        input.Body.Method,
			Status:        input.Body.Status,
			Description:   input.Body.Description,
			RecordedAt:    input.Body.RecordedAt,
			ReceivedAt:    input.Body.ReceivedAt,
			Metadata:      input.Body.Metadata,
		})
		if err != nil {
			return nil, translateError("record payment", err)
		}

		return &RecordPaymentOutput{Body: recorded}, nil
	})

	huma.Register(api, huma.Operation{
		OperationID: "list-payments",
		Method:      http.MethodGet,
		Path:        "/payments",
		Summary:     "List payment records",
		Tags:        []string{"Payments"},
	}, func(ctx context.Context, _ *struct{}) (*ListPaymentsOutput, error) {
		providerID, err := providerFromContext(ctx)
		if err != nil {
			return nil, err
		}

		payments, err := svc.ListPayments(ctx, providerID)
		if err != nil {
			return nil, translateError("list payments", err)
		}

		return &ListPaymentsOutput{Body: payments}, nil
	})
}
