package v1

import (
	"context"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/google/uuid"

	"github.com/agendahub/agendahub/internal/schedule"
)

type CreateAppointmentInput struct {
	Body struct {
		CustomerID *uuid.UUID     `json:"customerId,omitempty" doc:"Customer the appointment is for"`
		ServiceID  *uuid.UUID     `json:"serviceId,omitempty" doc:"Service being booked"`
		StartsAt   time.Time      `json:"startsAt" doc:"Appointment start, RFC 3339"`
		EndsAt     time.Time      `json:"endsAt" doc:"Appointment end, RFC 3339"`
		Status     string         `json:"status,omitempty" doc:"Status, defaults to pending"`
		Source     string         `json:"source,omitempty" doc:"Booking source, defaults to manual"`
		Price      *float64       `json:"price,omitempty" minimum:"0" doc:"Agreed price"`
		Currency   string         `json:"currency,omitempty" doc:"ISO currency code, defaults to BRL"`
		Notes      *string        `json:"notes,omitempty" doc:"Free-form notes"`
		Metadata   map[string]any `json:"metadata,omitempty" doc:"Arbitrary metadata"`
	}
}

type CreateAppointmentOutput struct {
	Body *schedule.AppointmentView
}

type ListAppointmentsOutput struct {
	Body []*schedule.AppointmentView
}

func RegisterAppointmentRoutes(api huma.API, svc Scheduler) {
	huma.Register(api, huma.Operation{
		OperationID: "create-appointment",
		Method:      http.MethodPost,
		Path:        "/appointments",
		Summary:     "Book an appointment",
		Tags:        []string{"Appointments"},
	}, func(ctx context.Context, input *CreateAppointmentInput) (*CreateAppointmentOutput, error) {
		providerID, err := providerFromContext(ctx)
		if err != nil {
			return nil, err
		}

		created, err := svc.CreateAppointment(ctx, providerID, schedule.CreateAppointmentInput{
			CustomerID: input.Body.CustomerID,
			ServiceID:  input.Body.ServiceID,
			StartsAt:   input.Body.StartsAt,
			EndsAt:     input.Body.EndsAt,
			Status:     input.Body.Status,
			Source:     input.Body.Source,
			Price:      decimalPtr(input.Body.Price),
			Currency:   input.Body.Currency,
			Notes:      input.Body.Notes,
			Metadata:   input.Body.Metadata,
		})
		if err != nil {
			return nil, translateError("create appointment", err)
		}

		return &CreateAppointmentOutput{Body: created}, nil
	})

	huma.Register(api, huma.Operation{
		OperationID: "list-appointments",
		Method:      http.MethodGet,
		Path:        "/appointments",
		Summary:     "List appointments",
		Tags:        []string{"Appointments"},
	}, func(ctx context.Context, _ *struct{}) (*ListAppointmentsOutput, error) {
		providerID, err := providerFromContext(ctx)
		if err != nil {
			return nil, err
		}

		appointments, err := svc.ListAppointments(ctx, providerID)
		if err != nil {
			return nil, translateError("list appointments", err)
		}

		return &ListAppointmentsOutput{Body: appointments}, nil
	})
}
