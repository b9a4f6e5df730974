package v1

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/agendahub/agendahub/internal/schedule"
)

type CreateServiceInput struct {
	Body struct {
		Name            string   `json:"name" minLength:"1" maxLength:"255" doc:"Service name"`
		Description     *string  `json:"description,omitempty" doc:"Service description"`
		DurationMinutes int      `json:"durationMinutes" minimum:"1" maximum:"1440" doc:"Appointment duration in minutes"`
		Price           *float64 `json:"price,omitempty" minimum:"0" doc:"Price; null means unset"`
		Currency        string   `json:"currency,omitempty" doc:"ISO currency code, defaults to BRL"`
		IsActive        *bool    `json:"isActive,omitempty" doc:"Whether the service is bookable, defaults to true"`
		BufferBefore    int      `json:"bufferBefore,omitempty" minimum:"0" doc:"Buffer before the appointment in minutes"`
		BufferAfter     int      `json:"bufferAfter,omitempty" minimum:"0" doc:"Buffer after the appointment in minutes"`
	}
}

type CreateServiceOutput struct {
	Body *schedule.ServiceView
}

type ListServicesOutput struct {
	Body []*schedule.ServiceView
}

type GetServiceInput struct {
	ID uuid.UUID `path:"id" doc:"Service ID"`
}

type GetServiceOutput struct {
	Body *schedule.ServiceView
}

type UpdateServiceInput struct {
	ID   uuid.UUID `path:"id" doc:"Service ID"`
	Body struct {
		Name            *string  `json:"name,omitempty" maxLength:"255" doc:"Service name"`
		Description     *string  `json:"description,omitempty" doc:"Service description; empty string clears it"`
		DurationMinutes *int     `json:"durationMinutes,omitempty" minimum:"1" maximum:"1440" doc:"Appointment duration in minutes"`
		Price           *float64 `json:"price,omitempty" minimum:"0" doc:"Price"`
		Currency        *string  `json:"currency,omitempty" doc:"ISO currency code"`
		IsActive        *bool    `json:"isActive,omitempty" doc:"Whether the service is bookable"`
		BufferBefore    *int     `json:"bufferBefore,omitempty" minimum:"0" doc:"Buffer before the appointment in minutes"`
		BufferAfter     *int     `json:"bufferAfter,omitempty" minimum:"0" doc:"Buffer after the appointment in minutes"`
	}
}

type UpdateServiceOutput struct {
	Body *schedule.ServiceView
}

type DeleteServiceInput struct {
	ID uuid.UUID `path:"id" doc:"Service ID"`
}

func RegisterServiceRoutes(api huma.API, svc Scheduler) {
	huma.Register(api, huma.Operation{
		OperationID: "create-service",
		Method:      http.MethodPost,
		Path:        "/services",
		Summary:     "Create a service",
		Tags:        []string{"Services"},
	}, func(ctx context.Context, input *CreateServiceInput) (*CreateServiceOutput, error) {
		providerID, err := providerFromContext(ctx)
		if err != nil {
			return nil, err
		}

		created, err := svc.CreateService(ctx, providerID, schedule.CreateServiceInput{
			Name:            input.Body.Name,
			Description:     input.Body.Description,
			DurationMinutes: input.Body.DurationMinutes,
			Price:           decimalPtr(input.Body.Price),
			Currency:        input.Body.Currency,
			IsActive:        input.Body.IsActive,
			BufferBefore:    input.Body.BufferBefore,
			BufferAfter:     input.Body.BufferAfter,
		})
		if err != nil {
			return nil, translateError("create service", err)
		}

		return &CreateServiceOutput{Body: created}, nil
	})

	huma.Register(api, huma.Operation{
		OperationID: "list-services",
		Method:      http.MethodGet,
		Path:        "/services",
		Summary:     "List services",
		Tags:        []string{"Services"},
	}, func(ctx context.Context, _ *struct{}) (*ListServicesOutput, error) {
		providerID, err := providerFromContext(ctx)
		if err != nil {
			return nil, err
		}

		services, err := svc.ListServices(ctx, providerID)
		if err != nil {
			return nil, translateError("list services", err)
		}

		return &ListServicesOutput{Body: services}, nil
	})

	huma.Register(api, huma.Operation{
		OperationID: "get-service",
		Method:      http.MethodGet,
		Path:        "/services/{id}",
		Summary:     "Get a service by ID",
		Tags:        []string{"Services"},
	}, func(ctx context.Context, input *GetServiceInput) (*GetServiceOutput, error) {
		providerID, err := providerFromContext(ctx)
		if err != nil {
			return nil, err
		}

		service, err := svc.GetService(ctx, providerID, input.ID)
		if err != nil {
			return nil, translateError("get service", err)
		}
		if service == nil {
			return nil, huma.Error404NotFound("service not found")
		}

		return &GetServiceOutput{Body: service}, nil
	})

	huma.Register(api, huma.Operation{
		OperationID: "update-service",
		Method:      http.MethodPatch,
		Path:        "/services/{id}",
		Summary:     "Update a service",
		Tags:        []string{"Services"},
	}, func(ctx context.Context, input *UpdateServiceInput) (*UpdateServiceOutput, error) {
		providerID, err := providerFromContext(ctx)
		if err != nil {
			return nil, err
		}

		updated, err := svc.UpdateService(ctx, providerID, input.ID, schedule.UpdateServiceInput{
			Name:            input.Body.Name,
			Description:     input.Body.Description,
			DurationMinutes: input.Body.DurationMinutes,
			Price:           decimalPtr(input.Body.Price),
			Currency:        input.Body.Currency,
			IsActive:        input.Body.IsActive,
			BufferBefore:    input.Body.BufferBefore,
			BufferAfter:     input.Body.BufferAfter,
		})
		if err != nil {
			return nil, translateError("update service", err)
		}
		if updated == nil {
			return nil, huma.Error404NotFound("service not found")
		}

		return &UpdateServiceOutput{Body: updated}, nil
	})

	huma.Register(api, huma.Operation{
		OperationID: "delete-service",
		Method:      http.MethodDelete,
		Path:        "/services/{id}",
		Summary:     "Delete a service",
		Tags:        []string{"Services"},
	}, func(ctx context.Context, input *DeleteServiceInput) (*struct{}, error) {
		providerID, err := providerFromContext(ctx)
		if err != nil {
			return nil, err
		}

		deleted, err := svc.DeleteService(ctx, providerID, input.ID)
		if err != nil {
			return nil, translateError("delete service", err)
		}
		if !deleted {
			return nil, huma.Error404NotFound("service not found")
		}

		return nil, nil
	})
}

// decimalPtr converts an optional JSON number into the fixed-point type the
// service layer works with.
func decimalPtr(f *float64) *decimal.Decimal {
	if f == nil {
		return nil
	}
	d := decimal.NewFromFloat(*f)
	return &d
}
