package v1

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/agendahub/agendahub/internal/schedule"
)

type CreateCustomerInput struct {
	Body struct {
		Name  string   `json:"name" minLength:"1" maxLength:"255" doc:"Customer name"`
		Email *string  `json:"email,omitempty" doc:"Contact email"`
		Phone *string  `json:"phone,omitempty" doc:"Contact phone"`
		Notes *string  `json:"notes,omitempty" doc:"Free-form notes"`
		Tags  []string `json:"tags,omitempty" doc:"Labels for filtering"`
	}
}

type CreateCustomerOutput struct {
	Body *schedule.CustomerView
}

type ListCustomersOutput struct {
	Body []*schedule.CustomerView
}

func RegisterCustomerRoutes(api huma.API, svc Scheduler) {
	huma.Register(api, huma.Operation{
		OperationID: "create-customer",
		Method:      http.MethodPost,
		Path:        "/customers",
		Summary:     "Create a customer",
		Tags:        []string{"Customers"},
	}, func(ctx context.Context, input *CreateCustomerInput) (*CreateCustomerOutput, error) {
		providerID, err := providerFromContext(ctx)
		if err != nil {
			return nil, err
		}

		customer, err := svc.CreateCustomer(ctx, providerID, schedule.CreateCustomerInput{
			Name:  input.Body.Name,
			Email: input.Body.Email,
			Phone: input.Body.Phone,
			Notes: input.Body.Notes,
			Tags:  input.Body.Tags,
		})
		if err != nil {
			return nil, translateError("create customer", err)
		}

		return &CreateCustomerOutput{Body: customer}, nil
	})

	huma.Register(api, huma.Operation{
		OperationID: "list-customers",
		Method:      http.MethodGet,
		Path:        "/customers",
		Summary:     "List customers",
		Tags:        []string{"Customers"},
	}, func(ctx context.Context, _ *struct{}) (*ListCustomersOutput, error) {
		providerID, err := providerFromContext(ctx)
		if err != nil {
			return nil, err
		}

		customers, err := svc.ListCustomers(ctx, providerID)
		if err != nil {
			return nil, translateError("list customers", err)
		}

		return &ListCustomersOutput{Body: customers}, nil
	})
}
