package v1

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/google/uuid"

	"github.com/agendahub/agendahub/internal/domain"
	"github.com/agendahub/agendahub/internal/schedule"
)

type CreateWorkingHoursInput struct {
	Body struct {
		DayOfWeek    int                  `json:"dayOfWeek" doc:"Weekday, 0=sunday .. 6=saturday"`
		StartTime    string               `json:"startTime" minLength:"1" doc:"Opening time as HH:MM"`
		EndTime      string               `json:"endTime" minLength:"1" doc:"Closing time as HH:MM"`
		BreakWindows []domain.BreakWindow `json:"breakWindows,omitempty" doc:"Breaks inside the range, as HH:MM pairs"`
		TimeZone     *string              `json:"timeZone,omitempty" doc:"IANA time zone name"`
	}
}

type CreateWorkingHoursOutput struct {
	Body *schedule.WorkingHoursView
}

type ListWorkingHoursOutput struct {
	Body []*schedule.WorkingHoursView
}

type UpdateWorkingHoursInput struct {
	ID   uuid.UUID `path:"id" doc:"Working hours ID"`
	Body struct {
		DayOfWeek    *int                 `json:"dayOfWeek,omitempty" doc:"Weekday, 0=sunday .. 6=saturday"`
		StartTime    *string              `json:"startTime,omitempty" doc:"Opening time as HH:MM"`
		EndTime      *string              `json:"endTime,omitempty" doc:"Closing time as HH:MM"`
		BreakWindows []domain.BreakWindow `json:"breakWindows,omitempty" doc:"Replaces stored breaks when present"`
		TimeZone     *string              `json:"timeZone,omitempty" doc:"IANA time zone name; empty string clears it"`
	}
}

type UpdateWorkingHoursOutput struct {
	Body *schedule.WorkingHoursView
}

type DeleteWorkingHoursInput struct {
	ID uuid.UUID `path:"id" doc:"Working hours ID"`
}

func RegisterWorkingHoursRoutes(api huma.API, svc Scheduler) {
	huma.Register(api, huma.Operation{
		OperationID: "create-working-hours",
		Method:      http.MethodPost,
		Path:        "/working-hours",
		Summary:     "Define working hours for a weekday",
		Tags:        []string{"WorkingHours"},
	}, func(ctx context.Context, input *CreateWorkingHoursInput) (*CreateWorkingHoursOutput, error) {
		providerID, err := providerFromContext(ctx)
		if err != nil {
			return nil, err
		}

		created, err := svc.CreateWorkingHours(ctx, providerID, schedule.CreateWorkingHoursInput{
			DayOfWeek:    input.Body.DayOfWeek,
			StartTime:    input.Body.StartTime,
			EndTime:      input.Body.EndTime,
			BreakWindows: input.Body.BreakWindows,
			TimeZone:     input.Body.TimeZone,
		})
		if err != nil {
			return nil, translateError("create working hours", err)
		}

		return &CreateWorkingHoursOutput{Body: created}, nil
	})

	huma.Register(api, huma.Operation{
		OperationID: "list-working-hours",
		Method:      http.MethodGet,
		Path:        "/working-hours",
		Summary:     "List working hours",
		Tags:        []string{"WorkingHours"},
	}, func(ctx context.Context, _ *struct{}) (*ListWorkingHoursOutput, error) {
		providerID, err := providerFromContext(ctx)
		if err != nil {
			return nil, err
		}

		hours, err := svc.ListWorkingHours(ctx, providerID)
		if err != nil {
			return nil, translateError("list working hours", err)
		}

		return &ListWorkingHoursOutput{Body: hours}, nil
	})

	huma.Register(api, huma.Operation{
		OperationID: "update-working-hours",
		Method:      http.MethodPatch,
		Path:        "/working-hours/{id}",
		Summary:     "Update working hours",
		Tags:        []string{"WorkingHours"},
	}, func(ctx context.Context, input *UpdateWorkingHoursInput) (*UpdateWorkingHoursOutput, error) {
		providerID, err := providerFromContext(ctx)
		if err != nil {
			return nil, err
		}

		updated, err := svc.UpdateWorkingHours(ctx, providerID, input.ID, schedule.UpdateWorkingHoursInput{
			DayOfWeek:    input.Body.DayOfWeek,
			StartTime:    input.Body.StartTime,
			EndTime:      input.Body.EndTime,
			BreakWindows: input.Body.BreakWindows,
			TimeZone:     input.Body.TimeZone,
		})
		if err != nil {
			return nil, translateError("update working hours", err)
		}
		if updated == nil {
			return nil, huma.Error404NotFound("working hours not found")
		}

		return &UpdateWorkingHoursOutput{Body: updated}, nil
	})

	huma.Register(api, huma.Operation{
		OperationID: "delete-working-hours",
		Method:      http.MethodDelete,
		Path:        "/working-hours/{id}",
		Summary:     "Delete working hours",
		Tags:        []string{"WorkingHours"},
	}, func(ctx context.Context, input *DeleteWorkingHoursInput) (*struct{}, error) {
		providerID, err := providerFromContext(ctx)
		if err != nil {
			return nil, err
		}

		deleted, err := svc.DeleteWorkingHours(ctx, providerID, input.ID)
		if err != nil {
			return nil, translateError("delete working hours", err)
		}
		if !deleted {
			return nil, huma.Error404NotFound("working hours not found")
		}

		return nil, nil
	})
}
