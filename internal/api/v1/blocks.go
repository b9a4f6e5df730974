package v1

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/google/uuid"

	"github.com/agendahub/agendahub/internal/schedule"
)

type CreateBlockInput struct {
	Body struct {
		StartsAt string         `json:"startsAt" minLength:"1" doc:"Block start, RFC 3339"`
		EndsAt   string         `json:"endsAt" minLength:"1" doc:"Block end, RFC 3339"`
		Reason   *string        `json:"reason,omitempty" doc:"Why the time is blocked"`
		Type     string         `json:"type,omitempty" doc:"Block type, defaults to manual"`
		Metadata map[string]any `json:"metadata,omitempty" doc:"Arbitrary metadata"`
	}
}

type CreateBlockOutput struct {
	Body *schedule.BlockView
}

type ListBlocksOutput struct {
	Body []*schedule.BlockView
}

type DeleteBlockInput struct {
	ID uuid.UUID `path:"id" doc:"Block ID"`
}

func RegisterBlockRoutes(api huma.API, svc Scheduler) {
	huma.Register(api, huma.Operation{
		OperationID: "create-block",
		Method:      http.MethodPost,
		Path:        "/blocks",
		Summary:     "Block out a time range",
		Tags:        []string{"Blocks"},
	}, func(ctx context.Context, input *CreateBlockInput) (*CreateBlockOutput, error) {
		providerID, err := providerFromContext(ctx)
		if err != nil {
			return nil, err
		}

		created, err := svc.CreateBlock(ctx, providerID, schedule.CreateBlockInput{
			StartsAt: input.Body.StartsAt,
			EndsAt:   input.Body.EndsAt,
			Reason:   input.Body.Reason,
			Type:     input.Body.Type,
			Metadata: input.Body.Metadata,
		})
		if err != nil {
			return nil, translateError("create block", err)
		}

		return &CreateBlockOutput{Body: created}, nil
	})

	huma.Register(api, huma.Operation{
		OperationID: "list-blocks",
		Method:      http.MethodGet,
		Path:        "/blocks",
		Summary:     "List blocked time ranges",
		Tags:        []string{"Blocks"},
	}, func(ctx context.Context, _ *struct{}) (*ListBlocksOutput, error) {
		providerID, err := providerFromContext(ctx)
		if err != nil {
			return nil, err
		}

		blocks, err := svc.ListBlocks(ctx, providerID)
		if err != nil {
			return nil, translateError("list blocks", err)
		}

		return &ListBlocksOutput{Body: blocks}, nil
	})

	huma.Register(api, huma.Operation{
		OperationID: "delete-block",
		Method:      http.MethodDelete,
		Path:        "/blocks/{id}",
		Summary:     "Delete a block",
		Tags:        []string{"Blocks"},
	}, func(ctx context.Context, input *DeleteBlockInput) (*struct{}, error) {
		providerID, err := providerFromContext(ctx)
		if err != nil {
			return nil, err
		}

		deleted, err := svc.DeleteBlock(ctx, providerID, input.ID)
		if err != nil {
			return nil, translateError("delete block", err)
		}
		if !deleted {
			return nil, huma.Error404NotFound("block not found")
		}

		return nil, nil
	})
}
