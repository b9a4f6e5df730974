package v1

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/agendahub/agendahub/internal/schedule"
)

type GetOverviewOutput struct {
	Body *schedule.OverviewView
}

func RegisterOverviewRoutes(api huma.API, svc Scheduler) {
	huma.Register(api, huma.Operation{
		OperationID: "get-overview",
		Method:      http.MethodGet,
		Path:        "/overview",
		Summary:     "Get the provider overview aggregate",
		Tags:        []string{"Overview"},
	}, func(ctx context.Context, _ *struct{}) (*GetOverviewOutput, error) {
		providerID, err := providerFromContext(ctx)
		if err != nil {
			return nil, err
		}

		overview, err := svc.GetOverview(ctx, providerID)
		if err != nil {
			return nil, translateError("get overview", err)
		}

		return &GetOverviewOutput{Body: overview}, nil
	})
}
