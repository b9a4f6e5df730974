package v1_test

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/danielgtaylor/huma/v2/humatest"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	v1 "github.com/agendahub/agendahub/internal/api/v1"
	"github.com/agendahub/agendahub/internal/domain"
	"github.com/agendahub/agendahub/internal/schedule"
)

func TestCreateBlock(t *testing.T) {
	t.Parallel()

	t.Run("happy_path", func(t *testing.T) {
		t.Parallel()

		pid := uuid.New()

		_, api := humatest.New(t)
		svc := &mockScheduler{
			createBlockFunc: func(_ context.Context, providerID uuid.UUID, in schedule.CreateBlockInput) (*schedule.BlockView, error) {
				assert.Equal(t, pid, providerID)
				assert.Equal(t, "2026-09-07T09:00:00Z", in.StartsAt)
				assert.Equal(t, "2026-09-07T18:00:00Z", in.EndsAt)
				return &schedule.BlockView{
					ID:         uuid.New(),
					ProviderID: providerID,
					StartsAt:   in.StartsAt,
					EndsAt:     in.EndsAt,
					Type:       domain.BlockTypeManual,
				}, nil
			},
		}
		v1.RegisterBlockRoutes(api, svc)

		resp := api.PostCtx(providerCtx(pid), "/blocks", map[string]any{
			"startsAt": "2026-09-07T09:00:00Z",
			"endsAt":   "2026-09-07T18:00:00Z",
			"reason":   "holiday",
		})

		require.Equal(t, http.StatusOK, resp.Code)

		var got schedule.BlockView
		require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &got))
		assert.Equal(t, domain.BlockTypeManual, got.Type)
	})

	t.Run("invalid_range_returns_400", func(t *testing.T) {
		t.Parallel()

		_, api := humatest.New(t)
		svc := &mockScheduler{
			createBlockFunc: func(_ context.Context, _ uuid.UUID, _ schedule.CreateBlockInput) (*schedule.BlockView, error) {
				return nil, domain.ErrBlockInvalidRange
			},
		}
		v1.RegisterBlockRoutes(api, svc)

		resp := api.PostCtx(providerCtx(uuid.New()), "/blocks", map[string]any{
			"startsAt": "2026-09-07T18:00:00Z",
			"endsAt":   "2026-09-07T09:00:00Z",
		})

		assert.Equal(t, http.StatusBadRequest, resp.Code)
		assert.Contains(t, resp.Body.String(), "BLOCK_INVALID_RANGE")
	})
}

func TestDeleteBlock(t *testing.T) {
	t.Parallel()

	t.Run("deleted", func(t *testing.T) {
		t.Parallel()

		_, api := humatest.New(t)
		svc := &mockScheduler{
			deleteBlockFunc: func(_ context.Context, _, _ uuid.UUID) (bool, error) {
				return true, nil
			},
		}
		v1.RegisterBlockRoutes(api, svc)

		resp := api.DeleteCtx(providerCtx(uuid.New()), "/blocks/"+uuid.NewString())

		assert.Equal(t, http.StatusNoContent, resp.Code)
	})

	t.Run("absent_returns_404", func(t *testing.T) {
		t.Parallel()

		_, api := humatest.New(t)
		svc := &mockScheduler{
			deleteBlockFunc: func(_ context.Context, _, _ uuid.UUID) (bool, error) {
				return false, nil
			},
		}
		v1.RegisterBlockRoutes(api, svc)

		resp := api.DeleteCtx(providerCtx(uuid.New()), "/blocks/"+uuid.NewString())

		assert.Equal(t, http.StatusNotFound, resp.Code)
		assert.Contains(t, resp.Body.String(), "block not found")
	})
}

func TestListBlocks(t *testing.T) {
	t.Parallel()

	pid := uuid.New()

	_, api := humatest.New(t)
	svc := &mockScheduler{
		listBlocksFunc: func(_ context.Context, providerID uuid.UUID) ([]*schedule.BlockView, error) {
			assert.Equal(t, pid, providerID)
			return []*schedule.BlockView{
				{ID: uuid.New(), ProviderID: pid, StartsAt: "2026-09-07T09:00:00Z", EndsAt: "2026-09-07T18:00:00Z", Type: domain.BlockTypeManual},
			}, nil
		},
	}
	v1.RegisterBlockRoutes(api, svc)

	resp := api.GetCtx(providerCtx(pid), "/blocks")

	require.Equal(t, http.StatusOK, resp.Code)

	var got []schedule.BlockView
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &got))
	require.Len(t, got, 1)
}
