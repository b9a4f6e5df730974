package v1_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"github.com/danielgtaylor/huma/v2/humatest"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	v1 "github.com/agendahub/agendahub/internal/api/v1"
	"github.com/agendahub/agendahub/internal/schedule"
)

func TestCreateService(t *testing.T) {
	t.Parallel()

	t.Run("happy_path_with_price", func(t *testing.T) {
		t.Parallel()

		pid := uuid.New()

		_, api := humatest.New(t)
		svc := &mockScheduler{
			createServiceFunc: func(_ context.Context, providerID uuid.UUID, in schedule.CreateServiceInput) (*schedule.ServiceView, error) {
				assert.Equal(t, pid, providerID)
				assert.Equal(t, "Haircut", in.Name)
				assert.Equal(t, 45, in.DurationMinutes)
				require.NotNil(t, in.Price)
				assert.Equal(t, "80", in.Price.String())
				price := 80.0
				return &schedule.ServiceView{ID: uuid.New(), ProviderID: providerID, Name: in.Name, DurationMinutes: in.DurationMinutes, Price: &price, Currency: "BRL", IsActive: true}, nil
			},
		}
		v1.RegisterServiceRoutes(api, svc)

		resp := api.PostCtx(providerCtx(pid), "/services", map[string]any{
			"name":            "Haircut",
			"durationMinutes": 45,
			"price":           80,
		})

		require.Equal(t, http.StatusOK, resp.Code)

		var got schedule.ServiceView
		require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &got))
		assert.Equal(t, "Haircut", got.Name)
		require.NotNil(t, got.Price)
		assert.InDelta(t, 80.0, *got.Price, 0.001)
	})

	t.Run("zero_duration_fails_validation", func(t *testing.T) {
		t.Parallel()

		_, api := humatest.New(t)
		svc := &mockScheduler{}
		v1.RegisterServiceRoutes(api, svc)

		resp := api.PostCtx(providerCtx(uuid.New()), "/services", map[string]any{
			"name":            "Haircut",
			"durationMinutes": 0,
		})

		assert.Equal(t, http.StatusUnprocessableEntity, resp.Code)
	})
}

func TestGetService(t *testing.T) {
	t.Parallel()

	t.Run("found", func(t *testing.T) {
		t.Parallel()

		pid := uuid.New()
		sid := uuid.New()

		_, api := humatest.New(t)
		svc := &mockScheduler{
			getServiceFunc: func(_ context.Context, providerID, id uuid.UUID) (*schedule.ServiceView, error) {
				assert.Equal(t, pid, providerID)
				assert.Equal(t, sid, id)
				return &schedule.ServiceView{ID: sid, ProviderID: pid, Name: "Haircut", Currency: "BRL"}, nil
			},
		}
		v1.RegisterServiceRoutes(api, svc)

		resp := api.GetCtx(providerCtx(pid), "/services/"+sid.String())

		require.Equal(t, http.StatusOK, resp.Code)

		var got schedule.ServiceView
		require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &got))
		assert.Equal(t, sid, got.ID)
	})

	t.Run("absent_returns_404", func(t *testing.T) {
		t.Parallel()

		_, api := humatest.New(t)
		svc := &mockScheduler{
			getServiceFunc: func(_ context.Context, _, _ uuid.UUID) (*schedule.ServiceView, error) {
				return nil, nil
			},
		}
		v1.RegisterServiceRoutes(api, svc)

		resp := api.GetCtx(providerCtx(uuid.New()), "/services/"+uuid.NewString())

		assert.Equal(t, http.StatusNotFound, resp.Code)
		assert.Contains(t, resp.Body.String(), "service not found")
	})

	t.Run("invalid_id", func(t *testing.T) {
		t.Parallel()

		_, api := humatest.New(t)
		svc := &mockScheduler{}
		v1.RegisterServiceRoutes(api, svc)

		resp := api.GetCtx(providerCtx(uuid.New()), "/services/not-a-uuid")

		// Huma returns 422 for unparseable path parameters.
		assert.Equal(t, http.StatusUnprocessableEntity, resp.Code)
	})
}

func TestUpdateService(t *testing.T) {
	t.Parallel()

	t.Run("partial_update_passes_only_set_fields", func(t *testing.T) {
		t.Parallel()

		pid := uuid.New()
		sid := uuid.New()

		_, api := humatest.New(t)
		svc := &mockScheduler{
			updateServiceFunc: func(_ context.Context, providerID, id uuid.UUID, in schedule.UpdateServiceInput) (*schedule.ServiceView, error) {
				assert.Equal(t, pid, providerID)
				assert.Equal(t, sid, id)
				require.NotNil(t, in.Name)
				assert.Equal(t, "New name", *in.Name)
				assert.Nil(t, in.DurationMinutes, "unset fields stay nil")
				assert.Nil(t, in.Price)
				return &schedule.ServiceView{ID: sid, ProviderID: pid, Name: *in.Name, Currency: "BRL"}, nil
			},
		}
		v1.RegisterServiceRoutes(api, svc)

		resp := api.PatchCtx(providerCtx(pid), "/services/"+sid.String(), map[string]any{
			"name": "New name",
		})

		require.Equal(t, http.StatusOK, resp.Code)
	})

	t.Run("absent_returns_404", func(t *testing.T) {
		t.Parallel()

		_, api := humatest.New(t)
		svc := &mockScheduler{
			updateServiceFunc: func(_ context.Context, _, _ uuid.UUID, _ schedule.UpdateServiceInput) (*schedule.ServiceView, error) {
				return nil, nil
			},
		}
		v1.RegisterServiceRoutes(api, svc)

		resp := api.PatchCtx(providerCtx(uuid.New()), "/services/"+uuid.NewString(), map[string]any{
			"name": "whatever",
		})

		assert.Equal(t, http.StatusNotFound, resp.Code)
	})
}

func TestDeleteService(t *testing.T) {
	t.Parallel()

	t.Run("deleted", func(t *testing.T) {
		t.Parallel()

		pid := uuid.New()
		sid := uuid.New()

		_, api := humatest.New(t)
		svc := &mockScheduler{
			deleteServiceFunc: func(_ context.Context, providerID, id uuid.UUID) (bool, error) {
				assert.Equal(t, pid, providerID)
				assert.Equal(t, sid, id)
				return true, nil
			},
		}
		v1.RegisterServiceRoutes(api, svc)

		resp := api.DeleteCtx(providerCtx(pid), "/services/"+sid.String())

		assert.Equal(t, http.StatusNoContent, resp.Code)
	})

	t.Run("absent_returns_404", func(t *testing.T) {
		t.Parallel()

		_, api := humatest.New(t)
		svc := &mockScheduler{
			deleteServiceFunc: func(_ context.Context, _, _ uuid.UUID) (bool, error) {
				return false, nil
			},
		}
		v1.RegisterServiceRoutes(api, svc)

		resp := api.DeleteCtx(providerCtx(uuid.New()), "/services/"+uuid.NewString())

		assert.Equal(t, http.StatusNotFound, resp.Code)
	})

	t.Run("store_error_returns_500", func(t *testing.T) {
		t.Parallel()

		_, api := humatest.New(t)
		svc := &mockScheduler{
			deleteServiceFunc: func(_ context.Context, _, _ uuid.UUID) (bool, error) {
				return false, errors.New("db: connection lost")
			},
		}
		v1.RegisterServiceRoutes(api, svc)

		resp := api.DeleteCtx(providerCtx(uuid.New()), "/services/"+uuid.NewString())

		assert.Equal(t, http.StatusInternalServerError, resp.Code)
	})
}
