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

func TestGetOverview(t *testing.T) {
	t.Parallel()

	t.Run("happy_path", func(t *testing.T) {
		t.Parallel()

		pid := uuid.New()

		_, api := humatest.New(t)
		svc := &mockScheduler{
			getOverviewFunc: func(_ context.Context, providerID uuid.UUID) (*schedule.OverviewView, error) {
				assert.Equal(t, pid, providerID)
				return &schedule.OverviewView{
					Customers:    []*schedule.CustomerView{},
					Services:     []*schedule.ServiceView{},
					Appointments: []*schedule.AppointmentView{},
					WorkingHours: []*schedule.WorkingHoursView{},
					Blocks:       []*schedule.BlockView{},
					Payments:     []*schedule.PaymentView{},
					Summary: schedule.OverviewSummary{
						TotalCustomers:       3,
						TotalServices:        2,
						TotalAppointments:    5,
						UpcomingAppointments: 1,
						TotalRevenueReceived: 100,
					},
				}, nil
			},
		}
		v1.RegisterOverviewRoutes(api, svc)

		resp := api.GetCtx(providerCtx(pid), "/overview")

		require.Equal(t, http.StatusOK, resp.Code)

		var got schedule.OverviewView
		require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &got))
		assert.Equal(t, 3, got.Summary.TotalCustomers)
		assert.Equal(t, 1, got.Summary.UpcomingAppointments)
		assert.InDelta(t, 100.0, got.Summary.TotalRevenueReceived, 0.001)
	})

	t.Run("missing_provider_context", func(t *testing.T) {
		t.Parallel()

		var called bool
		_, api := humatest.New(t)
		svc := &mockScheduler{
			getOverviewFunc: func(_ context.Context, _ uuid.UUID) (*schedule.OverviewView, error) {
				called = true
				return nil, nil
			},
		}
		v1.RegisterOverviewRoutes(api, svc)

		resp := api.GetCtx(context.Background(), "/overview")

		assert.Equal(t, http.StatusForbidden, resp.Code)
		assert.False(t, called)
	})

	t.Run("store_error_returns_500", func(t *testing.T) {
		t.Parallel()

		_, api := humatest.New(t)
		svc := &mockScheduler{
			getOverviewFunc: func(_ context.Context, _ uuid.UUID) (*schedule.OverviewView, error) {
				return nil, errors.New("db: connection lost")
			},
		}
		v1.RegisterOverviewRoutes(api, svc)

		resp := api.GetCtx(providerCtx(uuid.New()), "/overview")

		assert.Equal(t, http.StatusInternalServerError, resp.Code)
	})
}
