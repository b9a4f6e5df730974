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

func TestRecordPayment(t *testing.T) {
	t.Parallel()

	t.Run("happy_path", func(t *testing.T) {
		t.Parallel()

		pid := uuid.New()
		aid := uuid.New()

		_, api := humatest.New(t)
		svc := &mockScheduler{
			recordPaymentFunc: func(_ context.Context, providerID uuid.UUID, in schedule.RecordPaymentInput) (*schedule.PaymentView, error) {
				assert.Equal(t, pid, providerID)
				require.NotNil(t, in.AppointmentID)
				assert.Equal(t, aid, *in.AppointmentID)
				assert.Equal(t, "100", in.Amount.String())
				assert.Equal(t, "pix", in.Method)
				return &schedule.PaymentView{
					ID:            uuid.New(),
					ProviderID:    providerID,
					AppointmentID: in.AppointmentID,
					Amount:        100,
					Currency:      "BRL",
					Method:        domain.PaymentMethodPix,
					Status:        domain.PaymentStatusReceived,
				}, nil
			},
		}
		v1.RegisterPaymentRoutes(api, svc)

		resp := api.PostCtx(providerCtx(pid), "/payments", map[string]any{
			"appointmentId": aid.String(),
			"amount":        100,
			"method":        "pix",
		})

		require.Equal(t, http.StatusOK, resp.Code)

		var got schedule.PaymentView
		require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &got))
		assert.InDelta(t, 100.0, got.Amount, 0.001)
		assert.Equal(t, domain.PaymentStatusReceived, got.Status)
	})

	t.Run("unknown_appointment_returns_404", func(t *testing.T) {
		t.Parallel()

		_, api := humatest.New(t)
		svc := &mockScheduler{
			recordPaymentFunc: func(_ context.Context, _ uuid.UUID, _ schedule.RecordPaymentInput) (*schedule.PaymentView, error) {
				return nil, domain.ErrAppointmentNotFound
			},
		}
		v1.RegisterPaymentRoutes(api, svc)

		resp := api.PostCtx(providerCtx(uuid.New()), "/payments", map[string]any{
			"appointmentId": uuid.NewString(),
			"amount":        50,
		})

		assert.Equal(t, http.StatusNotFound, resp.Code)
		assert.Contains(t, resp.Body.String(), "APPOINTMENT_NOT_FOUND")
	})

	t.Run("negative_amount_fails_validation", func(t *testing.T) {
		t.Parallel()

		var called bool
		_, api := humatest.New(t)
		svc := &mockScheduler{
			recordPaymentFunc: func(_ context.Context, _ uuid.UUID, _ schedule.RecordPaymentInput) (*schedule.PaymentView, error) {
				called = true
				return nil, nil
			},
		}
		v1.RegisterPaymentRoutes(api, svc)

		resp := api.PostCtx(providerCtx(uuid.New()), "/payments", map[string]any{
			"amount": -5,
		})

		assert.Equal(t, http.StatusUnprocessableEntity, resp.Code)
		assert.False(t, called, "service must not be called on invalid input")
	})
}

func TestListPayments(t *testing.T) {
	t.Parallel()

	pid := uuid.New()

	_, api := humatest.New(t)
	svc := &mockScheduler{
		listPaymentsFunc: func(_ context.Context, providerID uuid.UUID) ([]*schedule.PaymentView, error) {
			assert.Equal(t, pid, providerID)
			return []*schedule.PaymentView{
				{ID: uuid.New(), ProviderID: pid, Amount: 100, Currency: "BRL", Method: domain.PaymentMethodPix, Status: domain.PaymentStatusReceived},
			}, nil
		},
	}
	v1.RegisterPaymentRoutes(api, svc)

	resp := api.GetCtx(providerCtx(pid), "/payments")

	require.Equal(t, http.StatusOK, resp.Code)

	var got []schedule.PaymentView
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &got))
	require.Len(t, got, 1)
}
