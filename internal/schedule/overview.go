package schedule

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"

	"github.com/agendahub/agendahub/internal/domain"
)

// GetOverview fans out reads across all entity types for one provider and
// derives summary statistics. Pure read-side composition; results may be
// served from the optional cache until the next write invalidates it.
func (s *Service) GetOverview(ctx context.Context, providerID uuid.UUID) (*OverviewView, error) {
	if s.cache != nil {
		if cached, ok := s.cache.GetOverview(ctx, providerID); ok {
			return cached, nil
		}
	}

	var (
		customers    []*domain.Customer
		services     []*domain.Service
		appointments []*domain.Appointment
		workingHours []*domain.WorkingHours
		blocks       []*domain.Block
		payments     []*domain.PaymentRecord
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		customers, err = s.store.Customers().List(gctx, providerID)
		return err
	})
	g.Go(func() (err error) {
		services, err = s.store.Services().List(gctx, providerID)
		return err
	})
	g.Go(func() (err error) {
		appointments, err = s.store.Appointments().List(gctx, providerID)
		return err
	})
	g.Go(func() (err error) {
		workingHours, err = s.store.WorkingHours().List(gctx, providerID)
		return err
	})
	g.Go(func() (err error) {
		blocks, err = s.store.Blocks().List(gctx, providerID)
		return err
	})
	g.Go(func() (err error) {
		payments, err = s.store.Payments().List(gctx, providerID)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("schedule.GetOverview: %w", err)
	}

	now := s.now()

	upcoming := 0
	for _, a := range appointments {
		if a.StartsAt.After(now) {
			upcoming++
		}
	}

	revenue := decimal.Zero
	for _, p := range payments {
		if p.Status == domain.PaymentStatusReceived {
			revenue = revenue.Add(p.Amount)
		}
	}

	overview := &OverviewView{
		Customers:    make([]*CustomerView, len(customers)),
		Services:     make([]*ServiceView, len(services)),
		Appointments: make([]*AppointmentView, len(appointments)),
		WorkingHours: make([]*WorkingHoursView, len(workingHours)),
		Blocks:       make([]*BlockView, len(blocks)),
		Payments:     make([]*PaymentView, len(payments)),
		Summary: OverviewSummary{
			TotalCustomers:       len(customers),
			TotalServices:        len(services),
			TotalAppointments:    len(appointments),
			UpcomingAppointments: upcoming,
			TotalRevenueReceived: roundedAmount(revenue),
		},
	}
	for i, c := range customers {
		overview.Customers[i] = sanitizeCustomer(c)
	}
	for i, svc := range services {
		overview.Services[i] = sanitizeService(svc)
	}
	for i, a := range appointments {
		overview.Appointments[i] = sanitizeAppointment(a)
	}
	for i, w := range workingHours {
		overview.WorkingHours[i] = sanitizeWorkingHours(w)
	}
	for i, b := range blocks {
		overview.Blocks[i] = sanitizeBlock(b)
	}
	for i, p := range payments {
		overview.Payments[i] = sanitizePayment(p)
	}

	if s.cache != nil {
		s.cache.SetOverview(ctx, providerID, overview)
	}

	return overview, nil
}
