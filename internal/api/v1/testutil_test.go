package v1_test

import (
	"context"

	"github.com/google/uuid"

	"github.com/agendahub/agendahub/internal/schedule"
	"github.com/agendahub/agendahub/internal/server/middleware"
)

// ---------------------------------------------------------------------------
// Context helpers — inject a provider identity into context for DoCtx
// ---------------------------------------------------------------------------

func providerCtx(providerID uuid.UUID) context.Context {
	return context.WithValue(context.Background(), middleware.ContextKeyProviderID, providerID)
}

// ---------------------------------------------------------------------------
// Mock Scheduler
// ---------------------------------------------------------------------------

// mockScheduler implements v1.Scheduler with overridable func fields.
// Unset funcs panic, which surfaces unexpected calls immediately.
type mockScheduler struct {
	createCustomerFunc func(ctx context.Context, providerID uuid.UUID, in schedule.CreateCustomerInput) (*schedule.CustomerView, error)
	listCustomersFunc  func(ctx context.Context, providerID uuid.UUID) ([]*schedule.CustomerView, error)

	createServiceFunc func(ctx context.Context, providerID uuid.UUID, in schedule.CreateServiceInput) (*schedule.ServiceView, error)
	getServiceFunc    func(ctx context.Context, providerID, id uuid.UUID) (*schedule.ServiceView, error)
	updateServiceFunc func(ctx context.Context, providerID, id uuid.UUID, in schedule.UpdateServiceInput) (*schedule.ServiceView, error)
	deleteServiceFunc func(ctx context.Context, providerID, id uuid.UUID) (bool, error)
	listServicesFunc  func(ctx context.Context, providerID uuid.UUID) ([]*schedule.ServiceView, error)

	createWorkingHoursFunc func(ctx context.Context, providerID uuid.UUID, in schedule.CreateWorkingHoursInput) (*schedule.WorkingHoursView, error)
	updateWorkingHoursFunc func(ctx context.Context, providerID, id uuid.UUID, in schedule.UpdateWorkingHoursInput) (*schedule.WorkingHoursView, error)
	deleteWorkingHoursFunc func(ctx context.Context, providerID, id uuid.UUID) (bool, error)
	listWorkingHoursFunc   func(ctx context.Context, providerID uuid.UUID) ([]*schedule.WorkingHoursView, error)

	createBlockFunc func(ctx context.Context, providerID uuid.UUID, in schedule.CreateBlockInput) (*schedule.BlockView, error)
	listBlocksFunc  func(ctx context.Context, providerID uuid.UUID) ([]*schedule.BlockView, error)
	deleteBlockFunc func(ctx context.Context, providerID, id uuid.UUID) (bool, error)

	createAppointmentFunc func(ctx context.Context, providerID uuid.UUID, in schedule.CreateAppointmentInput) (*schedule.AppointmentView, error)
	listAppointmentsFunc  func(ctx context.Context, providerID uuid.UUID) ([]*schedule.AppointmentView, error)

	recordPaymentFunc func(ctx context.Context, providerID uuid.UUID, in schedule.RecordPaymentInput) (*schedule.PaymentView, error)
	listPaymentsFunc  func(ctx context.Context, providerID uuid.UUID) ([]*schedule.PaymentView, error)

	getOverviewFunc func(ctx context.Context, providerID uuid.UUID) (*schedule.OverviewView, error)
}

func (m *mockScheduler) CreateCustomer(ctx context.Context, providerID uuid.UUID, in schedule.CreateCustomerInput) (*schedule.CustomerView, error) {
	return m.createCustomerFunc(ctx, providerID, in)
}

func (m *mockScheduler) ListCustomers(ctx context.Context, providerID uuid.UUID) ([]*schedule.CustomerView, error) {
	return m.listCustomersFunc(ctx, providerID)
}

func (m *mockScheduler) CreateService(ctx context.Context, providerID uuid.UUID, in schedule.CreateServiceInput) (*schedule.ServiceView, error) {
	return m.createServiceFunc(ctx, providerID, in)
}

func (m *mockScheduler) GetService(ctx context.Context, providerID, id uuid.UUID) (*schedule.ServiceView, error) {
	return m.getServiceFunc(ctx, providerID, id)
}

func (m *mockScheduler) UpdateService(ctx context.Context, providerID, id uuid.UUID, in schedule.UpdateServiceInput) (*schedule.ServiceView, error) {
	return m.updateServiceFunc(ctx, providerID, id, in)
}

func (m *mockScheduler) DeleteService(ctx context.Context, providerID, id uuid.UUID) (bool, error) {
	return m.deleteServiceFunc(ctx, providerID, id)
}

func (m *mockScheduler) ListServices(ctx context.Context, providerID uuid.UUID) ([]*schedule.ServiceView, error) {
	return m.listServicesFunc(ctx, providerID)
}

func (m *mockScheduler) CreateWorkingHours(ctx context.Context, providerID uuid.UUID, in schedule.CreateWorkingHoursInput) (*schedule.WorkingHoursView, error) {
	return m.createWorkingHoursFunc(ctx, providerID, in)
}

func (m *mockScheduler) UpdateWorkingHours(ctx context.Context, providerID, id uuid.UUID, in schedule.UpdateWorkingHoursInput) (*schedule.WorkingHoursView, error) {
	return m.updateWorkingHoursFunc(ctx, providerID, id, in)
}

func (m *mockScheduler) DeleteWorkingHours(ctx context.Context, providerID, id uuid.UUID) (bool, error) {
	return m.deleteWorkingHoursFunc(ctx, providerID, id)
}

func (m *mockScheduler) ListWorkingHours(ctx context.Context, providerID uuid.UUID) ([]*schedule.WorkingHoursView, error) {
	return m.listWorkingHoursFunc(ctx, providerID)
}

func (m *mockScheduler) CreateBlock(ctx context.Context, providerID uuid.UUID, in schedule.CreateBlockInput) (*schedule.BlockView, error) {
	return m.createBlockFunc(ctx, providerID, in)
}

func (m *mockScheduler) ListBlocks(ctx context.Context, providerID uuid.UUID) ([]*schedule.BlockView, error) {
	return m.listBlocksFunc(ctx, providerID)
}

func (m *mockScheduler) DeleteBlock(ctx context.Context, providerID, id uuid.UUID) (bool, error) {
	return m.deleteBlockFunc(ctx, providerID, id)
}

func (m *mockScheduler) CreateAppointment(ctx context.Context, providerID uuid.UUID, in schedule.CreateAppointmentInput) (*schedule.AppointmentView, error) {
	return m.createAppointmentFunc(ctx, providerID, in)
}

func (m *mockScheduler) ListAppointments(ctx context.Context, providerID uuid.UUID) ([]*schedule.AppointmentView, error) {
	return m.listAppointmentsFunc(ctx, providerID)
}

func (m *mockScheduler) RecordPayment(ctx context.Context, providerID uuid.UUID, in schedule.RecordPaymentInput) (*schedule.PaymentView, error) {
	return m.recordPaymentFunc(ctx, providerID, in)
}

func (m *mockScheduler) ListPayments(ctx context.Context, providerID uuid.UUID) ([]*schedule.PaymentView, error) {
	return m.listPaymentsFunc(ctx, providerID)
}

func (m *mockScheduler) GetOverview(ctx context.Context, providerID uuid.UUID) (*schedule.OverviewView, error) {
	return m.getOverviewFunc(ctx, providerID)
}
