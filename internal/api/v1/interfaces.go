package v1

import (
	"context"

	"github.com/google/uuid"

	"github.com/agendahub/agendahub/internal/schedule"
)

// Scheduler abstracts the scheduling service for handler testing.
// *schedule.Service satisfies this interface.
type Scheduler interface {
	CreateCustomer(ctx context.Context, providerID uuid.UUID, in schedule.CreateCustomerInput) (*schedule.CustomerView, error)
	ListCustomers(ctx context.Context, providerID uuid.UUID) ([]*schedule.CustomerView, error)

	CreateService(ctx context.Context, providerID uuid.UUID, in schedule.CreateServiceInput) (*schedule.ServiceView, error)
	GetService(ctx context.Context, providerID, id uuid.UUID) (*schedule.ServiceView, error)
	UpdateService(ctx context.Context, providerID, id uuid.UUID, in schedule.UpdateServiceInput) (*schedule.ServiceView, error)
	DeleteService(ctx context.Context, providerID, id uuid.UUID) (bool, error)
	ListServices(ctx context.Context, providerID uuid.UUID) ([]*schedule.ServiceView, error)

	CreateWorkingHours(ctx context.Context, providerID uuid.UUID, in schedule.CreateWorkingHoursInput) (*schedule.WorkingHoursView, error)
	UpdateWorkingHours(ctx context.Context, providerID, id uuid.UUID, in schedule.UpdateWorkingHoursInput) (*schedule.WorkingHoursView, error)
	DeleteWorkingHours(ctx context.Context, providerID, id uuid.UUID) (bool, error)
	ListWorkingHours(ctx context.Context, providerID uuid.UUID) ([]*schedule.WorkingHoursView, error)

	CreateBlock(ctx context.Context, providerID uuid.UUID, in schedule.CreateBlockInput) (*schedule.BlockView, error)
	ListBlocks(ctx context.Context, providerID uuid.UUID) ([]*schedule.BlockView, error)
	DeleteBlock(ctx context.Context, providerID, id uuid.UUID) (bool, error)

	CreateAppointment(ctx context.Context, providerID uuid.UUID, in schedule.CreateAppointmentInput) (*schedule.AppointmentView, error)
	ListAppointments(ctx context.Context, providerID uuid.UUID) ([]*schedule.AppointmentView, error)

	RecordPayment(ctx context.Context, providerID uuid.UUID, in schedule.RecordPaymentInput) (*schedule.PaymentView, error)
	ListPayments(ctx context.Context, providerID uuid.UUID) ([]*schedule.PaymentView, error)

	GetOverview(ctx context.Context, providerID uuid.UUID) (*schedule.OverviewView, error)
}
