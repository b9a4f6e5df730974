package server

import (
	"github.com/danielgtaylor/huma/v2"

	v1 "github.com/agendahub/agendahub/internal/api/v1"
)

func registerAPIRoutes(api huma.API, scheduler v1.Scheduler) {
	v1.RegisterCustomerRoutes(api, scheduler)
	v1.RegisterServiceRoutes(api, scheduler)
	v1.RegisterWorkingHoursRoutes(api, scheduler)
	v1.RegisterBlockRoutes(api, scheduler)
	v1.RegisterAppointmentRoutes(api, scheduler)
	v1.RegisterPaymentRoutes(api, scheduler)
	v1.RegisterOverviewRoutes(api, scheduler)
}
