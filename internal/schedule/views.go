package schedule

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/agendahub/agendahub/internal/domain"
	"github.com/agendahub/agendahub/internal/timeutil"
)

// View types are the API-safe shapes: decimals become JSON numbers rounded to
// two places, timestamps become RFC 3339 strings, and absent optional fields
// serialize as null, never omitted.

type CustomerView struct {
	ID         uuid.UUID `json:"id"`
	ProviderID uuid.UUID `json:"providerId"`
	Name       string    `json:"name"`
	Email      *string   `json:"email"`
	Phone      *string   `json:"phone"`
	Notes      *string   `json:"notes"`
	Tags       []string  `json:"tags"`
	CreatedAt  string    `json:"createdAt"`
	UpdatedAt  string    `json:"updatedAt"`
}

type ServiceView struct {
	ID              uuid.UUID `json:"id"`
	ProviderID      uuid.UUID `json:"providerId"`
	Name            string    `json:"name"`
	Description     *string   `json:"description"`
	DurationMinutes int       `json:"durationMinutes"`
	Price           *float64  `json:"price"`
	Currency        string    `json:"currency"`
	IsActive        bool      `json:"isActive"`
	BufferBefore    int       `json:"bufferBefore"`
	BufferAfter     int       `json:"bufferAfter"`
	CreatedAt       string    `json:"createdAt"`
	UpdatedAt       string    `json:"updatedAt"`
}

type WorkingHoursView struct {
	ID           uuid.UUID            `json:"id"`
	ProviderID   uuid.UUID            `json:"providerId"`
	DayOfWeek    domain.Weekday       `json:"dayOfWeek"`
	StartMinutes int                  `json:"startMinutes"`
	EndMinutes   int                  `json:"endMinutes"`
	DayIndex     int                  `json:"dayIndex"`
	StartTime    string               `json:"startTime"`
	EndTime      string               `json:"endTime"`
	BreakWindows []domain.BreakWindow `json:"breakWindows"`
	TimeZone     *string              `json:"timeZone"`
	CreatedAt    string               `json:"createdAt"`
	UpdatedAt    string               `json:"updatedAt"`
}

type BlockView struct {
	ID         uuid.UUID        `json:"id"`
	ProviderID uuid.UUID        `json:"providerId"`
	StartsAt   string           `json:"startsAt"`
	EndsAt     string           `json:"endsAt"`
	Reason     *string          `json:"reason"`
	Type       domain.BlockType `json:"type"`
	Metadata   map[string]any   `json:"metadata"`
	CreatedAt  string           `json:"createdAt"`
	UpdatedAt  string           `json:"updatedAt"`
}

type AppointmentView struct {
	ID         uuid.UUID                `json:"id"`
	ProviderID uuid.UUID                `json:"providerId"`
	CustomerID *uuid.UUID               `json:"customerId"`
	ServiceID  *uuid.UUID               `json:"serviceId"`
	StartsAt   string                   `json:"startsAt"`
	EndsAt     string                   `json:"endsAt"`
	Status     domain.AppointmentStatus `json:"status"`
	Price      *float64                 `json:"price"`
	Currency   string                   `json:"currency"`
	Source     domain.AppointmentSource `json:"source"`
	Notes      *string                  `json:"notes"`
	Metadata   map[string]any           `json:"metadata"`
	CreatedAt  string                   `json:"createdAt"`
	UpdatedAt  string                   `json:"updatedAt"`
	Customer   *CustomerView            `json:"customer"`
	Service    *ServiceView             `json:"service"`
}

type PaymentView struct {
	ID            uuid.UUID            `json:"id"`
	ProviderID    uuid.UUID            `json:"providerId"`
	AppointmentID *uuid.UUID           `json:"appointmentId"`
	CustomerID    *uuid.UUID           `json:"customerId"`
	Amount        float64              `json:"amount"`
	Currency      string               `json:"currency"`
	Method        domain.PaymentMethod `json:"method"`
	Status        domain.PaymentStatus `json:"status"`
	Description   *string              `json:"description"`
	RecordedAt    string               `json:"recordedAt"`
	ReceivedAt    *string              `json:"receivedAt"`
	Metadata      map[string]any       `json:"metadata"`
	CreatedAt     string               `json:"createdAt"`
	UpdatedAt     string               `json:"updatedAt"`
}

type OverviewSummary struct {
	TotalCustomers       int     `json:"totalCustomers"`
	TotalServices        int     `json:"totalServices"`
	TotalAppointments    int     `json:"totalAppointments"`
	UpcomingAppointments int     `json:"upcomingAppointments"`
	TotalRevenueReceived float64 `json:"totalRevenueReceived"`
}

type OverviewView struct {
	Customers    []*CustomerView     `json:"customers"`
	Services     []*ServiceView      `json:"services"`
	Appointments []*AppointmentView  `json:"appointments"`
	WorkingHours []*WorkingHoursView `json:"workingHours"`
	Blocks       []*BlockView        `json:"blocks"`
	Payments     []*PaymentView      `json:"payments"`
	Summary      OverviewSummary     `json:"summary"`
}

// ---------------------------------------------------------------------------
// Sanitizers
// ---------------------------------------------------------------------------

func isoTime(t time.Time) string {
	return t.UTC().Format(time.RFC3339Nano)
}

func isoTimePtr(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := isoTime(*t)
	return &s
}

// roundedAmount converts a fixed-point amount to a JSON number with the
// 2-decimal rounding contract applied.
func roundedAmount(d decimal.Decimal) float64 {
	return d.Round(2).InexactFloat64()
}

func roundedAmountPtr(d *decimal.Decimal) *float64 {
	if d == nil {
		return nil
	}
	v := roundedAmount(*d)
	return &v
}

func sanitizeCustomer(c *domain.Customer) *CustomerView {
	if c == nil {
		return nil
	}
	tags := c.Tags
	if tags == nil {
		tags = []string{}
	}
	return &CustomerView{
		ID:         c.ID,
		ProviderID: c.ProviderID,
		Name:       c.Name,
		Email:      c.Email,
		Phone:      c.Phone,
		Notes:      c.Notes,
		Tags:       tags,
		CreatedAt:  isoTime(c.CreatedAt),
		UpdatedAt:  isoTime(c.UpdatedAt),
	}
}

func sanitizeService(s *domain.Service) *ServiceView {
	if s == nil {
		return nil
	}
	return &ServiceView{
		ID:              s.ID,
		ProviderID:      s.ProviderID,
		Name:            s.Name,
		Description:     s.Description,
		DurationMinutes: s.DurationMinutes,
		Price:           roundedAmountPtr(s.Price),
		Currency:        s.Currency,
		IsActive:        s.IsActive,
		BufferBefore:    s.BufferBefore,
		BufferAfter:     s.BufferAfter,
		CreatedAt:       isoTime(s.CreatedAt),
		UpdatedAt:       isoTime(s.UpdatedAt),
	}
}

func sanitizeWorkingHours(w *domain.WorkingHours) *WorkingHoursView {
	if w == nil {
		return nil
	}
	windows := w.BreakWindows
	if windows == nil {
		windows = []domain.BreakWindow{}
	}
	return &WorkingHoursView{
		ID:           w.ID,
		ProviderID:   w.ProviderID,
		DayOfWeek:    w.DayOfWeek,
		StartMinutes: w.StartMinutes,
		EndMinutes:   w.EndMinutes,
		DayIndex:     timeutil.WeekdayIndex(w.DayOfWeek),
		StartTime:    timeutil.MinutesToString(w.StartMinutes),
		EndTime:      timeutil.MinutesToString(w.EndMinutes),
		BreakWindows: windows,
		TimeZone:     w.TimeZone,
		CreatedAt:    isoTime(w.CreatedAt),
		UpdatedAt:    isoTime(w.UpdatedAt),
	}
}

func sanitizeBlock(b *domain.Block) *BlockView {
	if b == nil {
		return nil
	}
	return &BlockView{
		ID:         b.ID,
		ProviderID: b.ProviderID,
		StartsAt:   isoTime(b.StartsAt),
		EndsAt:     isoTime(b.EndsAt),
		Reason:     b.Reason,
		Type:       b.Type,
		Metadata:   b.Metadata,
		CreatedAt:  isoTime(b.CreatedAt),
		UpdatedAt:  isoTime(b.UpdatedAt),
	}
}

func sanitizeAppointment(a *domain.Appointment) *AppointmentView {
	if a == nil {
		return nil
	}
	return &AppointmentView{
		ID:         a.ID,
		ProviderID: a.ProviderID,
		CustomerID: a.CustomerID,
		ServiceID:  a.ServiceID,
		StartsAt:   isoTime(a.StartsAt),
		EndsAt:     isoTime(a.EndsAt),
		Status:     a.Status,
		Price:      roundedAmountPtr(a.Price),
		Currency:   a.Currency,
		Source:     a.Source,
		Notes:      a.Notes,
		Metadata:   a.Metadata,
		CreatedAt:  isoTime(a.CreatedAt),
		UpdatedAt:  isoTime(a.UpdatedAt),
		Customer:   sanitizeCustomer(a.Customer),
		Service:    sanitizeService(a.Service),
	}
}

func sanitizePayment(p *domain.PaymentRecord) *PaymentView {
	if p == nil {
		return nil
	}
	return &PaymentView{
		ID:            p.ID,
		ProviderID:    p.ProviderID,
		AppointmentID: p.AppointmentID,
		CustomerID:    p.CustomerID,
		Amount:        roundedAmount(p.Amount),
		Currency:      p.Currency,
		Method:        p.Method,
		Status:        p.Status,
		Description:   p.Description,
		RecordedAt:    isoTime(p.RecordedAt),
		ReceivedAt:    isoTimePtr(p.ReceivedAt),
		Metadata:      p.Metadata,
		CreatedAt:     isoTime(p.CreatedAt),
		UpdatedAt:     isoTime(p.UpdatedAt),
	}
}
