package domain

import (
	"context"
	"time"

	"github.com/google/uuid"
)

type Weekday string

const (
	WeekdaySunday    Weekday = "sunday"
	WeekdayMonday    Weekday = "monday"
	WeekdayTuesday   Weekday = "tuesday"
	WeekdayWednesday Weekday = "wednesday"
	WeekdayThursday  Weekday = "thursday"
	WeekdayFriday    Weekday = "friday"
	WeekdaySaturday  Weekday = "saturday"
)

// BreakWindow is a sub-window inside a working-hours range, as "HH:MM" pairs.
type BreakWindow struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

// WorkingHours is the recurring weekly availability window for one provider
// and one weekday. At most one record may exist per (provider, weekday).
type WorkingHours struct {
	ID           uuid.UUID
	ProviderID   uuid.UUID
	DayOfWeek    Weekday
	StartMinutes int
	EndMinutes   int
	BreakWindows []BreakWindow
	TimeZone     *string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// WorkingHoursRepository enforces the one-record-per-weekday invariant:
// Create and Update must atomically reject a duplicate (provider, weekday)
// with ErrConflict. Callers may pre-check with GetByDay as an early exit, but
// the repository is the source of truth.
type WorkingHoursRepository interface {
	Create(ctx context.Context, w *WorkingHours) error
	GetByID(ctx context.Context, providerID, id uuid.UUID) (*WorkingHours, error)
	GetByDay(ctx context.Context, providerID uuid.UUID, day Weekday) (*WorkingHours, error)
	Update(ctx context.Context, w *WorkingHours) error
	Delete(ctx context.Context, providerID, id uuid.UUID) (bool, error)
	List(ctx context.Context, providerID uuid.UUID) ([]*WorkingHours, error)
}
