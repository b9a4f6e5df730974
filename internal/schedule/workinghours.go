package schedule

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/agendahub/agendahub/internal/domain"
	"github.com/agendahub/agendahub/internal/timeutil"
)

type CreateWorkingHoursInput struct {
	DayOfWeek    int // 0=sunday .. 6=saturday
	StartTime    string
	EndTime      string
	BreakWindows []domain.BreakWindow
	TimeZone     *string
}

func (s *Service) CreateWorkingHours(ctx context.Context, providerID uuid.UUID, in CreateWorkingHoursInput) (*WorkingHoursView, error) {
	day, ok := timeutil.NormalizeWeekday(in.DayOfWeek)
	if !ok {
		return nil, domain.ErrWorkingHourInvalidDay
	}

	startMinutes := timeutil.StringToMinutes(in.StartTime)
	endMinutes := timeutil.StringToMinutes(in.EndTime)
	if endMinutes <= startMinutes {
		return nil, domain.ErrWorkingHourInvalidRange
	}

	breaks, err := s.normalizeBreakWindows(in.BreakWindows, startMinutes, endMinutes)
	if err != nil {
		return nil, err
	}

	// Early exit on an existing record for the day. The repository's atomic
	// insert-or-reject below is the authoritative guard; this pre-check only
	// saves the round trip in the common case.
	_, err = s.store.WorkingHours().GetByDay(ctx, providerID, day)
	if err == nil {
		return nil, domain.ErrWorkingHourConflict
	}
	if !errors.Is(err, domain.ErrNotFound) {
		return nil, fmt.Errorf("schedule.CreateWorkingHours: %w", err)
	}

	now := s.now()
	w := &domain.WorkingHours{
		ID:           uuid.New(),
		ProviderID:   providerID,
		DayOfWeek:    day,
		StartMinutes: startMinutes,
		EndMinutes:   endMinutes,
		BreakWindows: breaks,
		TimeZone:     normalizeOptional(in.TimeZone),
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	err = s.store.WorkingHours().Create(ctx, w)
	if errors.Is(err, domain.ErrConflict) {
		return nil, domain.ErrWorkingHourConflict
	}
	if err != nil {
		return nil, fmt.Errorf("schedule.CreateWorkingHours: %w", err)
	}

	s.invalidateOverview(ctx, providerID)
	return sanitizeWorkingHours(w), nil
}

// UpdateWorkingHoursInput carries a partial update: nil means unchanged.
// A non-nil BreakWindows slice replaces the stored windows, empty included.
type UpdateWorkingHoursInput struct {
	DayOfWeek    *int
	StartTime    *string
	EndTime      *string
	BreakWindows []domain.BreakWindow
	TimeZone     *string
}

// UpdateWorkingHours re-validates the merged record: day conflicts exclude
// the record itself, the time range uses merged old/new values, and break
// windows are re-filtered against the merged range. Returns (nil, nil) when
// the record does not exist under this provider.
func (s *Service) UpdateWorkingHours(ctx context.Context, providerID, id uuid.UUID, in UpdateWorkingHoursInput) (*WorkingHoursView, error) {
	w, err := s.store.WorkingHours().GetByID(ctx, providerID, id)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("schedule.UpdateWorkingHours: %w", err)
	}

	if in.DayOfWeek != nil {
		day, ok := timeutil.NormalizeWeekday(*in.DayOfWeek)
		if !ok {
			return nil, domain.ErrWorkingHourInvalidDay
		}

		existing, dayErr := s.store.WorkingHours().GetByDay(ctx, providerID, day)
		if dayErr == nil && existing.ID != id {
			return nil, domain.ErrWorkingHourConflict
		}
		if dayErr != nil && !errors.Is(dayErr, domain.ErrNotFound) {
			return nil, fmt.Errorf("schedule.UpdateWorkingHours: %w", dayErr)
		}

		w.DayOfWeek = day
	}

	startMinutes := w.StartMinutes
	if in.StartTime != nil {
		startMinutes = timeutil.StringToMinutes(*in.StartTime)
	}
	endMinutes := w.EndMinutes
	if in.EndTime != nil {
		endMinutes = timeutil.StringToMinutes(*in.EndTime)
	}
	if endMinutes <= startMinutes {
		return nil, domain.ErrWorkingHourInvalidRange
	}
	w.StartMinutes = startMinutes
	w.EndMinutes = endMinutes

	windows := w.BreakWindows
	if in.BreakWindows != nil {
		windows = in.BreakWindows
	}
	w.BreakWindows, err = s.normalizeBreakWindows(windows, startMinutes, endMinutes)
	if err != nil {
		return nil, err
	}

	if in.TimeZone != nil {
		w.TimeZone = normalizeOptional(in.TimeZone)
	}
	w.UpdatedAt = s.now()

	err = s.store.WorkingHours().Update(ctx, w)
	if errors.Is(err, domain.ErrConflict) {
		return nil, domain.ErrWorkingHourConflict
	}
	if errors.Is(err, domain.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("schedule.UpdateWorkingHours: %w", err)
	}

	s.invalidateOverview(ctx, providerID)
	return sanitizeWorkingHours(w), nil
}

func (s *Service) DeleteWorkingHours(ctx context.Context, providerID, id uuid.UUID) (bool, error) {
	deleted, err := s.store.WorkingHours().Delete(ctx, providerID, id)
	if err != nil {
		return false, fmt.Errorf("schedule.DeleteWorkingHours: %w", err)
	}
	if deleted {
		s.invalidateOverview(ctx, providerID)
	}
	return deleted, nil
}

func (s *Service) ListWorkingHours(ctx context.Context, providerID uuid.UUID) ([]*WorkingHoursView, error) {
	hours, err := s.store.WorkingHours().List(ctx, providerID)
	if err != nil {
		return nil, fmt.Errorf("schedule.ListWorkingHours: %w", err)
	}

	views := make([]*WorkingHoursView, len(hours))
	for i, w := range hours {
		views[i] = sanitizeWorkingHours(w)
	}
	return views, nil
}

// normalizeBreakWindows keeps only windows lying fully inside
// [startMinutes, endMinutes] with end > start. The default policy silently
// drops invalid windows; strict mode rejects them instead.
func (s *Service) normalizeBreakWindows(windows []domain.BreakWindow, startMinutes, endMinutes int) ([]domain.BreakWindow, error) {
	out := make([]domain.BreakWindow, 0, len(windows))
	for _, w := range windows {
		if w.Start == "" || w.End == "" {
			if s.strictBreaks {
				return nil, domain.ErrWorkingHourInvalidRange
			}
			continue
		}

		start := timeutil.StringToMinutes(w.Start)
		end := timeutil.StringToMinutes(w.End)
		if start < startMinutes || end > endMinutes || end <= start {
			if s.strictBreaks {
				return nil, domain.ErrWorkingHourInvalidRange
			}
			continue
		}

		out = append(out, w)
	}
	return out, nil
}
