// Package schedule is the scheduling domain service: provider-scoped business
// rules for customers, services, working hours, blocks, appointments and
// payment records. Persistence is injected as a repository accessor, so the
// same rules run against the postgres adapter and the in-memory adapter.
package schedule

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/agendahub/agendahub/internal/domain"
)

// DefaultCurrency applies when a payload carries no currency.
const DefaultCurrency = "BRL"

// Store abstracts the repository accessors. Both *postgres.Store and
// *memory.Store satisfy it; the implementation is chosen at composition time.
type Store interface {
	Customers() domain.CustomerRepository
	Services() domain.ServiceRepository
	WorkingHours() domain.WorkingHoursRepository
	Blocks() domain.BlockRepository
	Appointments() domain.AppointmentRepository
	Payments() domain.PaymentRepository
}

// Cache is an optional read-side cache for the overview aggregate.
// *redis.OverviewCache satisfies it.
type Cache interface {
	GetOverview(ctx context.Context, providerID uuid.UUID) (*OverviewView, bool)
	SetOverview(ctx context.Context, providerID uuid.UUID, overview *OverviewView)
	Invalidate(ctx context.Context, providerID uuid.UUID)
}

type Service struct {
	store Store
	cache Cache
	now   func() time.Time

	strictBreaks   bool
	enforceOverlap bool
}

type Option func(*Service)

// WithClock replaces the time source, for deterministic tests.
func WithClock(now func() time.Time) Option {
	return func(s *Service) { s.now = now }
}

// WithCache enables overview caching. Writes invalidate the provider's entry.
func WithCache(c Cache) Option {
	return func(s *Service) { s.cache = c }
}

// WithStrictBreakWindows makes invalid break windows a validation error
// instead of silently dropping them.
func WithStrictBreakWindows(strict bool) Option {
	return func(s *Service) { s.strictBreaks = strict }
}

// WithOverlapEnforcement rejects appointments overlapping an existing
// non-cancelled appointment. Off by default: overlap is a legitimate state
// for multi-staff providers.
func WithOverlapEnforcement(enforce bool) Option {
	return func(s *Service) { s.enforceOverlap = enforce }
}

func NewService(store Store, opts ...Option) *Service {
	s := &Service{
		store: store,
		now:   time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// invalidateOverview drops the provider's cached overview after a write.
func (s *Service) invalidateOverview(ctx context.Context, providerID uuid.UUID) {
	if s.cache != nil {
		s.cache.Invalidate(ctx, providerID)
	}
}

// ---------------------------------------------------------------------------
// Customers
// ---------------------------------------------------------------------------

type CreateCustomerInput struct {
	Name  string
	Email *string
	Phone *string
	Notes *string
	Tags  []string
}

func (s *Service) CreateCustomer(ctx context.Context, providerID uuid.UUID, in CreateCustomerInput) (*CustomerView, error) {
	now := s.now()
	c := &domain.Customer{
		ID:         uuid.New(),
		ProviderID: providerID,
		Name:       in.Name,
		Email:      normalizeOptional(in.Email),
		Phone:      normalizeOptional(in.Phone),
		Notes:      normalizeOptional(in.Notes),
		Tags:       in.Tags,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if c.Tags == nil {
		c.Tags = []string{}
	}

	if err := s.store.Customers().Create(ctx, c); err != nil {
		return nil, fmt.Errorf("schedule.CreateCustomer: %w", err)
	}

	s.invalidateOverview(ctx, providerID)
	return sanitizeCustomer(c), nil
}

func (s *Service) ListCustomers(ctx context.Context, providerID uuid.UUID) ([]*CustomerView, error) {
	customers, err := s.store.Customers().List(ctx, providerID)
	if err != nil {
		return nil, fmt.Errorf("schedule.ListCustomers: %w", err)
	}

	views := make([]*CustomerView, len(customers))
	for i, c := range customers {
		views[i] = sanitizeCustomer(c)
	}
	return views, nil
}

// ---------------------------------------------------------------------------
// Services (catalog)
// ---------------------------------------------------------------------------

type CreateServiceInput struct {
	Name            string
	Description     *string
	DurationMinutes int
	Price           *decimal.Decimal
	Currency        string
	IsActive        *bool
	BufferBefore    int
	BufferAfter     int
}

func (s *Service) CreateService(ctx context.Context, providerID uuid.UUID, in CreateServiceInput) (*ServiceView, error) {
	now := s.now()
	svc := &domain.Service{
		ID:              uuid.New(),
		ProviderID:      providerID,
		Name:            in.Name,
		Description:     normalizeOptional(in.Description),
		DurationMinutes: in.DurationMinutes,
		Price:           in.Price,
		Currency:        normalizeCurrency(in.Currency),
		IsActive:        in.IsActive == nil || *in.IsActive,
		BufferBefore:    in.BufferBefore,
		BufferAfter:     in.BufferAfter,
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	if err := s.store.Services().Create(ctx, svc); err != nil {
		return nil, fmt.Errorf("schedule.CreateService: %w", err)
	}

	s.invalidateOverview(ctx, providerID)
	return sanitizeService(svc), nil
}

func (s *Service) GetService(ctx context.Context, providerID, id uuid.UUID) (*ServiceView, error) {
	svc, err := s.store.Services().GetByID(ctx, providerID, id)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("schedule.GetService: %w", err)
	}
	return sanitizeService(svc), nil
}

// UpdateServiceInput carries a partial update: nil means unchanged. An empty
// string clears a nullable text field.
type UpdateServiceInput struct {
	Name            *string
	Description     *string
	DurationMinutes *int
	Price           *decimal.Decimal
	Currency        *string
	IsActive        *bool
	BufferBefore    *int
	BufferAfter     *int
}

// UpdateService merges the partial update into the stored record. Returns
// (nil, nil) when the service does not exist under this provider.
func (s *Service) UpdateService(ctx context.Context, providerID, id uuid.UUID, in UpdateServiceInput) (*ServiceView, error) {
	svc, err := s.store.Services().GetByID(ctx, providerID, id)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("schedule.UpdateService: %w", err)
	}

	if in.Name != nil {
		svc.Name = *in.Name
	}
	if in.Description != nil {
		svc.Description = normalizeOptional(in.Description)
	}
	if in.DurationMinutes != nil {
		svc.DurationMinutes = *in.DurationMinutes
	}
	if in.Price != nil {
		svc.Price = in.Price
	}
	if in.Currency != nil {
		svc.Currency = normalizeCurrency(*in.Currency)
	}
	if in.IsActive != nil {
		svc.IsActive = *in.IsActive
	}
	if in.BufferBefore != nil {
		svc.BufferBefore = *in.BufferBefore
	}
	if in.BufferAfter != nil {
		svc.BufferAfter = *in.BufferAfter
	}
	svc.UpdatedAt = s.now()

	err = s.store.Services().Update(ctx, svc)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("schedule.UpdateService: %w", err)
	}

	s.invalidateOverview(ctx, providerID)
	return sanitizeService(svc), nil
}

func (s *Service) DeleteService(ctx context.Context, providerID, id uuid.UUID) (bool, error) {
	deleted, err := s.store.Services().Delete(ctx, providerID, id)
	if err != nil {
		return false, fmt.Errorf("schedule.DeleteService: %w", err)
	}
	if deleted {
		s.invalidateOverview(ctx, providerID)
	}
	return deleted, nil
}

func (s *Service) ListServices(ctx context.Context, providerID uuid.UUID) ([]*ServiceView, error) {
	services, err := s.store.Services().List(ctx, providerID)
	if err != nil {
		return nil, fmt.Errorf("schedule.ListServices: %w", err)
	}

	views := make([]*ServiceView, len(services))
	for i, svc := range services {
		views[i] = sanitizeService(svc)
	}
	return views, nil
}

// ---------------------------------------------------------------------------
// Shared input normalization
// ---------------------------------------------------------------------------

// normalizeOptional trims an optional string; empty becomes null.
func normalizeOptional(p *string) *string {
	if p == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*p)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}

func normalizeCurrency(currency string) string {
	trimmed := strings.TrimSpace(currency)
	if trimmed == "" {
		return DefaultCurrency
	}
	return strings.ToUpper(trimmed)
}
