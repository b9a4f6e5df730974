// Package memory is the in-memory persistence adapter. It exists for
// deterministic tests and demo deployments without a database, and mirrors
// the postgres adapter's semantics exactly: provider-scoped access, the
// unique working-hours weekday invariant, and the documented list orderings.
//
// All records are deep-copied on both write and read so callers never alias
// store-internal state. A Store is constructed per server instance or per
// test; there is no package-level state.
package memory

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/agendahub/agendahub/internal/domain"
)

type Store struct {
	mu sync.RWMutex

	customers    map[uuid.UUID]map[uuid.UUID]*domain.Customer
	services     map[uuid.UUID]map[uuid.UUID]*domain.Service
	workingHours map[uuid.UUID]map[uuid.UUID]*domain.WorkingHours
	blocks       map[uuid.UUID]map[uuid.UUID]*domain.Block
	appointments map[uuid.UUID]map[uuid.UUID]*domain.Appointment
	payments     map[uuid.UUID]map[uuid.UUID]*domain.PaymentRecord
}

func New() *Store {
	return &Store{
		customers:    make(map[uuid.UUID]map[uuid.UUID]*domain.Customer),
		services:     make(map[uuid.UUID]map[uuid.UUID]*domain.Service),
		workingHours: make(map[uuid.UUID]map[uuid.UUID]*domain.WorkingHours),
		blocks:       make(map[uuid.UUID]map[uuid.UUID]*domain.Block),
		appointments: make(map[uuid.UUID]map[uuid.UUID]*domain.Appointment),
		payments:     make(map[uuid.UUID]map[uuid.UUID]*domain.PaymentRecord),
	}
}

func (s *Store) Customers() domain.CustomerRepository        { return &customerRepo{s: s} }
func (s *Store) Services() domain.ServiceRepository          { return &serviceRepo{s: s} }
func (s *Store) WorkingHours() domain.WorkingHoursRepository { return &workingHoursRepo{s: s} }
func (s *Store) Blocks() domain.BlockRepository              { return &blockRepo{s: s} }
func (s *Store) Appointments() domain.AppointmentRepository  { return &appointmentRepo{s: s} }
func (s *Store) Payments() domain.PaymentRepository          { return &paymentRepo{s: s} }

func providerBucket[T any](m map[uuid.UUID]map[uuid.UUID]*T, providerID uuid.UUID) map[uuid.UUID]*T {
	bucket, ok := m[providerID]
	if !ok {
		bucket = make(map[uuid.UUID]*T)
		m[providerID] = bucket
	}
	return bucket
}

// ---------------------------------------------------------------------------
// Deep-copy helpers
// ---------------------------------------------------------------------------

func copyStringPtr(p *string) *string {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}

func copyTimePtr(p *time.Time) *time.Time {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}

func copyUUIDPtr(p *uuid.UUID) *uuid.UUID {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}

func copyDecimalPtr(p *decimal.Decimal) *decimal.Decimal {
	if p == nil {
		return nil
	}
	v := p.Copy()
	return &v
}

func copyMetadata(m map[string]any) map[string]any {
	if m == nil {
		return nil
	}
	out := make(map[string]any, len(m))
	for k, v := range m {
		out[k] = copyMetadataValue(v)
	}
	return out
}

func copyMetadataValue(v any) any {
	switch t := v.(type) {
	case map[string]any:
		return copyMetadata(t)
	case []any:
		out := make([]any, len(t))
		for i, e := range t {
			out[i] = copyMetadataValue(e)
		}
		return out
	default:
		return v
	}
}

func copyCustomer(c *domain.Customer) *domain.Customer {
	if c == nil {
		return nil
	}
	out := *c
	out.Email = copyStringPtr(c.Email)
	out.Phone = copyStringPtr(c.Phone)
	out.Notes = copyStringPtr(c.Notes)
	out.Tags = append([]string(nil), c.Tags...)
	return &out
}

func copyService(s *domain.Service) *domain.Service {
	if s == nil {
		return nil
	}
	out := *s
	out.Description = copyStringPtr(s.Description)
	out.Price = copyDecimalPtr(s.Price)
	return &out
}

func copyWorkingHours(w *domain.WorkingHours) *domain.WorkingHours {
	out := *w
	out.BreakWindows = append([]domain.BreakWindow(nil), w.BreakWindows...)
	out.TimeZone = copyStringPtr(w.TimeZone)
	return &out
}

func copyBlock(b *domain.Block) *domain.Block {
	out := *b
	out.Reason = copyStringPtr(b.Reason)
	out.Metadata = copyMetadata(b.Metadata)
	return &out
}

func copyAppointment(a *domain.Appointment) *domain.Appointment {
	out := *a
	out.CustomerID = copyUUIDPtr(a.CustomerID)
	out.ServiceID = copyUUIDPtr(a.ServiceID)
	out.Price = copyDecimalPtr(a.Price)
	out.Notes = copyStringPtr(a.Notes)
	out.Metadata = copyMetadata(a.Metadata)
	out.Customer = copyCustomer(a.Customer)
	out.Service = copyService(a.Service)
	return &out
}

func copyPayment(p *domain.PaymentRecord) *domain.PaymentRecord {
	out := *p
	out.AppointmentID = copyUUIDPtr(p.AppointmentID)
	out.CustomerID = copyUUIDPtr(p.CustomerID)
	out.Amount = p.Amount.Copy()
	out.Description = copyStringPtr(p.Description)
	out.ReceivedAt = copyTimePtr(p.ReceivedAt)
	out.Metadata = copyMetadata(p.Metadata)
	return &out
}

// ---------------------------------------------------------------------------
// Customers
// ---------------------------------------------------------------------------

type customerRepo struct {
	s *Store
}

func (r *customerRepo) Create(_ context.Context, c *domain.Customer) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	providerBucket(r.s.customers, c.ProviderID)[c.ID] = copyCustomer(c)
	return nil
}

func (r *customerRepo) GetByID(_ context.Context, providerID, id uuid.UUID) (*domain.Customer, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	c, ok := r.s.customers[providerID][id]
	if !ok {
		return nil, fmt.Errorf("memory: customer GetByID: %w", domain.ErrNotFound)
	}
	return copyCustomer(c), nil
}

func (r *customerRepo) List(_ context.Context, providerID uuid.UUID) ([]*domain.Customer, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	out := make([]*domain.Customer, 0, len(r.s.customers[providerID]))
	for _, c := range r.s.customers[providerID] {
		out = append(out, copyCustomer(c))
	}
	// Newest first, matching the postgres ORDER BY created_at DESC.
	sort.Slice(out, func(i, j int) bool {
		if !out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].CreatedAt.After(out[j].CreatedAt)
		}
		return out[i].ID.String() < out[j].ID.String()
	})
	return out, nil
}

func (r *customerRepo) Exists(_ context.Context, providerID, id uuid.UUID) (bool, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	_, ok := r.s.customers[providerID][id]
	return ok, nil
}

// ---------------------------------------------------------------------------
// Services
// ---------------------------------------------------------------------------

type serviceRepo struct {
	s *Store
}

func (r *serviceRepo) Create(_ context.Context, svc *domain.Service) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	providerBucket(r.s.services, svc.ProviderID)[svc.ID] = copyService(svc)
	return nil
}

func (r *serviceRepo) GetByID(_ context.Context, providerID, id uuid.UUID) (*domain.Service, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	svc, ok := r.s.services[providerID][id]
	if !ok {
		return nil, fmt.Errorf("memory: service GetByID: %w", domain.ErrNotFound)
	}
	return copyService(svc), nil
}

func (r *serviceRepo) Update(_ context.Context, svc *domain.Service) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	bucket := providerBucket(r.s.services, svc.ProviderID)
	if _, ok := bucket[svc.ID]; !ok {
		return fmt.Errorf("memory: service Update: %w", domain.ErrNotFound)
	}
	bucket[svc.ID] = copyService(svc)
	return nil
}

func (r *serviceRepo) Delete(_ context.Context, providerID, id uuid.UUID) (bool, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.services[providerID][id]; !ok {
		return false, nil
	}
	delete(r.s.services[providerID], id)
	return true, nil
}

func (r *serviceRepo) List(_ context.Context, providerID uuid.UUID) ([]*domain.Service, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	out := make([]*domain.Service, 0, len(r.s.services[providerID]))
	for _, svc := range r.s.services[providerID] {
		out = append(out, copyService(svc))
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].CreatedAt.After(out[j].CreatedAt)
		}
		return out[i].ID.String() < out[j].ID.String()
	})
	return out, nil
}

func (r *serviceRepo) Exists(_ context.Context, providerID, id uuid.UUID) (bool, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	_, ok := r.s.services[providerID][id]
	return ok, nil
}

// ---------------------------------------------------------------------------
// Working hours
// ---------------------------------------------------------------------------

type workingHoursRepo struct {
	s *Store
}

func (r *workingHoursRepo) Create(_ context.Context, w *domain.WorkingHours) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	bucket := providerBucket(r.s.workingHours, w.ProviderID)
	// Insert-or-reject under the same lock: the weekday invariant holds even
	// when two requests race past the service-level pre-check.
	for _, existing := range bucket {
		if existing.DayOfWeek == w.DayOfWeek {
			return fmt.Errorf("memory: working hours Create: day %s: %w", w.DayOfWeek, domain.ErrConflict)
		}
	}
	bucket[w.ID] = copyWorkingHours(w)
	return nil
}

func (r *workingHoursRepo) GetByID(_ context.Context, providerID, id uuid.UUID) (*domain.WorkingHours, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	w, ok := r.s.workingHours[providerID][id]
	if !ok {
		return nil, fmt.Errorf("memory: working hours GetByID: %w", domain.ErrNotFound)
	}
	return copyWorkingHours(w), nil
}

func (r *workingHoursRepo) GetByDay(_ context.Context, providerID uuid.UUID, day domain.Weekday) (*domain.WorkingHours, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	for _, w := range r.s.workingHours[providerID] {
		if w.DayOfWeek == day {
			return copyWorkingHours(w), nil
		}
	}
	return nil, fmt.Errorf("memory: working hours GetByDay: %w", domain.ErrNotFound)
}

func (r *workingHoursRepo) Update(_ context.Context, w *domain.WorkingHours) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	bucket := providerBucket(r.s.workingHours, w.ProviderID)
	if _, ok := bucket[w.ID]; !ok {
		return fmt.Errorf("memory: working hours Update: %w", domain.ErrNotFound)
	}
	for id, existing := range bucket {
		if id != w.ID && existing.DayOfWeek == w.DayOfWeek {
			return fmt.Errorf("memory: working hours Update: day %s: %w", w.DayOfWeek, domain.ErrConflict)
		}
	}
	bucket[w.ID] = copyWorkingHours(w)
	return nil
}

func (r *workingHoursRepo) Delete(_ context.Context, providerID, id uuid.UUID) (bool, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.workingHours[providerID][id]; !ok {
		return false, nil
	}
	delete(r.s.workingHours[providerID], id)
	return true, nil
}

func (r *workingHoursRepo) List(_ context.Context, providerID uuid.UUID) ([]*domain.WorkingHours, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	out := make([]*domain.WorkingHours, 0, len(r.s.workingHours[providerID]))
	for _, w := range r.s.workingHours[providerID] {
		out = append(out, copyWorkingHours(w))
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].CreatedAt.Before(out[j].CreatedAt)
		}
		return out[i].ID.String() < out[j].ID.String()
	})
	return out, nil
}

// ---------------------------------------------------------------------------
// Blocks
// ---------------------------------------------------------------------------

type blockRepo struct {
	s *Store
}

func (r *blockRepo) Create(_ context.Context, b *domain.Block) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	providerBucket(r.s.blocks, b.ProviderID)[b.ID] = copyBlock(b)
	return nil
}

func (r *blockRepo) List(_ context.Context, providerID uuid.UUID) ([]*domain.Block, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	out := make([]*domain.Block, 0, len(r.s.blocks[providerID]))
	for _, b := range r.s.blocks[providerID] {
		out = append(out, copyBlock(b))
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].StartsAt.Equal(out[j].StartsAt) {
			return out[i].StartsAt.After(out[j].StartsAt)
		}
		return out[i].ID.String() < out[j].ID.String()
	})
	return out, nil
}

func (r *blockRepo) Delete(_ context.Context, providerID, id uuid.UUID) (bool, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.blocks[providerID][id]; !ok {
		return false, nil
	}
	delete(r.s.blocks[providerID], id)
	return true, nil
}

// ---------------------------------------------------------------------------
// Appointments
// ---------------------------------------------------------------------------

type appointmentRepo struct {
	s *Store
}

func (r *appointmentRepo) Create(_ context.Context, a *domain.Appointment) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	providerBucket(r.s.appointments, a.ProviderID)[a.ID] = copyAppointment(a)
	return nil
}

func (r *appointmentRepo) List(_ context.Context, providerID uuid.UUID) ([]*domain.Appointment, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	out := make([]*domain.Appointment, 0, len(r.s.appointments[providerID]))
	for _, a := range r.s.appointments[providerID] {
		clone := copyAppointment(a)
		// Denormalize, matching the relational adapter's joined reads.
		if clone.CustomerID != nil {
			clone.Customer = copyCustomer(r.s.customers[providerID][*clone.CustomerID])
		}
		if clone.ServiceID != nil {
			clone.Service = copyService(r.s.services[providerID][*clone.ServiceID])
		}
		out = append(out, clone)
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].StartsAt.Equal(out[j].StartsAt) {
			return out[i].StartsAt.Before(out[j].StartsAt)
		}
		return out[i].ID.String() < out[j].ID.String()
	})
	return out, nil
}

func (r *appointmentRepo) Exists(_ context.Context, providerID, id uuid.UUID) (bool, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	_, ok := r.s.appointments[providerID][id]
	return ok, nil
}

func (r *appointmentRepo) AnyOverlapping(_ context.Context, providerID uuid.UUID, startsAt, endsAt time.Time) (bool, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	for _, a := range r.s.appointments[providerID] {
		if a.Status == domain.AppointmentStatusCancelled {
			continue
		}
		if a.StartsAt.Before(endsAt) && a.EndsAt.After(startsAt) {
			return true, nil
		}
	}
	return false, nil
}

// ---------------------------------------------------------------------------
// Payments
// ---------------------------------------------------------------------------

type paymentRepo struct {
	s *Store
}

func (r *paymentRepo) Create(_ context.Context, p *domain.PaymentRecord) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	providerBucket(r.s.payments, p.ProviderID)[p.ID] = copyPayment(p)
	return nil
}

func (r *paymentRepo) List(_ context.Context, providerID uuid.UUID) ([]*domain.PaymentRecord, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	out := make([]*domain.PaymentRecord, 0, len(r.s.payments[providerID]))
	for _, p := range r.s.payments[providerID] {
		out = append(out, copyPayment(p))
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].RecordedAt.Equal(out[j].RecordedAt) {
			return out[i].RecordedAt.After(out[j].RecordedAt)
		}
		return out[i].ID.String() < out[j].ID.String()
	})
	return out, nil
}
