package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/agendahub/agendahub/internal/domain"
)

type Store struct {
	pool         *pgxpool.Pool
	customers    *CustomerRepo
	services     *ServiceRepo
	workingHours *WorkingHoursRepo
	blocks       *BlockRepo
	appointments *AppointmentRepo
	payments     *PaymentRepo
}

func New(ctx context.Context, dsn string, maxConns int32) (*Store, error) {
	cfg, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, fmt.Errorf("postgres.New: parse config: %w", err)
	}

	cfg.MaxConns = maxConns

	pool, err := pgxpool.NewWithConfig(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("postgres.New: connect: %w", err)
	}

	err = pool.Ping(ctx)
	if err != nil {
		pool.Close()
		return nil, fmt.Errorf("postgres.New: ping: %w", err)
	}

	return &Store{
		pool:         pool,
		customers:    NewCustomerRepo(pool),
		services:     NewServiceRepo(pool),
		workingHours: NewWorkingHoursRepo(pool),
		blocks:       NewBlockRepo(pool),
		appointments: NewAppointmentRepo(pool),
		payments:     NewPaymentRepo(pool),
	}, nil
}

func (s *Store) Close() {
	s.pool.Close()
}

func (s *Store) Customers() domain.CustomerRepository        { return s.customers }
func (s *Store) Services() domain.ServiceRepository          { return s.services }
func (s *Store) WorkingHours() domain.WorkingHoursRepository { return s.workingHours }
func (s *Store) Blocks() domain.BlockRepository              { return s.blocks }
func (s *Store) Appointments() domain.AppointmentRepository  { return s.appointments }
func (s *Store) Payments() domain.PaymentRepository          { return s.payments }

// isUniqueViolation reports whether err is a SQLSTATE 23505 unique-constraint
// violation, which repositories surface as domain.ErrConflict.
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}
