package postgres

import (
	"context"
	"database/sql"
	"errors"

	"servicelog-backend/internal/logger"
	"servicelog-backend/internal/repository"

	"github.com/lib/pq"
)

// querier is satisfied by both *sql.DB and *sql.Tx.
type querier interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

type Store struct {
	db *sql.DB
	repository.VehicleRepository
	repository.ServiceRecordRepository
	repository.ReminderRepository
}

func NewStore(db *sql.DB) *Store {
	return &Store{
		db:                      db,
		VehicleRepository:       NewVehicleRepository(db),
		ServiceRecordRepository: NewServiceRecordRepository(db),
		ReminderRepository:      NewReminderRepository(db),
	}
}

// WithinTx implements repository.Transactor.
func (s *Store) WithinTx(ctx context.Context, fn func(ctx context.Context, repos repository.Repositories) error) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	repos := repository.Repositories{
		Vehicles:       &vehicleRepository{db: tx},
		ServiceRecords: &serviceRecordRepository{db: tx},
		Reminders:      &reminderRepository{db: tx},
	}
	if err := fn(ctx, repos); err != nil {
		logger.Debug("Rolling back transaction", "error", err)
		return err
	}

	return tx.Commit()
}

func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code.Name() == "unique_violation"
}
