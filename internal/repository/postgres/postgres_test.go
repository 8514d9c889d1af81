package postgres_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"servicelog-backend/internal/domain"
	"servicelog-backend/internal/repository"
	"servicelog-backend/internal/repository/postgres"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStore_WithinTx(t *testing.T) {
	t.Run("CommitsOnSuccess", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		store := postgres.NewStore(db)
		mock.ExpectBegin()
		mock.ExpectExec("UPDATE vehicles SET current_mileage").
			WithArgs(60000, int32(3)).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectCommit()

		err = store.WithinTx(context.Background(), func(ctx context.Context, repos repository.Repositories) error {
			return repos.Vehicles.UpdateMileage(ctx, 3, 60000)
		})
		assert.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("RollsBackWhenReminderInsertFails", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		store := postgres.NewStore(db)
		serviceDate := time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC)
		insertErr := errors.New("connection reset")

		mock.ExpectBegin()
		mock.ExpectQuery("SELECT (.+) FROM vehicles WHERE id = \\$1 FOR UPDATE").
			WithArgs(int32(3)).
			WillReturnRows(sqlmock.NewRows(vehicleCols).
				AddRow(3, 7, "Toyota", "Corolla", 2019, "AB-123", 40000, true, time.Now()))
		mock.ExpectQuery("INSERT INTO service_records").
			WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(21))
		mock.ExpectExec("UPDATE vehicles SET current_mileage").
			WithArgs(45000, int32(3)).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectExec("UPDATE maintenance_reminders SET is_completed = true").
			WithArgs(int32(3), domain.ReminderKindOilChange).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectQuery("INSERT INTO maintenance_reminders").
			WillReturnError(insertErr)
		mock.ExpectRollback()

		err = store.WithinTx(context.Background(), func(ctx context.Context, repos repository.Repositories) error {
			v, err := repos.Vehicles.GetForUpdate(ctx, 3)
			if err != nil {
				return err
			}
			rec := &domain.ServiceRecord{VehicleID: v.ID, ServiceDate: serviceDate, MileageAtService: 45000, Kind: domain.ServiceKindOilChange, Description: "oil"}
			if err := repos.ServiceRecords.Create(ctx, rec); err != nil {
				return err
			}
			if err := repos.Vehicles.UpdateMileage(ctx, v.ID, 45000); err != nil {
				return err
			}
			if _, err := repos.Reminders.CompleteOpen(ctx, v.ID, domain.ReminderKindOilChange); err != nil {
				return err
			}
			return repos.Reminders.Create(ctx, &domain.Reminder{VehicleID: v.ID, Kind: domain.ReminderKindOilChange})
		})
		assert.ErrorIs(t, err, insertErr)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("BeginFails", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		store := postgres.NewStore(db)
		mock.ExpectBegin().WillReturnError(errors.New("pool exhausted"))

		called := false
		err = store.WithinTx(context.Background(), func(ctx context.Context, repos repository.Repositories) error {
			called = true
			return nil
		})
		assert.Error(t, err)
		assert.False(t, called)
	})
}
