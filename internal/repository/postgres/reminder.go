package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"servicelog-backend/internal/domain"
	"servicelog-backend/internal/logger"
	"servicelog-backend/internal/repository"
)

type reminderRepository struct {
	db querier
}

func NewReminderRepository(db *sql.DB) repository.ReminderRepository {
	return &reminderRepository{db: db}
}

func (r *reminderRepository) Create(ctx context.Context, rem *domain.Reminder) error {
	logger.EnterMethod("reminderRepository.Create", "vehicleID", rem.VehicleID, "kind", rem.Kind)

	query := `INSERT INTO maintenance_reminders (vehicle_id, reminder_kind, last_service_date, last_service_mileage, 
	              due_date, due_mileage, is_completed, created_on) 
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8) RETURNING id, created_on`
	err := r.db.QueryRowContext(ctx, query,
		rem.VehicleID, rem.Kind, rem.LastServiceDate, rem.LastServiceMileage,
		rem.DueDate, rem.DueMileage, rem.IsCompleted, time.Now(),
	).Scan(&rem.ID, &rem.CreatedOn)
	if err != nil {
		logger.ExitMethodWithError("reminderRepository.Create", err, "vehicleID", rem.VehicleID)
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: %v", domain.ErrReminderConflict, err)
		}
		return err
	}

	logger.ExitMethod("reminderRepository.Create", "reminderID", rem.ID)
	return nil
}

func (r *reminderRepository) CompleteOpen(ctx context.Context, vehicleID int32, kind domain.ReminderKind) (int64, error) {
	query := `UPDATE maintenance_reminders SET is_completed = true 
	          WHERE vehicle_id = $1 AND reminder_kind = $2 AND is_completed = false`
	logger.DatabaseCall("maintenance_reminders.complete_open", query, "vehicleID", vehicleID, "kind", kind)
	result, err := r.db.ExecContext(ctx, query, vehicleID, kind)
	if err != nil {
		logger.DatabaseResult("maintenance_reminders.complete_open", 0, err)
		return 0, err
	}
	rows, err := result.RowsAffected()
	logger.DatabaseResult("maintenance_reminders.complete_open", rows, err)
	return rows, err
}

func (r *reminderRepository) GetByOwner(ctx context.Context, id, ownerID int32) (*domain.Reminder, error) {
	query := `SELECT mr.id, mr.vehicle_id, mr.reminder_kind, mr.last_service_date, mr.last_service_mileage, 
	                 mr.due_date, mr.due_mileage, mr.is_completed, mr.created_on 
	          FROM maintenance_reminders mr 
	          JOIN vehicles v ON v.id = mr.vehicle_id 
	          WHERE mr.id = $1 AND v.owner_id = $2`
	rem := &domain.Reminder{}
	err := r.db.QueryRowContext(ctx, query, id, ownerID).Scan(
		&rem.ID, &rem.VehicleID, &rem.Kind, &rem.LastServiceDate, &rem.LastServiceMileage,
		&rem.DueDate, &rem.DueMileage, &rem.IsCompleted, &rem.CreatedOn,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return rem, nil
}

const openReminderQuery = `SELECT mr.id, mr.vehicle_id, mr.reminder_kind, mr.last_service_date, mr.last_service_mileage, 
	       mr.due_date, mr.due_mileage, mr.is_completed, mr.created_on, 
	       v.id, v.make, v.model, v.license_plate, v.current_mileage 
	FROM maintenance_reminders mr 
	JOIN vehicles v ON v.id = mr.vehicle_id 
	WHERE mr.is_completed = false AND %s 
	ORDER BY mr.due_date ASC NULLS LAST, mr.due_mileage ASC NULLS LAST, mr.id ASC`

func (r *reminderRepository) ListOpenByOwner(ctx context.Context, ownerID int32) ([]domain.OpenReminder, error) {
	return r.listOpen(ctx, fmt.Sprintf(openReminderQuery, "v.owner_id = $1"), ownerID)
}

func (r *reminderRepository) ListOpenByVehicle(ctx context.Context, vehicleID int32) ([]domain.OpenReminder, error) {
	return r.listOpen(ctx, fmt.Sprintf(openReminderQuery, "mr.vehicle_id = $1"), vehicleID)
}

func (r *reminderRepository) listOpen(ctx context.Context, query string, arg int32) ([]domain.OpenReminder, error) {
	rows, err := r.db.QueryContext(ctx, query, arg)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var reminders []domain.OpenReminder
	for rows.Next() {
		var item domain.OpenReminder
		if err := rows.Scan(
			&item.ID, &item.VehicleID, &item.Kind, &item.LastServiceDate, &item.LastServiceMileage,
			&item.DueDate, &item.DueMileage, &item.IsCompleted, &item.CreatedOn,
			&item.Vehicle.ID, &item.Vehicle.Make, &item.Vehicle.Model, &item.Vehicle.LicensePlate, &item.Vehicle.CurrentMileage,
		); err != nil {
			return nil, err
		}
		reminders = append(reminders, item)
	}
	return reminders, rows.Err()
}

func (r *reminderRepository) MarkCompleted(ctx context.Context, id int32) error {
	result, err := r.db.ExecContext(ctx, `UPDATE maintenance_reminders SET is_completed = true WHERE id = $1`, id)
	if err != nil {
		return err
	}
	return requireRow(result)
}

func (r *reminderRepository) Delete(ctx context.Context, id int32) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM maintenance_reminders WHERE id = $1`, id)
	if err != nil {
		return err
	}
	return requireRow(result)
}
