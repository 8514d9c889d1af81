package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"servicelog-backend/internal/domain"
	"servicelog-backend/internal/logger"
	"servicelog-backend/internal/repository"
)

type vehicleRepository struct {
	db querier
}

func NewVehicleRepository(db *sql.DB) repository.VehicleRepository {
	return &vehicleRepository{db: db}
}

const vehicleColumns = `id, owner_id, make, model, year, license_plate, current_mileage, is_primary, created_on`

func scanVehicle(row interface{ Scan(...any) error }) (*domain.Vehicle, error) {
	v := &domain.Vehicle{}
	err := row.Scan(&v.ID, &v.OwnerID, &v.Make, &v.Model, &v.Year, &v.LicensePlate, &v.CurrentMileage, &v.IsPrimary, &v.CreatedOn)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return v, nil
}

func (r *vehicleRepository) Create(ctx context.Context, v *domain.Vehicle) error {
	logger.EnterMethod("vehicleRepository.Create", "ownerID", v.OwnerID)

	query := `INSERT INTO vehicles (owner_id, make, model, year, license_plate, current_mileage, is_primary, created_on) 
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8) RETURNING id, created_on`
	err := r.db.QueryRowContext(ctx, query, v.OwnerID, v.Make, v.Model, v.Year, v.LicensePlate, v.CurrentMileage, v.IsPrimary, time.Now()).Scan(&v.ID, &v.CreatedOn)
	if err != nil {
		logger.ExitMethodWithError("vehicleRepository.Create", err, "ownerID", v.OwnerID)
		return err
	}

	logger.ExitMethod("vehicleRepository.Create", "vehicleID", v.ID)
	return nil
}

func (r *vehicleRepository) GetByOwner(ctx context.Context, id, ownerID int32) (*domain.Vehicle, error) {
	query := `SELECT ` + vehicleColumns + ` FROM vehicles WHERE id = $1 AND owner_id = $2`
	return scanVehicle(r.db.QueryRowContext(ctx, query, id, ownerID))
}

func (r *vehicleRepository) GetForUpdate(ctx context.Context, id int32) (*domain.Vehicle, error) {
	query := `SELECT ` + vehicleColumns + ` FROM vehicles WHERE id = $1 FOR UPDATE`
	logger.DatabaseCall("vehicles.select_for_update", query, "vehicleID", id)
	return scanVehicle(r.db.QueryRowContext(ctx, query, id))
}

func (r *vehicleRepository) ListByOwner(ctx context.Context, ownerID int32) ([]domain.Vehicle, error) {
	query := `SELECT ` + vehicleColumns + ` FROM vehicles WHERE owner_id = $1 ORDER BY is_primary DESC, created_on ASC`
	rows, err := r.db.QueryContext(ctx, query, ownerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var vehicles []domain.Vehicle
	for rows.Next() {
		v, err := scanVehicle(rows)
		if err != nil {
			return nil, err
		}
		vehicles = append(vehicles, *v)
	}
	return vehicles, rows.Err()
}

func (r *vehicleRepository) CountByOwner(ctx context.Context, ownerID int32) (int32, error) {
	var count int32
	err := r.db.QueryRowContext(ctx, `SELECT count(*) FROM vehicles WHERE owner_id = $1`, ownerID).Scan(&count)
	return count, err
}

func (r *vehicleRepository) Update(ctx context.Context, v *domain.Vehicle) error {
	query := `UPDATE vehicles SET make=$1, model=$2, year=$3, license_plate=$4, current_mileage=$5 WHERE id=$6 AND owner_id=$7`
	result, err := r.db.ExecContext(ctx, query, v.Make, v.Model, v.Year, v.LicensePlate, v.CurrentMileage, v.ID, v.OwnerID)
	if err != nil {
		return err
	}
	return requireRow(result)
}

func (r *vehicleRepository) UpdateMileage(ctx context.Context, id int32, mileage int) error {
	query := `UPDATE vehicles SET current_mileage = $1 WHERE id = $2`
	logger.DatabaseCall("vehicles.update_mileage", query, "vehicleID", id, "mileage", mileage)
	result, err := r.db.ExecContext(ctx, query, mileage, id)
	if err != nil {
		logger.DatabaseResult("vehicles.update_mileage", 0, err)
		return err
	}
	return requireRow(result)
}

// Delete removes the vehicle; service records and reminders go with it via ON DELETE CASCADE.
func (r *vehicleRepository) Delete(ctx context.Context, id, ownerID int32) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM vehicles WHERE id = $1 AND owner_id = $2`, id, ownerID)
	if err != nil {
		return err
	}
	return requireRow(result)
}

func requireRow(result sql.Result) error {
	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return domain.ErrNotFound
	}
	return nil
}
