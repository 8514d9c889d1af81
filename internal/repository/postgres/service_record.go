package postgres

import (
	"context"
	"database/sql"
	"errors"

	"servicelog-backend/internal/domain"
	"servicelog-backend/internal/logger"
	"servicelog-backend/internal/repository"

	"github.com/shopspring/decimal"
)

type serviceRecordRepository struct {
	db querier
}

func NewServiceRecordRepository(db *sql.DB) repository.ServiceRecordRepository {
	return &serviceRecordRepository{db: db}
}

const serviceRecordColumns = `sr.id, sr.vehicle_id, sr.service_date, sr.mileage_at_service, sr.service_kind, 
	COALESCE(sr.custom_service_kind, ''), sr.description, COALESCE(sr.parts_replaced, ''), 
	COALESCE(sr.service_location, ''), sr.is_self_service, sr.service_cost, COALESCE(sr.invoice_key, ''), 
	COALESCE(sr.notes, ''), sr.entry_created_at`

func scanServiceRecord(row interface{ Scan(...any) error }) (*domain.ServiceRecord, error) {
	rec := &domain.ServiceRecord{}
	var cost decimal.NullDecimal
	err := row.Scan(&rec.ID, &rec.VehicleID, &rec.ServiceDate, &rec.MileageAtService, &rec.Kind,
		&rec.CustomKind, &rec.Description, &rec.PartsReplaced,
		&rec.Location, &rec.IsSelfService, &cost, &rec.InvoiceKey,
		&rec.Notes, &rec.EntryCreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	if cost.Valid {
		rec.Cost = &cost.Decimal
	}
	return rec, nil
}

func nullDecimal(d *decimal.Decimal) decimal.NullDecimal {
	if d == nil {
		return decimal.NullDecimal{}
	}
	return decimal.NullDecimal{Decimal: *d, Valid: true}
}

func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}

func (r *serviceRecordRepository) Create(ctx context.Context, rec *domain.ServiceRecord) error {
	logger.EnterMethod("serviceRecordRepository.Create", "vehicleID", rec.VehicleID, "kind", rec.Kind)

	query := `INSERT INTO service_records (vehicle_id, service_date, mileage_at_service, service_kind, custom_service_kind, 
	              description, parts_replaced, service_location, is_self_service, service_cost, invoice_key, notes, entry_created_at) 
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13) RETURNING id`
	err := r.db.QueryRowContext(ctx, query,
		rec.VehicleID, rec.ServiceDate, rec.MileageAtService, rec.Kind, nullString(rec.CustomKind),
		rec.Description, nullString(rec.PartsReplaced), nullString(rec.Location), rec.IsSelfService,
		nullDecimal(rec.Cost), nullString(rec.InvoiceKey), nullString(rec.Notes), rec.EntryCreatedAt,
	).Scan(&rec.ID)
	if err != nil {
		logger.ExitMethodWithError("serviceRecordRepository.Create", err, "vehicleID", rec.VehicleID)
		return err
	}

	logger.ExitMethod("serviceRecordRepository.Create", "serviceRecordID", rec.ID)
	return nil
}

func (r *serviceRecordRepository) GetByOwner(ctx context.Context, id, ownerID int32) (*domain.ServiceRecord, error) {
	query := `SELECT ` + serviceRecordColumns + ` FROM service_records sr 
	          JOIN vehicles v ON v.id = sr.vehicle_id 
	          WHERE sr.id = $1 AND v.owner_id = $2`
	return scanServiceRecord(r.db.QueryRowContext(ctx, query, id, ownerID))
}

func (r *serviceRecordRepository) ListByVehicle(ctx context.Context, vehicleID int32) ([]domain.ServiceRecord, error) {
	query := `SELECT ` + serviceRecordColumns + ` FROM service_records sr 
	          WHERE sr.vehicle_id = $1 ORDER BY sr.service_date DESC, sr.id DESC`
	return r.list(ctx, query, vehicleID)
}

func (r *serviceRecordRepository) ListByOwner(ctx context.Context, ownerID int32) ([]domain.ServiceRecord, error) {
	query := `SELECT ` + serviceRecordColumns + ` FROM service_records sr 
	          JOIN vehicles v ON v.id = sr.vehicle_id 
	          WHERE v.owner_id = $1 ORDER BY sr.service_date DESC, sr.id DESC`
	return r.list(ctx, query, ownerID)
}

func (r *serviceRecordRepository) list(ctx context.Context, query string, args ...any) ([]domain.ServiceRecord, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []domain.ServiceRecord
	for rows.Next() {
		rec, err := scanServiceRecord(rows)
		if err != nil {
			return nil, err
		}
		records = append(records, *rec)
	}
	return records, rows.Err()
}

// Update rewrites the caller-editable fields. entry_created_at is never changed.
func (r *serviceRecordRepository) Update(ctx context.Context, rec *domain.ServiceRecord) error {
	query := `UPDATE service_records SET service_date=$1, mileage_at_service=$2, service_kind=$3, custom_service_kind=$4, 
	              description=$5, parts_replaced=$6, service_location=$7, is_self_service=$8, service_cost=$9, invoice_key=$10, notes=$11 
	          WHERE id=$12`
	result, err := r.db.ExecContext(ctx, query,
		rec.ServiceDate, rec.MileageAtService, rec.Kind, nullString(rec.CustomKind),
		rec.Description, nullString(rec.PartsReplaced), nullString(rec.Location), rec.IsSelfService,
		nullDecimal(rec.Cost), nullString(rec.InvoiceKey), nullString(rec.Notes), rec.ID,
	)
	if err != nil {
		return err
	}
	return requireRow(result)
}

func (r *serviceRecordRepository) Delete(ctx context.Context, id int32) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM service_records WHERE id = $1`, id)
	if err != nil {
		return err
	}
	return requireRow(result)
}

func (r *serviceRecordRepository) InvoiceKeyInUse(ctx context.Context, key string) (bool, error) {
	var inUse bool
	err := r.db.QueryRowContext(ctx, `SELECT EXISTS (SELECT 1 FROM service_records WHERE invoice_key = $1)`, key).Scan(&inUse)
	return inUse, err
}
