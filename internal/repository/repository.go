package repository

import (
	"context"

	"servicelog-backend/internal/domain"
)

type VehicleRepository interface {
	Create(ctx context.Context, vehicle *domain.Vehicle) error
	// GetByOwner returns domain.ErrNotFound when the vehicle is missing or owned by someone else.
	GetByOwner(ctx context.Context, id, ownerID int32) (*domain.Vehicle, error)
	// GetForUpdate locks the vehicle row until the surrounding transaction ends.
	GetForUpdate(ctx context.Context, id int32) (*domain.Vehicle, error)
	ListByOwner(ctx context.Context, ownerID int32) ([]domain.Vehicle, error)
	CountByOwner(ctx context.Context, ownerID int32) (int32, error)
	Update(ctx context.Context, vehicle *domain.Vehicle) error
	UpdateMileage(ctx context.Context, id int32, mileage int) error
	Delete(ctx context.Context, id, ownerID int32) error
}

type ServiceRecordRepository interface {
	Create(ctx context.Context, record *domain.ServiceRecord) error
	GetByOwner(ctx context.Context, id, ownerID int32) (*domain.ServiceRecord, error)
	ListByVehicle(ctx context.Context, vehicleID int32) ([]domain.ServiceRecord, error)
	// ListByOwner returns the records of every vehicle of the owner, newest service first.
	ListByOwner(ctx context.Context, ownerID int32) ([]domain.ServiceRecord, error)
	Update(ctx context.Context, record *domain.ServiceRecord) error
	Delete(ctx context.Context, id int32) error
	InvoiceKeyInUse(ctx context.Context, key string) (bool, error)
}

type ReminderRepository interface {
	Create(ctx context.Context, reminder *domain.Reminder) error
	// CompleteOpen marks every open reminder of the vehicle and kind as completed.
	CompleteOpen(ctx context.Context, vehicleID int32, kind domain.ReminderKind) (int64, error)
	GetByOwner(ctx context.Context, id, ownerID int32) (*domain.Reminder, error)
	// ListOpenByOwner orders by due date then due mileage, nulls last.
	ListOpenByOwner(ctx context.Context, ownerID int32) ([]domain.OpenReminder, error)
	ListOpenByVehicle(ctx context.Context, vehicleID int32) ([]domain.OpenReminder, error)
	MarkCompleted(ctx context.Context, id int32) error
	Delete(ctx context.Context, id int32) error
}

// Repositories groups the repositories bound to one transaction.
type Repositories struct {
	Vehicles       VehicleRepository
	ServiceRecords ServiceRecordRepository
	Reminders      ReminderRepository
}

// Transactor runs fn inside a single transaction. The transaction commits
// when fn returns nil and rolls back otherwise.
type Transactor interface {
	WithinTx(ctx context.Context, fn func(ctx context.Context, repos Repositories) error) error
}
