package service

import (
	"context"
	"io"

	"servicelog-backend/internal/domain"
)

type VehicleService interface {
	AddVehicle(ctx context.Context, ownerID int32, in domain.VehicleInput) (*domain.Vehicle, error)
	GetVehicle(ctx context.Context, ownerID, vehicleID int32) (*domain.Vehicle, error)
	ListVehicles(ctx context.Context, ownerID int32) ([]domain.Vehicle, error)
	UpdateVehicle(ctx context.Context, ownerID, vehicleID int32, in domain.VehicleInput) (*domain.Vehicle, error)
	UpdateMileage(ctx context.Context, ownerID, vehicleID int32, mileage int) (*domain.Vehicle, error)
	DeleteVehicle(ctx context.Context, ownerID, vehicleID int32) error
}

type ServiceRecordService interface {
	// RecordService stores the record and regenerates the matching reminder in one transaction.
	RecordService(ctx context.Context, ownerID, vehicleID int32, in domain.ServiceInput) (*domain.ServiceRecord, error)
	GetServiceRecord(ctx context.Context, ownerID, recordID int32) (*domain.ServiceRecord, error)
	ListServiceRecords(ctx context.Context, ownerID, vehicleID int32) ([]domain.ServiceRecord, error)
	UpdateServiceRecord(ctx context.Context, ownerID, recordID int32, in domain.ServiceInput) (*domain.ServiceRecord, error)
	DeleteServiceRecord(ctx context.Context, ownerID, recordID int32) error
}

type ReminderService interface {
	ListOpenReminders(ctx context.Context, ownerID int32) ([]domain.ReminderView, domain.ReminderSummary, error)
	ListVehicleReminders(ctx context.Context, ownerID, vehicleID int32) ([]domain.ReminderView, error)
	MarkReminderComplete(ctx context.Context, ownerID, reminderID int32) error
	DismissReminder(ctx context.Context, ownerID, reminderID int32) error
}

type DocumentService interface {
	UploadDocument(ctx context.Context, ownerID int32, filename, contentType string, size int64, body io.Reader) (*domain.Document, error)
	OpenDocument(ctx context.Context, ownerID int32, key string) (io.ReadCloser, error)
	// VerifyDocument fails with a validation error unless key is an existing document of the owner.
	VerifyDocument(ctx context.Context, ownerID int32, key string) error
}

type StatsService interface {
	// Dashboard aggregates counts, spending and recent activity across the owner's vehicles.
	Dashboard(ctx context.Context, ownerID int32) (*domain.DashboardStats, error)
}
