package http

import (
	"context"
	"io"

	"servicelog-backend/internal/domain"

	"github.com/stretchr/testify/mock"
)

// MockVehicleService
type MockVehicleService struct {
	mock.Mock
}

func (m *MockVehicleService) AddVehicle(ctx context.Context, ownerID int32, in domain.VehicleInput) (*domain.Vehicle, error) {
	args := m.Called(ctx, ownerID, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Vehicle), args.Error(1)
}
func (m *MockVehicleService) GetVehicle(ctx context.Context, ownerID, vehicleID int32) (*domain.Vehicle, error) {
	args := m.Called(ctx, ownerID, vehicleID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Vehicle), args.Error(1)
}
func (m *MockVehicleService) ListVehicles(ctx context.Context, ownerID int32) ([]domain.Vehicle, error) {
	args := m.Called(ctx, ownerID)
	return args.Get(0).([]domain.Vehicle), args.Error(1)
}
func (m *MockVehicleService) UpdateVehicle(ctx context.Context, ownerID, vehicleID int32, in domain.VehicleInput) (*domain.Vehicle, error) {
	args := m.Called(ctx, ownerID, vehicleID, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Vehicle), args.Error(1)
}
func (m *MockVehicleService) UpdateMileage(ctx context.Context, ownerID, vehicleID int32, mileage int) (*domain.Vehicle, error) {
	args := m.Called(ctx, ownerID, vehicleID, mileage)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Vehicle), args.Error(1)
}
func (m *MockVehicleService) DeleteVehicle(ctx context.Context, ownerID, vehicleID int32) error {
	args := m.Called(ctx, ownerID, vehicleID)
	return args.Error(0)
}

// MockServiceRecordService
type MockServiceRecordService struct {
	mock.Mock
}

func (m *MockServiceRecordService) RecordService(ctx context.Context, ownerID, vehicleID int32, in domain.ServiceInput) (*domain.ServiceRecord, error) {
	args := m.Called(ctx, ownerID, vehicleID, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ServiceRecord), args.Error(1)
}
func (m *MockServiceRecordService) GetServiceRecord(ctx context.Context, ownerID, recordID int32) (*domain.ServiceRecord, error) {
	args := m.Called(ctx, ownerID, recordID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ServiceRecord), args.Error(1)
}
func (m *MockServiceRecordService) ListServiceRecords(ctx context.Context, ownerID, vehicleID int32) ([]domain.ServiceRecord, error) {
	args := m.Called(ctx, ownerID, vehicleID)
	return args.Get(0).([]domain.ServiceRecord), args.Error(1)
}
func (m *MockServiceRecordService) UpdateServiceRecord(ctx context.Context, ownerID, recordID int32, in domain.ServiceInput) (*domain.ServiceRecord, error) {
	args := m.Called(ctx, ownerID, recordID, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ServiceRecord), args.Error(1)
}
func (m *MockServiceRecordService) DeleteServiceRecord(ctx context.Context, ownerID, recordID int32) error {
	args := m.Called(ctx, ownerID, recordID)
	return args.Error(0)
}

// MockReminderService
type MockReminderService struct {
	mock.Mock
}

func (m *MockReminderService) ListOpenReminders(ctx context.Context, ownerID int32) ([]domain.ReminderView, domain.ReminderSummary, error) {
	args := m.Called(ctx, ownerID)
	return args.Get(0).([]domain.ReminderView), args.Get(1).(domain.ReminderSummary), args.Error(2)
}
func (m *MockReminderService) ListVehicleReminders(ctx context.Context, ownerID, vehicleID int32) ([]domain.ReminderView, error) {
	args := m.Called(ctx, ownerID, vehicleID)
	return args.Get(0).([]domain.ReminderView), args.Error(1)
}
func (m *MockReminderService) MarkReminderComplete(ctx context.Context, ownerID, reminderID int32) error {
	args := m.Called(ctx, ownerID, reminderID)
	return args.Error(0)
}
func (m *MockReminderService) DismissReminder(ctx context.Context, ownerID, reminderID int32) error {
	args := m.Called(ctx, ownerID, reminderID)
	return args.Error(0)
}

// MockStatsService
type MockStatsService struct {
	mock.Mock
}

func (m *MockStatsService) Dashboard(ctx context.Context, ownerID int32) (*domain.DashboardStats, error) {
	args := m.Called(ctx, ownerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.DashboardStats), args.Error(1)
}

// MockDocumentService
type MockDocumentService struct {
	mock.Mock
}

func (m *MockDocumentService) UploadDocument(ctx context.Context, ownerID int32, filename, contentType string, size int64, body io.Reader) (*domain.Document, error) {
	args := m.Called(ctx, ownerID, filename, contentType, size, body)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Document), args.Error(1)
}
func (m *MockDocumentService) OpenDocument(ctx context.Context, ownerID int32, key string) (io.ReadCloser, error) {
	args := m.Called(ctx, ownerID, key)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(io.ReadCloser), args.Error(1)
}
func (m *MockDocumentService) VerifyDocument(ctx context.Context, ownerID int32, key string) error {
	args := m.Called(ctx, ownerID, key)
	return args.Error(0)
}
