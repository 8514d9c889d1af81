package service_test

import (
	"context"
	"io"

	"servicelog-backend/internal/domain"

	"github.com/stretchr/testify/mock"
)

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

// MockVehicleRepo
type MockVehicleRepo struct {
	mock.Mock
}

func (m *MockVehicleRepo) Create(ctx context.Context, v *domain.Vehicle) error {
	args := m.Called(ctx, v)
	return args.Error(0)
}
func (m *MockVehicleRepo) GetByOwner(ctx context.Context, id, ownerID int32) (*domain.Vehicle, error) {
	args := m.Called(ctx, id, ownerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Vehicle), args.Error(1)
}
func (m *MockVehicleRepo) GetForUpdate(ctx context.Context, id int32) (*domain.Vehicle, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Vehicle), args.Error(1)
}
func (m *MockVehicleRepo) ListByOwner(ctx context.Context, ownerID int32) ([]domain.Vehicle, error) {
	args := m.Called(ctx, ownerID)
	return args.Get(0).([]domain.Vehicle), args.Error(1)
}
func (m *MockVehicleRepo) CountByOwner(ctx context.Context, ownerID int32) (int32, error) {
	args := m.Called(ctx, ownerID)
	return args.Get(0).(int32), args.Error(1)
}
func (m *MockVehicleRepo) Update(ctx context.Context, v *domain.Vehicle) error {
	args := m.Called(ctx, v)
	return args.Error(0)
}
func (m *MockVehicleRepo) UpdateMileage(ctx context.Context, id int32, mileage int) error {
	args := m.Called(ctx, id, mileage)
	return args.Error(0)
}
func (m *MockVehicleRepo) Delete(ctx context.Context, id, ownerID int32) error {
	args := m.Called(ctx, id, ownerID)
	return args.Error(0)
}

// MockReminderRepo
type MockReminderRepo struct {
	mock.Mock
}

func (m *MockReminderRepo) Create(ctx context.Context, r *domain.Reminder) error {
	args := m.Called(ctx, r)
	return args.Error(0)
}
func (m *MockReminderRepo) CompleteOpen(ctx context.Context, vehicleID int32, kind domain.ReminderKind) (int64, error) {
	args := m.Called(ctx, vehicleID, kind)
	return args.Get(0).(int64), args.Error(1)
}
func (m *MockReminderRepo) GetByOwner(ctx context.Context, id, ownerID int32) (*domain.Reminder, error) {
	args := m.Called(ctx, id, ownerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Reminder), args.Error(1)
}
func (m *MockReminderRepo) ListOpenByOwner(ctx context.Context, ownerID int32) ([]domain.OpenReminder, error) {
	args := m.Called(ctx, ownerID)
	return args.Get(0).([]domain.OpenReminder), args.Error(1)
}
func (m *MockReminderRepo) ListOpenByVehicle(ctx context.Context, vehicleID int32) ([]domain.OpenReminder, error) {
	args := m.Called(ctx, vehicleID)
	return args.Get(0).([]domain.OpenReminder), args.Error(1)
}
func (m *MockReminderRepo) MarkCompleted(ctx context.Context, id int32) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
func (m *MockReminderRepo) Delete(ctx context.Context, id int32) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
