package service

import (
	"context"
	"strings"

	"servicelog-backend/internal/domain"
	"servicelog-backend/internal/logger"
	"servicelog-backend/internal/reminder"
	"servicelog-backend/internal/repository"
)

type vehicleService struct {
	vehicles repository.VehicleRepository
	clock    reminder.Clock
}

func NewVehicleService(vehicles repository.VehicleRepository, clock reminder.Clock) VehicleService {
	if clock == nil {
		clock = reminder.SystemClock{}
	}
	return &vehicleService{vehicles: vehicles, clock: clock}
}

func (s *vehicleService) AddVehicle(ctx context.Context, ownerID int32, in domain.VehicleInput) (*domain.Vehicle, error) {
	logger.EnterMethod("vehicleService.AddVehicle", "ownerID", ownerID)

	if err := validateVehicleInput(in, s.clock.Now()); err != nil {
		logger.ExitMethodWithError("vehicleService.AddVehicle", err)
		return nil, err
	}

	count, err := s.vehicles.CountByOwner(ctx, ownerID)
	if err != nil {
		logger.ExitMethodWithError("vehicleService.AddVehicle", err)
		return nil, err
	}

	v := &domain.Vehicle{OwnerID: ownerID, IsPrimary: count == 0}
	applyVehicleInput(v, in)
	if err := s.vehicles.Create(ctx, v); err != nil {
		logger.ExitMethodWithError("vehicleService.AddVehicle", err)
		return nil, err
	}

	logger.ExitMethod("vehicleService.AddVehicle", "vehicleID", v.ID, "isPrimary", v.IsPrimary)
	return v, nil
}

func applyVehicleInput(v *domain.Vehicle, in domain.VehicleInput) {
	v.Make = strings.TrimSpace(in.Make)
	v.Model = strings.TrimSpace(in.Model)
	v.Year = in.Year
	v.LicensePlate = strings.ToUpper(strings.TrimSpace(in.LicensePlate))
	v.CurrentMileage = in.CurrentMileage
}

func (s *vehicleService) GetVehicle(ctx context.Context, ownerID, vehicleID int32) (*domain.Vehicle, error) {
	return s.vehicles.GetByOwner(ctx, vehicleID, ownerID)
}

func (s *vehicleService) ListVehicles(ctx context.Context, ownerID int32) ([]domain.Vehicle, error) {
	return s.vehicles.ListByOwner(ctx, ownerID)
}

// UpdateVehicle may set the mileage lower than before; manual corrections are allowed.
func (s *vehicleService) UpdateVehicle(ctx context.Context, ownerID, vehicleID int32, in domain.VehicleInput) (*domain.Vehicle, error) {
	if err := validateVehicleInput(in, s.clock.Now()); err != nil {
		return nil, err
	}
	v, err := s.vehicles.GetByOwner(ctx, vehicleID, ownerID)
	if err != nil {
		return nil, err
	}
	applyVehicleInput(v, in)
	if err := s.vehicles.Update(ctx, v); err != nil {
		return nil, err
	}
	return v, nil
}

func (s *vehicleService) UpdateMileage(ctx context.Context, ownerID, vehicleID int32, mileage int) (*domain.Vehicle, error) {
	if err := validateMileage("current_mileage", mileage); err != nil {
		return nil, err
	}
	v, err := s.vehicles.GetByOwner(ctx, vehicleID, ownerID)
	if err != nil {
		return nil, err
	}
	if err := s.vehicles.UpdateMileage(ctx, vehicleID, mileage); err != nil {
		return nil, err
	}
	v.CurrentMileage = mileage
	return v, nil
}

func (s *vehicleService) DeleteVehicle(ctx context.Context, ownerID, vehicleID int32) error {
	logger.Info("Deleting vehicle", "ownerID", ownerID, "vehicleID", vehicleID)
	return s.vehicles.Delete(ctx, vehicleID, ownerID)
}
