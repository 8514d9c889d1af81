package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"servicelog-backend/internal/domain"
	"servicelog-backend/internal/logger"
	"servicelog-backend/internal/metrics"
	"servicelog-backend/internal/reminder"
	"servicelog-backend/internal/repository"
	"servicelog-backend/internal/utils"
)

type serviceRecordService struct {
	vehicles  repository.VehicleRepository
	records   repository.ServiceRecordRepository
	tx        repository.Transactor
	documents DocumentService
	clock     reminder.Clock
	metrics   metrics.Recorder
}

func NewServiceRecordService(
	vehicles repository.VehicleRepository,
	records repository.ServiceRecordRepository,
	tx repository.Transactor,
	documents DocumentService,
	clock reminder.Clock,
	recorder metrics.Recorder,
) ServiceRecordService {
	if clock == nil {
		clock = reminder.SystemClock{}
	}
	if recorder == nil {
		recorder = metrics.Nop{}
	}
	return &serviceRecordService{
		vehicles:  vehicles,
		records:   records,
		tx:        tx,
		documents: documents,
		clock:     clock,
		metrics:   recorder,
	}
}

// applyInput copies the caller-editable fields onto rec. Service dates are
// kept as calendar days.
func applyInput(rec *domain.ServiceRecord, in domain.ServiceInput) {
	rec.ServiceDate = utils.DateOf(in.ServiceDate).Time()
	rec.MileageAtService = in.MileageAtService
	rec.Kind = in.Kind
	rec.CustomKind = ""
	if in.Kind == domain.ServiceKindCustom {
		rec.CustomKind = strings.TrimSpace(in.CustomKind)
	}
	rec.Description = strings.TrimSpace(in.Description)
	rec.PartsReplaced = in.PartsReplaced
	rec.IsSelfService = in.IsSelfService
	rec.Location = strings.TrimSpace(in.Location)
	if in.IsSelfService {
		rec.Location = domain.SelfServiceLocation
	}
	rec.Cost = in.Cost
	rec.InvoiceKey = in.InvoiceKey
	rec.Notes = in.Notes
}

func (s *serviceRecordService) RecordService(ctx context.Context, ownerID, vehicleID int32, in domain.ServiceInput) (*domain.ServiceRecord, error) {
	logger.EnterMethod("serviceRecordService.RecordService", "ownerID", ownerID, "vehicleID", vehicleID, "kind", in.Kind)

	if err := validateServiceInput(in); err != nil {
		logger.ExitMethodWithError("serviceRecordService.RecordService", err, "reason", "validation")
		return nil, err
	}
	if _, err := s.vehicles.GetByOwner(ctx, vehicleID, ownerID); err != nil {
		logger.ExitMethodWithError("serviceRecordService.RecordService", err, "reason", "vehicle lookup")
		return nil, err
	}
	if in.InvoiceKey != "" {
		if err := s.documents.VerifyDocument(ctx, ownerID, in.InvoiceKey); err != nil {
			logger.ExitMethodWithError("serviceRecordService.RecordService", err, "reason", "invoice")
			return nil, err
		}
	}

	record := &domain.ServiceRecord{VehicleID: vehicleID, EntryCreatedAt: s.clock.Now()}
	applyInput(record, in)

	var (
		superseded int64
		regenerate domain.ReminderKind
	)
	start := time.Now()
	err := s.tx.WithinTx(ctx, func(ctx context.Context, repos repository.Repositories) error {
		vehicle, err := repos.Vehicles.GetForUpdate(ctx, vehicleID)
		if err != nil {
			return fmt.Errorf("lock vehicle: %w", err)
		}

		if err := repos.ServiceRecords.Create(ctx, record); err != nil {
			return fmt.Errorf("insert service record: %w", err)
		}

		// Odometer never moves backwards through a recorded service.
		if record.MileageAtService > vehicle.CurrentMileage {
			if err := repos.Vehicles.UpdateMileage(ctx, vehicleID, record.MileageAtService); err != nil {
				return fmt.Errorf("update vehicle mileage: %w", err)
			}
		}

		kind, ok := reminder.ReminderKindFor(record.Kind)
		if !ok {
			return nil
		}
		superseded, err = repos.Reminders.CompleteOpen(ctx, vehicleID, kind)
		if err != nil {
			return fmt.Errorf("complete open reminders: %w", err)
		}
		next := reminder.NewReminder(vehicleID, kind, record.ServiceDate, record.MileageAtService)
		if err := repos.Reminders.Create(ctx, next); err != nil {
			return fmt.Errorf("insert reminder: %w", err)
		}
		regenerate = kind
		return nil
	})
	s.metrics.RecordService(string(in.Kind), time.Since(start), err)
	if err != nil {
		logger.ExitMethodWithError("serviceRecordService.RecordService", err, "vehicleID", vehicleID)
		return nil, fmt.Errorf("%w: %w", domain.ErrSaveFailed, err)
	}
	if regenerate != "" {
		s.metrics.RecordReminderRegenerated(string(regenerate), superseded)
	}

	logger.ExitMethod("serviceRecordService.RecordService", "serviceRecordID", record.ID, "reminderKind", regenerate)
	return record, nil
}

func (s *serviceRecordService) GetServiceRecord(ctx context.Context, ownerID, recordID int32) (*domain.ServiceRecord, error) {
	return s.records.GetByOwner(ctx, recordID, ownerID)
}

func (s *serviceRecordService) ListServiceRecords(ctx context.Context, ownerID, vehicleID int32) ([]domain.ServiceRecord, error) {
	if _, err := s.vehicles.GetByOwner(ctx, vehicleID, ownerID); err != nil {
		return nil, err
	}
	return s.records.ListByVehicle(ctx, vehicleID)
}

// UpdateServiceRecord rewrites a record in place. Reminders and vehicle
// mileage derived from the original values are left as they are.
func (s *serviceRecordService) UpdateServiceRecord(ctx context.Context, ownerID, recordID int32, in domain.ServiceInput) (*domain.ServiceRecord, error) {
	if err := validateServiceInput(in); err != nil {
		return nil, err
	}
	record, err := s.records.GetByOwner(ctx, recordID, ownerID)
	if err != nil {
		return nil, err
	}
	if in.InvoiceKey != "" && in.InvoiceKey != record.InvoiceKey {
		if err := s.documents.VerifyDocument(ctx, ownerID, in.InvoiceKey); err != nil {
			return nil, err
		}
	}

	applyInput(record, in)
	if err := s.records.Update(ctx, record); err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrSaveFailed, err)
	}
	return record, nil
}

func (s *serviceRecordService) DeleteServiceRecord(ctx context.Context, ownerID, recordID int32) error {
	if _, err := s.records.GetByOwner(ctx, recordID, ownerID); err != nil {
		return err
	}
	return s.records.Delete(ctx, recordID)
}
