package service

import (
	"context"

	"servicelog-backend/internal/domain"
	"servicelog-backend/internal/logger"
	"servicelog-backend/internal/reminder"
	"servicelog-backend/internal/repository"
)

type reminderService struct {
	vehicles  repository.VehicleRepository
	reminders repository.ReminderRepository
	clock     reminder.Clock
}

func NewReminderService(vehicles repository.VehicleRepository, reminders repository.ReminderRepository, clock reminder.Clock) ReminderService {
	if clock == nil {
		clock = reminder.SystemClock{}
	}
	return &reminderService{vehicles: vehicles, reminders: reminders, clock: clock}
}

// ListOpenReminders returns the owner's open reminders, overdue first, then
// due soon, then the rest, each group in due date/mileage order.
func (s *reminderService) ListOpenReminders(ctx context.Context, ownerID int32) ([]domain.ReminderView, domain.ReminderSummary, error) {
	open, err := s.reminders.ListOpenByOwner(ctx, ownerID)
	if err != nil {
		logger.Error("Failed to list open reminders", "ownerID", ownerID, "error", err)
		return nil, domain.ReminderSummary{}, err
	}
	now := s.clock.Now()
	return reminder.Views(open, now), reminder.Summarize(open, now), nil
}

func (s *reminderService) ListVehicleReminders(ctx context.Context, ownerID, vehicleID int32) ([]domain.ReminderView, error) {
	if _, err := s.vehicles.GetByOwner(ctx, vehicleID, ownerID); err != nil {
		return nil, err
	}
	open, err := s.reminders.ListOpenByVehicle(ctx, vehicleID)
	if err != nil {
		return nil, err
	}
	return reminder.Views(open, s.clock.Now()), nil
}

func (s *reminderService) MarkReminderComplete(ctx context.Context, ownerID, reminderID int32) error {
	rem, err := s.reminders.GetByOwner(ctx, reminderID, ownerID)
	if err != nil {
		return err
	}
	if rem.IsCompleted {
		return nil
	}
	logger.Info("Reminder marked complete", "reminderID", reminderID, "kind", rem.Kind)
	return s.reminders.MarkCompleted(ctx, reminderID)
}

// DismissReminder deletes the reminder outright. The next recorded service of
// the same kind creates a fresh one.
func (s *reminderService) DismissReminder(ctx context.Context, ownerID, reminderID int32) error {
	if _, err := s.reminders.GetByOwner(ctx, reminderID, ownerID); err != nil {
		return err
	}
	return s.reminders.Delete(ctx, reminderID)
}
