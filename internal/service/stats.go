package service

import (
	"context"
	"fmt"

	"servicelog-backend/internal/domain"
	"servicelog-backend/internal/logger"
	"servicelog-backend/internal/reminder"
	"servicelog-backend/internal/repository"

	"github.com/shopspring/decimal"
)

type statsService struct {
	vehicles  repository.VehicleRepository
	records   repository.ServiceRecordRepository
	reminders repository.ReminderRepository
	clock     reminder.Clock
}

func NewStatsService(
	vehicles repository.VehicleRepository,
	records repository.ServiceRecordRepository,
	reminders repository.ReminderRepository,
	clock reminder.Clock,
) StatsService {
	if clock == nil {
		clock = reminder.SystemClock{}
	}
	return &statsService{vehicles: vehicles, records: records, reminders: reminders, clock: clock}
}

func (s *statsService) Dashboard(ctx context.Context, ownerID int32) (*domain.DashboardStats, error) {
	logger.EnterMethod("statsService.Dashboard", "ownerID", ownerID)

	vehicles, err := s.vehicles.ListByOwner(ctx, ownerID)
	if err != nil {
		logger.ExitMethodWithError("statsService.Dashboard", err)
		return nil, fmt.Errorf("list vehicles: %w", err)
	}
	records, err := s.records.ListByOwner(ctx, ownerID)
	if err != nil {
		logger.ExitMethodWithError("statsService.Dashboard", err)
		return nil, fmt.Errorf("list service records: %w", err)
	}
	open, err := s.reminders.ListOpenByOwner(ctx, ownerID)
	if err != nil {
		logger.ExitMethodWithError("statsService.Dashboard", err)
		return nil, fmt.Errorf("list reminders: %w", err)
	}

	summaries := make(map[int32]domain.VehicleSummary, len(vehicles))
	for i := range vehicles {
		summaries[vehicles[i].ID] = vehicles[i].Summary()
	}

	stats := &domain.DashboardStats{
		TotalVehicles:       len(vehicles),
		TotalServiceRecords: len(records),
		ActiveReminders:     len(open),
		TotalSpent:          decimal.Zero,
		Year:                s.clock.Now().Year(),
	}
	for i := range stats.MonthlyCosts {
		stats.MonthlyCosts[i] = decimal.Zero
	}

	// records arrive newest first
	for _, rec := range records {
		if rec.Cost != nil {
			stats.TotalSpent = stats.TotalSpent.Add(*rec.Cost)
			if rec.ServiceDate.Year() == stats.Year {
				m := rec.ServiceDate.Month() - 1
				stats.MonthlyCosts[m] = stats.MonthlyCosts[m].Add(*rec.Cost)
			}
		}
		if len(stats.RecentActivity) < domain.RecentServiceLimit {
			stats.RecentActivity = append(stats.RecentActivity, domain.RecentService{
				Record:  rec,
				Vehicle: summaries[rec.VehicleID],
			})
		}
	}

	logger.ExitMethod("statsService.Dashboard", "vehicles", stats.TotalVehicles, "records", stats.TotalServiceRecords)
	return stats, nil
}
