package reminder

import (
	"fmt"
	"time"

	"servicelog-backend/internal/domain"
	"servicelog-backend/internal/utils"
)

// Due holds the next due date and due mileage of a reminder. Either may be nil.
type Due struct {
	Date    *time.Time
	Mileage *int
}

func mustInterval(kind domain.ReminderKind) Interval {
	iv, ok := intervals[kind]
	if !ok {
		panic(fmt.Sprintf("reminder: no interval defined for kind %q", kind))
	}
	return iv
}

// ComputeDueDate returns lastServiceDate advanced by the kind's months, or nil
// for distance-only kinds.
func ComputeDueDate(kind domain.ReminderKind, lastServiceDate time.Time) *time.Time {
	iv := mustInterval(kind)
	if iv.Months == 0 {
		return nil
	}
	due := utils.AddMonths(utils.DateOf(lastServiceDate), iv.Months).Time()
	return &due
}

// ComputeDueMileage returns lastServiceMileage plus the kind's kilometers, or
// nil for time-only kinds.
func ComputeDueMileage(kind domain.ReminderKind, lastServiceMileage int) *int {
	iv := mustInterval(kind)
	if iv.Kilometers == 0 {
		return nil
	}
	due := lastServiceMileage + iv.Kilometers
	return &due
}

// ComputeDue derives both due values from the service that satisfied kind.
func ComputeDue(kind domain.ReminderKind, lastServiceDate time.Time, lastServiceMileage int) Due {
	return Due{
		Date:    ComputeDueDate(kind, lastServiceDate),
		Mileage: ComputeDueMileage(kind, lastServiceMileage),
	}
}

// NewReminder builds the open reminder that follows a service of the given
// date and mileage.
func NewReminder(vehicleID int32, kind domain.ReminderKind, serviceDate time.Time, serviceMileage int) *domain.Reminder {
	due := ComputeDue(kind, serviceDate, serviceMileage)
	date := utils.DateOf(serviceDate).Time()
	mileage := serviceMileage
	return &domain.Reminder{
		VehicleID:          vehicleID,
		Kind:               kind,
		LastServiceDate:    &date,
		LastServiceMileage: &mileage,
		DueDate:            due.Date,
		DueMileage:         due.Mileage,
	}
}
