package reminder

import (
	"time"

	"servicelog-backend/internal/domain"
	"servicelog-backend/internal/utils"
)

const (
	// DueSoonWindowDays is how many days ahead a due date counts as due soon.
	DueSoonWindowDays = 7
	// MileageBuffer is how many kilometers before the due mileage a reminder counts as due soon.
	MileageBuffer = 500
)

// IsOverdue reports whether the due date is before today or the vehicle has
// reached the due mileage.
func IsOverdue(dueDate *time.Time, dueMileage *int, currentMileage int, now time.Time) bool {
	if dueDate != nil && utils.DateOf(*dueDate).Before(utils.DateOf(now)) {
		return true
	}
	if dueMileage != nil && currentMileage >= *dueMileage {
		return true
	}
	return false
}

// IsDueSoon reports whether the due date falls on or before the end of the
// look-ahead window, or the vehicle is within MileageBuffer of the due
// mileage. It does not exclude overdue reminders; use Classify for a label.
func IsDueSoon(dueDate *time.Time, dueMileage *int, currentMileage int, now time.Time) bool {
	horizon := utils.DateOf(now).AddDays(DueSoonWindowDays)
	if dueDate != nil && !utils.DateOf(*dueDate).After(horizon) {
		return true
	}
	if dueMileage != nil && currentMileage >= *dueMileage-MileageBuffer {
		return true
	}
	return false
}

// Classify picks one urgency with overdue taking precedence over due soon.
func Classify(dueDate *time.Time, dueMileage *int, currentMileage int, now time.Time) domain.Urgency {
	switch {
	case IsOverdue(dueDate, dueMileage, currentMileage, now):
		return domain.UrgencyOverdue
	case IsDueSoon(dueDate, dueMileage, currentMileage, now):
		return domain.UrgencyDueSoon
	default:
		return domain.UrgencyNormal
	}
}

// ClassifyOpen classifies r against its vehicle's current mileage.
func ClassifyOpen(r domain.OpenReminder, now time.Time) domain.Urgency {
	return Classify(r.DueDate, r.DueMileage, r.Vehicle.CurrentMileage, now)
}
