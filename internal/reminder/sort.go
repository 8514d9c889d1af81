package reminder

import (
	"slices"
	"time"

	"servicelog-backend/internal/domain"
)

func urgencyRank(u domain.Urgency) int {
	switch u {
	case domain.UrgencyOverdue:
		return 0
	case domain.UrgencyDueSoon:
		return 1
	default:
		return 2
	}
}

// SortByUrgency returns items partitioned into overdue, due soon and normal.
// Order inside each group is the input order.
func SortByUrgency(items []domain.OpenReminder, now time.Time) []domain.OpenReminder {
	sorted := slices.Clone(items)
	slices.SortStableFunc(sorted, func(a, b domain.OpenReminder) int {
		return urgencyRank(ClassifyOpen(a, now)) - urgencyRank(ClassifyOpen(b, now))
	})
	return sorted
}

// Views sorts items by urgency and attaches urgency and kind labels.
func Views(items []domain.OpenReminder, now time.Time) []domain.ReminderView {
	sorted := SortByUrgency(items, now)
	views := make([]domain.ReminderView, 0, len(sorted))
	for _, item := range sorted {
		views = append(views, domain.ReminderView{
			OpenReminder: item,
			KindLabel:    item.Kind.Label(),
			Urgency:      ClassifyOpen(item, now),
		})
	}
	return views
}

// Summarize counts items per urgency.
func Summarize(items []domain.OpenReminder, now time.Time) domain.ReminderSummary {
	var s domain.ReminderSummary
	for _, item := range items {
		switch ClassifyOpen(item, now) {
		case domain.UrgencyOverdue:
			s.Overdue++
		case domain.UrgencyDueSoon:
			s.DueSoon++
		default:
			s.Normal++
		}
	}
	return s
}
