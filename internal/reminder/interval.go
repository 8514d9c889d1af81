// Package reminder derives maintenance due values from completed services and
// classifies how urgent an open reminder is.
package reminder

import "servicelog-backend/internal/domain"

// Interval is the renewal period of a reminder kind. A zero field is absent;
// every kind has at least one of the two.
type Interval struct {
	Months     int
	Kilometers int
}

var intervals = map[domain.ReminderKind]Interval{
	domain.ReminderKindOilChange:         {Months: 6, Kilometers: 5000},
	domain.ReminderKindBrakeFluid:        {Months: 24},
	domain.ReminderKindCoolant:           {Months: 24, Kilometers: 40000},
	domain.ReminderKindTransmissionFluid: {Kilometers: 40000},
	domain.ReminderKindTireRotation:      {Kilometers: 10000},
	domain.ReminderKindAirFilter:         {Kilometers: 10000},
	domain.ReminderKindSparkPlug:         {Kilometers: 20000},
	domain.ReminderKindTimingBelt:        {Kilometers: 60000},
}

// IntervalFor returns the renewal interval of kind.
func IntervalFor(kind domain.ReminderKind) (Interval, bool) {
	iv, ok := intervals[kind]
	return iv, ok
}

// Services without an entry here do not produce reminders.
var serviceReminders = map[domain.ServiceKind]domain.ReminderKind{
	domain.ServiceKindOilChange:    domain.ReminderKindOilChange,
	domain.ServiceKindBrakeService: domain.ReminderKindBrakeFluid,
	domain.ServiceKindTransmission: domain.ReminderKindTransmissionFluid,
	domain.ServiceKindTireRotation: domain.ReminderKindTireRotation,
}

// ReminderKindFor reports which reminder a completed service of kind satisfies.
func ReminderKindFor(kind domain.ServiceKind) (domain.ReminderKind, bool) {
	rk, ok := serviceReminders[kind]
	return rk, ok
}
