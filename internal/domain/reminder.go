package domain

import "time"

type ReminderKind string

const (
	ReminderKindOilChange         ReminderKind = "OIL_CHANGE"
	ReminderKindBrakeFluid        ReminderKind = "BRAKE_FLUID"
	ReminderKindCoolant           ReminderKind = "COOLANT"
	ReminderKindTransmissionFluid ReminderKind = "TRANSMISSION_FLUID"
	ReminderKindTireRotation      ReminderKind = "TIRE_ROTATION"
	ReminderKindAirFilter         ReminderKind = "AIR_FILTER"
	ReminderKindSparkPlug         ReminderKind = "SPARK_PLUG"
	ReminderKindTimingBelt        ReminderKind = "TIMING_BELT"
)

var reminderKindLabels = map[ReminderKind]string{
	ReminderKindOilChange:         "Oil change",
	ReminderKindBrakeFluid:        "Brake fluid replacement",
	ReminderKindCoolant:           "Coolant replacement",
	ReminderKindTransmissionFluid: "Transmission fluid change",
	ReminderKindTireRotation:      "Tire rotation",
	ReminderKindAirFilter:         "Air filter replacement",
	ReminderKindSparkPlug:         "Spark plug replacement",
	ReminderKindTimingBelt:        "Timing belt replacement",
}

func ReminderKinds() []ReminderKind {
	return []ReminderKind{
		ReminderKindOilChange,
		ReminderKindBrakeFluid,
		ReminderKindCoolant,
		ReminderKindTransmissionFluid,
		ReminderKindTireRotation,
		ReminderKindAirFilter,
		ReminderKindSparkPlug,
		ReminderKindTimingBelt,
	}
}

func (k ReminderKind) Valid() bool {
	_, ok := reminderKindLabels[k]
	return ok
}

func (k ReminderKind) Label() string {
	if label, ok := reminderKindLabels[k]; ok {
		return label
	}
	return string(k)
}

type Urgency string

const (
	UrgencyOverdue Urgency = "overdue"
	UrgencyDueSoon Urgency = "due_soon"
	UrgencyNormal  Urgency = "normal"
)

type Reminder struct {
	ID                 int32        `json:"id"`
	VehicleID          int32        `json:"vehicle_id"`
	Kind               ReminderKind `json:"reminder_kind"`
	LastServiceDate    *time.Time   `json:"last_service_date,omitempty"`
	LastServiceMileage *int         `json:"last_service_mileage,omitempty"`
	DueDate            *time.Time   `json:"due_date,omitempty"`
	DueMileage         *int         `json:"due_mileage,omitempty"`
	IsCompleted        bool         `json:"is_completed"`
	CreatedOn          time.Time    `json:"created_on"`
}

// OpenReminder is an open reminder joined with the vehicle it belongs to.
type OpenReminder struct {
	Reminder
	Vehicle VehicleSummary `json:"vehicle"`
}

// ReminderView is an open reminder ready for display.
type ReminderView struct {
	OpenReminder
	KindLabel string  `json:"kind_label"`
	Urgency   Urgency `json:"urgency"`
}

type ReminderSummary struct {
	Overdue int `json:"overdue"`
	DueSoon int `json:"due_soon"`
	Normal  int `json:"normal"`
}
