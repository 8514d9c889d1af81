package domain

import "time"

type Vehicle struct {
	ID             int32     `json:"id"`
	OwnerID        int32     `json:"owner_id"`
	Make           string    `json:"make"`
	Model          string    `json:"model"`
	Year           int       `json:"year"`
	LicensePlate   string    `json:"license_plate"`
	CurrentMileage int       `json:"current_mileage"`
	IsPrimary      bool      `json:"is_primary"`
	CreatedOn      time.Time `json:"created_on"`
}

// VehicleSummary is the slice of a vehicle shown next to its reminders.
type VehicleSummary struct {
	ID             int32  `json:"id"`
	Make           string `json:"make"`
	Model          string `json:"model"`
	LicensePlate   string `json:"license_plate"`
	CurrentMileage int    `json:"current_mileage"`
}

func (v *Vehicle) Summary() VehicleSummary {
	return VehicleSummary{
		ID:             v.ID,
		Make:           v.Make,
		Model:          v.Model,
		LicensePlate:   v.LicensePlate,
		CurrentMileage: v.CurrentMileage,
	}
}

// VehicleInput carries the caller-supplied fields of a vehicle.
type VehicleInput struct {
	Make           string
	Model          string
	Year           int
	LicensePlate   string
	CurrentMileage int
}
