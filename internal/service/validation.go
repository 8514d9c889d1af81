package service

import (
	"strings"
	"time"
	"unicode/utf8"

	"servicelog-backend/internal/domain"
)

const (
	minDescriptionLength = 10
	minVehicleYear       = 1900

	// MaxMileage caps odometer readings in km. Due mileages add at most
	// 60000 km on top and must still fit an INTEGER column.
	MaxMileage = 10_000_000

	maxMakeLength       = 100
	maxModelLength      = 100
	maxPlateLength      = 20
	maxCustomKindLength = 100
	maxLocationLength   = 200
	maxInvoiceKeyLength = 500
)

func tooLong(s string, max int) bool {
	return utf8.RuneCountInString(strings.TrimSpace(s)) > max
}

func validateMileage(field string, mileage int) error {
	if mileage < 0 {
		return domain.NewValidationError(field, "mileage must not be negative")
	}
	if mileage > MaxMileage {
		return domain.NewValidationError(field, "mileage is out of range")
	}
	return nil
}

func validateServiceInput(in domain.ServiceInput) error {
	if in.ServiceDate.IsZero() {
		return domain.NewValidationError("service_date", "service date is required")
	}
	if err := validateMileage("mileage_at_service", in.MileageAtService); err != nil {
		return err
	}
	if !in.Kind.Valid() {
		return domain.NewValidationError("service_kind", "unknown service kind")
	}
	if in.Kind == domain.ServiceKindCustom && strings.TrimSpace(in.CustomKind) == "" {
		return domain.NewValidationError("custom_service_kind", "custom service kind is required")
	}
	if tooLong(in.CustomKind, maxCustomKindLength) {
		return domain.NewValidationError("custom_service_kind", "custom service kind must be at most 100 characters")
	}
	if utf8.RuneCountInString(strings.TrimSpace(in.Description)) < minDescriptionLength {
		return domain.NewValidationError("description", "description must be at least 10 characters")
	}
	if !in.IsSelfService && strings.TrimSpace(in.Location) == "" {
		return domain.NewValidationError("service_location", "service location is required")
	}
	if tooLong(in.Location, maxLocationLength) {
		return domain.NewValidationError("service_location", "service location must be at most 200 characters")
	}
	if len(in.InvoiceKey) > maxInvoiceKeyLength {
		return domain.NewValidationError("invoice_key", "invoice key is too long")
	}
	if in.Cost != nil {
		if in.Cost.IsNegative() {
			return domain.NewValidationError("service_cost", "cost must not be negative")
		}
		if in.Cost.IsPositive() && !in.IsSelfService && in.InvoiceKey == "" {
			return domain.NewValidationError("invoice_key", "an invoice photo is required when a paid service was not self-performed")
		}
	}
	return nil
}

func validateVehicleInput(in domain.VehicleInput, now time.Time) error {
	if strings.TrimSpace(in.Make) == "" {
		return domain.NewValidationError("make", "make is required")
	}
	if tooLong(in.Make, maxMakeLength) {
		return domain.NewValidationError("make", "make must be at most 100 characters")
	}
	if strings.TrimSpace(in.Model) == "" {
		return domain.NewValidationError("model", "model is required")
	}
	if tooLong(in.Model, maxModelLength) {
		return domain.NewValidationError("model", "model must be at most 100 characters")
	}
	if in.Year < minVehicleYear || in.Year > now.Year()+1 {
		return domain.NewValidationError("year", "year is out of range")
	}
	if strings.TrimSpace(in.LicensePlate) == "" {
		return domain.NewValidationError("license_plate", "license plate is required")
	}
	if tooLong(in.LicensePlate, maxPlateLength) {
		return domain.NewValidationError("license_plate", "license plate must be at most 20 characters")
	}
	return validateMileage("current_mileage", in.CurrentMileage)
}
