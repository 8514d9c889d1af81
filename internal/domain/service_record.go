package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type ServiceKind string

const (
	ServiceKindOilChange      ServiceKind = "OIL_CHANGE"
	ServiceKindBrakeService   ServiceKind = "BRAKE_SERVICE"
	ServiceKindTireRotation   ServiceKind = "TIRE_ROTATION"
	ServiceKindEngineCheck    ServiceKind = "ENGINE_CHECK"
	ServiceKindTransmission   ServiceKind = "TRANSMISSION"
	ServiceKindGeneralService ServiceKind = "GENERAL_SERVICE"
	ServiceKindCustom         ServiceKind = "CUSTOM"
)

var serviceKindLabels = map[ServiceKind]string{
	ServiceKindOilChange:      "Oil change",
	ServiceKindBrakeService:   "Brake service",
	ServiceKindTireRotation:   "Tire rotation",
	ServiceKindEngineCheck:    "Engine check",
	ServiceKindTransmission:   "Transmission service",
	ServiceKindGeneralService: "General service",
	ServiceKindCustom:         "Other",
}

// ServiceKinds lists every service kind in display order.
func ServiceKinds() []ServiceKind {
	return []ServiceKind{
		ServiceKindOilChange,
		ServiceKindBrakeService,
		ServiceKindTireRotation,
		ServiceKindEngineCheck,
		ServiceKindTransmission,
		ServiceKindGeneralService,
		ServiceKindCustom,
	}
}

func (k ServiceKind) Valid() bool {
	_, ok := serviceKindLabels[k]
	return ok
}

// Label returns the display label, falling back to the raw value.
func (k ServiceKind) Label() string {
	if label, ok := serviceKindLabels[k]; ok {
		return label
	}
	return string(k)
}

// SelfServiceLocation is stored as the location of self-performed services.
const SelfServiceLocation = "Self Service"

// BackdatedThreshold is how long after the service date an entry may be
// created before it is flagged as backdated.
const BackdatedThreshold = 7 * 24 * time.Hour

type ServiceRecord struct {
	ID               int32            `json:"id"`
	VehicleID        int32            `json:"vehicle_id"`
	ServiceDate      time.Time        `json:"service_date"`
	MileageAtService int              `json:"mileage_at_service"`
	Kind             ServiceKind      `json:"service_kind"`
	CustomKind       string           `json:"custom_service_kind,omitempty"`
	Description      string           `json:"description"`
	PartsReplaced    string           `json:"parts_replaced,omitempty"`
	Location         string           `json:"service_location,omitempty"`
	IsSelfService    bool             `json:"is_self_service"`
	Cost             *decimal.Decimal `json:"service_cost,omitempty"`
	InvoiceKey       string           `json:"invoice_key,omitempty"`
	Notes            string           `json:"notes,omitempty"`
	EntryCreatedAt   time.Time        `json:"entry_created_at"`
}

// IsBackdated reports whether the record was entered more than
// BackdatedThreshold after the service was performed.
func (r *ServiceRecord) IsBackdated() bool {
	return r.EntryCreatedAt.Sub(r.ServiceDate) > BackdatedThreshold
}

// KindLabel returns the custom label for CUSTOM records and the kind label otherwise.
func (r *ServiceRecord) KindLabel() string {
	if r.Kind == ServiceKindCustom && r.CustomKind != "" {
		return r.CustomKind
	}
	return r.Kind.Label()
}

// ServiceInput carries the caller-supplied fields of a service record.
type ServiceInput struct {
	ServiceDate      time.Time
	MileageAtService int
	Kind             ServiceKind
	CustomKind       string
	Description      string
	PartsReplaced    string
	Location         string
	IsSelfService    bool
	Cost             *decimal.Decimal
	InvoiceKey       string
	Notes            string
}
