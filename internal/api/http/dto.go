package http

import (
	"time"

	"servicelog-backend/internal/domain"
	"servicelog-backend/internal/utils"

	"github.com/shopspring/decimal"
)

type vehicleRequest struct {
	Make           string `json:"make"`
	Model          string `json:"model"`
	Year           int    `json:"year"`
	LicensePlate   string `json:"license_plate"`
	CurrentMileage int    `json:"current_mileage"`
}

func (req vehicleRequest) toInput() domain.VehicleInput {
	return domain.VehicleInput{
		Make:           req.Make,
		Model:          req.Model,
		Year:           req.Year,
		LicensePlate:   req.LicensePlate,
		CurrentMileage: req.CurrentMileage,
	}
}

type mileageRequest struct {
	CurrentMileage *int `json:"current_mileage"`
}

type serviceRecordRequest struct {
	ServiceDate      string           `json:"service_date"` // yyyy-mm-dd
	MileageAtService int              `json:"mileage_at_service"`
	Kind             string           `json:"service_kind"`
	CustomKind       string           `json:"custom_service_kind"`
	Description      string           `json:"description"`
	PartsReplaced    string           `json:"parts_replaced"`
	Location         string           `json:"service_location"`
	IsSelfService    bool             `json:"is_self_service"`
	Cost             *decimal.Decimal `json:"service_cost"`
	InvoiceKey       string           `json:"invoice_key"`
	Notes            string           `json:"notes"`
}

func (req serviceRecordRequest) toInput() (domain.ServiceInput, error) {
	in := domain.ServiceInput{
		MileageAtService: req.MileageAtService,
		Kind:             domain.ServiceKind(req.Kind),
		CustomKind:       req.CustomKind,
		Description:      req.Description,
		PartsReplaced:    req.PartsReplaced,
		Location:         req.Location,
		IsSelfService:    req.IsSelfService,
		Cost:             req.Cost,
		InvoiceKey:       req.InvoiceKey,
		Notes:            req.Notes,
	}
	if req.ServiceDate != "" {
		d, err := utils.ParseDate(req.ServiceDate)
		if err != nil {
			return in, domain.NewValidationError("service_date", "service date must be formatted as yyyy-mm-dd")
		}
		in.ServiceDate = d.Time()
	}
	return in, nil
}

type serviceRecordResponse struct {
	ID               int32            `json:"id"`
	VehicleID        int32            `json:"vehicle_id"`
	ServiceDate      string           `json:"service_date"`
	MileageAtService int              `json:"mileage_at_service"`
	Kind             string           `json:"service_kind"`
	KindLabel        string           `json:"kind_label"`
	Description      string           `json:"description"`
	PartsReplaced    string           `json:"parts_replaced,omitempty"`
	Location         string           `json:"service_location,omitempty"`
	IsSelfService    bool             `json:"is_self_service"`
	Cost             *decimal.Decimal `json:"service_cost,omitempty"`
	InvoiceKey       string           `json:"invoice_key,omitempty"`
	Notes            string           `json:"notes,omitempty"`
	EntryCreatedAt   time.Time        `json:"entry_created_at"`
	IsBackdated      bool             `json:"is_backdated"`
}

func toServiceRecordResponse(rec *domain.ServiceRecord) serviceRecordResponse {
	return serviceRecordResponse{
		ID:               rec.ID,
		VehicleID:        rec.VehicleID,
		ServiceDate:      utils.DateOf(rec.ServiceDate).String(),
		MileageAtService: rec.MileageAtService,
		Kind:             string(rec.Kind),
		KindLabel:        rec.KindLabel(),
		Description:      rec.Description,
		PartsReplaced:    rec.PartsReplaced,
		Location:         rec.Location,
		IsSelfService:    rec.IsSelfService,
		Cost:             rec.Cost,
		InvoiceKey:       rec.InvoiceKey,
		Notes:            rec.Notes,
		EntryCreatedAt:   rec.EntryCreatedAt,
		IsBackdated:      rec.IsBackdated(),
	}
}

type reminderResponse struct {
	ID                 int32                 `json:"id"`
	VehicleID          int32                 `json:"vehicle_id"`
	Kind               string                `json:"reminder_kind"`
	KindLabel          string                `json:"kind_label"`
	LastServiceDate    *string               `json:"last_service_date"`
	LastServiceMileage *int                  `json:"last_service_mileage"`
	DueDate            *string               `json:"due_date"`
	DueMileage         *int                  `json:"due_mileage"`
	Urgency            domain.Urgency        `json:"urgency"`
	Vehicle            domain.VehicleSummary `json:"vehicle"`
}

type reminderListResponse struct {
	Reminders []reminderResponse      `json:"reminders"`
	Summary   *domain.ReminderSummary `json:"summary,omitempty"`
}

func formatDate(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := utils.DateOf(*t).String()
	return &s
}

func toReminderResponses(views []domain.ReminderView) []reminderResponse {
	out := make([]reminderResponse, 0, len(views))
	for _, v := range views {
		out = append(out, reminderResponse{
			ID:                 v.ID,
			VehicleID:          v.VehicleID,
			Kind:               string(v.Kind),
			KindLabel:          v.KindLabel,
			LastServiceDate:    formatDate(v.LastServiceDate),
			LastServiceMileage: v.LastServiceMileage,
			DueDate:            formatDate(v.DueDate),
			DueMileage:         v.DueMileage,
			Urgency:            v.Urgency,
			Vehicle:            v.Vehicle,
		})
	}
	return out
}

type recentServiceResponse struct {
	serviceRecordResponse
	Vehicle domain.VehicleSummary `json:"vehicle"`
}

type dashboardResponse struct {
	TotalVehicles       int                     `json:"total_vehicles"`
	TotalServiceRecords int                     `json:"total_service_records"`
	ActiveReminders     int                     `json:"active_reminders"`
	TotalSpent          decimal.Decimal         `json:"total_spent"`
	Year                int                     `json:"year"`
	MonthlyCosts        [12]decimal.Decimal     `json:"monthly_costs"`
	RecentActivity      []recentServiceResponse `json:"recent_activity"`
}

func toDashboardResponse(stats *domain.DashboardStats) dashboardResponse {
	resp := dashboardResponse{
		TotalVehicles:       stats.TotalVehicles,
		TotalServiceRecords: stats.TotalServiceRecords,
		ActiveReminders:     stats.ActiveReminders,
		TotalSpent:          stats.TotalSpent,
		Year:                stats.Year,
		MonthlyCosts:        stats.MonthlyCosts,
		RecentActivity:      make([]recentServiceResponse, 0, len(stats.RecentActivity)),
	}
	for i := range stats.RecentActivity {
		recent := &stats.RecentActivity[i]
		resp.RecentActivity = append(resp.RecentActivity, recentServiceResponse{
			serviceRecordResponse: toServiceRecordResponse(&recent.Record),
			Vehicle:               recent.Vehicle,
		})
	}
	return resp
}

type kindResponse struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

type kindsResponse struct {
	ServiceKinds  []kindResponse `json:"service_kinds"`
	ReminderKinds []kindResponse `json:"reminder_kinds"`
}
