package domain

import "github.com/shopspring/decimal"

// RecentServiceLimit is how many records the dashboard's recent activity holds.
const RecentServiceLimit = 5

// RecentService is a service record shown with the vehicle it was done on.
type RecentService struct {
	Record  ServiceRecord
	Vehicle VehicleSummary
}

// DashboardStats aggregates an owner's fleet. MonthlyCosts covers Year,
// January first.
type DashboardStats struct {
	TotalVehicles       int
	TotalServiceRecords int
	ActiveReminders     int
	TotalSpent          decimal.Decimal
	Year                int
	MonthlyCosts        [12]decimal.Decimal
	RecentActivity      []RecentService
}
