package reminder

import (
	"testing"
	"time"

	"servicelog-backend/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestComputeDueDate(t *testing.T) {
	serviced := day(2024, 3, 15)

	for _, kind := range domain.ReminderKinds() {
		t.Run(string(kind), func(t *testing.T) {
			iv, _ := IntervalFor(kind)
			due := ComputeDueDate(kind, serviced)
			if iv.Months == 0 {
				assert.Nil(t, due)
				return
			}
			require.NotNil(t, due)
			assert.Equal(t, serviced.AddDate(0, iv.Months, 0), *due)
		})
	}
}

func TestComputeDueDate_ClampsToMonthEnd(t *testing.T) {
	// Aug 31 + 6 months lands in February
	due := ComputeDueDate(domain.ReminderKindOilChange, day(2023, 8, 31))
	require.NotNil(t, due)
	assert.Equal(t, day(2024, 2, 29), *due)

	due = ComputeDueDate(domain.ReminderKindOilChange, day(2024, 8, 31))
	require.NotNil(t, due)
	assert.Equal(t, day(2025, 2, 28), *due)
}

func TestComputeDueDate_DropsTimeOfDay(t *testing.T) {
	serviced := time.Date(2024, 1, 10, 17, 45, 0, 0, time.UTC)
	due := ComputeDueDate(domain.ReminderKindBrakeFluid, serviced)
	require.NotNil(t, due)
	assert.Equal(t, day(2026, 1, 10), *due)
}

func TestComputeDueMileage(t *testing.T) {
	for _, kind := range domain.ReminderKinds() {
		t.Run(string(kind), func(t *testing.T) {
			iv, _ := IntervalFor(kind)
			due := ComputeDueMileage(kind, 73500)
			if iv.Kilometers == 0 {
				assert.Nil(t, due)
				return
			}
			require.NotNil(t, due)
			assert.Equal(t, 73500+iv.Kilometers, *due)
		})
	}
}

func TestComputeDue_NeverBothNil(t *testing.T) {
	for _, kind := range domain.ReminderKinds() {
		due := ComputeDue(kind, day(2024, 1, 1), 1000)
		assert.False(t, due.Date == nil && due.Mileage == nil, "kind %s", kind)
	}
}

func TestComputeDue_UnknownKindPanics(t *testing.T) {
	assert.Panics(t, func() {
		ComputeDue(domain.ReminderKind("WIPER_BLADES"), day(2024, 1, 1), 0)
	})
}

func TestNewReminder_OilChange(t *testing.T) {
	serviced := day(2024, 5, 20)
	r := NewReminder(7, domain.ReminderKindOilChange, serviced, 73500)

	assert.Equal(t, int32(7), r.VehicleID)
	assert.Equal(t, domain.ReminderKindOilChange, r.Kind)
	assert.False(t, r.IsCompleted)
	require.NotNil(t, r.LastServiceDate)
	assert.Equal(t, serviced, *r.LastServiceDate)
	require.NotNil(t, r.LastServiceMileage)
	assert.Equal(t, 73500, *r.LastServiceMileage)
	require.NotNil(t, r.DueMileage)
	assert.Equal(t, 78500, *r.DueMileage)
	require.NotNil(t, r.DueDate)
	assert.Equal(t, day(2024, 11, 20), *r.DueDate)
}
