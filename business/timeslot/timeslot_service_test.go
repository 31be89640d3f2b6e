package timeslot

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fixedClock() time.Time {
	return time.Date(2026, time.August, 31, 10, 0, 0, 0, time.UTC)
}

func TestGetTimeSlotsSevenDayWindow(t *testing.T) {
	service := NewTimeSlotServiceAt(fixedClock)

	slots := service.GetTimeSlots("")
	require.Len(t, slots, 14)

	// window starts tomorrow, never today
	assert.Equal(t, "2026-09-01-morning", slots[0].ID)
	assert.Equal(t, "2026-09-01", slots[0].Date)
	assert.Equal(t, "Tuesday, Sep 01", slots[0].DisplayDate)
	assert.Equal(t, "Morning (9:00 AM - 12:00 PM)", slots[0].Time)

	assert.Equal(t, "2026-09-01-afternoon", slots[1].ID)
	assert.Equal(t, "Afternoon (1:00 PM - 5:00 PM)", slots[1].Time)

	assert.Equal(t, "2026-09-07-afternoon", slots[13].ID)
}

func TestGetTimeSlotsDateFilter(t *testing.T) {
	service := NewTimeSlotServiceAt(fixedClock)

	slots := service.GetTimeSlots("2026-09-03")
	require.Len(t, slots, 2)
	assert.Equal(t, "2026-09-03-morning", slots[0].ID)
	assert.Equal(t, "2026-09-03-afternoon", slots[1].ID)
}

func TestGetTimeSlotsOutsideWindow(t *testing.T) {
	service := NewTimeSlotServiceAt(fixedClock)

	assert.Empty(t, service.GetTimeSlots("2026-08-31"))
	assert.Empty(t, service.GetTimeSlots("2026-09-08"))
	assert.Empty(t, service.GetTimeSlots("not-a-date"))
}

func TestIsValidSlot(t *testing.T) {
	service := NewTimeSlotServiceAt(fixedClock)

	assert.True(t, service.IsValidSlot("2026-09-01-morning"))
	assert.True(t, service.IsValidSlot("2026-09-07-afternoon"))
	assert.False(t, service.IsValidSlot("2026-08-31-morning"))
	assert.False(t, service.IsValidSlot("2026-09-01-evening"))
	assert.False(t, service.IsValidSlot(""))
}
