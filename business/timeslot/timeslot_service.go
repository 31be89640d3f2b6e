package timeslot

import (
	"fmt"
	"time"

	"github.com/The-Batman-Code/laundry-service/domain"
)

const (
	horizonDays    = 7
	morningLabel   = "Morning (9:00 AM - 12:00 PM)"
	afternoonLabel = "Afternoon (1:00 PM - 5:00 PM)"
)

type timeSlotService struct {
	now func() time.Time
}

func NewTimeSlotService() *timeSlotService {
	return &timeSlotService{now: time.Now}
}

// NewTimeSlotServiceAt pins the clock, for tests.
func NewTimeSlotServiceAt(now func() time.Time) *timeSlotService {
	return &timeSlotService{now: now}
}

// GetTimeSlots returns the bookable windows for the next 7 days, two per day.
// When date is non-empty (YYYY-MM-DD) only that day's slots are returned; a
// date outside the window yields an empty list.
func (s *timeSlotService) GetTimeSlots(date string) []domain.TimeSlot {
	slots := make([]domain.TimeSlot, 0, horizonDays*2)
	today := s.now()

	for i := 1; i <= horizonDays; i++ {
		day := today.AddDate(0, 0, i)
		dateStr := day.Format("2006-01-02")

		if date != "" && date != dateStr {
			continue
		}

		displayDate := fmt.Sprintf("%s, %s", day.Format("Monday"), day.Format("Jan 02"))

		slots = append(slots, domain.TimeSlot{
			ID:          dateStr + "-morning",
			Date:        dateStr,
			DisplayDate: displayDate,
			Time:        morningLabel,
		})
		slots = append(slots, domain.TimeSlot{
			ID:          dateStr + "-afternoon",
			Date:        dateStr,
			DisplayDate: displayDate,
			Time:        afternoonLabel,
		})
	}

	return slots
}

// IsValidSlot reports whether the slot id is inside the current booking window.
func (s *timeSlotService) IsValidSlot(slotID string) bool {
	for _, slot := range s.GetTimeSlots("") {
		if slot.ID == slotID {
			return true
		}
	}
	return false
}
