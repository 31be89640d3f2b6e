package rest

import (
	"net/http"

	"github.com/The-Batman-Code/laundry-service/domain"

	"github.com/AMFarhan21/fres"
	"github.com/labstack/echo/v4"
)

type (
	TimeSlotHandler struct {
		timeSlotService TimeSlotService
	}

	TimeSlotService interface {
		GetTimeSlots(date string) []domain.TimeSlot
	}
)

func NewTimeSlotHandler(timeSlotService TimeSlotService) *TimeSlotHandler {
	return &TimeSlotHandler{
		timeSlotService: timeSlotService,
	}
}

// GetTimeSlots handles GET /time-slots with an optional ?date= filter.
func (h *TimeSlotHandler) GetTimeSlots(c echo.Context) error {
	date := c.QueryParam("date")
	slots := h.timeSlotService.GetTimeSlots(date)

	return c.JSON(http.StatusOK, fres.Response.StatusOK(slots))
}
