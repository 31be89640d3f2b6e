package rest

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/The-Batman-Code/laundry-service/business/pickup"
	"github.com/The-Batman-Code/laundry-service/domain"
	"github.com/The-Batman-Code/laundry-service/pkg/logger"

	"github.com/AMFarhan21/fres"
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

type (
	PickupHandler struct {
		validate      *validator.Validate
		pickupService PickupService
		timeout       time.Duration
	}

	PickupService interface {
		Create(ctx context.Context, userID string, input pickup.CreateInput) (domain.PickupRequest, error)
		GetByID(ctx context.Context, id, userID string) (domain.PickupRequest, error)
		GetAllForUser(ctx context.Context, userID string) ([]domain.PickupRequest, error)
	}

	AddressInput struct {
		Street       string `json:"street" validate:"required"`
		City         string `json:"city" validate:"required"`
		State        string `json:"state" validate:"required"`
		ZipCode      string `json:"zip_code" validate:"required"`
		Instructions string `json:"instructions"`
	}

	ItemInput struct {
		ItemID   string `json:"item_id" validate:"required"`
		Quantity int    `json:"quantity"`
	}

	PickupRequestInput struct {
		Address             AddressInput `json:"address" validate:"required"`
		TimeSlotID          string       `json:"time_slot_id" validate:"required"`
		ServiceTypeIDs      []string     `json:"service_type_ids" validate:"required,min=1"`
		Items               []ItemInput  `json:"items" validate:"required,min=1,dive"`
		SpecialInstructions string       `json:"special_instructions"`
	}
)

func NewPickupHandler(pickupService PickupService) *PickupHandler {
	return &PickupHandler{
		validate:      validator.New(),
		pickupService: pickupService,
		timeout:       10 * time.Second,
	}
}

func (h *PickupHandler) CreatePickupRequest(c echo.Context) error {
	userID := c.Get("user_id").(string)

	var request PickupRequestInput

	if err := c.Bind(&request); err != nil {
		logger.Error("Invalid request body", err)
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	if err := h.validate.Struct(&request); err != nil {
		logger.Error("Failed to validate pickup request", err)
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	input := pickup.CreateInput{
		Address: domain.Address{
			Street:       request.Address.Street,
			City:         request.Address.City,
			State:        request.Address.State,
			ZipCode:      request.Address.ZipCode,
			Instructions: request.Address.Instructions,
		},
		TimeSlotID:          request.TimeSlotID,
		ServiceTypeIDs:      request.ServiceTypeIDs,
		SpecialInstructions: request.SpecialInstructions,
	}
	for _, item := range request.Items {
		input.Items = append(input.Items, pickup.ItemSelection{
			ItemID:   item.ItemID,
			Quantity: item.Quantity,
		})
	}

	created, err := h.pickupService.Create(ctx, userID, input)
	if err != nil {
		logger.Error("Failed to create pickup request", err)
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusCreated, fres.Response.StatusCreated(created))
}

func (h *PickupHandler) GetPickupRequests(c echo.Context) error {
	userID := c.Get("user_id").(string)

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	requests, err := h.pickupService.GetAllForUser(ctx, userID)
	if err != nil {
		logger.Error("Failed to get pickup requests", err)
		return c.JSON(http.StatusInternalServerError, ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusOK, fres.Response.StatusOK(requests))
}

func (h *PickupHandler) GetPickupRequestByID(c echo.Context) error {
	id := c.Param("id")
	userID := c.Get("user_id").(string)

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	request, err := h.pickupService.GetByID(ctx, id, userID)
	if err != nil {
		if strings.Contains(err.Error(), "not found") {
			return c.JSON(http.StatusNotFound, ResponseError{Message: err.Error()})
		}
		if strings.Contains(err.Error(), "not authorized") {
			return c.JSON(http.StatusForbidden, ResponseError{Message: err.Error()})
		}
		return c.JSON(http.StatusInternalServerError, ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusOK, fres.Response.StatusOK(request))
}
