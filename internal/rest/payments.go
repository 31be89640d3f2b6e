package rest

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/The-Batman-Code/laundry-service/business/payments"
	"github.com/The-Batman-Code/laundry-service/domain"
	"github.com/The-Batman-Code/laundry-service/pkg/logger"

	"github.com/AMFarhan21/fres"
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

type (
	PaymentsHandler struct {
		validate        *validator.Validate
		paymentsService PaymentsService
		timeout         time.Duration
	}

	PaymentsService interface {
		CreatePayment(ctx context.Context, userID string, input payments.CreateInput) (domain.Payment, error)
		GetPayment(ctx context.Context, id, userID string) (domain.Payment, error)
		GetAllPayments(ctx context.Context, userID string) ([]domain.Payment, error)
	}

	PaymentsInput struct {
		PickupRequestID string  `json:"pickup_request_id" validate:"required"`
		PaymentMethodID string  `json:"payment_method_id" validate:"required"`
		Amount          float64 `json:"amount" validate:"required,gt=0"`
	}
)

func NewPaymentsHandler(paymentsService PaymentsService) *PaymentsHandler {
	return &PaymentsHandler{
		validate:        validator.New(),
		paymentsService: paymentsService,
		timeout:         10 * time.Second,
	}
}

func (h *PaymentsHandler) CreatePayment(c echo.Context) error {
	userID := c.Get("user_id").(string)

	var request PaymentsInput

	if err := c.Bind(&request); err != nil {
		logger.Error("Invalid request body", err)
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	if err := h.validate.Struct(&request); err != nil {
		logger.Error("Failed to validate create payment", err)
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	payment, err := h.paymentsService.CreatePayment(ctx, userID, payments.CreateInput{
		PickupRequestID: request.PickupRequestID,
		PaymentMethodID: request.PaymentMethodID,
		Amount:          request.Amount,
	})
	if err != nil {
		if strings.Contains(err.Error(), "not found") {
			return c.JSON(http.StatusNotFound, ResponseError{Message: err.Error()})
		}
		if strings.Contains(err.Error(), "not authorized") {
			return c.JSON(http.StatusForbidden, ResponseError{Message: err.Error()})
		}
		logger.Error("Failed to create payment", err)
		return c.JSON(http.StatusInternalServerError, ResponseError{Message: "Payment processing failed. Please try again later."})
	}

	return c.JSON(http.StatusCreated, fres.Response.StatusCreated(payment))
}

func (h *PaymentsHandler) GetPaymentByID(c echo.Context) error {
	id := c.Param("id")
	userID := c.Get("user_id").(string)

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	payment, err := h.paymentsService.GetPayment(ctx, id, userID)
	if err != nil {
		if strings.Contains(err.Error(), "not found") {
			return c.JSON(http.StatusNotFound, ResponseError{Message: err.Error()})
		}
		if strings.Contains(err.Error(), "not authorized") {
			return c.JSON(http.StatusForbidden, ResponseError{Message: err.Error()})
		}
		return c.JSON(http.StatusInternalServerError, ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusOK, fres.Response.StatusOK(payment))
}

func (h *PaymentsHandler) GetAllPayments(c echo.Context) error {
	userID := c.Get("user_id").(string)

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	list, err := h.paymentsService.GetAllPayments(ctx, userID)
	if err != nil {
		logger.Error("Failed to get all payments", err)
		return c.JSON(http.StatusInternalServerError, ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusOK, fres.Response.StatusOK(list))
}
