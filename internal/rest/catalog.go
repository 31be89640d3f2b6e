package rest

import (
	"context"
	"net/http"

	"github.com/The-Batman-Code/laundry-service/domain"
	"github.com/The-Batman-Code/laundry-service/pkg/logger"

	"github.com/AMFarhan21/fres"
	"github.com/labstack/echo/v4"
)

type (
	CatalogHandler struct {
		catalogService CatalogService
	}

	CatalogService interface {
		GetLaundryTypes(ctx context.Context) ([]domain.LaundryType, error)
		GetServiceItems(ctx context.Context) []domain.ServiceItem
		GetPaymentMethods(ctx context.Context) ([]domain.PaymentMethod, error)
	}
)

func NewCatalogHandler(catalogService CatalogService) *CatalogHandler {
	return &CatalogHandler{
		catalogService: catalogService,
	}
}

func (h *CatalogHandler) GetLaundryTypes(c echo.Context) error {
	types, err := h.catalogService.GetLaundryTypes(c.Request().Context())
	if err != nil {
		logger.Error("Failed to get laundry types", err)
		return c.JSON(http.StatusInternalServerError, ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusOK, fres.Response.StatusOK(types))
}

func (h *CatalogHandler) GetServiceItems(c echo.Context) error {
	items := h.catalogService.GetServiceItems(c.Request().Context())
	return c.JSON(http.StatusOK, fres.Response.StatusOK(items))
}

func (h *CatalogHandler) GetPaymentMethods(c echo.Context) error {
	methods, err := h.catalogService.GetPaymentMethods(c.Request().Context())
	if err != nil {
		logger.Error("Failed to get payment methods", err)
		return c.JSON(http.StatusInternalServerError, ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusOK, fres.Response.StatusOK(methods))
}
