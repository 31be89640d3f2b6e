package rest

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/The-Batman-Code/laundry-service/domain"
	"github.com/The-Batman-Code/laundry-service/pkg/logger"

	"github.com/AMFarhan21/fres"
	"github.com/labstack/echo/v4"
)

type (
	InvoiceHandler struct {
		invoiceService InvoiceService
		timeout        time.Duration
	}

	InvoiceService interface {
		GetByID(ctx context.Context, id, userID string) (domain.Invoice, error)
		GetByPaymentID(ctx context.Context, paymentID, userID string) (domain.Invoice, error)
		GetAllForUser(ctx context.Context, userID string) ([]domain.Invoice, error)
		RenderPDF(ctx context.Context, id, userID string) ([]byte, error)
	}
)

func NewInvoiceHandler(invoiceService InvoiceService) *InvoiceHandler {
	return &InvoiceHandler{
		invoiceService: invoiceService,
		timeout:        10 * time.Second,
	}
}

func (h *InvoiceHandler) GetInvoices(c echo.Context) error {
	userID := c.Get("user_id").(string)

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	invoices, err := h.invoiceService.GetAllForUser(ctx, userID)
	if err != nil {
		logger.Error("Failed to get invoices", err)
		return c.JSON(http.StatusInternalServerError, ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusOK, fres.Response.StatusOK(invoices))
}

func (h *InvoiceHandler) GetInvoiceByID(c echo.Context) error {
	id := c.Param("id")
	userID := c.Get("user_id").(string)

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	inv, err := h.invoiceService.GetByID(ctx, id, userID)
	if err != nil {
		return invoiceError(c, err)
	}

	return c.JSON(http.StatusOK, fres.Response.StatusOK(inv))
}

func (h *InvoiceHandler) GetInvoiceByPaymentID(c echo.Context) error {
	paymentID := c.Param("payment_id")
	userID := c.Get("user_id").(string)

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	inv, err := h.invoiceService.GetByPaymentID(ctx, paymentID, userID)
	if err != nil {
		return invoiceError(c, err)
	}

	return c.JSON(http.StatusOK, fres.Response.StatusOK(inv))
}

// GetInvoicePDF streams the rendered printable document.
func (h *InvoiceHandler) GetInvoicePDF(c echo.Context) error {
	id := c.Param("id")
	userID := c.Get("user_id").(string)

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	pdf, err := h.invoiceService.RenderPDF(ctx, id, userID)
	if err != nil {
		return invoiceError(c, err)
	}

	c.Response().Header().Set(echo.HeaderContentDisposition, `attachment; filename="invoice-`+id+`.pdf"`)
	return c.Blob(http.StatusOK, "application/pdf", pdf)
}

func invoiceError(c echo.Context, err error) error {
	if strings.Contains(err.Error(), "not found") {
		return c.JSON(http.StatusNotFound, ResponseError{Message: err.Error()})
	}
	if strings.Contains(err.Error(), "not authorized") {
		return c.JSON(http.StatusForbidden, ResponseError{Message: err.Error()})
	}
	logger.Error("Invoice request failed", err)
	return c.JSON(http.StatusInternalServerError, ResponseError{Message: err.Error()})
}
