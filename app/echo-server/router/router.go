package router

import (
	"github.com/The-Batman-Code/laundry-service/internal/rest"

	"github.com/labstack/echo/v4"
)

func SetupUserRoutes(e *echo.Echo, handler *rest.UserHandler, authRequired echo.MiddlewareFunc) {
	e.POST("/users", handler.Register)
	e.POST("/token", handler.Token)

	e.GET("/users/me", handler.Me, authRequired)
	e.POST("/logout", handler.Logout, authRequired)
}

func SetupCatalogRoutes(e *echo.Echo, handler *rest.CatalogHandler) {
	e.GET("/laundry-types", handler.GetLaundryTypes)
	e.GET("/service-items", handler.GetServiceItems)
	e.GET("/payment-methods", handler.GetPaymentMethods)
}

func SetupTimeSlotRoutes(e *echo.Echo, handler *rest.TimeSlotHandler) {
	e.GET("/time-slots", handler.GetTimeSlots)
}

func SetupPickupRoutes(e *echo.Echo, handler *rest.PickupHandler, authRequired echo.MiddlewareFunc) {
	pickups := e.Group("/pickup-requests", authRequired)
	pickups.POST("", handler.CreatePickupRequest)
	pickups.GET("", handler.GetPickupRequests)
	pickups.GET("/:id", handler.GetPickupRequestByID)
}

func SetupPaymentRoutes(e *echo.Echo, handler *rest.PaymentsHandler, authRequired echo.MiddlewareFunc) {
	payments := e.Group("/payments", authRequired)
	payments.POST("", handler.CreatePayment)
	payments.GET("", handler.GetAllPayments)
	payments.GET("/:id", handler.GetPaymentByID)
}

func SetupInvoiceRoutes(e *echo.Echo, handler *rest.InvoiceHandler, authRequired echo.MiddlewareFunc) {
	invoices := e.Group("/invoices", authRequired)
	invoices.GET("", handler.GetInvoices)
	invoices.GET("/payment/:payment_id", handler.GetInvoiceByPaymentID)
	invoices.GET("/:id", handler.GetInvoiceByID)
	invoices.GET("/:id/pdf", handler.GetInvoicePDF)
}

func SetupHealthRoutes(e *echo.Echo, handler *rest.HealthHandler) {
	e.GET("/health", handler.Health)
}
