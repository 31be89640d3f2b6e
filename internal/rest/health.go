package rest

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"
)

type HealthHandler struct {
	db *gorm.DB
}

func NewHealthHandler(db *gorm.DB) *HealthHandler {
	return &HealthHandler{db: db}
}

func (h *HealthHandler) Health(c echo.Context) error {
	dbStatus := "ok"

	sqlDB, err := h.db.DB()
	if err != nil {
		dbStatus = "error"
	} else if err := sqlDB.PingContext(c.Request().Context()); err != nil {
		dbStatus = "error"
	}

	status := http.StatusOK
	appStatus := "up"
	if dbStatus != "ok" {
		status = http.StatusServiceUnavailable
		appStatus = "degraded"
	}

	return c.JSON(status, map[string]string{
		"status":   appStatus,
		"database": dbStatus,
	})
}
