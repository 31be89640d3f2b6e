package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/The-Batman-Code/laundry-service/app/echo-server/router"
	"github.com/The-Batman-Code/laundry-service/business/catalog"
	"github.com/The-Batman-Code/laundry-service/business/invoice"
	"github.com/The-Batman-Code/laundry-service/business/payments"
	"github.com/The-Batman-Code/laundry-service/business/pickup"
	"github.com/The-Batman-Code/laundry-service/business/timeslot"
	userService "github.com/The-Batman-Code/laundry-service/business/user"
	"github.com/The-Batman-Code/laundry-service/internal/middleware"
	"github.com/The-Batman-Code/laundry-service/internal/repository/notification"
	psqlRepo "github.com/The-Batman-Code/laundry-service/internal/repository/postgres"
	redisRepo "github.com/The-Batman-Code/laundry-service/internal/repository/redis"
	"github.com/The-Batman-Code/laundry-service/internal/rest"
	"github.com/The-Batman-Code/laundry-service/pkg/config"
	"github.com/The-Batman-Code/laundry-service/pkg/database"
	redisdb "github.com/The-Batman-Code/laundry-service/pkg/database/redis"
	"github.com/The-Batman-Code/laundry-service/pkg/logger"
	"github.com/The-Batman-Code/laundry-service/pkg/metrics"
	"github.com/The-Batman-Code/laundry-service/pkg/utils"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger.Init(cfg.App.Environment)
	logger.Info("Starting laundry service", "version", cfg.App.Version)

	utils.InitJWT(cfg.JWT.SecretKey, time.Duration(cfg.JWT.TokenExpiryMinutes)*time.Minute)

	db, err := database.InitPostgres(cfg)
	if err != nil {
		logger.Fatal("Failed to connect to database", "error", err)
	}

	logger.Info("Database connected successfully")

	metrics.Init()

	// Init notification from mailjet
	mailjetEmail := notification.NewMailjetRepository(
		notification.MailjetConfig{
			MailjetBaseURL:           cfg.Mailjet.MailjetBaseUrl,
			MailjetBasicAuthUsername: cfg.Mailjet.MailjetBasicAuthUsername,
			MailjetBasicAuthPassword: cfg.Mailjet.MailjetBasicAuthPassword,
			MailjetSenderEmail:       cfg.Mailjet.MailjetSenderEmail,
			MailjetSenderName:        cfg.Mailjet.MailjetSenderName,
		},
	)

	// Init validate
	validate := validator.New()

	// Init repo
	userRepo := psqlRepo.NewUserRepository(db)
	laundryTypeRepo := psqlRepo.NewLaundryTypeRepository(db)
	paymentMethodRepo := psqlRepo.NewPaymentMethodRepository(db)
	pickupRepo := psqlRepo.NewPickupRequestRepository(db)
	paymentsRepo := psqlRepo.NewPaymentsRepository(db)
	invoiceRepo := psqlRepo.NewInvoiceRepository(db)

	// Session store is optional: without Redis the API falls back to plain
	// JWT validation.
	var sessionRepo userService.SessionRepository
	redisClient, err := redisdb.NewRedisClient(cfg)
	if err != nil {
		logger.Warn("Redis unavailable, falling back to stateless auth", "error", err)
	} else {
		sessionRepo = redisRepo.NewSessionRepository(redisClient)
		defer redisdb.CloseRedisClient(redisClient)
	}

	// Init service
	usrService := userService.NewUserService(userRepo, validate, sessionRepo)
	catalogService := catalog.NewCatalogService(laundryTypeRepo, paymentMethodRepo)
	timeSlotService := timeslot.NewTimeSlotService()
	pickupService := pickup.NewPickupService(pickupRepo, timeSlotService)
	invoiceService := invoice.NewInvoiceService(invoiceRepo, pickupRepo, userRepo)
	paymentsService := payments.NewPaymentsService(paymentsRepo, pickupRepo, paymentMethodRepo, userRepo, invoiceService, mailjetEmail)

	// Seed reference data
	seedCtx, seedCancel := context.WithTimeout(context.Background(), 15*time.Second)
	if err := catalogService.Seed(seedCtx); err != nil {
		seedCancel()
		logger.Fatal("Failed to seed reference data", "error", err)
	}
	seedCancel()

	// Init handler
	userHandler := rest.NewUserHandler(usrService)
	catalogHandler := rest.NewCatalogHandler(catalogService)
	timeSlotHandler := rest.NewTimeSlotHandler(timeSlotService)
	pickupHandler := rest.NewPickupHandler(pickupService)
	paymentsHandler := rest.NewPaymentsHandler(paymentsService)
	invoiceHandler := rest.NewInvoiceHandler(invoiceService)
	healthHandler := rest.NewHealthHandler(db)

	// Init echo
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	// HTTP error handler
	e.HTTPErrorHandler = middleware.ErrorHandler

	// Global middleware
	e.Use(echomiddleware.Recover())
	e.Use(middleware.Metrics())
	e.Use(echomiddleware.CORSWithConfig(echomiddleware.CORSConfig{
		AllowOrigins: []string{"http://localhost:3000", "http://localhost:3001", "http://localhost:8000"},
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodPatch},
		AllowHeaders: []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept, echo.HeaderAuthorization},
	}))

	// Auth middleware
	authRequired := middleware.AuthMiddleware()
	if sessionRepo != nil {
		authRequired = middleware.AuthMiddlewareWithRedis(usrService)
	}

	// Setup routes
	router.SetupUserRoutes(e, userHandler, authRequired)
	router.SetupCatalogRoutes(e, catalogHandler)
	router.SetupTimeSlotRoutes(e, timeSlotHandler)
	router.SetupPickupRoutes(e, pickupHandler, authRequired)
	router.SetupPaymentRoutes(e, paymentsHandler, authRequired)
	router.SetupInvoiceRoutes(e, invoiceHandler, authRequired)
	router.SetupHealthRoutes(e, healthHandler)
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	// Goroutine server
	go func() {
		addr := fmt.Sprintf(":%s", cfg.Server.Port)
		logger.Info("Server starting", "address", addr)
		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			logger.Fatal("Failed to start server", "error", err)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	// Shutdown server
	if err := e.Shutdown(ctx); err != nil {
		logger.Error("Server shutdown error", "error", err)
	}

	logger.Info("Server stopped")
}
