package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"salonix/config"
	"salonix/cron"
	"salonix/database"
	bookingRepoPkg "salonix/database/repository/booking"
	salonRepoPkg "salonix/database/repository/salon"
	voucherRepoPkg "salonix/database/repository/voucher"
	workerRepoPkg "salonix/database/repository/worker"
	"salonix/handlers"
	"salonix/middleware"
	"salonix/routes"
	"salonix/services/booking"
	"salonix/services/maintenance"
	"salonix/services/notification"
	"salonix/services/voucher"
	"salonix/utils"

	"github.com/gin-gonic/gin"
	"github.com/hibiken/asynq"
	"github.com/stripe/stripe-go/v76"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitCache()
	stripe.Key = config.AppConfig.StripeKey

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	// repositories.
	workerRepo := workerRepoPkg.NewMongoWorkerRepo()
	salonRepo := salonRepoPkg.NewMongoSalonRepo()
	bookingRepo := bookingRepoPkg.NewMongoBookingRepo()
	voucherRepo := voucherRepoPkg.NewMongoVoucherRepo()

	// mail queue.
	mailClient := asynq.NewClient(asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisMailQueueDB,
	})
	defer mailClient.Close()
	cron.InitMailWorker(notification.SMTPMailer{})

	// services.
	handlers.SlotService = &booking.DefaultSlotService{
		WorkerRepo:  workerRepo,
		SalonRepo:   salonRepo,
		BookingRepo: bookingRepo,
		Cache:       utils.GetCacheClient(),
	}
	handlers.BookingService = &booking.DefaultBookingService{
		WorkerRepo:  workerRepo,
		SalonRepo:   salonRepo,
		BookingRepo: bookingRepo,
		VoucherRepo: voucherRepo,
		Cache:       utils.GetCacheClient(),
		Mail:        &notification.MailEnqueuer{Client: mailClient},
	}
	handlers.VoucherService = &voucher.DefaultVoucherService{
		Repo:    voucherRepo,
		Gateway: voucher.StripeGateway{},
	}
	handlers.MaintenanceService = &maintenance.MaintenanceService{
		WorkerRepo:  workerRepo,
		SalonRepo:   salonRepo,
		BookingRepo: bookingRepo,
	}

	routes.RegisterRoutes(router)

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
