// File: salonq/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"salonq/config"
	"salonq/cron"
	"salonq/database"
	catalogRepoPkg "salonq/database/repository/catalog"
	queueRepoPkg "salonq/database/repository/queue"
	salonRepoPkg "salonq/database/repository/salon"
	userRepoPkg "salonq/database/repository/user"
	"salonq/handlers"
	"salonq/middleware"
	"salonq/routes"
	catalogSvc "salonq/services/catalog"
	"salonq/services/notification"
	"salonq/services/payment"
	queueSvc "salonq/services/queue"
	salonSvc "salonq/services/salon"
	"salonq/services/tasks"
	userSvc "salonq/services/user"
	"salonq/utils"

	"github.com/gin-gonic/gin"
	"github.com/hibiken/asynq"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitAuthCache()
	utils.InitOTPCache()

	cloudinaryStorageService, err := utils.Cloudinary()
	if err != nil {
		logger.Sugar().Warnf("main: cloudinary storage unavailable, image uploads disabled: %v", err)
	}

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	// repositories.
	userRepo := userRepoPkg.NewMongoUserRepo()
	salonRepo := salonRepoPkg.NewMongoSalonRepo()
	serviceRepo := catalogRepoPkg.NewMongoServiceRepo()
	staffRepo := catalogRepoPkg.NewMongoStaffRepo()
	queueRepo := queueRepoPkg.NewMongoQueueRepo()

	// task queue client.
	asynqClient := asynq.NewClient(asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisTaskDB,
	})
	defer asynqClient.Close()
	enqueuer := tasks.NewAsynqEnqueuer(asynqClient)

	// services.
	notificationService := notification.NewTwilioNotificationService()

	userService := &userSvc.DefaultUserService{
		Repo:      userRepo,
		SalonRepo: salonRepo,
	}

	salonService := &salonSvc.DefaultSalonService{
		Repo:     salonRepo,
		UserRepo: userRepo,
	}

	catalogService := &catalogSvc.DefaultCatalogService{
		ServiceRepo: serviceRepo,
		StaffRepo:   staffRepo,
		Storage:     cloudinaryStorageService,
	}

	queueService := &queueSvc.DefaultQueueService{
		Repo:        queueRepo,
		SalonRepo:   salonRepo,
		ServiceRepo: serviceRepo,
		StaffRepo:   staffRepo,
		Tasks:       enqueuer,
	}

	paymentService := payment.NewRazorpayPaymentService(
		config.AppConfig.RazorpayKeyID,
		config.AppConfig.RazorpayKeySecret,
		queueRepo,
	)

	// handlers.
	authHandler := handlers.NewAuthHandler(userService)
	otpHandler := handlers.NewOTPHandler(notificationService)
	queueHandler := handlers.NewQueueHandler(queueService)
	salonQueueHandler := handlers.NewSalonQueueHandler(queueService)
	salonHandler := handlers.NewSalonHandler(salonService)
	directoryHandler := handlers.NewDirectoryHandler(salonService, catalogService)
	catalogHandler := handlers.NewCatalogHandler(catalogService)
	paymentHandler := handlers.NewPaymentHandler(paymentService, queueService)
	adminHandler := handlers.NewAdminHandler(userService, salonService)

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		UserRepo: userRepo,

		// Auth endpoints.
		RegisterHandler: authHandler.RegisterHandler,
		LoginHandler:    authHandler.LoginHandler,
		LogoutHandler:   authHandler.LogoutHandler,
		MeHandler:       authHandler.MeHandler,

		// OTP endpoints.
		RequestOTPHandler: otpHandler.RequestOTPHandler,
		VerifyOTPHandler:  otpHandler.VerifyOTPHandler,

		// Customer queue endpoints.
		CheckInHandler:    queueHandler.CheckInHandler,
		MyCheckInsHandler: queueHandler.MyCheckInsHandler,
		GetEntryHandler:   queueHandler.GetEntryHandler,
		CancelHandler:     queueHandler.CancelHandler,

		// Payment endpoints.
		CreateOrderHandler:   paymentHandler.CreateOrderHandler,
		VerifyPaymentHandler: paymentHandler.VerifyHandler,

		// Public directory endpoints.
		ListSalonsHandler:    directoryHandler.ListSalonsHandler,
		NearbySalonsHandler:  directoryHandler.NearbySalonsHandler,
		GetSalonHandler:      directoryHandler.GetSalonHandler,
		SalonServicesHandler: directoryHandler.SalonServicesHandler,
		SalonStaffHandler:    directoryHandler.SalonStaffHandler,

		// Salon admin queue endpoints.
		ListQueueHandler:    salonQueueHandler.ListQueueHandler,
		ListPendingHandler:  salonQueueHandler.ListPendingHandler,
		ApproveHandler:      salonQueueHandler.ApproveHandler,
		RejectHandler:       salonQueueHandler.RejectHandler,
		UpdateStatusHandler: salonQueueHandler.UpdateStatusHandler,
		DashboardHandler:    salonQueueHandler.DashboardHandler,

		// Salon admin profile endpoints.
		OnboardHandler:       salonHandler.OnboardHandler,
		MySalonHandler:       salonHandler.MySalonHandler,
		UpdateProfileHandler: salonHandler.UpdateProfileHandler,

		// Salon admin catalog endpoints.
		ListMyServicesHandler: catalogHandler.ListMyServicesHandler,
		CreateServiceHandler:  catalogHandler.CreateServiceHandler,
		UpdateServiceHandler:  catalogHandler.UpdateServiceHandler,
		DeleteServiceHandler:  catalogHandler.DeleteServiceHandler,
		ListMyStaffHandler:    catalogHandler.ListMyStaffHandler,
		CreateStaffHandler:    catalogHandler.CreateStaffHandler,
		UpdateStaffHandler:    catalogHandler.UpdateStaffHandler,
		DeleteStaffHandler:    catalogHandler.DeleteStaffHandler,

		// Main admin endpoints.
		GetAllUsersHandler:  adminHandler.GetAllUsersHandler,
		AdminListSalons:     adminHandler.ListSalonsHandler,
		AdminSetSalonStatus: adminHandler.SetSalonStatusHandler,
	}

	// Register routes with the assembled handler bundle.
	routes.RegisterRoutes(router, handlerBundle)

	// Background workers: refund/SMS task consumer and nightly reconciliation.
	cron.InitTaskWorker(paymentService, notificationService, queueRepo)
	reconciler := cron.StartReconciler(salonRepo, queueRepo)
	defer reconciler.Stop()

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
