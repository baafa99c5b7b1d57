package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"medibook/config"
	"medibook/cron"
	"medibook/database"
	appointmentRepo "medibook/database/repository/appointment"
	availabilityRepo "medibook/database/repository/availability"
	healthcareRepo "medibook/database/repository/healthcare"
	reviewRepo "medibook/database/repository/review"
	userRepoPkg "medibook/database/repository/user"
	"medibook/handlers"
	"medibook/middleware"
	"medibook/routes"
	"medibook/services/appointment"
	"medibook/services/doctor"
	"medibook/services/identity"
	"medibook/services/review"
	"medibook/services/storage"
	"medibook/services/tasks"
	"medibook/services/user"
	"medibook/utils"

	"github.com/gin-gonic/gin"
	"github.com/hibiken/asynq"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()
	defer logger.Sync()

	if config.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	database.InitDB()
	utils.InitCache()
	if utils.GetCacheClient() == nil {
		logger.Warn("main: Redis unavailable, running without slot locks and dashboard cache")
	}
	loc := config.Location()

	verifier, err := utils.NewTokenVerifier(config.AppConfig.JWTSecret, config.AppConfig.JWTPublicKey, config.AppConfig.JWTIssuer)
	if err != nil {
		logger.Sugar().Fatalf("main: failed to initialize token verifier: %v", err)
	}

	storageService, err := storage.NewStorageService()
	if err != nil {
		logger.Sugar().Fatalf("main: failed to initialize storage service: %v", err)
	}

	var idp identity.Provider = identity.NewNoopProvider()
	if config.AppConfig.IdentityEnabled {
		idp = identity.NewKeycloakProvider(
			config.AppConfig.KeycloakURL,
			config.AppConfig.KeycloakRealm,
			config.AppConfig.KeycloakClientID,
			config.AppConfig.KeycloakClientSecret,
			logger,
		)
	} else {
		logger.Warn("main: identity provider disabled, registrations stay local")
	}

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(middleware.RateLimitMiddleware(config.AppConfig.MaxRequestsPerMin))

	// repositories.
	db := database.Database()
	apptRepo := appointmentRepo.NewMongoAppointmentRepo(db)
	userRepo := userRepoPkg.NewMongoUserRepo(db)
	servicesRepo := healthcareRepo.NewMongoHealthcareServiceRepo(db)
	availRepo := availabilityRepo.NewMongoAvailabilityRepo(db)
	revRepo := reviewRepo.NewMongoReviewRepo(db)

	// background work.
	bgCtx, stopBackground := context.WithCancel(context.Background())
	defer stopBackground()

	var reminder tasks.Reminder = tasks.NoopReminder{}
	var worker *asynq.Server
	if config.AppConfig.RemindersEnabled {
		asynqReminder := tasks.NewAsynqReminder(cron.QueueRedisOpt(), config.AppConfig.ReminderLead, logger)
		defer asynqReminder.Close()
		reminder = asynqReminder
		worker = cron.InitReminderWorker(bgCtx, apptRepo, logger)
	}

	healthCron, err := cron.StartHealthMonitor("@every 30s", utils.GetCacheClient(), database.MongoClient, logger)
	if err != nil {
		logger.Sugar().Fatalf("main: failed to start health monitor: %v", err)
	}

	// services.
	appointmentService := appointment.NewAppointmentService(
		apptRepo, userRepo, utils.GetCacheClient(), reminder, loc, config.AppConfig.DashboardCacheTTL, logger,
	)
	doctorService := doctor.NewDoctorService(
		servicesRepo, availRepo, userRepo, storageService, appointmentService, config.AppConfig.SlotMinutes, loc, logger,
	)
	userService := user.NewUserService(userRepo, idp, storageService, logger)
	reviewService := review.NewReviewService(revRepo, userRepo, logger)

	// Assemble the handler bundle.
	handlerBundle := handlers.NewHandlerBundle(
		verifier,
		handlers.NewAppointmentHandler(appointmentService, loc),
		handlers.NewDoctorHandler(doctorService, loc),
		handlers.NewUserHandler(userService),
		handlers.NewReviewHandler(reviewService),
		handlers.NewAdminHandler(appointmentService, doctorService, userService, loc),
	)

	// Register routes with the assembled handler bundle.
	routes.RegisterRoutes(router, handlerBundle)

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
		logger.Sugar().Errorf("main: server forced to shutdown: %v", err)
	}

	healthCron.Stop()
	stopBackground()
	if worker != nil {
		worker.Shutdown()
	}
	if err := database.Disconnect(ctx); err != nil {
		logger.Sugar().Warnf("main: failed to disconnect MongoDB: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
