// File: bizschool/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"bizschool/config"
	"bizschool/cron"
	"bizschool/database"
	bookingRepo "bizschool/database/repository/booking"
	"bizschool/handlers"
	"bizschool/routes"
	"bizschool/services/booking"
	"bizschool/services/calendar"
	"bizschool/services/notification"
	"bizschool/services/records"
	"bizschool/services/tasks"
	"bizschool/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/hibiken/asynq"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	if err := config.DefaultWeeklyTemplate().Validate(); err != nil {
		logger.Sugar().Fatalf("main: invalid weekly slot template: %v", err)
	}

	database.InitDB()
	utils.InitCache()
	utils.InitLockCache()

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())

	// Collaborators.
	ctx := context.Background()
	calendarSvc, err := calendar.NewGoogleCalendar(ctx,
		config.AppConfig.GoogleCredentialsFile,
		config.AppConfig.GoogleCalendarID,
	)
	if err != nil {
		logger.Sugar().Fatalf("main: failed to initialize Google Calendar client: %v", err)
	}

	notifier, err := notification.NewResendNotifier(
		config.AppConfig.ResendAPIKey,
		config.AppConfig.FromEmail,
		config.AppConfig.LecturerEmail,
		config.AppConfig.SupportEmail,
		config.AppConfig.ZoomLink,
	)
	if err != nil {
		logger.Sugar().Fatalf("main: failed to initialize notifier: %v", err)
	}

	reminderScheduler := tasks.NewAsynqReminderScheduler(asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisReminderQueueDB,
	})

	// Repositories.
	bookingStore := bookingRepo.NewMongoBookingRepo()

	// Services.
	bookingEngine := &booking.DefaultBookingEngine{
		Template:     config.DefaultWeeklyTemplate(),
		Calendar:     calendarSvc,
		Repo:         bookingStore,
		Notifier:     notifier,
		Locker:       &booking.RedisSlotLocker{Client: utils.GetLockClient()},
		Reminders:    reminderScheduler,
		Clock:        booking.SystemClock(),
		LeadTime:     config.BookingLeadTime(),
		SlotDuration: config.BookingSlotDuration(),
	}

	programService := &records.DefaultProgramService{
		Client: records.NewFileMakerClient(
			config.AppConfig.FileMakerURL,
			config.AppConfig.FileMakerDB,
			records.NewSessionTokenProvider(
				config.AppConfig.FileMakerURL,
				config.AppConfig.FileMakerDB,
				config.AppConfig.FileMakerUser,
				config.AppConfig.FileMakerPass,
			),
		),
	}

	// Assemble the handler bundle and register routes.
	handlerBundle := &routes.HandlerBundle{
		Booking:  handlers.NewBookingHandler(bookingEngine, logger),
		Programs: handlers.NewProgramHandler(programService, logger),
	}
	routes.RegisterRoutes(router, handlerBundle)

	// Background workers and monitoring.
	cron.InitReminderWorker(notifier)
	utils.StartHealthMonitor(
		[]*redis.Client{utils.GetCacheClient(), utils.GetLockClient()},
		database.MongoClient,
	)

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

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
