package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"lumea/config"
	"lumea/cron"
	"lumea/database"
	bookingRepoPkg "lumea/database/repository/booking"
	serviceRepoPkg "lumea/database/repository/service"
	userRepoPkg "lumea/database/repository/user"
	"lumea/handlers"
	"lumea/middleware"
	"lumea/routes"
	"lumea/services/booking"
	"lumea/services/catalog"
	"lumea/services/notification"
	"lumea/services/tasks"
	"lumea/services/user"
	"lumea/utils"

	"github.com/gin-gonic/gin"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitRedis()

	storageService, err := utils.Cloudinary()
	if err != nil {
		logger.Sugar().Fatalf("main: failed to initialize cloudinary storage service: %v", err)
	}

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	// repositories.
	svcRepo := serviceRepoPkg.NewMongoServiceRepo()
	bkRepo := bookingRepoPkg.NewMongoBookingRepo()
	usrRepo := userRepoPkg.NewMongoUserRepo()

	// services.
	catalogService := &catalog.DefaultCatalogService{Repo: svcRepo}
	userService := &user.DefaultUserService{Repo: usrRepo}
	reminderScheduler := tasks.NewAsynqReminderScheduler()
	bookingSessionService := &booking.DefaultBookingSessionService{
		ServiceRepo: svcRepo,
		BookingRepo: bkRepo,
		Reminders:   reminderScheduler,
	}

	// background reminder worker.
	notifService := notification.NewLogNotificationService()
	cron.InitReminderWorker(notifService)

	// handlers.
	handlerBundle := &handlers.HandlerBundle{
		UserRepo: usrRepo,
		Catalog:  handlers.NewCatalogHandler(catalogService),
		Booking:  handlers.NewBookingHandler(bookingSessionService, logger),
		User:     handlers.NewUserHandler(userService, bkRepo),
		Admin:    handlers.NewAdminHandler(catalogService, userService, bkRepo),
		Storage:  handlers.NewStorageHandler(storageService, catalogService),
	}

	routes.RegisterRoutes(router, handlerBundle)

	srv := &http.Server{
		Addr:    ":" + config.AppConfig.AppPort,
		Handler: router,
	}

	go func() {
		logger.Sugar().Infof("main: listening on port %s", config.AppConfig.AppPort)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server error: %v", err)
		}
	}()

	// Graceful shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("main: shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: forced shutdown: %v", err)
	}
	logger.Info("main: server exited")
}
