package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/pros100kyiv/HUBbase-sub001/config"
	"github.com/pros100kyiv/HUBbase-sub001/cron"
	"github.com/pros100kyiv/HUBbase-sub001/database"
	apptRepoPkg "github.com/pros100kyiv/HUBbase-sub001/database/repository/appointment"
	clientRepoPkg "github.com/pros100kyiv/HUBbase-sub001/database/repository/client"
	masterRepoPkg "github.com/pros100kyiv/HUBbase-sub001/database/repository/master"
	messageRepoPkg "github.com/pros100kyiv/HUBbase-sub001/database/repository/message"
	serviceRepoPkg "github.com/pros100kyiv/HUBbase-sub001/database/repository/service"
	staffRepoPkg "github.com/pros100kyiv/HUBbase-sub001/database/repository/staff"
	"github.com/pros100kyiv/HUBbase-sub001/handlers"
	"github.com/pros100kyiv/HUBbase-sub001/routes"
	"github.com/pros100kyiv/HUBbase-sub001/services/appointment"
	"github.com/pros100kyiv/HUBbase-sub001/services/auth"
	"github.com/pros100kyiv/HUBbase-sub001/services/catalog"
	"github.com/pros100kyiv/HUBbase-sub001/services/client"
	"github.com/pros100kyiv/HUBbase-sub001/services/inbox"
	ai "github.com/pros100kyiv/HUBbase-sub001/services/intelligence"
	"github.com/pros100kyiv/HUBbase-sub001/services/master"
	"github.com/pros100kyiv/HUBbase-sub001/services/schedule"
	"github.com/pros100kyiv/HUBbase-sub001/utils"

	"github.com/gin-gonic/gin"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitRedis()

	cloudinaryStorageService, err := utils.Cloudinary()
	if err != nil {
		logger.Sugar().Fatalf("main: failed to initialize cloudinary storage service: %v", err)
	}

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())

	// repositories.
	masterRepo := masterRepoPkg.NewMongoMasterRepo()
	clientRepo := clientRepoPkg.NewMongoClientRepo()
	apptRepo := apptRepoPkg.NewMongoAppointmentRepo()
	serviceRepo := serviceRepoPkg.NewMongoServiceRepo()
	messageRepo := messageRepoPkg.NewMongoMessageRepo()
	staffRepo := staffRepoPkg.NewMongoStaffRepo()

	// services.
	masterService := &master.DefaultMasterService{Repo: masterRepo}
	clientService := &client.DefaultClientService{Repo: clientRepo}
	apptService := &appointment.DefaultAppointmentService{Repo: apptRepo}
	catalogService := &catalog.DefaultCatalogService{Repo: serviceRepo}
	inboxService := &inbox.DefaultInboxService{Repo: messageRepo}
	authService := &auth.DefaultAuthService{Repo: staffRepo}

	if err := authService.SeedOwner(); err != nil {
		logger.Sugar().Fatalf("main: failed to seed owner account: %v", err)
	}

	scheduleEngine := schedule.NewEngine(masterRepo, apptRepo)

	ctxStore := ai.NewRedisContextStore(utils.GetCacheClient(), 30*time.Minute)
	aiSvc := ai.NewDefaultAIService(
		config.AppConfig.GeminiAPIKey,
		ctxStore,
		&ai.ToolSet{
			Engine:       scheduleEngine,
			Clients:      clientRepo,
			Appointments: apptRepo,
		},
	)

	// Background sweep that marks finished appointments as Done.
	cron.InitAutoCompleteWorker(apptRepo)

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		StaffRepo: staffRepo,

		AuthHandler:        &handlers.AuthHandler{AuthSvc: authService},
		MasterHandler:      &handlers.MasterHandler{MasterSvc: masterService, StorageSvc: cloudinaryStorageService},
		ClientHandler:      &handlers.ClientHandler{ClientSvc: clientService},
		AppointmentHandler: &handlers.AppointmentHandler{ApptSvc: apptService},
		CatalogHandler:     &handlers.CatalogHandler{CatalogSvc: catalogService},
		InboxHandler:       &handlers.InboxHandler{InboxSvc: inboxService},
		ScheduleHandler:    &handlers.ScheduleHandler{Engine: scheduleEngine},
		AIHandler:          &handlers.AIHandler{AISvc: aiSvc},
	}

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
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
