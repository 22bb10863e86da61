package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/Thecityismine/project-ganttflow/internal/config"
	"github.com/Thecityismine/project-ganttflow/internal/db"
	"github.com/Thecityismine/project-ganttflow/internal/export"
	"github.com/Thecityismine/project-ganttflow/internal/handler"
	"github.com/Thecityismine/project-ganttflow/internal/httpserver"
	"github.com/Thecityismine/project-ganttflow/internal/mq"
	redisclient "github.com/Thecityismine/project-ganttflow/internal/redis"
	"github.com/Thecityismine/project-ganttflow/internal/render"
	"github.com/Thecityismine/project-ganttflow/internal/repository"
	"github.com/Thecityismine/project-ganttflow/internal/service"
	"github.com/Thecityismine/project-ganttflow/internal/util"
)

func main() {
	// Load config
	cfg := config.Load()

	logger := util.NewLogger(os.Getenv("DEBUG") == "true")
	defer logger.Sync()

	// Init DB
	dbConn, err := db.NewConnection(cfg.DB, logger)
	if err != nil {
		logger.Fatal("DB initialization failed", zap.Error(err))
	}
	defer dbConn.Close()

	// Init Repositories
	projectRepo := repository.NewProjectRepository(dbConn, logger)
	userRepo := repository.NewUserRepository(dbConn)

	schemaCtx, schemaCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer schemaCancel()
	if err := projectRepo.EnsureSchema(schemaCtx); err != nil {
		logger.Fatal("Project schema setup failed", zap.Error(err))
	}
	if err := userRepo.EnsureSchema(schemaCtx); err != nil {
		logger.Fatal("User schema setup failed", zap.Error(err))
	}

	// Init Redis chart cache
	rdb := redisclient.NewClient(cfg.Redis)
	defer rdb.Close()
	chartCache := redisclient.NewChartCache(rdb, time.Duration(cfg.Export.CacheTTLSec)*time.Second)

	// Init RabbitMQ Producer
	producer, err := mq.NewProducer(cfg.MQ.URL)
	if err != nil {
		logger.Fatal("Failed to init producer", zap.Error(err))
	}
	defer producer.Close()

	// Init Services
	authService := service.NewAuthService(userRepo, cfg.JWT.Secret)
	projectService := service.NewProjectService(projectRepo, producer, chartCache, logger)
	autosave := service.NewAutosaveScheduler(
		time.Duration(cfg.Autosave.DelayMS)*time.Millisecond,
		projectService.Save,
		logger,
	)

	// Chart render + export
	renderer, err := render.NewRenderer(cfg.Export.MinColumns)
	if err != nil {
		logger.Fatal("Chart template setup failed", zap.Error(err))
	}
	exporter := export.NewExporter(cfg.Export.BaseURL, chartCache, logger)

	// Init Handlers
	authHandler := handler.NewAuthHandler(authService)
	projectHandler := handler.NewProjectHandler(projectService, autosave, renderer, cfg.Export.MinColumns, logger)
	exportHandler := handler.NewExportHandler(projectService, exporter, logger)

	// Router
	router := httpserver.NewRouter(authHandler, projectHandler, exportHandler, cfg.JWT.Secret, dbConn)

	go func() {
		if err := router.Run(cfg.Server.Port); err != nil {
			logger.Fatal("Server start failed", zap.Error(err))
		}
	}()
	logger.Info("Server started", zap.String("port", cfg.Server.Port))

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	// Persist any debounced edits before exiting.
	logger.Info("Shutting down, flushing pending saves")
	autosave.Flush()
}
