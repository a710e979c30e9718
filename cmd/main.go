package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"ems/inner/common"
	"ems/inner/database"
	"ems/inner/employee"
	"ems/inner/info"
	"ems/inner/validator"
	"ems/inner/web"

	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"
)

const shutdownTimeout = 10 * time.Second

// @title Employee Records API
// @version 1.0
// @description CRUD and data table listing of employee records
// @BasePath /api/v1
func main() {
	cfg := common.GetConfig(".env")
	logger := common.NewLogger(cfg)
	defer func() { _ = logger.Sync() }()

	db, err := database.ConnectDbWithCfg(cfg, logger)
	if err != nil {
		logger.Fatal("Connection error", zap.Error(err))
	}
	defer func() {
		if closeErr := db.Close(); closeErr != nil {
			logger.Error("Failed to close database", zap.Error(closeErr))
		}
	}()

	if cfg.DbMigrate {
		if err = database.Migrate(context.Background(), db, logger); err != nil {
			logger.Fatal("Migration error", zap.Error(err))
		}
		logger.Info("Database migrations applied")
	}

	server := build(cfg, db, logger)

	go func() {
		if listenErr := server.App.Listen(cfg.ServerAddress); listenErr != nil {
			logger.Fatal("HTTP server error", zap.Error(listenErr))
		}
	}()
	logger.Info("HTTP server started", zap.String("address", cfg.ServerAddress))

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	logger.Info("Shutting down HTTP server")
	if err = server.App.ShutdownWithTimeout(shutdownTimeout); err != nil {
		logger.Error("HTTP server shutdown error", zap.Error(err))
	}
}

// build собирает веб-сервер со всеми контроллерами
func build(cfg common.Config, db *sqlx.DB, logger *common.Logger) *web.Server {
	server := web.NewServer(logger)

	lister, err := employee.NewLister(cfg.ListStrategy, db)
	if err != nil {
		logger.Fatal("List strategy error", zap.Error(err))
	}
	employeeRepo := employee.NewEmployeeRepository(db)
	employeeService := employee.NewService(employeeRepo, lister, validator.New(), logger)
	employee.NewController(server, employeeService, logger).RegisterRoutes()

	info.NewController(server, cfg, db, logger).RegisterRoutes()

	logger.Info("Routes registered", zap.String("listStrategy", cfg.ListStrategy))
	return server
}
