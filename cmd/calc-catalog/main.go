package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"calc-catalog/internal/api"
	"calc-catalog/internal/api/handlers"
	"calc-catalog/internal/catalog"
	"calc-catalog/internal/repository"
	"calc-catalog/internal/service"
	"calc-catalog/pkg/config"
	"calc-catalog/pkg/logger"
	"calc-catalog/pkg/postgres"

	"go.uber.org/zap"
)

// @title Calc Catalog API
// @version 1.0
// @description Calculator catalog with related-tool recommendations

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8080
// @BasePath /

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	if err := logger.Init(cfg.Logger.Level); err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	appLogger := logger.Get()
	appLogger.Info("Starting calc catalog service")

	ctx := context.Background()

	var source service.ToolSource
	if cfg.Database.Enabled {
		db, err := postgres.NewPool(ctx, &cfg.Database, appLogger)
		if err != nil {
			appLogger.Fatal("Failed to connect to database", zap.Error(err))
		}
		defer db.Close()
		source = repository.NewToolRepository(db, appLogger)
	} else {
		appLogger.Info("Database disabled, serving catalog file",
			zap.String("file", catalogName(cfg.Catalog.File)),
		)
		source = catalog.FileSource{Path: cfg.Catalog.File}
	}

	catalogService := service.NewCatalogService(source, &cfg.Catalog, appLogger)
	if err := catalogService.Load(ctx); err != nil {
		appLogger.Fatal("Failed to load catalog", zap.Error(err))
	}

	toolHandler := handlers.NewToolHandler(catalogService, appLogger)
	app := api.SetupRouter(toolHandler, &cfg.Server, appLogger)

	go func() {
		addr := ":" + cfg.Server.Port
		appLogger.Info("Server starting", zap.String("address", addr))
		if err := app.Listen(addr); err != nil {
			appLogger.Fatal("Server failed", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	appLogger.Info("Shutting down server")
	if err := app.Shutdown(); err != nil {
		appLogger.Error("Server shutdown error", zap.Error(err))
	}
}

func catalogName(path string) string {
	if path == "" {
		return "embedded default"
	}
	return path
}
