// Package main is the entry point for the FinBot API server.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/finbot/backend/config"
	"github.com/finbot/backend/internal/application/usecase/chat"
	"github.com/finbot/backend/internal/application/usecase/dataset"
	"github.com/finbot/backend/internal/application/usecase/report"
	"github.com/finbot/backend/internal/application/usecase/statement"
	"github.com/finbot/backend/internal/application/usecase/summary"
	infracache "github.com/finbot/backend/internal/infra/cache"
	"github.com/finbot/backend/internal/infra/db"
	"github.com/finbot/backend/internal/infra/server/router"
	"github.com/finbot/backend/internal/integration/adapters"
	"github.com/finbot/backend/internal/integration/cache"
	"github.com/finbot/backend/internal/integration/entrypoint/controller"
	"github.com/finbot/backend/internal/integration/persistence"
	"github.com/finbot/backend/internal/integration/persistence/model"
)

func main() {
	// Load .env file if it exists (development only)
	_ = godotenv.Load()

	// Initialize structured logger
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	// Load configuration
	cfg := config.Load()

	slog.Info("Starting FinBot API",
		"environment", cfg.Server.Environment,
		"host", cfg.Server.Host,
		"port", cfg.Server.Port,
	)

	// Initialize database connection
	database, err := db.NewConnection(&cfg.Database)
	if err != nil {
		slog.Error("Database connection failed", "error", err)
		os.Exit(1)
	}
	defer func() {
		if err := database.Close(); err != nil {
			slog.Error("Failed to close database connection", "error", err)
		}
	}()

	if err := database.AutoMigrate(
		&model.DatasetModel{},
		&model.DatasetRowModel{},
	); err != nil {
		slog.Error("Failed to run database migrations", "error", err)
		os.Exit(1)
	}
	slog.Info("Database migrations completed successfully")

	// Initialize Redis. Without it the API still serves; reports are just
	// regenerated on every request and chat history is not kept.
	redisClient, err := infracache.NewRedisClient(&cfg.Redis)
	if err != nil {
		slog.Warn("Redis connection failed, running without cache", "error", err)
	}

	// Create repositories and adapters
	datasetRepo := persistence.NewDatasetRepository(database.DB())
	narrativeService := adapters.NewGeminiService(cfg.Gemini.APIKey)
	if narrativeService.IsAvailable() {
		slog.Info("Gemini narrative service configured")
	} else {
		slog.Info("Gemini narrative service not configured, using deterministic generators")
	}

	// Create use cases
	uploadDatasetUseCase := dataset.NewUploadDatasetUseCase(datasetRepo)
	getDateRangeUseCase := dataset.NewGetDateRangeUseCase(datasetRepo)
	getIncomeStatementUseCase := statement.NewGetIncomeStatementUseCase(datasetRepo)
	getBalanceSheetUseCase := statement.NewGetBalanceSheetUseCase(datasetRepo)
	getCashFlowUseCase := statement.NewGetCashFlowUseCase(datasetRepo)
	getRatiosUseCase := statement.NewGetRatiosUseCase(datasetRepo)
	getSummaryUseCase := summary.NewGetSummaryUseCase(datasetRepo)
	getInsightsUseCase := report.NewGetInsightsUseCase(datasetRepo, narrativeService)

	var generateReportUseCase *report.GenerateReportUseCase
	var chatUseCase *chat.ChatUseCase
	if redisClient != nil {
		generateReportUseCase = report.NewGenerateReportUseCase(
			datasetRepo,
			narrativeService,
			cache.NewReportCache(redisClient, cfg.Report.CacheTTL),
		)
		chatUseCase = chat.NewChatUseCase(
			datasetRepo,
			narrativeService,
			cache.NewChatHistory(redisClient, cfg.Chat.HistoryTTL, int64(cfg.Chat.HistoryLimit)),
		)
	} else {
		generateReportUseCase = report.NewGenerateReportUseCase(datasetRepo, narrativeService, nil)
		chatUseCase = chat.NewChatUseCase(datasetRepo, narrativeService, nil)
	}

	// Create controllers
	var cacheHealthCheck func() bool
	if redisClient != nil {
		cacheHealthCheck = func() bool {
			return redisClient.Ping(context.Background()).Err() == nil
		}
	}
	healthController := controller.NewHealthController(database.HealthCheck, cacheHealthCheck)
	datasetController := controller.NewDatasetController(uploadDatasetUseCase, getDateRangeUseCase)
	statementController := controller.NewStatementController(
		getIncomeStatementUseCase,
		getBalanceSheetUseCase,
		getCashFlowUseCase,
		getRatiosUseCase,
	)
	summaryController := controller.NewSummaryController(getSummaryUseCase, getInsightsUseCase)
	reportController := controller.NewReportController(generateReportUseCase)
	chatController := controller.NewChatController(chatUseCase)

	// Setup router
	r := router.NewRouter(
		healthController,
		datasetController,
		statementController,
		summaryController,
		reportController,
		chatController,
	)
	engine := r.Setup(cfg.Server.Environment)

	// Create HTTP server
	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      engine,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	// Start server in a goroutine
	go func() {
		slog.Info("Server listening", "address", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("Server failed to start", "error", err)
			os.Exit(1)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		slog.Error("Server forced to shutdown", "error", err)
		os.Exit(1)
	}

	slog.Info("Server exited properly")
}
