// Package router sets up the HTTP routing for the application.
package router

import (
	"github.com/gin-gonic/gin"

	"github.com/finbot/backend/internal/integration/entrypoint/controller"
)

// Router holds the Gin engine and controller dependencies.
type Router struct {
	engine              *gin.Engine
	healthController    *controller.HealthController
	datasetController   *controller.DatasetController
	statementController *controller.StatementController
	summaryController   *controller.SummaryController
	reportController    *controller.ReportController
	chatController      *controller.ChatController
}

// NewRouter creates a new router instance with all dependencies.
func NewRouter(
	healthController *controller.HealthController,
	datasetController *controller.DatasetController,
	statementController *controller.StatementController,
	summaryController *controller.SummaryController,
	reportController *controller.ReportController,
	chatController *controller.ChatController,
) *Router {
	return &Router{
		healthController:    healthController,
		datasetController:   datasetController,
		statementController: statementController,
		summaryController:   summaryController,
		reportController:    reportController,
		chatController:      chatController,
	}
}

// Setup configures and returns the Gin engine with all routes.
func (r *Router) Setup(environment string) *gin.Engine {
	// Set Gin mode based on environment
	if environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	} else if environment == "test" {
		gin.SetMode(gin.TestMode)
	}

	// Create router with default middleware (logger and recovery)
	r.engine = gin.Default()

	r.setupHealthRoutes()
	r.setupAPIRoutes()

	return r.engine
}

// setupHealthRoutes configures health check endpoints.
func (r *Router) setupHealthRoutes() {
	r.engine.GET("/health", r.healthController.Check)
}

// setupAPIRoutes configures the main API routes.
func (r *Router) setupAPIRoutes() {
	v1 := r.engine.Group("/api/v1")
	{
		datasets := v1.Group("/datasets")
		{
			datasets.POST("", r.datasetController.Upload)
			datasets.GET("/template", r.datasetController.Template)
			datasets.GET("/:id/date-range", r.datasetController.GetDateRange)

			datasets.GET("/:id/summary", r.summaryController.GetSummary)
			datasets.GET("/:id/insights", r.summaryController.GetInsights)

			statements := datasets.Group("/:id/statements")
			{
				statements.GET("/income", r.statementController.GetIncomeStatement)
				statements.GET("/balance", r.statementController.GetBalanceSheet)
				statements.GET("/cashflow", r.statementController.GetCashFlow)
				statements.GET("/ratios", r.statementController.GetRatios)
			}

			datasets.POST("/:id/reports", r.reportController.Generate)
			datasets.POST("/:id/chat", r.chatController.Chat)
		}
	}
}
