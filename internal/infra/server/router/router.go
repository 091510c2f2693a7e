// Package router sets up the HTTP routing for the application.
package router

import (
	"github.com/gin-gonic/gin"

	"github.com/parsonage/property-ops/internal/integration/entrypoint/controller"
	"github.com/parsonage/property-ops/internal/integration/entrypoint/middleware"
)

// Router holds the Gin engine and controller dependencies.
type Router struct {
	engine           *gin.Engine
	healthController *controller.HealthController
	ledgerController *controller.LedgerController
	reportController *controller.ReportController
	writeRateLimiter *middleware.RateLimiter
	authMiddleware   *middleware.AuthMiddleware
}

// NewRouter creates a new router instance with all dependencies.
func NewRouter(
	healthController *controller.HealthController,
	ledgerController *controller.LedgerController,
	reportController *controller.ReportController,
	writeRateLimiter *middleware.RateLimiter,
	authMiddleware *middleware.AuthMiddleware,
) *Router {
	return &Router{
		healthController: healthController,
		ledgerController: ledgerController,
		reportController: reportController,
		writeRateLimiter: writeRateLimiter,
		authMiddleware:   authMiddleware,
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

	// Everything below requires the manager token; the database may be absent at start-up.
	if r.authMiddleware == nil {
		return
	}
	v1.Use(r.authMiddleware.Authenticate())

	if r.ledgerController != nil {
		ledger := v1.Group("/ledger")
		{
			writes := ledger.Group("")
			if r.writeRateLimiter != nil {
				writes.Use(r.writeRateLimiter.Middleware())
			}
			writes.POST("/transactions", r.ledgerController.Record)
			writes.POST("/manual-entries", r.ledgerController.AddManualEntry)
			writes.POST("/payments", r.ledgerController.CapturePayment)
			writes.POST("/import", r.ledgerController.Import)

			ledger.GET("/export", r.ledgerController.Export)
		}
	}

	if r.reportController != nil {
		reports := v1.Group("/reports")
		{
			reports.GET("/period", r.reportController.Period)
			reports.GET("/revenue", r.reportController.Revenue)
			reports.GET("/profitability", r.reportController.Profitability)
			reports.GET("/occupancy", r.reportController.Occupancy)
			reports.GET("/tax", r.reportController.TaxSummary)
			reports.GET("/tax/export", r.reportController.TaxExport)
			reports.GET("/dashboard", r.reportController.Dashboard)
		}
	}
}
