// Package dependency provides dependency injection for the application.
package dependency

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/parsonage/property-ops/config"
	"github.com/parsonage/property-ops/internal/application/adapter"
	"github.com/parsonage/property-ops/internal/application/usecase/ledger"
	"github.com/parsonage/property-ops/internal/application/usecase/report"
	"github.com/parsonage/property-ops/internal/domain/valueobject"
	"github.com/parsonage/property-ops/internal/infra/server/router"
	"github.com/parsonage/property-ops/internal/integration/adapters"
	"github.com/parsonage/property-ops/internal/integration/entrypoint/controller"
	"github.com/parsonage/property-ops/internal/integration/entrypoint/middleware"
	"github.com/parsonage/property-ops/internal/integration/persistence"
)

// Injector holds all application dependencies.
type Injector struct {
	Config       *config.Config
	DB           *gorm.DB
	Settings     valueobject.PropertySettings
	Clock        adapter.Clock
	TokenService adapter.TokenService
	RateLimiter  *middleware.RateLimiter
	Router       *router.Router
}

// NewInjector creates a new dependency injector with all dependencies wired.
// redisClient may be nil, in which case rate limiting is kept in memory. clock may be nil,
// in which case the system clock in the property's time zone is used.
func NewInjector(
	cfg *config.Config,
	db *gorm.DB,
	redisClient *redis.Client,
	settings valueobject.PropertySettings,
	clock adapter.Clock,
) *Injector {
	if clock == nil {
		clock = adapters.NewSystemClock(settings.Location())
	}

	// Create repositories
	ledgerRepo := persistence.NewLedgerRepository(db)
	roomRepo := persistence.NewRoomRepository(db)
	guestRoomRepo := persistence.NewGuestRoomRepository(db)
	bookingRepo := persistence.NewBookingRepository(db)

	// Create adapters/services
	tokenService := adapters.NewTokenService(cfg.JWT.Secret, cfg.JWT.Issuer, cfg.JWT.ManagerTokenExpiry, settings.ManagerEmail, clock)

	// Create ledger use cases
	recordUseCase := ledger.NewRecordTransactionUseCase(ledgerRepo, clock)
	manualEntryUseCase := ledger.NewAddManualEntryUseCase(ledgerRepo, clock, settings)
	captureUseCase := ledger.NewCapturePaymentUseCase(ledgerRepo, roomRepo, clock)
	importUseCase := ledger.NewImportLedgerUseCase(ledgerRepo, settings)
	exportUseCase := ledger.NewExportLedgerUseCase(ledgerRepo, clock)

	// Create report use cases
	periodUseCase := report.NewGetPeriodAnalysisUseCase(ledgerRepo, clock)
	revenueUseCase := report.NewGetRevenueAnalysisUseCase(ledgerRepo, clock, settings)
	profitabilityUseCase := report.NewGetProfitabilityUseCase(ledgerRepo, clock, settings)
	occupancyUseCase := report.NewGetOccupancyUseCase(roomRepo, guestRoomRepo, bookingRepo, clock, settings)
	taxSummaryUseCase := report.NewGetTaxSummaryUseCase(ledgerRepo, clock, settings)
	taxExportUseCase := report.NewExportTaxReportUseCase(ledgerRepo, clock, settings)
	dashboardUseCase := report.NewGetDashboardUseCase(ledgerRepo, roomRepo, guestRoomRepo, bookingRepo, clock, settings)

	// Create controllers
	var cacheHealthChecker func() bool
	if redisClient != nil {
		cacheHealthChecker = func() bool {
			ctx, cancel := context.WithTimeout(context.Background(), time.Second)
			defer cancel()
			return redisClient.Ping(ctx).Err() == nil
		}
	}
	healthController := controller.NewHealthController(func() bool {
		sqlDB, err := db.DB()
		if err != nil {
			return false
		}
		return sqlDB.Ping() == nil
	}, cacheHealthChecker, clock.Now)

	ledgerController := controller.NewLedgerController(
		recordUseCase,
		manualEntryUseCase,
		captureUseCase,
		importUseCase,
		exportUseCase,
	)

	reportController := controller.NewReportController(
		periodUseCase,
		revenueUseCase,
		profitabilityUseCase,
		occupancyUseCase,
		taxSummaryUseCase,
		taxExportUseCase,
		dashboardUseCase,
	)

	// Create middleware
	// Use higher rate limits for E2E/test environments to prevent flaky tests
	var writeRateLimiter *middleware.RateLimiter
	if cfg.Server.Environment == "e2e" || cfg.Server.Environment == "test" {
		writeRateLimiter = middleware.NewRateLimiterWithConfig(redisClient, 1000, 1*time.Minute)
	} else {
		writeRateLimiter = middleware.NewRateLimiterWithConfig(redisClient, cfg.RateLimit.Requests, cfg.RateLimit.Window)
	}
	authMiddleware := middleware.NewAuthMiddleware(tokenService)

	// Create router
	r := router.NewRouter(healthController, ledgerController, reportController, writeRateLimiter, authMiddleware)

	return &Injector{
		Config:       cfg,
		DB:           db,
		Settings:     settings,
		Clock:        clock,
		TokenService: tokenService,
		RateLimiter:  writeRateLimiter,
		Router:       r,
	}
}
