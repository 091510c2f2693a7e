// Package steps provides step definitions for BDD integration tests.
package steps

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"time"

	"github.com/cucumber/godog"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	"github.com/parsonage/property-ops/config"
	"github.com/parsonage/property-ops/internal/domain/valueobject"
	"github.com/parsonage/property-ops/internal/infra/dependency"
	"github.com/parsonage/property-ops/internal/integration/persistence/model"
	"github.com/parsonage/property-ops/test/integration/mock"
)

const managerEmail = "manager@parsonage.test"

// TestContext holds the test state for each scenario.
type TestContext struct {
	// HTTP
	server       *httptest.Server
	engine       *gin.Engine
	response     *http.Response
	responseBody []byte

	// Request building
	requestHeaders map[string]string

	// Auth
	accessToken string

	// Wiring
	cfg      *config.Config
	db       *mock.Db
	redis    *redis.Client
	clock    *mock.Time
	injector *dependency.Injector
}

// contextKey is used to store TestContext in context.Context.
type contextKey struct{}

// GetTestContext retrieves the TestContext from context.
func GetTestContext(ctx context.Context) *TestContext {
	if tc, ok := ctx.Value(contextKey{}).(*TestContext); ok {
		return tc
	}
	return nil
}

// SetTestContext stores the TestContext in context.
func SetTestContext(ctx context.Context, tc *TestContext) context.Context {
	return context.WithValue(ctx, contextKey{}, tc)
}

// InitializeTestSuite sets up resources before any scenarios run.
func InitializeTestSuite(ctx *godog.TestSuiteContext) {
	ctx.BeforeSuite(func() {
		gin.SetMode(gin.TestMode)
		mock.NewDb(model.AllModels()...)
		mock.NewRedis()
	})

	ctx.AfterSuite(func() {
		mock.CloseRedis()
	})
}

// InitializeScenario registers all step definitions.
func InitializeScenario(ctx *godog.ScenarioContext) {
	ctx.Before(func(ctx context.Context, sc *godog.Scenario) (context.Context, error) {
		tc, err := newTestContext()
		if err != nil {
			return ctx, err
		}
		return SetTestContext(ctx, tc), nil
	})

	ctx.After(func(ctx context.Context, sc *godog.Scenario, err error) (context.Context, error) {
		tc := GetTestContext(ctx)
		if tc != nil && tc.server != nil {
			tc.server.Close()
		}
		return ctx, nil
	})

	registerAPISteps(ctx)
	registerResponseSteps(ctx)
	registerSeedSteps(ctx)
}

func newTestContext() (*TestContext, error) {
	cfg := config.Load()
	cfg.Server.Environment = "test"

	settings := valueobject.DefaultPropertySettings()
	settings.ManagerEmail = managerEmail

	db := mock.NewDb(model.AllModels()...)
	if err := db.ClearDB(); err != nil {
		return nil, fmt.Errorf("failed to clear database: %w", err)
	}

	redisClient := mock.NewRedis()
	if err := mock.ClearRedis(redisClient); err != nil {
		return nil, fmt.Errorf("failed to clear redis: %w", err)
	}

	clock := mock.NewTime()
	clock.SetCurrentTime(time.Date(2024, time.March, 20, 10, 0, 0, 0, time.UTC))

	injector := dependency.NewInjector(cfg, db.DbConn, redisClient, settings, clock)

	tc := &TestContext{
		requestHeaders: make(map[string]string),
		cfg:            cfg,
		db:             db,
		redis:          redisClient,
		clock:          clock,
		injector:       injector,
	}
	tc.engine = injector.Router.Setup(cfg.Server.Environment)
	tc.server = httptest.NewServer(tc.engine)

	return tc, nil
}
