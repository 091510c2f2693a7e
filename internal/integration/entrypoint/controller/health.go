// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// Cache states reported by the health check.
const (
	cacheConnected    = "connected"
	cacheDisconnected = "disconnected"
	cacheDisabled     = "disabled"
)

// HealthController reports whether the database and the rate limit store are reachable.
type HealthController struct {
	dbHealthChecker    func() bool
	cacheHealthChecker func() bool
	clock              func() time.Time
}

// HealthResponse represents the health check response.
type HealthResponse struct {
	Status      string `json:"status"`
	Database    string `json:"database"`
	Cache       string `json:"cache"`
	RateLimiter string `json:"rate_limiter"`
	Timestamp   string `json:"timestamp"`
}

// NewHealthController creates a new health controller instance. A nil cacheHealthChecker means
// the service runs without Redis and rate limits are kept in memory.
func NewHealthController(dbHealthChecker, cacheHealthChecker func() bool, clock func() time.Time) *HealthController {
	if clock == nil {
		clock = time.Now
	}
	return &HealthController{
		dbHealthChecker:    dbHealthChecker,
		cacheHealthChecker: cacheHealthChecker,
		clock:              clock,
	}
}

// Check handles GET /health requests.
// The API stays "ok" with Redis down because the limiter falls back to memory.
func (h *HealthController) Check(c *gin.Context) {
	dbStatus := "disconnected"
	if h.dbHealthChecker != nil && h.dbHealthChecker() {
		dbStatus = "connected"
	}

	cacheStatus := cacheDisabled
	limiter := "memory"
	if h.cacheHealthChecker != nil {
		cacheStatus = cacheDisconnected
		if h.cacheHealthChecker() {
			cacheStatus = cacheConnected
			limiter = "redis"
		}
	}

	c.JSON(http.StatusOK, HealthResponse{
		Status:      "ok",
		Database:    dbStatus,
		Cache:       cacheStatus,
		RateLimiter: limiter,
		Timestamp:   h.clock().UTC().Format(time.RFC3339),
	})
}
