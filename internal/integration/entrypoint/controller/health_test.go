package controller_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/parsonage/property-ops/internal/integration/entrypoint/controller"
)

func TestHealthController_Check(t *testing.T) {
	gin.SetMode(gin.TestMode)
	now := time.Date(2024, time.March, 20, 10, 0, 0, 0, time.UTC)
	up := func() bool { return true }
	down := func() bool { return false }

	tests := []struct {
		name        string
		db          func() bool
		cache       func() bool
		wantDB      string
		wantCache   string
		wantLimiter string
	}{
		{"all reachable", up, up, "connected", "connected", "redis"},
		{"redis down falls back to memory", up, down, "connected", "disconnected", "memory"},
		{"running without redis", down, nil, "disconnected", "disabled", "memory"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			engine := gin.New()
			engine.GET("/health", controller.NewHealthController(tt.db, tt.cache, func() time.Time { return now }).Check)

			rec := httptest.NewRecorder()
			engine.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

			require.Equal(t, http.StatusOK, rec.Code)
			var body controller.HealthResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.Equal(t, "ok", body.Status)
			assert.Equal(t, tt.wantDB, body.Database)
			assert.Equal(t, tt.wantCache, body.Cache)
			assert.Equal(t, tt.wantLimiter, body.RateLimiter)
			assert.Equal(t, "2024-03-20T10:00:00Z", body.Timestamp)
		})
	}
}
