package middleware_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/gin-gonic/gin"
	"github.com/golang/mock/gomock"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/parsonage/property-ops/internal/application/adapter"
	"github.com/parsonage/property-ops/internal/application/adapter/mocks"
	domainerror "github.com/parsonage/property-ops/internal/domain/error"
	"github.com/parsonage/property-ops/internal/integration/entrypoint/middleware"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func TestRateLimiter_Redis(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	ctx := context.Background()
	limiter := middleware.NewRateLimiterWithConfig(client, 2, time.Minute)

	assert.True(t, limiter.Allow(ctx, "10.0.0.1"))
	assert.True(t, limiter.Allow(ctx, "10.0.0.1"))
	assert.False(t, limiter.Allow(ctx, "10.0.0.1"))
	assert.True(t, limiter.Allow(ctx, "10.0.0.2"))

	ttl := mr.TTL("ratelimit:10.0.0.1")
	assert.Greater(t, ttl, time.Duration(0))

	mr.FastForward(time.Minute + time.Second)
	assert.True(t, limiter.Allow(ctx, "10.0.0.1"))
}

func TestRateLimiter_FallsBackToMemory(t *testing.T) {
	mr, err := miniredis.Run()
	require.NoError(t, err)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr(), MaxRetries: -1})
	t.Cleanup(func() { _ = client.Close() })
	mr.Close()

	ctx := context.Background()
	limiter := middleware.NewRateLimiterWithConfig(client, 1, time.Minute)

	assert.True(t, limiter.Allow(ctx, "10.0.0.1"))
	assert.False(t, limiter.Allow(ctx, "10.0.0.1"))

	limiter.Reset()
	assert.True(t, limiter.Allow(ctx, "10.0.0.1"))
}

func TestRateLimiter_Middleware(t *testing.T) {
	limiter := middleware.NewRateLimiterWithConfig(nil, 1, time.Minute)
	router := gin.New()
	router.POST("/write", limiter.Middleware(), func(c *gin.Context) { c.Status(http.StatusNoContent) })

	first := httptest.NewRecorder()
	router.ServeHTTP(first, httptest.NewRequest(http.MethodPost, "/write", nil))
	second := httptest.NewRecorder()
	router.ServeHTTP(second, httptest.NewRequest(http.MethodPost, "/write", nil))

	assert.Equal(t, http.StatusNoContent, first.Code)
	assert.Equal(t, http.StatusTooManyRequests, second.Code)
	assert.Equal(t, "60", second.Header().Get("Retry-After"))
	assert.Contains(t, second.Body.String(), string(domainerror.ErrCodeRateLimited))
}

func TestAuthMiddleware(t *testing.T) {
	tests := []struct {
		name       string
		header     string
		setup      func(m *mocks.MockTokenService)
		wantStatus int
		wantCode   domainerror.AuthErrorCode
	}{
		{
			name:       "missing header",
			wantStatus: http.StatusUnauthorized,
			wantCode:   domainerror.ErrCodeMissingToken,
		},
		{
			name:       "not a bearer token",
			header:     "Basic abc",
			wantStatus: http.StatusUnauthorized,
			wantCode:   domainerror.ErrCodeInvalidToken,
		},
		{
			name:   "expired token",
			header: "Bearer old",
			setup: func(m *mocks.MockTokenService) {
				m.EXPECT().ValidateAccessToken(gomock.Any(), "old").Return(nil, domainerror.ErrExpiredToken)
			},
			wantStatus: http.StatusUnauthorized,
			wantCode:   domainerror.ErrCodeExpiredToken,
		},
		{
			name:   "someone else",
			header: "Bearer other",
			setup: func(m *mocks.MockTokenService) {
				m.EXPECT().ValidateAccessToken(gomock.Any(), "other").Return(nil, domainerror.ErrNotManager)
			},
			wantStatus: http.StatusForbidden,
			wantCode:   domainerror.ErrCodeNotManager,
		},
		{
			name:   "valid token",
			header: "Bearer good",
			setup: func(m *mocks.MockTokenService) {
				m.EXPECT().ValidateAccessToken(gomock.Any(), "good").
					Return(&adapter.TokenClaims{Subject: "manager", Email: "manager@example.com"}, nil)
			},
			wantStatus: http.StatusOK,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			tokens := mocks.NewMockTokenService(ctrl)
			if tt.setup != nil {
				tt.setup(tokens)
			}

			router := gin.New()
			router.GET("/reports", middleware.NewAuthMiddleware(tokens).Authenticate(), func(c *gin.Context) {
				email, ok := middleware.GetManagerEmailFromContext(c)
				require.True(t, ok)
				c.String(http.StatusOK, email)
			})

			req := httptest.NewRequest(http.MethodGet, "/reports", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantCode != "" {
				assert.Contains(t, rec.Body.String(), string(tt.wantCode))
			} else {
				assert.Equal(t, "manager@example.com", rec.Body.String())
			}
		})
	}
}
