package adapters_test

import (
	"context"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/parsonage/property-ops/internal/application/adapter/mocks"
	domainerror "github.com/parsonage/property-ops/internal/domain/error"
	"github.com/parsonage/property-ops/internal/integration/adapters"
)

const testSecret = "test-secret"

func TestTokenService(t *testing.T) {
	ctx := context.Background()
	issuedAt := time.Date(2024, 3, 15, 10, 0, 0, 0, time.UTC)

	fixedClock := func(t *testing.T, now time.Time) *mocks.MockClock {
		t.Helper()
		ctrl := gomock.NewController(t)
		clock := mocks.NewMockClock(ctrl)
		clock.EXPECT().Now().Return(now).AnyTimes()
		return clock
	}

	t.Run("round trip", func(t *testing.T) {
		clock := fixedClock(t, issuedAt)
		service := adapters.NewTokenService(testSecret, "property-ops", time.Hour, "", clock)

		token, expiresAt, err := service.GenerateManagerToken(ctx, "manager@example.com")
		require.NoError(t, err)
		assert.Equal(t, issuedAt.Add(time.Hour), expiresAt)

		claims, err := service.ValidateAccessToken(ctx, token)
		require.NoError(t, err)
		assert.Equal(t, "manager", claims.Subject)
		assert.Equal(t, "manager@example.com", claims.Email)
		assert.True(t, claims.ExpiresAt.Equal(expiresAt))
	})

	t.Run("expired token", func(t *testing.T) {
		issuer := adapters.NewTokenService(testSecret, "property-ops", time.Hour, "", fixedClock(t, issuedAt))
		token, _, err := issuer.GenerateManagerToken(ctx, "manager@example.com")
		require.NoError(t, err)

		later := adapters.NewTokenService(testSecret, "property-ops", time.Hour, "", fixedClock(t, issuedAt.Add(2*time.Hour)))
		_, err = later.ValidateAccessToken(ctx, token)

		assert.ErrorIs(t, err, domainerror.ErrExpiredToken)
	})

	t.Run("wrong secret", func(t *testing.T) {
		clock := fixedClock(t, issuedAt)
		token, _, err := adapters.NewTokenService("other-secret", "property-ops", time.Hour, "", clock).
			GenerateManagerToken(ctx, "manager@example.com")
		require.NoError(t, err)

		_, err = adapters.NewTokenService(testSecret, "property-ops", time.Hour, "", clock).ValidateAccessToken(ctx, token)

		assert.ErrorIs(t, err, domainerror.ErrInvalidToken)
	})

	t.Run("garbage token", func(t *testing.T) {
		service := adapters.NewTokenService(testSecret, "property-ops", time.Hour, "", fixedClock(t, issuedAt))

		_, err := service.ValidateAccessToken(ctx, "not-a-jwt")

		assert.ErrorIs(t, err, domainerror.ErrInvalidToken)
	})

	t.Run("only the configured manager", func(t *testing.T) {
		clock := fixedClock(t, issuedAt)
		open := adapters.NewTokenService(testSecret, "property-ops", time.Hour, "", clock)
		restricted := adapters.NewTokenService(testSecret, "property-ops", time.Hour, "manager@example.com", clock)

		_, _, err := restricted.GenerateManagerToken(ctx, "someone@example.com")
		assert.ErrorIs(t, err, domainerror.ErrNotManager)

		token, _, err := open.GenerateManagerToken(ctx, "someone@example.com")
		require.NoError(t, err)
		_, err = restricted.ValidateAccessToken(ctx, token)
		assert.ErrorIs(t, err, domainerror.ErrNotManager)
	})
}

func TestSystemClock(t *testing.T) {
	loc, err := time.LoadLocation("America/New_York")
	require.NoError(t, err)

	now := adapters.NewSystemClock(loc).Now()

	assert.Equal(t, loc, now.Location())
	assert.WithinDuration(t, time.Now(), now, time.Minute)
	assert.Equal(t, time.UTC, adapters.NewSystemClock(nil).Now().Location())
}
