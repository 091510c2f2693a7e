package cmd_test

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/parsonage/property-ops/cmd/token/cmd"
	domainerror "github.com/parsonage/property-ops/internal/domain/error"
	"github.com/parsonage/property-ops/internal/integration/adapters"
)

func setTokenEnv(t *testing.T, managerEmail string) {
	t.Helper()
	t.Setenv("JWT_SECRET", "cli-secret")
	t.Setenv("JWT_ISSUER", "property-ops")
	t.Setenv("JWT_EXPIRY", "24h")
	t.Setenv("MANAGER_EMAIL", managerEmail)
	t.Setenv("PROPERTY_SETTINGS_FILE", "")
}

func runRoot(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer

	root := cmd.NewRootCommand()
	root.SetOut(&stdout)
	root.SetErr(&stderr)
	root.SetArgs(args)

	err := root.Execute()
	return stdout.String(), stderr.String(), err
}

func TestRootCommand(t *testing.T) {
	t.Run("mints a token the API accepts", func(t *testing.T) {
		setTokenEnv(t, "manager@example.com")

		stdout, stderr, err := runRoot(t, "--expiry", "2h")
		require.NoError(t, err)
		assert.Contains(t, stderr, "expires ")

		service := adapters.NewTokenService("cli-secret", "property-ops", time.Hour, "manager@example.com", adapters.NewSystemClock(time.UTC))
		claims, err := service.ValidateAccessToken(context.Background(), strings.TrimSpace(stdout))
		require.NoError(t, err)
		assert.Equal(t, "manager@example.com", claims.Email)
		assert.WithinDuration(t, time.Now().Add(2*time.Hour), claims.ExpiresAt, time.Minute)
	})

	t.Run("email flag must match the manager", func(t *testing.T) {
		setTokenEnv(t, "manager@example.com")

		stdout, _, err := runRoot(t, "--email", "someone@example.com")
		require.ErrorIs(t, err, domainerror.ErrNotManager)
		assert.Empty(t, stdout)
	})

	t.Run("requires an email", func(t *testing.T) {
		setTokenEnv(t, "")

		_, _, err := runRoot(t)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "--email")
	})

	t.Run("rejects unknown flags", func(t *testing.T) {
		setTokenEnv(t, "manager@example.com")

		_, _, err := runRoot(t, "--lifetime", "1h")
		require.Error(t, err)
	})
}
