package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/parsonage/property-ops/config"
	"github.com/parsonage/property-ops/internal/domain/valueobject"
)

func TestLoad(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		cfg := config.Load()

		assert.Equal(t, "postgres", cfg.Database.Driver)
		assert.Equal(t, 8080, cfg.Server.Port)
		assert.Equal(t, 60, cfg.RateLimit.Requests)
		assert.Equal(t, time.Minute, cfg.RateLimit.Window)
	})

	t.Run("environment overrides", func(t *testing.T) {
		t.Setenv("DATABASE_DRIVER", "sqlite")
		t.Setenv("SERVER_PORT", "9090")
		t.Setenv("RATE_LIMIT_WINDOW", "30s")
		t.Setenv("JWT_EXPIRY", "not-a-duration")

		cfg := config.Load()

		assert.Equal(t, "sqlite", cfg.Database.Driver)
		assert.Equal(t, 9090, cfg.Server.Port)
		assert.Equal(t, 30*time.Second, cfg.RateLimit.Window)
		assert.Equal(t, 24*time.Hour, cfg.JWT.ManagerTokenExpiry)
	})
}

func TestLoadPropertySettings(t *testing.T) {
	t.Run("no file keeps defaults", func(t *testing.T) {
		settings, err := config.LoadPropertySettings(config.PropertyConfig{})

		require.NoError(t, err)
		assert.Equal(t, valueobject.DefaultPropertySettings(), settings)
	})

	t.Run("file overlays defaults", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "property.yaml")
		require.NoError(t, os.WriteFile(path, []byte(`
property_name: Elm Street House
time_zone: America/Chicago
deductible_categories: [Repairs, Insurance]
insights:
  low_occupancy_percent: 60
`), 0o600))

		settings, err := config.LoadPropertySettings(config.PropertyConfig{
			SettingsFile: path,
			ManagerEmail: "manager@example.com",
		})

		require.NoError(t, err)
		assert.Equal(t, "Elm Street House", settings.PropertyName)
		assert.Equal(t, "manager@example.com", settings.ManagerEmail)
		assert.Equal(t, "USD", settings.Currency)
		assert.Equal(t, []string{"Repairs", "Insurance"}, settings.DeductibleCategories)
		assert.Equal(t, int64(60), settings.Insights.LowOccupancyPercent)
		assert.Equal(t, int64(90), settings.Insights.HighOccupancyPercent)
		assert.Equal(t, "America/Chicago", settings.Location().String())
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := config.LoadPropertySettings(config.PropertyConfig{SettingsFile: "/nonexistent/property.yaml"})

		assert.Error(t, err)
	})

	t.Run("unknown time zone", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "property.yaml")
		require.NoError(t, os.WriteFile(path, []byte("time_zone: Mars/Olympus\n"), 0o600))

		_, err := config.LoadPropertySettings(config.PropertyConfig{SettingsFile: path})

		assert.Error(t, err)
	})
}
