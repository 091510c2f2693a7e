package db_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/parsonage/property-ops/config"
	"github.com/parsonage/property-ops/internal/infra/db"
	"github.com/parsonage/property-ops/internal/integration/persistence/model"
)

func TestNewConnection_SQLite(t *testing.T) {
	database, err := db.NewConnection(&config.DatabaseConfig{
		Driver:          db.DriverSQLite,
		URL:             ":memory:",
		MaxOpenConns:    5,
		MaxIdleConns:    1,
		ConnMaxLifetime: time.Minute,
	})
	require.NoError(t, err)
	t.Cleanup(func() { _ = database.Close() })

	require.NoError(t, database.AutoMigrate(model.AllModels()...))
	assert.True(t, database.HealthCheck())
	assert.True(t, database.DB().Migrator().HasTable(&model.TransactionModel{}))
}

func TestNewConnection_UnsupportedDriver(t *testing.T) {
	_, err := db.NewConnection(&config.DatabaseConfig{Driver: "oracle"})

	assert.ErrorContains(t, err, "unsupported database driver")
}
