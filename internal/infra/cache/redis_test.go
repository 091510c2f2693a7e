package cache_test

import (
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/parsonage/property-ops/config"
	"github.com/parsonage/property-ops/internal/infra/cache"
)

func TestNewRedisClient(t *testing.T) {
	mr := miniredis.RunT(t)

	client, err := cache.NewRedisClient(&config.RedisConfig{URL: "redis://" + mr.Addr() + "/0", DB: 2})
	require.NoError(t, err)
	t.Cleanup(func() { _ = client.Close() })

	assert.Equal(t, 2, client.Options().DB)
}

func TestNewRedisClient_Errors(t *testing.T) {
	_, err := cache.NewRedisClient(&config.RedisConfig{URL: "not a url"})
	assert.ErrorContains(t, err, "invalid redis url")

	mr, err := miniredis.Run()
	require.NoError(t, err)
	addr := mr.Addr()
	mr.Close()

	_, err = cache.NewRedisClient(&config.RedisConfig{URL: "redis://" + addr})
	assert.ErrorContains(t, err, "failed to ping redis")
}
