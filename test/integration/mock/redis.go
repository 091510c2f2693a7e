package mock

import (
	"context"
	"sync"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
)

var redisConnOnce sync.Once
var redisConn *redis.Client
var redisServer *miniredis.Miniredis

// NewRedis returns a client for a shared miniredis instance.
func NewRedis() *redis.Client {
	redisConnOnce.Do(
		func() {
			redisConn = openRedisConn()
		},
	)

	return redisConn
}

func openRedisConn() *redis.Client {
	server, err := miniredis.Run()
	if err != nil {
		panic(err)
	}
	redisServer = server

	return redis.NewClient(
		&redis.Options{
			Addr: server.Addr(),
		},
	)
}

// ClearRedis drops every key, including rate limit counters.
func ClearRedis(client *redis.Client) error {
	return client.FlushAll(context.TODO()).Err()
}

// CloseRedis stops the shared miniredis instance.
func CloseRedis() {
	if redisConn != nil {
		_ = redisConn.Close()
	}
	if redisServer != nil {
		redisServer.Close()
	}
}
