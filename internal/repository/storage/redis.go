package storage

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"
)

type RedisOptions struct {
	Addr     string
	Password string
	DB       int
}

// New - connects to Redis and checks the connection with a ping.
func New(ctx context.Context, opts RedisOptions) (*redis.Client, error) {
	conn := redis.NewClient(&redis.Options{
		Addr:     opts.Addr,
		Password: opts.Password,
		DB:       opts.DB,
	})

	if err := conn.Ping(ctx).Err(); err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}

	return conn, nil
}
