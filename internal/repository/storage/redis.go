package storage

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
)

type RedisStorage struct {
	Connection *redis.Client
}

// NewRedisStorage connects to Redis and pings it before returning.
func NewRedisStorage(ctx context.Context, addr string, db int) (*RedisStorage, error) {
	conn := redis.NewClient(&redis.Options{
		Addr: addr,
		DB:   db,
	})

	if _, err := conn.Ping(ctx).Result(); err != nil {
		return nil, errors.Join(fmt.Errorf("failed to connect to Redis: %w", err), conn.Close())
	}

	return &RedisStorage{Connection: conn}, nil
}

func (that *RedisStorage) Close() error {
	if err := that.Connection.Close(); err != nil {
		return fmt.Errorf("failed to close Redis connection: %w", err)
	}

	return nil
}
