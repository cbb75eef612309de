package repositories

import (
	"context"
	"errors"

	redis "github.com/redis/go-redis/v9"
)

// RedisKV stores slots as plain Redis string keys.
type RedisKV struct {
	rdb *redis.Client
}

func NewRedisKV(url string) (*RedisKV, error) {
	opt, err := redis.ParseURL(url)
	if err != nil {
		return nil, err
	}
	return &RedisKV{rdb: redis.NewClient(opt)}, nil
}

func (s *RedisKV) Get(ctx context.Context, key string) (string, bool, error) {
	val, err := s.rdb.Get(ctx, key).Result()
	if errors.Is(err, redis.Nil) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return val, true, nil
}

func (s *RedisKV) Set(ctx context.Context, key, value string) error {
	return s.rdb.Set(ctx, key, value, 0).Err()
}
