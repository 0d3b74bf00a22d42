package storage

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/spec-kit/learnhub-portal/internal/config"
	"github.com/spec-kit/learnhub-portal/internal/domain"
)

type redisStorage struct {
	client *redis.Client
	prefix string
}

// NewRedis constructs a redis-backed credential storage.
func NewRedis(cfg config.RedisConfig) (Storage, error) {
	if cfg.Addr == "" {
		return nil, fmt.Errorf("redis address required")
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	if err := client.Ping(context.Background()).Err(); err != nil {
		return nil, fmt.Errorf("redis ping failed: %w", err)
	}

	prefix := cfg.Prefix
	if prefix == "" {
		prefix = "learnhub:credential:"
	}
	return &redisStorage{client: client, prefix: prefix}, nil
}

func (s *redisStorage) key(role domain.Role) string {
	return s.prefix + string(role)
}

func (s *redisStorage) Load(ctx context.Context, role domain.Role) (string, error) {
	val, err := s.client.Get(ctx, s.key(role)).Result()
	if err != nil {
		if err == redis.Nil {
			return "", nil
		}
		return "", err
	}
	return val, nil
}

func (s *redisStorage) Save(ctx context.Context, role domain.Role, token string) error {
	return s.client.Set(ctx, s.key(role), token, 0).Err()
}

func (s *redisStorage) Delete(ctx context.Context, role domain.Role) error {
	return s.client.Del(ctx, s.key(role)).Err()
}

func (s *redisStorage) Close(context.Context) error {
	return s.client.Close()
}
