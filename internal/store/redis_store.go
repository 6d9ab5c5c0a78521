package store

import (
	"context"
	"errors"
	"fmt"

	"fitbook/internal/structures"

	"github.com/redis/go-redis/v9"
)

type RedisStore struct {
	client *redis.Client
	key    string
}

func NewRedisStore(conf *structures.Config) (*RedisStore, error) {
	if conf.Store.Redis.Addr == "" {
		return nil, errors.New("store.redis.addr is not set")
	}
	client := redis.NewClient(&redis.Options{
		Addr:     conf.Store.Redis.Addr,
		Password: conf.Store.Redis.Password,
		DB:       conf.Store.Redis.DB,
	})
	return &RedisStore{client: client, key: conf.Store.Key}, nil
}

func (s *RedisStore) Get(ctx context.Context) ([]byte, bool, error) {
	data, err := s.client.Get(ctx, s.key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("redis get %s: %w", s.key, err)
	}
	return data, true, nil
}

func (s *RedisStore) Put(ctx context.Context, data []byte) error {
	if err := s.client.Set(ctx, s.key, data, 0).Err(); err != nil {
		return fmt.Errorf("redis set %s: %w", s.key, err)
	}
	return nil
}

func (s *RedisStore) Ping(ctx context.Context) error {
	return s.client.Ping(ctx).Err()
}

func (s *RedisStore) Close() error {
	return s.client.Close()
}
