package services

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"github.com/redis/go-redis/v9"

	"traffic-analytics-api/config"
)

// CacheService is a thin redis wrapper used for per-filter-combination
// response caching and as the pub/sub bus behind the status websocket. Every
// method degrades to a no-op when redis is unreachable: caching is an
// optimization here, the dataset itself lives in process memory.
type CacheService struct {
	client *redis.Client
}

// NewDisabledCache returns a cache where every operation is a no-op.
func NewDisabledCache() *CacheService {
	return &CacheService{client: nil}
}

func NewCacheService(cfg config.RedisConfig) *CacheService {
	if cfg.Host == "" {
		return NewDisabledCache()
	}
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr(),
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		log.Printf("redis unavailable at %s, running without cache: %v", cfg.Addr(), err)
		client.Close()
		return &CacheService{client: nil}
	}

	log.Printf("redis connected: %s", cfg.Addr())
	return &CacheService{client: client}
}

func (s *CacheService) Available() bool {
	return s.client != nil
}

func (s *CacheService) Get(ctx context.Context, key string, dest interface{}) error {
	if s.client == nil {
		return redis.Nil
	}
	val, err := s.client.Get(ctx, key).Result()
	if err != nil {
		return err
	}
	return json.Unmarshal([]byte(val), dest)
}

func (s *CacheService) Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error {
	if s.client == nil {
		return nil
	}
	data, err := json.Marshal(value)
	if err != nil {
		return err
	}
	return s.client.Set(ctx, key, data, ttl).Err()
}

func (s *CacheService) Publish(ctx context.Context, channel string, message interface{}) error {
	if s.client == nil {
		return nil
	}
	data, err := json.Marshal(message)
	if err != nil {
		return err
	}
	return s.client.Publish(ctx, channel, data).Err()
}

func (s *CacheService) Subscribe(ctx context.Context, channel string) *redis.PubSub {
	if s.client == nil {
		return nil
	}
	return s.client.Subscribe(ctx, channel)
}

func (s *CacheService) Close() error {
	if s.client == nil {
		return nil
	}
	return s.client.Close()
}
