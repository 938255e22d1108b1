package cart

import (
	"context"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
)

// Carts linger for a month of inactivity before Redis drops them.
const cartTTL = 30 * 24 * time.Hour

// RedisProvider stores carts in Redis under namespaced per-session keys.
type RedisProvider struct {
	client    *redis.Client
	namespace string
}

// NewRedisProvider connects to Redis at the given URL and verifies the
// connection with a ping.
func NewRedisProvider(redisURL string) (*RedisProvider, error) {
	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("invalid Redis URL: %w", err)
	}

	client := redis.NewClient(opt)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &RedisProvider{client: client, namespace: "storefront"}, nil
}

func (p *RedisProvider) ForSession(sessionID string) Storage {
	return &redisStorage{
		client: p.client,
		key:    fmt.Sprintf("%s:cart:%s", p.namespace, sessionID),
	}
}

type redisStorage struct {
	client *redis.Client
	key    string
}

func (s *redisStorage) Load(ctx context.Context) ([]byte, error) {
	data, err := s.client.Get(ctx, s.key).Bytes()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load cart: %w", err)
	}
	return data, nil
}

func (s *redisStorage) Save(ctx context.Context, data []byte) error {
	if err := s.client.Set(ctx, s.key, data, cartTTL).Err(); err != nil {
		return fmt.Errorf("failed to save cart: %w", err)
	}
	return nil
}

func (s *redisStorage) Clear(ctx context.Context) error {
	if err := s.client.Del(ctx, s.key).Err(); err != nil {
		return fmt.Errorf("failed to clear cart: %w", err)
	}
	return nil
}
