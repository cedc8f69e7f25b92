package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/pos/backoffice/internal/domain/shared"
	"github.com/pos/backoffice/internal/infrastructure/config"
	"github.com/redis/go-redis/v9"
)

const defaultKeyPrefix = "backoffice:view:"

// RedisViewStateStore implements ViewStateStore with JSON values in Redis,
// so every server instance sees the same sessions
type RedisViewStateStore struct {
	client    *redis.Client
	keyPrefix string
}

// NewRedisViewStateStore connects to Redis and verifies the connection
func NewRedisViewStateStore(cfg config.RedisConfig) (*RedisViewStateStore, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr(),
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return NewRedisViewStateStoreWithClient(client, ""), nil
}

// NewRedisViewStateStoreWithClient creates a store over an existing client
func NewRedisViewStateStoreWithClient(client *redis.Client, keyPrefix string) *RedisViewStateStore {
	if keyPrefix == "" {
		keyPrefix = defaultKeyPrefix
	}
	return &RedisViewStateStore{client: client, keyPrefix: keyPrefix}
}

func (s *RedisViewStateStore) key(id uuid.UUID) string {
	return s.keyPrefix + id.String()
}

// Save writes the session with the given expiry
func (s *RedisViewStateStore) Save(ctx context.Context, session *shared.ViewSession, ttl time.Duration) error {
	payload, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("failed to encode view session: %w", err)
	}
	if err := s.client.Set(ctx, s.key(session.ID), payload, ttl).Err(); err != nil {
		return fmt.Errorf("failed to save view session: %w", err)
	}
	return nil
}

// Get loads a session
func (s *RedisViewStateStore) Get(ctx context.Context, id uuid.UUID) (*shared.ViewSession, error) {
	payload, err := s.client.Get(ctx, s.key(id)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, shared.ErrNotFound.WithMessage("View session not found or expired")
		}
		return nil, fmt.Errorf("failed to load view session: %w", err)
	}

	var session shared.ViewSession
	if err := json.Unmarshal(payload, &session); err != nil {
		return nil, fmt.Errorf("failed to decode view session: %w", err)
	}
	return &session, nil
}

// Delete removes a session
func (s *RedisViewStateStore) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.client.Del(ctx, s.key(id)).Err(); err != nil {
		return fmt.Errorf("failed to delete view session: %w", err)
	}
	return nil
}

// Close closes the Redis client
func (s *RedisViewStateStore) Close() error {
	return s.client.Close()
}

var _ shared.ViewStateStore = (*RedisViewStateStore)(nil)
