// Package cache provides the view-state stores that back stateful table sessions.
package cache

import (
	"fmt"

	"github.com/pos/backoffice/internal/domain/shared"
	"github.com/pos/backoffice/internal/infrastructure/config"
	"go.uber.org/zap"
)

// Store kinds accepted by the factory
const (
	StoreMemory = "memory"
	StoreRedis  = "redis"
)

// ViewStateStoreFactory creates view-state stores based on configuration
type ViewStateStoreFactory struct {
	redisConfig           config.RedisConfig
	logger                *zap.Logger
	allowInMemoryFallback bool
}

// FactoryOption is a functional option for configuring the factory
type FactoryOption func(*ViewStateStoreFactory)

// WithLogger sets the logger for the factory
func WithLogger(logger *zap.Logger) FactoryOption {
	return func(f *ViewStateStoreFactory) {
		f.logger = logger
	}
}

// WithInMemoryFallback controls whether an unreachable Redis falls back to the
// in-memory store. Fallback is on by default.
func WithInMemoryFallback(allow bool) FactoryOption {
	return func(f *ViewStateStoreFactory) {
		f.allowInMemoryFallback = allow
	}
}

// NewViewStateStoreFactory creates a new factory
func NewViewStateStoreFactory(cfg config.RedisConfig, opts ...FactoryOption) *ViewStateStoreFactory {
	f := &ViewStateStoreFactory{
		redisConfig:           cfg,
		logger:                zap.NewNop(),
		allowInMemoryFallback: true,
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// CreateStore returns the store of the requested kind
func (f *ViewStateStoreFactory) CreateStore(kind string) (shared.ViewStateStore, error) {
	switch kind {
	case StoreMemory, "":
		f.logger.Info("using in-memory view state store")
		return NewInMemoryViewStateStore(0), nil
	case StoreRedis:
		store, err := NewRedisViewStateStore(f.redisConfig)
		if err == nil {
			f.logger.Info("using Redis view state store", zap.String("addr", f.redisConfig.Addr()))
			return store, nil
		}
		if !f.allowInMemoryFallback {
			return nil, fmt.Errorf("Redis required for view sessions but unavailable: %w", err)
		}
		f.logger.Warn("Redis unavailable, falling back to in-memory view state store. "+
			"Sessions will not be shared between instances.",
			zap.Error(err),
		)
		return NewInMemoryViewStateStore(0), nil
	default:
		return nil, fmt.Errorf("unknown view state store %q", kind)
	}
}
