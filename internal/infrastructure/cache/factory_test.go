package cache

import (
	"testing"

	"github.com/pos/backoffice/internal/infrastructure/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

// unreachableRedis points at a port nothing listens on
var unreachableRedis = config.RedisConfig{Host: "127.0.0.1", Port: 1}

func TestViewStateStoreFactory_CreateStore(t *testing.T) {
	t.Run("memory store", func(t *testing.T) {
		store, err := NewViewStateStoreFactory(unreachableRedis).CreateStore(StoreMemory)
		require.NoError(t, err)
		defer store.Close()

		assert.IsType(t, &InMemoryViewStateStore{}, store)
	})

	t.Run("falls back when redis is unreachable", func(t *testing.T) {
		core, logs := observer.New(zap.WarnLevel)
		factory := NewViewStateStoreFactory(unreachableRedis, WithLogger(zap.New(core)))

		store, err := factory.CreateStore(StoreRedis)
		require.NoError(t, err)
		defer store.Close()

		assert.IsType(t, &InMemoryViewStateStore{}, store)
		assert.Equal(t, 1, logs.Len())
	})

	t.Run("fails without fallback", func(t *testing.T) {
		factory := NewViewStateStoreFactory(unreachableRedis, WithInMemoryFallback(false))

		store, err := factory.CreateStore(StoreRedis)
		assert.Nil(t, store)
		assert.ErrorContains(t, err, "Redis required")
	})

	t.Run("rejects unknown kind", func(t *testing.T) {
		_, err := NewViewStateStoreFactory(unreachableRedis).CreateStore("memcached")
		assert.ErrorContains(t, err, "unknown view state store")
	})
}
