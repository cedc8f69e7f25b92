package cache

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/pos/backoffice/internal/domain/datatable"
	"github.com/pos/backoffice/internal/domain/shared"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSession() *shared.ViewSession {
	return &shared.ViewSession{
		ID:       uuid.New(),
		TenantID: uuid.New(),
		Screen:   "orders",
		PageSize: 10,
		Pageable: true,
		State:    datatable.State{SearchTerm: "pizza", CurrentPage: 2},
	}
}

func TestInMemoryViewStateStore_SaveGet(t *testing.T) {
	store := NewInMemoryViewStateStore(time.Hour)
	defer store.Close()
	ctx := context.Background()

	t.Run("returns saved session", func(t *testing.T) {
		s := newSession()
		require.NoError(t, store.Save(ctx, s, time.Minute))

		got, err := store.Get(ctx, s.ID)
		require.NoError(t, err)
		assert.Equal(t, s.State, got.State)
		assert.Equal(t, "orders", got.Screen)
	})

	t.Run("returns a copy", func(t *testing.T) {
		s := newSession()
		require.NoError(t, store.Save(ctx, s, time.Minute))

		got, err := store.Get(ctx, s.ID)
		require.NoError(t, err)
		got.State.CurrentPage = 99

		again, err := store.Get(ctx, s.ID)
		require.NoError(t, err)
		assert.Equal(t, 2, again.State.CurrentPage)
	})

	t.Run("unknown session is not found", func(t *testing.T) {
		_, err := store.Get(ctx, uuid.New())
		assert.ErrorIs(t, err, shared.ErrNotFound)
	})
}

func TestInMemoryViewStateStore_Expiry(t *testing.T) {
	store := NewInMemoryViewStateStore(time.Hour)
	defer store.Close()
	ctx := context.Background()

	now := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	store.now = func() time.Time { return now }

	s := newSession()
	require.NoError(t, store.Save(ctx, s, 30*time.Minute))

	now = now.Add(29 * time.Minute)
	_, err := store.Get(ctx, s.ID)
	require.NoError(t, err)

	now = now.Add(time.Minute)
	_, err = store.Get(ctx, s.ID)
	assert.ErrorIs(t, err, shared.ErrNotFound)

	assert.Equal(t, 1, store.Size())
	store.cleanup()
	assert.Equal(t, 0, store.Size())
}

func TestInMemoryViewStateStore_Delete(t *testing.T) {
	store := NewInMemoryViewStateStore(time.Hour)
	defer store.Close()
	ctx := context.Background()

	s := newSession()
	require.NoError(t, store.Save(ctx, s, time.Minute))
	require.NoError(t, store.Delete(ctx, s.ID))
	require.NoError(t, store.Delete(ctx, s.ID))

	_, err := store.Get(ctx, s.ID)
	assert.ErrorIs(t, err, shared.ErrNotFound)
}

func TestInMemoryViewStateStore_CleanupLoop(t *testing.T) {
	store := NewInMemoryViewStateStore(5 * time.Millisecond)
	defer store.Close()

	require.NoError(t, store.Save(context.Background(), newSession(), time.Millisecond))

	assert.Eventually(t, func() bool { return store.Size() == 0 }, time.Second, 5*time.Millisecond)
}

func TestInMemoryViewStateStore_Concurrent(t *testing.T) {
	store := NewInMemoryViewStateStore(time.Hour)
	defer store.Close()
	ctx := context.Background()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			s := newSession()
			_ = store.Save(ctx, s, time.Minute)
			_, _ = store.Get(ctx, s.ID)
		}()
	}
	wg.Wait()

	assert.Equal(t, 50, store.Size())
}

func TestInMemoryViewStateStore_CloseTwice(t *testing.T) {
	store := NewInMemoryViewStateStore(0)
	assert.NoError(t, store.Close())
	assert.NoError(t, store.Close())
}
