package availability

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/holidaze/booking-gateway/internal/domain"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestMemoryStoreGetSet(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore(time.Minute)

	t.Run("missing entry returns ErrNotFound", func(t *testing.T) {
		_, err := store.Get(ctx, "venue-1")
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("set then get round-trips the day set", func(t *testing.T) {
		days := domain.ExpandIntervals([]domain.DateInterval{
			{From: day(2024, 6, 1), To: day(2024, 6, 3)},
		})
		require.NoError(t, store.Set(ctx, "venue-1", days))

		got, err := store.Get(ctx, "venue-1")
		require.NoError(t, err)
		assert.Len(t, got, 3)
		assert.True(t, got.Contains(day(2024, 6, 2)))
	})

	t.Run("get returns a copy, not the shared set", func(t *testing.T) {
		got, err := store.Get(ctx, "venue-1")
		require.NoError(t, err)

		got.Merge(domain.DateInterval{From: day(2024, 8, 1), To: day(2024, 8, 1)})

		again, err := store.Get(ctx, "venue-1")
		require.NoError(t, err)
		assert.False(t, again.Contains(day(2024, 8, 1)))
	})
}

func TestMemoryStoreMerge(t *testing.T) {
	ctx := context.Background()

	t.Run("merge patches an existing entry", func(t *testing.T) {
		store := NewMemoryStore(time.Minute)
		require.NoError(t, store.Set(ctx, "venue-1", domain.NewBlockedDays()))

		require.NoError(t, store.Merge(ctx, "venue-1", domain.DateInterval{
			From: day(2024, 7, 10), To: day(2024, 7, 12),
		}))

		got, err := store.Get(ctx, "venue-1")
		require.NoError(t, err)
		assert.Len(t, got, 3)
		assert.True(t, got.Contains(day(2024, 7, 11)))
	})

	t.Run("merge without an entry is a no-op", func(t *testing.T) {
		store := NewMemoryStore(time.Minute)

		require.NoError(t, store.Merge(ctx, "venue-2", domain.DateInterval{
			From: day(2024, 7, 10), To: day(2024, 7, 12),
		}))

		_, err := store.Get(ctx, "venue-2")
		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestMemoryStoreTTL(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore(5 * time.Minute)

	now := day(2024, 6, 1)
	store.nowFunc = func() time.Time { return now }

	require.NoError(t, store.Set(ctx, "venue-1", domain.NewBlockedDays()))

	_, err := store.Get(ctx, "venue-1")
	require.NoError(t, err)

	// После истечения TTL запись невидима и для Get, и для Merge
	now = now.Add(6 * time.Minute)

	_, err = store.Get(ctx, "venue-1")
	assert.ErrorIs(t, err, ErrNotFound)

	require.NoError(t, store.Merge(ctx, "venue-1", domain.DateInterval{
		From: day(2024, 7, 1), To: day(2024, 7, 2),
	}))
	_, err = store.Get(ctx, "venue-1")
	assert.ErrorIs(t, err, ErrNotFound)
}

// Конкурентные чтения и оптимистичные патчи одного venue не должны
// гоняться на общей map (ловится go test -race)
func TestMemoryStoreConcurrentGetAndMerge(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore(time.Minute)

	require.NoError(t, store.Set(ctx, "venue-1", domain.ExpandIntervals([]domain.DateInterval{
		{From: day(2024, 6, 1), To: day(2024, 6, 3)},
	})))

	const iterations = 200
	var wg sync.WaitGroup
	wg.Add(2)

	go func() {
		defer wg.Done()
		for i := 0; i < iterations; i++ {
			got, err := store.Get(ctx, "venue-1")
			assert.NoError(t, err)
			// Итерируем копию, пока Merge дописывает дни в оригинал
			for range got {
			}
		}
	}()

	go func() {
		defer wg.Done()
		for i := 0; i < iterations; i++ {
			assert.NoError(t, store.Merge(ctx, "venue-1", domain.DateInterval{
				From: day(2024, 7, 1).AddDate(0, 0, i), To: day(2024, 7, 1).AddDate(0, 0, i),
			}))
		}
	}()

	wg.Wait()

	got, err := store.Get(ctx, "venue-1")
	require.NoError(t, err)
	assert.True(t, got.Contains(day(2024, 7, 1)))
	assert.True(t, got.Contains(day(2024, 7, 1).AddDate(0, 0, iterations-1)))
}

func TestMemoryStoreInvalidate(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore(time.Minute)

	require.NoError(t, store.Set(ctx, "venue-1", domain.NewBlockedDays()))
	require.NoError(t, store.Invalidate(ctx, "venue-1"))

	_, err := store.Get(ctx, "venue-1")
	assert.ErrorIs(t, err, ErrNotFound)
}
