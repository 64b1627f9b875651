package cache

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bvsbharat/mzon/internal/models"
)

func TestMemoryStoreMissReturnsNilNil(t *testing.T) {
	store := NewMemoryStore()

	got, err := store.Get(context.Background(), "missing")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestMemoryStoreLastWriteWins(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	first := models.NewGenerationResult()
	first.AddError("first attempt failed")
	second := models.NewGenerationResult()

	require.NoError(t, store.Set(ctx, "news-1", first))
	require.NoError(t, store.Set(ctx, "news-1", second))

	got, err := store.Get(ctx, "news-1")
	require.NoError(t, err)
	assert.Same(t, second, got)
}

func TestMemoryStoreClear(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	require.NoError(t, store.Set(ctx, "news-1", models.NewGenerationResult()))
	require.NoError(t, store.Set(ctx, "news-2", models.NewGenerationResult()))
	require.NoError(t, store.Clear(ctx))

	for _, id := range []string{"news-1", "news-2"} {
		got, err := store.Get(ctx, id)
		require.NoError(t, err)
		assert.Nil(t, got)
	}
}

func TestMemoryStoreConcurrentAccess(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			id := fmt.Sprintf("news-%d", i%5)
			_ = store.Set(ctx, id, models.NewGenerationResult())
			_, _ = store.Get(ctx, id)
		}(i)
	}
	wg.Wait()

	got, err := store.Get(ctx, "news-0")
	require.NoError(t, err)
	assert.NotNil(t, got)
}
