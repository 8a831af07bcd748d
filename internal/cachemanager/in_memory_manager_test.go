package cachemanager

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

type cssKey string

type compiledSheet struct {
	Slug string
	CSS  string
}

func TestNewInMemoryCacheManager(t *testing.T) {
	require.NotPanics(t, func() {
		NewInMemoryCacheManager[string, string]("test", DefaultExpiration, DefaultCleanupInterval)
	})
}

func TestInMemoryCacheManager_GetExistingValue_StructType(t *testing.T) {
	cache := NewInMemoryCacheManager[cssKey, compiledSheet]("css", DefaultExpiration, DefaultCleanupInterval)
	sheet := compiledSheet{Slug: "brand-blue", CSS: ":root {}\n"}
	cache.Set(context.Background(), "global:brand-blue", sheet, DefaultExpiration)

	got, ok := cache.Get(context.Background(), "global:brand-blue")
	require.True(t, ok)
	require.Equal(t, sheet, got)
}

func TestInMemoryCacheManager_GetExistingValue(t *testing.T) {
	cache := NewInMemoryCacheManager[string, string]("css", DefaultExpiration, DefaultCleanupInterval)
	cache.Set(context.Background(), "animation:meadow", ".theme-meadow {}", DefaultExpiration)

	got, ok := cache.Get(context.Background(), "animation:meadow")
	require.True(t, ok)
	require.Equal(t, ".theme-meadow {}", got)
}

func TestInMemoryCacheManager_GetWithNoExistingValue(t *testing.T) {
	cache := NewInMemoryCacheManager[string, string]("css", DefaultExpiration, DefaultCleanupInterval)

	got, ok := cache.Get(context.Background(), "global:missing")
	require.False(t, ok)
	require.Empty(t, got)
}

func TestInMemoryCacheManager_GetWithExistingInvalidValueType(t *testing.T) {
	cache := NewInMemoryCacheManager[string, string]("css", DefaultExpiration, DefaultCleanupInterval)

	cache.cache.Set("global:meadow", 123, DefaultExpiration)

	got, ok := cache.Get(context.Background(), "global:meadow")
	require.False(t, ok)
	require.Empty(t, got)
}

func TestInMemoryCacheManager_GetMultipleWithNoKeysDoesNothing(t *testing.T) {
	cache := NewInMemoryCacheManager[string, string]("css", DefaultExpiration, DefaultCleanupInterval)

	got, ok := cache.GetMultiple(context.Background(), []string{})
	require.False(t, ok)
	require.Nil(t, got)
}

func TestInMemoryCacheManager_GetMultiplePartialHit(t *testing.T) {
	cache := NewInMemoryCacheManager[string, string]("css", DefaultExpiration, DefaultCleanupInterval)

	cache.cache.Set("global:a", "a", DefaultExpiration)
	cache.cache.Set("global:b", "b", DefaultExpiration)

	got, ok := cache.GetMultiple(context.Background(), []string{"global:a", "global:b", "global:c"})
	require.True(t, ok)
	require.Equal(t, map[string]string{"global:a": "a", "global:b": "b"}, got)
}

func TestInMemoryCacheManager_GetMultipleCacheMiss(t *testing.T) {
	cache := NewInMemoryCacheManager[string, string]("css", DefaultExpiration, DefaultCleanupInterval)

	got, ok := cache.GetMultiple(context.Background(), []string{"global:a", "global:b"})
	require.False(t, ok)
	require.Nil(t, got)
}

func TestInMemoryCacheManager_GetWithRefreshExtendsTTL(t *testing.T) {
	cache := NewInMemoryCacheManager[string, string]("css", DefaultExpiration, DefaultCleanupInterval)
	cache.Set(context.Background(), "vars:a", "{}", 50*time.Millisecond)

	got, ok := cache.GetWithRefresh(context.Background(), "vars:a", time.Hour)
	require.True(t, ok)
	require.Equal(t, "{}", got)

	time.Sleep(100 * time.Millisecond)

	got, ok = cache.Get(context.Background(), "vars:a")
	require.True(t, ok)
	require.Equal(t, "{}", got)
}

func TestInMemoryCacheManager_GetWithRefreshMiss(t *testing.T) {
	cache := NewInMemoryCacheManager[string, string]("css", DefaultExpiration, DefaultCleanupInterval)

	_, ok := cache.GetWithRefresh(context.Background(), "vars:a", time.Hour)
	require.False(t, ok)
	require.Zero(t, cache.Len())
}

func TestInMemoryCacheManager_Expires(t *testing.T) {
	cache := NewInMemoryCacheManager[string, string]("css", DefaultExpiration, DefaultCleanupInterval)
	cache.Set(context.Background(), "global:a", "x", 20*time.Millisecond)

	require.Eventually(t, func() bool {
		_, ok := cache.Get(context.Background(), "global:a")
		return !ok
	}, time.Second, 10*time.Millisecond)
}

func TestInMemoryCacheManager_Delete(t *testing.T) {
	cache := NewInMemoryCacheManager[string, string]("css", DefaultExpiration, DefaultCleanupInterval)
	cache.Set(context.Background(), "global:a", "a", DefaultExpiration)
	cache.Set(context.Background(), "global:b", "b", DefaultExpiration)
	cache.Set(context.Background(), "global:c", "c", DefaultExpiration)

	require.NoError(t, cache.Delete(context.Background(), "global:a", "global:b"))

	_, ok := cache.Get(context.Background(), "global:a")
	require.False(t, ok)
	_, ok = cache.Get(context.Background(), "global:c")
	require.True(t, ok)
}

func TestInMemoryCacheManager_Flush(t *testing.T) {
	cache := NewInMemoryCacheManager[string, string]("css", DefaultExpiration, DefaultCleanupInterval)
	cache.Set(context.Background(), "global:a", "a", DefaultExpiration)
	cache.Set(context.Background(), "animation:a", "b", DefaultExpiration)

	require.NoError(t, cache.Flush(context.Background()))
	require.Zero(t, cache.Len())
}
