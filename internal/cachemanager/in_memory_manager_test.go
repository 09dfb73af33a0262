package cachemanager

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestNewInMemoryCacheManager(t *testing.T) {
	require.NotPanics(t, func() {
		NewInMemoryCacheManager[string, string]("test", DefaultExpiration, DefaultCleanupInterval)
	})
}

type exampleBundle struct {
	Label    string
	Category string
}

func TestInMemoryCacheManager_GetExistingValue_StructType(t *testing.T) {
	cache := NewInMemoryCacheManager[string, exampleBundle]("resolution-cache", DefaultExpiration, DefaultCleanupInterval)
	example := exampleBundle{
		Label:    "D-Glucose",
		Category: "substrate",
	}
	cache.Set(context.Background(), "API 20E|GLU", example, DefaultExpiration)

	got, ok := cache.Get(context.Background(), "API 20E|GLU")
	require.True(t, ok)
	require.Equal(t, example, got)
}

func TestInMemoryCacheManager_GetExistingValue(t *testing.T) {
	cache := NewInMemoryCacheManager[string, string]("resolution-cache", DefaultExpiration, DefaultCleanupInterval)
	cache.Set(context.Background(), "GLU", "D-Glucose", DefaultExpiration)

	got, ok := cache.Get(context.Background(), "GLU")
	require.True(t, ok)
	require.Equal(t, "D-Glucose", got)
}

func TestInMemoryCacheManager_GetWithNoExistingValue(t *testing.T) {
	cache := NewInMemoryCacheManager[string, string]("resolution-cache", DefaultExpiration, DefaultCleanupInterval)

	got, ok := cache.Get(context.Background(), "GLU")
	require.False(t, ok)
	require.Empty(t, got)
}

func TestInMemoryCacheManager_GetWithExistingInvalidValueType(t *testing.T) {
	cache := NewInMemoryCacheManager[string, string]("resolution-cache", DefaultExpiration, DefaultCleanupInterval)

	cache.cache.Set("GLU", 123, DefaultExpiration)

	got, ok := cache.Get(context.Background(), "GLU")
	require.False(t, ok)
	require.Empty(t, got)
}

func TestInMemoryCacheManager_GetWithRefresh_WithNoExistingValue(t *testing.T) {
	cache := NewInMemoryCacheManager[string, string]("resolution-cache", DefaultExpiration, DefaultCleanupInterval)

	got, ok := cache.GetWithRefresh(context.Background(), "GLU", time.Minute*60)
	require.False(t, ok)
	require.Equal(t, "", got)
}

func TestInMemoryCacheManager_GetWithRefresh_WithExistingValue(t *testing.T) {
	cache := NewInMemoryCacheManager[string, string]("resolution-cache", DefaultExpiration, DefaultCleanupInterval)
	cache.Set(context.Background(), "GLU", "D-Glucose", DefaultExpiration)

	got, ok := cache.GetWithRefresh(context.Background(), "GLU", time.Minute*60)
	require.True(t, ok)
	require.Equal(t, "D-Glucose", got)
}

func TestInMemoryCacheManager_DeleteWithNoKeysDoesNothing(t *testing.T) {
	cache := NewInMemoryCacheManager[string, string]("resolution-cache", DefaultExpiration, DefaultCleanupInterval)

	err := cache.Delete(context.Background())
	require.NoError(t, err)
}

func TestInMemoryCacheManager_DeleteExistingValue(t *testing.T) {
	cache := NewInMemoryCacheManager[string, string]("resolution-cache", DefaultExpiration, DefaultCleanupInterval)
	cache.Set(context.Background(), "GLU", "D-Glucose", DefaultExpiration)

	err := cache.Delete(context.Background(), "GLU")
	require.NoError(t, err)

	got, ok := cache.Get(context.Background(), "GLU")
	require.False(t, ok)
	require.Equal(t, "", got)
}

func TestInMemoryCacheManager_Flush(t *testing.T) {
	cache := NewInMemoryCacheManager[string, string]("resolution-cache", DefaultExpiration, DefaultCleanupInterval)
	cache.Set(context.Background(), "GLU", "D-Glucose", DefaultExpiration)

	err := cache.Flush(context.Background())
	require.NoError(t, err)

	got, ok := cache.Get(context.Background(), "GLU")
	require.False(t, ok)
	require.Equal(t, "", got)
}
