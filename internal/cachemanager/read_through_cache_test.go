package cachemanager

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestReadThroughCache_MissCallsFnAndCaches(t *testing.T) {
	cache := NewInMemoryCacheManager[string, string]("resolution-cache", DefaultExpiration, DefaultCleanupInterval)
	calls := 0
	rtc := NewReadThroughCache(cache, func(ctx context.Context, input string) (string, error) {
		calls++
		return "D-Glucose", nil
	}, false)

	got, err := rtc.Get(context.Background(), "API 20E|GLU", "GLU", time.Minute)
	require.NoError(t, err)
	require.Equal(t, "D-Glucose", got)
	require.Equal(t, 1, calls)

	got, err = rtc.Get(context.Background(), "API 20E|GLU", "GLU", time.Minute)
	require.NoError(t, err)
	require.Equal(t, "D-Glucose", got)
	require.Equal(t, 1, calls)
}

func TestReadThroughCache_HitSkipsFn(t *testing.T) {
	cache := NewInMemoryCacheManager[string, string]("resolution-cache", DefaultExpiration, DefaultCleanupInterval)
	cache.Set(context.Background(), "API 20E|GLU", "D-Glucose", DefaultExpiration)

	rtc := NewReadThroughCache(cache, func(ctx context.Context, input string) (string, error) {
		t.Fatal("fn should not be called on a cache hit")
		return "", nil
	}, false)

	got, err := rtc.Get(context.Background(), "API 20E|GLU", "GLU", time.Minute)
	require.NoError(t, err)
	require.Equal(t, "D-Glucose", got)
}

func TestReadThroughCache_FnErrorIsNotCached(t *testing.T) {
	cache := NewInMemoryCacheManager[string, string]("resolution-cache", DefaultExpiration, DefaultCleanupInterval)
	wantErr := errors.New("lookup failed")
	calls := 0
	rtc := NewReadThroughCache(cache, func(ctx context.Context, input string) (string, error) {
		calls++
		return "", wantErr
	}, false)

	_, err := rtc.Get(context.Background(), "API 20E|GLU", "GLU", time.Minute)
	require.ErrorIs(t, err, wantErr)

	_, err = rtc.Get(context.Background(), "API 20E|GLU", "GLU", time.Minute)
	require.ErrorIs(t, err, wantErr)
	require.Equal(t, 2, calls)
}

func TestReadThroughCache_SkipCacheAlwaysCallsFn(t *testing.T) {
	cache := NewInMemoryCacheManager[string, string]("resolution-cache", DefaultExpiration, DefaultCleanupInterval)
	calls := 0
	rtc := NewReadThroughCache(cache, func(ctx context.Context, input string) (string, error) {
		calls++
		return "D-Glucose", nil
	}, true)

	for range 3 {
		got, err := rtc.Get(context.Background(), "API 20E|GLU", "GLU", time.Minute)
		require.NoError(t, err)
		require.Equal(t, "D-Glucose", got)
	}
	require.Equal(t, 3, calls)

	_, ok := cache.Get(context.Background(), "API 20E|GLU")
	require.False(t, ok)
}

func TestReadThroughCache_GetWithRefresh(t *testing.T) {
	cache := NewInMemoryCacheManager[string, string]("resolution-cache", DefaultExpiration, DefaultCleanupInterval)
	calls := 0
	rtc := NewReadThroughCache(cache, func(ctx context.Context, input string) (string, error) {
		calls++
		return "Urease", nil
	}, false)

	got, err := rtc.GetWithRefresh(context.Background(), "API 20E|URE", "URE", time.Minute)
	require.NoError(t, err)
	require.Equal(t, "Urease", got)
	require.Equal(t, 1, calls)

	got, err = rtc.GetWithRefresh(context.Background(), "API 20E|URE", "URE", time.Minute)
	require.NoError(t, err)
	require.Equal(t, "Urease", got)
	require.Equal(t, 1, calls)
}
