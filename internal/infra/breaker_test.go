package infra

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
)

var errDown = errors.New("down")

func TestBreaker_OpensAfterThreshold(t *testing.T) {
	now := time.Date(2026, 10, 14, 12, 0, 0, 0, time.UTC)
	b := NewBreaker(3, time.Minute)
	b.now = func() time.Time { return now }

	for i := 0; i < 2; i++ {
		assert.True(t, b.Allow())
		b.Record(errDown)
	}
	assert.Equal(t, BreakerClosed, b.State())

	assert.True(t, b.Allow())
	b.Record(errDown)
	assert.Equal(t, BreakerOpen, b.State())
	assert.False(t, b.Allow())
}

func TestBreaker_SuccessResetsFailureCount(t *testing.T) {
	b := NewBreaker(2, time.Minute)
	b.Record(errDown)
	b.Record(nil)
	b.Record(errDown)
	assert.Equal(t, BreakerClosed, b.State())
}

func TestBreaker_HalfOpenAllowsSingleProbe(t *testing.T) {
	now := time.Date(2026, 10, 14, 12, 0, 0, 0, time.UTC)
	b := NewBreaker(1, time.Minute)
	b.now = func() time.Time { return now }

	b.Record(errDown)
	assert.Equal(t, BreakerOpen, b.State())

	now = now.Add(time.Minute)
	assert.Equal(t, BreakerHalfOpen, b.State())
	assert.True(t, b.Allow())
	assert.False(t, b.Allow(), "only one probe while half-open")

	b.Record(errDown)
	assert.Equal(t, BreakerOpen, b.State())

	now = now.Add(time.Minute)
	assert.True(t, b.Allow())
	b.Record(nil)
	assert.Equal(t, BreakerClosed, b.State())
	assert.True(t, b.Allow())
}

func TestBreakerState_String(t *testing.T) {
	assert.Equal(t, "closed", BreakerClosed.String())
	assert.Equal(t, "open", BreakerOpen.String())
	assert.Equal(t, "half-open", BreakerHalfOpen.String())
	assert.Equal(t, "unknown", BreakerState(9).String())
}

func TestResumenCache_NilClientIsDisabled(t *testing.T) {
	c := NewResumenCache(nil, time.Minute)
	var dest map[string]string
	assert.False(t, c.Get(context.Background(), ResumenVentasKey, &dest))
	c.Set(context.Background(), ResumenVentasKey, map[string]string{"a": "b"})
	c.Invalidate(context.Background())
	assert.Empty(t, c.Key(context.Background(), ResumenVentasKey, "2026-10-14"))
	assert.Equal(t, "disabled", c.Status())
}

func TestResumenCache_UnreachableRedisTripsBreaker(t *testing.T) {
	rdb := redis.NewClient(&redis.Options{
		Addr:        "127.0.0.1:1",
		MaxRetries:  -1,
		DialTimeout: 200 * time.Millisecond,
	})
	t.Cleanup(func() { _ = rdb.Close() })
	c := NewResumenCache(rdb, time.Minute)
	ctx := context.Background()
	assert.Equal(t, "closed", c.Status())

	var dest map[string]string
	for i := 0; i < cacheFailureThreshold; i++ {
		assert.False(t, c.Get(ctx, ResumenVentasKey, &dest))
	}
	assert.Equal(t, "open", c.Status())
	// skipped without touching Redis
	assert.False(t, c.Get(ctx, ResumenVentasKey, &dest))
	assert.Empty(t, c.Key(ctx, ResumenVentasKey, "2026-10-14"))
}
