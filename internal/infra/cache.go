package infra

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

const (
	ResumenEntradasKey = "resumen:entradas"
	ResumenVentasKey   = "resumen:ventas"
)

const (
	cacheFailureThreshold = 3
	cacheCooldown         = 30 * time.Second
)

// generationKey counts invalidations. Summary keys embed its value, so a
// summary computed before a write lands under a generation nobody reads.
const generationKey = "resumen:generacion"

// ResumenCache keeps dashboard summaries in Redis as JSON. A cache built on a
// nil client is a no-op. Redis errors are logged and never returned:
// a failing cache behaves as a permanent miss, and after repeated failures
// the breaker stops it from calling Redis at all until the cooldown passes.
type ResumenCache struct {
	rdb     *redis.Client
	ttl     time.Duration
	breaker *Breaker
}

func NewResumenCache(rdb *redis.Client, ttl time.Duration) *ResumenCache {
	return &ResumenCache{
		rdb:     rdb,
		ttl:     ttl,
		breaker: NewBreaker(cacheFailureThreshold, cacheCooldown),
	}
}

func (c *ResumenCache) enabled() bool { return c != nil && c.rdb != nil && c.ttl > 0 }

// Status is "disabled" without Redis, otherwise the breaker state.
func (c *ResumenCache) Status() string {
	if !c.enabled() {
		return "disabled"
	}
	return c.breaker.State().String()
}

// Key scopes base to the store day and the current generation. It must be
// taken before the summary is computed. An empty key means the cache is
// unavailable; Get and Set ignore it.
func (c *ResumenCache) Key(ctx context.Context, base, dia string) string {
	if !c.enabled() || !c.breaker.Allow() {
		return ""
	}
	gen, err := c.rdb.Get(ctx, generationKey).Int64()
	if errors.Is(err, redis.Nil) {
		gen, err = 0, nil
	}
	c.breaker.Record(err)
	if err != nil {
		log.Warn().Err(err).Msg("resumen cache: generation read failed")
		return ""
	}
	return fmt.Sprintf("%s:%s:%d", base, dia, gen)
}

// Get decodes the cached value for key into dest and reports whether it hit.
func (c *ResumenCache) Get(ctx context.Context, key string, dest interface{}) bool {
	if key == "" || !c.enabled() || !c.breaker.Allow() {
		return false
	}
	b, err := c.rdb.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		c.breaker.Record(nil)
		return false
	}
	c.breaker.Record(err)
	if err != nil {
		log.Warn().Err(err).Str("key", key).Msg("resumen cache: get failed")
		return false
	}
	if err := json.Unmarshal(b, dest); err != nil {
		log.Warn().Err(err).Str("key", key).Msg("resumen cache: corrupt entry")
		return false
	}
	return true
}

// Set stores v under key for the configured TTL; failures are only logged.
func (c *ResumenCache) Set(ctx context.Context, key string, v interface{}) {
	if key == "" || !c.enabled() {
		return
	}
	b, err := json.Marshal(v)
	if err != nil || !c.breaker.Allow() {
		return
	}
	err = c.rdb.Set(ctx, key, b, c.ttl).Err()
	c.breaker.Record(err)
	if err != nil {
		log.Warn().Err(err).Str("key", key).Msg("resumen cache: set failed")
	}
}

// Invalidate starts a new generation, retiring every cached summary. It
// always tries Redis, even with the breaker open, so a recovered Redis never
// serves a summary older than the last movement it was told about.
func (c *ResumenCache) Invalidate(ctx context.Context) {
	if !c.enabled() {
		return
	}
	err := c.rdb.Incr(ctx, generationKey).Err()
	c.breaker.Record(err)
	if err != nil {
		log.Warn().Err(err).Msg("resumen cache: invalidate failed")
	}
}
