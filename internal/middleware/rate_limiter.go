package middleware

import (
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/FranCa26/InvenLink-24-7/internal/apierror"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

const purgeInterval = 5 * time.Minute

// rateEntry tracks request counts per IP within a fixed window.
type rateEntry struct {
	count     int
	windowEnd time.Time
}

// RateLimiter counts requests per client IP in fixed windows. Expired
// entries are dropped lazily, at most once per purgeInterval.
type RateLimiter struct {
	limit   int
	window  time.Duration
	message string
	now     func() time.Time

	mu        sync.Mutex
	entries   map[string]*rateEntry
	lastPurge time.Time
}

// NewRateLimiter allows limit requests per window per IP. A limit <= 0
// disables limiting.
func NewRateLimiter(limit int, window time.Duration, message string) *RateLimiter {
	return &RateLimiter{
		limit:   limit,
		window:  window,
		message: message,
		now:     time.Now,
		entries: make(map[string]*rateEntry),
	}
}

// Allow records one request from ip and reports whether it is within the
// limit, plus the end of the current window.
func (l *RateLimiter) Allow(ip string) (bool, time.Time) {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	if now.Sub(l.lastPurge) >= purgeInterval {
		l.purge(now)
	}

	entry, ok := l.entries[ip]
	if !ok || now.After(entry.windowEnd) {
		entry = &rateEntry{windowEnd: now.Add(l.window)}
		l.entries[ip] = entry
	}
	entry.count++
	return entry.count <= l.limit, entry.windowEnd
}

func (l *RateLimiter) purge(now time.Time) {
	purged := 0
	for ip, entry := range l.entries {
		if now.After(entry.windowEnd) {
			delete(l.entries, ip)
			purged++
		}
	}
	l.lastPurge = now
	if purged > 0 {
		log.Debug().
			Int("entries_purged", purged).
			Int("entries_remaining", len(l.entries)).
			Msg("rate limiter purged")
	}
}

// Middleware answers 429 once an IP exceeds the limit.
func (l *RateLimiter) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if l.limit <= 0 {
			c.Next()
			return
		}
		ok, windowEnd := l.Allow(c.ClientIP())
		if !ok {
			retry := int(windowEnd.Sub(l.now()).Seconds()) + 1
			c.Header("Retry-After", strconv.Itoa(retry))
			c.AbortWithStatusJSON(http.StatusTooManyRequests, apierror.New(l.message))
			return
		}
		c.Next()
	}
}

// APIRateLimit is the general per-IP limiter for every route.
func APIRateLimit(perMinute int) gin.HandlerFunc {
	return NewRateLimiter(perMinute, time.Minute, "Demasiadas solicitudes. Intente nuevamente en un momento.").Middleware()
}

// LoginRateLimit throttles credential guessing on the login route.
func LoginRateLimit(perMinute int) gin.HandlerFunc {
	return NewRateLimiter(perMinute, time.Minute, "Demasiados intentos de login. Intente en 1 minuto.").Middleware()
}
