// middleware/rate_limiter.go

package middleware

import (
	"context"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"golang.org/x/time/rate"

	logger "github.com/AntazSamir/bd-lifeline-connect-35674-sub000/logging"
)

// Limiter decides whether the client identified by key may proceed.
type Limiter interface {
	Allow(ctx context.Context, key string) (bool, error)
}

func RateLimiter(limiter Limiter, limit int, per time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		key := c.ClientIP()
		allowed, err := limiter.Allow(c.Request.Context(), key)
		if err != nil {
			logger.Error("Rate limiting failed", zap.Error(err), zap.String("ip", key))
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Rate limiting failed"})
			return
		}

		c.Header("X-RateLimit-Limit", strconv.Itoa(limit))
		c.Header("X-RateLimit-Duration", per.String())

		if !allowed {
			logger.Warn("Rate limit exceeded",
				zap.String("ip", key),
				zap.Int("limit", limit),
				zap.Duration("per", per))
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{"error": "Rate limit exceeded"})
			return
		}

		c.Next()
	}
}

// LocalLimiter is a per-key token bucket kept in process memory, used when
// no Redis is configured.
type LocalLimiter struct {
	mu      sync.Mutex
	buckets map[string]*localBucket
	limit   rate.Limit
	burst   int
	ttl     time.Duration
	swept   time.Time
}

type localBucket struct {
	lim  *rate.Limiter
	seen time.Time
}

func NewLocalLimiter(limit int, per time.Duration) *LocalLimiter {
	if limit <= 0 {
		limit = 1
	}
	return &LocalLimiter{
		buckets: make(map[string]*localBucket),
		limit:   rate.Every(per / time.Duration(limit)),
		burst:   limit,
		ttl:     5 * per,
	}
}

func (l *LocalLimiter) Allow(_ context.Context, key string) (bool, error) {
	now := time.Now()

	l.mu.Lock()
	defer l.mu.Unlock()

	b, ok := l.buckets[key]
	if !ok {
		b = &localBucket{lim: rate.NewLimiter(l.limit, l.burst)}
		l.buckets[key] = b
	}
	b.seen = now
	l.evict(now)
	return b.lim.AllowN(now, 1), nil
}

// evict drops idle buckets at most once per ttl; called with mu held.
func (l *LocalLimiter) evict(now time.Time) {
	if now.Sub(l.swept) < l.ttl {
		return
	}
	l.swept = now
	for k, b := range l.buckets {
		if now.Sub(b.seen) > l.ttl {
			delete(l.buckets, k)
		}
	}
}
