package server

import (
	"net/http"
	"strconv"
	"sync"
	"time"

	lru "github.com/hashicorp/golang-lru/v2"
	"golang.org/x/time/rate"

	"github.com/osse101/foundry90/internal/logger"
)

// UserRateLimiter applies a token bucket per caller. Callers are keyed by
// X-User-ID and fall back to client IP. The key set is bounded by an LRU so
// idle callers are evicted.
type UserRateLimiter struct {
	mu       sync.Mutex
	limiters *lru.Cache[string, *rate.Limiter]
	limit    rate.Limit
	burst    int
}

// NewUserRateLimiter allows perMinute requests per caller with a burst of
// half that
func NewUserRateLimiter(perMinute, maxKeys int) *UserRateLimiter {
	if perMinute <= 0 {
		perMinute = DefaultRequestsPerMin
	}
	if maxKeys <= 0 {
		maxKeys = DefaultRateLimitKeys
	}
	cache, err := lru.New[string, *rate.Limiter](maxKeys)
	if err != nil {
		// lru.New only fails on a non-positive size
		panic(err)
	}
	return &UserRateLimiter{
		limiters: cache,
		limit:    rate.Every(time.Minute / time.Duration(perMinute)),
		burst:    max(perMinute/2, 1),
	}
}

// Allow reports whether the caller may proceed now
func (l *UserRateLimiter) Allow(key string) bool {
	return l.get(key).Allow()
}

func (l *UserRateLimiter) get(key string) *rate.Limiter {
	l.mu.Lock()
	defer l.mu.Unlock()

	if limiter, ok := l.limiters.Get(key); ok {
		return limiter
	}
	limiter := rate.NewLimiter(l.limit, l.burst)
	l.limiters.Add(key, limiter)
	return limiter
}

// RateLimitMiddleware rejects callers over their budget with 429. Public
// paths are not limited.
func RateLimitMiddleware(limiter *UserRateLimiter, trustedProxies []string) func(http.Handler) http.Handler {
	retryAfter := strconv.Itoa(max(int(time.Duration(float64(time.Second)/float64(limiter.limit)).Seconds()), 1))

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if isPublicPath(r.URL.Path) {
				next.ServeHTTP(w, r)
				return
			}

			key := r.Header.Get(HeaderUserID)
			if key == "" {
				key = "ip:" + extractIP(r, trustedProxies)
			}

			if !limiter.Allow(key) {
				logger.FromContext(r.Context()).Warn(LogMsgRateLimited, "key", key, "path", r.URL.Path)
				w.Header().Set(HeaderRetryAfter, retryAfter)
				http.Error(w, ErrMsgTooManyRequests, http.StatusTooManyRequests)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
