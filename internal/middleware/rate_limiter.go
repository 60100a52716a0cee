package middleware

import (
	"context"
	"strings"
	"sync"
	"time"

	"investment-dashboard/internal/errors"
	"investment-dashboard/internal/handlers"

	"github.com/labstack/echo/v4"
	"golang.org/x/time/rate"
)

const (
	defaultRequestsPerSecond = 5
	defaultBurstSize         = 10
	visitorTTL               = 3 * time.Minute
	cleanupInterval          = time.Minute
)

type visitor struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// RateLimiterConfig configures the per-IP token bucket
type RateLimiterConfig struct {
	RequestsPerSecond int
	Burst             int
	// Skip exempts requests such as health probes and metric scrapes
	Skip func(c echo.Context) bool
}

// visitorStore keeps one limiter per client IP
type visitorStore struct {
	mu       sync.Mutex
	visitors map[string]*visitor
	limit    rate.Limit
	burst    int
	now      func() time.Time
}

func newVisitorStore(rps, burst int) *visitorStore {
	if rps <= 0 {
		rps = defaultRequestsPerSecond
	}
	if burst <= 0 {
		burst = rps * 2
	}
	return &visitorStore{
		visitors: make(map[string]*visitor),
		limit:    rate.Limit(rps),
		burst:    burst,
		now:      time.Now,
	}
}

func (s *visitorStore) get(ip string) *rate.Limiter {
	s.mu.Lock()
	defer s.mu.Unlock()

	v, exists := s.visitors[ip]
	if !exists {
		v = &visitor{limiter: rate.NewLimiter(s.limit, s.burst)}
		s.visitors[ip] = v
	}
	v.lastSeen = s.now()
	return v.limiter
}

// sweep removes visitors idle for longer than ttl
func (s *visitorStore) sweep(ttl time.Duration) {
	s.mu.Lock()
	defer s.mu.Unlock()

	cutoff := s.now().Add(-ttl)
	for ip, v := range s.visitors {
		if v.lastSeen.Before(cutoff) {
			delete(s.visitors, ip)
		}
	}
}

func (s *visitorStore) len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.visitors)
}

// RateLimiter creates a middleware for rate limiting requests per IP with the
// default limits. The cleanup goroutine stops when ctx is done.
func RateLimiter(ctx context.Context) echo.MiddlewareFunc {
	return RateLimiterWithConfig(ctx, RateLimiterConfig{
		RequestsPerSecond: defaultRequestsPerSecond,
		Burst:             defaultBurstSize,
	})
}

// RateLimiterWithConfig creates a rate limiter with custom configuration
func RateLimiterWithConfig(ctx context.Context, cfg RateLimiterConfig) echo.MiddlewareFunc {
	store := newVisitorStore(cfg.RequestsPerSecond, cfg.Burst)
	go cleanupVisitors(ctx, store)
	return rateLimit(store, cfg.Skip)
}

func rateLimit(store *visitorStore, skip func(c echo.Context) bool) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if skip != nil && skip(c) {
				return next(c)
			}

			if !store.get(getIP(c)).Allow() {
				return handlers.SendError(c, errors.SystemRateLimitExceeded)
			}

			return next(c)
		}
	}
}

// SkipOperationalPaths exempts /health and /metrics from rate limiting
func SkipOperationalPaths(c echo.Context) bool {
	path := c.Request().URL.Path
	return path == "/health" || path == "/metrics"
}

func getIP(c echo.Context) string {
	xff := c.Request().Header.Get("X-Forwarded-For")
	if xff != "" {
		return strings.TrimSpace(strings.Split(xff, ",")[0])
	}

	xri := c.Request().Header.Get("X-Real-IP")
	if xri != "" {
		return xri
	}

	return c.RealIP()
}

func cleanupVisitors(ctx context.Context, store *visitorStore) {
	ticker := time.NewTicker(cleanupInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			store.sweep(visitorTTL)
		}
	}
}
