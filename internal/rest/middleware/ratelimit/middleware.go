package ratelimit

import (
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/uptrace/bunrouter"
	"github.com/voxelified/mellow-api/internal/setup/config"
	"github.com/voxelified/mellow-api/pkg/utils"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

const (
	errRateLimit  = "rate limit exceeded"
	headerRetryAt = "Retry-After"

	// limiterTTL bounds how long an idle client's limiter is kept.
	limiterTTL = 10 * time.Minute
)

// Middleware implements per-client rate limiting for API requests.
type Middleware struct {
	limiters *utils.TTLMap[string, *rate.Limiter]
	config   *config.RateLimit
	logger   *zap.Logger
}

// New creates a new rate limiting middleware.
func New(config *config.RateLimit, logger *zap.Logger) *Middleware {
	return &Middleware{
		limiters: utils.NewTTLMap[string, *rate.Limiter](limiterTTL),
		config:   config,
		logger:   logger.Named("ratelimit"),
	}
}

// AsRESTMiddleware returns a bunrouter middleware handler for rate limiting.
func (m *Middleware) AsRESTMiddleware(next bunrouter.HandlerFunc) bunrouter.HandlerFunc {
	return func(w http.ResponseWriter, req bunrouter.Request) error {
		clientIP := clientIP(req.RemoteAddr)

		if retryAfter, allowed := m.checkRateLimit(clientIP); !allowed {
			if retryAfter > 0 {
				w.Header().Set(headerRetryAt, fmt.Sprintf("%.0f", retryAfter.Seconds()))
			}

			http.Error(w, errRateLimit, http.StatusTooManyRequests)

			return nil
		}

		return next(w, req)
	}
}

// checkRateLimit reserves a token for the client and reports how long the
// client must wait when none is available.
func (m *Middleware) checkRateLimit(clientIP string) (time.Duration, bool) {
	limiter := m.getLimiter(clientIP)

	reservation := limiter.Reserve()
	if !reservation.OK() {
		m.logger.Debug("Rate limit exceeded", zap.String("ip", clientIP))
		return 0, false
	}

	if delay := reservation.Delay(); delay > 0 {
		reservation.Cancel()

		m.logger.Debug("Rate limit delay required",
			zap.String("ip", clientIP),
			zap.Duration("delay", delay))

		return delay, false
	}

	return 0, true
}

// getLimiter returns the rate limiter for the specified client.
func (m *Middleware) getLimiter(clientIP string) *rate.Limiter {
	if limiter, exists := m.limiters.Get(clientIP); exists {
		return limiter
	}

	limiter := rate.NewLimiter(rate.Limit(m.config.RequestsPerSecond), m.config.BurstSize)
	m.limiters.Set(clientIP, limiter)

	return limiter
}

// clientIP extracts the client host from a request remote address.
func clientIP(remoteAddr string) string {
	host, _, err := net.SplitHostPort(remoteAddr)
	if err != nil {
		return remoteAddr
	}

	return host
}
