package client

import (
	"time"

	"github.com/bytedance/sonic"
	"github.com/jaxron/axonet/middleware/circuitbreaker"
	axonetRedis "github.com/jaxron/axonet/middleware/redis"
	"github.com/jaxron/axonet/middleware/retry"
	"github.com/jaxron/axonet/middleware/singleflight"
	"github.com/jaxron/axonet/pkg/client"
	"github.com/jaxron/axonet/pkg/client/logger"
	"github.com/jaxron/axonet/pkg/client/middleware"
	"github.com/jaxron/roapi.go/pkg/api"
	"github.com/redis/rueidis"
	"github.com/voxelified/mellow-api/internal/setup/config"
	"go.uber.org/zap"
)

// GetRobloxAPIClient constructs an HTTP client with a middleware chain for
// reliability and performance. All Roblox calls made by this service are
// unauthenticated reads, so no cookies are loaded.
func GetRobloxAPIClient(
	cfg *config.Roblox, cacheClient rueidis.Client, axonetLogger logger.Logger, zapLogger *zap.Logger,
) *api.API {
	// Build middleware chain - order matters!
	middlewares := []middleware.Middleware{
		circuitbreaker.New(
			cfg.CircuitBreaker.MaxRequests,
			time.Duration(cfg.CircuitBreaker.Interval)*time.Millisecond,
			time.Duration(cfg.CircuitBreaker.Timeout)*time.Millisecond,
		),
		retry.New(
			cfg.Retry.MaxRetries,
			time.Duration(cfg.Retry.Delay)*time.Millisecond,
			time.Duration(cfg.Retry.MaxDelay)*time.Millisecond,
		),
		singleflight.New(),
		axonetRedis.New(cacheClient, time.Duration(cfg.CacheTTL)*time.Second),
	}

	zapLogger.Debug("Initialized Roblox API client",
		zap.Int("requestTimeout", cfg.RequestTimeout))

	return api.New(nil,
		client.WithMarshalFunc(sonic.Marshal),
		client.WithUnmarshalFunc(sonic.Unmarshal),
		client.WithLogger(axonetLogger),
		client.WithTimeout(time.Duration(cfg.RequestTimeout)*time.Millisecond),
		client.WithMiddleware(middlewares...),
	)
}
