package client_test

import (
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/rueidis"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/voxelified/mellow-api/internal/setup"
	"github.com/voxelified/mellow-api/internal/setup/client"
	"github.com/voxelified/mellow-api/internal/setup/config"
	"go.uber.org/zap"
)

func TestGetRobloxAPIClient(t *testing.T) {
	t.Parallel()

	// Start miniredis server
	mr, err := miniredis.Run()
	require.NoError(t, err)

	defer mr.Close()

	// Create Redis client
	cacheClient, err := rueidis.NewClient(rueidis.ClientOption{
		InitAddress:  []string{mr.Addr()},
		DisableCache: true,
	})
	require.NoError(t, err)

	defer cacheClient.Close()

	logger := zap.NewNop()

	cfg := &config.Roblox{
		RequestTimeout: 5000,
		Retry: config.Retry{
			MaxRetries: 2,
			Delay:      100,
			MaxDelay:   1000,
		},
		CircuitBreaker: config.CircuitBreaker{
			MaxRequests: 1,
			Interval:    60000,
			Timeout:     30000,
		},
		CacheTTL: 300,
	}

	roAPI := client.GetRobloxAPIClient(cfg, cacheClient, setup.NewLogger(logger), logger)
	require.NotNil(t, roAPI)
	assert.NotNil(t, roAPI.GetClient())
}
