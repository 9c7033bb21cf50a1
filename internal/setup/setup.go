package setup

import (
	"context"
	"log"

	"github.com/jaxron/roapi.go/pkg/api"
	"github.com/voxelified/mellow-api/internal/database"
	"github.com/voxelified/mellow-api/internal/discord"
	"github.com/voxelified/mellow-api/internal/redis"
	"github.com/voxelified/mellow-api/internal/setup/client"
	"github.com/voxelified/mellow-api/internal/setup/config"
	"go.uber.org/zap"
)

// App bundles all core dependencies and services needed by the application.
// Each field represents a major subsystem that needs initialization and cleanup.
type App struct {
	Config       *config.Config          // Application configuration
	Logger       *zap.Logger             // Main application logger
	DBLogger     *zap.Logger             // Database-specific logger
	DB           database.Client         // Database connection pool
	RoAPI        *api.API                // Roblox API HTTP client
	RedisManager *redis.Manager          // Redis connection manager
	Guard        *discord.MembershipGuard // Discord server membership checks
}

// InitializeApp bootstraps all application dependencies in the correct order,
// ensuring each component has its required dependencies available.
func InitializeApp(ctx context.Context, logDir string) (*App, error) {
	// Load app configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, err
	}

	// Logging system is initialized next to capture setup issues
	logger, dbLogger, err := GetLoggers(logDir, cfg.Debug.LogLevel, cfg.Debug.MaxLogsToKeep)
	if err != nil {
		return nil, err
	}

	// Redis manager provides connection pools for various subsystems
	redisManager := redis.NewManager(&cfg.Redis, logger)

	// Initialize database with automatic migrations
	db, err := database.NewConnection(ctx, &cfg.PostgreSQL, dbLogger.Named("database"), true)
	if err != nil {
		return nil, err
	}

	// Roblox API client is configured with a caching middleware chain
	cacheClient, err := redisManager.GetClient(redis.CacheDBIndex)
	if err != nil {
		return nil, err
	}

	roAPI := client.GetRobloxAPIClient(&cfg.Roblox, cacheClient, NewLogger(logger), logger)

	// Membership guard uses a rest-only Discord client
	guard := discord.NewMembershipGuard(cfg.Discord.BotToken, logger)

	// Bundle all initialized components
	return &App{
		Config:       cfg,
		Logger:       logger,
		DBLogger:     dbLogger,
		DB:           db,
		RoAPI:        roAPI,
		RedisManager: redisManager,
		Guard:        guard,
	}, nil
}

// Cleanup ensures graceful shutdown of all components in reverse initialization order.
// Logs but does not fail on cleanup errors to ensure all components get cleanup attempts.
func (s *App) Cleanup() {
	// Sync buffered logs before shutdown
	if err := s.Logger.Sync(); err != nil {
		log.Printf("Failed to sync logger: %v", err)
	}

	if err := s.DBLogger.Sync(); err != nil {
		log.Printf("Failed to sync DB logger: %v", err)
	}

	// Close database connection
	if err := s.DB.Close(); err != nil {
		log.Printf("Failed to close database connection: %v", err)
	}

	// Close Redis connections
	s.RedisManager.Close()
}
