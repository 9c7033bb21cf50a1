package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/knadh/koanf/parsers/toml/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

var (
	ErrConfigFileNotFound    = errors.New("could not find config file in any config path")
	ErrConfigVersionMissing  = errors.New("config file is missing version field")
	ErrConfigVersionMismatch = errors.New("config file version mismatch")
)

// CurrentVersion of the config file.
const CurrentVersion = 1

// Config represents the entire application configuration.
type Config struct {
	// Version of the config file.
	Version    int        `koanf:"version"`
	Debug      Debug      `koanf:"debug"`
	PostgreSQL PostgreSQL `koanf:"postgresql"`
	Redis      Redis      `koanf:"redis"`
	API        API        `koanf:"api"`
	Discord    Discord    `koanf:"discord"`
	Session    Session    `koanf:"session"`
	Roblox     Roblox     `koanf:"roblox"`
}

// Debug contains debug-related configuration.
type Debug struct {
	// Log level (debug, info, warn, error).
	LogLevel string `koanf:"log_level"`
	// Maximum log files to keep.
	MaxLogsToKeep int `koanf:"max_logs_to_keep"`
}

// PostgreSQL contains database connection configuration.
type PostgreSQL struct {
	Host         string `koanf:"host"`           // Database hostname
	Port         int    `koanf:"port"`           // Database port
	User         string `koanf:"user"`           // Database username
	Password     string `koanf:"password"`       // Database password
	DBName       string `koanf:"db_name"`        // Database name
	MaxOpenConns int    `koanf:"max_open_conns"` // Maximum open connections
	MaxIdleConns int    `koanf:"max_idle_conns"` // Maximum idle connections
	MaxLifetime  int    `koanf:"max_lifetime"`   // Connection lifetime in minutes
	MaxIdleTime  int    `koanf:"max_idle_time"`  // Idle timeout in minutes
}

// Redis contains Redis connection configuration.
type Redis struct {
	Host     string `koanf:"host"`     // Redis hostname
	Port     int    `koanf:"port"`     // Redis port
	Username string `koanf:"username"` // Redis username
	Password string `koanf:"password"` // Redis password
}

// API contains HTTP server configuration.
type API struct {
	Server    Server    `koanf:"server"`
	RateLimit RateLimit `koanf:"rate_limit"`
}

// Server contains listen address configuration.
type Server struct {
	Host string `koanf:"host"` // Listen address
	Port int    `koanf:"port"` // Listen port
}

// RateLimit contains API rate limit configuration.
type RateLimit struct {
	// Sustained requests per second allowed per client.
	RequestsPerSecond float64 `koanf:"requests_per_second"`
	// Burst size allowed per client.
	BurstSize int `koanf:"burst_size"`
}

// Discord contains Discord API configuration.
type Discord struct {
	// Bot token used for server membership lookups.
	BotToken string `koanf:"bot_token"`
}

// Session contains session token configuration.
type Session struct {
	// HS256 secret shared with the identity provider.
	JWTSecret string `koanf:"jwt_secret"`
}

// Roblox contains outbound Roblox API client configuration.
type Roblox struct {
	// Request timeout in milliseconds.
	RequestTimeout int `koanf:"request_timeout"`
	// Retry configuration.
	Retry Retry `koanf:"retry"`
	// Circuit breaker configuration.
	CircuitBreaker CircuitBreaker `koanf:"circuit_breaker"`
	// Response cache TTL in seconds.
	CacheTTL int `koanf:"cache_ttl"`
}

// Retry contains retry configuration for the Roblox client.
type Retry struct {
	// Maximum retry attempts.
	MaxRetries uint64 `koanf:"max_retries"`
	// Initial delay between retries in milliseconds.
	Delay int `koanf:"delay"`
	// Maximum delay between retries in milliseconds.
	MaxDelay int `koanf:"max_delay"`
}

// CircuitBreaker contains circuit breaker configuration for the Roblox client.
type CircuitBreaker struct {
	// Maximum number of requests allowed to pass through when the circuit is half-open.
	MaxRequests uint32 `koanf:"max_requests"`
	// The cyclic period of the closed state for the circuit breaker to clear the internal counts.
	Interval int `koanf:"interval"`
	// The period of the open state after which the state of the circuit breaker becomes half-open.
	Timeout int `koanf:"timeout"`
}

// LoadConfig loads the config file from the default search paths.
func LoadConfig() (*Config, error) {
	k := koanf.New(".")

	// Get user's home directory
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return nil, fmt.Errorf("failed to get home directory: %w", err)
	}

	// List search paths
	configPaths := []string{
		".mellow",
		homeDir + "/.mellow/config",
		"/etc/mellow/config",
		"/app/config",
		"config",
		".",
	}

	// Load the first config file found
	configLoaded := false

	for _, path := range configPaths {
		configPath := fmt.Sprintf("%s/config.toml", path)
		if err := k.Load(file.Provider(configPath), toml.Parser()); err == nil {
			configLoaded = true
			break
		}
	}

	if !configLoaded {
		return nil, fmt.Errorf("%w: config.toml", ErrConfigFileNotFound)
	}

	var config Config
	if err := k.Unmarshal("", &config); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	// Check config version
	if config.Version == 0 {
		return nil, ErrConfigVersionMissing
	}

	if config.Version != CurrentVersion {
		return nil, fmt.Errorf("%w: found version %d, expected %d",
			ErrConfigVersionMismatch, config.Version, CurrentVersion)
	}

	return &config, nil
}
