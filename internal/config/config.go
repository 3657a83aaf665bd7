package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds the application configuration
type Config struct {
	Port        int
	APIKey      string // API key for authentication
	LogLevel    string
	LogFormat   string
	Environment string
	Version     string

	// TrustedProxies are the proxy IPs whose X-Forwarded-For header is honored
	TrustedProxies []string

	// Database
	DBUser           string
	DBPassword       string
	DBHost           string
	DBPort           string
	DBName           string
	DBPoolMaxConns   int
	DBPoolMaxIdle    time.Duration
	DBPoolMaxLife    time.Duration
	StoreCallTimeout time.Duration

	// Economy gateway
	GatewayBaseURL string
	GatewayTimeout time.Duration

	// Ownership cache
	CachePlayerCeiling int
	CacheTTL           time.Duration

	// Per-player serialization
	PlayerLockTimeout time.Duration

	// Catalog
	CatalogConfigPath string

	// Event publishing
	EventMaxRetries     int
	EventRetryDelay     time.Duration
	EventDeadLetterPath string
}

// Load loads the configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if it exists, but don't fail if it doesn't (could be real env vars)
	_ = godotenv.Load()

	cfg := &Config{
		APIKey:              getEnv("API_KEY", ""),
		LogLevel:            getEnv("LOG_LEVEL", "info"),
		LogFormat:           getEnv("LOG_FORMAT", "text"),
		Environment:         getEnv("ENVIRONMENT", "dev"),
		Version:             getEnv("VERSION", "dev"),
		DBUser:              getEnv("DB_USER", "postgres"),
		DBPassword:          getEnv("DB_PASSWORD", "postgres"),
		DBHost:              getEnv("DB_HOST", "localhost"),
		DBPort:              getEnv("DB_PORT", "5432"),
		DBName:              getEnv("DB_NAME", "headstore"),
		GatewayBaseURL:      getEnv("ECONOMY_GATEWAY_URL", ""),
		CatalogConfigPath:   getEnv("CATALOG_CONFIG_PATH", ConfigPathCatalog),
		EventDeadLetterPath: getEnv("EVENT_DEADLETTER_PATH", DefaultEventDeadLetterPath),
	}

	if proxies := getEnv("TRUSTED_PROXIES", ""); proxies != "" {
		for _, p := range strings.Split(proxies, ",") {
			if p = strings.TrimSpace(p); p != "" {
				cfg.TrustedProxies = append(cfg.TrustedProxies, p)
			}
		}
	}

	var err error
	if cfg.Port, err = getEnvInt("PORT", DefaultPort); err != nil {
		return nil, err
	}
	if cfg.DBPoolMaxConns, err = getEnvInt("DB_POOL_MAX_CONNS", DefaultPoolMaxConns); err != nil {
		return nil, err
	}
	if cfg.CachePlayerCeiling, err = getEnvInt("CACHE_PLAYER_CEILING", DefaultCachePlayerCeiling); err != nil {
		return nil, err
	}
	if cfg.DBPoolMaxIdle, err = getEnvDuration("DB_POOL_MAX_IDLE", DefaultPoolMaxIdle); err != nil {
		return nil, err
	}
	if cfg.DBPoolMaxLife, err = getEnvDuration("DB_POOL_MAX_LIFE", DefaultPoolMaxLife); err != nil {
		return nil, err
	}
	if cfg.StoreCallTimeout, err = getEnvDuration("STORE_CALL_TIMEOUT", DefaultStoreCallTimeout); err != nil {
		return nil, err
	}
	if cfg.GatewayTimeout, err = getEnvDuration("ECONOMY_GATEWAY_TIMEOUT", DefaultGatewayTimeout); err != nil {
		return nil, err
	}
	if cfg.CacheTTL, err = getEnvDuration("CACHE_TTL", DefaultCacheTTL); err != nil {
		return nil, err
	}
	if cfg.PlayerLockTimeout, err = getEnvDuration("PLAYER_LOCK_TIMEOUT", DefaultPlayerLockTimeout); err != nil {
		return nil, err
	}
	if cfg.EventMaxRetries, err = getEnvInt("EVENT_MAX_RETRIES", DefaultEventMaxRetries); err != nil {
		return nil, err
	}
	if cfg.EventRetryDelay, err = getEnvDuration("EVENT_RETRY_DELAY", DefaultEventRetryDelay); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) (int, error) {
	value, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue, nil
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("invalid %s value %q: %w", key, value, err)
	}
	return n, nil
}

func getEnvDuration(key string, defaultValue time.Duration) (time.Duration, error) {
	value, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue, nil
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		return 0, fmt.Errorf("invalid %s value %q: %w", key, value, err)
	}
	return d, nil
}

// GetDBConnString returns the PostgreSQL connection string
func (c *Config) GetDBConnString() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable",
		c.DBUser,
		c.DBPassword,
		c.DBHost,
		c.DBPort,
		c.DBName,
	)
}
