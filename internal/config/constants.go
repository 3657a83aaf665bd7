package config

import "time"

// Configuration file paths
const (
	ConfigPathCatalog = "configs/catalog.json"
)

// Default values for recognized options
const (
	DefaultPort               = 8080
	DefaultPoolMaxConns       = 10
	DefaultCachePlayerCeiling = 1000

	DefaultPoolMaxIdle       = 5 * time.Minute
	DefaultPoolMaxLife       = 30 * time.Minute
	DefaultStoreCallTimeout  = 3 * time.Second
	DefaultGatewayTimeout    = 3 * time.Second
	DefaultCacheTTL          = 15 * time.Minute
	DefaultPlayerLockTimeout = 5 * time.Second

	DefaultEventMaxRetries     = 5
	DefaultEventRetryDelay     = 2 * time.Second
	DefaultEventDeadLetterPath = "logs/event_deadletter.jsonl"
)
