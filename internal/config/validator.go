package config

import (
	"fmt"
)

// Validate checks the loaded configuration for values that would break the
// service at runtime rather than failing fast at startup.
func (c *Config) Validate() error {
	if c.APIKey == "" {
		return fmt.Errorf("API_KEY environment variable must be set for security")
	}
	if c.Port <= 0 || c.Port > 65535 {
		return fmt.Errorf("PORT must be between 1 and 65535, got %d", c.Port)
	}
	if c.DBPoolMaxConns < 1 {
		return fmt.Errorf("DB_POOL_MAX_CONNS must be at least 1, got %d", c.DBPoolMaxConns)
	}
	if c.CachePlayerCeiling < 1 {
		return fmt.Errorf("CACHE_PLAYER_CEILING must be at least 1, got %d", c.CachePlayerCeiling)
	}
	if c.PlayerLockTimeout <= 0 {
		return fmt.Errorf("PLAYER_LOCK_TIMEOUT must be positive, got %s", c.PlayerLockTimeout)
	}
	if c.StoreCallTimeout <= 0 {
		return fmt.Errorf("STORE_CALL_TIMEOUT must be positive, got %s", c.StoreCallTimeout)
	}
	if c.GatewayTimeout <= 0 {
		return fmt.Errorf("ECONOMY_GATEWAY_TIMEOUT must be positive, got %s", c.GatewayTimeout)
	}
	return nil
}
