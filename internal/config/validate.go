package config

import (
	"fmt"
)

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if len(c.Auth.JWTSecret) < 32 {
		return fmt.Errorf("auth.jwt_secret must be at least 32 characters (got %d)", len(c.Auth.JWTSecret))
	}
	if c.Auth.AccessTokenTTL <= 0 {
		return fmt.Errorf("auth.access_token_ttl must be > 0 (got %v)", c.Auth.AccessTokenTTL)
	}
	// bcrypt accepts costs 4..31.
	if c.Auth.PasswordHashCost < 4 || c.Auth.PasswordHashCost > 31 {
		return fmt.Errorf("auth.password_hash_cost must be in [4, 31] (got %d)", c.Auth.PasswordHashCost)
	}

	if c.Thread.MaxDepth < 1 || c.Thread.MaxDepth > 64 {
		return fmt.Errorf("thread.max_depth must be in [1, 64] (got %d)", c.Thread.MaxDepth)
	}

	if c.Profile.NotificationLimit < 1 || c.Profile.NotificationLimit > 500 {
		return fmt.Errorf("profile.notification_limit must be in [1, 500] (got %d)", c.Profile.NotificationLimit)
	}

	if c.RateLimit.AuthPerMinute < 1 {
		return fmt.Errorf("rate_limit.auth_per_minute must be >= 1 (got %d)", c.RateLimit.AuthPerMinute)
	}

	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port must be in [1, 65535] (got %d)", c.Server.Port)
	}

	return nil
}
