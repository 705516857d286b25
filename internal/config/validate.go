package config

import (
	"fmt"
	"strings"
	"time"
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

	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port must be in 1..65535 (got %d)", c.Server.Port)
	}

	if c.Database.MinConns > c.Database.MaxConns {
		return fmt.Errorf("database.min_conns (%d) must not exceed max_conns (%d)", c.Database.MinConns, c.Database.MaxConns)
	}

	if err := c.Redis.validate(); err != nil {
		return fmt.Errorf("redis: %w", err)
	}

	if c.Jobs.Enabled {
		if c.Jobs.ReminderInterval < time.Second {
			return fmt.Errorf("jobs.reminder_interval must be at least 1s (got %v)", c.Jobs.ReminderInterval)
		}
		if !c.Redis.Enabled() {
			return fmt.Errorf("jobs.enabled requires redis.addr")
		}
	}

	switch strings.ToLower(c.Log.Format) {
	case "json", "text":
	default:
		return fmt.Errorf("log.format must be json or text (got %q)", c.Log.Format)
	}

	return nil
}

func (r *RedisConfig) validate() error {
	if !r.Enabled() {
		return nil
	}
	if r.DB < 0 {
		return fmt.Errorf("db must be >= 0 (got %d)", r.DB)
	}
	if r.LessonTTL <= 0 {
		return fmt.Errorf("lesson_ttl must be > 0 (got %v)", r.LessonTTL)
	}
	if strings.TrimSpace(r.ReminderChannel) == "" {
		return fmt.Errorf("reminder_channel is required")
	}
	return nil
}
