package config

import (
	"time"

	"github.com/riadev/ria-server/utils"
)

type ServerConfig struct {
	Port           string
	RedisURL       string
	MetricsEnabled bool
	SystemMetrics  time.Duration
}

func LoadServerConfig() ServerConfig {
	return ServerConfig{
		Port:           utils.GetEnvAsString("PORT", "8080"),
		RedisURL:       utils.GetEnvAsString("REDIS_URL", "redis://localhost:6379/0"),
		MetricsEnabled: utils.GetEnvAsBool("METRICS_ENABLED", true),
		SystemMetrics:  utils.GetEnvAsDuration("SYSTEM_METRICS_INTERVAL", 30*time.Second),
	}
}
