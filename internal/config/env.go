package config

import "os"

// envOrDefault returns the environment variable value or fallback when it is empty.
func envOrDefault(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

// loadFromEnv overrides config from TODO_* environment variables.
func loadFromEnv(cfg *Config) {
	cfg.Addr = envOrDefault("TODO_ADDR", cfg.Addr)
	cfg.DBPath = envOrDefault("TODO_DB_PATH", cfg.DBPath)
	cfg.LogLevel = envOrDefault("TODO_LOG_LEVEL", cfg.LogLevel)
	cfg.LogFormat = envOrDefault("TODO_LOG_FORMAT", cfg.LogFormat)
}
