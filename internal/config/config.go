package config

import (
	"fmt"
	"os"
	"strconv"
)

// Config holds all application configuration.
type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	Logger   LoggerConfig
	LLM      LLMConfig
	Scraper  ScraperConfig
}

// ServerConfig holds server-related configuration.
type ServerConfig struct {
	Host string
	Port int
}

// DatabaseConfig holds the SQLite store configuration.
type DatabaseConfig struct {
	Path string
}

// LoggerConfig holds logger-related configuration.
type LoggerConfig struct {
	Level  string
	Format string // "json" or "console"
}

// LLMConfig holds the chat-completions API configuration. APIKey may be
// empty, in which case /api/chat reports the coach as unavailable.
type LLMConfig struct {
	APIKey  string
	BaseURL string
	Model   string
}

// ScraperConfig holds the upstream dining API configuration.
type ScraperConfig struct {
	BaseURL        string
	SiteSlug       string
	RequestDelayMS int
	MaxRetries     int
	TimeoutSeconds int
}

// Load loads configuration from environment variables.
func Load() (*Config, error) {
	cfg := &Config{
		Server: ServerConfig{
			Host: getEnv("SERVER_HOST", "0.0.0.0"),
			Port: getEnvAsInt("SERVER_PORT", 8080),
		},
		Database: DatabaseConfig{
			Path: getEnv("DB_PATH", "menumap.db"),
		},
		Logger: LoggerConfig{
			Level:  getEnv("LOG_LEVEL", "info"),
			Format: getEnv("LOG_FORMAT", "json"),
		},
		LLM: LLMConfig{
			APIKey:  getEnv("LLM_API_KEY", ""),
			BaseURL: getEnv("LLM_BASE_URL", "https://api.openai.com/v1"),
			Model:   getEnv("LLM_MODEL", "gpt-4o-mini"),
		},
		Scraper: ScraperConfig{
			BaseURL:        getEnv("SCRAPER_BASE_URL", "https://api.dineoncampus.com/v1"),
			SiteSlug:       getEnv("SCRAPER_SITE_SLUG", "NYUeats"),
			RequestDelayMS: getEnvAsInt("SCRAPER_REQUEST_DELAY_MS", 1500),
			MaxRetries:     getEnvAsInt("SCRAPER_MAX_RETRIES", 3),
			TimeoutSeconds: getEnvAsInt("SCRAPER_TIMEOUT_SECONDS", 30),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return cfg, nil
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid server port: %d", c.Server.Port)
	}

	if c.Database.Path == "" {
		return fmt.Errorf("database path is required")
	}

	validLogLevels := map[string]bool{
		"debug": true,
		"info":  true,
		"warn":  true,
		"error": true,
	}

	if !validLogLevels[c.Logger.Level] {
		return fmt.Errorf("invalid log level: %s (must be debug, info, warn, or error)", c.Logger.Level)
	}

	if c.Logger.Format != "json" && c.Logger.Format != "console" {
		return fmt.Errorf("invalid log format: %s (must be json or console)", c.Logger.Format)
	}

	if c.LLM.BaseURL == "" {
		return fmt.Errorf("LLM base URL is required")
	}

	if c.LLM.Model == "" {
		return fmt.Errorf("LLM model is required")
	}

	if c.Scraper.BaseURL == "" {
		return fmt.Errorf("scraper base URL is required")
	}

	if c.Scraper.SiteSlug == "" {
		return fmt.Errorf("scraper site slug is required")
	}

	if c.Scraper.RequestDelayMS < 0 {
		return fmt.Errorf("scraper request delay cannot be negative")
	}

	if c.Scraper.MaxRetries < 0 {
		return fmt.Errorf("scraper max retries cannot be negative")
	}

	if c.Scraper.TimeoutSeconds < 1 {
		return fmt.Errorf("scraper timeout must be at least 1 second")
	}

	return nil
}

// Address returns the server address.
func (c *ServerConfig) Address() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// getEnv retrieves an environment variable or returns a default value.
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvAsInt retrieves an environment variable as an integer or returns a default value.
func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}
