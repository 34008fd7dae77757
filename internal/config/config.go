package config

import (
	"fmt"
	"os"
	"strconv"
)

type Config struct {
	Server  ServerConfig
	DB      DatabaseConfig
	Geocode GeocodeConfig
	News    NewsConfig
	Logging LoggingConfig
}

type ServerConfig struct {
	Host string
	Port int
}

type DatabaseConfig struct {
	Path string
}

type GeocodeConfig struct {
	BaseURL   string
	UserAgent string
}

type NewsConfig struct {
	BaseURL string
	APIKey  string
	Query   string
}

type LoggingConfig struct {
	Level string
}

func Load() (*Config, error) {
	cfg := &Config{
		Server: ServerConfig{
			Host: getEnv("SERVER_HOST", "localhost"),
			Port: getEnvInt("SERVER_PORT", 3001),
		},
		DB: DatabaseConfig{
			Path: getEnv("DB_PATH", "./data/relief.db"),
		},
		Geocode: GeocodeConfig{
			BaseURL:   getEnv("NOMINATIM_URL", "https://nominatim.openstreetmap.org"),
			UserAgent: getEnv("NOMINATIM_USER_AGENT", "ReliefCoordinationApp/1.0 (ops@relieflink.example)"),
		},
		News: NewsConfig{
			BaseURL: getEnv("NEWS_API_URL", "https://newsapi.org"),
			APIKey:  getEnv("NEWS_API_KEY", ""),
			Query:   getEnv("NEWS_QUERY", "Technology"),
		},
		Logging: LoggingConfig{
			Level: getEnv("LOG_LEVEL", "info"),
		},
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) validate() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid server port: %d", c.Server.Port)
	}

	validLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLevels[c.Logging.Level] {
		return fmt.Errorf("invalid log level: %s", c.Logging.Level)
	}

	if c.Geocode.BaseURL == "" {
		return fmt.Errorf("geocode base URL must not be empty")
	}
	if c.Geocode.UserAgent == "" {
		return fmt.Errorf("geocode user agent must not be empty")
	}
	if c.News.BaseURL == "" {
		return fmt.Errorf("news base URL must not be empty")
	}

	return nil
}

func getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if val := os.Getenv(key); val != "" {
		if i, err := strconv.Atoi(val); err == nil {
			return i
		}
	}
	return fallback
}
