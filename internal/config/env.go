package config

import (
	"os"

	"github.com/joho/godotenv"
)

const (
	defaultRedisURL  = "redis://127.0.0.1:6379"
	defaultIndexName = "idx:books"
)

// loads configuration from environment variables
func LoadEnvironmentVariables() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		_ = err // not an error - production environments may not have .env file
	}

	cfg := &Config{
		RedisURL:      os.Getenv("REDIS_URL"),
		IndexName:     os.Getenv("INDEX_NAME"),
		EmbedderURL:   os.Getenv("EMBEDDER_URL"),
		EmbedderKey:   os.Getenv("EMBEDDER_API_KEY"),
		EmbedderModel: os.Getenv("EMBEDDER_MODEL"),
		Environment:   os.Getenv("ENVIRONMENT"),
	}

	if cfg.RedisURL == "" {
		cfg.RedisURL = defaultRedisURL
	}

	if cfg.IndexName == "" {
		cfg.IndexName = defaultIndexName
	}

	if cfg.Environment == "" {
		cfg.Environment = "development"
	}

	return cfg, nil
}
