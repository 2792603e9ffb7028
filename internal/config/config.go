// ABOUTME: Centralized configuration for the topic clustering service
// ABOUTME: Loads from environment variables with validation and defaults
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// Config holds all configuration for the clustering service
type Config struct {
	// Clustering settings
	NumClusters       int
	MinChunksPerGroup int
	MaxIterations     int

	// OpenAI settings (embedding harness only; the engine never calls out)
	OpenAIKey      string
	EmbeddingModel string
	Timeout        time.Duration
	MaxRetries     int
	RetryDelay     time.Duration
}

// Load reads configuration from environment variables
func Load() (*Config, error) {
	cfg := &Config{
		// Defaults
		NumClusters:       getEnvInt("TOPICS_NUM_CLUSTERS", 6),
		MinChunksPerGroup: getEnvInt("TOPICS_MIN_CHUNKS_PER_GROUP", 1),
		MaxIterations:     getEnvInt("TOPICS_MAX_ITERATIONS", 10),
		OpenAIKey:         os.Getenv("OPENAI_API_KEY"),
		EmbeddingModel:    getEnv("TOPICS_EMBEDDING_MODEL", "text-embedding-3-small"),
		Timeout:           getEnvDuration("OPENAI_TIMEOUT", 30*time.Second),
		MaxRetries:        getEnvInt("OPENAI_MAX_RETRIES", 3),
		RetryDelay:        getEnvDuration("OPENAI_RETRY_DELAY", 2*time.Second),
	}

	return cfg, cfg.Validate()
}

func (c *Config) Validate() error {
	if c.NumClusters < 1 {
		return fmt.Errorf("TOPICS_NUM_CLUSTERS must be at least 1, got %d", c.NumClusters)
	}
	if c.MinChunksPerGroup < 1 {
		return fmt.Errorf("TOPICS_MIN_CHUNKS_PER_GROUP must be at least 1, got %d", c.MinChunksPerGroup)
	}
	if c.MaxIterations < 1 {
		return fmt.Errorf("TOPICS_MAX_ITERATIONS must be at least 1, got %d", c.MaxIterations)
	}
	if c.MaxRetries < 0 || c.MaxRetries > 10 {
		return fmt.Errorf("OPENAI_MAX_RETRIES must be 0-10, got %d", c.MaxRetries)
	}
	return nil
}

// Helper functions
func getEnv(key, defaultVal string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return defaultVal
}

func getEnvInt(key string, defaultVal int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return defaultVal
}

func getEnvDuration(key string, defaultVal time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return defaultVal
}
