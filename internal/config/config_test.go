// ABOUTME: Tests for configuration loading and validation
// ABOUTME: Verifies defaults, environment overrides, and invalid values
package config

import (
	"testing"
	"time"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.NumClusters != 6 {
		t.Errorf("NumClusters = %d, want 6", cfg.NumClusters)
	}
	if cfg.MinChunksPerGroup != 1 {
		t.Errorf("MinChunksPerGroup = %d, want 1", cfg.MinChunksPerGroup)
	}
	if cfg.MaxIterations != 10 {
		t.Errorf("MaxIterations = %d, want 10", cfg.MaxIterations)
	}
	if cfg.EmbeddingModel != "text-embedding-3-small" {
		t.Errorf("EmbeddingModel = %q, want text-embedding-3-small", cfg.EmbeddingModel)
	}
	if cfg.Timeout != 30*time.Second {
		t.Errorf("Timeout = %v, want 30s", cfg.Timeout)
	}
	if cfg.MaxRetries != 3 {
		t.Errorf("MaxRetries = %d, want 3", cfg.MaxRetries)
	}
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("TOPICS_NUM_CLUSTERS", "4")
	t.Setenv("TOPICS_MIN_CHUNKS_PER_GROUP", "2")
	t.Setenv("TOPICS_MAX_ITERATIONS", "25")
	t.Setenv("TOPICS_EMBEDDING_MODEL", "text-embedding-3-large")
	t.Setenv("OPENAI_RETRY_DELAY", "5s")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.NumClusters != 4 {
		t.Errorf("NumClusters = %d, want 4", cfg.NumClusters)
	}
	if cfg.MinChunksPerGroup != 2 {
		t.Errorf("MinChunksPerGroup = %d, want 2", cfg.MinChunksPerGroup)
	}
	if cfg.MaxIterations != 25 {
		t.Errorf("MaxIterations = %d, want 25", cfg.MaxIterations)
	}
	if cfg.EmbeddingModel != "text-embedding-3-large" {
		t.Errorf("EmbeddingModel = %q, want text-embedding-3-large", cfg.EmbeddingModel)
	}
	if cfg.RetryDelay != 5*time.Second {
		t.Errorf("RetryDelay = %v, want 5s", cfg.RetryDelay)
	}
}

func TestLoad_InvalidIntFallsBackToDefault(t *testing.T) {
	t.Setenv("TOPICS_NUM_CLUSTERS", "not-a-number")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.NumClusters != 6 {
		t.Errorf("NumClusters = %d, want default 6", cfg.NumClusters)
	}
}

func TestValidate_Errors(t *testing.T) {
	tests := []struct {
		name string
		key  string
		val  string
	}{
		{"zero clusters", "TOPICS_NUM_CLUSTERS", "0"},
		{"negative clusters", "TOPICS_NUM_CLUSTERS", "-3"},
		{"zero min chunks", "TOPICS_MIN_CHUNKS_PER_GROUP", "0"},
		{"zero iterations", "TOPICS_MAX_ITERATIONS", "0"},
		{"too many retries", "OPENAI_MAX_RETRIES", "11"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(tt.key, tt.val)

			if _, err := Load(); err == nil {
				t.Errorf("Load() error = nil, want validation error for %s=%s", tt.key, tt.val)
			}
		})
	}
}
