// ABOUTME: Centralized configuration for the movierec CLI
// ABOUTME: Loads from environment variables with validation and defaults
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/adrg/xdg"
)

// Config holds all configuration for the recommender
type Config struct {
	// Artifact settings
	ArtifactsPath string
	VocabSize     int
	TopN          int

	// TMDB settings
	TMDBKey    string
	Timeout    time.Duration
	MaxRetries int
	RetryDelay time.Duration
}

// Load reads configuration from environment variables
func Load() (*Config, error) {
	cfg := &Config{
		// Defaults
		ArtifactsPath: getEnv("MOVIEREC_DB", DefaultArtifactsPath()),
		VocabSize:     getEnvInt("MOVIEREC_VOCAB_SIZE", 5000),
		TopN:          getEnvInt("MOVIEREC_TOP_N", 5),
		TMDBKey:       os.Getenv("TMDB_API_KEY"),
		Timeout:       getEnvDuration("TMDB_TIMEOUT", 5*time.Second),
		MaxRetries:    getEnvInt("TMDB_MAX_RETRIES", 2),
		RetryDelay:    getEnvDuration("TMDB_RETRY_DELAY", time.Second),
	}

	return cfg, cfg.Validate()
}

func (c *Config) Validate() error {
	if c.VocabSize <= 0 {
		return fmt.Errorf("MOVIEREC_VOCAB_SIZE must be positive, got %d", c.VocabSize)
	}
	if c.TopN <= 0 {
		return fmt.Errorf("MOVIEREC_TOP_N must be positive, got %d", c.TopN)
	}
	if c.MaxRetries < 0 || c.MaxRetries > 10 {
		return fmt.Errorf("TMDB_MAX_RETRIES must be 0-10, got %d", c.MaxRetries)
	}
	return nil
}

// DefaultArtifactsPath returns the default artifact database path following XDG spec.
// Respects XDG_DATA_HOME environment variable override for testing.
func DefaultArtifactsPath() string {
	dataHome := os.Getenv("XDG_DATA_HOME")
	if dataHome == "" {
		dataHome = xdg.DataHome
	}
	return filepath.Join(dataHome, "movierec", "artifacts.db")
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
