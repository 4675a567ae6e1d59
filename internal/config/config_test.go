// ABOUTME: Tests for centralized configuration system
// ABOUTME: Verifies environment variable parsing and validation
package config

import (
	"os"
	"strings"
	"testing"
	"time"
)

func TestLoad_Defaults(t *testing.T) {
	// Clear environment to test defaults
	os.Clearenv()

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	// Verify defaults
	if !strings.HasSuffix(cfg.ArtifactsPath, "movierec/artifacts.db") &&
		!strings.HasSuffix(cfg.ArtifactsPath, "movierec\\artifacts.db") {
		t.Errorf("ArtifactsPath = %s, want default under movierec/", cfg.ArtifactsPath)
	}
	if cfg.VocabSize != 5000 {
		t.Errorf("VocabSize = %d, want 5000", cfg.VocabSize)
	}
	if cfg.TopN != 5 {
		t.Errorf("TopN = %d, want 5", cfg.TopN)
	}
	if cfg.TMDBKey != "" {
		t.Errorf("TMDBKey = %s, want empty", cfg.TMDBKey)
	}
	if cfg.Timeout != 5*time.Second {
		t.Errorf("Timeout = %v, want 5s", cfg.Timeout)
	}
	if cfg.MaxRetries != 2 {
		t.Errorf("MaxRetries = %d, want 2", cfg.MaxRetries)
	}
	if cfg.RetryDelay != time.Second {
		t.Errorf("RetryDelay = %v, want 1s", cfg.RetryDelay)
	}
}

func TestLoad_CustomValues(t *testing.T) {
	// Set custom environment variables
	os.Clearenv()
	os.Setenv("MOVIEREC_DB", "/tmp/custom.db")
	os.Setenv("MOVIEREC_VOCAB_SIZE", "2000")
	os.Setenv("MOVIEREC_TOP_N", "9")
	os.Setenv("TMDB_API_KEY", "test-key")
	os.Setenv("TMDB_TIMEOUT", "10s")
	os.Setenv("TMDB_MAX_RETRIES", "4")
	os.Setenv("TMDB_RETRY_DELAY", "3s")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	// Verify custom values
	if cfg.ArtifactsPath != "/tmp/custom.db" {
		t.Errorf("ArtifactsPath = %s, want /tmp/custom.db", cfg.ArtifactsPath)
	}
	if cfg.VocabSize != 2000 {
		t.Errorf("VocabSize = %d, want 2000", cfg.VocabSize)
	}
	if cfg.TopN != 9 {
		t.Errorf("TopN = %d, want 9", cfg.TopN)
	}
	if cfg.TMDBKey != "test-key" {
		t.Errorf("TMDBKey = %s, want test-key", cfg.TMDBKey)
	}
	if cfg.Timeout != 10*time.Second {
		t.Errorf("Timeout = %v, want 10s", cfg.Timeout)
	}
	if cfg.MaxRetries != 4 {
		t.Errorf("MaxRetries = %d, want 4", cfg.MaxRetries)
	}
	if cfg.RetryDelay != 3*time.Second {
		t.Errorf("RetryDelay = %v, want 3s", cfg.RetryDelay)
	}
}

func TestLoad_InvalidValuesFallBack(t *testing.T) {
	os.Clearenv()
	os.Setenv("MOVIEREC_VOCAB_SIZE", "not-a-number")
	os.Setenv("TMDB_TIMEOUT", "soon")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	if cfg.VocabSize != 5000 {
		t.Errorf("VocabSize = %d, want default 5000 on unparseable value", cfg.VocabSize)
	}
	if cfg.Timeout != 5*time.Second {
		t.Errorf("Timeout = %v, want default 5s on unparseable value", cfg.Timeout)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"valid defaults", func(c *Config) {}, false},
		{"zero vocab size", func(c *Config) { c.VocabSize = 0 }, true},
		{"negative top n", func(c *Config) { c.TopN = -1 }, true},
		{"retries too high", func(c *Config) { c.MaxRetries = 11 }, true},
		{"negative retries", func(c *Config) { c.MaxRetries = -1 }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			os.Clearenv()
			cfg, err := Load()
			if err != nil {
				t.Fatalf("Load() failed: %v", err)
			}
			tt.mutate(cfg)

			err = cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
