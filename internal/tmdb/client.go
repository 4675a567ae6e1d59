// ABOUTME: TMDB client that resolves movie ids to poster image URLs
// ABOUTME: Absorbs every failure into the NoPoster sentinel; never errors to callers
package tmdb

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/harper/movierec-standalone/internal/util"
)

const (
	// DefaultBaseURL is the TMDB API endpoint
	DefaultBaseURL = "https://api.themoviedb.org/3"
	// posterImageBase is the image CDN prefix for w500 posters
	posterImageBase = "https://image.tmdb.org/t/p/w500"
)

// NoPoster is the sentinel returned when a poster cannot be resolved.
// Callers must treat it as an expected value, not a failure.
const NoPoster = ""

// ClientConfig holds configuration for the TMDB client
type ClientConfig struct {
	APIKey     string
	BaseURL    string
	Timeout    time.Duration
	MaxRetries int
	RetryDelay time.Duration
}

// DefaultConfig returns the default client configuration
func DefaultConfig(apiKey string) *ClientConfig {
	return &ClientConfig{
		APIKey:     apiKey,
		BaseURL:    DefaultBaseURL,
		Timeout:    5 * time.Second,
		MaxRetries: 2,
		RetryDelay: time.Second,
	}
}

// Client wraps TMDB poster lookups with retry logic
type Client struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
	maxRetries int
	retryDelay time.Duration
}

// NewClient creates a new TMDB client. An empty API key is allowed; every
// lookup then resolves to NoPoster, which keeps the recommendation path
// usable without a configured credential.
func NewClient(config *ClientConfig) *Client {
	baseURL := config.BaseURL
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}

	return &Client{
		apiKey:     config.APIKey,
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: config.Timeout},
		maxRetries: config.MaxRetries,
		retryDelay: config.RetryDelay,
	}
}

// movieDetails is the subset of the TMDB movie response we read
type movieDetails struct {
	PosterPath string `json:"poster_path"`
}

// PosterURL resolves a movie id to a display-ready poster URL. On any
// failure (unset key, network error, unknown id, missing poster path) it
// returns NoPoster after at most a logged warning.
func (c *Client) PosterURL(ctx context.Context, movieID int) string {
	if c.apiKey == "" {
		return NoPoster
	}

	url, err := c.fetchPoster(ctx, movieID)
	if err != nil {
		log.Printf("Warning: poster lookup for movie %d failed: %v", movieID, err)
		return NoPoster
	}
	return url
}

// fetchPoster performs the API call with retries. A definitive "no
// poster" answer (unknown id or empty poster_path) is not an error and
// is never retried.
func (c *Client) fetchPoster(ctx context.Context, movieID int) (string, error) {
	url := fmt.Sprintf("%s/movie/%d?api_key=%s&language=en-US", c.baseURL, movieID, c.apiKey)

	var lastErr error
	for attempt := 0; attempt <= c.maxRetries; attempt++ {
		if attempt > 0 {
			select {
			case <-ctx.Done():
				return "", ctx.Err()
			case <-time.After(util.CalculateBackoff(c.retryDelay, attempt)):
			}
		}

		req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
		if err != nil {
			return "", err
		}

		resp, err := c.httpClient.Do(req)
		if err != nil {
			lastErr = fmt.Errorf("attempt %d: %w", attempt+1, err)
			continue
		}

		if resp.StatusCode == http.StatusNotFound {
			_ = resp.Body.Close()
			return NoPoster, nil
		}
		if resp.StatusCode != http.StatusOK {
			_ = resp.Body.Close()
			lastErr = fmt.Errorf("attempt %d: unexpected status %d", attempt+1, resp.StatusCode)
			continue
		}

		var details movieDetails
		err = json.NewDecoder(resp.Body).Decode(&details)
		_ = resp.Body.Close()
		if err != nil {
			lastErr = fmt.Errorf("attempt %d: decoding response: %w", attempt+1, err)
			continue
		}

		if details.PosterPath == "" {
			return NoPoster, nil
		}
		return posterImageBase + details.PosterPath, nil
	}

	return "", fmt.Errorf("failed after %d attempts: %w", c.maxRetries+1, lastErr)
}
