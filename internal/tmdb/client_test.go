// ABOUTME: Tests for the TMDB poster client
// ABOUTME: Uses httptest servers; verifies sentinel degradation and retries

package tmdb

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func testConfig(apiKey, baseURL string) *ClientConfig {
	return &ClientConfig{
		APIKey:     apiKey,
		BaseURL:    baseURL,
		Timeout:    2 * time.Second,
		MaxRetries: 2,
		RetryDelay: time.Millisecond,
	}
}

func TestPosterURL_Success(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/movie/603" {
			t.Errorf("request path = %s, want /movie/603", r.URL.Path)
		}
		if r.URL.Query().Get("api_key") != "k" {
			t.Errorf("api_key = %q, want k", r.URL.Query().Get("api_key"))
		}
		fmt.Fprint(w, `{"id": 603, "poster_path": "/abc.jpg"}`)
	}))
	defer server.Close()

	client := NewClient(testConfig("k", server.URL))

	got := client.PosterURL(context.Background(), 603)
	want := "https://image.tmdb.org/t/p/w500/abc.jpg"
	if got != want {
		t.Errorf("PosterURL() = %q, want %q", got, want)
	}
}

func TestPosterURL_NoAPIKey(t *testing.T) {
	client := NewClient(testConfig("", "http://unused.invalid"))

	if got := client.PosterURL(context.Background(), 1); got != NoPoster {
		t.Errorf("PosterURL() without key = %q, want NoPoster", got)
	}
}

func TestPosterURL_MissingPosterPath(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"id": 7, "poster_path": null}`)
	}))
	defer server.Close()

	client := NewClient(testConfig("k", server.URL))

	if got := client.PosterURL(context.Background(), 7); got != NoPoster {
		t.Errorf("PosterURL() = %q, want NoPoster", got)
	}
}

func TestPosterURL_NotFound(t *testing.T) {
	var calls int
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	client := NewClient(testConfig("k", server.URL))

	if got := client.PosterURL(context.Background(), 99999); got != NoPoster {
		t.Errorf("PosterURL() = %q, want NoPoster", got)
	}
	if calls != 1 {
		t.Errorf("404 was retried %d times; a definitive miss should not be retried", calls)
	}
}

func TestPosterURL_RetriesServerErrors(t *testing.T) {
	var calls int
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		if calls < 3 {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		fmt.Fprint(w, `{"poster_path": "/late.jpg"}`)
	}))
	defer server.Close()

	client := NewClient(testConfig("k", server.URL))

	got := client.PosterURL(context.Background(), 42)
	if got != "https://image.tmdb.org/t/p/w500/late.jpg" {
		t.Errorf("PosterURL() = %q, want recovered poster URL", got)
	}
	if calls != 3 {
		t.Errorf("server saw %d calls, want 3", calls)
	}
}

func TestPosterURL_ExhaustedRetriesDegrade(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer server.Close()

	client := NewClient(testConfig("k", server.URL))

	// Persistent failure must degrade to the sentinel, never error.
	if got := client.PosterURL(context.Background(), 1); got != NoPoster {
		t.Errorf("PosterURL() = %q, want NoPoster", got)
	}
}

func TestPosterURL_MalformedBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"poster_path":`)
	}))
	defer server.Close()

	client := NewClient(testConfig("k", server.URL))

	if got := client.PosterURL(context.Background(), 1); got != NoPoster {
		t.Errorf("PosterURL() = %q, want NoPoster", got)
	}
}

func TestNewClient_DefaultBaseURL(t *testing.T) {
	client := NewClient(DefaultConfig("k"))
	if client.baseURL != DefaultBaseURL {
		t.Errorf("baseURL = %q, want %q", client.baseURL, DefaultBaseURL)
	}
}
