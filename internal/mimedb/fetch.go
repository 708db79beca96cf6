package mimedb

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/meigma/mimeguess/lut"
)

// DefaultBaseURL serves mime-db releases by tag.
const DefaultBaseURL = "https://cdn.jsdelivr.net/gh/jshttp/mime-db@"

// maxDatabaseSize bounds the downloaded database.
const maxDatabaseSize = 16 << 20

type fetchConfig struct {
	baseURL string
	client  *http.Client
	logger  *slog.Logger
}

// FetchOption configures Fetch.
type FetchOption func(*fetchConfig)

// WithBaseURL overrides the address releases are fetched from.
// The release tag and "/db.json" are appended to it.
func WithBaseURL(u string) FetchOption {
	return func(cfg *fetchConfig) {
		cfg.baseURL = u
	}
}

// WithHTTPClient sets the HTTP client used for downloads.
func WithHTTPClient(c *http.Client) FetchOption {
	return func(cfg *fetchConfig) {
		cfg.client = c
	}
}

// WithLogger sets the logger for download progress.
func WithLogger(logger *slog.Logger) FetchOption {
	return func(cfg *fetchConfig) {
		cfg.logger = logger
	}
}

// URL returns the db.json address for a release tag such as "v1.54.0".
func URL(release string) (string, error) {
	return releaseURL(DefaultBaseURL, release)
}

func releaseURL(base, release string) (string, error) {
	if release == "" || strings.ContainsAny(release, "/?# ") {
		return "", fmt.Errorf("%w: %q", ErrInvalidRelease, release)
	}
	return base + release + "/db.json", nil
}

// Fetch downloads the database of a mime-db release.
func Fetch(ctx context.Context, release string, opts ...FetchOption) ([]byte, error) {
	cfg := fetchConfig{
		baseURL: DefaultBaseURL,
		client:  &http.Client{Timeout: 30 * time.Second},
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	logger := cfg.logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	u, err := releaseURL(cfg.baseURL, release)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("mimedb: build request: %w", err)
	}
	logger.Info("fetching mime-db", "release", release, "url", u)

	resp, err := cfg.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrFetchFailed, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("%w: %s: %s", ErrFetchFailed, u, resp.Status)
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxDatabaseSize+1))
	if err != nil {
		return nil, fmt.Errorf("%w: read body: %w", ErrFetchFailed, err)
	}
	if len(data) > maxDatabaseSize {
		return nil, fmt.Errorf("%w: database exceeds %d bytes", ErrFetchFailed, maxDatabaseSize)
	}
	logger.Debug("fetched mime-db", "release", release, "bytes", len(data))
	return data, nil
}

// FetchRecords downloads and parses a mime-db release.
func FetchRecords(ctx context.Context, release string, opts ...FetchOption) ([]lut.Record, error) {
	data, err := Fetch(ctx, release, opts...)
	if err != nil {
		return nil, err
	}
	return Parse(bytes.NewReader(data))
}
