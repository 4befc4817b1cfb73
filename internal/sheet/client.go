package sheet

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/dlawocjf0837-debug/Sports-day---Joongwon/internal/metrics"
)

// Client fetches the published sports-day sheet as raw CSV text
type Client struct {
	httpClient *http.Client
	now        func() time.Time // cache-buster clock, replaced in tests
}

// NewClient creates a sheet client with the given request timeout
func NewClient(timeout time.Duration) *Client {
	return &Client{
		now: time.Now,
		httpClient: &http.Client{
			Timeout: timeout,
			Transport: &http.Transport{
				MaxIdleConns:        10,
				MaxIdleConnsPerHost: 2,
				IdleConnTimeout:     90 * time.Second,
			},
		},
	}
}

// Fetch retrieves the CSV body from the published sheet URL. A
// cache-busting t parameter carrying the current epoch millis is
// appended so intermediary caches never serve a stale export. No retry
// happens at this layer; the poll loop provides the retry cadence.
func (c *Client) Fetch(ctx context.Context, sourceURL string) (string, error) {
	start := time.Now()

	fetchURL, err := withCacheBuster(sourceURL, c.now())
	if err != nil {
		return "", fmt.Errorf("failed to build sheet URL: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fetchURL, nil)
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "text/csv, text/plain")
	req.Header.Set("User-Agent", "sportsday-scoreboard/1.0")

	log.Debug().
		Str("url", sourceURL).
		Msg("Fetching sheet CSV")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		metrics.RecordFetch("network_error", time.Since(start).Seconds())
		return "", &NetworkError{Err: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		metrics.RecordFetch("network_error", time.Since(start).Seconds())
		return "", &NetworkError{Err: err}
	}

	// Checked before the status code: an HTML body is a misconfigured
	// publish link even when it arrives with a 200.
	if looksLikeHTML(body) {
		metrics.RecordFetch("format_error", time.Since(start).Seconds())
		return "", &FormatError{Preview: bodyPreview(body)}
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		metrics.RecordFetch("bad_status", time.Since(start).Seconds())
		return "", &NetworkError{StatusCode: resp.StatusCode}
	}

	log.Debug().
		Int("status", resp.StatusCode).
		Int("size", len(body)).
		Msg("Sheet fetch successful")

	metrics.RecordFetch("success", time.Since(start).Seconds())
	return string(body), nil
}

// withCacheBuster appends t=<epoch millis>, preserving query parameters
// already on the published URL
func withCacheBuster(sourceURL string, now time.Time) (string, error) {
	u, err := url.Parse(sourceURL)
	if err != nil {
		return "", err
	}
	q := u.Query()
	q.Set("t", strconv.FormatInt(now.UnixMilli(), 10))
	u.RawQuery = q.Encode()
	return u.String(), nil
}

// looksLikeHTML reports whether the body reads as an HTML document,
// matching a leading <!doctype html or <html case-insensitively
func looksLikeHTML(body []byte) bool {
	trimmed := strings.TrimLeft(string(body), " \t\r\n﻿")
	lower := strings.ToLower(trimmed)
	return strings.HasPrefix(lower, "<!doctype html") || strings.HasPrefix(lower, "<html")
}

// bodyPreview returns the leading bytes of a rejected body for error text
func bodyPreview(body []byte) string {
	const max = 48
	preview := strings.TrimSpace(string(body))
	if len(preview) > max {
		preview = preview[:max]
	}
	return preview
}
