// SPDX-License-Identifier: MIT

// Package muninn talks to the RÚV muninn schedule service: it resolves the
// latest schedule file from a directory listing and parses the
// schedule/service/event XML dialect into typed events.
package muninn

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

const userAgent = "ruv-xmltv/1.0"

// DefaultTimeout bounds every upstream request. There is no retry; a slow
// upstream fails the whole run.
const DefaultTimeout = 30 * time.Second

type Client struct {
	http *http.Client
}

func New() *Client {
	return NewWithTimeout(DefaultTimeout)
}

func NewWithTimeout(timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Client{
		http: &http.Client{Timeout: timeout},
	}
}

// Fetch retrieves url and returns the body as text. Invalid UTF-8 byte
// sequences are substituted rather than rejected; upstream listings are not
// always clean.
func (c *Client) Fetch(ctx context.Context, url string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", &FeedError{Sentinel: ErrFetch, Operation: "fetch", URL: url, Err: err}
	}
	req.Header.Set("User-Agent", userAgent)

	res, err := c.http.Do(req)
	if err != nil {
		return "", &FeedError{Sentinel: ErrFetch, Operation: "fetch", URL: url, Err: err}
	}
	defer func() {
		_ = res.Body.Close()
	}()

	if res.StatusCode < 200 || res.StatusCode >= 300 {
		return "", &FeedError{
			Sentinel:  ErrFetch,
			Operation: "fetch",
			URL:       url,
			Err:       fmt.Errorf("unexpected status %d", res.StatusCode),
		}
	}

	body, err := io.ReadAll(transform.NewReader(res.Body, unicode.UTF8.NewDecoder()))
	if err != nil {
		return "", &FeedError{Sentinel: ErrFetch, Operation: "read body", URL: url, Err: err}
	}
	return string(body), nil
}
