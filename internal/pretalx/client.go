// Package pretalx fetches the schedule export of a pretalx conference
package pretalx

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"sync"
	"time"
)

// maxBodySize caps the schedule document read from the server
const maxBodySize = 16 << 20

// ErrEmptyURL is returned when no schedule URL is configured
var ErrEmptyURL = errors.New("schedule URL is empty")

// Response is a fetched schedule document
type Response struct {
	Body []byte
	// NotModified is true when the server answered 304 and Body is the previous document
	NotModified bool
}

// Client fetches the schedule document, sending conditional requests once a
// document has been seen
type Client struct {
	url        string
	httpClient *http.Client

	mu           sync.Mutex
	etag         string
	lastModified string
	lastBody     []byte
}

// NewClient creates a new schedule client
func NewClient(url string, timeout time.Duration) *Client {
	return &Client{
		url: url,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

// URL returns the schedule URL
func (c *Client) URL() string {
	return c.url
}

// Fetch downloads the schedule document
func (c *Client) Fetch(ctx context.Context) (Response, error) {
	if c.url == "" {
		return Response{}, ErrEmptyURL
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.url, nil)
	if err != nil {
		return Response{}, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	c.mu.Lock()
	etag, lastModified, cached := c.etag, c.lastModified, c.lastBody
	c.mu.Unlock()

	// Only ask for a 304 when there is a body to fall back to
	if len(cached) > 0 {
		if etag != "" {
			req.Header.Set("If-None-Match", etag)
		}
		if lastModified != "" {
			req.Header.Set("If-Modified-Since", lastModified)
		}
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return Response{}, fmt.Errorf("failed to make request: %w", err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotModified && len(cached) > 0:
		return Response{Body: cached, NotModified: true}, nil

	case resp.StatusCode != http.StatusOK:
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return Response{}, fmt.Errorf("schedule request failed (status %d): %s", resp.StatusCode, string(snippet))
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodySize+1))
	if err != nil {
		return Response{}, fmt.Errorf("failed to read response body: %w", err)
	}
	if len(body) > maxBodySize {
		return Response{}, fmt.Errorf("schedule document exceeds %d bytes", maxBodySize)
	}

	c.mu.Lock()
	c.etag = resp.Header.Get("ETag")
	c.lastModified = resp.Header.Get("Last-Modified")
	c.lastBody = body
	c.mu.Unlock()

	return Response{Body: body}, nil
}
