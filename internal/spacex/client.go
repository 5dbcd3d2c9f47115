// Package spacex fetches launch records from the SpaceX v3 REST API.
package spacex

import (
	"bytes"
	"compress/gzip"
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/andybalholm/brotli"

	"github.com/jask/launchdeck/internal/launch"
)

// DefaultEndpoint is the public launches collection.
const DefaultEndpoint = "https://api.spacexdata.com/v3/launches"

// FetchError is a transport-level failure: the request could not be made,
// the body could not be read, or the service answered with a non-200 status.
type FetchError struct {
	Endpoint   string
	StatusCode int // 0 when no response was received
	Err        error
}

func (e *FetchError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("fetch %s: status %d: %v", e.Endpoint, e.StatusCode, e.Err)
	}
	return fmt.Sprintf("fetch %s: %v", e.Endpoint, e.Err)
}

func (e *FetchError) Unwrap() error { return e.Err }

// ParseError means the service answered but the payload was not a valid
// launch array.
type ParseError struct {
	Err error
}

func (e *ParseError) Error() string { return "parse launches: " + e.Err.Error() }

func (e *ParseError) Unwrap() error { return e.Err }

// Client performs the single GET against the launches endpoint.
type Client struct {
	endpoint  string
	userAgent string
	http      *http.Client
}

type Option func(*Client)

// WithHTTPClient replaces the underlying http.Client. The client timeout is
// left as configured by the caller.
func WithHTTPClient(h *http.Client) Option {
	return func(c *Client) { c.http = h }
}

func WithUserAgent(ua string) Option {
	return func(c *Client) { c.userAgent = strings.TrimSpace(ua) }
}

// NewClient builds a client for endpoint. An empty endpoint uses
// DefaultEndpoint; a non-positive timeout leaves requests bounded only by ctx.
func NewClient(endpoint string, timeout time.Duration, opts ...Option) *Client {
	endpoint = strings.TrimSpace(endpoint)
	if endpoint == "" {
		endpoint = DefaultEndpoint
	}
	c := &Client{endpoint: endpoint, http: &http.Client{Timeout: timeout}}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Client) Endpoint() string { return c.endpoint }

// FetchLaunches returns the launches in the order the service sent them.
func (c *Client) FetchLaunches(ctx context.Context) ([]launch.Record, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.endpoint, nil)
	if err != nil {
		return nil, &FetchError{Endpoint: c.endpoint, Err: err}
	}
	req.Header.Set("Accept", "application/json")
	// Setting Accept-Encoding disables the transport's transparent gzip, so
	// both encodings are decoded in decodedBody.
	req.Header.Set("Accept-Encoding", "br, gzip")
	if c.userAgent != "" {
		req.Header.Set("User-Agent", c.userAgent)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, &FetchError{Endpoint: c.endpoint, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, 4<<10))
		return nil, &FetchError{Endpoint: c.endpoint, StatusCode: resp.StatusCode, Err: fmt.Errorf("unexpected status %q", resp.Status)}
	}

	body, err := decodedBody(resp)
	if err != nil {
		return nil, &FetchError{Endpoint: c.endpoint, StatusCode: resp.StatusCode, Err: err}
	}
	defer body.Close()

	raw, err := io.ReadAll(body)
	if err != nil {
		return nil, &FetchError{Endpoint: c.endpoint, StatusCode: resp.StatusCode, Err: fmt.Errorf("read body: %w", err)}
	}
	return DecodeLaunches(bytes.NewReader(raw))
}

func decodedBody(resp *http.Response) (io.ReadCloser, error) {
	enc := strings.ToLower(strings.TrimSpace(resp.Header.Get("Content-Encoding")))
	switch enc {
	case "", "identity":
		return io.NopCloser(resp.Body), nil
	case "gzip":
		zr, err := gzip.NewReader(resp.Body)
		if err != nil {
			return nil, fmt.Errorf("creating gzip reader: %w", err)
		}
		return zr, nil
	case "br":
		return io.NopCloser(brotli.NewReader(resp.Body)), nil
	default:
		return nil, fmt.Errorf("unsupported content encoding %q", enc)
	}
}
