// Package platform is a thin client for the field-service platform REST API.
package platform

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"po-addon/internal/metrics"
)

// maxErrorBody caps how much of a non-2xx response body is kept for logging.
const maxErrorBody = 64 << 10

// APIError is returned when the platform answers with a non-2xx status.
type APIError struct {
	Method     string
	Resource   string
	StatusCode int
	Status     string
	Body       []byte
}

func (e *APIError) Error() string {
	return fmt.Sprintf("%s %s: request failed with status code %d", e.Method, e.Resource, e.StatusCode)
}

// IsNotFound reports whether err is a platform 404.
func IsNotFound(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusNotFound
}

type Client struct {
	baseURL string
	http    *http.Client
	limiter *rate.Limiter
	log     *zap.Logger
	timeout time.Duration
}

type Option func(*Client)

// WithHTTPClient replaces the default transport client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.http = hc }
}

// WithTimeout sets a whole-request timeout. Zero keeps the transport default.
// It applies to the final HTTP client regardless of option order.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) { c.timeout = d }
}

// WithRateLimit paces outbound calls to perSecond with the given burst.
// A non-positive perSecond disables pacing.
func WithRateLimit(perSecond float64, burst int) Option {
	return func(c *Client) {
		if perSecond > 0 {
			c.limiter = rate.NewLimiter(rate.Limit(perSecond), burst)
		}
	}
}

func WithLogger(log *zap.Logger) Option {
	return func(c *Client) { c.log = log }
}

// NewClient creates a platform client rooted at baseURL.
func NewClient(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{},
		limiter: rate.NewLimiter(rate.Inf, 0),
		log:     zap.NewNop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.timeout > 0 {
		hc := *c.http
		hc.Timeout = c.timeout
		c.http = &hc
	}
	c.log = c.log.Named("platform")
	return c
}

// do sends one authenticated request. A non-nil out receives the decoded JSON
// response body.
func (c *Client) do(ctx context.Context, auth AuthEngine, method, resource, path string, body io.Reader, contentType string, out any) error {
	if err := c.limiter.Wait(ctx); err != nil {
		return fmt.Errorf("%s %s: rate limiter: %w", method, resource, err)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return fmt.Errorf("%s %s: create request: %w", method, resource, err)
	}
	req.Header.Set("Accept", "application/json")
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	auth.SetAuthHeader(req)

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		metrics.RecordPlatformRequest(method, resource, 0, start)
		return fmt.Errorf("%s %s: %w", method, resource, err)
	}
	defer resp.Body.Close()
	metrics.RecordPlatformRequest(method, resource, resp.StatusCode, start)

	c.log.Debug("platform request",
		zap.String("method", method),
		zap.String("path", path),
		zap.Int("status", resp.StatusCode),
		zap.Duration("elapsed", time.Since(start)),
	)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		errBody, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return &APIError{
			Method:     method,
			Resource:   resource,
			StatusCode: resp.StatusCode,
			Status:     resp.Status,
			Body:       errBody,
		}
	}

	if out == nil {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("%s %s: decode response: %w", method, resource, err)
	}
	return nil
}
