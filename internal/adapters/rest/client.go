// internal/adapters/rest/client.go
package rest

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"golang.org/x/time/rate"

	"github.com/haroldmz/stockdesk/internal/core/domain"
)

// Config holds the REST client configuration.
type Config struct {
	BaseURL         string
	Timeout         time.Duration
	RateLimitRPS    float64
	RateLimitBurst  int
	RequestIDHeader string
}

// Client is the sole component that speaks the wire format. Everything above
// this layer is shape-agnostic. Requests carry a correlation ID and wait on a
// client-side rate limiter; there are no retries, so every failure is
// terminal for that user action.
type Client struct {
	http            *http.Client
	baseURL         *url.URL
	limiter         *rate.Limiter
	logger          *slog.Logger
	requestIDHeader string

	mu    sync.RWMutex
	token string
}

// NewClient creates a new REST client.
func NewClient(cfg Config, logger *slog.Logger) (*Client, error) {
	base, err := url.Parse(strings.TrimRight(cfg.BaseURL, "/"))
	if err != nil {
		return nil, fmt.Errorf("invalid API base URL %q: %w", cfg.BaseURL, err)
	}
	if base.Scheme == "" || base.Host == "" {
		return nil, fmt.Errorf("API base URL %q must be absolute", cfg.BaseURL)
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	rps := cfg.RateLimitRPS
	if rps <= 0 {
		rps = 10
	}
	burst := cfg.RateLimitBurst
	if burst <= 0 {
		burst = 5
	}
	header := cfg.RequestIDHeader
	if header == "" {
		header = "X-Request-ID"
	}

	return &Client{
		http:            &http.Client{Timeout: timeout},
		baseURL:         base,
		limiter:         rate.NewLimiter(rate.Limit(rps), burst),
		logger:          logger.With(slog.String("adapter", "rest")),
		requestIDHeader: header,
	}, nil
}

// SetToken installs the bearer token attached to subsequent requests. An
// empty token clears it.
func (c *Client) SetToken(token string) {
	c.mu.Lock()
	c.token = token
	c.mu.Unlock()
}

// Get issues a GET request and returns the decoded JSON payload.
func (c *Client) Get(ctx context.Context, path string, query url.Values) (any, error) {
	return c.do(ctx, http.MethodGet, path, query, nil)
}

// Post issues a POST request with a JSON body.
func (c *Client) Post(ctx context.Context, path string, body any) (any, error) {
	return c.do(ctx, http.MethodPost, path, nil, body)
}

// Put issues a PUT request with a JSON body.
func (c *Client) Put(ctx context.Context, path string, body any) (any, error) {
	return c.do(ctx, http.MethodPut, path, nil, body)
}

// Delete issues a DELETE request.
func (c *Client) Delete(ctx context.Context, path string) (any, error) {
	return c.do(ctx, http.MethodDelete, path, nil, nil)
}

func (c *Client) do(ctx context.Context, method, path string, query url.Values, body any) (any, error) {
	op := fmt.Sprintf("%s %s", method, path)

	if err := c.limiter.Wait(ctx); err != nil {
		return nil, &domain.OperationFailedError{Op: op, Err: err}
	}

	endpoint := *c.baseURL
	endpoint.Path = strings.TrimRight(endpoint.Path, "/") + path
	if len(query) > 0 {
		endpoint.RawQuery = query.Encode()
	}

	var reader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return nil, &domain.OperationFailedError{Op: op, Message: "could not encode request body", Err: err}
		}
		reader = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint.String(), reader)
	if err != nil {
		return nil, &domain.OperationFailedError{Op: op, Err: err}
	}

	requestID := uuid.New().String()
	req.Header.Set("Accept", "application/json")
	req.Header.Set(c.requestIDHeader, requestID)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	c.mu.RLock()
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}
	c.mu.RUnlock()

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		c.logger.ErrorContext(ctx, "request failed",
			slog.String("op", op),
			slog.String("request_id", requestID),
			slog.String("error", err.Error()))
		return nil, &domain.OperationFailedError{Op: op, Err: err}
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &domain.OperationFailedError{Op: op, Err: err}
	}

	c.logger.DebugContext(ctx, "request completed",
		slog.String("op", op),
		slog.String("request_id", requestID),
		slog.Int("status", resp.StatusCode),
		slog.Int64("duration_ms", time.Since(start).Milliseconds()))

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &domain.OperationFailedError{
			Op:      op,
			Message: serverMessage(raw, resp.StatusCode),
		}
	}

	if len(bytes.TrimSpace(raw)) == 0 {
		return nil, nil
	}

	var payload any
	if err := json.Unmarshal(raw, &payload); err != nil {
		return nil, &domain.MalformedResponseError{Endpoint: path, Payload: string(raw)}
	}
	return payload, nil
}

// serverMessage pulls a human-readable message out of an error body, falling
// back to the HTTP status text.
func serverMessage(raw []byte, status int) string {
	var envelope map[string]any
	if err := json.Unmarshal(raw, &envelope); err == nil {
		for _, key := range []string{"message", "error", "detail"} {
			if s, ok := envelope[key].(string); ok && s != "" {
				return s
			}
		}
	}
	return fmt.Sprintf("server responded with %d %s", status, http.StatusText(status))
}
