// Package transport is the low-level REST client for the Concord API. It
// owns authentication, client-side rate limiting, retries and the mapping of
// response classes onto the library's error taxonomy.
package transport

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/hashicorp/go-cleanhttp"
	"github.com/hashicorp/go-retryablehttp"
	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"github.com/concordlib/concord/internal/core/domain"
)

const (
	defaultRetryMax          = 3
	defaultRequestsPerSecond = 25
	defaultBurst             = 5
	requestTimeout           = 30 * time.Second
)

// Config configures a Client. Zero values fall back to defaults; only
// BaseURL and Token are required.
type Config struct {
	BaseURL           string
	Token             string
	Logger            *zap.Logger
	RetryMax          int
	RequestsPerSecond float64
}

// Client issues authenticated requests against the Concord REST API.
type Client struct {
	baseURL string
	token   string
	http    *retryablehttp.Client
	limiter *rate.Limiter
	logger  *zap.Logger
}

// New creates a REST client.
func New(cfg Config) *Client {
	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	retryMax := cfg.RetryMax
	if retryMax == 0 {
		retryMax = defaultRetryMax
	} else if retryMax < 0 {
		retryMax = 0
	}

	rps := cfg.RequestsPerSecond
	if rps == 0 {
		rps = defaultRequestsPerSecond
	}

	httpClient := retryablehttp.NewClient()
	httpClient.HTTPClient = cleanhttp.DefaultPooledClient()
	httpClient.HTTPClient.Timeout = requestTimeout
	httpClient.RetryMax = retryMax
	httpClient.Logger = leveledLogger{logger.Sugar()}
	// Hand the final response back after retries run out, so Get maps its
	// status onto the error taxonomy instead of a generic giving-up error.
	httpClient.ErrorHandler = func(resp *http.Response, err error, _ int) (*http.Response, error) {
		if resp != nil {
			return resp, nil
		}

		return nil, err
	}

	return &Client{
		baseURL: cfg.BaseURL,
		token:   cfg.Token,
		http:    httpClient,
		limiter: rate.NewLimiter(rate.Limit(rps), defaultBurst),
		logger:  logger,
	}
}

// Get issues a GET request for path and decodes the JSON response into out.
// A "not found" or "forbidden" response comes back as an *APIError wrapping
// the matching domain sentinel; any other non-success class is a transport
// fault and is additionally logged, since it may indicate a systemic problem
// rather than bad user input.
func (c *Client) Get(ctx context.Context, path string, out any) error {
	if err := c.limiter.Wait(ctx); err != nil {
		return fmt.Errorf("failed to acquire rate limit slot: %w", err)
	}

	req, err := retryablehttp.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}

	requestID := uuid.NewString()
	req.Header.Set("Authorization", "Bot "+c.token)
	req.Header.Set("User-Agent", "concordlib (github.com/concordlib/concord)")
	req.Header.Set("X-Request-ID", requestID)

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("failed to execute request: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		apiErr := newAPIError(resp, requestID)
		if !domain.IsMiss(apiErr) {
			c.logger.Error("request failed",
				zap.String("path", path),
				zap.String("request_id", requestID),
				zap.Int("status", apiErr.Status),
				zap.String("message", apiErr.Message),
			)
		}

		return apiErr
	}

	if out == nil {
		return nil
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}

	return nil
}

// APIError is a non-success REST response. Unwrap exposes the domain
// sentinels for the two response classes resolution treats as routine.
type APIError struct {
	Status    int
	Code      int
	Message   string
	RequestID string
}

func newAPIError(resp *http.Response, requestID string) *APIError {
	apiErr := &APIError{
		Status:    resp.StatusCode,
		RequestID: requestID,
	}

	var body struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
	}
	if err := json.NewDecoder(io.LimitReader(resp.Body, 1<<16)).Decode(&body); err == nil {
		apiErr.Code = body.Code
		apiErr.Message = body.Message
	}

	return apiErr
}

// Error implements the error interface.
func (e *APIError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("api error: status %d, code %d: %s", e.Status, e.Code, e.Message)
	}

	return fmt.Sprintf("api error: status %d", e.Status)
}

// Unwrap maps the response class onto the domain error taxonomy.
func (e *APIError) Unwrap() error {
	switch e.Status {
	case http.StatusNotFound:
		return domain.ErrNotFound
	case http.StatusForbidden:
		return domain.ErrForbidden
	default:
		return nil
	}
}

// leveledLogger adapts zap's sugared logger to retryablehttp's leveled
// logging interface.
type leveledLogger struct {
	sugar *zap.SugaredLogger
}

func (l leveledLogger) Error(msg string, keysAndValues ...any) {
	l.sugar.Errorw(msg, keysAndValues...)
}

func (l leveledLogger) Warn(msg string, keysAndValues ...any) {
	l.sugar.Warnw(msg, keysAndValues...)
}

func (l leveledLogger) Info(msg string, keysAndValues ...any) {
	l.sugar.Infow(msg, keysAndValues...)
}

func (l leveledLogger) Debug(msg string, keysAndValues ...any) {
	l.sugar.Debugw(msg, keysAndValues...)
}
