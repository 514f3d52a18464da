package cardgorilla

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/sony/gobreaker"
	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"github.com/cardlens/backend/internal/domain"
)

// Defaults for the Card Gorilla API
const (
	DefaultBaseURL      = "https://api.card-gorilla.com:8080/v1"
	DefaultUserAgent    = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36"
	DefaultReferer      = "https://www.card-gorilla.com/"
	DefaultCorp         = 1 // 삼성카드
	DefaultPerPage      = 200
	DefaultRequestDelay = 500 * time.Millisecond
	DefaultTimeout      = 10 * time.Second
	DefaultMaxRetries   = 3

	maxBodyBytes      = 5 << 20
	maxErrorBodyBytes = 512
	maxListPages      = 50
	backoffBase       = 500 * time.Millisecond
)

// Request outcomes reported to the recorder
const (
	OutcomeOK          = "ok"
	OutcomeNotFound    = "not_found"
	OutcomeError       = "error"
	OutcomeCircuitOpen = "circuit_open"
)

// Config holds Card Gorilla client settings
type Config struct {
	BaseURL      string
	Corp         int
	PerPage      int
	RequestDelay time.Duration
	Timeout      time.Duration
	UserAgent    string
	Referer      string
	MaxRetries   int
}

// RequestRecorder receives one outcome per upstream call
type RequestRecorder interface {
	UpstreamRequest(endpoint, outcome string)
}

// Client handles communication with the Card Gorilla card API
type Client struct {
	httpClient  *http.Client
	cfg         Config
	rateLimiter *rate.Limiter
	breaker     *gobreaker.CircuitBreaker
	backoff     func(attempt int) time.Duration
	recorder    RequestRecorder
	debug       bool
	logger      *zap.Logger
}

// response is an upstream reply the caller must interpret
type response struct {
	status int
	body   []byte
}

// NewClient creates a new Card Gorilla API client. Zero config fields take the defaults.
func NewClient(cfg Config, logger *zap.Logger) *Client {
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	if cfg.Corp == 0 {
		cfg.Corp = DefaultCorp
	}
	if cfg.PerPage == 0 {
		cfg.PerPage = DefaultPerPage
	}
	if cfg.RequestDelay == 0 {
		cfg.RequestDelay = DefaultRequestDelay
	}
	if cfg.Timeout == 0 {
		cfg.Timeout = DefaultTimeout
	}
	if cfg.UserAgent == "" {
		cfg.UserAgent = DefaultUserAgent
	}
	if cfg.Referer == "" {
		cfg.Referer = DefaultReferer
	}
	if cfg.MaxRetries <= 0 {
		cfg.MaxRetries = DefaultMaxRetries
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	// One request per RequestDelay, no bursts
	limiter := rate.NewLimiter(rate.Every(cfg.RequestDelay), 1)

	breaker := gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:        "card-gorilla",
		MaxRequests: 1,
		Interval:    time.Minute,
		Timeout:     30 * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures > 5
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			logger.Warn("Circuit breaker state changed",
				zap.String("name", name),
				zap.String("from", from.String()),
				zap.String("to", to.String()))
		},
	})

	return &Client{
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
		},
		cfg:         cfg,
		rateLimiter: limiter,
		breaker:     breaker,
		backoff:     exponentialBackoff,
		debug:       false,
		logger:      logger,
	}
}

// SetDebug toggles verbose request logging
func (c *Client) SetDebug(debug bool) {
	c.debug = debug
}

// SetRecorder installs a recorder for request outcomes
func (c *Client) SetRecorder(recorder RequestRecorder) {
	c.recorder = recorder
}

func (c *Client) debugLog(format string, args ...interface{}) {
	if c.debug {
		c.logger.Sugar().Debugf("[CardGorilla] "+format, args...)
	}
}

// exponentialBackoff returns the wait after a failed attempt: 500ms, 1s, 2s, ...
func exponentialBackoff(attempt int) time.Duration {
	if attempt < 1 {
		attempt = 1
	}
	return backoffBase * time.Duration(1<<uint(attempt-1))
}

// readLimitedBody reads at most limit bytes from r
func readLimitedBody(r io.Reader, limit int64) ([]byte, error) {
	return io.ReadAll(io.LimitReader(r, limit))
}

// ListCardIDs returns the ids of all active cards of the configured issuer, in listing order
func (c *Client) ListCardIDs(ctx context.Context) ([]int, error) {
	var ids []int
	for page := 1; page <= maxListPages; page++ {
		params := url.Values{}
		params.Set("corp", strconv.Itoa(c.cfg.Corp))
		params.Set("perPage", strconv.Itoa(c.cfg.PerPage))
		params.Set("is_discon", "0")
		params.Set("p", strconv.Itoa(page))

		body, err := c.get(ctx, "list", "/cards", params)
		if err != nil {
			return nil, err
		}

		var list listResponse
		if err := json.Unmarshal(body, &list); err != nil {
			return nil, fmt.Errorf("failed to decode response: %w", err)
		}
		for _, item := range list.Data {
			ids = append(ids, item.CID)
		}

		c.debugLog("list page %d: %d cards (total %d)", page, len(list.Data), list.Total)
		if len(list.Data) == 0 || len(ids) >= list.Total {
			break
		}
	}
	return ids, nil
}

// GetCard retrieves one card detail
func (c *Client) GetCard(ctx context.Context, cardID int) (*domain.RawCard, error) {
	body, err := c.get(ctx, "detail", fmt.Sprintf("/cards/%d", cardID), nil)
	if err != nil {
		return nil, err
	}

	var detail detailResponse
	if err := json.Unmarshal(body, &detail); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}
	if detail.CID == 0 {
		detail.CID = cardID
	}
	return MapToRawCard(&detail), nil
}

// get performs a rate-limited GET with retries on transport errors, 5xx and 429
func (c *Client) get(ctx context.Context, endpoint, path string, params url.Values) ([]byte, error) {
	reqURL := c.cfg.BaseURL + path
	if len(params) > 0 {
		reqURL += "?" + params.Encode()
	}
	if _, err := url.ParseRequestURI(reqURL); err != nil {
		return nil, fmt.Errorf("invalid request URL: %w", err)
	}

	var lastErr error
	for attempt := 1; attempt <= c.cfg.MaxRetries; attempt++ {
		if err := c.rateLimiter.Wait(ctx); err != nil {
			return nil, fmt.Errorf("rate limiter error: %w", err)
		}

		out, err := c.breaker.Execute(func() (interface{}, error) {
			return c.doRequest(ctx, reqURL)
		})
		if err != nil {
			if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
				c.record(endpoint, OutcomeCircuitOpen)
				return nil, fmt.Errorf("%w: %v", domain.ErrCircuitOpen, err)
			}
			c.record(endpoint, OutcomeError)
			if ctx.Err() != nil {
				return nil, fmt.Errorf("%w: %v", domain.ErrUpstreamFailure, ctx.Err())
			}

			c.debugLog("request error (attempt %d/%d) %s: %v", attempt, c.cfg.MaxRetries, reqURL, err)
			lastErr = err
			if attempt < c.cfg.MaxRetries {
				if err := sleep(ctx, c.backoff(attempt)); err != nil {
					return nil, fmt.Errorf("%w: %v", domain.ErrUpstreamFailure, err)
				}
			}
			continue
		}

		resp := out.(*response)
		switch {
		case resp.status == http.StatusOK:
			c.record(endpoint, OutcomeOK)
			return resp.body, nil
		case resp.status == http.StatusNotFound:
			c.record(endpoint, OutcomeNotFound)
			return nil, domain.ErrCardNotFound
		default:
			// Other client errors are not retried
			c.record(endpoint, OutcomeError)
			return nil, fmt.Errorf("%w: status %d, body: %s", domain.ErrUpstreamFailure, resp.status, truncateBody(resp.body))
		}
	}

	c.logger.Warn("All retries failed", zap.String("url", reqURL), zap.Error(lastErr))
	return nil, lastErr
}

// doRequest executes one GET. Transport errors, 5xx and 429 are returned as errors
// so they count against the circuit breaker; other statuses are returned for the caller.
func (c *Client) doRequest(ctx context.Context, reqURL string) (*response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("User-Agent", c.cfg.UserAgent)
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Referer", c.cfg.Referer)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrUpstreamFailure, err)
	}
	defer resp.Body.Close()

	body, err := readLimitedBody(resp.Body, maxBodyBytes)
	if err != nil {
		return nil, fmt.Errorf("%w: reading body: %v", domain.ErrUpstreamFailure, err)
	}

	if resp.StatusCode >= http.StatusInternalServerError || resp.StatusCode == http.StatusTooManyRequests {
		return nil, fmt.Errorf("%w: status %d, body: %s", domain.ErrUpstreamFailure, resp.StatusCode, truncateBody(body))
	}
	return &response{status: resp.StatusCode, body: body}, nil
}

func (c *Client) record(endpoint, outcome string) {
	if c.recorder != nil {
		c.recorder.UpstreamRequest(endpoint, outcome)
	}
}

func sleep(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

func truncateBody(body []byte) string {
	if len(body) > maxErrorBodyBytes {
		body = body[:maxErrorBodyBytes]
	}
	return string(body)
}
