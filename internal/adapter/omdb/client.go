package omdb

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/mmcdole/marquee/internal/domain"
	"github.com/rs/xid"
)

const (
	defaultTimeout = 15 * time.Second
	maxRetries     = 2
)

// baseRetryDelay is the first backoff step; tests shrink it.
var baseRetryDelay = 500 * time.Millisecond

// Client implements domain.MovieClient for the OMDb API
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
	logger     *slog.Logger
}

// NewClient creates a new OMDb API client
func NewClient(baseURL, apiKey string, timeout time.Duration, logger *slog.Logger) *Client {
	if logger == nil {
		logger = slog.Default()
	}
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &Client{
		baseURL: strings.TrimSpace(baseURL),
		apiKey:  apiKey,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		logger: logger,
	}
}

var _ domain.MovieClient = (*Client)(nil)

// doRequest performs a GET against the base URL with the API key attached.
// Retries with exponential backoff on 5xx responses.
func (c *Client) doRequest(ctx context.Context, query url.Values) ([]byte, error) {
	reqID := xid.New().String()

	// Log the query without the key
	logQuery := query.Encode()

	query.Set("apikey", c.apiKey)
	reqURL := c.baseURL + "?" + query.Encode()

	var lastErr error
	for attempt := 0; attempt <= maxRetries; attempt++ {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}

		if attempt > 0 {
			delay := baseRetryDelay * time.Duration(1<<(attempt-1)) // 500ms, 1s
			c.logger.Debug("retrying request", "request_id", reqID, "attempt", attempt, "delay", delay)
			select {
			case <-time.After(delay):
			case <-ctx.Done():
				return nil, ctx.Err()
			}
		}

		req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
		if err != nil {
			return nil, fmt.Errorf("failed to create request: %w", err)
		}
		req.Header.Set("Accept", "application/json")

		c.logger.Debug("omdb request", "request_id", reqID, "query", logQuery, "attempt", attempt)

		resp, err := c.httpClient.Do(req)
		if err != nil {
			if ctx.Err() != nil {
				return nil, ctx.Err()
			}
			c.logger.Error("omdb request failed", "request_id", reqID, "error", err)
			return nil, fmt.Errorf("%w: %v", domain.ErrServerOffline, err)
		}

		body, err := io.ReadAll(resp.Body)
		resp.Body.Close()
		if err != nil {
			return nil, fmt.Errorf("failed to read response: %w", err)
		}

		if resp.StatusCode == http.StatusUnauthorized {
			c.logger.Warn("omdb rejected api key", "request_id", reqID)
			return nil, domain.ErrAuthFailed
		}

		if resp.StatusCode >= 500 && resp.StatusCode < 600 {
			lastErr = fmt.Errorf("%w: %d", domain.ErrUnexpectedStatus, resp.StatusCode)
			c.logger.Warn("omdb server error, will retry",
				"request_id", reqID,
				"status", resp.StatusCode,
				"attempt", attempt,
				"maxRetries", maxRetries,
			)
			continue
		}

		if resp.StatusCode != http.StatusOK {
			c.logger.Error("omdb request error", "request_id", reqID, "status", resp.StatusCode, "body", string(body))
			return nil, fmt.Errorf("%w: %d", domain.ErrUnexpectedStatus, resp.StatusCode)
		}

		return body, nil
	}

	c.logger.Error("omdb request failed after retries", "request_id", reqID, "error", lastErr, "query", logQuery)
	return nil, lastErr
}

// Search returns titles matching query in server order
func (c *Client) Search(ctx context.Context, query string) ([]domain.MovieSummary, error) {
	params := url.Values{}
	params.Set("s", query)

	body, err := c.doRequest(ctx, params)
	if err != nil {
		return nil, err
	}

	var resp SearchResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("failed to parse response: %w", err)
	}

	if resp.Response == responseFalse {
		return nil, fmt.Errorf("%w: %s", domain.ErrNoResults, resp.Error)
	}

	return MapSearchItems(resp.Search), nil
}

// Detail returns the full record for one identifier
func (c *Client) Detail(ctx context.Context, id string) (*domain.MovieDetail, error) {
	params := url.Values{}
	params.Set("i", id)

	body, err := c.doRequest(ctx, params)
	if err != nil {
		return nil, err
	}

	var resp DetailResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("failed to parse response: %w", err)
	}

	if resp.Response == responseFalse {
		return nil, fmt.Errorf("%w: %s", domain.ErrMovieNotFound, resp.Error)
	}

	return MapDetail(resp), nil
}
