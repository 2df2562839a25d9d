package alerts

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"fraudwatch/internal/types"
	"fraudwatch/pkg/log"
)

// ClientConfig configures the alert API client.
type ClientConfig struct {
	BaseURL string
	Timeout time.Duration
}

// Client talks to the backend's fraud-alert endpoints. Pagination is
// zero-indexed; search filters travel in the JSON body while page
// coordinates travel as query parameters.
type Client struct {
	baseURL string
	http    *http.Client
	tokens  TokenProvider
	logger  log.Logger
}

// NewClient creates an alert API client. tokens may be nil when no
// authentication is configured.
func NewClient(cfg ClientConfig, tokens TokenProvider, logger log.Logger) *Client {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}

	return &Client{
		baseURL: cfg.BaseURL,
		http:    &http.Client{Timeout: timeout},
		tokens:  tokens,
		logger:  logger,
	}
}

// apiError is the backend's error body shape.
type apiError struct {
	Message string `json:"message"`
	Status  int    `json:"status"`
}

// Search fetches one page of alerts matching the filter.
func (c *Client) Search(ctx context.Context, filter Filter, page, size int) (*Page, error) {
	query := url.Values{}
	query.Set("page", strconv.Itoa(page))
	query.Set("size", strconv.Itoa(size))

	var result Page
	if err := c.do(ctx, http.MethodPost, "/fraud-alerts/search?"+query.Encode(), filter, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// GetByID fetches a single alert.
func (c *Client) GetByID(ctx context.Context, id string) (*Alert, error) {
	var result Alert
	if err := c.do(ctx, http.MethodGet, "/fraud-alerts/"+url.PathEscape(id), nil, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// UpdateStatus moves an alert through its review workflow.
func (c *Client) UpdateStatus(ctx context.Context, id string, status types.AlertStatus) (*Alert, error) {
	body := map[string]types.AlertStatus{"status": status}

	var result Alert
	if err := c.do(ctx, http.MethodPatch, "/fraud-alerts/"+url.PathEscape(id)+"/status", body, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// Recent fetches the most recent alerts without pagination.
func (c *Client) Recent(ctx context.Context, limit int) ([]Alert, error) {
	var result []Alert
	path := "/fraud-alerts/recent?limit=" + strconv.Itoa(limit)
	if err := c.do(ctx, http.MethodGet, path, nil, &result); err != nil {
		return nil, err
	}
	return result, nil
}

// Stats fetches the aggregate alert summary.
func (c *Client) Stats(ctx context.Context) (*Stats, error) {
	var result Stats
	if err := c.do(ctx, http.MethodGet, "/fraud-alerts/stats", nil, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// do performs one request against the backend, attaching the bearer token
// when the provider yields one and translating error bodies into readable
// messages.
func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var reader *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	if c.tokens != nil {
		if token := c.tokens.Token(); token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("request %s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		var apiErr apiError
		if decodeErr := json.NewDecoder(resp.Body).Decode(&apiErr); decodeErr == nil && apiErr.Message != "" {
			return fmt.Errorf("%s", apiErr.Message)
		}
		return fmt.Errorf("HTTP error: %d", resp.StatusCode)
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}
