package jobspy

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

const (
	searchPath     = "/api/v1/search_jobs"
	defaultTimeout = 60 * time.Second
)

// DefaultSites are the boards scraped when none are configured
var DefaultSites = []string{"indeed", "linkedin", "glassdoor"}

// NewClient instantiates a JobSpy service client
func NewClient(cfg Config) (*Client, error) {
	if cfg.BaseURL == "" {
		return nil, fmt.Errorf("jobspy: base url is required")
	}

	u, err := url.Parse(cfg.BaseURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return nil, fmt.Errorf("jobspy: invalid base url %q", cfg.BaseURL)
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		timeout := cfg.Timeout
		if timeout <= 0 {
			timeout = defaultTimeout
		}
		httpClient = &http.Client{Timeout: timeout}
	}

	return &Client{
		baseURL:    strings.TrimSuffix(cfg.BaseURL, "/"),
		apiKey:     cfg.APIKey,
		httpClient: httpClient,
	}, nil
}

// SearchJobs runs one multi-site scrape and returns the raw result rows
func (c *Client) SearchJobs(ctx context.Context, params SearchParams) ([]Row, error) {
	if c == nil {
		return nil, fmt.Errorf("jobspy: client is nil")
	}
	if strings.TrimSpace(params.SearchTerm) == "" {
		return nil, fmt.Errorf("jobspy: search term is required")
	}
	if len(params.Sites) == 0 {
		params.Sites = DefaultSites
	}

	body, err := json.Marshal(params)
	if err != nil {
		return nil, fmt.Errorf("jobspy: encode request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+searchPath, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("jobspy: build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	if c.apiKey != "" {
		req.Header.Set("x-api-key", c.apiKey)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("jobspy: request failed: %w", err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode >= http.StatusBadRequest {
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return nil, fmt.Errorf("jobspy: API error (%d): %s", resp.StatusCode, strings.TrimSpace(string(msg)))
	}

	var payload searchResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("jobspy: decode response: %w", err)
	}

	return payload.Jobs, nil
}
