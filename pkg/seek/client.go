package seek

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

const (
	defaultBaseURL   = "https://www.seek.com.au/jobs"
	defaultUserAgent = "Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) " +
		"AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36"
	defaultTimeout = 20 * time.Second
	defaultLimit   = 10
)

// NewClient instantiates a Seek scraper
func NewClient(cfg Config) (*Client, error) {
	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = defaultBaseURL
	}

	u, err := url.Parse(baseURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return nil, fmt.Errorf("seek: invalid base url %q", baseURL)
	}

	userAgent := cfg.UserAgent
	if userAgent == "" {
		userAgent = defaultUserAgent
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
		baseURL:    baseURL,
		siteURL:    u.Scheme + "://" + u.Host,
		userAgent:  userAgent,
		httpClient: httpClient,
	}, nil
}

// SearchJobs fetches the first result page and returns up to params.Limit cards
func (c *Client) SearchJobs(ctx context.Context, params SearchParams) ([]Card, error) {
	if c == nil {
		return nil, fmt.Errorf("seek: client is nil")
	}
	if strings.TrimSpace(params.Keywords) == "" {
		return nil, fmt.Errorf("seek: keywords are required")
	}

	limit := params.Limit
	if limit <= 0 {
		limit = defaultLimit
	}

	values := url.Values{}
	values.Set("keywords", params.Keywords)
	values.Set("salaryrange", fmt.Sprintf("%d-%d", params.SalaryMin, params.SalaryMax))
	values.Set("salarytype", "annual")
	values.Set("sortmode", "ListedDate")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"?"+values.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("seek: build request: %w", err)
	}
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("Accept", "text/html,application/xhtml+xml,application/xml;q=0.9,image/avif,image/webp,*/*;q=0.8")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("seek: request failed: %w", err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode != http.StatusOK {
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, 4096))
		return nil, fmt.Errorf("seek: unexpected status %d", resp.StatusCode)
	}

	cards, err := ParseCards(resp.Body, c.siteURL, limit)
	if err != nil {
		return nil, fmt.Errorf("seek: %w", err)
	}
	return cards, nil
}
