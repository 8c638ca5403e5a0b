package adzuna

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"path"
	"strconv"
	"strings"
	"time"
)

const (
	defaultBaseURL  = "https://api.adzuna.com"
	defaultCountry  = "au"
	defaultPageSize = 20
	defaultTimeout  = 20 * time.Second
	maxPageSize     = 50
)

// NewClient instantiates an Adzuna API client
func NewClient(cfg Config) (*Client, error) {
	if cfg.AppID == "" || cfg.AppKey == "" {
		return nil, fmt.Errorf("adzuna: app_id and app_key are required")
	}

	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	baseURL = strings.TrimSuffix(baseURL, "/")

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		timeout := cfg.Timeout
		if timeout <= 0 {
			timeout = defaultTimeout
		}
		httpClient = &http.Client{Timeout: timeout}
	}

	return &Client{
		appID:      cfg.AppID,
		appKey:     cfg.AppKey,
		baseURL:    baseURL,
		httpClient: httpClient,
	}, nil
}

// SearchJobs queries the first results page of one Adzuna market
func (c *Client) SearchJobs(ctx context.Context, params SearchParams) ([]Job, error) {
	if c == nil {
		return nil, fmt.Errorf("adzuna: client is nil")
	}

	u, err := c.buildSearchURL(params)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, fmt.Errorf("adzuna: build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("adzuna: request failed: %w", err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode >= http.StatusBadRequest {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return nil, fmt.Errorf("adzuna: API error (%d): %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}

	var payload jobSearchResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("adzuna: decode response: %w", err)
	}

	jobs := make([]Job, 0, len(payload.Results))
	for _, posting := range payload.Results {
		jobs = append(jobs, mapPosting(posting))
	}

	return jobs, nil
}

func (c *Client) buildSearchURL(params SearchParams) (string, error) {
	if strings.TrimSpace(params.What) == "" {
		return "", fmt.Errorf("adzuna: query is required")
	}

	u, err := url.Parse(c.baseURL)
	if err != nil {
		return "", fmt.Errorf("adzuna: parse base url: %w", err)
	}

	country := strings.ToLower(strings.TrimSpace(params.Country))
	if country == "" {
		country = defaultCountry
	}
	u.Path = path.Join(u.Path, "v1", "api", "jobs", country, "search", "1")

	pageSize := params.ResultsPerPage
	if pageSize <= 0 {
		pageSize = defaultPageSize
	}
	if pageSize > maxPageSize {
		pageSize = maxPageSize
	}

	values := url.Values{}
	values.Set("app_id", c.appID)
	values.Set("app_key", c.appKey)
	values.Set("what", params.What)
	values.Set("results_per_page", strconv.Itoa(pageSize))
	values.Set("content-type", "application/json")

	if params.Where != "" {
		values.Set("where", params.Where)
	}
	if params.SalaryMin > 0 {
		values.Set("salary_min", strconv.Itoa(params.SalaryMin))
	}
	if params.SalaryMax > 0 {
		values.Set("salary_max", strconv.Itoa(params.SalaryMax))
	}

	u.RawQuery = values.Encode()
	return u.String(), nil
}

func mapPosting(posting jobPosting) Job {
	job := Job{
		ID:          posting.ID,
		Title:       strings.TrimSpace(posting.Title),
		CompanyName: strings.TrimSpace(posting.Company.DisplayName),
		Location:    strings.TrimSpace(posting.Location.DisplayName),
		URL:         posting.RedirectURL,
		Description: posting.Description,
		SalaryMin:   posting.SalaryMin,
		SalaryMax:   posting.SalaryMax,
	}

	if posting.Created != "" {
		if ts, err := time.Parse(time.RFC3339, posting.Created); err == nil {
			job.PostedAt = ts
		}
	}

	return job
}
