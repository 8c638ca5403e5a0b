package jobspy

import (
	"net/http"
	"time"
)

// Config defines JobSpy service client settings
type Config struct {
	BaseURL    string
	APIKey     string
	Timeout    time.Duration
	HTTPClient *http.Client
}

// Client calls a JobSpy HTTP service that scrapes several boards at once
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

// SearchParams mirror the scrape_jobs arguments of JobSpy
type SearchParams struct {
	Sites             []string `json:"site_name"`
	SearchTerm        string   `json:"search_term"`
	Location          string   `json:"location,omitempty"`
	ResultsWanted     int      `json:"results_wanted"`
	CountryIndeed     string   `json:"country_indeed,omitempty"`
	HoursOld          int      `json:"hours_old,omitempty"`
	Proxies           []string `json:"proxies,omitempty"`
	FetchDescription  bool     `json:"linkedin_fetch_description"`
	DescriptionFormat string   `json:"description_format,omitempty"`
}

type searchResponse struct {
	Count int   `json:"count"`
	Jobs  []Row `json:"jobs"`
}
