package adzuna

import (
	"net/http"
	"time"
)

// Config defines Adzuna API client settings
type Config struct {
	AppID      string
	AppKey     string
	BaseURL    string
	Timeout    time.Duration
	HTTPClient *http.Client
}

// Client queries Adzuna job search API
type Client struct {
	appID      string
	appKey     string
	baseURL    string
	httpClient *http.Client
}

// SearchParams describe a job search request. Country is an Adzuna market code such as "au" or "gb".
type SearchParams struct {
	What           string
	Where          string
	Country        string
	SalaryMin      int
	SalaryMax      int
	ResultsPerPage int
}

type jobSearchResponse struct {
	Count   int          `json:"count"`
	Results []jobPosting `json:"results"`
}

type jobPosting struct {
	ID           string          `json:"id"`
	Title        string          `json:"title"`
	Company      companySummary  `json:"company"`
	Location     locationSummary `json:"location"`
	Description  string          `json:"description"`
	Created      string          `json:"created"`
	RedirectURL  string          `json:"redirect_url"`
	ContractTime string          `json:"contract_time"`
	SalaryMin    float64         `json:"salary_min"`
	SalaryMax    float64         `json:"salary_max"`
}

type companySummary struct {
	DisplayName string `json:"display_name"`
}

type locationSummary struct {
	DisplayName string `json:"display_name"`
}

// Job represents a normalized Adzuna job posting.
type Job struct {
	ID          string
	Title       string
	CompanyName string
	Location    string
	URL         string
	Description string
	PostedAt    time.Time
	SalaryMin   float64
	SalaryMax   float64
}
