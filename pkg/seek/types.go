package seek

import (
	"net/http"
	"time"
)

// Config defines Seek scraper settings
type Config struct {
	BaseURL    string
	UserAgent  string
	Timeout    time.Duration
	HTTPClient *http.Client
}

// Client scrapes the Seek job search result page
type Client struct {
	baseURL    string
	siteURL    string
	userAgent  string
	httpClient *http.Client
}

// SearchParams describe a Seek keyword search
type SearchParams struct {
	Keywords  string
	SalaryMin int
	SalaryMax int
	Limit     int
}

// Card is one job card as it appears on the result page
type Card struct {
	JobID       string
	Title       string
	Company     string
	Location    string
	JobURL      string
	CompanyURL  string
	Description string
}
