package adzuna

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/honeycarbs/career-hunter/internal/domain"
	jobdomain "github.com/honeycarbs/career-hunter/internal/domain/job"
	"github.com/honeycarbs/career-hunter/pkg/adzuna"
)

// markets maps country codes to Adzuna market codes; others are not served
var markets = map[string]string{
	"AU": "au",
	"US": "us",
	"UK": "gb",
	"GB": "gb",
	"NZ": "nz",
	"CA": "ca",
	"IN": "in",
	"SG": "sg",
}

// searchClient describes the subset of the Adzuna client used by the provider.
type searchClient interface {
	SearchJobs(ctx context.Context, params adzuna.SearchParams) ([]adzuna.Job, error)
}

// Provider implements job.Provider using Adzuna API
type Provider struct {
	client searchClient
}

// NewProvider builds an Adzuna provider
func NewProvider(client searchClient) (*Provider, error) {
	if client == nil {
		return nil, fmt.Errorf("adzuna provider: client is required")
	}
	return &Provider{client: client}, nil
}

// Name returns provider identifier
func (p *Provider) Name() string {
	return "adzuna"
}

// Search queries the Adzuna market for req.Country; unsupported countries yield no listings
func (p *Provider) Search(ctx context.Context, req jobdomain.SourceRequest) ([]domain.JobListing, error) {
	if p == nil || p.client == nil {
		return nil, fmt.Errorf("adzuna provider: client is nil")
	}

	market, ok := markets[strings.ToUpper(strings.TrimSpace(req.Country))]
	if !ok {
		return []domain.JobListing{}, nil
	}

	respJobs, err := p.client.SearchJobs(ctx, adzuna.SearchParams{
		What:           req.Role,
		Where:          req.Location,
		Country:        market,
		SalaryMin:      req.SalaryMin,
		SalaryMax:      req.SalaryMax,
		ResultsPerPage: req.Limit,
	})
	if err != nil {
		return nil, err
	}

	out := make([]domain.JobListing, 0, len(respJobs))
	for _, j := range respJobs {
		out = append(out, toListing(j))
	}

	return out, nil
}

var _ jobdomain.Provider = (*Provider)(nil)

func toListing(j adzuna.Job) domain.JobListing {
	id := j.ID
	if id == "" {
		id = "unknown"
	}

	l := domain.JobListing{
		ID:          "adzuna_" + id,
		Source:      "Adzuna",
		Title:       orNotAvailable(j.Title),
		Company:     orNotAvailable(j.CompanyName),
		Location:    j.Location,
		JobURL:      orNotAvailable(j.URL),
		SalaryRange: salaryLabel(j.SalaryMin, j.SalaryMax),
		Description: j.Description,
	}
	if !j.PostedAt.IsZero() {
		l.DatePosted = j.PostedAt.UTC().Format(time.DateOnly)
	}

	isRemote, label := jobdomain.Classify(j.Location)
	l.IsRemote = &isRemote
	l.WorkArrangement = label

	return l
}

func salaryLabel(lo, hi float64) string {
	switch {
	case lo > 0 && hi > 0:
		return fmt.Sprintf("%.0f-%.0f", lo, hi)
	case lo > 0:
		return fmt.Sprintf("%.0f+", lo)
	case hi > 0:
		return fmt.Sprintf("up to %.0f", hi)
	default:
		return ""
	}
}

func orNotAvailable(s string) string {
	if s == "" {
		return domain.NotAvailable
	}
	return s
}
