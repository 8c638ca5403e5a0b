package seek

import (
	"context"
	"fmt"
	"strings"

	"github.com/honeycarbs/career-hunter/internal/domain"
	jobdomain "github.com/honeycarbs/career-hunter/internal/domain/job"
	"github.com/honeycarbs/career-hunter/pkg/seek"
)

const (
	sourceName = "Seek"

	// Seek only lists Australian jobs
	supportedCountry = "AU"

	datePostedLabel = "Recent"
)

// searchClient describes the subset of the Seek client used by the provider.
type searchClient interface {
	SearchJobs(ctx context.Context, params seek.SearchParams) ([]seek.Card, error)
}

// Provider implements job.Provider by scraping Seek
type Provider struct {
	client searchClient
}

// NewProvider builds a Seek provider
func NewProvider(client searchClient) (*Provider, error) {
	if client == nil {
		return nil, fmt.Errorf("seek provider: client is required")
	}
	return &Provider{client: client}, nil
}

// Name returns provider identifier
func (p *Provider) Name() string {
	return "seek"
}

// Search scrapes Seek and returns normalized listings; non-AU searches return nothing
func (p *Provider) Search(ctx context.Context, req jobdomain.SourceRequest) ([]domain.JobListing, error) {
	if p == nil || p.client == nil {
		return nil, fmt.Errorf("seek provider: client is nil")
	}

	if !strings.EqualFold(strings.TrimSpace(req.Country), supportedCountry) {
		return []domain.JobListing{}, nil
	}

	cards, err := p.client.SearchJobs(ctx, seek.SearchParams{
		Keywords:  req.Role,
		SalaryMin: req.SalaryMin,
		SalaryMax: req.SalaryMax,
		Limit:     req.Limit,
	})
	if err != nil {
		return nil, err
	}

	salaryLabel := fmt.Sprintf("%d-%d", req.SalaryMin, req.SalaryMax)

	out := make([]domain.JobListing, 0, len(cards))
	for _, c := range cards {
		out = append(out, toListing(c, salaryLabel))
	}
	return out, nil
}

var _ jobdomain.Provider = (*Provider)(nil)

func toListing(c seek.Card, salaryLabel string) domain.JobListing {
	location := orNotAvailable(c.Location)
	isRemote, label := jobdomain.Classify(c.Location)

	id := "seek_unknown"
	if c.JobID != "" {
		id = "seek_" + c.JobID
	}

	return domain.JobListing{
		ID:              id,
		Source:          sourceName,
		Title:           orNotAvailable(c.Title),
		Company:         orNotAvailable(c.Company),
		Location:        location,
		DatePosted:      datePostedLabel,
		JobURL:          orNotAvailable(c.JobURL),
		SalaryRange:     salaryLabel,
		CompanyURL:      c.CompanyURL,
		Description:     c.Description,
		IsRemote:        &isRemote,
		WorkArrangement: label,
	}
}

func orNotAvailable(s string) string {
	if strings.TrimSpace(s) == "" {
		return domain.NotAvailable
	}
	return s
}
