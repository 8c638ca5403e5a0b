package job

import (
	"context"
	"time"

	"github.com/honeycarbs/career-hunter/internal/domain"
)

// Provider represents an external job data source (Seek, JobSpy, ...)
type Provider interface {
	// e.g. "seek" or "jobspy"
	Name() string

	// Search returns normalized listings, at most req.Limit per underlying site
	Search(ctx context.Context, req SourceRequest) ([]domain.JobListing, error)
}

// SourceRequest is the per-source view of a SearchQuery
type SourceRequest struct {
	Role      string
	Country   string
	Location  string
	SalaryMin int
	SalaryMax int
	Limit     int
}

// SourceResult is the outcome of one provider dispatch
type SourceResult struct {
	Source   string
	Listings []domain.JobListing
	Err      error
	Duration time.Duration
}

// OK reports whether the provider answered without error
func (r SourceResult) OK() bool {
	return r.Err == nil
}

func newSourceRequest(q domain.SearchQuery, salary domain.SalaryRange) SourceRequest {
	return SourceRequest{
		Role:      q.Role,
		Country:   q.Country,
		Location:  q.Location,
		SalaryMin: salary.Min,
		SalaryMax: salary.Max,
		Limit:     q.Limit,
	}
}
