package tools

import (
	"context"
	"fmt"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/honeycarbs/career-hunter/internal/domain"
	"github.com/honeycarbs/career-hunter/internal/domain/job"
	"github.com/honeycarbs/career-hunter/pkg/logging"
)

// JobSearchParams defines the arguments for the job_search tool
type JobSearchParams struct {
	Role     string `json:"role" jsonschema:"Job role to search for (e.g. Software Engineer)"`
	Salary   string `json:"salary" jsonschema:"Annual salary range as min-max (e.g. 140k-200k)"`
	Country  string `json:"country,omitempty" jsonschema:"Country code (default AU)"`
	Location string `json:"location,omitempty" jsonschema:"Location text (default Australia)"`
	WorkType string `json:"work_type,omitempty" jsonschema:"Work arrangement: all, remote, hybrid, onsite"`
	Limit    int    `json:"limit,omitempty" jsonschema:"Results requested per source, 1 to 100 (default 25)"`
}

// JobSearchResult is the structured output of job_search
type JobSearchResult struct {
	Jobs  []domain.JobListing `json:"jobs" jsonschema:"Matching listings in source order"`
	Count int                 `json:"count" jsonschema:"Number of listings returned"`
}

// CacheClearResult is the structured output of cache_clear
type CacheClearResult struct {
	Cleared int `json:"cleared" jsonschema:"Number of cached searches removed"`
}

type searchTool struct {
	svc    job.Service
	logger *logging.Logger
}

// WithJobSearch registers the job_search tool
func WithJobSearch(svc job.Service) Option {
	return func(reg *registry) {
		t := searchTool{svc: svc, logger: reg.logger}
		sdkmcp.AddTool(reg.server, &sdkmcp.Tool{
			Name:        "job_search",
			Description: "Search Seek, LinkedIn, Indeed and Glassdoor for a role and salary range, returning listings whose titles match the role",
		}, t.search)
	}
}

// WithCacheClear registers the cache_clear tool
func WithCacheClear(svc job.Service) Option {
	return func(reg *registry) {
		t := searchTool{svc: svc, logger: reg.logger}
		sdkmcp.AddTool(reg.server, &sdkmcp.Tool{
			Name:        "cache_clear",
			Description: "Drop every cached search result so the next search queries the sources again",
		}, t.clear)
	}
}

func (t searchTool) search(ctx context.Context, _ *sdkmcp.CallToolRequest, params *JobSearchParams) (*sdkmcp.CallToolResult, JobSearchResult, error) {
	if params == nil {
		params = &JobSearchParams{}
	}
	if t.svc == nil {
		return nil, JobSearchResult{}, fmt.Errorf("job service not configured")
	}

	wt, err := domain.ParseWorkType(params.WorkType)
	if err != nil {
		return nil, JobSearchResult{}, err
	}

	q := domain.SearchQuery{
		Role:     params.Role,
		Country:  params.Country,
		Location: params.Location,
		Salary:   params.Salary,
		WorkType: wt,
		Limit:    params.Limit,
	}

	t.logger.Debug("job_search called", "role", q.Role, "salary", q.Salary, "work_type", q.WorkType)

	jobs, err := t.svc.Search(ctx, q)
	if err != nil {
		t.logger.Warn("job_search rejected", "err", err)
		return nil, JobSearchResult{}, err
	}

	if jobs == nil {
		jobs = []domain.JobListing{}
	}

	result := JobSearchResult{Jobs: jobs, Count: len(jobs)}
	return textResult(fmt.Sprintf("found %d job(s) for %q", result.Count, q.Role)), result, nil
}

func (t searchTool) clear(_ context.Context, _ *sdkmcp.CallToolRequest, _ *struct{}) (*sdkmcp.CallToolResult, CacheClearResult, error) {
	if t.svc == nil {
		return nil, CacheClearResult{}, fmt.Errorf("job service not configured")
	}

	n := t.svc.ClearCache()
	return textResult(fmt.Sprintf("cleared %d cached search(es)", n)), CacheClearResult{Cleared: n}, nil
}
