package jobspy

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/honeycarbs/career-hunter/internal/domain"
	jobdomain "github.com/honeycarbs/career-hunter/internal/domain/job"
	"github.com/honeycarbs/career-hunter/pkg/jobspy"
)

// countryNames maps country codes to the names JobSpy expects for Indeed
var countryNames = map[string]string{
	"AU": "australia",
	"US": "usa",
	"UK": "united kingdom",
	"GB": "united kingdom",
	"NZ": "new zealand",
	"CA": "canada",
	"IN": "india",
	"SG": "singapore",
}

// CountryName resolves a code; unknown codes pass through lowercased
func CountryName(code string) string {
	code = strings.TrimSpace(code)
	if name, ok := countryNames[strings.ToUpper(code)]; ok {
		return name
	}
	return strings.ToLower(code)
}

// searchClient describes the subset of the JobSpy client used by the provider.
type searchClient interface {
	SearchJobs(ctx context.Context, params jobspy.SearchParams) ([]jobspy.Row, error)
}

// Options tune the scrape beyond what a search query carries
type Options struct {
	Sites    []string
	HoursOld int
	Proxies  []string
}

// Provider implements job.Provider on top of a JobSpy service
type Provider struct {
	client searchClient
	opts   Options
}

// NewProvider builds a JobSpy provider
func NewProvider(client searchClient, opts Options) (*Provider, error) {
	if client == nil {
		return nil, fmt.Errorf("jobspy provider: client is required")
	}
	if len(opts.Sites) == 0 {
		opts.Sites = jobspy.DefaultSites
	}
	return &Provider{client: client, opts: opts}, nil
}

// Name returns provider identifier
func (p *Provider) Name() string {
	return "jobspy"
}

// Search queries every configured board through JobSpy and returns normalized listings
func (p *Provider) Search(ctx context.Context, req jobdomain.SourceRequest) ([]domain.JobListing, error) {
	if p == nil || p.client == nil {
		return nil, fmt.Errorf("jobspy provider: client is nil")
	}

	rows, err := p.client.SearchJobs(ctx, jobspy.SearchParams{
		Sites:             p.opts.Sites,
		SearchTerm:        req.Role,
		Location:          req.Location,
		ResultsWanted:     req.Limit,
		CountryIndeed:     CountryName(req.Country),
		HoursOld:          p.opts.HoursOld,
		Proxies:           p.opts.Proxies,
		FetchDescription:  true,
		DescriptionFormat: "markdown",
	})
	if err != nil {
		return nil, err
	}

	out := make([]domain.JobListing, 0, len(rows))
	for _, r := range rows {
		out = append(out, normalizeRow(r))
	}
	return out, nil
}

var _ jobdomain.Provider = (*Provider)(nil)

// normalizeRow turns an untyped row into a listing. Required text fields default
// to N/A, optional ones are left empty and the remote flag stays unset if absent.
func normalizeRow(r jobspy.Row) domain.JobListing {
	j := domain.JobListing{
		ID:              r.String("id"),
		Source:          siteLabel(r.String("site")),
		Title:           orNotAvailable(r.String("title")),
		Company:         orNotAvailable(r.String("company")),
		Location:        r.String("location"),
		DatePosted:      r.Date("date_posted"),
		JobURL:          orNotAvailable(r.String("job_url")),
		SalaryRange:     salaryLabel(r),
		CompanyURL:      r.String("company_url_direct"),
		Description:     r.String("description"),
		WorkArrangement: r.String("work_from_home_type"),
	}

	if j.ID == "" {
		j.ID = uuid.NewString()
	}
	if j.CompanyURL == "" {
		j.CompanyURL = r.String("company_url")
	}
	if remote, ok := r.Bool("is_remote"); ok {
		j.IsRemote = &remote
	}

	return j
}

func salaryLabel(r jobspy.Row) string {
	if s := r.String("salary_range"); s != "" {
		return s
	}

	lo, hasLo := r.Float("min_amount")
	hi, hasHi := r.Float("max_amount")
	if !hasLo && !hasHi {
		return ""
	}

	var b strings.Builder
	if cur := r.String("currency"); cur != "" {
		b.WriteString(cur)
		b.WriteByte(' ')
	}
	switch {
	case hasLo && hasHi:
		fmt.Fprintf(&b, "%.0f-%.0f", lo, hi)
	case hasLo:
		fmt.Fprintf(&b, "%.0f+", lo)
	default:
		fmt.Fprintf(&b, "up to %.0f", hi)
	}
	if interval := r.String("interval"); interval != "" {
		b.WriteString(" / ")
		b.WriteString(interval)
	}
	return b.String()
}

func siteLabel(site string) string {
	switch strings.ToLower(site) {
	case "":
		return domain.NotAvailable
	case "linkedin":
		return "LinkedIn"
	case "indeed":
		return "Indeed"
	case "glassdoor":
		return "Glassdoor"
	default:
		return site
	}
}

func orNotAvailable(s string) string {
	if s == "" {
		return domain.NotAvailable
	}
	return s
}
