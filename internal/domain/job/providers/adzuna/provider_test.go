package adzuna

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/honeycarbs/career-hunter/internal/domain"
	jobdomain "github.com/honeycarbs/career-hunter/internal/domain/job"
	"github.com/honeycarbs/career-hunter/pkg/adzuna"
)

type stubClient struct {
	jobs   []adzuna.Job
	calls  int
	params adzuna.SearchParams
}

func (s *stubClient) SearchJobs(_ context.Context, params adzuna.SearchParams) ([]adzuna.Job, error) {
	s.calls++
	s.params = params
	return s.jobs, nil
}

func TestProvider_Search(t *testing.T) {
	client := &stubClient{jobs: []adzuna.Job{
		{
			ID:          "1",
			Title:       "Engineer",
			CompanyName: "Acme",
			Location:    "London (Hybrid)",
			URL:         "https://www.adzuna.co.uk/details/1",
			PostedAt:    time.Date(2025, 2, 3, 23, 0, 0, 0, time.UTC),
			SalaryMin:   60000,
			SalaryMax:   80000,
		},
		{SalaryMax: 40000},
	}}
	p, err := NewProvider(client)
	require.NoError(t, err)

	got, err := p.Search(context.Background(), jobdomain.SourceRequest{
		Role:      "Engineer",
		Country:   "uk",
		Location:  "London",
		SalaryMin: 60000,
		SalaryMax: 90000,
		Limit:     10,
	})
	require.NoError(t, err)

	assert.Equal(t, adzuna.SearchParams{
		What:           "Engineer",
		Where:          "London",
		Country:        "gb",
		SalaryMin:      60000,
		SalaryMax:      90000,
		ResultsPerPage: 10,
	}, client.params)

	require.Len(t, got, 2)
	assert.Equal(t, "adzuna_1", got[0].ID)
	assert.Equal(t, "Adzuna", got[0].Source)
	assert.Equal(t, "2025-02-03", got[0].DatePosted)
	assert.Equal(t, "60000-80000", got[0].SalaryRange)
	assert.Equal(t, jobdomain.LabelHybrid, got[0].WorkArrangement)
	require.NotNil(t, got[0].IsRemote)
	assert.False(t, *got[0].IsRemote)

	assert.Equal(t, "adzuna_unknown", got[1].ID)
	assert.Equal(t, domain.NotAvailable, got[1].Title)
	assert.Equal(t, domain.NotAvailable, got[1].JobURL)
	assert.Equal(t, "up to 40000", got[1].SalaryRange)
	assert.Empty(t, got[1].DatePosted)
}

func TestProvider_UnsupportedMarket(t *testing.T) {
	client := &stubClient{}
	p, err := NewProvider(client)
	require.NoError(t, err)

	got, err := p.Search(context.Background(), jobdomain.SourceRequest{Role: "Engineer", Country: "DE"})
	require.NoError(t, err)
	assert.Empty(t, got)
	assert.Zero(t, client.calls)
}

func TestSalaryLabel(t *testing.T) {
	assert.Equal(t, "1-2", salaryLabel(1, 2))
	assert.Equal(t, "50000+", salaryLabel(50000, 0))
	assert.Equal(t, "up to 9", salaryLabel(0, 9))
	assert.Equal(t, "", salaryLabel(0, 0))
}
