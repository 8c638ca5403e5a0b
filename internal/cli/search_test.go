package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/honeycarbs/career-hunter/internal/domain"
	"github.com/honeycarbs/career-hunter/internal/export"
	"github.com/honeycarbs/career-hunter/internal/server"
)

type fakeService struct {
	jobs []domain.JobListing
	err  error
	got  domain.SearchQuery
}

func (f *fakeService) Search(_ context.Context, q domain.SearchQuery) ([]domain.JobListing, error) {
	f.got = q
	return f.jobs, f.err
}

func (f *fakeService) ClearCache() int { return 0 }

type fakeExporter struct {
	target export.SheetTarget
	rows   int
}

func (f *fakeExporter) Export(_ context.Context, target export.SheetTarget, jobs []domain.JobListing) (export.SheetResult, error) {
	f.target = target
	f.rows = len(jobs)
	return export.SheetResult{SpreadsheetID: target.SpreadsheetID, Tab: "Sheet1", WrittenRows: len(jobs)}, nil
}

func run(t *testing.T, search *server.Search, args ...string) (stdout, stderr string, logLevel string, err error) {
	t.Helper()

	build := func(_ context.Context, level string) (*server.Search, func(), error) {
		logLevel = level
		return search, func() {}, nil
	}

	var out, errOut bytes.Buffer
	cmd := NewRootCmd(build)
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)

	err = cmd.ExecuteContext(context.Background())
	return out.String(), errOut.String(), logLevel, err
}

func listing() domain.JobListing {
	return domain.JobListing{
		ID:          "seek_1",
		Source:      "Seek",
		Title:       "Software Engineer",
		Company:     "Acme",
		Location:    "Sydney NSW",
		SalaryRange: "140000-200000",
		JobURL:      "https://www.seek.com.au/job/1",
	}
}

func TestSearch_Table(t *testing.T) {
	svc := &fakeService{jobs: []domain.JobListing{listing()}}

	out, _, level, err := run(t, &server.Search{Service: svc}, "search", "-r", "Software Engineer", "-s", "140k-200k")
	require.NoError(t, err)

	assert.Equal(t, "warn", level)
	assert.Contains(t, out, "Found 1 job(s)")
	assert.Contains(t, out, "Search Results:")
	assert.Contains(t, out, "salary_range")
	assert.Contains(t, out, "Acme")

	assert.Equal(t, domain.SearchQuery{
		Role:     "Software Engineer",
		Country:  "AU",
		Location: "Australia",
		Salary:   "140k-200k",
		WorkType: domain.WorkTypeAll,
		Limit:    10,
	}, svc.got)
}

func TestSearch_Flags(t *testing.T) {
	svc := &fakeService{}

	out, _, level, err := run(t, &server.Search{Service: svc},
		"search", "--role", "Nurse", "--salary", "80k-100k", "-c", "US", "-l", "Boston", "-n", "3", "-w", "hybrid", "--log-level", "debug")
	require.NoError(t, err)

	assert.Equal(t, "debug", level)
	assert.Equal(t, "No jobs found.\n", out)
	assert.Equal(t, domain.SearchQuery{
		Role:     "Nurse",
		Country:  "US",
		Location: "Boston",
		Salary:   "80k-100k",
		WorkType: domain.WorkTypeHybrid,
		Limit:    3,
	}, svc.got)
}

func TestSearch_JSON(t *testing.T) {
	svc := &fakeService{jobs: []domain.JobListing{listing()}}

	out, _, _, err := run(t, &server.Search{Service: svc}, "search", "-r", "Engineer", "-s", "1k-2k", "--json")
	require.NoError(t, err)

	var got []domain.JobListing
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.Equal(t, svc.jobs, got)

	out, _, _, err = run(t, &server.Search{Service: &fakeService{}}, "search", "-r", "Engineer", "-s", "1k-2k", "--json")
	require.NoError(t, err)
	assert.JSONEq(t, `[]`, out)
}

func TestSearch_CSVDefaultName(t *testing.T) {
	t.Chdir(t.TempDir())
	svc := &fakeService{jobs: []domain.JobListing{listing()}}

	_, stderr, _, err := run(t, &server.Search{Service: svc}, "search", "-r", "Software Engineer", "-s", "1k-2k", "--csv")
	require.NoError(t, err)

	assert.Contains(t, stderr, "jobs_AU_Software_Engineer.csv")
	_, err = os.Stat("jobs_AU_Software_Engineer.csv")
	assert.NoError(t, err)
}

func TestSearch_CSVPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.csv")
	svc := &fakeService{jobs: []domain.JobListing{listing()}}

	_, _, _, err := run(t, &server.Search{Service: svc}, "search", "-r", "Engineer", "-s", "1k-2k", "--csv="+path)
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "seek_1")
}

func TestSearch_CSVSkippedWhenEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.csv")

	_, _, _, err := run(t, &server.Search{Service: &fakeService{}}, "search", "-r", "Engineer", "-s", "1k-2k", "--csv="+path)
	require.NoError(t, err)

	_, err = os.Stat(path)
	assert.True(t, errors.Is(err, os.ErrNotExist))
}

func TestSearch_SheetExport(t *testing.T) {
	svc := &fakeService{jobs: []domain.JobListing{listing()}}
	exporter := &fakeExporter{}

	_, stderr, _, err := run(t, &server.Search{Service: svc, Exporter: exporter},
		"search", "-r", "Engineer", "-s", "1k-2k", "--sheet-id", "doc-1", "--sheet-tab", "Jobs")
	require.NoError(t, err)

	assert.Equal(t, export.SheetTarget{SpreadsheetID: "doc-1", Tab: "Jobs"}, exporter.target)
	assert.Equal(t, 1, exporter.rows)
	assert.Contains(t, stderr, "Exported 1 row(s)")

	_, _, _, err = run(t, &server.Search{Service: svc}, "search", "-r", "Engineer", "-s", "1k-2k", "--sheet-id", "doc-1")
	assert.Error(t, err)
}

func TestSearch_Errors(t *testing.T) {
	tests := []struct {
		name    string
		svcErr  error
		args    []string
		wantMsg string
	}{
		{
			name:    "missing required flags",
			args:    []string{"search", "-r", "Engineer"},
			wantMsg: `required flag(s) "salary" not set`,
		},
		{
			name:    "bad work type",
			args:    []string{"search", "-r", "Engineer", "-s", "1k-2k", "-w", "sometimes"},
			wantMsg: "invalid query",
		},
		{
			name:    "salary format",
			svcErr:  fmt.Errorf("%w: expected min-max", domain.ErrInvalidFormat),
			args:    []string{"search", "-r", "Engineer", "-s", "lots"},
			wantMsg: "error parsing salary",
		},
		{
			name:    "other failure",
			svcErr:  fmt.Errorf("%w: limit must be between 1 and 100 (got 500)", domain.ErrInvalidQuery),
			args:    []string{"search", "-r", "Engineer", "-s", "1k-2k", "-n", "500"},
			wantMsg: "search failed",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, _, err := run(t, &server.Search{Service: &fakeService{err: tt.svcErr}}, tt.args...)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantMsg)
		})
	}
}
