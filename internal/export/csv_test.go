package export

import (
	"bytes"
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/honeycarbs/career-hunter/internal/domain"
)

func sampleJobs() []domain.JobListing {
	remote := true
	return []domain.JobListing{
		{
			ID:              "seek_1",
			Source:          "Seek",
			Title:           "Engineer, Platform",
			Company:         "Acme",
			Location:        "Sydney NSW",
			DatePosted:      "Recent",
			SalaryRange:     "140000-200000",
			JobURL:          "https://www.seek.com.au/job/1",
			IsRemote:        &remote,
			WorkArrangement: "remote",
			Description:     "line one\nline \"two\"",
		},
		{ID: "in-2", Source: "Indeed", Title: "Developer"},
	}
}

func TestRow(t *testing.T) {
	jobs := sampleJobs()

	row := Row(jobs[0])
	require.Len(t, row, len(Columns))
	assert.Equal(t, "true", row[9])
	assert.Equal(t, "remote", row[10])

	assert.Equal(t, "", Row(jobs[1])[9], "unknown remote flag stays blank")
}

func TestWriteCSV(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, sampleJobs()))

	records, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 3)

	assert.Equal(t, Columns, records[0])
	assert.Equal(t, "Engineer, Platform", records[1][2])
	assert.Equal(t, "line one\nline \"two\"", records[1][11])
	assert.Equal(t, "in-2", records[2][0])
}

func TestWriteCSV_HeaderOnly(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, nil))

	records, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	assert.Equal(t, [][]string{Columns}, records)
}

func TestSaveCSV(t *testing.T) {
	path := filepath.Join(t.TempDir(), CSVFileName("AU", "Software Engineer"))
	assert.Equal(t, "jobs_AU_Software_Engineer.csv", filepath.Base(path))

	require.NoError(t, SaveCSV(path, sampleJobs()))

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	records, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	assert.Len(t, records, 3)

	assert.Error(t, SaveCSV(filepath.Join(t.TempDir(), "missing", "out.csv"), nil))
}
