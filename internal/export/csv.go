// Package export writes search results to CSV files and Google Sheets.
package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/honeycarbs/career-hunter/internal/domain"
)

// Columns is the header row shared by CSV and sheet exports
var Columns = []string{
	"id",
	"site",
	"title",
	"company",
	"location",
	"date_posted",
	"salary_range",
	"job_url",
	"company_url",
	"is_remote",
	"work_from_home_type",
	"description",
}

// Row flattens a listing in Columns order; an unknown remote flag is left blank
func Row(j domain.JobListing) []string {
	remote := ""
	if j.IsRemote != nil {
		remote = strconv.FormatBool(*j.IsRemote)
	}

	return []string{
		j.ID,
		j.Source,
		j.Title,
		j.Company,
		j.Location,
		j.DatePosted,
		j.SalaryRange,
		j.JobURL,
		j.CompanyURL,
		remote,
		j.WorkArrangement,
		j.Description,
	}
}

// CSVFileName is the default file name for a search: jobs_{country}_{role}.csv with spaces as underscores
func CSVFileName(country, role string) string {
	return fmt.Sprintf("jobs_%s_%s.csv", country, strings.ReplaceAll(role, " ", "_"))
}

// WriteCSV writes a header followed by one record per listing
func WriteCSV(w io.Writer, jobs []domain.JobListing) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(Columns); err != nil {
		return fmt.Errorf("export: write csv header: %w", err)
	}
	for _, j := range jobs {
		if err := cw.Write(Row(j)); err != nil {
			return fmt.Errorf("export: write csv row %s: %w", j.ID, err)
		}
	}

	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("export: flush csv: %w", err)
	}
	return nil
}

// SaveCSV creates or truncates path and writes jobs to it
func SaveCSV(path string, jobs []domain.JobListing) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("export: create %s: %w", path, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("export: close %s: %w", path, cerr)
		}
	}()

	return WriteCSV(f, jobs)
}
