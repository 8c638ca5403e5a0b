package cli

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/honeycarbs/career-hunter/internal/domain"
	"github.com/honeycarbs/career-hunter/internal/export"
	"github.com/honeycarbs/career-hunter/internal/server"
)

type searchOptions struct {
	role     string
	salary   string
	country  string
	location string
	limit    int
	workType string
	json     bool
	csv      string
	sheetID  string
	sheetTab string
}

// csvAuto marks --csv given without a path
const csvAuto = "auto"

var tableColumns = []string{"site", "title", "company", "location", "salary_range", "job_url", "company_url"}

func newSearchCmd(build func(ctx context.Context) (*server.Search, func(), error)) *cobra.Command {
	opts := &searchOptions{}

	cmd := &cobra.Command{
		Use:   "search",
		Short: "Search job boards for a role",
		Long: `Queries Seek (AU only), LinkedIn, Indeed and Glassdoor concurrently, keeps
listings whose titles match the role, and prints them as a table.`,
		Example: `  hunter search -r "Software Engineer" -s 140k-200k
  hunter search -r "Data Scientist" -s 120k-160k -c US -l "New York" --csv`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runSearch(cmd, opts, build)
		},
	}

	f := cmd.Flags()
	f.StringVarP(&opts.role, "role", "r", "", "job role to search for (e.g. 'Software Engineer')")
	f.StringVarP(&opts.salary, "salary", "s", "", "salary range (e.g. 140k-200k)")
	f.StringVarP(&opts.country, "country", "c", domain.DefaultCountry, "country code")
	f.StringVarP(&opts.location, "location", "l", domain.DefaultLocation, "location string")
	f.IntVarP(&opts.limit, "limit", "n", 10, "number of results per site")
	f.StringVarP(&opts.workType, "work-type", "w", string(domain.WorkTypeAll), "work arrangement: all, remote, hybrid, onsite")
	f.BoolVar(&opts.json, "json", false, "output results as JSON")
	f.StringVar(&opts.csv, "csv", "", "save results to a CSV file (default name jobs_{country}_{role}.csv)")
	f.Lookup("csv").NoOptDefVal = csvAuto
	f.StringVar(&opts.sheetID, "sheet-id", "", "export results to this Google Sheets document")
	f.StringVar(&opts.sheetTab, "sheet-tab", "", "tab name for --sheet-id (default Sheet1)")

	_ = cmd.MarkFlagRequired("role")
	_ = cmd.MarkFlagRequired("salary")

	return cmd
}

func runSearch(cmd *cobra.Command, opts *searchOptions, build func(ctx context.Context) (*server.Search, func(), error)) error {
	wt, err := domain.ParseWorkType(opts.workType)
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	search, cleanup, err := build(ctx)
	if err != nil {
		return fmt.Errorf("failed to initialize search: %w", err)
	}
	if cleanup != nil {
		defer cleanup()
	}

	jobs, err := search.Service.Search(ctx, domain.SearchQuery{
		Role:     opts.role,
		Country:  opts.country,
		Location: opts.location,
		Salary:   opts.salary,
		WorkType: wt,
		Limit:    opts.limit,
	})
	if err != nil {
		if errors.Is(err, domain.ErrInvalidFormat) {
			return fmt.Errorf("error parsing salary: %w", err)
		}
		return fmt.Errorf("search failed: %w", err)
	}

	out := cmd.OutOrStdout()

	if opts.json {
		if err := outputJSON(out, jobs); err != nil {
			return err
		}
	} else {
		outputTable(out, jobs)
	}

	if len(jobs) == 0 {
		return nil
	}

	if opts.csv != "" {
		path := opts.csv
		if path == csvAuto {
			path = export.CSVFileName(opts.country, opts.role)
		}
		if err := export.SaveCSV(path, jobs); err != nil {
			return err
		}
		fmt.Fprintf(cmd.ErrOrStderr(), "\nSaved results to %s\n", path)
	}

	if opts.sheetID != "" {
		if search.Exporter == nil {
			return errors.New("sheets export requires GOOGLE_SHEETS_CREDENTIALS_PATH")
		}
		res, err := search.Exporter.Export(ctx, export.SheetTarget{
			SpreadsheetID: opts.sheetID,
			Tab:           opts.sheetTab,
		}, jobs)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.ErrOrStderr(), "Exported %d row(s) to sheet %s (%s)\n", res.WrittenRows, res.SpreadsheetID, res.Tab)
	}

	return nil
}

func outputJSON(w io.Writer, jobs []domain.JobListing) error {
	if jobs == nil {
		jobs = []domain.JobListing{}
	}
	data, err := json.MarshalIndent(jobs, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal results: %w", err)
	}
	_, err = fmt.Fprintln(w, string(data))
	return err
}

func outputTable(w io.Writer, jobs []domain.JobListing) {
	if len(jobs) == 0 {
		fmt.Fprintln(w, "No jobs found.")
		return
	}

	rows := make([][]string, 0, len(jobs))
	for _, j := range jobs {
		rows = append(rows, []string{j.Source, j.Title, j.Company, j.Location, j.SalaryRange, j.JobURL, j.CompanyURL})
	}

	header := lipgloss.NewStyle().Bold(true).Padding(0, 1)
	cell := lipgloss.NewStyle().Padding(0, 1)

	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderRow(true).
		Headers(tableColumns...).
		Rows(rows...).
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return header
			}
			return cell
		})

	fmt.Fprintf(w, "Found %d job(s)\n\nSearch Results:\n", len(jobs))
	fmt.Fprintln(w, t.Render())
}
