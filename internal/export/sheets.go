package export

import (
	"context"
	"fmt"
	"time"

	"github.com/honeycarbs/career-hunter/internal/domain"
)

const defaultTab = "Sheet1"

// SheetsWriter describes the subset of the Sheets client used for export
type SheetsWriter interface {
	AppendValues(ctx context.Context, spreadsheetID, range_ string, values [][]interface{}) error
	UpdateValues(ctx context.Context, spreadsheetID, range_ string, values [][]interface{}) error
	ClearValues(ctx context.Context, spreadsheetID, range_ string) error
}

// SheetTarget selects the destination document and tab
type SheetTarget struct {
	SpreadsheetID string
	Tab           string
	// Replace clears the tab and rewrites the header; otherwise rows are appended
	Replace bool
}

// SheetResult summarizes an export
type SheetResult struct {
	SpreadsheetID string    `json:"spreadsheet_id"`
	Tab           string    `json:"tab"`
	WrittenRows   int       `json:"written_rows"`
	Mode          string    `json:"mode"`
	CompletedAt   time.Time `json:"completed_at"`
	Message       string    `json:"message,omitempty"`
}

// Sheets exports listings through a SheetsWriter
type Sheets struct {
	client SheetsWriter
}

// NewSheets wraps client; a nil client makes every export fail with a configuration error
func NewSheets(client SheetsWriter) *Sheets {
	return &Sheets{client: client}
}

// Export writes jobs to the target tab
func (s *Sheets) Export(ctx context.Context, target SheetTarget, jobs []domain.JobListing) (SheetResult, error) {
	tab := target.Tab
	if tab == "" {
		tab = defaultTab
	}

	result := SheetResult{
		SpreadsheetID: target.SpreadsheetID,
		Tab:           tab,
		Mode:          "append",
	}
	if target.Replace {
		result.Mode = "replace"
	}

	if s == nil || s.client == nil {
		result.Message = "Google Sheets client not configured (GOOGLE_SHEETS_CREDENTIALS_PATH not set)"
		return result, fmt.Errorf("sheets: client not configured")
	}
	if target.SpreadsheetID == "" {
		return result, fmt.Errorf("sheets: spreadsheet id is required")
	}

	if len(jobs) == 0 {
		result.Message = "no rows to export"
		result.CompletedAt = time.Now().UTC()
		return result, nil
	}

	if target.Replace {
		if err := s.client.ClearValues(ctx, target.SpreadsheetID, tab+"!A:Z"); err != nil {
			return result, fmt.Errorf("sheets: failed to clear sheet: %w", err)
		}

		values := append([][]interface{}{toValues(Columns)}, rowsToValues(jobs)...)
		if err := s.client.UpdateValues(ctx, target.SpreadsheetID, tab+"!A1", values); err != nil {
			return result, fmt.Errorf("sheets: failed to write rows: %w", err)
		}
	} else {
		if err := s.client.AppendValues(ctx, target.SpreadsheetID, tab+"!A1", rowsToValues(jobs)); err != nil {
			return result, fmt.Errorf("sheets: failed to append rows: %w", err)
		}
	}

	result.WrittenRows = len(jobs)
	result.CompletedAt = time.Now().UTC()
	result.Message = fmt.Sprintf("successfully exported %d row(s)", result.WrittenRows)

	return result, nil
}

func rowsToValues(jobs []domain.JobListing) [][]interface{} {
	values := make([][]interface{}, len(jobs))
	for i, j := range jobs {
		values[i] = toValues(Row(j))
	}
	return values
}

func toValues(cells []string) []interface{} {
	out := make([]interface{}, len(cells))
	for i, c := range cells {
		out[i] = c
	}
	return out
}
