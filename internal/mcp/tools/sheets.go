package tools

import (
	"context"
	"fmt"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/honeycarbs/career-hunter/internal/domain"
	"github.com/honeycarbs/career-hunter/internal/domain/job"
	"github.com/honeycarbs/career-hunter/internal/export"
	"github.com/honeycarbs/career-hunter/pkg/logging"
)

// SheetsExporter writes listings to a spreadsheet
type SheetsExporter interface {
	Export(ctx context.Context, target export.SheetTarget, jobs []domain.JobListing) (export.SheetResult, error)
}

// SheetsExportParams defines the arguments for the sheets_export tool
type SheetsExportParams struct {
	Search JobSearchParams `json:"search" jsonschema:"Search whose results are exported"`
	Sheet  struct {
		SpreadsheetID string `json:"spreadsheet_id" jsonschema:"Google Sheets document ID"`
		Tab           string `json:"tab,omitempty" jsonschema:"Tab name to write (default Sheet1)"`
	} `json:"sheet" jsonschema:"Destination sheet information"`
	Replace bool `json:"replace,omitempty" jsonschema:"If true, clears the tab and writes a header before the rows"`
}

type sheetsTool struct {
	search   searchTool
	exporter SheetsExporter
	logger   *logging.Logger
}

// WithSheetsExport registers the sheets_export tool
func WithSheetsExport(svc job.Service, exporter SheetsExporter) Option {
	return func(reg *registry) {
		t := sheetsTool{
			search:   searchTool{svc: svc, logger: reg.logger},
			exporter: exporter,
			logger:   reg.logger,
		}
		sdkmcp.AddTool(reg.server, &sdkmcp.Tool{
			Name:        "sheets_export",
			Description: "Run a job search and write the listings to a Google Sheets tab",
		}, t.handle)
	}
}

func (t sheetsTool) handle(ctx context.Context, req *sdkmcp.CallToolRequest, params *SheetsExportParams) (*sdkmcp.CallToolResult, any, error) {
	if params == nil {
		params = &SheetsExportParams{}
	}
	if t.exporter == nil {
		return nil, nil, fmt.Errorf("sheets exporter not configured")
	}

	_, found, err := t.search.search(ctx, req, &params.Search)
	if err != nil {
		return nil, nil, err
	}

	result, err := t.exporter.Export(ctx, export.SheetTarget{
		SpreadsheetID: params.Sheet.SpreadsheetID,
		Tab:           params.Sheet.Tab,
		Replace:       params.Replace,
	}, found.Jobs)
	if err != nil {
		t.logger.Error("sheets_export failed", "spreadsheet_id", params.Sheet.SpreadsheetID, "err", err)
		return nil, result, err
	}

	t.logger.Info("sheets_export completed", "spreadsheet_id", result.SpreadsheetID, "tab", result.Tab, "rows", result.WrittenRows)
	return textResult(result.Message), result, nil
}
