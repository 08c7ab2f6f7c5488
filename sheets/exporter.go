// Package sheets provides the Google Sheets export sink.
package sheets

import (
	"context"
	"fmt"
	"os"

	"github.com/jobscout/jobscout"
	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"
)

// DefaultWorksheet is the worksheet tab written when none is configured.
const DefaultWorksheet = "Jobs"

// Dimensions for newly created worksheets.
const (
	newSheetRows = 1000
	newSheetCols = 30
)

// Ensure Exporter implements jobscout.Exporter at compile time.
var _ jobscout.Exporter = (*Exporter)(nil)

// Exporter overwrites a worksheet tab with the record set on every run:
// prior contents are cleared, then a header row plus one row per record are
// written. An empty record set leaves a header-only worksheet.
type Exporter struct {
	svc           *sheets.Service
	spreadsheetID string
	worksheet     string
}

// NewExporter creates a new Exporter for the given spreadsheet and worksheet.
// Credentials come from the service-account file named by the
// GOOGLE_APPLICATION_CREDENTIALS environment variable; a missing credential
// or spreadsheet ID fails here, before any scraping or I/O happens.
func NewExporter(ctx context.Context, spreadsheetID, worksheet string) (*Exporter, error) {
	if spreadsheetID == "" {
		return nil, jobscout.Errorf(jobscout.EINVALID, "spreadsheet ID is required")
	}
	if worksheet == "" {
		worksheet = DefaultWorksheet
	}

	credsPath := os.Getenv("GOOGLE_APPLICATION_CREDENTIALS")
	if credsPath == "" {
		return nil, jobscout.Errorf(jobscout.EINVALID, "GOOGLE_APPLICATION_CREDENTIALS is not set")
	}

	svc, err := sheets.NewService(ctx,
		option.WithCredentialsFile(credsPath),
		option.WithScopes(sheets.SpreadsheetsScope),
	)
	if err != nil {
		return nil, fmt.Errorf("creating sheets service: %w", err)
	}

	return &Exporter{
		svc:           svc,
		spreadsheetID: spreadsheetID,
		worksheet:     worksheet,
	}, nil
}

// Export clears the worksheet and writes the header plus all rows.
func (e *Exporter) Export(ctx context.Context, records []*jobscout.JobRecord) error {
	if err := e.ensureWorksheet(ctx); err != nil {
		return err
	}

	if _, err := e.svc.Spreadsheets.Values.
		Clear(e.spreadsheetID, e.worksheet, &sheets.ClearValuesRequest{}).
		Context(ctx).Do(); err != nil {
		return fmt.Errorf("clearing worksheet %q: %w", e.worksheet, err)
	}

	vr := &sheets.ValueRange{Values: BuildRows(records)}
	if _, err := e.svc.Spreadsheets.Values.
		Update(e.spreadsheetID, e.worksheet+"!A1", vr).
		ValueInputOption("USER_ENTERED").
		Context(ctx).Do(); err != nil {
		return fmt.Errorf("writing worksheet %q: %w", e.worksheet, err)
	}

	return nil
}

// ensureWorksheet adds the worksheet tab if the spreadsheet lacks it.
func (e *Exporter) ensureWorksheet(ctx context.Context) error {
	ss, err := e.svc.Spreadsheets.Get(e.spreadsheetID).Context(ctx).Do()
	if err != nil {
		return fmt.Errorf("opening spreadsheet %q: %w", e.spreadsheetID, err)
	}

	for _, sheet := range ss.Sheets {
		if sheet.Properties != nil && sheet.Properties.Title == e.worksheet {
			return nil
		}
	}

	req := &sheets.BatchUpdateSpreadsheetRequest{
		Requests: []*sheets.Request{{
			AddSheet: &sheets.AddSheetRequest{
				Properties: &sheets.SheetProperties{
					Title: e.worksheet,
					GridProperties: &sheets.GridProperties{
						RowCount:    newSheetRows,
						ColumnCount: newSheetCols,
					},
				},
			},
		}},
	}
	if _, err := e.svc.Spreadsheets.BatchUpdate(e.spreadsheetID, req).Context(ctx).Do(); err != nil {
		return fmt.Errorf("adding worksheet %q: %w", e.worksheet, err)
	}

	return nil
}

// BuildRows returns the header row plus one row per record, in the cell
// layout the Values API expects.
func BuildRows(records []*jobscout.JobRecord) [][]any {
	rows := make([][]any, 0, len(records)+1)

	header := make([]any, 0, len(jobscout.Columns()))
	for _, col := range jobscout.Columns() {
		header = append(header, col)
	}
	rows = append(rows, header)

	for _, rec := range records {
		cells := make([]any, 0, len(header))
		for _, cell := range rec.Row() {
			cells = append(cells, cell)
		}
		rows = append(rows, cells)
	}

	return rows
}
