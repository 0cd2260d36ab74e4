package export

import (
	"context"
	"fmt"

	"travelledger-service/internal/usecase"
	"travelledger-service/pkg/logger"

	"golang.org/x/oauth2"
	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"
)

const sheetName = "Services"

// SheetsExporter pushes the flattened table to a new Google spreadsheet
// with a single sheet.
type SheetsExporter struct {
	svc    *sheets.Service
	logger logger.Logger
}

// NewSheetsExporter creates a Sheets client from an OAuth token source.
func NewSheetsExporter(ctx context.Context, ts oauth2.TokenSource, log logger.Logger) (*SheetsExporter, error) {
	svc, err := sheets.NewService(ctx, option.WithTokenSource(ts))
	if err != nil {
		return nil, fmt.Errorf("sheets service: %w", err)
	}

	return &SheetsExporter{
		svc:    svc,
		logger: log,
	}, nil
}

// Export creates a spreadsheet titled title, writes the table into its one
// sheet, and returns the spreadsheet id.
func (e *SheetsExporter) Export(ctx context.Context, title string, table *usecase.ExportTable) (string, error) {
	spreadsheet := &sheets.Spreadsheet{
		Properties: &sheets.SpreadsheetProperties{Title: title},
		Sheets: []*sheets.Sheet{
			{Properties: &sheets.SheetProperties{Title: sheetName}},
		},
	}

	created, err := e.svc.Spreadsheets.Create(spreadsheet).Context(ctx).Do()
	if err != nil {
		return "", fmt.Errorf("create spreadsheet: %w", err)
	}

	values := make([][]interface{}, 0, len(table.Rows)+1)
	values = append(values, toCells(table.Headers))
	for _, row := range table.Rows {
		values = append(values, toCells(row))
	}

	_, err = e.svc.Spreadsheets.Values.
		Update(created.SpreadsheetId, sheetName+"!A1", &sheets.ValueRange{Values: values}).
		ValueInputOption("RAW").
		Context(ctx).
		Do()
	if err != nil {
		return "", fmt.Errorf("write rows: %w", err)
	}

	e.logger.Info("Spreadsheet exported",
		"spreadsheetId", created.SpreadsheetId,
		"rows", len(table.Rows))
	return created.SpreadsheetId, nil
}

func toCells(row []string) []interface{} {
	cells := make([]interface{}, len(row))
	for i, v := range row {
		cells[i] = v
	}
	return cells
}
