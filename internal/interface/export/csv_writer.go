// Package export serializes the flattened report table to its delivery
// targets: a CSV file on disk or a Google spreadsheet.
package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"

	"travelledger-service/internal/usecase"
)

// WriteCSV streams the table to w, headers first.
func WriteCSV(w io.Writer, table *usecase.ExportTable) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(table.Headers); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	for _, row := range table.Rows {
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("write row: %w", err)
		}
	}

	cw.Flush()
	return cw.Error()
}

// WriteCSVFile writes the table to a file at path, replacing any existing
// file.
func WriteCSVFile(path string, table *usecase.ExportTable) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}

	if err := WriteCSV(f, table); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
