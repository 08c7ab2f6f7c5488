// Package fs provides the file-based export sink.
package fs

import (
	"context"
	"encoding/csv"
	"fmt"
	"os"

	"github.com/jobscout/jobscout"
)

// utf8BOM is prepended so spreadsheet applications detect the encoding.
var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// Ensure Exporter implements jobscout.Exporter at compile time.
var _ jobscout.Exporter = (*Exporter)(nil)

// Exporter writes the record set as a UTF-8 CSV file with a byte-order mark.
// The file is overwritten on every run; an empty record set still produces a
// header-only file.
type Exporter struct {
	path string
}

// NewExporter creates a new Exporter writing to the given path.
func NewExporter(path string) (*Exporter, error) {
	if path == "" {
		return nil, jobscout.Errorf(jobscout.EINVALID, "csv output path is required")
	}
	return &Exporter{path: path}, nil
}

// Export writes the header and one row per record.
func (e *Exporter) Export(ctx context.Context, records []*jobscout.JobRecord) error {
	f, err := os.Create(e.path)
	if err != nil {
		return fmt.Errorf("creating csv file: %w", err)
	}
	defer f.Close()

	if _, err := f.Write(utf8BOM); err != nil {
		return fmt.Errorf("writing byte-order mark: %w", err)
	}

	w := csv.NewWriter(f)
	if err := w.Write(jobscout.Columns()); err != nil {
		return fmt.Errorf("writing csv header: %w", err)
	}
	for _, rec := range records {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := w.Write(rec.Row()); err != nil {
			return fmt.Errorf("writing csv row: %w", err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("flushing csv: %w", err)
	}

	return f.Close()
}
