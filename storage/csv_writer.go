package storage

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"

	"deal-formatter/models"
)

// Output column names for the generated fields.
var generatedHeaders = []string{"Formatted Title", "HTML Description", "SEO Description"}

// CSVWriter writes the augmented deal table to a CSV file.
type CSVWriter struct {
	file        *os.File
	writer      *csv.Writer
	extraHeader []string
}

// NewCSVWriter creates (or truncates) the CSV file at the given path and
// writes the header row: the two raw columns, any pass-through columns, then
// the three generated columns. Intermediate directories are created
// automatically.
func NewCSVWriter(path string, extraHeaders []string) (*CSVWriter, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("csv: create output dir: %w", err)
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("csv: create file %q: %w", path, err)
	}

	w := csv.NewWriter(f)

	header := []string{ColRawTitle, ColRawDescription}
	header = append(header, extraHeaders...)
	header = append(header, generatedHeaders...)
	if err := w.Write(header); err != nil {
		_ = f.Close()
		return nil, fmt.Errorf("csv: write header: %w", err)
	}
	w.Flush()

	return &CSVWriter{file: f, writer: w, extraHeader: extraHeaders}, nil
}

// WriteResults writes one output row per input row, in input order. The two
// slices must be parallel; a mismatch means the pipeline dropped or invented
// a row and is reported as an error rather than written out misaligned.
func (c *CSVWriter) WriteResults(rows []*models.DealRow, results []models.GenerationResult) error {
	if len(rows) != len(results) {
		return fmt.Errorf("csv: row/result count mismatch: %d rows, %d results", len(rows), len(results))
	}

	for i, row := range rows {
		rec := []string{row.RawTitle, row.RawDescription}
		rec = append(rec, row.Extra...)
		rec = append(rec, results[i].Title, results[i].HTMLDescription, results[i].SEODescription)
		if err := c.writer.Write(rec); err != nil {
			return fmt.Errorf("csv: write row %d: %w", i, err)
		}
	}

	c.writer.Flush()
	return c.writer.Error()
}

// Close flushes and closes the underlying file.
func (c *CSVWriter) Close() error {
	c.writer.Flush()
	return c.file.Close()
}
