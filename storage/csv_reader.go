package storage

import (
	"encoding/csv"
	"fmt"
	"os"
	"strings"

	"deal-formatter/models"
)

// Required input column names.
const (
	ColRawTitle       = "RawTitle"
	ColRawDescription = "RawDescription"
)

// ReadDeals loads the input CSV into DealRows, preserving input order.
// Columns beyond the two required ones are kept on each row (and their
// headers returned) so the writer can pass them through. Missing required
// columns are reported up front by name instead of failing mid-batch.
func ReadDeals(path string) ([]*models.DealRow, []string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("csv: open %q: %w", path, err)
	}
	defer f.Close()

	records, err := csv.NewReader(f).ReadAll()
	if err != nil {
		return nil, nil, fmt.Errorf("csv: read %q: %w", path, err)
	}
	if len(records) == 0 {
		return nil, nil, fmt.Errorf("csv: %q has no header row", path)
	}

	header := records[0]
	titleIdx, descIdx := -1, -1
	var extraHeaders []string
	var extraIdx []int
	for i, name := range header {
		switch name {
		case ColRawTitle:
			titleIdx = i
		case ColRawDescription:
			descIdx = i
		default:
			extraHeaders = append(extraHeaders, name)
			extraIdx = append(extraIdx, i)
		}
	}

	var missing []string
	if titleIdx < 0 {
		missing = append(missing, ColRawTitle)
	}
	if descIdx < 0 {
		missing = append(missing, ColRawDescription)
	}
	if len(missing) > 0 {
		return nil, nil, fmt.Errorf("csv: %q is missing required column(s): %s",
			path, strings.Join(missing, ", "))
	}

	rows := make([]*models.DealRow, 0, len(records)-1)
	for _, rec := range records[1:] {
		row := &models.DealRow{
			RawTitle:       rec[titleIdx],
			RawDescription: rec[descIdx],
		}
		for _, idx := range extraIdx {
			row.Extra = append(row.Extra, rec[idx])
		}
		rows = append(rows, row)
	}

	return rows, extraHeaders, nil
}
