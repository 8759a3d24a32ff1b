// Package tabular reshapes spreadsheet cell grids into records.
package tabular

import (
	"math"
	"strconv"
	"strings"

	"github.com/anyulbade/noctus-rates-api/internal/model"
)

// ToRecords treats the first non-blank row as the header and maps every
// following row onto it. Blank headers are labelled Column<i>. Rows whose
// values are all empty are dropped.
func ToRecords(rows [][]string) []model.Record {
	records := make([]model.Record, 0)
	if len(rows) == 0 {
		return records
	}

	headerIdx := 0
	for headerIdx < len(rows) && BlankRow(rows[headerIdx]) {
		headerIdx++
	}
	if headerIdx >= len(rows) {
		return records
	}

	headers := headerLabels(rows[headerIdx])
	for _, row := range rows[headerIdx+1:] {
		rec := make(model.Record, len(headers))
		for i, h := range headers {
			rec[h] = cell(row, i)
		}
		if rec.Empty() {
			continue
		}
		records = append(records, rec)
	}
	return records
}

// Latest returns the record with the greatest numeric value in idField.
// Unparsable and non-finite identifiers count as 0 and ties keep the first
// record seen.
// ok is false when records is empty.
func Latest(records []model.Record, idField string) (latest model.Record, ok bool) {
	if len(records) == 0 {
		return nil, false
	}

	latest = records[0]
	best := parseID(latest[idField])
	for _, rec := range records[1:] {
		if id := parseID(rec[idField]); id > best {
			best = id
			latest = rec
		}
	}
	return latest, true
}

func headerLabels(row []string) []string {
	headers := make([]string, len(row))
	for i, h := range row {
		h = strings.TrimSpace(h)
		if h == "" {
			h = ColumnLabel(i)
		}
		headers[i] = h
	}
	return headers
}

// ColumnLabel is the synthetic header used for a blank header cell.
func ColumnLabel(i int) string {
	return "Column" + strconv.Itoa(i)
}

func parseID(s string) float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}

func cell(row []string, i int) string {
	if i < len(row) {
		return row[i]
	}
	return ""
}

// BlankRow reports whether every cell of row is empty or whitespace.
func BlankRow(row []string) bool {
	for _, c := range row {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}
	return true
}
