package tabular

import (
	"strings"

	"github.com/anyulbade/noctus-rates-api/internal/model"
)

type PairOptions struct {
	// SkipBlankHeaders drops columns with a blank header instead of
	// labelling them Column<i>.
	SkipBlankHeaders bool
	UpperKeys        bool
	// PeriodDecimals rewrites a comma decimal separator in values to a period.
	PeriodDecimals bool
	// ValueDriven walks the value row instead of the header row, so headers
	// past the last value are ignored.
	ValueDriven bool
}

// PairRows zips a header row with a value row into a single record. Only the
// header row is walked unless opts.ValueDriven is set.
func PairRows(headers, values []string, opts PairOptions) model.Record {
	n := len(headers)
	if opts.ValueDriven {
		n = len(values)
	}

	rec := make(model.Record, n)
	for i := 0; i < n; i++ {
		key := strings.TrimSpace(cell(headers, i))
		if key == "" {
			if opts.SkipBlankHeaders {
				continue
			}
			key = ColumnLabel(i)
		}
		if opts.UpperKeys {
			key = strings.ToUpper(key)
		}

		value := cell(values, i)
		if opts.PeriodDecimals {
			value = strings.Replace(value, ",", ".", 1)
		}
		rec[key] = value
	}
	return rec
}
