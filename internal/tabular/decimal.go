package tabular

import (
	"fmt"
	"math"
	"strings"

	"github.com/shopspring/decimal"
)

var one = decimal.NewFromInt(1)

// MaxAmountExponent bounds the decimal exponent of an amount in either
// direction.
const MaxAmountExponent = 32

// ParseDecimal parses a spreadsheet number written with either a comma or a
// period as decimal separator ("0,93" and "0.93" both yield 0.93).
func ParseDecimal(s string) (decimal.Decimal, error) {
	s = strings.Replace(strings.TrimSpace(s), ",", ".", 1)
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, fmt.Errorf("parse decimal %q: %w", s, err)
	}
	return d, nil
}

// ParseFactor parses a margin factor cell. Empty, unparsable and zero cells
// yield 1.
func ParseFactor(s string) decimal.Decimal {
	d, err := ParseDecimal(s)
	if err != nil || d.IsZero() {
		return one
	}
	return d
}

// BoundedAmount reports whether d has an exponent within MaxAmountExponent
// and a finite float64 value. The exponent is checked first so that values
// like 1e10000000 are never expanded.
func BoundedAmount(d decimal.Decimal) bool {
	if e := d.Exponent(); e > MaxAmountExponent || e < -MaxAmountExponent {
		return false
	}
	f := d.InexactFloat64()
	return !math.IsInf(f, 0) && !math.IsNaN(f)
}
