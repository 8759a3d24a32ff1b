package tabular

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/anyulbade/noctus-rates-api/internal/model"
)

func TestPairRows(t *testing.T) {
	t.Run("labels blank headers", func(t *testing.T) {
		got := PairRows([]string{"USD", " ", "COP"}, []string{"0.82", "x", "0.87"}, PairOptions{})
		assert.Equal(t, model.Record{"USD": "0.82", "Column1": "x", "COP": "0.87"}, got)
	})

	t.Run("missing values are empty strings", func(t *testing.T) {
		got := PairRows([]string{"USD", "COP"}, []string{"0.82"}, PairOptions{})
		assert.Equal(t, model.Record{"USD": "0.82", "COP": ""}, got)
	})

	t.Run("values beyond headers are ignored", func(t *testing.T) {
		got := PairRows([]string{"USD"}, []string{"1", "2"}, PairOptions{})
		assert.Equal(t, model.Record{"USD": "1"}, got)
	})

	t.Run("value driven ignores headers beyond values", func(t *testing.T) {
		opts := PairOptions{SkipBlankHeaders: true, ValueDriven: true}
		got := PairRows([]string{"COP", "BRL", "PEN"}, []string{"14,90", "49,06"}, opts)
		assert.Equal(t, model.Record{"COP": "14,90", "BRL": "49,06"}, got)

		got = PairRows([]string{"COP"}, []string{"1", "2"}, opts)
		assert.Equal(t, model.Record{"COP": "1"}, got)
	})

	t.Run("strict variant", func(t *testing.T) {
		opts := PairOptions{SkipBlankHeaders: true, UpperKeys: true, PeriodDecimals: true, ValueDriven: true}
		got := PairRows([]string{" cop ", "", "brl"}, []string{"14,90", "9", "49,06"}, opts)
		assert.Equal(t, model.Record{"COP": "14.90", "BRL": "49.06"}, got)
	})

	t.Run("nil rows", func(t *testing.T) {
		assert.Empty(t, PairRows(nil, nil, PairOptions{}))
	})
}
