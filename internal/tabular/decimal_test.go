package tabular

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDecimal(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"0,93", "0.93"},
		{"0.93", "0.93"},
		{" 1,00 ", "1"},
		{"4050,5", "4050.5"},
	}
	for _, tc := range cases {
		t.Run(tc.in, func(t *testing.T) {
			d, err := ParseDecimal(tc.in)
			require.NoError(t, err)
			assert.Equal(t, tc.want, d.String())
		})
	}

	t.Run("invalid", func(t *testing.T) {
		_, err := ParseDecimal("n/a")
		assert.Error(t, err)
		_, err = ParseDecimal("")
		assert.Error(t, err)
	})
}

func TestParseFactor(t *testing.T) {
	assert.Equal(t, 0.93, ParseFactor("0,93").InexactFloat64())
	assert.Equal(t, 1.0, ParseFactor("1,00").InexactFloat64())
	assert.Equal(t, 1.0, ParseFactor("").InexactFloat64())
	assert.Equal(t, 1.0, ParseFactor("#N/A").InexactFloat64())
	assert.Equal(t, 1.0, ParseFactor("0").InexactFloat64())
}

func TestBoundedAmount(t *testing.T) {
	cases := []struct {
		in   string
		want bool
	}{
		{"100", true},
		{"0,0001", true},
		{"1e32", true},
		{"1e-32", true},
		{"1e33", false},
		{"1e400", false},
		{"1e10000000", false},
		{"1e-10000000", false},
		{"1" + strings.Repeat("0", 400), false},
	}
	for _, tc := range cases {
		t.Run(tc.in[:min(len(tc.in), 16)], func(t *testing.T) {
			d, err := ParseDecimal(tc.in)
			require.NoError(t, err)
			assert.Equal(t, tc.want, BoundedAmount(d))
		})
	}
}
