package tabular

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/anyulbade/noctus-rates-api/internal/model"
)

func TestToRecords(t *testing.T) {
	t.Run("empty input yields empty slice", func(t *testing.T) {
		assert.NotNil(t, ToRecords(nil))
		assert.Empty(t, ToRecords(nil))
		assert.Empty(t, ToRecords([][]string{}))
	})

	t.Run("header only", func(t *testing.T) {
		assert.Empty(t, ToRecords([][]string{{"IDTAS", "FECHA"}}))
	})

	t.Run("maps rows onto trimmed headers", func(t *testing.T) {
		rows := [][]string{
			{" IDTAS ", "FECHA", "USD_O"},
			{"1", "2025-01-01", "0,85"},
			{"2", "2025-01-02", "0,86"},
		}
		got := ToRecords(rows)
		require.Len(t, got, 2)
		assert.Equal(t, model.Record{"IDTAS": "1", "FECHA": "2025-01-01", "USD_O": "0,85"}, got[0])
		assert.Equal(t, "0,86", got[1]["USD_O"])
	})

	t.Run("ragged rows get empty strings", func(t *testing.T) {
		rows := [][]string{
			{"A", "B", "C"},
			{"x"},
		}
		got := ToRecords(rows)
		require.Len(t, got, 1)
		v, ok := got[0].Get("C")
		assert.True(t, ok, "missing cells must still be present as keys")
		assert.Equal(t, "", v)
	})

	t.Run("drops fully empty rows", func(t *testing.T) {
		rows := [][]string{
			{"A", "B"},
			{"", ""},
			{},
			{"1", ""},
		}
		got := ToRecords(rows)
		require.Len(t, got, 1)
		assert.Equal(t, "1", got[0]["A"])
	})

	t.Run("skips leading blank rows before header", func(t *testing.T) {
		rows := [][]string{
			{"", " "},
			{},
			{"COP", "BRL"},
			{"14,90", "49,06"},
		}
		got := ToRecords(rows)
		require.Len(t, got, 1)
		assert.Equal(t, model.Record{"COP": "14,90", "BRL": "49,06"}, got[0])
	})

	t.Run("all blank input", func(t *testing.T) {
		assert.Empty(t, ToRecords([][]string{{""}, {" ", ""}}))
	})

	t.Run("blank headers get synthetic labels", func(t *testing.T) {
		rows := [][]string{
			{"", "USD_O", ""},
			{"COP_D", "0,85", "x"},
		}
		got := ToRecords(rows)
		require.Len(t, got, 1)
		assert.Equal(t, "COP_D", got[0]["Column0"])
		assert.Equal(t, "x", got[0]["Column2"])
	})

	t.Run("never yields more records than data rows and none empty", func(t *testing.T) {
		rows := [][]string{
			{"A", "B"},
			{"1", "2"},
			{"", ""},
			{"", "3"},
			{"4"},
		}
		got := ToRecords(rows)
		assert.LessOrEqual(t, len(got), len(rows)-1)
		for _, rec := range got {
			assert.False(t, rec.Empty())
		}
	})
}

func TestLatest(t *testing.T) {
	t.Run("empty", func(t *testing.T) {
		_, ok := Latest(nil, "IDTAS")
		assert.False(t, ok)
	})

	t.Run("picks greatest identifier", func(t *testing.T) {
		recs := []model.Record{
			{"IDTAS": "3", "FECHA": "c"},
			{"IDTAS": "10", "FECHA": "j"},
			{"IDTAS": "9", "FECHA": "i"},
		}
		got, ok := Latest(recs, "IDTAS")
		require.True(t, ok)
		assert.Equal(t, "j", got["FECHA"])
	})

	t.Run("ties keep first seen", func(t *testing.T) {
		recs := []model.Record{
			{"IDTAS": "5", "FECHA": "first"},
			{"IDTAS": "5", "FECHA": "second"},
		}
		got, _ := Latest(recs, "IDTAS")
		assert.Equal(t, "first", got["FECHA"])
	})

	t.Run("unparsable identifiers count as zero", func(t *testing.T) {
		recs := []model.Record{
			{"IDTAS": "abc", "FECHA": "bad"},
			{"IDTAS": "", "FECHA": "empty"},
			{"IDTAS": "0.5", "FECHA": "half"},
		}
		got, _ := Latest(recs, "IDTAS")
		assert.Equal(t, "half", got["FECHA"])

		got, _ = Latest(recs[:2], "IDTAS")
		assert.Equal(t, "bad", got["FECHA"])
	})

	t.Run("non-finite identifiers count as zero", func(t *testing.T) {
		got, _ := Latest([]model.Record{
			{"IDTAS": "NaN", "FECHA": "nan"},
			{"IDTAS": "5", "FECHA": "five"},
		}, "IDTAS")
		assert.Equal(t, "five", got["FECHA"])

		got, _ = Latest([]model.Record{
			{"IDTAS": "3", "FECHA": "three"},
			{"IDTAS": "Inf", "FECHA": "inf"},
			{"IDTAS": "-infinity", "FECHA": "neg"},
		}, "IDTAS")
		assert.Equal(t, "three", got["FECHA"])
	})

	t.Run("order does not change the maximal identifier", func(t *testing.T) {
		a := model.Record{"IDTAS": "7", "FECHA": "a"}
		b := model.Record{"IDTAS": "2", "FECHA": "b"}
		c := model.Record{"IDTAS": "7", "FECHA": "c"}
		orders := [][]model.Record{{a, b, c}, {c, b, a}, {b, a, c}, {b, c, a}}
		for _, recs := range orders {
			got, _ := Latest(recs, "IDTAS")
			assert.Equal(t, "7", got["IDTAS"])
		}
	})
}
