package service

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/anyulbade/noctus-rates-api/internal/apperrors"
	"github.com/anyulbade/noctus-rates-api/internal/model"
	"github.com/anyulbade/noctus-rates-api/internal/tabular"
)

// FactorMatrix maps a destination row key (<CODE>_D) and an origin column key
// (<CODE>_O) to a comma-decimal margin factor. It is read-only once built.
type FactorMatrix struct {
	rows map[string]map[string]string
}

type Factor struct {
	Value  decimal.Decimal
	Row    model.RateKey
	Column model.RateKey
}

var factorCodes = []string{"USD", "EUR", "COP", "VES", "BRL", "PEN", "CLP", "ARS", "MXN", "BOB", "UYU", "PYG", "DOP", "CRC", "PAB", "GTQ"}

var factorRows = [][]string{
	//           USD_O  EUR_O  COP_O  VES_O  BRL_O  PEN_O  CLP_O  ARS_O  MXN_O  BOB_O  UYU_O  PYG_O  DOP_O  CRC_O  PAB_O  GTQ_O
	/* USD_D */ {"1,00", "0,95", "0,93", "0,90", "0,93", "0,93", "0,93", "0,90", "0,93", "0,90", "0,93", "0,93", "0,93", "0,93", "0,95", "0,93"},
	/* EUR_D */ {"0,95", "1,00", "0,93", "0,90", "0,93", "0,93", "0,93", "0,90", "0,93", "0,90", "0,93", "0,93", "0,93", "0,93", "0,95", "0,93"},
	/* COP_D */ {"0,85", "0,85", "1,00", "0,88", "0,92", "0,92", "0,92", "0,88", "0,92", "0,88", "0,92", "0,92", "0,92", "0,92", "0,85", "0,92"},
	/* VES_D */ {"0,80", "0,80", "0,84", "1,00", "0,84", "0,84", "0,84", "0,86", "0,84", "0,86", "0,84", "0,84", "0,84", "0,84", "0,80", "0,84"},
	/* BRL_D */ {"0,85", "0,85", "0,92", "0,88", "1,00", "0,92", "0,92", "0,88", "0,92", "0,88", "0,92", "0,92", "0,92", "0,92", "0,85", "0,92"},
	/* PEN_D */ {"0,85", "0,85", "0,92", "0,88", "0,92", "1,00", "0,92", "0,88", "0,92", "0,88", "0,92", "0,92", "0,92", "0,92", "0,85", "0,92"},
	/* CLP_D */ {"0,85", "0,85", "0,92", "0,88", "0,92", "0,92", "1,00", "0,88", "0,92", "0,88", "0,92", "0,92", "0,92", "0,92", "0,85", "0,92"},
	/* ARS_D */ {"0,80", "0,80", "0,84", "0,86", "0,84", "0,84", "0,84", "1,00", "0,84", "0,86", "0,84", "0,84", "0,84", "0,84", "0,80", "0,84"},
	/* MXN_D */ {"0,85", "0,85", "0,92", "0,88", "0,92", "0,92", "0,92", "0,88", "1,00", "0,88", "0,92", "0,92", "0,92", "0,92", "0,85", "0,92"},
	/* BOB_D */ {"0,80", "0,80", "0,84", "0,86", "0,84", "0,84", "0,84", "0,86", "0,84", "1,00", "0,84", "0,84", "0,84", "0,84", "0,80", "0,84"},
	/* UYU_D */ {"0,85", "0,85", "0,92", "0,88", "0,92", "0,92", "0,92", "0,88", "0,92", "0,88", "1,00", "0,92", "0,92", "0,92", "0,85", "0,92"},
	/* PYG_D */ {"0,85", "0,85", "0,92", "0,88", "0,92", "0,92", "0,92", "0,88", "0,92", "0,88", "0,92", "1,00", "0,92", "0,92", "0,85", "0,92"},
	/* DOP_D */ {"0,85", "0,85", "0,92", "0,88", "0,92", "0,92", "0,92", "0,88", "0,92", "0,88", "0,92", "0,92", "1,00", "0,92", "0,85", "0,92"},
	/* CRC_D */ {"0,85", "0,85", "0,92", "0,88", "0,92", "0,92", "0,92", "0,88", "0,92", "0,88", "0,92", "0,92", "0,92", "1,00", "0,85", "0,92"},
	/* PAB_D */ {"0,95", "0,95", "0,93", "0,90", "0,93", "0,93", "0,93", "0,90", "0,93", "0,90", "0,93", "0,93", "0,93", "0,93", "1,00", "0,93"},
	/* GTQ_D */ {"0,85", "0,85", "0,92", "0,88", "0,92", "0,92", "0,92", "0,88", "0,92", "0,88", "0,92", "0,92", "0,92", "0,92", "0,85", "1,00"},
}

var staticFactors = mustFactorMatrix(factorCodes, factorRows)

// StaticFactors returns the margin matrix compiled into the program.
func StaticFactors() *FactorMatrix {
	return staticFactors
}

func mustFactorMatrix(codes []string, rows [][]string) *FactorMatrix {
	if len(rows) != len(codes) {
		panic(fmt.Sprintf("factor matrix has %d rows for %d codes", len(rows), len(codes)))
	}
	m := &FactorMatrix{rows: make(map[string]map[string]string, len(codes))}
	for i, dest := range codes {
		if len(rows[i]) != len(codes) {
			panic(fmt.Sprintf("factor row %s has %d columns", dest, len(rows[i])))
		}
		row := make(map[string]string, len(codes))
		for j, origin := range codes {
			row[model.NewRateKey(origin, model.Origin).String()] = rows[i][j]
		}
		m.rows[model.NewRateKey(dest, model.Destination).String()] = row
	}
	return m
}

// NewFactorMatrixFromRows builds a matrix from a sheet range whose first
// non-blank row holds the origin column keys and whose first column holds the
// destination row keys.
func NewFactorMatrixFromRows(rows [][]string) *FactorMatrix {
	m := &FactorMatrix{rows: make(map[string]map[string]string)}

	start := 0
	for start < len(rows) && tabular.BlankRow(rows[start]) {
		start++
	}
	if start >= len(rows) {
		return m
	}

	header := rows[start]
	for _, r := range rows[start+1:] {
		if len(r) == 0 {
			continue
		}
		rowKey := strings.ToUpper(strings.TrimSpace(r[0]))
		if rowKey == "" {
			continue
		}
		row := make(map[string]string, len(header))
		for j := 1; j < len(header); j++ {
			col := strings.ToUpper(strings.TrimSpace(header[j]))
			if col == "" {
				continue
			}
			if j < len(r) {
				row[col] = r[j]
			} else {
				row[col] = ""
			}
		}
		m.rows[rowKey] = row
	}
	return m
}

// size returns the number of rows and the widest row.
func (m *FactorMatrix) size() (rows, cols int) {
	for _, r := range m.rows {
		if len(r) > cols {
			cols = len(r)
		}
	}
	return len(m.rows), cols
}

// Lookup returns the factor for converting origin into destination. The row
// is <DEST>_D and the column <ORIGIN>_O. With originFallback the column
// <ORIGIN>_D is probed first and <ORIGIN>_O is used when it is missing.
func (m *FactorMatrix) Lookup(destination, origin string, originFallback bool) (Factor, error) {
	rowKey := model.NewRateKey(destination, model.Destination)
	row, ok := m.rows[rowKey.String()]
	if !ok {
		return Factor{}, fmt.Errorf("%w: factor row %s", apperrors.ErrNotFound, rowKey)
	}

	candidates := []model.RateKey{model.NewRateKey(origin, model.Origin)}
	if originFallback {
		candidates = append([]model.RateKey{model.NewRateKey(origin, model.Destination)}, candidates...)
	}

	for _, col := range candidates {
		if v, ok := row[col.String()]; ok {
			return Factor{Value: tabular.ParseFactor(v), Row: rowKey, Column: col}, nil
		}
	}
	return Factor{}, fmt.Errorf("%w: factor column %s in row %s", apperrors.ErrNotFound, candidates[len(candidates)-1], rowKey)
}
