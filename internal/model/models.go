package model

import (
	"fmt"
	"strings"
)

// Record is one spreadsheet row keyed by its column header. Every header of
// the source range is present; absent cells are stored as "".
type Record map[string]string

// Get returns the value stored under key and whether the header exists.
func (r Record) Get(key string) (string, bool) {
	v, ok := r[key]
	return v, ok
}

// Empty reports whether every value of the record is "".
func (r Record) Empty() bool {
	for _, v := range r {
		if v != "" {
			return false
		}
	}
	return true
}

type SheetRange struct {
	Sheet string
	Range string
}

// A1 returns the range in A1 notation, e.g. "Mercado!A1:M999".
func (r SheetRange) A1() string {
	return r.Sheet + "!" + r.Range
}

func (r SheetRange) String() string {
	return r.A1()
}

type Direction string

const (
	Origin      Direction = "O"
	Destination Direction = "D"
)

func ParseDirection(s string) (Direction, error) {
	switch Direction(strings.ToUpper(strings.TrimSpace(s))) {
	case Origin:
		return Origin, nil
	case Destination:
		return Destination, nil
	}
	return "", fmt.Errorf("invalid direction %q, use O or D", s)
}

// RateKey names a rate or factor column for a currency in one direction.
type RateKey struct {
	Code      string
	Direction Direction
}

func NewRateKey(code string, dir Direction) RateKey {
	return RateKey{Code: strings.ToUpper(strings.TrimSpace(code)), Direction: dir}
}

// String renders the column name used by the spreadsheet, e.g. "USD_O".
func (k RateKey) String() string {
	return k.Code + "_" + string(k.Direction)
}
