package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"

	"github.com/anyulbade/noctus-rates-api/internal/apperrors"
	"github.com/anyulbade/noctus-rates-api/internal/config"
	"github.com/anyulbade/noctus-rates-api/internal/model"
	"github.com/anyulbade/noctus-rates-api/internal/tabular"
)

// ConversionPolicy settles which keys the calculator reads. The spreadsheet
// owners have not fixed these, so they come from configuration.
type ConversionPolicy struct {
	DestinationRateDirection model.Direction
	FactorOriginFallback     bool
	// SheetFactors reads the factor matrix from the spreadsheet instead of
	// the compiled-in one.
	SheetFactors bool
}

func PolicyFromConfig(cfg *config.Config) ConversionPolicy {
	return ConversionPolicy{
		DestinationRateDirection: cfg.DestinationRateDirection,
		FactorOriginFallback:     cfg.FactorOriginFallback,
		SheetFactors:             cfg.FactorSource == config.FactorSourceSheet,
	}
}

type ConversionRequest struct {
	Amount      decimal.Decimal
	Origin      string
	Destination string
}

type ConversionResult struct {
	Request         ConversionRequest
	Converted       decimal.Decimal
	Factor          Factor
	OriginRate      decimal.Decimal
	DestinationRate decimal.Decimal
	RateID          string
	RateTimestamp   string
}

type ConversionService struct {
	reader       RangeReader
	ratesRange   model.SheetRange
	factorsRange model.SheetRange
	policy       ConversionPolicy
}

func NewConversionService(reader RangeReader, ranges config.Ranges, policy ConversionPolicy) *ConversionService {
	if policy.DestinationRateDirection == "" {
		policy.DestinationRateDirection = model.Destination
	}
	return &ConversionService{
		reader:       reader,
		ratesRange:   ranges.Rates,
		factorsRange: ranges.FactorMatrix,
		policy:       policy,
	}
}

// Convert computes amount * (rate_destination / rate_origin) * factor from
// the latest rate record, rounded to 4 decimals.
func (s *ConversionService) Convert(ctx context.Context, req ConversionRequest) (*ConversionResult, error) {
	req.Origin = strings.ToUpper(strings.TrimSpace(req.Origin))
	req.Destination = strings.ToUpper(strings.TrimSpace(req.Destination))
	if req.Origin == "" || req.Destination == "" {
		return nil, fmt.Errorf("%w: origin and destination are required", apperrors.ErrValidation)
	}
	if !req.Amount.IsPositive() {
		return nil, fmt.Errorf("%w: amount must be greater than zero", apperrors.ErrValidation)
	}
	if !tabular.BoundedAmount(req.Amount) {
		return nil, fmt.Errorf("%w: amount is out of range", apperrors.ErrValidation)
	}

	rateRows, factors, err := s.load(ctx)
	if err != nil {
		return nil, err
	}

	latest, ok := tabular.Latest(tabular.ToRecords(rateRows), RateIDField)
	if !ok {
		return nil, fmt.Errorf("%w: rate table %s is empty", apperrors.ErrNoData, s.ratesRange)
	}

	originRate, err := rate(latest, model.NewRateKey(req.Origin, model.Origin))
	if err != nil {
		return nil, err
	}
	destRate, err := rate(latest, model.NewRateKey(req.Destination, s.policy.DestinationRateDirection))
	if err != nil {
		return nil, err
	}

	factor, err := factors.Lookup(req.Destination, req.Origin, s.policy.FactorOriginFallback)
	if err != nil {
		return nil, err
	}

	converted := req.Amount.Mul(destRate.Div(originRate)).Mul(factor.Value).Round(4)
	if !tabular.BoundedAmount(converted) {
		return nil, fmt.Errorf("%w: converted amount is out of range", apperrors.ErrValidation)
	}

	return &ConversionResult{
		Request:         req,
		Converted:       converted,
		Factor:          factor,
		OriginRate:      originRate,
		DestinationRate: destRate,
		RateID:          latest[RateIDField],
		RateTimestamp:   latest[RateTimestampField],
	}, nil
}

// load reads the rate table and, when configured, the factor matrix in
// parallel.
func (s *ConversionService) load(ctx context.Context) ([][]string, *FactorMatrix, error) {
	if !s.policy.SheetFactors {
		rows, err := s.reader.ReadRange(ctx, s.ratesRange)
		if err != nil {
			return nil, nil, err
		}
		return rows, StaticFactors(), nil
	}

	var rateRows, factorRows [][]string
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		rateRows, err = s.reader.ReadRange(gctx, s.ratesRange)
		return err
	})
	g.Go(func() error {
		var err error
		factorRows, err = s.reader.ReadRange(gctx, s.factorsRange)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, nil, err
	}
	return rateRows, NewFactorMatrixFromRows(factorRows), nil
}

func rate(rec model.Record, key model.RateKey) (decimal.Decimal, error) {
	raw, ok := rec.Get(key.String())
	if !ok {
		return decimal.Zero, fmt.Errorf("%w: rate key %s not present in latest rate record", apperrors.ErrNotFound, key)
	}
	v, err := tabular.ParseDecimal(raw)
	if err != nil || v.IsZero() {
		return decimal.Zero, fmt.Errorf("%w: rate %s is zero or not a number (%q)", apperrors.ErrNotFound, key, raw)
	}
	return v, nil
}
