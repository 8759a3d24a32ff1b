package service

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/anyulbade/noctus-rates-api/internal/config"
	"github.com/anyulbade/noctus-rates-api/internal/model"
	"github.com/anyulbade/noctus-rates-api/internal/tabular"
)

// RangeReader fetches the cell values of a spreadsheet range.
type RangeReader interface {
	ReadRange(ctx context.Context, rng model.SheetRange) ([][]string, error)
}

// Columns of the rate table: a monotonic identifier and its timestamp.
const (
	RateIDField        = "IDTAS"
	RateTimestampField = "FECHA"
)

type Shape int

const (
	// ShapeRecords maps every row onto the header row.
	ShapeRecords Shape = iota
	// ShapeLatest keeps only the record with the greatest RateIDField.
	ShapeLatest
	// ShapePairs zips a header row with a value row into one record. With one
	// range the first two rows are used, with two ranges the first row of each.
	ShapePairs
)

type Dataset struct {
	Name        string
	Path        string
	Aliases     []string
	Description string
	Ranges      []model.SheetRange
	Shape       Shape
	Pair        tabular.PairOptions
}

// Datasets is the catalog of read endpoints backed by the spreadsheet.
func Datasets(r config.Ranges) []Dataset {
	return []Dataset{
		{
			Name:        "tasas-promedio",
			Path:        "/tasas-promedio",
			Aliases:     []string{"/tasas"},
			Description: "Latest average rate record (sheet Mercado)",
			Ranges:      []model.SheetRange{r.Rates},
			Shape:       ShapeLatest,
		},
		{
			Name:        "matriz-ganancia",
			Path:        "/matriz-ganancia",
			Aliases:     []string{"/matriz_cruce"},
			Description: "Margin cross matrix (sheet Miguelacho)",
			Ranges:      []model.SheetRange{r.FactorMatrix},
			Shape:       ShapeRecords,
		},
		{
			Name:        "tasas-ves",
			Path:        "/tasas-ves",
			Description: "VES margin rates (sheet Miguelacho, row 23)",
			Ranges:      []model.SheetRange{r.VESHeaders, r.VESValues},
			Shape:       ShapePairs,
		},
		{
			Name:        "tasas-cop_ves",
			Path:        "/tasas-cop_ves",
			Description: "COP/VES rates (sheet imagen, " + r.COPVES.Range + ")",
			Ranges:      []model.SheetRange{r.COPVES},
			Shape:       ShapePairs,
			Pair:        tabular.PairOptions{SkipBlankHeaders: true, UpperKeys: true, PeriodDecimals: true, ValueDriven: true},
		},
		{
			Name:        "datos-imagen",
			Path:        "/datos-imagen",
			Description: "Image data (sheet imagen, " + r.Image.Range + ")",
			Ranges:      []model.SheetRange{r.Image},
			Shape:       ShapePairs,
		},
		{
			Name:        "tasas-fundablock",
			Path:        "/tasas-fundablock",
			Description: "Fundablock rates (sheet imagen, " + r.Fundablock.Range + ")",
			Ranges:      []model.SheetRange{r.Fundablock},
			Shape:       ShapePairs,
		},
	}
}

type DatasetService struct {
	reader RangeReader
}

func NewDatasetService(reader RangeReader) *DatasetService {
	return &DatasetService{reader: reader}
}

// Fetch reads the ranges of ds and reshapes them. The result is never nil.
func (s *DatasetService) Fetch(ctx context.Context, ds Dataset) ([]model.Record, error) {
	if len(ds.Ranges) == 0 {
		return nil, fmt.Errorf("dataset %s has no ranges", ds.Name)
	}
	grids, err := s.readAll(ctx, ds.Ranges)
	if err != nil {
		return nil, err
	}

	switch ds.Shape {
	case ShapeRecords:
		return tabular.ToRecords(grids[0]), nil
	case ShapeLatest:
		latest, ok := tabular.Latest(tabular.ToRecords(grids[0]), RateIDField)
		if !ok {
			return []model.Record{}, nil
		}
		return []model.Record{latest}, nil
	case ShapePairs:
		headers, values, ok := pairRows(grids)
		if !ok {
			return []model.Record{}, nil
		}
		return []model.Record{tabular.PairRows(headers, values, ds.Pair)}, nil
	}
	return nil, fmt.Errorf("dataset %s: unknown shape %d", ds.Name, ds.Shape)
}

// readAll fetches every range concurrently, keeping the order of ranges.
func (s *DatasetService) readAll(ctx context.Context, ranges []model.SheetRange) ([][][]string, error) {
	grids := make([][][]string, len(ranges))
	g, gctx := errgroup.WithContext(ctx)
	for i, rng := range ranges {
		i, rng := i, rng
		g.Go(func() error {
			rows, err := s.reader.ReadRange(gctx, rng)
			if err != nil {
				return err
			}
			grids[i] = rows
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return grids, nil
}

func pairRows(grids [][][]string) (headers, values []string, ok bool) {
	switch len(grids) {
	case 1:
		if len(grids[0]) < 2 {
			return nil, nil, false
		}
		return grids[0][0], grids[0][1], true
	case 2:
		if len(grids[0]) == 0 || len(grids[1]) == 0 {
			return nil, nil, false
		}
		return grids[0][0], grids[1][0], true
	}
	return nil, nil, false
}
