package repository

import (
	"context"
	"fmt"
	"os"

	"github.com/rs/zerolog/log"
	"golang.org/x/oauth2/google"
	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"

	"github.com/anyulbade/noctus-rates-api/internal/config"
	"github.com/anyulbade/noctus-rates-api/internal/model"
)

type SheetRepository struct {
	svc           *sheets.Service
	spreadsheetID string
}

func NewSheetRepository(svc *sheets.Service, spreadsheetID string) *SheetRepository {
	return &SheetRepository{svc: svc, spreadsheetID: spreadsheetID}
}

// NewSheetsService builds a read-only Sheets client from the configured
// service account credentials. Extra options are appended last so callers
// can override the endpoint or HTTP client.
func NewSheetsService(ctx context.Context, cfg *config.Config, opts ...option.ClientOption) (*sheets.Service, error) {
	data := []byte(cfg.CredentialsJSON)
	if len(data) == 0 {
		var err error
		data, err = os.ReadFile(cfg.CredentialsFile)
		if err != nil {
			return nil, fmt.Errorf("read credentials file: %w", err)
		}
	}

	creds, err := google.CredentialsFromJSON(ctx, data, sheets.SpreadsheetsReadonlyScope)
	if err != nil {
		return nil, fmt.Errorf("parse credentials: %w", err)
	}

	svc, err := sheets.NewService(ctx, append([]option.ClientOption{option.WithCredentials(creds)}, opts...)...)
	if err != nil {
		return nil, fmt.Errorf("create sheets client: %w", err)
	}
	return svc, nil
}

// ReadRange returns the formatted cell values of r, one string slice per row.
// An empty range yields no rows and no error.
func (r *SheetRepository) ReadRange(ctx context.Context, rng model.SheetRange) ([][]string, error) {
	resp, err := r.svc.Spreadsheets.Values.Get(r.spreadsheetID, rng.A1()).Context(ctx).Do()
	if err != nil {
		log.Error().Err(err).
			Str("sheet", rng.Sheet).
			Str("range", rng.Range).
			Msg("sheets read failed")
		return nil, fmt.Errorf("read %s: %w", rng.A1(), err)
	}

	rows := make([][]string, len(resp.Values))
	for i, row := range resp.Values {
		cells := make([]string, len(row))
		for j, v := range row {
			cells[j] = cellString(v)
		}
		rows[i] = cells
	}
	return rows, nil
}

func cellString(v interface{}) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	default:
		return fmt.Sprint(t)
	}
}
