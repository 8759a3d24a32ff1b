package config

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/anyulbade/noctus-rates-api/internal/model"
)

const (
	FactorSourceStatic = "static"
	FactorSourceSheet  = "sheet"
)

type Config struct {
	Port    string
	GinMode string

	SpreadsheetID   string
	CredentialsFile string
	// CredentialsJSON is an inline service account key; it takes precedence
	// over CredentialsFile.
	CredentialsJSON string

	FactorSource             string
	DestinationRateDirection model.Direction
	FactorOriginFallback     bool

	Ranges Ranges
}

// Ranges are the spreadsheet locations served by the API.
type Ranges struct {
	Rates        model.SheetRange
	FactorMatrix model.SheetRange
	VESHeaders   model.SheetRange
	VESValues    model.SheetRange
	COPVES       model.SheetRange
	Image        model.SheetRange
	Fundablock   model.SheetRange
}

const (
	sheetMargin = "Miguelacho"
	sheetMarket = "Mercado"
	sheetImage  = "imagen"
)

func DefaultRanges() Ranges {
	return Ranges{
		Rates:        model.SheetRange{Sheet: sheetMarket, Range: "A1:M999"},
		FactorMatrix: model.SheetRange{Sheet: sheetMargin, Range: "B2:L12"},
		VESHeaders:   model.SheetRange{Sheet: sheetMargin, Range: "B2:L2"},
		VESValues:    model.SheetRange{Sheet: sheetMargin, Range: "B23:L23"},
		COPVES:       model.SheetRange{Sheet: sheetImage, Range: "B21:W22"},
		Image:        model.SheetRange{Sheet: sheetImage, Range: "B15:L16"},
		Fundablock:   model.SheetRange{Sheet: sheetImage, Range: "B18:K19"},
	}
}

// Load reads configuration from the environment, after loading a .env file
// when one exists.
func Load() (*Config, error) {
	_ = godotenv.Load()

	v := viper.New()
	v.SetDefault("PORT", "8080")
	v.SetDefault("GIN_MODE", "debug")
	v.SetDefault("SPREADSHEET_ID", "1jv-wydSjH84MLUtj-zRvHsxUlpEiqe5AlkTkr6K2248")
	v.SetDefault("GOOGLE_APPLICATION_CREDENTIALS", "/workspace/credentials.json")
	v.SetDefault("GOOGLE_CREDENTIALS_JSON", "")
	v.SetDefault("FACTOR_SOURCE", FactorSourceStatic)
	v.SetDefault("DESTINATION_RATE_DIRECTION", string(model.Destination))
	v.SetDefault("FACTOR_ORIGIN_FALLBACK", false)
	v.AutomaticEnv()

	cfg := &Config{
		Port:                     strings.TrimSpace(v.GetString("PORT")),
		GinMode:                  v.GetString("GIN_MODE"),
		SpreadsheetID:            strings.TrimSpace(v.GetString("SPREADSHEET_ID")),
		CredentialsFile:          strings.TrimSpace(v.GetString("GOOGLE_APPLICATION_CREDENTIALS")),
		CredentialsJSON:          v.GetString("GOOGLE_CREDENTIALS_JSON"),
		FactorSource:             strings.ToLower(strings.TrimSpace(v.GetString("FACTOR_SOURCE"))),
		DestinationRateDirection: model.Direction(strings.ToUpper(strings.TrimSpace(v.GetString("DESTINATION_RATE_DIRECTION")))),
		FactorOriginFallback:     v.GetBool("FACTOR_ORIGIN_FALLBACK"),
		Ranges:                   DefaultRanges(),
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	var errs []error

	if port, err := strconv.Atoi(c.Port); err != nil || port < 1 || port > 65535 {
		errs = append(errs, fmt.Errorf("PORT must be a valid port number, got %q", c.Port))
	}
	if c.SpreadsheetID == "" {
		errs = append(errs, errors.New("SPREADSHEET_ID is required"))
	}
	if c.CredentialsJSON == "" && c.CredentialsFile == "" {
		errs = append(errs, errors.New("one of GOOGLE_CREDENTIALS_JSON or GOOGLE_APPLICATION_CREDENTIALS is required"))
	}
	if c.FactorSource != FactorSourceStatic && c.FactorSource != FactorSourceSheet {
		errs = append(errs, fmt.Errorf("FACTOR_SOURCE must be %q or %q, got %q", FactorSourceStatic, FactorSourceSheet, c.FactorSource))
	}
	if _, err := model.ParseDirection(string(c.DestinationRateDirection)); err != nil {
		errs = append(errs, fmt.Errorf("DESTINATION_RATE_DIRECTION: %w", err))
	}

	return errors.Join(errs...)
}
