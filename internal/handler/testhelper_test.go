package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/mock"

	"github.com/anyulbade/noctus-rates-api/internal/config"
	"github.com/anyulbade/noctus-rates-api/internal/model"
)

type MockRangeReader struct {
	mock.Mock
}

func (m *MockRangeReader) ReadRange(ctx context.Context, rng model.SheetRange) ([][]string, error) {
	args := m.Called(ctx, rng)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([][]string), args.Error(1)
}

var testRateRows = [][]string{
	{"IDTAS", "FECHA", "USD_O", "USD_D", "COP_O", "COP_D"},
	{"2", "2025-10-02 08:00", "0,84", "0,84", "0,92", "0,92"},
	{"3", "2025-10-03 08:00", "0,85", "0,85", "0,93", "0,93"},
	{"1", "2025-10-01 08:00", "0,80", "0,80", "0,90", "0,90"},
}

func testConfig() *config.Config {
	return &config.Config{
		Port:                     "8080",
		SpreadsheetID:            "sheet-id",
		CredentialsFile:          "/workspace/credentials.json",
		FactorSource:             config.FactorSourceStatic,
		DestinationRateDirection: model.Destination,
		Ranges:                   config.DefaultRanges(),
	}
}

func setupRouter(t *testing.T, reader *MockRangeReader) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	return NewRouter(testConfig(), reader)
}

func doGet(router *gin.Engine, url string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, url, nil)
	router.ServeHTTP(w, req)
	return w
}
