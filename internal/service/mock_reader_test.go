package service

import (
	"context"

	"github.com/stretchr/testify/mock"

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
