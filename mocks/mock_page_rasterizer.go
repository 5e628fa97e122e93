package mocks

import (
	"context"
	"image"

	"github.com/stretchr/testify/mock"
)

// MockPageRasterizer is a mock implementation of port.PageRasterizer.
type MockPageRasterizer struct {
	mock.Mock
}

func (m *MockPageRasterizer) Rasterize(ctx context.Context, pdfBytes []byte, dpi int) ([]image.Image, error) {
	args := m.Called(ctx, pdfBytes, dpi)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]image.Image), args.Error(1)
}
