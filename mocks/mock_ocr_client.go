package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"hanainplan/internal/port"
)

// MockOCRClient is a mock implementation of port.OCRClient.
type MockOCRClient struct {
	mock.Mock
}

func (m *MockOCRClient) Annotate(ctx context.Context, imageBytes []byte) (*port.Annotation, error) {
	args := m.Called(ctx, imageBytes)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*port.Annotation), args.Error(1)
}
