package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"hanainplan/internal/domain"
	"hanainplan/internal/service"
)

// MockRegistrationService is a mock implementation of service.RegistrationService.
type MockRegistrationService struct {
	mock.Mock
}

func (m *MockRegistrationService) RegisterCounselor(ctx context.Context, input service.RegisterCounselorInput) (int64, error) {
	args := m.Called(ctx, input)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockRegistrationService) ListCounselors(ctx context.Context) ([]domain.CounselorRecord, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.CounselorRecord), args.Error(1)
}
