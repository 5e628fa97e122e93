package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"hanainplan/internal/domain"
)

// MockCounselorRepo is a mock implementation of port.CounselorRepository.
type MockCounselorRepo struct {
	mock.Mock
}

func (m *MockCounselorRepo) Register(ctx context.Context, user *domain.CounselorUser, consultant *domain.Consultant) (int64, error) {
	args := m.Called(ctx, user, consultant)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockCounselorRepo) List(ctx context.Context) ([]domain.CounselorRecord, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.CounselorRecord), args.Error(1)
}
