package port

import (
	"context"

	"hanainplan/internal/domain"
)

// CounselorRepository persists counselor registrations.
type CounselorRepository interface {
	// Register inserts the user and consultant rows in one transaction and
	// returns the new user id.
	Register(ctx context.Context, user *domain.CounselorUser, consultant *domain.Consultant) (int64, error)
	// List returns all registered counselors, newest first.
	List(ctx context.Context) ([]domain.CounselorRecord, error)
}
