package postgres

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"

	"hanainplan/internal/domain"
	"hanainplan/internal/port"
)

type counselorRepo struct {
	db *sqlx.DB
}

// NewCounselorRepo creates a new PostgreSQL-backed CounselorRepository.
func NewCounselorRepo(db *sqlx.DB) port.CounselorRepository {
	return &counselorRepo{db: db}
}

func (r *counselorRepo) Register(ctx context.Context, user *domain.CounselorUser, consultant *domain.Consultant) (int64, error) {
	now := time.Now().UTC()
	user.CreatedDate = now
	user.UpdatedDate = now
	consultant.CreatedDate = now
	consultant.UpdatedDate = now

	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("counselorRepo.Register: begin: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	var userID int64
	err = tx.QueryRowxContext(ctx,
		`INSERT INTO tb_user (user_type, user_name, social_number, phone_number, birth_date,
			gender, login_type, is_phone_verified, is_active, created_date, updated_date)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING user_id`,
		user.UserType, user.UserName, user.SocialNumber, user.PhoneNumber, user.BirthDate,
		user.Gender, user.LoginType, user.IsPhoneVerified, user.IsActive,
		user.CreatedDate, user.UpdatedDate,
	).Scan(&userID)
	if err != nil {
		if strings.Contains(err.Error(), "duplicate key") {
			return 0, domain.ErrDuplicateCounselor
		}
		return 0, fmt.Errorf("counselorRepo.Register: insert user: %w", err)
	}
	user.UserID = userID
	consultant.ConsultantID = userID

	_, err = tx.ExecContext(ctx,
		`INSERT INTO tb_consultant (consultant_id, employee_id, branch_code, branch_name,
			department, position, license_type, license_number, license_issue_date,
			hire_date, work_status, created_date, updated_date)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`,
		consultant.ConsultantID, consultant.EmployeeID, consultant.BranchCode,
		consultant.BranchName, consultant.Department, consultant.Position,
		consultant.LicenseType, consultant.LicenseNumber, consultant.LicenseIssueDate,
		consultant.HireDate, consultant.WorkStatus,
		consultant.CreatedDate, consultant.UpdatedDate,
	)
	if err != nil {
		if strings.Contains(err.Error(), "duplicate key") {
			return 0, domain.ErrDuplicateCounselor
		}
		return 0, fmt.Errorf("counselorRepo.Register: insert consultant: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("counselorRepo.Register: commit: %w", err)
	}
	return userID, nil
}

func (r *counselorRepo) List(ctx context.Context) ([]domain.CounselorRecord, error) {
	var records []domain.CounselorRecord
	err := r.db.SelectContext(ctx, &records,
		`SELECT u.user_id, u.user_name, u.phone_number, u.birth_date, u.gender,
			c.employee_id, c.branch_code, c.branch_name, c.department, c.position,
			c.license_type, c.license_number, c.license_issue_date, c.hire_date,
			c.work_status, u.created_date
		FROM tb_user u
		JOIN tb_consultant c ON c.consultant_id = u.user_id
		WHERE u.user_type = 'COUNSELOR'
		ORDER BY u.created_date DESC`)
	if err != nil {
		return nil, fmt.Errorf("counselorRepo.List: %w", err)
	}
	return records, nil
}
