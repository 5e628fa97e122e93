package service

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"hanainplan/internal/domain"
	"hanainplan/internal/port"
)

// RegisterCounselorInput carries the verified fields submitted for counselor
// enrollment. Dates accept either digit-only or Korean-suffixed forms
// ("20200101", "2020년 01월 01일"); they are normalized before storage.
type RegisterCounselorInput struct {
	Name             string `json:"name" binding:"required"`
	SocialNumber     string `json:"social_number" binding:"required"`
	Phone            string `json:"phone"`
	EmployeeID       string `json:"employee_id"`
	BranchCode       string `json:"branch_code"`
	BranchName       string `json:"branch_name"`
	Department       string `json:"department"`
	Position         string `json:"position"`
	LicenseType      string `json:"license_type"`
	LicenseNumber    string `json:"license_number"`
	LicenseIssueDate string `json:"license_issue_date"`
	HireDate         string `json:"hire_date"`
}

// RegistrationService enrolls counselors from verified document data.
type RegistrationService interface {
	RegisterCounselor(ctx context.Context, input RegisterCounselorInput) (int64, error)
	ListCounselors(ctx context.Context) ([]domain.CounselorRecord, error)
}

type registrationService struct {
	repo port.CounselorRepository
}

// NewRegistrationService creates a RegistrationService backed by the given
// repository.
func NewRegistrationService(repo port.CounselorRepository) RegistrationService {
	return &registrationService{repo: repo}
}

var socialNumberRe = regexp.MustCompile(`^\d{13}$`)

func (s *registrationService) RegisterCounselor(ctx context.Context, input RegisterCounselorInput) (int64, error) {
	digits := strings.NewReplacer("-", "", " ", "").Replace(input.SocialNumber)
	if !socialNumberRe.MatchString(digits) {
		return 0, domain.ErrInvalidSocialNumber
	}

	birthDate, gender, err := birthFromSocialNumber(digits)
	if err != nil {
		return 0, err
	}

	user := domain.CounselorUser{
		UserType:        "COUNSELOR",
		UserName:        strings.TrimSpace(input.Name),
		SocialNumber:    digits,
		PhoneNumber:     input.Phone,
		BirthDate:       birthDate,
		Gender:          gender,
		LoginType:       "PASSWORD",
		IsPhoneVerified: true,
		IsActive:        true,
	}
	consultant := domain.Consultant{
		EmployeeID:       input.EmployeeID,
		BranchCode:       optional(input.BranchCode),
		BranchName:       optional(input.BranchName),
		Department:       optional(input.Department),
		Position:         optional(input.Position),
		LicenseType:      optional(input.LicenseType),
		LicenseNumber:    optional(input.LicenseNumber),
		LicenseIssueDate: optional(normalizeDate(input.LicenseIssueDate)),
		HireDate:         optional(normalizeDate(input.HireDate)),
		WorkStatus:       "ACTIVE",
	}

	return s.repo.Register(ctx, &user, &consultant)
}

func (s *registrationService) ListCounselors(ctx context.Context) ([]domain.CounselorRecord, error) {
	return s.repo.List(ctx)
}

// birthFromSocialNumber derives the birth date and gender from a 13-digit
// resident registration number. Gender digits 1 and 2 mean a 1900s birth,
// 3 and 4 a 2000s birth.
func birthFromSocialNumber(digits string) (string, domain.Gender, error) {
	genderDigit := digits[6]
	var century string
	switch genderDigit {
	case '1', '2':
		century = "19"
	case '3', '4':
		century = "20"
	default:
		return "", "", domain.ErrInvalidSocialNumber
	}
	birthDate := fmt.Sprintf("%s%s-%s-%s", century, digits[0:2], digits[2:4], digits[4:6])

	gender := domain.GenderFemale
	if genderDigit == '1' || genderDigit == '3' {
		gender = domain.GenderMale
	}
	return birthDate, gender, nil
}

var dateSepRe = regexp.MustCompile(`[년월일.\s/]+`)

// normalizeDate rewrites Korean or slash-separated dates to hyphenated form,
// e.g. "2020년 01월 01일" becomes "2020-01-01". Empty input stays empty.
func normalizeDate(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return ""
	}
	s = dateSepRe.ReplaceAllString(s, "-")
	return strings.Trim(s, "-")
}

func optional(s string) *string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	return &s
}
