package domain

import (
	"image"
	"time"
)

// Vertex is one corner of an OCR token's bounding polygon, in pixel coordinates.
type Vertex struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// Token is one OCR-recognized word with its bounding polygon.
// Tokens are produced by the vision collaborator and are read-only downstream.
type Token struct {
	Text     string   `json:"text"`
	Vertices []Vertex `json:"vertices"`
}

// Rect returns the axis-aligned bounding rectangle of the token's vertices.
// A token with no vertices yields the zero rectangle.
func (t Token) Rect() image.Rectangle {
	if len(t.Vertices) == 0 {
		return image.Rectangle{}
	}
	r := image.Rect(t.Vertices[0].X, t.Vertices[0].Y, t.Vertices[0].X, t.Vertices[0].Y)
	for _, v := range t.Vertices[1:] {
		if v.X < r.Min.X {
			r.Min.X = v.X
		}
		if v.X > r.Max.X {
			r.Max.X = v.X
		}
		if v.Y < r.Min.Y {
			r.Min.Y = v.Y
		}
		if v.Y > r.Max.Y {
			r.Max.Y = v.Y
		}
	}
	return r
}

// PIIMatch records one sensitive span found in source text. It lives only for
// the duration of a single masking pass.
type PIIMatch struct {
	Kind  PIIKind
	Start int
	End   int
}

// ExtractedInfo is the structured record extracted from one document page.
// Optional fields are nil when no pattern matched; they are never the empty
// string, so the first-non-nil merge rule stays well-defined.
type ExtractedInfo struct {
	DocumentType      DocumentType `json:"document_type"`
	Name              *string      `json:"name,omitempty"`
	SocialNumberFront *string      `json:"social_number_front,omitempty"`
	Gender            *Gender      `json:"gender,omitempty"`
	EmployeeID        *string      `json:"employee_id,omitempty"`
	BranchCode        *string      `json:"branch_code,omitempty"`
	BranchName        *string      `json:"branch_name,omitempty"`
	Department        *string      `json:"department,omitempty"`
	Position          *string      `json:"position,omitempty"`
	LicenseType       *string      `json:"license_type,omitempty"`
	LicenseNumber     *string      `json:"license_number,omitempty"`
	LicenseIssueDate  *string      `json:"license_issue_date,omitempty"`
	HireDate          *string      `json:"hire_date,omitempty"`
	PhoneNumber       *string      `json:"phone_number,omitempty"`
	Address           *string      `json:"address,omitempty"`
	IssueDate         *string      `json:"issue_date,omitempty"`
	RawText           string       `json:"raw_text"`
}

// MergedInfo consolidates the records of several documents describing the same
// person. It carries every ExtractedInfo field except the per-document raw
// text and document type; fields fill first-non-nil-wins in document order.
type MergedInfo struct {
	Name              *string `json:"name"`
	SocialNumberFront *string `json:"social_number_front"`
	Gender            *Gender `json:"gender"`
	EmployeeID        *string `json:"employee_id"`
	BranchCode        *string `json:"branch_code"`
	BranchName        *string `json:"branch_name"`
	Department        *string `json:"department"`
	Position          *string `json:"position"`
	LicenseType       *string `json:"license_type"`
	LicenseNumber     *string `json:"license_number"`
	LicenseIssueDate  *string `json:"license_issue_date"`
	HireDate          *string `json:"hire_date"`
	PhoneNumber       *string `json:"phone_number"`
	Address           *string `json:"address"`
	IssueDate         *string `json:"issue_date"`
}

// CounselorUser is a row of tb_user for a registered counselor.
type CounselorUser struct {
	UserID          int64     `db:"user_id" json:"user_id"`
	UserType        string    `db:"user_type" json:"user_type"`
	UserName        string    `db:"user_name" json:"user_name"`
	SocialNumber    string    `db:"social_number" json:"-"`
	PhoneNumber     string    `db:"phone_number" json:"phone_number"`
	BirthDate       string    `db:"birth_date" json:"birth_date"`
	Gender          Gender    `db:"gender" json:"gender"`
	LoginType       string    `db:"login_type" json:"login_type"`
	IsPhoneVerified bool      `db:"is_phone_verified" json:"is_phone_verified"`
	IsActive        bool      `db:"is_active" json:"is_active"`
	CreatedDate     time.Time `db:"created_date" json:"created_date"`
	UpdatedDate     time.Time `db:"updated_date" json:"updated_date"`
}

// Consultant is a row of tb_consultant, keyed by the owning user's id.
type Consultant struct {
	ConsultantID     int64     `db:"consultant_id" json:"consultant_id"`
	EmployeeID       string    `db:"employee_id" json:"employee_id"`
	BranchCode       *string   `db:"branch_code" json:"branch_code,omitempty"`
	BranchName       *string   `db:"branch_name" json:"branch_name,omitempty"`
	Department       *string   `db:"department" json:"department,omitempty"`
	Position         *string   `db:"position" json:"position,omitempty"`
	LicenseType      *string   `db:"license_type" json:"license_type,omitempty"`
	LicenseNumber    *string   `db:"license_number" json:"license_number,omitempty"`
	LicenseIssueDate *string   `db:"license_issue_date" json:"license_issue_date,omitempty"`
	HireDate         *string   `db:"hire_date" json:"hire_date,omitempty"`
	WorkStatus       string    `db:"work_status" json:"work_status"`
	CreatedDate      time.Time `db:"created_date" json:"created_date"`
	UpdatedDate      time.Time `db:"updated_date" json:"updated_date"`
}

// CounselorRecord is the flattened join of a counselor's user and consultant
// rows, as returned by list queries and the xlsx export.
type CounselorRecord struct {
	UserID           int64     `db:"user_id" json:"user_id"`
	UserName         string    `db:"user_name" json:"user_name"`
	PhoneNumber      string    `db:"phone_number" json:"phone_number"`
	BirthDate        string    `db:"birth_date" json:"birth_date"`
	Gender           Gender    `db:"gender" json:"gender"`
	EmployeeID       string    `db:"employee_id" json:"employee_id"`
	BranchCode       *string   `db:"branch_code" json:"branch_code,omitempty"`
	BranchName       *string   `db:"branch_name" json:"branch_name,omitempty"`
	Department       *string   `db:"department" json:"department,omitempty"`
	Position         *string   `db:"position" json:"position,omitempty"`
	LicenseType      *string   `db:"license_type" json:"license_type,omitempty"`
	LicenseNumber    *string   `db:"license_number" json:"license_number,omitempty"`
	LicenseIssueDate *string   `db:"license_issue_date" json:"license_issue_date,omitempty"`
	HireDate         *string   `db:"hire_date" json:"hire_date,omitempty"`
	WorkStatus       string    `db:"work_status" json:"work_status"`
	CreatedDate      time.Time `db:"created_date" json:"created_date"`
}
