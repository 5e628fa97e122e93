// Package extract pulls structured fields out of raw OCR text. Every
// extractor is total: it returns nil (or a nil pair) when nothing matches,
// never an error. OCR text is assumed noisy and extraction misses are normal.
package extract

import (
	"regexp"
	"strings"

	"hanainplan/internal/domain"
	"hanainplan/internal/pattern"
)

// dateGrammar is the year-month-day grammar shared by every labeled date
// extractor. Separators cover 년/월/일, hyphen, dot, slash, and space.
const dateGrammar = `((?:19|20)\d{2}[년\-\./ ](?:0?[1-9]|1[0-2])[월\-\./ ](?:0?[1-9]|[12]\d|3[01])일?)`

// Extractor is the family of type-specific field extractors. Patterns whose
// value sets come from catalog data (positions, license types) are compiled at
// construction; everything else is a static package-level pattern.
type Extractor struct {
	catalog         *pattern.Catalog
	positionRes     []*regexp.Regexp
	licenseTypeRes  []*regexp.Regexp
	rrnLocator      *regexp.Regexp
	hangulCandidate *regexp.Regexp
}

// New builds an Extractor over the given catalog.
func New(catalog *pattern.Catalog) *Extractor {
	positions := strings.Join(catalog.Data.Positions, "|")
	licenses := strings.Join(catalog.Data.LicenseTypes, "|")

	return &Extractor{
		catalog: catalog,
		positionRes: []*regexp.Regexp{
			regexp.MustCompile(`직\s*위[:\s]*(` + positions + `)`),
			regexp.MustCompile(`직급[:\s]*(` + positions + `)`),
			regexp.MustCompile(`직책[:\s]*(` + positions + `)`),
		},
		licenseTypeRes: []*regexp.Regexp{
			regexp.MustCompile(`(` + licenses + `)`),
			regexp.MustCompile(`자격증[:\s]*([가-힣]+)`),
		},
		rrnLocator:      regexp.MustCompile(`\d{6}[-\s]?[1-4]\d{6}`),
		hangulCandidate: catalog.HangulRun,
	}
}

// Extract classifies nothing itself; it populates the fields relevant to the
// already-classified document type. Name and the RRN-derived pair are always
// attempted regardless of type.
func (e *Extractor) Extract(text string, docType domain.DocumentType) *domain.ExtractedInfo {
	info := &domain.ExtractedInfo{DocumentType: docType, RawText: text}

	info.Name = e.Name(text)
	info.SocialNumberFront, info.Gender = e.SocialNumber(text)

	switch docType {
	case domain.DocTypeEmployeeID:
		info.BranchCode, info.BranchName = e.Branch(text)
		info.Department, info.Position = e.DepartmentPosition(text)
		info.PhoneNumber = e.Phone(text)

	case domain.DocTypeEmploymentContract:
		info.HireDate = e.HireDate(text)
		info.BranchCode, info.BranchName = e.Branch(text)
		info.Department, info.Position = e.DepartmentPosition(text)

	case domain.DocTypeIdentityVerification:
		info.Address = e.Address(text)
		info.IssueDate = e.IssueDate(text)

	case domain.DocTypeQualificationCert:
		info.LicenseType, info.LicenseNumber, info.LicenseIssueDate = e.License(text)
	}

	return info
}

func strPtr(s string) *string { return &s }

func containsAnySubstring(s string, words []string) bool {
	for _, w := range words {
		if strings.Contains(s, w) {
			return true
		}
	}
	return false
}

func runeLen(s string) int { return len([]rune(s)) }
