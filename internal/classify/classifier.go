// Package classify decides which of the four supported document types a page
// of OCR text belongs to.
package classify

import (
	"strings"

	"hanainplan/internal/domain"
	"hanainplan/internal/pattern"
)

// Classifier assigns a document type from keyword signals in raw OCR text.
type Classifier struct {
	catalog *pattern.Catalog
}

// New creates a Classifier backed by the given pattern catalog.
func New(catalog *pattern.Catalog) *Classifier {
	return &Classifier{catalog: catalog}
}

// Classify returns the document type for the given text. It is total: when no
// keyword matches, it falls back to identity verification. The checks run in
// fixed priority order, and the qualification check is suppressed when the
// text also carries an employment signal, so a certificate mentioned inside an
// employment document does not win.
func (c *Classifier) Classify(text string) domain.DocumentType {
	d := &c.catalog.Data

	if containsAny(text, d.EmployeeIDKeywords) {
		return domain.DocTypeEmployeeID
	}
	if containsAny(text, d.EmploymentKeywords) {
		return domain.DocTypeEmploymentContract
	}
	if containsAny(text, d.QualificationKeywords) && !strings.Contains(text, d.EmploymentGuard) {
		return domain.DocTypeQualificationCert
	}
	if containsAny(text, d.IdentityKeywords) {
		return domain.DocTypeIdentityVerification
	}
	return domain.DocTypeIdentityVerification
}

func containsAny(text string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(text, kw) {
			return true
		}
	}
	return false
}
