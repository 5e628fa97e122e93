package mask

import (
	"hanainplan/internal/pattern"
)

// Detector decides whether an individual OCR token carries PII. It drives the
// image-region redaction: every sensitive token's bounding box gets blurred.
type Detector struct {
	catalog *pattern.Catalog
}

// NewDetector builds a Detector over the given catalog.
func NewDetector(catalog *pattern.Catalog) *Detector {
	return &Detector{catalog: catalog}
}

// IsSensitive reports whether the token text matches any PII pattern. For the
// address grammars a token is flagged only when it is not itself a bare
// province/city name and is longer than the configured cutoff; a lone "서울"
// token is not an address leak.
func (d *Detector) IsSensitive(token string) bool {
	c := d.catalog

	if c.RRNHyphen.MatchString(token) || c.RRN13.MatchString(token) {
		return true
	}
	if c.CreditCard.MatchString(token) {
		return true
	}
	if c.Phone.MatchString(token) {
		return true
	}
	if c.Email.MatchString(token) {
		return true
	}
	if c.Bank.MatchString(token) {
		return true
	}
	if c.Address.MatchString(token) || c.AddressSimple.MatchString(token) {
		if !c.ProvincePrefix.MatchString(token) && runeLen(token) > c.Data.AddressMinTokenLen {
			return true
		}
	}
	return false
}
