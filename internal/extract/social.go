package extract

import "hanainplan/internal/domain"

// SocialNumber extracts the displayable RRN prefix and the gender it encodes.
// The pair is always derived from one match: both present or both nil. The
// returned display value is "front6-genderdigit"; the remaining six digits are
// never surfaced.
func (e *Extractor) SocialNumber(text string) (*string, *domain.Gender) {
	m := e.catalog.RRNFront.FindStringSubmatch(text)
	if m == nil {
		return nil, nil
	}

	front, genderDigit := m[1], m[2]
	gender := domain.GenderFemale
	if genderDigit == "1" || genderDigit == "3" {
		gender = domain.GenderMale
	}
	return strPtr(front + "-" + genderDigit), &gender
}
