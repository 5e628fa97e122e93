package extract

import "regexp"

const mobileGrammar = `(01[0-9][- ]?\d{3,4}[- ]?\d{4})`

var phoneRes = []*regexp.Regexp{
	regexp.MustCompile(`연락처[:\s]*` + mobileGrammar),
	regexp.MustCompile(`전화[번호]?[:\s]*` + mobileGrammar),
	regexp.MustCompile(`휴대[전화]?[:\s]*` + mobileGrammar),
	regexp.MustCompile(`Mobile[:\s]*` + mobileGrammar),
}

var issueDateRes = []*regexp.Regexp{
	regexp.MustCompile(`발급[일자]?[:\s]*` + dateGrammar),
	regexp.MustCompile(`발급일[:\s]*` + dateGrammar),
	regexp.MustCompile(`발행[일자]?[:\s]*` + dateGrammar),
	regexp.MustCompile(`발행일[:\s]*` + dateGrammar),
}

// Phone extracts a labeled mobile number, unmasked. Masking happens later in
// the text masker; extraction keeps the original for verification.
func (e *Extractor) Phone(text string) *string {
	for _, re := range phoneRes {
		if m := re.FindStringSubmatch(text); m != nil {
			return strPtr(m[1])
		}
	}
	return nil
}

// Address extracts a residential address: the full administrative grammar
// first, then the abbreviated form that starts with a bare province name.
func (e *Extractor) Address(text string) *string {
	if m := e.catalog.Address.FindString(text); m != "" {
		return strPtr(m)
	}
	if m := e.catalog.AddressSimple.FindString(text); m != "" {
		return strPtr(m)
	}
	return nil
}

// IssueDate extracts the document issue date (주민등록증 and similar).
func (e *Extractor) IssueDate(text string) *string {
	for _, re := range issueDateRes {
		if m := re.FindStringSubmatch(text); m != nil {
			return strPtr(m[1])
		}
	}
	return nil
}
