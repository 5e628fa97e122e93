package extract

import "regexp"

var licenseNumberRes = []*regexp.Regexp{
	regexp.MustCompile(`자격[증]?\s*[번]?호[:\s]*([A-Z0-9\-]{6,20})`),
	regexp.MustCompile(`등록[번]?호[:\s]*([A-Z0-9\-]{6,20})`),
}

// License extracts qualification certificate fields: the license type (from
// the closed enum, or a generic 자격증 label), the registration number, and
// the first full date in the text as the issue date.
func (e *Extractor) License(text string) (licenseType, number, issueDate *string) {
	for _, re := range e.licenseTypeRes {
		if m := re.FindStringSubmatch(text); m != nil {
			licenseType = strPtr(m[1])
			break
		}
	}

	for _, re := range licenseNumberRes {
		if m := re.FindStringSubmatch(text); m != nil {
			number = strPtr(m[1])
			break
		}
	}

	if d := e.catalog.DateYYYYMMDD.FindString(text); d != "" {
		issueDate = strPtr(d)
	}

	return licenseType, number, issueDate
}
