package extract

import (
	"regexp"
	"strings"
)

var employeeIDRes = []*regexp.Regexp{
	regexp.MustCompile(`(?i)직원[번]?호[:\s]*([A-Z0-9가-힣]{4,15})`),
	regexp.MustCompile(`(?i)사원[번]?호[:\s]*([A-Z0-9가-힣]{4,15})`),
	regexp.MustCompile(`(?i)ID[:\s]*([A-Z0-9]{6,12})`),
	regexp.MustCompile(`(?i)HANA(\d{6,10})`),
	regexp.MustCompile(`(?i)Employee\s*ID[:\s]*([A-Z0-9]{6,12})`),
	regexp.MustCompile(`(?i)NO\.?\s*([A-Z0-9]{6,12})`),
}

var branchRes = []*regexp.Regexp{
	regexp.MustCompile(`(하나은행|KB국민은행|신한은행)\s*([가-힣]{2,6})\s*지점`),
	regexp.MustCompile(`(하나은행|KB국민은행|신한은행)\s*(본점)`),
	regexp.MustCompile(`소\s*속[:\s]*([가-힣]{2,6})\s*지점`),
	regexp.MustCompile(`소속[:\s]*([가-힣]{2,6})\s*지점`),
	regexp.MustCompile(`근무\s*지점[:\s]*([가-힣]{2,6})\s*지점`),
	regexp.MustCompile(`발급\s*지점[:\s]*([가-힣]{2,6})\s*지점`),
	regexp.MustCompile(`Branch[:\s]*([가-힣]{2,6})`),
}

var departmentRes = []*regexp.Regexp{
	regexp.MustCompile(`부서[:\s]*([가-힣]+)`),
	regexp.MustCompile(`소속[:\s]*([가-힣]+)부`),
	regexp.MustCompile(`소\s*속[:\s]*([가-힣]+)`),
}

var hireDateRes = []*regexp.Regexp{
	regexp.MustCompile(`입사\s*연\s*월\s*일[:\s]*` + dateGrammar),
	regexp.MustCompile(`입사연월일[:\s]*` + dateGrammar),
	regexp.MustCompile(`입사[일]?[:\s]*` + dateGrammar),
	regexp.MustCompile(`근무\s*시작[일]?[:\s]*` + dateGrammar),
	regexp.MustCompile(`채용[일]?[:\s]*` + dateGrammar),
	regexp.MustCompile(`계약\s*시작[일]?[:\s]*` + dateGrammar),
	regexp.MustCompile(`발령[일]?[:\s]*` + dateGrammar),
}

// EmployeeID extracts a badge/employee number. Candidates containing Hangul
// are rejected: employee IDs are alphanumeric, and the broader labeled
// patterns otherwise capture the following Korean word.
func (e *Extractor) EmployeeID(text string) *string {
	for _, re := range employeeIDRes {
		m := re.FindStringSubmatch(text)
		if m == nil {
			continue
		}
		id := strings.TrimSpace(m[1])
		if !e.catalog.Hangul.MatchString(id) {
			return strPtr(id)
		}
	}
	return nil
}

// Branch extracts branch information. The returned code is currently always
// nil; only the display name can be recovered from OCR text. "본점" (head
// office) is normalized without the 지점 suffix.
func (e *Extractor) Branch(text string) (code, name *string) {
	for _, re := range branchRes {
		m := re.FindStringSubmatch(text)
		if m == nil {
			continue
		}
		branch := m[len(m)-1]
		if runeLen(branch) < 2 {
			continue
		}
		if branch == "본점" {
			return nil, strPtr("본점")
		}
		if !contains(e.catalog.Data.BranchStopwords, branch) {
			return nil, strPtr(branch + "지점")
		}
	}
	return nil, nil
}

// DepartmentPosition extracts the department and the job title. The title
// comes from a closed enum of recognized positions; the department is any
// labeled Hangul run that is not a bank name.
func (e *Extractor) DepartmentPosition(text string) (department, position *string) {
	for _, re := range departmentRes {
		m := re.FindStringSubmatch(text)
		if m == nil {
			continue
		}
		dept := strings.TrimSpace(m[1])
		if runeLen(dept) >= 2 && !contains(e.catalog.Data.DepartmentStopwords, dept) {
			department = strPtr(dept)
			break
		}
	}

	for _, re := range e.positionRes {
		if m := re.FindStringSubmatch(text); m != nil {
			position = strPtr(m[1])
			break
		}
	}

	return department, position
}

// HireDate extracts the employment start date from any of the labeled
// phrasings used across contracts and employment certificates.
func (e *Extractor) HireDate(text string) *string {
	for _, re := range hireDateRes {
		if m := re.FindStringSubmatch(text); m != nil {
			return strPtr(m[1])
		}
	}
	return nil
}

func contains(words []string, s string) bool {
	for _, w := range words {
		if w == s {
			return true
		}
	}
	return false
}
