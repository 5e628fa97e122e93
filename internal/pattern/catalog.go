// Package pattern holds the compiled matcher set shared by the classification,
// extraction, and masking pipeline. A Catalog is immutable after construction
// and safe to share across any number of concurrent requests.
package pattern

import "regexp"

// Catalog is the compiled pattern set plus the empirical keyword data the
// pipeline was tuned against. Construct one with New and pass it to every
// component; there are no package-level singletons.
type Catalog struct {
	// PII patterns, in masking precedence order. Later patterns (the generic
	// bank digit run in particular) rely on earlier, more specific patterns
	// having already consumed their spans during masking.
	RRNHyphen  *regexp.Regexp // 6 digits, hyphen, 7 digits
	RRN13      *regexp.Regexp // bare 13-digit run
	RRNFront   *regexp.Regexp // captures front 6 and the century/gender digit
	CreditCard *regexp.Regexp // 13-19 digit run with optional separators
	Phone      *regexp.Regexp // Korean mobile number
	Email      *regexp.Regexp
	Bank       *regexp.Regexp // generic 8-16 digit account-like run

	// Date grammars. No word-boundary anchors: the surrounding characters are
	// Hangul, which RE2's ASCII \b cannot anchor against.
	DateYYYYMMDD *regexp.Regexp
	DateYYMMDD   *regexp.Regexp

	// Address grammars: full administrative form and abbreviated form.
	Address       *regexp.Regexp
	AddressSimple *regexp.Regexp
	// ProvincePrefix matches a token that begins with a bare province/city
	// name; such tokens are not sensitive on their own.
	ProvincePrefix *regexp.Regexp

	// Hangul helpers used by the name extractor.
	HangulRun *regexp.Regexp // 2-4 syllable run
	Hangul    *regexp.Regexp // any single Hangul syllable

	Data Data
}

// Data carries the keyword lists and thresholds of the pipeline. The lists are
// empirical, tuned against observed document samples; treat them as data and
// expect them to change.
type Data struct {
	// Classification keyword sets, checked in priority order.
	EmployeeIDKeywords    []string
	EmploymentKeywords    []string
	QualificationKeywords []string
	// EmploymentGuard blocks the qualification classification when present,
	// so a certificate mentioned inside an employment document does not win.
	EmploymentGuard  string
	IdentityKeywords []string

	// Name extraction data.
	NameExcludeWords map[string]bool
	// Forbidden substrings per extraction tier: labeled match, before-RRN
	// fallback, and the last-resort Hangul scan.
	NameForbiddenLabeled  []string
	NameForbiddenNearRRN  []string
	NameForbiddenFallback []string
	// NameWindow is how many characters before an RRN match the second-tier
	// name search looks at.
	NameWindow int

	// Branch/department extraction stopwords.
	BranchStopwords     []string
	DepartmentStopwords []string

	// Positions is the closed set of recognized job titles.
	Positions []string
	// LicenseTypes is the closed set of recognized qualification names.
	LicenseTypes []string

	// AddressMinTokenLen: tokens at or below this rune length are never
	// flagged as sensitive addresses, even when the grammar matches.
	AddressMinTokenLen int
}

// Option overrides a Catalog knob at construction time.
type Option func(*Data)

// WithNameWindow overrides the before-RRN name search window.
func WithNameWindow(n int) Option {
	return func(d *Data) { d.NameWindow = n }
}

// WithAddressMinTokenLen overrides the bare-address length cutoff.
func WithAddressMinTokenLen(n int) Option {
	return func(d *Data) { d.AddressMinTokenLen = n }
}

// New compiles the catalog with the default keyword data, applying any options.
func New(opts ...Option) *Catalog {
	data := defaultData()
	for _, opt := range opts {
		opt(&data)
	}

	return &Catalog{
		RRNHyphen:  regexp.MustCompile(`\b\d{6}-\d{7}\b`),
		RRN13:      regexp.MustCompile(`\b\d{13}\b`),
		RRNFront:   regexp.MustCompile(`(\d{6})[-\s]?([1-4])\d{6}`),
		CreditCard: regexp.MustCompile(`\b(?:\d[ -]*?){13,19}\b`),
		Phone:      regexp.MustCompile(`\b01[016789][- ]?\d{3,4}[- ]?\d{4}\b`),
		Email:      regexp.MustCompile(`[a-zA-Z0-9_.+-]+@[a-zA-Z0-9-]+\.[a-zA-Z0-9-.]+`),
		Bank:       regexp.MustCompile(`\b\d{8,16}\b`),

		DateYYYYMMDD: regexp.MustCompile(`(19|20)\d{2}[년\-\./ ](0?[1-9]|1[0-2])[월\-\./ ](0?[1-9]|[12]\d|3[01])일?`),
		DateYYMMDD:   regexp.MustCompile(`\d{2}[년\-\./ ](0?[1-9]|1[0-2])[월\-\./ ](0?[1-9]|[12]\d|3[01])일?`),

		Address:        regexp.MustCompile(`(서울특?별?시|부산광역시|대구광역시|인천광역시|광주광역시|대전광역시|울산광역시|세종특별자치시|경기도|강원특?별?자?치?도|충청북도|충청남도|전라북도|전북특별자치도|전라남도|경상북도|경상남도|제주특별자치도)\s+[가-힣]+[시군구]\s+[가-힣\s]+[동로가길읍면리번지]\s*\d*[-\s]*\d*`),
		AddressSimple:  regexp.MustCompile(`(서울|부산|대구|인천|광주|대전|울산|세종|경기|강원|충북|충남|전북|전남|경북|경남|제주)[^\n]{10,50}[동로가길읍면리]`),
		ProvincePrefix: regexp.MustCompile(`^(서울|부산|대구|인천|광주|대전|울산|세종|경기|강원|충북|충남|전북|전남|경북|경남|제주)`),

		HangulRun: regexp.MustCompile(`[가-힣]{2,4}`),
		Hangul:    regexp.MustCompile(`[가-힣]`),

		Data: data,
	}
}

func defaultData() Data {
	excludeWords := []string{
		"하나은행", "국민은행", "신한은행", "우리은행", "농협은행", "KB은행",
		"증명서", "계약서", "재직증명", "재직", "직원증", "사원증",
		"근로계약", "고용계약", "자격증", "본점", "지점", "주민등록증", "주민등록",
		"운전면허", "면허증", "금융", "상담", "대리", "과장", "부장", "팀장",
		"입사", "연월일", "생년월일", "생년", "월일", "일생", "발급", "유효", "기간",
		"서울특별", "특별시", "광역시", "주소", "전화", "휴대", "연락", "소속", "직위", "직급",
		"중구", "을지로", "강남구", "서초구", "종로구", "올지로",
	}
	excludeSet := make(map[string]bool, len(excludeWords))
	for _, w := range excludeWords {
		excludeSet[w] = true
	}

	return Data{
		EmployeeIDKeywords:    []string{"직원증", "사원증", "employee id", "id card", "사번"},
		EmploymentKeywords:    []string{"재직증명서", "재직증명", "근로계약서", "고용계약서", "employment", "입사연월일"},
		QualificationKeywords: []string{"자격증", "자격증명", "certificate", "qualification"},
		EmploymentGuard:       "재직",
		IdentityKeywords:      []string{"주민등록증", "운전면허증", "신분증", "identity"},

		NameExcludeWords:      excludeSet,
		NameForbiddenLabeled:  []string{"증명", "계약", "재직", "근로", "등록", "면허", "특별"},
		NameForbiddenNearRRN:  []string{"주민", "등록", "번호", "생년", "월일", "서울", "부산", "특별", "광역"},
		NameForbiddenFallback: []string{"증명", "계약", "재직", "근로", "등록", "면허", "특별", "광역", "주민", "은행", "지점"},
		NameWindow:            100,

		BranchStopwords:     []string{"하나은행", "국민은행", "신한은행", "증명서", "계약서"},
		DepartmentStopwords: []string{"하나은행", "국민은행", "신한은행"},

		Positions: []string{
			"사원", "주임", "대리", "과장", "차장", "부장", "팀장",
			"이사", "상무", "전무", "부사장", "사장",
		},
		LicenseTypes: []string{
			"금융투자분석사", "재무설계사", "보험계리사", "공인중개사",
			"투자자산운용사", "펀드투자권유자문인력", "파생상품투자권유자문인력",
		},

		AddressMinTokenLen: 3,
	}
}
