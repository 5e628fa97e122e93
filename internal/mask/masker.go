// Package mask finds and masks personally identifiable information in OCR
// text. Masking keeps just enough of each value for downstream verification
// (RRN front, card prefix/suffix, phone exchange) and destroys the rest.
package mask

import (
	"regexp"
	"strings"

	"hanainplan/internal/domain"
	"hanainplan/internal/pattern"
)

var nonDigitRe = regexp.MustCompile(`[^\d]`)
var cardSepRe = regexp.MustCompile(`[ -]`)

// rule is one step of the masking pipeline: a pattern and its replacer.
type rule struct {
	kind    domain.PIIKind
	re      *regexp.Regexp
	replace func(string) string
}

// Masker applies the type-specific masking rules to full text.
type Masker struct {
	catalog *pattern.Catalog
	// rules run strictly in order. The generic bank digit run must come after
	// the RRN, card, and phone rules so it cannot re-match digits those more
	// specific rules have already consumed and replaced.
	rules []rule
}

// New builds a Masker over the given catalog.
func New(catalog *pattern.Catalog) *Masker {
	return &Masker{
		catalog: catalog,
		rules: []rule{
			{domain.PIIResidentNumber, catalog.RRNHyphen, maskRRN},
			{domain.PIIResidentNumber, catalog.RRN13, maskRRN},
			{domain.PIICreditCard, catalog.CreditCard, maskCreditCard},
			{domain.PIIPhone, catalog.Phone, maskPhone},
			{domain.PIIEmail, catalog.Email, maskEmail},
			{domain.PIIBankAccount, catalog.Bank, maskBank},
			{domain.PIIAddress, catalog.Address, maskAddress},
			{domain.PIIAddress, catalog.AddressSimple, maskAddress},
		},
	}
}

// Mask returns a copy of text with every detected PII span masked. Masked
// digit values no longer satisfy the patterns that produced them, so
// re-masking leaves them alone; a masked email can degrade one step further
// (its kept edge characters still look like a one-letter local part).
func (m *Masker) Mask(text string) string {
	for _, r := range m.rules {
		text = r.re.ReplaceAllStringFunc(text, r.replace)
	}
	return text
}

// Matches reports every PII span in text, in pipeline order. Spans are byte
// offsets into the original text and are only meaningful until it is masked.
func (m *Masker) Matches(text string) []domain.PIIMatch {
	var out []domain.PIIMatch
	for _, r := range m.rules {
		for _, loc := range r.re.FindAllStringIndex(text, -1) {
			out = append(out, domain.PIIMatch{Kind: r.kind, Start: loc[0], End: loc[1]})
		}
	}
	return out
}

// maskRRN keeps the first 6 digits and the century/gender digit:
// "901231-1234567" -> "901231-1******", 13-digit form gains the hyphen.
func maskRRN(s string) string {
	if strings.Contains(s, "-") {
		return s[:8] + "******"
	}
	return s[:6] + "-" + s[6:7] + "******"
}

// maskCreditCard keeps the first 4 and last 4 digits and masks the middle,
// re-inserting hyphens: "1234-5678-9012-3456" -> "1234-********-3456".
func maskCreditCard(s string) string {
	digits := cardSepRe.ReplaceAllString(s, "")
	if len(digits) <= 8 {
		return strings.Repeat("*", len(digits))
	}
	return digits[:4] + "-" + strings.Repeat("*", len(digits)-8) + "-" + digits[len(digits)-4:]
}

// maskPhone keeps everything up to the last 4 digits and replaces those with
// the fixed mask: "010-1234-5678" -> "010-1234-****".
func maskPhone(s string) string {
	digits := nonDigitRe.ReplaceAllString(s, "")
	if len(digits) < 7 {
		return "****"
	}
	return s[:len(s)-4] + "****"
}

// maskEmail keeps the first and last character of the local part and the full
// domain; local parts of one or two characters are masked entirely.
func maskEmail(s string) string {
	local, domainPart, ok := strings.Cut(s, "@")
	if !ok {
		return s
	}
	if len(local) <= 2 {
		return "*@" + domainPart
	}
	return local[:1] + strings.Repeat("*", len(local)-2) + local[len(local)-1:] + "@" + domainPart
}

// maskBank keeps the first 2 and last 2 digits; runs of 4 or fewer digits are
// masked entirely.
func maskBank(s string) string {
	if len(s) <= 4 {
		return strings.Repeat("*", len(s))
	}
	return s[:2] + strings.Repeat("*", len(s)-4) + s[len(s)-2:]
}

// maskAddress keeps only the leading province/city token and masks up to 15
// characters of the remainder.
func maskAddress(s string) string {
	parts := strings.Fields(s)
	if len(parts) == 0 {
		return strings.Repeat("*", min(15, runeLen(s)))
	}
	rest := runeLen(s) - runeLen(parts[0])
	return parts[0] + " " + strings.Repeat("*", min(15, rest))
}

func runeLen(s string) int { return len([]rune(s)) }
