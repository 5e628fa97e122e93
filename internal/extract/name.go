package extract

import (
	"regexp"
	"strings"
)

// Labeled name forms: 성명/이름/직원명 followed by a 2-4 syllable Hangul run.
var nameLabelRes = []*regexp.Regexp{
	regexp.MustCompile(`성\s*명[:\s]+([가-힣]{2,4})`),
	regexp.MustCompile(`성명[:\s]+([가-힣]{2,4})`),
	regexp.MustCompile(`이름[:\s]+([가-힣]{2,4})`),
	regexp.MustCompile(`직원명[:\s]+([가-힣]{2,4})`),
	regexp.MustCompile(`성\s*명\s+([가-힣]{2,4})`),
}

// Fallback forms for a name sitting just before a resident number: name with a
// trailing parenthetical, name at end of line, name at end of the window.
var nameNearRRNRes = []*regexp.Regexp{
	regexp.MustCompile(`([가-힣]{2,4})\s*\([^)]+\)`),
	regexp.MustCompile(`([가-힣]{2,4})\s*\n`),
	regexp.MustCompile(`([가-힣]{2,4})$`),
}

// Name extracts a person's name from OCR text. Three tiers, in order: labeled
// patterns, the run of text just before an RRN-like match, and finally any
// 2-4 syllable Hangul run that survives the exclusion filters. Tables and
// unlabeled ID cards frequently lose their labels to OCR, hence the tiers.
func (e *Extractor) Name(text string) *string {
	data := &e.catalog.Data

	for _, re := range nameLabelRes {
		m := re.FindStringSubmatch(text)
		if m == nil {
			continue
		}
		name := strings.TrimSpace(m[1])
		if e.plausibleName(name, data.NameForbiddenLabeled) {
			return strPtr(name)
		}
	}

	if loc := e.rrnLocator.FindStringIndex(text); loc != nil {
		before := lastRunes(text[:loc[0]], data.NameWindow)
		for _, re := range nameNearRRNRes {
			matches := re.FindAllStringSubmatch(before, -1)
			// Iterate in reverse so the candidate closest to the RRN wins.
			for i := len(matches) - 1; i >= 0; i-- {
				name := strings.TrimSpace(matches[i][1])
				if e.plausibleName(name, data.NameForbiddenNearRRN) {
					return strPtr(name)
				}
			}
		}
	}

	for _, name := range e.hangulCandidate.FindAllString(text, -1) {
		if e.plausibleName(name, data.NameForbiddenFallback) {
			return strPtr(name)
		}
	}

	return nil
}

func (e *Extractor) plausibleName(name string, forbidden []string) bool {
	if e.catalog.Data.NameExcludeWords[name] {
		return false
	}
	if n := runeLen(name); n < 2 || n > 4 {
		return false
	}
	return !containsAnySubstring(name, forbidden)
}

// lastRunes returns the trailing n runes of s.
func lastRunes(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[len(runes)-n:])
}
