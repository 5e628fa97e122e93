package pattern_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"hanainplan/internal/pattern"
)

func TestCatalog_RRNPatterns(t *testing.T) {
	c := pattern.New()

	assert.True(t, c.RRNHyphen.MatchString("901231-1234567"))
	assert.False(t, c.RRNHyphen.MatchString("901231-123456"))
	assert.True(t, c.RRN13.MatchString("9012311234567"))

	m := c.RRNFront.FindStringSubmatch("주민등록번호 901231-1234567")
	assert.NotNil(t, m)
	assert.Equal(t, "901231", m[1])
	assert.Equal(t, "1", m[2])

	// Space-separated form, as OCR often renders the hyphen.
	m = c.RRNFront.FindStringSubmatch("901231 2234567")
	assert.NotNil(t, m)
	assert.Equal(t, "2", m[2])
}

func TestCatalog_PhoneAndCardPatterns(t *testing.T) {
	c := pattern.New()

	assert.True(t, c.Phone.MatchString("010-1234-5678"))
	assert.True(t, c.Phone.MatchString("01012345678"))
	assert.True(t, c.Phone.MatchString("016-123-4567"))
	assert.False(t, c.Phone.MatchString("02-1234-5678"))

	assert.True(t, c.CreditCard.MatchString("1234-5678-9012-3456"))
	assert.True(t, c.CreditCard.MatchString("1234567890123"))
}

func TestCatalog_EmailAndBankPatterns(t *testing.T) {
	c := pattern.New()

	assert.True(t, c.Email.MatchString("hong.gildong@hanabank.com"))
	assert.False(t, c.Email.MatchString("not an email"))

	assert.True(t, c.Bank.MatchString("12345678"))
	assert.True(t, c.Bank.MatchString("1234567890123456"))
	assert.False(t, c.Bank.MatchString("1234567"))
}

func TestCatalog_DateGrammars(t *testing.T) {
	c := pattern.New()

	for _, s := range []string{
		"2020년01월01일",
		"2020-01-01",
		"2020.1.1",
		"2020/12/31",
	} {
		assert.True(t, c.DateYYYYMMDD.MatchString(s), s)
	}
	assert.False(t, c.DateYYYYMMDD.MatchString("2020년13월01일"))
}

func TestCatalog_AddressGrammars(t *testing.T) {
	c := pattern.New()

	assert.True(t, c.Address.MatchString("서울특별시 중구 을지로 66"))
	assert.True(t, c.AddressSimple.MatchString("서울 중구 을지로1가 101동"))
	assert.True(t, c.ProvincePrefix.MatchString("서울특별시"))
	assert.False(t, c.ProvincePrefix.MatchString("중구 을지로"))
}

func TestCatalog_Options(t *testing.T) {
	c := pattern.New(
		pattern.WithNameWindow(50),
		pattern.WithAddressMinTokenLen(5),
	)

	assert.Equal(t, 50, c.Data.NameWindow)
	assert.Equal(t, 5, c.Data.AddressMinTokenLen)
}

func TestCatalog_Defaults(t *testing.T) {
	c := pattern.New()

	assert.Equal(t, 100, c.Data.NameWindow)
	assert.Equal(t, 3, c.Data.AddressMinTokenLen)
	assert.Equal(t, "재직", c.Data.EmploymentGuard)
	assert.True(t, c.Data.NameExcludeWords["하나은행"])
	assert.Contains(t, c.Data.Positions, "대리")
}
