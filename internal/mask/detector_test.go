package mask_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"hanainplan/internal/mask"
	"hanainplan/internal/pattern"
)

func TestDetector_IsSensitive(t *testing.T) {
	d := mask.NewDetector(pattern.New())

	sensitive := []string{
		"901231-1234567",
		"9012311234567",
		"1234-5678-9012-3456",
		"010-1234-5678",
		"gildong@hanabank.com",
		"12345678",
	}
	for _, tok := range sensitive {
		assert.True(t, d.IsSensitive(tok), tok)
	}

	safe := []string{
		"홍길동",
		"하나은행",
		"2020",
		"대리",
		"",
	}
	for _, tok := range safe {
		assert.False(t, d.IsSensitive(tok), tok)
	}
}

// A token that is just a province or city name is not an address leak, even
// though the address grammar technically matches it in context.
func TestDetector_BareProvinceTokenNotSensitive(t *testing.T) {
	d := mask.NewDetector(pattern.New())

	assert.False(t, d.IsSensitive("서울"))
	assert.False(t, d.IsSensitive("서울특별시"))

	// A token carrying a real address tail is sensitive.
	assert.True(t, d.IsSensitive("주소서울중구의어느긴길이름어딘가동"))
}
