package mask_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"hanainplan/internal/domain"
	"hanainplan/internal/mask"
	"hanainplan/internal/pattern"
)

func newMasker() *mask.Masker {
	return mask.New(pattern.New())
}

func TestMasker_ResidentNumber(t *testing.T) {
	m := newMasker()

	t.Run("hyphenated keeps front and gender digit", func(t *testing.T) {
		got := m.Mask("주민등록번호: 901231-1234567")
		assert.Equal(t, "주민등록번호: 901231-1******", got)
	})

	t.Run("bare 13 digits gains the hyphen", func(t *testing.T) {
		got := m.Mask("9012311234567")
		assert.Equal(t, "901231-1******", got)
	})
}

func TestMasker_CreditCard(t *testing.T) {
	m := newMasker()

	got := m.Mask("카드번호 1234-5678-9012-3456")
	assert.Equal(t, "카드번호 1234-********-3456", got)
}

func TestMasker_Phone(t *testing.T) {
	m := newMasker()

	got := m.Mask("연락처: 010-1234-5678")
	assert.Equal(t, "연락처: 010-1234-****", got)
}

func TestMasker_Email(t *testing.T) {
	m := newMasker()

	t.Run("long local part", func(t *testing.T) {
		got := m.Mask("gildong@hanabank.com")
		assert.Equal(t, "g*****g@hanabank.com", got)
	})

	t.Run("short local part fully masked", func(t *testing.T) {
		got := m.Mask("ab@hanabank.com")
		assert.Equal(t, "*@hanabank.com", got)
	})
}

func TestMasker_BankAccount(t *testing.T) {
	m := newMasker()

	got := m.Mask("계좌 1234567890")
	assert.Equal(t, "계좌 12******90", got)
}

// A bare digit run long enough for the card grammar belongs to the card rule;
// the generic bank rule only sees what the earlier rules left behind.
func TestMasker_CardRuleClaimsLongDigitRuns(t *testing.T) {
	m := newMasker()

	got := m.Mask("12345678901234")
	assert.Equal(t, "1234-******-1234", got)
}

func TestMasker_Address(t *testing.T) {
	m := newMasker()

	got := m.Mask("서울특별시 중구 을지로 66")
	assert.Contains(t, got, "서울특별시 ")
	assert.NotContains(t, got, "중구")
	assert.NotContains(t, got, "을지로")
}

// Masked digit output must survive a second pass unchanged: no rule may
// re-match the replacement text another rule produced.
func TestMasker_IdempotentForDigitRules(t *testing.T) {
	m := newMasker()

	text := "성명: 홍길동 901231-1234567 연락처: 010-1234-5678 계좌 1234567890 카드 1234-5678-9012-3456"
	once := m.Mask(text)
	twice := m.Mask(once)
	assert.Equal(t, once, twice)
}

func TestMasker_Matches(t *testing.T) {
	m := newMasker()

	matches := m.Matches("901231-1234567 연락처 010-1234-5678")

	kinds := make(map[domain.PIIKind]bool)
	for _, match := range matches {
		kinds[match.Kind] = true
	}
	assert.True(t, kinds[domain.PIIResidentNumber])
	assert.True(t, kinds[domain.PIIPhone])
	assert.False(t, kinds[domain.PIIEmail])
}
