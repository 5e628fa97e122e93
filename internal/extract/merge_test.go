package extract_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hanainplan/internal/domain"
	"hanainplan/internal/extract"
)

func sp(s string) *string { return &s }

func TestMerge_FirstNonNilWins(t *testing.T) {
	male := domain.GenderMale
	records := []domain.ExtractedInfo{
		{
			DocumentType:      domain.DocTypeEmployeeID,
			Name:              sp("홍길동"),
			SocialNumberFront: sp("901231-1"),
			Gender:            &male,
			BranchName:        sp("강남지점"),
		},
		{
			DocumentType: domain.DocTypeEmploymentContract,
			Name:         sp("다른이름"),
			HireDate:     sp("2020-01-01"),
			Department:   sp("자산관리부"),
		},
		{
			DocumentType:  domain.DocTypeQualificationCert,
			LicenseType:   sp("금융투자분석사"),
			LicenseNumber: sp("A1234-5678"),
		},
	}

	merged := extract.Merge(records)

	require.NotNil(t, merged.Name)
	assert.Equal(t, "홍길동", *merged.Name)

	require.NotNil(t, merged.SocialNumberFront)
	assert.Equal(t, "901231-1", *merged.SocialNumberFront)
	require.NotNil(t, merged.Gender)
	assert.Equal(t, domain.GenderMale, *merged.Gender)

	require.NotNil(t, merged.BranchName)
	assert.Equal(t, "강남지점", *merged.BranchName)
	require.NotNil(t, merged.HireDate)
	assert.Equal(t, "2020-01-01", *merged.HireDate)
	require.NotNil(t, merged.Department)
	assert.Equal(t, "자산관리부", *merged.Department)
	require.NotNil(t, merged.LicenseType)
	assert.Equal(t, "금융투자분석사", *merged.LicenseType)

	assert.Nil(t, merged.EmployeeID)
	assert.Nil(t, merged.Position)
}

// A later record's phone must survive the merge even when the earlier record
// supplied other fields.
func TestMerge_LaterRecordFillsPhone(t *testing.T) {
	records := []domain.ExtractedInfo{
		{Name: sp("홍길동")},
		{PhoneNumber: sp("010-1234-5678"), Address: sp("서울특별시 중구 을지로 55")},
	}

	merged := extract.Merge(records)

	require.NotNil(t, merged.Name)
	assert.Equal(t, "홍길동", *merged.Name)
	require.NotNil(t, merged.PhoneNumber)
	assert.Equal(t, "010-1234-5678", *merged.PhoneNumber)
	require.NotNil(t, merged.Address)
	assert.Equal(t, "서울특별시 중구 을지로 55", *merged.Address)
}

func TestMerge_Empty(t *testing.T) {
	merged := extract.Merge(nil)
	assert.Nil(t, merged.Name)
	assert.Nil(t, merged.Gender)
}

// Merged values are copies; mutating a source record afterwards must not
// change the merged result.
func TestMerge_CopiesValues(t *testing.T) {
	name := "홍길동"
	records := []domain.ExtractedInfo{{Name: &name}}

	merged := extract.Merge(records)
	name = "변경됨"

	require.NotNil(t, merged.Name)
	assert.Equal(t, "홍길동", *merged.Name)
}
