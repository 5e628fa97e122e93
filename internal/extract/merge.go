package extract

import "hanainplan/internal/domain"

// Merge folds the records of several documents describing the same person
// into one consolidated record. Fields fill first-non-nil-wins in the given
// order; later records never override an already-set field. The result holds
// copies, never pointers into the source records.
func Merge(records []domain.ExtractedInfo) domain.MergedInfo {
	var merged domain.MergedInfo
	for i := range records {
		rec := &records[i]
		takeString(&merged.Name, rec.Name)
		takeString(&merged.SocialNumberFront, rec.SocialNumberFront)
		takeGender(&merged.Gender, rec.Gender)
		takeString(&merged.EmployeeID, rec.EmployeeID)
		takeString(&merged.BranchCode, rec.BranchCode)
		takeString(&merged.BranchName, rec.BranchName)
		takeString(&merged.Department, rec.Department)
		takeString(&merged.Position, rec.Position)
		takeString(&merged.LicenseType, rec.LicenseType)
		takeString(&merged.LicenseNumber, rec.LicenseNumber)
		takeString(&merged.LicenseIssueDate, rec.LicenseIssueDate)
		takeString(&merged.HireDate, rec.HireDate)
		takeString(&merged.PhoneNumber, rec.PhoneNumber)
		takeString(&merged.Address, rec.Address)
		takeString(&merged.IssueDate, rec.IssueDate)
	}
	return merged
}

func takeString(dst **string, src *string) {
	if *dst == nil && src != nil {
		v := *src
		*dst = &v
	}
}

func takeGender(dst **domain.Gender, src *domain.Gender) {
	if *dst == nil && src != nil {
		v := *src
		*dst = &v
	}
}
