package domain

// FileType represents the allowed file types for upload.
type FileType string

const (
	FileTypePDF  FileType = "pdf"
	FileTypeJPG  FileType = "jpg"
	FileTypePNG  FileType = "png"
	FileTypeWebP FileType = "webp"
)

// AllowedContentTypes maps MIME content types back to FileType.
var AllowedContentTypes = map[string]FileType{
	"application/pdf":          FileTypePDF,
	"application/octet-stream": FileTypePDF,
	"image/jpeg":               FileTypeJPG,
	"image/jpg":                FileTypeJPG,
	"image/png":                FileTypePNG,
	"image/webp":               FileTypeWebP,
}

// DocumentType identifies the kind of document a page was classified as.
type DocumentType string

const (
	DocTypeEmployeeID           DocumentType = "employee_id"
	DocTypeEmploymentContract   DocumentType = "employment_contract"
	DocTypeIdentityVerification DocumentType = "identity_verification"
	DocTypeQualificationCert    DocumentType = "qualification_cert"
)

// ValidDocumentTypes is the closed set of document type variants.
var ValidDocumentTypes = map[DocumentType]bool{
	DocTypeEmployeeID:           true,
	DocTypeEmploymentContract:   true,
	DocTypeIdentityVerification: true,
	DocTypeQualificationCert:    true,
}

// Gender is derived from the RRN century/gender digit, never entered directly.
type Gender string

const (
	GenderMale   Gender = "M"
	GenderFemale Gender = "F"
)

// PIIKind identifies which sensitive-data pattern a text span matched.
type PIIKind string

const (
	PIIResidentNumber PIIKind = "resident_number"
	PIICreditCard     PIIKind = "credit_card"
	PIIPhone          PIIKind = "phone"
	PIIEmail          PIIKind = "email"
	PIIBankAccount    PIIKind = "bank_account"
	PIIAddress        PIIKind = "address"
)
