package handler

import (
	"encoding/base64"
	"io"
	"mime/multipart"
	"net/http"

	"github.com/gin-gonic/gin"

	"hanainplan/internal/service"
)

// verifyFields maps the multipart field names of the verification endpoint to
// the document type each one declares. qualification_cert is optional.
var verifyFields = []struct {
	field    string
	label    string
	required bool
}{
	{"employee_id_doc", "employee_id", true},
	{"employment_contract", "employment_contract", true},
	{"identity_doc", "identity_verification", true},
	{"qualification_cert", "qualification_cert", false},
}

// OCRHandler handles document extraction and verification endpoints.
type OCRHandler struct {
	documentService service.DocumentService
}

// NewOCRHandler creates a new OCRHandler.
func NewOCRHandler(documentService service.DocumentService) *OCRHandler {
	return &OCRHandler{documentService: documentService}
}

// Extract handles POST /api/ocr/extract. It accepts one uploaded document,
// runs the masking pipeline, and returns the masked text, masked page images,
// the reassembled masked PDF, and the fields extracted from each page.
func (h *OCRHandler) Extract(c *gin.Context) {
	data, contentType, ok := readUpload(c, "file")
	if !ok {
		return
	}

	result, err := h.documentService.Process(c.Request.Context(), data, contentType)
	if err != nil {
		HandleError(c, err)
		return
	}

	images := make([]string, len(result.MaskedImages))
	for i, img := range result.MaskedImages {
		images[i] = base64.StdEncoding.EncodeToString(img)
	}

	RespondOK(c, gin.H{
		"masked_text":       result.MaskedText,
		"masked_images":     images,
		"masked_pdf_base64": base64.StdEncoding.EncodeToString(result.MaskedPDF),
		"documents":         result.Documents,
		"pages":             result.Pages,
	})
}

// VerifyDocuments handles POST /api/ocr/verify-documents. It accepts the
// labeled enrollment documents as separate multipart fields, extracts each
// one, and returns the per-document fields plus the merged record.
func (h *OCRHandler) VerifyDocuments(c *gin.Context) {
	var docs []service.LabeledDocument
	for _, f := range verifyFields {
		file, header, err := c.Request.FormFile(f.field)
		if err != nil {
			if f.required {
				RespondError(c, http.StatusBadRequest, "MISSING_FILE", f.field+" field is required")
				return
			}
			continue
		}
		data, contentType, ok := drainUpload(c, file, header)
		if !ok {
			return
		}
		docs = append(docs, service.LabeledDocument{
			Label:       f.label,
			FileBytes:   data,
			ContentType: contentType,
		})
	}

	result, err := h.documentService.VerifyDocuments(c.Request.Context(), docs)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, gin.H{
		"documents":   result.Documents,
		"merged_info": result.Merged,
	})
}

// readUpload pulls one multipart file field into memory. On failure the error
// response has already been written and ok is false.
func readUpload(c *gin.Context, field string) (data []byte, contentType string, ok bool) {
	file, header, err := c.Request.FormFile(field)
	if err != nil {
		RespondError(c, http.StatusBadRequest, "MISSING_FILE", field+" field is required")
		return nil, "", false
	}
	return drainUpload(c, file, header)
}

func drainUpload(c *gin.Context, file multipart.File, header *multipart.FileHeader) (data []byte, contentType string, ok bool) {
	defer func() { _ = file.Close() }()
	data, err := io.ReadAll(file)
	if err != nil {
		RespondError(c, http.StatusBadRequest, "UNREADABLE_FILE", "could not read uploaded file")
		return nil, "", false
	}
	return data, header.Header.Get("Content-Type"), true
}
