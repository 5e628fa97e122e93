package handler_test

import (
	"bytes"
	"encoding/base64"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"hanainplan/internal/domain"
	"hanainplan/internal/handler"
	"hanainplan/internal/service"
	"hanainplan/mocks"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// multipartBody builds a multipart form with the given file fields, each typed
// image/png.
func multipartBody(t *testing.T, fields map[string][]byte) (*bytes.Buffer, string) {
	t.Helper()
	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	for name, content := range fields {
		h := make(textproto.MIMEHeader)
		h.Set("Content-Disposition", `form-data; name="`+name+`"; filename="`+name+`.png"`)
		h.Set("Content-Type", "image/png")
		part, err := writer.CreatePart(h)
		require.NoError(t, err)
		_, err = part.Write(content)
		require.NoError(t, err)
	}
	require.NoError(t, writer.Close())
	return body, writer.FormDataContentType()
}

func TestOCRHandler_Extract_Success(t *testing.T) {
	mockSvc := new(mocks.MockDocumentService)
	h := handler.NewOCRHandler(mockSvc)

	mockSvc.On("Process", mock.Anything, []byte("png bytes"), "image/png").
		Return(&service.ProcessResult{
			MaskedText:   "주민등록증 901231-1******",
			MaskedImages: [][]byte{[]byte("masked png")},
			MaskedPDF:    []byte("%PDF-1.3 masked"),
			Documents:    []domain.ExtractedInfo{{DocumentType: domain.DocTypeIdentityVerification}},
			Pages:        1,
		}, nil)

	body, contentType := multipartBody(t, map[string][]byte{"file": []byte("png bytes")})

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest(http.MethodPost, "/api/ocr/extract", body)
	c.Request.Header.Set("Content-Type", contentType)

	h.Extract(c)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp handler.APIResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Success)

	data := resp.Data.(map[string]interface{})
	assert.Equal(t, "주민등록증 901231-1******", data["masked_text"])
	assert.Equal(t, float64(1), data["pages"])

	pdfBytes, err := base64.StdEncoding.DecodeString(data["masked_pdf_base64"].(string))
	require.NoError(t, err)
	assert.Equal(t, "%PDF-1.3 masked", string(pdfBytes))
	mockSvc.AssertExpectations(t)
}

func TestOCRHandler_Extract_MissingFile(t *testing.T) {
	h := handler.NewOCRHandler(new(mocks.MockDocumentService))

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest(http.MethodPost, "/api/ocr/extract", nil)

	h.Extract(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestOCRHandler_Extract_DomainErrorMapped(t *testing.T) {
	mockSvc := new(mocks.MockDocumentService)
	h := handler.NewOCRHandler(mockSvc)

	mockSvc.On("Process", mock.Anything, mock.Anything, mock.Anything).
		Return(nil, domain.ErrUnsupportedFileType)

	body, contentType := multipartBody(t, map[string][]byte{"file": []byte("data")})

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest(http.MethodPost, "/api/ocr/extract", body)
	c.Request.Header.Set("Content-Type", contentType)

	h.Extract(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)

	var resp handler.APIResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.False(t, resp.Success)
	assert.Equal(t, "UNSUPPORTED_FILE_TYPE", resp.Error.Code)
}

func TestOCRHandler_VerifyDocuments_Success(t *testing.T) {
	mockSvc := new(mocks.MockDocumentService)
	h := handler.NewOCRHandler(mockSvc)

	name := "홍길동"
	mockSvc.On("VerifyDocuments", mock.Anything, mock.MatchedBy(func(docs []service.LabeledDocument) bool {
		if len(docs) != 3 {
			return false
		}
		labels := map[string]bool{}
		for _, d := range docs {
			labels[d.Label] = true
		}
		return labels["employee_id"] && labels["employment_contract"] && labels["identity_verification"]
	})).Return(&service.VerifyResult{
		Merged:    domain.MergedInfo{Name: &name},
		Documents: map[string]domain.ExtractedInfo{"employee_id": {DocumentType: domain.DocTypeEmployeeID}},
	}, nil)

	body, contentType := multipartBody(t, map[string][]byte{
		"employee_id_doc":     []byte("a"),
		"employment_contract": []byte("b"),
		"identity_doc":        []byte("c"),
	})

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest(http.MethodPost, "/api/ocr/verify-documents", body)
	c.Request.Header.Set("Content-Type", contentType)

	h.VerifyDocuments(c)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp handler.APIResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Success)

	data := resp.Data.(map[string]interface{})
	merged := data["merged_info"].(map[string]interface{})
	assert.Equal(t, "홍길동", merged["name"])
	mockSvc.AssertExpectations(t)
}

func TestOCRHandler_VerifyDocuments_MissingRequiredDoc(t *testing.T) {
	h := handler.NewOCRHandler(new(mocks.MockDocumentService))

	// qualification_cert is optional; employment_contract is not.
	body, contentType := multipartBody(t, map[string][]byte{
		"employee_id_doc": []byte("a"),
		"identity_doc":    []byte("c"),
	})

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest(http.MethodPost, "/api/ocr/verify-documents", body)
	c.Request.Header.Set("Content-Type", contentType)

	h.VerifyDocuments(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}
