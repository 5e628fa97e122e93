package handler_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"hanainplan/internal/domain"
	"hanainplan/internal/handler"
	"hanainplan/internal/service"
	"hanainplan/mocks"
)

func TestCounselorHandler_Register_Success(t *testing.T) {
	mockSvc := new(mocks.MockRegistrationService)
	h := handler.NewCounselorHandler(mockSvc)

	mockSvc.On("RegisterCounselor", mock.Anything, mock.MatchedBy(func(in service.RegisterCounselorInput) bool {
		return in.Name == "홍길동" && in.SocialNumber == "9012311234567"
	})).Return(int64(42), nil)

	reqBody, _ := json.Marshal(map[string]string{
		"name":          "홍길동",
		"social_number": "9012311234567",
		"employee_id":   "EMP12345",
	})

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest(http.MethodPost, "/api/ocr/register-counselor", bytes.NewReader(reqBody))
	c.Request.Header.Set("Content-Type", "application/json")

	h.Register(c)

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp handler.APIResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	data := resp.Data.(map[string]interface{})
	assert.Equal(t, float64(42), data["user_id"])
	mockSvc.AssertExpectations(t)
}

func TestCounselorHandler_Register_MissingFields(t *testing.T) {
	h := handler.NewCounselorHandler(new(mocks.MockRegistrationService))

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest(http.MethodPost, "/api/ocr/register-counselor", bytes.NewReader([]byte(`{"name":"홍길동"}`)))
	c.Request.Header.Set("Content-Type", "application/json")

	h.Register(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCounselorHandler_Register_Duplicate(t *testing.T) {
	mockSvc := new(mocks.MockRegistrationService)
	h := handler.NewCounselorHandler(mockSvc)

	mockSvc.On("RegisterCounselor", mock.Anything, mock.Anything).
		Return(int64(0), domain.ErrDuplicateCounselor)

	reqBody := []byte(`{"name":"홍길동","social_number":"9012311234567"}`)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest(http.MethodPost, "/api/ocr/register-counselor", bytes.NewReader(reqBody))
	c.Request.Header.Set("Content-Type", "application/json")

	h.Register(c)

	assert.Equal(t, http.StatusConflict, w.Code)

	var resp handler.APIResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "DUPLICATE_COUNSELOR", resp.Error.Code)
}

func TestCounselorHandler_Export(t *testing.T) {
	mockSvc := new(mocks.MockRegistrationService)
	h := handler.NewCounselorHandler(mockSvc)

	mockSvc.On("ListCounselors", mock.Anything).Return([]domain.CounselorRecord{
		{UserID: 1, UserName: "홍길동", EmployeeID: "EMP12345", WorkStatus: "ACTIVE"},
		{UserID: 2, UserName: "김하나", EmployeeID: "EMP67890", WorkStatus: "ACTIVE"},
	}, nil)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest(http.MethodGet, "/api/ocr/counselors/export", nil)

	h.Export(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Content-Disposition"), "attachment")
	assert.Contains(t, w.Header().Get("Content-Disposition"), ".xlsx")

	f, err := excelize.OpenReader(bytes.NewReader(w.Body.Bytes()))
	require.NoError(t, err)
	defer func() { _ = f.Close() }()

	rows, err := f.GetRows("Counselors")
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, "Name", rows[0][1])
	assert.Equal(t, "홍길동", rows[1][1])
	assert.Equal(t, "김하나", rows[2][1])
}
