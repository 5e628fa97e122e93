package handler

import (
	"bytes"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"hanainplan/internal/export"
	"hanainplan/internal/service"
)

// CounselorHandler handles counselor registration and roster export.
type CounselorHandler struct {
	registrationService service.RegistrationService
}

// NewCounselorHandler creates a new CounselorHandler.
func NewCounselorHandler(registrationService service.RegistrationService) *CounselorHandler {
	return &CounselorHandler{registrationService: registrationService}
}

// Register handles POST /api/ocr/register-counselor.
func (h *CounselorHandler) Register(c *gin.Context) {
	var input service.RegisterCounselorInput
	if err := c.ShouldBindJSON(&input); err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_REQUEST", "name and social_number are required")
		return
	}

	userID, err := h.registrationService.RegisterCounselor(c.Request.Context(), input)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondCreated(c, gin.H{"user_id": userID})
}

// Export handles GET /api/ocr/counselors/export. It streams the counselor
// roster as an xlsx attachment.
func (h *CounselorHandler) Export(c *gin.Context) {
	records, err := h.registrationService.ListCounselors(c.Request.Context())
	if err != nil {
		HandleError(c, err)
		return
	}

	w, err := export.NewWriter()
	if err != nil {
		HandleError(c, err)
		return
	}
	if err := w.WriteCounselors(records); err != nil {
		HandleError(c, err)
		return
	}

	var buf bytes.Buffer
	if err := w.WriteTo(&buf); err != nil {
		HandleError(c, err)
		return
	}

	filename := fmt.Sprintf("counselors-%s.xlsx", time.Now().Format("20060102"))
	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Data(http.StatusOK, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", buf.Bytes())
}
