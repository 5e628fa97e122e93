package router

import (
	"github.com/gin-gonic/gin"

	"hanainplan/internal/config"
	"hanainplan/internal/handler"
	"hanainplan/internal/middleware"
)

// Setup configures the Gin engine with all routes and middleware.
func Setup(
	cfg *config.Config,
	ocrH *handler.OCRHandler,
	counselorH *handler.CounselorHandler,
	healthH *handler.HealthHandler,
) *gin.Engine {
	r := gin.New()

	// Global middleware
	r.Use(middleware.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger())
	r.Use(middleware.CORS(cfg.CORS.AllowedOrigins))

	// Health checks
	r.GET("/healthz", healthH.Liveness)
	r.GET("/readyz", healthH.Readiness)

	ocr := r.Group("/api/ocr")
	ocr.POST("/extract", ocrH.Extract)
	ocr.POST("/verify-documents", ocrH.VerifyDocuments)
	ocr.POST("/register-counselor", counselorH.Register)
	ocr.GET("/counselors/export", counselorH.Export)

	return r
}
