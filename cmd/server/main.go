package main

import (
	"fmt"
	"log"

	"hanainplan/internal/classify"
	"hanainplan/internal/config"
	"hanainplan/internal/extract"
	"hanainplan/internal/handler"
	"hanainplan/internal/mask"
	"hanainplan/internal/pattern"
	"hanainplan/internal/port"
	"hanainplan/internal/rasterize/poppler"
	"hanainplan/internal/redact"
	"hanainplan/internal/repository/postgres"
	"hanainplan/internal/router"
	"hanainplan/internal/service"
	s3storage "hanainplan/internal/storage/s3"
	"hanainplan/internal/vision/google"
)

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	db, err := postgres.NewDB(&cfg.DB)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer db.Close()

	// Pipeline components
	catalog := pattern.New(
		pattern.WithNameWindow(cfg.OCR.NameWindow),
		pattern.WithAddressMinTokenLen(cfg.OCR.AddressMinTokenLen),
	)
	classifier := classify.New(catalog)
	extractor := extract.New(catalog)
	masker := mask.New(catalog)
	detector := mask.NewDetector(catalog)
	redactor := redact.New(detector, cfg.OCR.BlurRadius)

	// Collaborators
	visionClient := google.NewClient(&cfg.Vision)
	rasterizer := poppler.New()

	var storage port.ObjectStorage
	if cfg.S3.Bucket != "" {
		storage, err = s3storage.NewS3Client(&cfg.S3)
		if err != nil {
			return fmt.Errorf("failed to initialize S3 client: %w", err)
		}
	}

	// Repositories and services
	counselorRepo := postgres.NewCounselorRepo(db)
	documentSvc := service.NewDocumentService(
		classifier, extractor, masker, redactor,
		visionClient, rasterizer, storage,
		cfg.S3, cfg.OCR,
	)
	registrationSvc := service.NewRegistrationService(counselorRepo)

	// Handlers
	ocrH := handler.NewOCRHandler(documentSvc)
	counselorH := handler.NewCounselorHandler(registrationSvc)
	healthH := handler.NewHealthHandler(db)

	r := router.Setup(cfg, ocrH, counselorH, healthH)

	log.Printf("Server starting on %s", cfg.Server.Port)
	if err := r.Run(cfg.Server.Port); err != nil {
		return fmt.Errorf("server failed: %w", err)
	}

	return nil
}
