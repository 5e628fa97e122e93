package service

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"image/jpeg"
	"image/png"
	"log"
	"sync"

	"github.com/google/uuid"
	_ "golang.org/x/image/webp" // register the webp decoder for image.Decode

	"hanainplan/internal/classify"
	"hanainplan/internal/config"
	"hanainplan/internal/domain"
	"hanainplan/internal/extract"
	"hanainplan/internal/mask"
	"hanainplan/internal/pdf"
	"hanainplan/internal/port"
	"hanainplan/internal/redact"
)

// pageBreak joins the masked text of consecutive pages.
const pageBreak = "\n\n--- PAGE BREAK ---\n\n"

// ProcessResult is the outcome of running the pipeline over one document.
type ProcessResult struct {
	MaskedText   string
	MaskedImages [][]byte // one encoded PNG per page
	MaskedPDF    []byte   // all masked pages reassembled into one PDF
	Documents    []domain.ExtractedInfo
	Pages        int
	ArchiveKeys  []string
}

// LabeledDocument is one input to the multi-document verification flow.
type LabeledDocument struct {
	Label       string
	FileBytes   []byte
	ContentType string
}

// VerifyResult is the outcome of the multi-document verification flow.
type VerifyResult struct {
	Merged    domain.MergedInfo
	Documents map[string]domain.ExtractedInfo
}

// DocumentService runs the OCR masking and extraction pipeline.
type DocumentService interface {
	Process(ctx context.Context, fileBytes []byte, contentType string) (*ProcessResult, error)
	VerifyDocuments(ctx context.Context, docs []LabeledDocument) (*VerifyResult, error)
}

type documentService struct {
	classifier *classify.Classifier
	extractor  *extract.Extractor
	masker     *mask.Masker
	redactor   *redact.Redactor
	ocr        port.OCRClient
	rasterizer port.PageRasterizer
	storage    port.ObjectStorage // nil disables archiving
	s3cfg      config.S3Config
	ocrCfg     config.OCRConfig
}

// NewDocumentService wires the pipeline components into a DocumentService.
// storage may be nil; archiving of masked pages is then skipped.
func NewDocumentService(
	classifier *classify.Classifier,
	extractor *extract.Extractor,
	masker *mask.Masker,
	redactor *redact.Redactor,
	ocr port.OCRClient,
	rasterizer port.PageRasterizer,
	storage port.ObjectStorage,
	s3cfg config.S3Config,
	ocrCfg config.OCRConfig,
) DocumentService {
	return &documentService{
		classifier: classifier,
		extractor:  extractor,
		masker:     masker,
		redactor:   redactor,
		ocr:        ocr,
		rasterizer: rasterizer,
		storage:    storage,
		s3cfg:      s3cfg,
		ocrCfg:     ocrCfg,
	}
}

func (s *documentService) Process(ctx context.Context, fileBytes []byte, contentType string) (*ProcessResult, error) {
	pages, err := s.pages(ctx, fileBytes, contentType)
	if err != nil {
		return nil, err
	}

	result := &ProcessResult{}
	archiveID := uuid.New().String()
	maskedPages := make([]image.Image, 0, len(pages))

	for i, page := range pages {
		masked, info, err := s.processPage(ctx, page, domain.DocumentType(""))
		if err != nil {
			return nil, fmt.Errorf("page %d: %w", i+1, err)
		}

		if i > 0 {
			result.MaskedText += pageBreak
		}
		result.MaskedText += masked.text
		result.MaskedImages = append(result.MaskedImages, masked.imagePNG)
		maskedPages = append(maskedPages, masked.image)
		result.Documents = append(result.Documents, *info)

		if key := s.archive(ctx, archiveID, i+1, masked.imagePNG); key != "" {
			result.ArchiveKeys = append(result.ArchiveKeys, key)
		}
	}

	maskedPDF, err := pdf.Assemble(maskedPages)
	if err != nil {
		return nil, fmt.Errorf("assembling masked pdf: %w", err)
	}
	result.MaskedPDF = maskedPDF

	result.Pages = len(pages)
	return result, nil
}

func (s *documentService) VerifyDocuments(ctx context.Context, docs []LabeledDocument) (*VerifyResult, error) {
	type docResult struct {
		info *domain.ExtractedInfo
		err  error
	}
	results := make([]docResult, len(docs))

	// The documents are independent; process them with a bounded fan-out.
	concurrency := s.ocrCfg.VerifyConcurrency
	if concurrency <= 0 {
		concurrency = 1
	}
	sem := make(chan struct{}, concurrency)
	var wg sync.WaitGroup

	for i := range docs {
		i := i
		sem <- struct{}{}
		wg.Add(1)
		go func() {
			defer wg.Done()
			defer func() { <-sem }()
			results[i].info, results[i].err = s.extractDocument(ctx, docs[i])
		}()
	}
	wg.Wait()

	// Fold in input order so the merge is deterministic. Documents that
	// failed OCR or rasterization are skipped rather than failing the whole
	// verification, matching the tolerance of the extraction pipeline.
	out := &VerifyResult{Documents: make(map[string]domain.ExtractedInfo, len(docs))}
	var ordered []domain.ExtractedInfo
	for i := range docs {
		if results[i].err != nil {
			log.Printf("documentService.VerifyDocuments: %s: %v", docs[i].Label, results[i].err)
			continue
		}
		if results[i].info == nil {
			continue
		}
		out.Documents[docs[i].Label] = *results[i].info
		ordered = append(ordered, *results[i].info)
	}
	out.Merged = extract.Merge(ordered)
	return out, nil
}

// extractDocument runs OCR and extraction (no masking) over every page of one
// labeled document; the last page's record wins. A label naming a known
// document type pins the classification.
func (s *documentService) extractDocument(ctx context.Context, doc LabeledDocument) (*domain.ExtractedInfo, error) {
	pages, err := s.pages(ctx, doc.FileBytes, doc.ContentType)
	if err != nil {
		return nil, err
	}

	forced := domain.DocumentType(doc.Label)
	if !domain.ValidDocumentTypes[forced] {
		forced = ""
	}

	var info *domain.ExtractedInfo
	for _, page := range pages {
		ann, err := s.annotate(ctx, page)
		if err != nil {
			return nil, err
		}
		docType := forced
		if docType == "" {
			docType = s.classifier.Classify(ann.FullText)
		}
		info = s.extractor.Extract(ann.FullText, docType)
	}
	return info, nil
}

// pages converts the uploaded file into its page images.
func (s *documentService) pages(ctx context.Context, fileBytes []byte, contentType string) ([]image.Image, error) {
	if len(fileBytes) == 0 {
		return nil, domain.ErrEmptyFile
	}
	fileType, ok := domain.AllowedContentTypes[contentType]
	if !ok {
		return nil, domain.ErrUnsupportedFileType
	}

	if fileType == domain.FileTypePDF {
		pages, err := s.rasterizer.Rasterize(ctx, fileBytes, s.ocrCfg.RasterDPI)
		if err != nil {
			return nil, err
		}
		if len(pages) == 0 {
			return nil, domain.ErrNoPages
		}
		if s.ocrCfg.MaxPages > 0 && len(pages) > s.ocrCfg.MaxPages {
			pages = pages[:s.ocrCfg.MaxPages]
		}
		return pages, nil
	}

	img, _, err := image.Decode(bytes.NewReader(fileBytes))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrUnsupportedFileType, err)
	}
	return []image.Image{img}, nil
}

type maskedPage struct {
	text     string
	image    image.Image
	imagePNG []byte
}

// processPage runs the full per-page pipeline: OCR, classification,
// extraction, text masking, and region redaction.
func (s *documentService) processPage(ctx context.Context, page image.Image, forced domain.DocumentType) (*maskedPage, *domain.ExtractedInfo, error) {
	ann, err := s.annotate(ctx, page)
	if err != nil {
		return nil, nil, err
	}

	docType := forced
	if docType == "" {
		docType = s.classifier.Classify(ann.FullText)
	}
	info := s.extractor.Extract(ann.FullText, docType)

	maskedText := s.masker.Mask(ann.FullText)
	maskedImg := s.redactor.Redact(page, ann.Tokens)

	var buf bytes.Buffer
	if err := png.Encode(&buf, maskedImg); err != nil {
		return nil, nil, fmt.Errorf("encoding masked page: %w", err)
	}

	return &maskedPage{text: maskedText, image: maskedImg, imagePNG: buf.Bytes()}, info, nil
}

// annotate encodes the page image and sends it to the OCR collaborator.
func (s *documentService) annotate(ctx context.Context, page image.Image) (*port.Annotation, error) {
	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, page, &jpeg.Options{Quality: 90}); err != nil {
		return nil, fmt.Errorf("encoding page for OCR: %w", err)
	}
	ann, err := s.ocr.Annotate(ctx, buf.Bytes())
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrOCRFailed, err)
	}
	return ann, nil
}

// archive uploads one masked page PNG when storage is configured. Failures
// are logged, not propagated; archiving is best-effort.
func (s *documentService) archive(ctx context.Context, archiveID string, pageNum int, imagePNG []byte) string {
	if s.storage == nil || s.s3cfg.Bucket == "" {
		return ""
	}
	key := fmt.Sprintf("masked/%s/page-%d.png", archiveID, pageNum)
	_, err := s.storage.Upload(ctx, port.UploadInput{
		Bucket:      s.s3cfg.Bucket,
		Key:         key,
		Body:        bytes.NewReader(imagePNG),
		ContentType: "image/png",
		Size:        int64(len(imagePNG)),
	})
	if err != nil {
		log.Printf("documentService.archive: upload %s: %v", key, err)
		return ""
	}
	return key
}
