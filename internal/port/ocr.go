package port

import (
	"context"

	"hanainplan/internal/domain"
)

// Annotation is the recognized content of one page image: the full text block
// plus every individual token with its bounding polygon.
type Annotation struct {
	FullText string
	Tokens   []domain.Token
}

// OCRClient abstracts the external text-recognition service. Implementations
// receive encoded image bytes and return recognized text; they never see the
// masking pipeline.
type OCRClient interface {
	Annotate(ctx context.Context, imageBytes []byte) (*Annotation, error)
}
