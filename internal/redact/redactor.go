// Package redact blurs the image regions of sensitive OCR tokens. Unlike
// text masking, redaction is irreversible: the blurred pixels cannot be
// recovered from the output.
package redact

import (
	"image"

	"github.com/disintegration/imaging"

	"hanainplan/internal/domain"
	"hanainplan/internal/mask"
)

// Redactor blurs the bounding boxes of sensitive tokens in page images.
type Redactor struct {
	detector *mask.Detector
	radius   float64
}

// New creates a Redactor with the given blur radius in pixels.
func New(detector *mask.Detector, radius float64) *Redactor {
	return &Redactor{detector: detector, radius: radius}
}

// Redact returns a copy of img with every sensitive token's bounding
// rectangle replaced by a Gaussian-blurred version of itself. The source
// image is never modified. Boxes are clamped to the image bounds; rectangles
// that become degenerate after clamping are skipped.
func (r *Redactor) Redact(img image.Image, tokens []domain.Token) image.Image {
	out := imaging.Clone(img)
	bounds := out.Bounds()

	for _, tok := range tokens {
		if !r.detector.IsSensitive(tok.Text) {
			continue
		}
		rect := tok.Rect().Intersect(bounds)
		if rect.Dx() <= 0 || rect.Dy() <= 0 {
			continue
		}
		region := imaging.Crop(out, rect)
		blurred := imaging.Blur(region, r.radius)
		out = imaging.Paste(out, blurred, rect.Min)
	}

	return out
}
