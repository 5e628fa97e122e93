package port

import (
	"context"
	"image"
)

// PageRasterizer converts a PDF document into one image per page.
type PageRasterizer interface {
	Rasterize(ctx context.Context, pdfBytes []byte, dpi int) ([]image.Image, error)
}
