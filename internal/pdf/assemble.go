// Package pdf assembles processed page images back into a single PDF
// document.
package pdf

import (
	"bytes"
	"fmt"
	"image"
	"image/jpeg"

	"github.com/jung-kurt/gofpdf"
)

// Assemble builds a PDF with one page per image. Each page is sized to the
// image's pixel dimensions in points, so the document renders at the
// resolution the pipeline produced.
func Assemble(pages []image.Image) ([]byte, error) {
	if len(pages) == 0 {
		return nil, fmt.Errorf("assembling pdf: no pages")
	}

	doc := gofpdf.New("P", "pt", "A4", "")
	opts := gofpdf.ImageOptions{ImageType: "JPG"}

	for i, page := range pages {
		bounds := page.Bounds()
		w := float64(bounds.Dx())
		h := float64(bounds.Dy())

		var buf bytes.Buffer
		if err := jpeg.Encode(&buf, page, &jpeg.Options{Quality: 90}); err != nil {
			return nil, fmt.Errorf("encoding page %d: %w", i+1, err)
		}

		name := fmt.Sprintf("page-%d", i+1)
		doc.AddPageFormat("P", gofpdf.SizeType{Wd: w, Ht: h})
		doc.RegisterImageOptionsReader(name, opts, &buf)
		doc.ImageOptions(name, 0, 0, w, h, false, opts, 0, "")
	}

	var out bytes.Buffer
	if err := doc.Output(&out); err != nil {
		return nil, fmt.Errorf("writing pdf: %w", err)
	}
	return out.Bytes(), nil
}
