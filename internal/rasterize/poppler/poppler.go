// Package poppler rasterizes PDF pages by shelling out to pdftoppm.
package poppler

import (
	"context"
	"fmt"
	"image"
	_ "image/png"
	"os"
	"os/exec"
	"path/filepath"
	"sort"

	"hanainplan/internal/domain"
	"hanainplan/internal/port"
)

// Rasterizer implements port.PageRasterizer with the poppler-utils pdftoppm
// binary, which must be on PATH.
type Rasterizer struct {
	binary string
}

// New creates a poppler-backed rasterizer.
func New() *Rasterizer {
	return &Rasterizer{binary: "pdftoppm"}
}

// Rasterize renders every page of the PDF to a PNG image at the given DPI.
func (r *Rasterizer) Rasterize(ctx context.Context, pdfBytes []byte, dpi int) ([]image.Image, error) {
	tmpDir, err := os.MkdirTemp("", "hanainplan-raster-")
	if err != nil {
		return nil, fmt.Errorf("creating temp dir: %w", err)
	}
	defer func() { _ = os.RemoveAll(tmpDir) }()

	pdfPath := filepath.Join(tmpDir, "input.pdf")
	if err := os.WriteFile(pdfPath, pdfBytes, 0o600); err != nil {
		return nil, fmt.Errorf("writing pdf: %w", err)
	}

	outPrefix := filepath.Join(tmpDir, "page")
	cmd := exec.CommandContext(ctx, r.binary,
		"-png", "-r", fmt.Sprintf("%d", dpi), pdfPath, outPrefix)
	if out, err := cmd.CombinedOutput(); err != nil {
		return nil, fmt.Errorf("%w: pdftoppm: %v: %s", domain.ErrRasterizeFailed, err, out)
	}

	matches, err := filepath.Glob(outPrefix + "-*.png")
	if err != nil {
		return nil, fmt.Errorf("globbing pages: %w", err)
	}
	if len(matches) == 0 {
		return nil, domain.ErrNoPages
	}
	// pdftoppm zero-pads page numbers, so lexical order is page order.
	sort.Strings(matches)

	pages := make([]image.Image, 0, len(matches))
	for _, path := range matches {
		f, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("opening page image: %w", err)
		}
		img, _, err := image.Decode(f)
		_ = f.Close()
		if err != nil {
			return nil, fmt.Errorf("decoding page image %s: %w", filepath.Base(path), err)
		}
		pages = append(pages, img)
	}

	return pages, nil
}

var _ port.PageRasterizer = (*Rasterizer)(nil)
