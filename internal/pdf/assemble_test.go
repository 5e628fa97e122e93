package pdf_test

import (
	"bytes"
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hanainplan/internal/pdf"
)

func grayPage(w, h int) image.Image {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, color.NRGBA{180, 180, 180, 255})
		}
	}
	return img
}

func TestAssemble_MultiPage(t *testing.T) {
	out, err := pdf.Assemble([]image.Image{grayPage(40, 60), grayPage(30, 30)})
	require.NoError(t, err)

	assert.True(t, bytes.HasPrefix(out, []byte("%PDF-")))
	assert.True(t, bytes.Contains(out, []byte("%%EOF")))
	assert.True(t, bytes.Contains(out, []byte("/Count 2")))
}

func TestAssemble_NoPages(t *testing.T) {
	_, err := pdf.Assemble(nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no pages")
}
