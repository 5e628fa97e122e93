package redact_test

import (
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hanainplan/internal/domain"
	"hanainplan/internal/mask"
	"hanainplan/internal/pattern"
	"hanainplan/internal/redact"
)

func newRedactor() *redact.Redactor {
	return redact.New(mask.NewDetector(pattern.New()), 12)
}

// checkerboard returns an image with a high-contrast pattern so any blur
// measurably changes pixel values.
func checkerboard(w, h int) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			if (x+y)%2 == 0 {
				img.Set(x, y, color.NRGBA{255, 255, 255, 255})
			} else {
				img.Set(x, y, color.NRGBA{0, 0, 0, 255})
			}
		}
	}
	return img
}

func token(text string, x0, y0, x1, y1 int) domain.Token {
	return domain.Token{
		Text: text,
		Vertices: []domain.Vertex{
			{X: x0, Y: y0}, {X: x1, Y: y0}, {X: x1, Y: y1}, {X: x0, Y: y1},
		},
	}
}

func TestRedactor_BlursSensitiveRegion(t *testing.T) {
	r := newRedactor()
	src := checkerboard(100, 100)

	out := r.Redact(src, []domain.Token{token("901231-1234567", 10, 10, 50, 30)})

	nrgba, ok := out.(*image.NRGBA)
	require.True(t, ok)

	// Center of the blurred box no longer holds a pure checkerboard value.
	c := nrgba.NRGBAAt(30, 20)
	assert.True(t, c.R > 0 && c.R < 255, "blurred pixel should be mid-gray, got %v", c)

	// Pixels well outside the box are untouched.
	assert.Equal(t, src.NRGBAAt(80, 80), nrgba.NRGBAAt(80, 80))
	assert.Equal(t, src.NRGBAAt(5, 90), nrgba.NRGBAAt(5, 90))
}

func TestRedactor_IgnoresSafeTokens(t *testing.T) {
	r := newRedactor()
	src := checkerboard(60, 60)

	out := r.Redact(src, []domain.Token{token("홍길동", 0, 0, 60, 60)})

	nrgba, ok := out.(*image.NRGBA)
	require.True(t, ok)
	for y := 0; y < 60; y += 7 {
		for x := 0; x < 60; x += 7 {
			assert.Equal(t, src.NRGBAAt(x, y), nrgba.NRGBAAt(x, y))
		}
	}
}

func TestRedactor_SourceUntouched(t *testing.T) {
	r := newRedactor()
	src := checkerboard(60, 60)
	before := src.NRGBAAt(20, 20)

	_ = r.Redact(src, []domain.Token{token("010-1234-5678", 0, 0, 60, 60)})

	assert.Equal(t, before, src.NRGBAAt(20, 20))
}

// Boxes hanging off the image edge are clamped; fully out-of-bounds boxes are
// skipped without panicking.
func TestRedactor_ClampsOutOfBoundsBoxes(t *testing.T) {
	r := newRedactor()
	src := checkerboard(40, 40)

	assert.NotPanics(t, func() {
		r.Redact(src, []domain.Token{
			token("901231-1234567", 30, 30, 100, 100),
			token("010-1234-5678", -50, -50, -10, -10),
		})
	})
}
