package imageprocessor

import (
	"bytes"
	"image"
	"image/color"
	"image/gif"
	"image/png"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func encodePNG(t *testing.T, width, height int) []byte {
	t.Helper()
	img := image.NewNRGBA(image.Rect(0, 0, width, height))
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func TestProcessKeepsSmallImages(t *testing.T) {
	p := NewProcessor(1600, 85)
	original := encodePNG(t, 800, 600)

	out, err := p.Process(bytes.NewReader(original))
	require.NoError(t, err)

	data, err := io.ReadAll(out)
	require.NoError(t, err)
	assert.Equal(t, original, data, "images within bounds pass through untouched")
}

func TestProcessDownscalesLargeImages(t *testing.T) {
	p := NewProcessor(100, 85)

	out, err := p.Process(bytes.NewReader(encodePNG(t, 400, 200)))
	require.NoError(t, err)

	img, err := png.Decode(out)
	require.NoError(t, err)
	assert.Equal(t, 100, img.Bounds().Dx())
	assert.Equal(t, 50, img.Bounds().Dy(), "aspect ratio is preserved")
}

func TestProcessPassesGIFThrough(t *testing.T) {
	img := image.NewPaletted(image.Rect(0, 0, 300, 300), []color.Color{color.Black, color.White})
	var original bytes.Buffer
	require.NoError(t, gif.Encode(&original, img, nil))

	p := NewProcessor(100, 85)
	out, err := p.Process(bytes.NewReader(original.Bytes()))
	require.NoError(t, err)

	data, err := io.ReadAll(out)
	require.NoError(t, err)
	assert.Equal(t, original.Bytes(), data, "GIF bytes are never re-encoded")
}

func TestProcessRejectsNonImage(t *testing.T) {
	p := NewProcessor(1600, 85)
	_, err := p.Process(strings.NewReader("definitely not an image"))
	assert.Error(t, err)
}

func TestIsValidImage(t *testing.T) {
	assert.True(t, IsValidImage(bytes.NewReader(encodePNG(t, 10, 10))))
	assert.False(t, IsValidImage(strings.NewReader("garbage")))
}

func TestPlaceholderColorByFilename(t *testing.T) {
	assert.Equal(t, placeholderColors["printing"], PlaceholderColor("printing_press_default.png"))
	assert.Equal(t, placeholderColors["seo"], PlaceholderColor("abc_SEO_banner.png"))
	assert.Equal(t, placeholderColors["default"], PlaceholderColor("packages_default.png"))
}

func TestGeneratePlaceholder(t *testing.T) {
	buf, err := GeneratePlaceholder("seo_missing.png")
	require.NoError(t, err)

	img, err := png.Decode(bytes.NewReader(buf.Bytes()))
	require.NoError(t, err)
	assert.Equal(t, placeholderWidth, img.Bounds().Dx())
	assert.Equal(t, placeholderHeight, img.Bounds().Dy())

	again, err := GeneratePlaceholder("seo_missing.png")
	require.NoError(t, err)
	assert.Equal(t, buf.Bytes(), again.Bytes(), "output is deterministic per filename")
}
