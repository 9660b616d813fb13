package imageprocessor

import (
	"bytes"
	"fmt"
	"image"
	_ "image/gif" // register gif decoding for pass-through validation
	"image/jpeg"
	"image/png"
	"io"

	"golang.org/x/image/draw"
)

// Processor downscales uploaded portfolio images before storage.
type Processor struct {
	maxDimension int // longest allowed side in px
	quality      int // JPEG quality (1-100)
}

// NewProcessor creates a new image processor.
func NewProcessor(maxDimension, quality int) *Processor {
	if maxDimension <= 0 {
		maxDimension = 1600
	}
	if quality <= 0 || quality > 100 {
		quality = 85
	}
	return &Processor{
		maxDimension: maxDimension,
		quality:      quality,
	}
}

// Process decodes an image and, when its longest side exceeds the configured
// maximum, scales it down preserving aspect ratio. The result is re-encoded
// in the source format. GIFs pass through untouched to preserve animation.
func (p *Processor) Process(reader io.Reader) (io.Reader, error) {
	data, err := io.ReadAll(reader)
	if err != nil {
		return nil, fmt.Errorf("failed to read image: %w", err)
	}

	img, format, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to decode image: %w", err)
	}

	if format == "gif" {
		return bytes.NewReader(data), nil
	}

	bounds := img.Bounds()
	if bounds.Dx() <= p.maxDimension && bounds.Dy() <= p.maxDimension {
		return bytes.NewReader(data), nil
	}

	resized := p.resize(img)

	var buf bytes.Buffer
	switch format {
	case "jpeg":
		if err := jpeg.Encode(&buf, resized, &jpeg.Options{Quality: p.quality}); err != nil {
			return nil, fmt.Errorf("failed to encode JPEG: %w", err)
		}
	case "png":
		if err := png.Encode(&buf, resized); err != nil {
			return nil, fmt.Errorf("failed to encode PNG: %w", err)
		}
	default:
		return nil, fmt.Errorf("unsupported image format: %s", format)
	}

	return &buf, nil
}

// resize scales an image down to fit maxDimension, keeping aspect ratio.
func (p *Processor) resize(img image.Image) image.Image {
	bounds := img.Bounds()
	width := bounds.Dx()
	height := bounds.Dy()

	ratio := float64(width) / float64(height)
	newWidth := p.maxDimension
	newHeight := p.maxDimension

	if ratio > 1 {
		newHeight = int(float64(p.maxDimension) / ratio)
	} else {
		newWidth = int(float64(p.maxDimension) * ratio)
	}

	dst := image.NewRGBA(image.Rect(0, 0, newWidth, newHeight))
	draw.CatmullRom.Scale(dst, dst.Bounds(), img, bounds, draw.Over, nil)

	return dst
}

// IsValidImage checks if the reader contains a decodable image.
func IsValidImage(reader io.Reader) bool {
	_, _, err := image.Decode(reader)
	return err == nil
}
