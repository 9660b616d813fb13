package imageprocessor

import (
	"bytes"
	"fmt"
	"image/color"
	"strings"

	"github.com/fogleman/gg"
)

const (
	placeholderWidth  = 400
	placeholderHeight = 250
)

// Category accent colors for synthesized placeholders. Filenames carry the
// category keyword, so the color can be derived from the name alone.
var placeholderColors = map[string]color.NRGBA{
	"printing": {R: 200, G: 50, B: 50, A: 255},
	"seo":      {R: 50, G: 150, B: 50, A: 255},
	"default":  {R: 50, G: 50, B: 200, A: 255},
}

// PlaceholderColor picks the accent color for a filename.
func PlaceholderColor(filename string) color.NRGBA {
	lower := strings.ToLower(filename)
	switch {
	case strings.Contains(lower, "print"):
		return placeholderColors["printing"]
	case strings.Contains(lower, "seo"):
		return placeholderColors["seo"]
	default:
		return placeholderColors["default"]
	}
}

// GeneratePlaceholder renders a stand-in card for a missing portfolio image:
// a colored background with a white border and a two-ring emblem. The output
// is deterministic for a given filename.
func GeneratePlaceholder(filename string) (*bytes.Buffer, error) {
	c := PlaceholderColor(filename)

	dc := gg.NewContext(placeholderWidth, placeholderHeight)

	dc.SetColor(c)
	dc.Clear()

	// White border inset from the edges
	dc.SetColor(color.White)
	dc.SetLineWidth(5)
	dc.DrawRectangle(10, 10, placeholderWidth-20, placeholderHeight-20)
	dc.Stroke()

	// Outer ring
	cx, cy := float64(placeholderWidth)/2, float64(placeholderHeight)/2
	dc.SetLineWidth(3)
	dc.DrawCircle(cx, cy, 50)
	dc.Stroke()

	// Inner disc in a brighter shade of the background
	brighter := color.NRGBA{
		R: clampByte(int(c.R) + 50),
		G: clampByte(int(c.G) + 50),
		B: clampByte(int(c.B) + 50),
		A: 255,
	}
	dc.SetColor(brighter)
	dc.DrawCircle(cx, cy, 30)
	dc.Fill()
	dc.SetColor(color.White)
	dc.SetLineWidth(1)
	dc.DrawCircle(cx, cy, 30)
	dc.Stroke()

	var buf bytes.Buffer
	if err := dc.EncodePNG(&buf); err != nil {
		return nil, fmt.Errorf("failed to encode placeholder: %w", err)
	}

	return &buf, nil
}

func clampByte(v int) uint8 {
	if v > 255 {
		return 255
	}
	return uint8(v)
}
