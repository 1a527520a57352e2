package main

import (
	stdimage "image"
	"image/png"
	"io"

	"github.com/penglyph/brush"
)

type rasterBounds struct {
	minX, minY, w, h int
}

// computeRasterBounds finds the pixel-space bounding box of a span list so
// the output buffer is exactly large enough to hold it (with a one-pixel
// margin on every side).
func computeRasterBounds(spans []brush.Span) rasterBounds {
	if len(spans) == 0 {
		return rasterBounds{w: 1, h: 1}
	}
	minX, maxX := spans[0].XStart, spans[0].XEnd
	minY, maxY := spans[0].Y, spans[0].Y
	for _, s := range spans {
		if s.XStart < minX {
			minX = s.XStart
		}
		if s.XEnd > maxX {
			maxX = s.XEnd
		}
		if s.Y < minY {
			minY = s.Y
		}
		if s.Y > maxY {
			maxY = s.Y
		}
	}
	return rasterBounds{
		minX: minX - 1,
		minY: minY - 1,
		w:    maxX - minX + 3,
		h:    maxY - minY + 3,
	}
}

func shift(spans []brush.Span, dx, dy int) []brush.Span {
	out := make([]brush.Span, len(spans))
	for i, s := range spans {
		out[i] = brush.Span{XStart: s.XStart - dx, XEnd: s.XEnd - dx, Y: s.Y - dy, Color: s.Color}
	}
	return out
}

func writePNGImage(w io.Writer, img *stdimage.RGBA) error {
	return png.Encode(w, img)
}
