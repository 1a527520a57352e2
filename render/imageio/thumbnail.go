package imageio

import (
	stdimage "image"
	"image/color"

	"golang.org/x/image/draw"

	"github.com/penglyph/brush"
)

func rgba(c brush.Color) color.RGBA {
	return color.RGBA{R: c.R, G: c.G, B: c.B, A: c.A}
}

// Thumbnail scales b down so its longer side is at most maxDim pixels,
// using golang.org/x/image/draw's high-quality scaler. This is a
// genuinely optional preview helper for cmd/brushdemo, not part of the
// BMP/PPM/PNG writer contracts themselves.
func Thumbnail(b *Buffer, maxDim int) *stdimage.RGBA {
	src := stdimage.NewRGBA(stdimage.Rect(0, 0, b.Width, b.Height))
	for y := 0; y < b.Height; y++ {
		for x := 0; x < b.Width; x++ {
			c := b.Pix[y*b.Width+x]
			src.SetRGBA(x, y, rgba(c))
		}
	}
	w, h := b.Width, b.Height
	if w <= maxDim && h <= maxDim {
		return src
	}
	scale := float64(maxDim) / float64(w)
	if hs := float64(maxDim) / float64(h); hs < scale {
		scale = hs
	}
	dw, dh := int(float64(w)*scale), int(float64(h)*scale)
	if dw < 1 {
		dw = 1
	}
	if dh < 1 {
		dh = 1
	}
	dst := stdimage.NewRGBA(stdimage.Rect(0, 0, dw, dh))
	draw.CatmullRom.Scale(dst, dst.Bounds(), src, src.Bounds(), draw.Over, nil)
	return dst
}
