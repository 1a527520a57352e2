// Package imageio writes a rasterized span buffer out as BMP, PPM or PNG.
// These are external collaborators, not part of the brush kernel
// (spec.md §1, §6): the kernel produces spans, and this package blits them
// to one of the three named formats.
package imageio

import (
	"bufio"
	"fmt"
	stdimage "image"
	"image/color"
	"image/png"
	"io"

	"github.com/penglyph/brush"
)

// Buffer is a plain RGBA pixel grid, the shape every writer below
// consumes. NewBuffer fills it with background and Blit paints a stroke's
// spans on top, matching the downstream "blitted by an external image
// writer" step spec.md §2 describes.
type Buffer struct {
	Width, Height int
	Pix           []brush.Color // row-major, origin top-left
}

func NewBuffer(w, h int, background brush.Color) *Buffer {
	b := &Buffer{Width: w, Height: h, Pix: make([]brush.Color, w*h)}
	for i := range b.Pix {
		b.Pix[i] = background
	}
	return b
}

func (b *Buffer) set(x, y int, c brush.Color) {
	if x < 0 || x >= b.Width || y < 0 || y >= b.Height {
		return
	}
	b.Pix[y*b.Width+x] = c
}

// Blit paints every span's pixels into the buffer.
func (b *Buffer) Blit(spans []brush.Span) {
	for _, s := range spans {
		for x := s.XStart; x <= s.XEnd; x++ {
			b.set(x, s.Y, s.Color)
		}
	}
}

// WriteBMP writes a 24-bit BGR, bottom-up, 4-byte-row-aligned BMP with a
// 54-byte header (spec.md §6). No library in the reference corpus
// provides a BMP encoder (only a decoder is vendored), so this is a
// direct, hand-rolled implementation of the documented byte layout.
func WriteBMP(w io.Writer, b *Buffer) error {
	rowSize := (b.Width*3 + 3) &^ 3
	pixelDataSize := rowSize * b.Height
	fileSize := 54 + pixelDataSize

	bw := bufio.NewWriter(w)
	putU16 := func(v uint16) { bw.WriteByte(byte(v)); bw.WriteByte(byte(v >> 8)) }
	putU32 := func(v uint32) {
		bw.WriteByte(byte(v))
		bw.WriteByte(byte(v >> 8))
		bw.WriteByte(byte(v >> 16))
		bw.WriteByte(byte(v >> 24))
	}

	bw.WriteString("BM")
	putU32(uint32(fileSize))
	putU32(0) // reserved
	putU32(54) // pixel data offset

	putU32(40) // DIB header size
	putU32(uint32(b.Width))
	putU32(uint32(b.Height))
	putU16(1)  // planes
	putU16(24) // bits per pixel
	putU32(0)  // no compression
	putU32(uint32(pixelDataSize))
	putU32(2835) // ~72 DPI
	putU32(2835)
	putU32(0) // palette colors
	putU32(0) // important colors

	pad := rowSize - b.Width*3
	for y := b.Height - 1; y >= 0; y-- {
		for x := 0; x < b.Width; x++ {
			c := b.Pix[y*b.Width+x]
			bw.WriteByte(c.B)
			bw.WriteByte(c.G)
			bw.WriteByte(c.R)
		}
		for i := 0; i < pad; i++ {
			bw.WriteByte(0)
		}
	}
	return bw.Flush()
}

// WritePPM writes a P3 ASCII PPM with a 255 max component value
// (spec.md §6). No corpus library emits PPM either; hand-rolled per the
// documented text format.
func WritePPM(w io.Writer, b *Buffer) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "P3\n%d %d\n255\n", b.Width, b.Height)
	for y := 0; y < b.Height; y++ {
		for x := 0; x < b.Width; x++ {
			c := b.Pix[y*b.Width+x]
			fmt.Fprintf(bw, "%d %d %d\n", c.R, c.G, c.B)
		}
	}
	return bw.Flush()
}

// WritePNG writes an 8-bit RGBA PNG. spec.md §6 names libpng as the
// reference implementation's backend; libpng itself is unreachable from
// pure Go without cgo, so the standard library's image/png encoder -- the
// idiomatic Go substitute for an 8-bit RGBA PNG writer -- is used instead.
func WritePNG(w io.Writer, b *Buffer) error {
	img := stdimage.NewRGBA(stdimage.Rect(0, 0, b.Width, b.Height))
	for y := 0; y < b.Height; y++ {
		for x := 0; x < b.Width; x++ {
			c := b.Pix[y*b.Width+x]
			img.SetRGBA(x, y, color.RGBA{R: c.R, G: c.G, B: c.B, A: c.A})
		}
	}
	return png.Encode(w, img)
}
