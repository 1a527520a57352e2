// Command brushdemo drives the pen-convolution pipeline end to end: it
// authors a path, sweeps a square pen along it, rasterizes the result, and
// writes the raster out as PNG (plus an optional scaled-down thumbnail).
package main

import (
	"flag"
	"log"
	"os"

	"github.com/penglyph/brush"
	"github.com/penglyph/render"
	"github.com/penglyph/render/imageio"
)

func main() {
	out := flag.String("out", "stroke.png", "output PNG path")
	thumb := flag.String("thumb", "", "optional thumbnail PNG path")
	resolution := flag.Float64("resolution", 4.0, "rasterizer resolution (pixels per unit)")
	flag.Parse()

	canvas := render.NewCanvas(256, *resolution)
	path := render.NewPath(canvas.Store, brush.P(0, 0)).
		Line(brush.P(10, 0)).
		Close().
		Build()
	pen := brush.BrushMakeSquare(canvas.Store)

	if err := canvas.Stroke(path, pen, brush.Color{R: 255, A: 255}); err != nil {
		log.Fatalf("brushdemo: draw failed: %v", err)
	}

	bb := computeRasterBounds(canvas.Spans())
	buf := imageio.NewBuffer(bb.w, bb.h, brush.Color{A: 255})
	buf.Blit(shift(canvas.Spans(), bb.minX, bb.minY))

	f, err := os.Create(*out)
	if err != nil {
		log.Fatalf("brushdemo: %v", err)
	}
	defer f.Close()
	if err := imageio.WritePNG(f, buf); err != nil {
		log.Fatalf("brushdemo: %v", err)
	}

	if *thumb != "" {
		tf, err := os.Create(*thumb)
		if err != nil {
			log.Fatalf("brushdemo: %v", err)
		}
		defer tf.Close()
		small := imageio.Thumbnail(buf, 128)
		if err := writePNGImage(tf, small); err != nil {
			log.Fatalf("brushdemo: %v", err)
		}
	}
}
