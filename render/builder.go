// Package render provides a chained path-authoring convenience layer over
// the brush kernel, plus image-writer collaborators (BMP/PPM/PNG). It
// mirrors the role the teacher repository's draw package plays over its
// core mp package: a thin builder and an end-to-end canvas, not part of
// the kernel itself.
package render

import "github.com/penglyph/brush"

// PathBuilder accumulates path-constructor calls and produces the
// resulting ring on Build.
type PathBuilder struct {
	store *brush.Store
	ring  *brush.Ring
}

// NewPath starts a PathBuilder backed by store, with its first knot at p.
func NewPath(store *brush.Store, p brush.Point) *PathBuilder {
	return &PathBuilder{store: store, ring: brush.MoveTo(store, p)}
}

func (b *PathBuilder) Line(p brush.Point) *PathBuilder {
	b.ring = brush.LineTo(b.ring, p)
	return b
}

func (b *PathBuilder) RLine(delta brush.Point) *PathBuilder {
	b.ring = brush.RLineTo(b.ring, delta)
	return b
}

func (b *PathBuilder) Curve(c1, c2, end brush.Point) *PathBuilder {
	b.ring = brush.CurveTo(b.ring, c1, c2, end)
	return b
}

func (b *PathBuilder) Close() *PathBuilder {
	b.ring = brush.PathClose(b.ring)
	return b
}

// Build returns the accumulated ring.
func (b *PathBuilder) Build() *brush.Ring { return b.ring }

// Canvas drives a whole path -> pen -> stroke -> raster pipeline and
// accumulates the resulting spans for a single logical drawing surface.
type Canvas struct {
	Store      *brush.Store
	Resolution brush.Number
	spans      []brush.Span
}

// NewCanvas creates a Canvas with its own knot store, sized by knotHint,
// rasterizing at the given resolution (pixels per unit).
func NewCanvas(knotHint int, resolution brush.Number) *Canvas {
	return &Canvas{Store: brush.NewStore(knotHint), Resolution: resolution}
}

// Stroke runs path through DrawShape against pen and rasterizes the
// result, accumulating spans onto the canvas. path is consumed, matching
// DrawShape's contract; pen survives and may be reused.
func (c *Canvas) Stroke(path, pen *brush.Ring, color brush.Color) error {
	stroke, err := brush.DrawShape(path, pen, color)
	if err != nil {
		return err
	}
	c.spans = append(c.spans, brush.Rasterize(stroke, c.Resolution)...)
	return nil
}

// Spans returns every span accumulated across all Stroke calls on this
// canvas, in emission order (one sorted/merged run per stroke, concatenated
// across strokes -- spans from different strokes are never merged with
// each other, since they may carry different colors).
func (c *Canvas) Spans() []brush.Span {
	return c.spans
}
