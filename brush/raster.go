package brush

import "sort"

// Rasterizer: tessellates each cubic of a stroke into line segments via
// parameter sampling, rasterizes each via an integer-step DDA into
// single-pixel spans, then sorts and merges them. Grounded on
// original_source/src/rasterization.c (bezier_x/bezier_y, rasterize_bezier,
// compare_spans, merge_spans, rasterize); spec.md §4.5.

const rasterSteps = 100

// Span is a horizontal pixel run.
type Span struct {
	XStart, XEnd, Y int
	Color            Color
}

func bezierCoord(p0, p1, p2, p3, t Number) Number {
	mt := 1 - t
	return mt*mt*mt*p0 + 3*mt*mt*t*p1 + 3*mt*t*t*p2 + t*t*t*p3
}

func evalCubic(c CubicSegment, t Number) (Number, Number) {
	x := bezierCoord(c.Start.X, c.C1.X, c.C2.X, c.End.X, t)
	y := bezierCoord(c.Start.Y, c.C1.Y, c.C2.Y, c.End.Y, t)
	return x, y
}

// rasterizeLine DDA-steps from (x0,y0) to (x1,y1) (already scaled to pixel
// space) and appends one span per integer step.
func rasterizeLine(spans *[]Span, x0, y0, x1, y1 Number, color Color) {
	steps := int(maxNum(absNum(x1-x0), absNum(y1-y0)))
	if steps == 0 {
		px, py := int(round(x0)), int(round(y0))
		*spans = append(*spans, Span{XStart: px, XEnd: px, Y: py, Color: color})
		return
	}
	dx := (x1 - x0) / Number(steps)
	dy := (y1 - y0) / Number(steps)
	x, y := x0, y0
	for i := 0; i <= steps; i++ {
		px, py := int(round(x)), int(round(y))
		*spans = append(*spans, Span{XStart: px, XEnd: px, Y: py, Color: color})
		x += dx
		y += dy
	}
}

func round(x Number) Number {
	if x >= 0 {
		return Number(int64(x + 0.5))
	}
	return Number(int64(x - 0.5))
}

func maxNum(a, b Number) Number {
	if a > b {
		return a
	}
	return b
}

// rasterizeBezier samples the cubic at rasterSteps+1 parameters and
// rasterizes the line between every consecutive pair of samples.
func rasterizeBezier(spans *[]Span, c CubicSegment, resolution Number, color Color) {
	var prevX, prevY Number
	for i := 0; i <= rasterSteps; i++ {
		t := Number(i) / Number(rasterSteps)
		x, y := evalCubic(c, t)
		x, y = x*resolution, y*resolution
		if i > 0 {
			rasterizeLine(spans, prevX, prevY, x, y, color)
		}
		prevX, prevY = x, y
	}
}

// mergeSpans sorts by (y, x_start) and folds touching/overlapping spans on
// the same scanline (x_end >= next.x_start - 1) into the maximum x_end.
func mergeSpans(spans []Span) []Span {
	if len(spans) == 0 {
		return spans
	}
	sort.Slice(spans, func(i, j int) bool {
		if spans[i].Y != spans[j].Y {
			return spans[i].Y < spans[j].Y
		}
		return spans[i].XStart < spans[j].XStart
	})
	merged := make([]Span, 0, len(spans))
	cur := spans[0]
	for _, s := range spans[1:] {
		if s.Y == cur.Y && s.XStart <= cur.XEnd+1 {
			if s.XEnd > cur.XEnd {
				cur.XEnd = s.XEnd
			}
			continue
		}
		merged = append(merged, cur)
		cur = s
	}
	merged = append(merged, cur)
	return merged
}

// Rasterize walks stroke's cubic segments, producing a sorted, merged span
// list. Returns nil for a nil stroke or a non-positive resolution
// (spec.md §7 invalid-rasterization-input contract).
func Rasterize(stroke *Stroke, resolution Number) []Span {
	if stroke == nil || resolution <= 0 {
		return nil
	}
	var spans []Span
	for _, seg := range stroke.Segments {
		rasterizeBezier(&spans, seg, resolution, stroke.Color)
	}
	return mergeSpans(spans)
}
