package brush

// BoundingBox is an axis-aligned rectangle.
type BoundingBox struct {
	MinX, MinY, MaxX, MaxY Number
}

// BoundingBoxOf computes the AABB over every control point of every segment
// in stroke. A nil or empty stroke yields the zero-valued box, matching
// original_source/src/rasterization.c bounding_box's default-initialized
// result for that boundary case.
func BoundingBoxOf(stroke *Stroke) BoundingBox {
	if stroke == nil || len(stroke.Segments) == 0 {
		return BoundingBox{}
	}
	first := true
	var bb BoundingBox
	consider := func(p Point) {
		if first {
			bb = BoundingBox{p.X, p.Y, p.X, p.Y}
			first = false
			return
		}
		if p.X < bb.MinX {
			bb.MinX = p.X
		}
		if p.X > bb.MaxX {
			bb.MaxX = p.X
		}
		if p.Y < bb.MinY {
			bb.MinY = p.Y
		}
		if p.Y > bb.MaxY {
			bb.MaxY = p.Y
		}
	}
	for _, seg := range stroke.Segments {
		consider(seg.Start)
		consider(seg.C1)
		consider(seg.C2)
		consider(seg.End)
	}
	return bb
}

// boundingBoxesIntersect reports whether two AABBs overlap.
func boundingBoxesIntersect(a, b BoundingBox) bool {
	return a.MinX <= b.MaxX && a.MaxX >= b.MinX && a.MinY <= b.MaxY && a.MaxY >= b.MinY
}

func segmentBoundingBox(c CubicSegment) BoundingBox {
	bb := BoundingBox{c.Start.X, c.Start.Y, c.Start.X, c.Start.Y}
	grow := func(p Point) {
		if p.X < bb.MinX {
			bb.MinX = p.X
		}
		if p.X > bb.MaxX {
			bb.MaxX = p.X
		}
		if p.Y < bb.MinY {
			bb.MinY = p.Y
		}
		if p.Y > bb.MaxY {
			bb.MaxY = p.Y
		}
	}
	grow(c.C1)
	grow(c.C2)
	grow(c.End)
	return bb
}

// UnionStrokes is a debug aid: naive concatenation of every stroke's
// segments under the first stroke's color. It performs no real polygon
// boolean algebra (spec.md §4.6, original_source/src/rasterization.c
// union_brush_stroke).
func UnionStrokes(strokes ...*Stroke) *Stroke {
	out := &Stroke{}
	for i, s := range strokes {
		if s == nil {
			continue
		}
		if i == 0 {
			out.Color = s.Color
		}
		out.Segments = append(out.Segments, s.Segments...)
	}
	return out
}

// IntersectStrokes is a debug aid, NOT a real curve-curve intersection: it
// keeps only the segments of a whose bounding box overlaps some segment's
// bounding box in b (spec.md §4.6, original_source/src/rasterization.c
// intersect_two_brush_strokes / intersection_brush_stroke). A single
// operand is returned unchanged.
func IntersectStrokes(strokes ...*Stroke) *Stroke {
	if len(strokes) == 0 {
		return &Stroke{}
	}
	acc := strokes[0]
	for _, next := range strokes[1:] {
		acc = intersectTwo(acc, next)
	}
	return acc
}

func intersectTwo(a, b *Stroke) *Stroke {
	if a == nil || b == nil {
		return &Stroke{}
	}
	out := &Stroke{Color: a.Color}
	for _, segA := range a.Segments {
		bboxA := segmentBoundingBox(segA)
		for _, segB := range b.Segments {
			if boundingBoxesIntersect(bboxA, segmentBoundingBox(segB)) {
				out.Segments = append(out.Segments, segA)
				break
			}
		}
	}
	return out
}
