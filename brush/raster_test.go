package brush

import "testing"

func TestMergeSpansFoldsTouchingRuns(t *testing.T) {
	c := Color{R: 1, A: 255}
	in := []Span{
		{XStart: 0, XEnd: 5, Y: 3, Color: c},
		{XStart: 4, XEnd: 8, Y: 3, Color: c},
		{XStart: 10, XEnd: 12, Y: 3, Color: c},
	}
	out := mergeSpans(in)

	want := []Span{
		{XStart: 0, XEnd: 8, Y: 3, Color: c},
		{XStart: 10, XEnd: 12, Y: 3, Color: c},
	}
	if len(out) != len(want) {
		t.Fatalf("got %d spans, want %d: %+v", len(out), len(want), out)
	}
	for i := range want {
		if out[i] != want[i] {
			t.Fatalf("span %d: got %+v, want %+v", i, out[i], want[i])
		}
	}
}

func TestMergeSpansResultIsSortedAndDisjoint(t *testing.T) {
	c := Color{A: 255}
	in := []Span{
		{XStart: 20, XEnd: 22, Y: 1, Color: c},
		{XStart: 0, XEnd: 2, Y: 0, Color: c},
		{XStart: 10, XEnd: 12, Y: 1, Color: c},
	}
	out := mergeSpans(in)
	for i := 1; i < len(out); i++ {
		a, b := out[i-1], out[i]
		if b.Y < a.Y || (b.Y == a.Y && b.XStart < a.XStart) {
			t.Fatalf("spans not sorted: %+v then %+v", a, b)
		}
		if b.Y == a.Y && b.XStart <= a.XEnd+1 {
			t.Fatalf("adjacent spans should have been merged: %+v and %+v", a, b)
		}
	}
}

func TestRasterizeAxisAlignedLineAtUnitResolution(t *testing.T) {
	seg := CubicSegment{
		Start: P(0, 0),
		C1:    P(10.0 / 3, 0),
		C2:    P(20.0 / 3, 0),
		End:   P(10, 0),
	}
	stroke := &Stroke{Color: Color{A: 255}, Segments: []CubicSegment{seg}}

	spans := Rasterize(stroke, 1)
	if len(spans) == 0 {
		t.Fatal("expected at least one span")
	}
	for _, s := range spans {
		if s.Y != 0 {
			t.Fatalf("expected every span on y=0 for a horizontal segment, got %+v", s)
		}
	}
	if spans[0].XStart != 0 {
		t.Fatalf("expected merged range to start at x=0, got %d", spans[0].XStart)
	}
	if spans[len(spans)-1].XEnd != 10 {
		t.Fatalf("expected merged range to end at x=10, got %d", spans[len(spans)-1].XEnd)
	}
}

func TestRasterizeNilOrInvalidResolution(t *testing.T) {
	if spans := Rasterize(nil, 1); spans != nil {
		t.Fatalf("expected nil spans for a nil stroke, got %v", spans)
	}
	stroke := &Stroke{Segments: []CubicSegment{{Start: P(0, 0), End: P(1, 1)}}}
	if spans := Rasterize(stroke, 0); spans != nil {
		t.Fatalf("expected nil spans for non-positive resolution, got %v", spans)
	}
}
