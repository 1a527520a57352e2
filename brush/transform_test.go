package brush

import (
	"math"
	"testing"
)

const tfEps = 1e-9

func approxEq(a, b Number) bool { return math.Abs(a-b) < tfEps }

func TestBrushTFIdentityLeavesCoordinates(t *testing.T) {
	s := NewStore(8)
	sq := BrushMakeSquare(s)
	type pos struct{ x, y Number }
	before := map[uint32]pos{}
	cur := sq.head
	for i := 0; i < sq.Length(); i++ {
		k := s.get(cur)
		before[cur] = pos{k.x, k.y}
		cur = k.succ
	}

	BrushTF(sq, Identity())

	cur = sq.head
	for i := 0; i < sq.Length(); i++ {
		k := s.get(cur)
		want := before[cur]
		if !approxEq(k.x, want.x) || !approxEq(k.y, want.y) {
			t.Fatalf("identity transform moved knot %d: got (%v,%v) want (%v,%v)", cur, k.x, k.y, want.x, want.y)
		}
		cur = k.succ
	}
}

func TestBrushTFReflectTwiceRestoresGeometry(t *testing.T) {
	s := NewStore(8)
	sq := BrushMakeSquare(s)
	type pos struct{ x, y Number }
	before := map[uint32]pos{}
	cur := sq.head
	for i := 0; i < sq.Length(); i++ {
		k := s.get(cur)
		before[cur] = pos{k.x, k.y}
		cur = k.succ
	}

	r1 := BrushTFReflect(sq, AxisX)
	r2 := BrushTFReflect(r1, AxisX)

	cur = r2.head
	for i := 0; i < r2.Length(); i++ {
		k := s.get(cur)
		want := before[cur]
		if !approxEq(k.x, want.x) || !approxEq(k.y, want.y) {
			t.Fatalf("double reflection did not restore knot %d: got (%v,%v) want (%v,%v)", cur, k.x, k.y, want.x, want.y)
		}
		cur = k.succ
	}
}

func TestBrushTFRotateAndBackRestoresPositions(t *testing.T) {
	s := NewStore(8)
	sq := BrushMakeSquare(s)
	type pos struct{ x, y Number }
	before := map[uint32]pos{}
	cur := sq.head
	for i := 0; i < sq.Length(); i++ {
		k := s.get(cur)
		before[cur] = pos{k.x, k.y}
		cur = k.succ
	}

	BrushTFRotate(sq, 37, AxisZ)
	BrushTFRotate(sq, -37, AxisZ)

	cur = sq.head
	for i := 0; i < sq.Length(); i++ {
		k := s.get(cur)
		want := before[cur]
		if !approxEq(k.x, want.x) || !approxEq(k.y, want.y) {
			t.Fatalf("rotate then counter-rotate did not restore knot %d: got (%v,%v) want (%v,%v)", cur, k.x, k.y, want.x, want.y)
		}
		cur = k.succ
	}
}

func TestBrushTFNeighborControlQuirk(t *testing.T) {
	s := NewStore(8)
	r := MoveTo(s, P(0, 0))
	r = LineTo(r, P(10, 0))
	r = LineTo(r, P(10, 10))
	r = PathClose(r)

	BrushTF(r, Shifted(5, 5))

	// Every knot's predecessor's right-control and successor's left-control
	// should now equal the knot's own new position, not the transformed
	// control-point position (spec.md §9 open question / transforms.c quirk).
	cur := r.head
	for i := 0; i < r.Length(); i++ {
		k := s.get(cur)
		prev := s.get(k.pred)
		if prev.rightType == Explicit {
			if !approxEq(prev.rightX, k.x) || !approxEq(prev.rightY, k.y) {
				t.Fatalf("predecessor's right control should track knot %d's new position", cur)
			}
		}
		cur = k.succ
	}
}
