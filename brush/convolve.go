package brush

import (
	"errors"
	"math"
)

// Convolution engine: sweeps a validated pen ring along a path ring,
// producing the cubic outline of the swept region. Grounded directly on
// original_source/src/brush.c (solve_quadratic, solve_bezier,
// inflection_tees, pen_tees, t_of_the_way, cubic_split, split_at_tees,
// clockwise, within_turn, convolve, convolve_all, show_segments) and
// draw.c's draw_shape orchestration; spec.md §4.4.

const small = 1e-12

// CubicSegment is an emitted, fully-explicit cubic Bézier ("return_cubic"
// in the source): start, c1, c2, end.
type CubicSegment struct {
	Start, C1, C2, End Point
}

// Stroke is a color plus the ordered concatenation of forward-pass and
// return-pass cubic segments produced by DrawShape.
type Stroke struct {
	Color    Color
	Segments []CubicSegment
}

var ErrNoKnotsAvailable = errors.New("brush: knot store exhausted")

// solveQuadratic is the numerically-stable Citardauq-form solver from
// original_source/src/brush.c solve_quadratic. The equation being solved
// is a*t^2 - 2*b*t + c = 0; callers pass the half-coefficient b (e.g.
// B = u - v, half of the bezier polynomial's linear coefficient
// 2*(v - u), negated by the "-2*b*t" form) to match the source's
// convention.
func solveQuadratic(a, b, c Number) []Number {
	if a == 0 {
		if b != 0 {
			return []Number{c / (2 * b)}
		}
		return nil
	}
	if c == 0 {
		roots := []Number{0}
		if b != 0 {
			roots = append(roots, 2*b/a)
		}
		return roots
	}
	d := b*b - a*c
	if d < 0 {
		return nil
	}
	d = math.Sqrt(d)
	if d == 0 {
		return []Number{b / a}
	}
	// Avoid subtracting two numbers of the same sign (Citardauq form).
	if b < 0 {
		return []Number{c / (b - d), (b - d) / a}
	}
	return []Number{c / (b + d), (b + d) / a}
}

// solveBezier mirrors solve_bezier(u,v,w) -> solve_quadratic(u-2v+w, u-v, u).
func solveBezier(u, v, w Number) []Number {
	return solveQuadratic(u-2*v+w, u-v, u)
}

// tOfTheWay is the de Casteljau lerp helper (t_of_the_way in the source).
func tOfTheWay(b, c, t Number) Number {
	return b + t*(c-b)
}

// segment bundles the four explicit control points of one cubic.
type segment struct {
	p0, p1, p2, p3 Point
}

func segmentAt(s *Store, p uint32) segment {
	pk := s.get(p)
	q := pk.succ
	qk := s.get(q)
	return segment{
		p0: Point{pk.x, pk.y},
		p1: Point{pk.rightX, pk.rightY},
		p2: Point{qk.leftX, qk.leftY},
		p3: Point{qk.x, qk.y},
	}
}

// inflectionTees finds the cubic's inflection parameters, following
// Pomax's derivation as used by original_source/src/brush.c
// inflection_tees: translate so p0 is the origin and rotate so p3 lies on
// the +x axis, then solve the quadratic in the rotated y(t) coefficients.
func inflectionTees(seg segment) []Number {
	dx, dy := seg.p3.X-seg.p0.X, seg.p3.Y-seg.p0.Y
	length := pythag(dx, dy)
	if length < small {
		return nil
	}
	cosA, sinA := dx/length, dy/length
	rot := func(p Point) (Number, Number) {
		x, y := p.X-seg.p0.X, p.Y-seg.p0.Y
		return x*cosA + y*sinA, -x*sinA + y*cosA
	}
	// (x0,y0), (x1,y1) are p1, p2 in the rotated frame; p0 is the origin and
	// p3 rotates to (length, 0) by construction.
	rx0, ry0 := rot(seg.p1)
	rx1, ry1 := rot(seg.p2)
	rx2 := length // p3 in the rotated frame has y = 0 by construction

	aa := rx1 * ry0
	bb := rx2 * ry0
	cc := rx0 * ry1
	dd := rx2 * ry1

	// 18(-3a+2b+3c-d) t^2 + 18(3a-b-3c) t + 18(c-a) = 0; solveQuadratic
	// solves a*t^2 - 2*b*t + c, so B = minus half the linear coefficient
	// = 9*(-3a+b+3c).
	coefA := 18 * (-3*aa + 2*bb + 3*cc - dd)
	coefB := 9 * (-3*aa + bb + 3*cc)
	coefC := 18 * (cc - aa)
	return solveQuadratic(coefA, coefB, coefC)
}

func pythag(a, b Number) Number { return math.Hypot(a, b) }

// penTees finds, for every pen edge, the parameter at which seg's tangent
// is parallel to that edge (original_source/src/brush.c pen_tees). The
// comment in the source about additionally splitting at diagonal/
// horizontal/vertical angles is present but its calls are commented out;
// spec.md §9 directs following the active (pen-slope-tees-only) behavior.
func penTees(seg segment, pen *Ring) []Number {
	// First-derivative control polygon of the cubic (3 points).
	x0, y0 := seg.p1.X-seg.p0.X, seg.p1.Y-seg.p0.Y
	x1, y1 := seg.p2.X-seg.p1.X, seg.p2.Y-seg.p1.Y
	x2, y2 := seg.p3.X-seg.p2.X, seg.p3.Y-seg.p2.Y

	var tees []Number
	s := pen.store
	cur := pen.head
	for {
		nxt := s.get(cur).succ
		ck, nk := s.get(cur), s.get(nxt)
		dx, dy := nk.x-ck.x, nk.y-ck.y
		u := y0*dx - x0*dy
		v := y1*dx - x1*dy
		w := y2*dx - x2*dy
		tees = append(tees, solveBezier(u, v, w)...)
		cur = nxt
		if cur == pen.head {
			break
		}
	}
	return tees
}

// cubicSplit performs de Casteljau subdivision of the segment p->q at
// parameter t, allocating a new knot r between them and setting p's right
// control, r's controls, and q's left control per the standard formulae
// (original_source/src/brush.c cubic_split).
func cubicSplit(s *Store, p uint32, t Number) uint32 {
	pk := s.get(p)
	q := pk.succ
	qk := s.get(q)

	u0 := tOfTheWay(pk.x, pk.rightX, t)
	u1 := tOfTheWay(pk.rightX, qk.leftX, t)
	u2 := tOfTheWay(qk.leftX, qk.x, t)
	v0 := tOfTheWay(u0, u1, t)
	v1 := tOfTheWay(u1, u2, t)
	w0 := tOfTheWay(v0, v1, t)

	a0 := tOfTheWay(pk.y, pk.rightY, t)
	a1 := tOfTheWay(pk.rightY, qk.leftY, t)
	a2 := tOfTheWay(qk.leftY, qk.y, t)
	b0 := tOfTheWay(a0, a1, t)
	b1 := tOfTheWay(a1, a2, t)
	c0 := tOfTheWay(b0, b1, t)

	r := s.alloc()
	rk := s.get(r)
	rk.x, rk.y = w0, c0
	rk.leftX, rk.leftY = v0, b0
	rk.rightX, rk.rightY = v1, b1
	rk.leftType, rk.rightType = Explicit, Explicit

	rk.pred, rk.succ = p, q
	s.get(p).succ = r
	s.get(q).pred = r

	pk.rightX, pk.rightY = u0, a0
	pk.rightType = Explicit
	qk.leftX, qk.leftY = u2, a2
	qk.leftType = Explicit
	return r
}

// splitAtTees walks each cubic segment of path (in ring order, stopping
// once it returns to the start) and subdivides it at every inflection and
// pen-slope tee in (0,1), following original_source/src/brush.c
// split_at_tees: tees are collected, filtered to the open interval,
// sorted, and the segment is split sequentially, reparametrizing each
// remaining tee as (tee - lastSplit) / (1 - lastSplit).
func splitAtTees(path *Ring, pen *Ring) {
	if path.IsNil() {
		return
	}
	s := path.store
	p := path.head
	start := p
	for {
		q := s.get(p).succ
		seg := segmentAt(s, p)
		var tees []Number
		tees = append(tees, inflectionTees(seg)...)
		tees = append(tees, penTees(seg, pen)...)

		var filtered []Number
		for _, t := range tees {
			if t > 0 && t < 1 {
				filtered = append(filtered, t)
			}
		}
		sortAscending(filtered)

		last := Number(0)
		cur := p
		for _, t := range filtered {
			frac := (t - last) / (1 - last)
			if frac <= 0 || frac >= 1 {
				continue
			}
			cur = cubicSplit(s, cur, frac)
			last = t
		}
		p = q
		// An unclosed path's last knot never had its right side set by
		// LineTo/CurveTo/PathClose and remains Regular; stop rather than
		// wrap around and split a nonexistent closing edge.
		if p == start || s.get(p).rightType == Regular {
			break
		}
	}
}

func sortAscending(xs []Number) {
	for i := 1; i < len(xs); i++ {
		for j := i; j > 0 && xs[j-1] > xs[j]; j-- {
			xs[j-1], xs[j] = xs[j], xs[j-1]
		}
	}
}

// clockwise mirrors original_source/src/brush.c clockwise: cross product
// sign, with ties (|d| < SMALL) favoring "clockwise" (true).
func clockwise(dx, dy, du, dv Number) bool {
	d := dx*dv - dy*du
	return absNum(d) < small || d >= 0
}

func absNum(x Number) Number {
	if x < 0 {
		return -x
	}
	return x
}

// withinTurn asks whether vector B lies within the closed convex angle
// formed by A and C (original_source/src/brush.c within_turn).
func withinTurn(ax, ay, bx, by, cx, cy Number) bool {
	if !clockwise(ax, ay, bx, by) {
		return clockwise(bx, by, cx, cy) && clockwise(cx, cy, ax, ay)
	}
	return clockwise(ax, ay, cx, cy) && clockwise(cx, cy, bx, by)
}

// convolveOne implements original_source/src/brush.c convolve: for curve
// knot p (tangents x1,y1/x2,y2/x3,y3 already computed by the caller) and
// pen knot r (with predecessor/successor in the pen ring), test each
// within_turn membership. The two conditions emit DIFFERENT geometry: the
// first translates the pen edge r->succ(r) by curve point p, the second
// translates the curve edge p->q by pen point r (original_source's
// make_move(r, p) always emits segment "p"'s edge translated by "r",
// regardless of which is the curve knot and which is the pen knot).
func convolveOne(s *Store, trace *[]CubicSegment, p uint32, x1, y1, x2, y2, x3, y3 Number, penStore *Store, r uint32) {
	rk := penStore.get(r)
	pred := penStore.get(rk.pred)
	succ := penStore.get(rk.succ)
	x4, y4 := rk.x-pred.x, rk.y-pred.y
	x5, y5 := succ.x-rk.x, succ.y-rk.y

	pk := s.get(p)
	qc := s.get(pk.succ)

	if withinTurn(x1, y1, x2, y2, x5, y5) {
		// pen edge r -> succ(r), translated by curve point p.
		*trace = append(*trace, CubicSegment{
			Start: Point{rk.x + pk.x, rk.y + pk.y},
			C1:    Point{rk.rightX + pk.x, rk.rightY + pk.y},
			C2:    Point{succ.leftX + pk.x, succ.leftY + pk.y},
			End:   Point{succ.x + pk.x, succ.y + pk.y},
		})
	}
	if withinTurn(x4, y4, x5, y5, x3, y3) {
		// curve edge p -> q, translated by pen point r.
		*trace = append(*trace, CubicSegment{
			Start: Point{pk.x + rk.x, pk.y + rk.y},
			C1:    Point{pk.rightX + rk.x, pk.rightY + rk.y},
			C2:    Point{qc.leftX + rk.x, qc.leftY + rk.y},
			End:   Point{qc.x + rk.x, qc.y + rk.y},
		})
	}
}

// convolveAll implements original_source/src/brush.c convolve_all: walk
// every curve segment of path, and for every pen knot, test and emit
// moves, appending into trace.
func convolveAll(path *Ring, pen *Ring, trace *[]CubicSegment) {
	if path.IsNil() || pen.IsNil() {
		return
	}
	s := path.store
	p := path.head
	start := p
	for {
		pk := s.get(p)
		q := pk.succ
		x2, y2 := pk.rightX-pk.x, pk.rightY-pk.y
		var x1, y1 Number
		if pk.leftType == Explicit {
			x1, y1 = pk.x-pk.leftX, pk.y-pk.leftY
		} else {
			x1, y1 = -x2, -y2
		}
		qk := s.get(q)
		x3, y3 := qk.x-pk.x, qk.y-pk.y

		r := pen.head
		for {
			convolveOne(s, trace, p, x1, y1, x2, y2, x3, y3, pen.store, r)
			r = pen.store.get(r).succ
			if r == pen.head {
				break
			}
		}
		p = q
		// Mirrors splitAtTees: stop at an unclosed path's terminal knot
		// instead of wrapping around to a spurious closing edge.
		if p == start || s.get(p).rightType == Regular {
			break
		}
	}
}

// DrawShape convolves pen along path, consuming path (the pen survives)
// and returns the resulting stroke. Grounded on original_source/src/
// draw.c draw_shape: validates the pen, re-centers a copy of it at the
// origin (the convolution math assumes pen knots are offsets from (0,0)),
// splits the path at tees, convolves forward, then convolves again against
// a reversed clone of the (tee-split) path for the return pass.
func DrawShape(path *Ring, pen *Ring, color Color) (*Stroke, error) {
	stroke := &Stroke{Color: color}
	if path.IsNil() {
		return stroke, nil
	}
	if _, err := BrushMake(pen); err != nil {
		return nil, err
	}
	centered := pen.clone()
	BrushTFTranslate(centered, P(0, 0))

	splitAtTees(path, centered)
	var trace []CubicSegment
	convolveAll(path, centered, &trace)
	stroke.Segments = append(stroke.Segments, trace...)

	returnPath := path.reversed()
	trace = trace[:0]
	convolveAll(returnPath, centered, &trace)
	stroke.Segments = append(stroke.Segments, trace...)

	// draw_shape consumes path: the knots are released back to the store
	// (original_source/src/draw.c frees both path and the return-pass
	// clone after show_segments).
	s := path.store
	s.freeRing(path.head)
	s.freeRing(returnPath.head)
	s.freeRing(centered.head)

	return stroke, nil
}
