package brush

// Path constructors build a cyclic knot ring one user operation at a time.
// Grounded on original_source/src/draw.c's moveto/rmoveto/lineto/rlineto/
// curveto/pathclose and spec.md §4.1; ported to the Store/Ring handle model
// from knot.go rather than the source's raw pointer-in/pointer-out style.

// MoveTo starts a new one-knot ring at p. The knot's left side is Open
// (no incoming edge yet) and its right side Regular (no outgoing control
// set yet either).
func MoveTo(s *Store, p Point) *Ring {
	return newSelfLinked(s, p.X, p.Y)
}

// RMoveTo starts a new one-knot ring at the position of cur's predecessor
// plus delta. cur is left untouched.
func RMoveTo(cur *Ring, delta Point) *Ring {
	prev := cur.store.get(cur.store.get(cur.head).pred)
	return newSelfLinked(cur.store, prev.x+delta.X, prev.y+delta.Y)
}

// thirdWay sets the 0.3/0.7 explicit control points on the edge r -> q,
// encoding a straight line as a degenerate cubic (spec.md §4.1 rationale).
func thirdWay(s *Store, r, q uint32) {
	rk, qk := s.get(r), s.get(q)
	dx, dy := qk.x-rk.x, qk.y-rk.y
	rk.rightX, rk.rightY = rk.x+0.3*dx, rk.y+0.3*dy
	rk.rightType = Explicit
	qk.leftX, qk.leftY = rk.x+0.7*dx, rk.y+0.7*dy
	qk.leftType = Explicit
}

// LineTo inserts a new knot at p immediately before the ring handle (the
// ring grows backwards from the handle) and gives the new edge degenerate
// explicit controls 0.3 and 0.7 of the way along it (see thirdWay).
func LineTo(r *Ring, p Point) *Ring {
	if r.IsNil() {
		return MoveTo(r.store, p)
	}
	n := r.store.insertBefore(r.head, p.X, p.Y)
	predOfN := r.store.get(n).pred
	thirdWay(r.store, predOfN, n)
	return &Ring{store: r.store, head: r.head}
}

// RLineTo is LineTo with p expressed relative to the ring handle's
// predecessor (the current end of the path under construction).
func RLineTo(r *Ring, delta Point) *Ring {
	if r.IsNil() {
		return r
	}
	prev := r.store.get(r.store.get(r.head).pred)
	return LineTo(r, Point{prev.x + delta.X, prev.y + delta.Y})
}

// CurveTo inserts a new knot at end immediately before the ring handle,
// with the given explicit control points on the new edge.
func CurveTo(r *Ring, c1, c2, end Point) *Ring {
	if r.IsNil() {
		return MoveTo(r.store, end)
	}
	n := r.store.insertBefore(r.head, end.X, end.Y)
	predOfN := r.store.get(n).pred
	rk, qk := r.store.get(predOfN), r.store.get(n)
	rk.rightX, rk.rightY = c1.X, c1.Y
	rk.rightType = Explicit
	qk.leftX, qk.leftY = c2.X, c2.Y
	qk.leftType = Explicit
	return &Ring{store: r.store, head: r.head}
}

// PathClose applies the 0.3/0.7 rule to the edge from the current
// predecessor back to the handle, closing the ring. A nil ring is returned
// unchanged; a single-knot ring is a no-op (there is no edge to close).
func PathClose(r *Ring) *Ring {
	if r.IsNil() {
		return r
	}
	if r.store.get(r.head).succ == r.head {
		return r // single-knot ring: nothing to close
	}
	thirdWay(r.store, r.store.get(r.head).pred, r.head)
	return r
}
