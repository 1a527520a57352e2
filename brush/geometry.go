package brush

// Point represents a 2D coordinate pair. It is the sole geometric primitive
// the rest of the package builds on; every other helper that the teacher's
// geometry.go carried (line intersection, reflection, rotation-around-a-
// point, and the vector arithmetic methods) had no call site anywhere in
// the convolution engine, the rasterizer, or the pen/transform code, which
// all work directly in explicit x/y Number pairs per original_source's own
// style -- they were dropped rather than kept unexercised.
type Point struct {
	X, Y float64
}

// P creates a Point from x, y coordinates.
func P(x, y float64) Point {
	return Point{X: x, Y: y}
}
