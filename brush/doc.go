// Package brush implements a pen-convolution vector-graphics kernel: a
// closed, convex, counter-clockwise pen polygon is swept along a
// user-authored path by pairwise curve/pen convolution, producing the
// cubic Bézier outline of the region the pen sweeps. A span-based
// rasterizer turns that outline into horizontal pixel runs.
//
// # Architecture
//
// The package is organized around these core concepts:
//
//   - [Store] / [Ring]: a pool-allocated arena of knots and an owning
//     handle to a cyclic doubly-linked list of them, used for both paths
//     and pens.
//   - Path constructors ([MoveTo], [LineTo], [CurveTo], [PathClose], ...):
//     build a ring one user operation at a time.
//   - [BrushMake] / [BrushMakeSquare]: validate a ring as a usable pen, or
//     construct the standard unit square pen directly.
//   - [DrawShape]: the convolution engine's public entry point, producing
//     a [Stroke] from a path and a validated pen.
//   - [Rasterize]: turns a stroke into a sorted, merged [Span] list.
//
// # Quick Start
//
//	store := brush.NewStore(64)
//	path := brush.MoveTo(store, brush.P(0, 0))
//	path = brush.LineTo(path, brush.P(10, 0))
//	path = brush.PathClose(path)
//
//	pen := brush.BrushMakeSquare(store)
//	stroke, err := brush.DrawShape(path, pen, brush.Color{R: 255, A: 255})
//	spans := brush.Rasterize(stroke, 1.0)
//
// # Transforms
//
// A single primitive, [BrushTF], applies a 3x3 affine matrix to every knot
// of a ring in place. The named wrappers compose a matrix and call it:
//
//	brush.BrushTFTranslate(pen, brush.P(0, 0))
//	brush.BrushTFRotate(pen, 45, brush.AxisZ)
//	brush.BrushTFReflect(pen, brush.AxisX)
//	brush.BrushTFShear(pen, 0.3, brush.AxisX)
//	brush.BrushTFResize(pen, 2, brush.AxisZ)
//
// # Pen validation
//
// [BrushMake] walks a ring once and fails with a typed [BrushError]
// wrapping [ErrDuplicatePoint], [ErrNotCounterClockwise], or
// [ErrOverwound] the first time an invariant is violated; a pen that
// survives validation is strictly convex, counter-clockwise, and winds no
// more than once around.
//
// # Color
//
// [Color] is a plain RGBA byte quad; [ColorMixer] blends two colors
// channel by channel.
//
// # Debug aids
//
// [UnionStrokes] and [IntersectStrokes] are NOT real polygon boolean
// operations -- the former concatenates segment lists, the latter keeps
// segments whose bounding box overlaps the other operand's. Both mirror
// the limited behavior of the original source's stroke-list helpers.
package brush
