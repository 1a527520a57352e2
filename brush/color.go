package brush

import "math"

// Color is a plain RGBA pixel value, grounded on original_source/inc/
// common.h's color_t rather than the teacher's CSS-string Color: spec.md's
// color_mixer needs exact per-channel byte arithmetic, which a CSS-string
// representation cannot express without round-tripping through parsing.
type Color struct {
	R, G, B, A uint8
}

// mixChannel mirrors original_source/src/color_mixing.c mix_color_values:
// round(v1*mix + v2*(1-mix)), evaluated as v2 + (v1-v2)*mix so that the
// rounding of 1-mix cannot pull an exact .5 result below the halfway point.
func mixChannel(v1, v2 uint8, mix Number) uint8 {
	v := float64(v2) + (float64(v1)-float64(v2))*mix
	r := math.Round(v)
	if r < 0 {
		r = 0
	}
	if r > 255 {
		r = 255
	}
	return uint8(r)
}

// ColorMixer blends c1 and c2 channel-by-channel. mix in [-1, 1]; negative
// mix is the symmetric case weighted toward c2 (spec.md §6).
func ColorMixer(c1, c2 Color, mix Number) Color {
	return Color{
		R: mixChannel(c1.R, c2.R, mix),
		G: mixChannel(c1.G, c2.G, mix),
		B: mixChannel(c1.B, c2.B, mix),
		A: mixChannel(c1.A, c2.A, mix),
	}
}
