package brush

import "testing"

func TestColorMixerMidpoint(t *testing.T) {
	red := Color{R: 255, A: 255}
	blue := Color{B: 255, A: 255}

	got := ColorMixer(red, blue, 0.5)
	want := Color{R: 128, B: 128, A: 255}
	if got != want {
		t.Fatalf("got %+v, want %+v", got, want)
	}
}

func TestColorMixerWeightedTowardFirst(t *testing.T) {
	red := Color{R: 255, A: 255}
	blue := Color{B: 255, A: 255}

	got := ColorMixer(red, blue, 0.9)
	want := Color{R: 230, B: 26, A: 255}
	if got != want {
		t.Fatalf("got %+v, want %+v", got, want)
	}
}

func TestColorMixerEndpointsReturnInputs(t *testing.T) {
	a := Color{R: 100, G: 100, B: 100, A: 255}
	b := Color{R: 200, G: 200, B: 200, A: 255}

	got := ColorMixer(a, b, 1.0)
	if got != a {
		t.Fatalf("mix=1.0 should equal the first color exactly, got %+v", got)
	}

	got = ColorMixer(a, b, 0.0)
	if got != b {
		t.Fatalf("mix=0.0 should equal the second color exactly, got %+v", got)
	}
}
