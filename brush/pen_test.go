package brush

import (
	"errors"
	"math"
	"testing"
)

func TestBrushMakeSquareValid(t *testing.T) {
	s := NewStore(8)
	sq := BrushMakeSquare(s)
	if _, err := BrushMake(sq); err != nil {
		t.Fatalf("unit square should validate, got %v", err)
	}
}

func TestBrushMakeRejectsDegenerateTriangle(t *testing.T) {
	s := NewStore(8)
	r := MoveTo(s, P(0, 0))
	r = LineTo(r, P(1, 0))
	r = LineTo(r, P(2, 0)) // collinear: a "triangle" with no turn
	r = PathClose(r)

	_, err := BrushMake(r)
	var be *BrushError
	if !errors.As(err, &be) || !errors.Is(err, ErrNotCounterClockwise) {
		t.Fatalf("expected ErrNotCounterClockwise, got %v", err)
	}
}

func TestBrushMakeRejectsClockwiseDecagon(t *testing.T) {
	s := NewStore(16)
	n := 10
	r := MoveTo(s, P(math.Cos(0), math.Sin(0)))
	for i := 1; i < n; i++ {
		// descending angle order sweeps the decagon clockwise.
		angle := -2 * math.Pi * float64(i) / float64(n)
		r = LineTo(r, P(math.Cos(angle), math.Sin(angle)))
	}
	r = PathClose(r)

	_, err := BrushMake(r)
	if !errors.Is(err, ErrNotCounterClockwise) {
		t.Fatalf("expected ErrNotCounterClockwise for clockwise decagon, got %v", err)
	}
}

func TestBrushMakeRejectsDuplicatePoint(t *testing.T) {
	s := NewStore(8)
	r := MoveTo(s, P(0, 0))
	r = LineTo(r, P(0, 0))
	r = LineTo(r, P(1, 1))
	r = PathClose(r)

	_, err := BrushMake(r)
	if !errors.Is(err, ErrDuplicatePoint) {
		t.Fatalf("expected ErrDuplicatePoint, got %v", err)
	}
}

func TestBrushMakeRejectsOverwoundStar(t *testing.T) {
	s := NewStore(16)
	// A 5-point star (pentagram) traversed so the turning angle accumulates
	// beyond a full revolution (2*pi) before closing: each vertex skips one
	// corner of a regular pentagon, every turn is a strict left turn of
	// 144 degrees, and the five turns sum to 4*pi.
	n := 5
	r := MoveTo(s, P(1, 0))
	for i := 1; i < n; i++ {
		angle := 2 * math.Pi * float64(2*i) / float64(n)
		r = LineTo(r, P(math.Cos(angle), math.Sin(angle)))
	}
	r = PathClose(r)

	_, err := BrushMake(r)
	if !errors.Is(err, ErrOverwound) {
		t.Fatalf("expected ErrOverwound for an overwound star, got %v", err)
	}
}
