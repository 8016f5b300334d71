package vec

import (
	"math"
	"testing"
)

func TestArithmetic(t *testing.T) {
	a := New(3, 4)
	b := New(-1, 2)

	if got := a.Add(b); got != New(2, 6) {
		t.Errorf("Add: got %+v", got)
	}
	if got := a.Sub(b); got != New(4, 2) {
		t.Errorf("Sub: got %+v", got)
	}
	if got := a.Scale(2); got != New(6, 8) {
		t.Errorf("Scale: got %+v", got)
	}
	if got := a.Dot(b); got != 5 {
		t.Errorf("Dot: got %f", got)
	}
	if got := a.Len(); got != 5 {
		t.Errorf("Len: got %f", got)
	}
	if got := a.LenSq(); got != 25 {
		t.Errorf("LenSq: got %f", got)
	}
}

func TestPerp(t *testing.T) {
	v := New(3, 4)
	p := v.Perp()

	if p != New(-4, 3) {
		t.Errorf("Perp: got %+v", p)
	}
	if dot := v.Dot(p); dot != 0 {
		t.Errorf("perpendicular vectors must have zero dot product, got %f", dot)
	}
	if math.Abs(p.Len()-v.Len()) > 1e-12 {
		t.Error("rotation must preserve length")
	}
}

func TestLerp(t *testing.T) {
	a := New(0, 2)
	b := New(10, -2)

	if got := Lerp(a, b, 0); got != a {
		t.Errorf("f=0 must give a, got %+v", got)
	}
	if got := Lerp(a, b, 1); got != b {
		t.Errorf("f=1 must give b, got %+v", got)
	}
	if got := Lerp(a, b, 0.5); got != New(5, 0) {
		t.Errorf("midpoint: got %+v", got)
	}
}
