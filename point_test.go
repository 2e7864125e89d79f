package pydrawer

import (
	"testing"
)

func TestPointDistance(t *testing.T) {
	p1 := Pt(0, 10)
	p2 := Pt(0, 5)
	if d := p1.Distance(p2); d != 5 {
		t.Errorf("got distance %v, want 5", d)
	}

	p3 := Pt(-11, 1)
	p4 := Pt(-7, -2)
	if d := p3.Distance(p4); d != 5 {
		t.Errorf("got distance %v, want 5", d)
	}
}

func TestPointTransform(t *testing.T) {
	m := NewMat2([2][2]float64{{1, 2}, {3, 4}})
	pt := Pt(5, 6)
	// Matrix rows dot the point vector.
	want := Pt(5*1+6*2, 5*3+6*4)
	diff(t, want, pt.Transform(m))
	diff(t, want, m.Apply(pt))
}

func TestPointLerp(t *testing.T) {
	diff(t, Pt(1, 3), Pt(0, 2).Lerp(Pt(2, 4), 0.5))
	diff(t, Pt(1, 3), Pt(0, 2).Midpoint(Pt(2, 4)))
	diff(t, Pt(0, 2), Pt(0, 2).Lerp(Pt(2, 4), 0))
}
