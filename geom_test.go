package geom

import (
	"math"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestNumericBasic(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	a := 0.000000008
	if !Is0(a) {
		t.Errorf("Expected a to be zero, is not")
	}
}

func TestPairBasic(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	p := P(3, 2)
	q := P(-3, -2)
	r := p + q
	if !r.IsOrigin() {
		t.Errorf("Expected p + q to be (0,0), is %v", r)
	}
}

func TestTranslation(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	if !P(1, 1).Shifted(P(-1, -1)).IsOrigin() {
		t.Errorf("Expected (1,1) shifted (-1,-1) to be origin, is not")
	}
	if !P(1, 0).Rotated(180 * Deg2Rad).Shifted(P(1, 0)).IsOrigin() {
		t.Errorf("Expected result to be origin, is not")
	}
}

func TestVectorHelpers(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	if d := P(0, 0).Dist(P(3, 4)); !Is0(d - 5) {
		t.Errorf("Expected distance 5, got %g", d)
	}
	if l := P(0, -2).Length(); !Is0(l - 2) {
		t.Errorf("Expected length 2, got %g", l)
	}
	if a := P(0, 1).Angle(); math.Abs(a-math.Pi/2) > Epsilon {
		t.Errorf("Expected angle pi/2, got %g", a)
	}
}

func TestScaling(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	S := Scaling(2, 3)
	if !S.Transform(P(1, 1)).Equal(P(2, 3)) {
		t.Errorf("Expected (1,1) scaled to be (2,3), is %v", S.Transform(P(1, 1)))
	}
}

func TestCombineOrder(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	// scale first, then translate: (1,0) -> (2,0) -> (3,1)
	T := Scaling(2, 2).Combine(Translation(P(1, 1)))
	if !T.Transform(P(1, 0)).Equal(P(3, 1)) {
		t.Errorf("Expected combined transform to yield (3,1), is %v", T.Transform(P(1, 0)))
	}
}
