package polygon

import (
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"

	geom "github.com/Lerocko/fractal-spiro-paint"
)

func TestBuilder(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	pg := NullPolygon().Knot(geom.P(0, 0)).Knot(geom.P(1, 3)).Knot(geom.P(3, 0)).Cycle()
	L().Infof("pg = %s", AsString(pg))
	if pg.N() != 3 {
		t.Fail()
	}
}

func TestBox(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	box := Box(geom.P(0, 5), geom.P(4, 1))
	L().Infof("box = %s", AsString(box))
	if box.N() != 4 {
		t.Fail()
	}
}

func TestRegular(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	hexagon := Regular(geom.P(10, 10), 5, 6)
	if hexagon.N() != 6 {
		t.Fatalf("Expected 6 corners, got %d", hexagon.N())
	}
	// corner 0 sits straight above the center
	if !hexagon.Z(0).Equal(geom.P(10, 5)) {
		t.Errorf("Expected corner 0 at (10,5), got %v", hexagon.Z(0))
	}
	for i := 0; i < hexagon.N(); i++ {
		if d := hexagon.Z(i).Dist(geom.P(10, 10)); !geom.Is0(d - 5) {
			t.Errorf("Corner %d not on the circle: distance %g", i, d)
		}
	}
}

func TestRegularDegenerate(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	if pg := Regular(geom.Origin, 5, 2); pg.N() != 0 {
		t.Errorf("Expected empty polygon for 2 corners, got %d", pg.N())
	}
	if pg := Regular(geom.Origin, 0, 5); pg.N() != 0 {
		t.Errorf("Expected empty polygon for radius 0, got %d", pg.N())
	}
}

func TestToPolyline(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	pl := Regular(geom.Origin, 3, 5).ToPolyline()
	if !pl.IsCycle() || pl.N() != 5 {
		t.Errorf("Expected cyclic 5-knot polyline, got %d knots", pl.N())
	}
}

func TestUnionOverlapping(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	a := Box(geom.P(0, 2), geom.P(2, 0))
	b := Box(geom.P(1, 3), geom.P(3, 1))
	union := a.Union(b)
	if len(union) != 1 {
		t.Fatalf("Expected union of overlapping boxes to be one contour, got %d", len(union))
	}
	L().Infof("union = %s", AsString(union[0]))
	if union[0].N() < 6 {
		t.Errorf("Expected L-shaped union contour, got %d corners", union[0].N())
	}
}

func TestUnionDisjoint(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	a := Box(geom.P(0, 1), geom.P(1, 0))
	b := Box(geom.P(5, 1), geom.P(6, 0))
	union := a.Union(b)
	if len(union) != 2 {
		t.Fatalf("Expected 2 disjoint contours, got %d", len(union))
	}
}

func TestIntersect(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	a := Box(geom.P(0, 2), geom.P(2, 0))
	b := Box(geom.P(1, 3), geom.P(3, 1))
	section := a.Intersect(b)
	if len(section) != 1 || section[0].N() != 4 {
		t.Fatalf("Expected one quadrilateral intersection, got %v", section)
	}
}
