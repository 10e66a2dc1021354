// Package polygon provides closed 2D shapes: construction of boxes and
// regular n-gons, a bridge to cyclic polylines, and boolean set
// operations between polygons.
package polygon

import (
	"fmt"
	"math"

	"github.com/npillmayer/schuko/tracing"

	geom "github.com/Lerocko/fractal-spiro-paint"
	"github.com/Lerocko/fractal-spiro-paint/polyline"
)

// L returns the tracer with key 'graphics'.
func L() tracing.Trace {
	return tracing.Select("graphics")
}

// Polygon is a closed shape given by its corner knots. The last knot
// implicitly connects back to the first one.
type Polygon struct {
	knots []geom.Pair
}

// NullPolygon creates an empty polygon, to be extended by subsequent
// builder calls:
//
//	pg := NullPolygon().Knot(geom.P(0, 0)).Knot(geom.P(1, 3)).Knot(geom.P(3, 0)).Cycle()
func NullPolygon() Polygon {
	return Polygon{}
}

// Knot adds a corner to a polygon. Part of builder functionality.
func (pg Polygon) Knot(p geom.Pair) Polygon {
	pg.knots = append(pg.knots, p)
	return pg
}

// Cycle finishes a polygon. Polygons are always closed; Cycle is the
// builder terminator. Part of builder functionality.
func (pg Polygon) Cycle() Polygon {
	return pg
}

// N returns the number of corners.
func (pg Polygon) N() int {
	return len(pg.knots)
}

// Z returns the corner at position (i mod N).
func (pg Polygon) Z(i int) geom.Pair {
	n := pg.N()
	if i < 0 || i >= n {
		i = ((i % n) + n) % n
	}
	return pg.knots[i]
}

// Box creates a rectangle from its top-left and bottom-right corners.
func Box(topleft, bottomright geom.Pair) Polygon {
	return NullPolygon().
		Knot(topleft).
		Knot(geom.P(bottomright.X(), topleft.Y())).
		Knot(bottomright).
		Knot(geom.P(topleft.X(), bottomright.Y())).
		Cycle()
}

// Regular creates a regular n-gon inscribed in the circle around center,
// with corner 0 straight above the center. Fewer than 3 corners or a
// non-positive radius yield an empty polygon.
func Regular(center geom.Pair, radius float64, n int) Polygon {
	if n < 3 || radius <= 0 {
		L().Infof("degenerate regular polygon: %d corners, radius %g", n, radius)
		return NullPolygon()
	}
	pg := NullPolygon()
	step := 2 * math.Pi / float64(n)
	for i := 0; i < n; i++ {
		angle := float64(i)*step - math.Pi/2
		pg = pg.Knot(center + geom.P(radius*math.Cos(angle), radius*math.Sin(angle)))
	}
	return pg.Cycle()
}

// ToPolyline converts a polygon into a cyclic polyline, e.g. for use as a
// base shape in pattern substitution.
func (pg Polygon) ToPolyline() *polyline.Polyline {
	return polyline.FromPoints(pg.knots, true)
}

// AsString returns a polygon as a (debugging) string.
//
// Example, a triangle:
//
//	(0,0) -- (1,3) -- (3,0) -- cycle
func AsString(pg Polygon) string {
	var s string
	for i := 0; i < pg.N(); i++ {
		if i > 0 {
			s += " -- "
		}
		s += fmt.Sprintf("%v", pg.Z(i))
	}
	s += " -- cycle"
	return s
}
