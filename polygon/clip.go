package polygon

import (
	polyclip "github.com/akavel/polyclip-go"

	geom "github.com/Lerocko/fractal-spiro-paint"
)

// Union returns the polygons covering the area of pg or other.
func (pg Polygon) Union(other Polygon) []Polygon {
	return pg.construct(polyclip.UNION, other)
}

// Intersect returns the polygons covering the area of both pg and other.
func (pg Polygon) Intersect(other Polygon) []Polygon {
	return pg.construct(polyclip.INTERSECTION, other)
}

// Subtract returns the polygons covering the area of pg without other.
func (pg Polygon) Subtract(other Polygon) []Polygon {
	return pg.construct(polyclip.DIFFERENCE, other)
}

// Xor returns the polygons covering the area of exactly one of pg and other.
func (pg Polygon) Xor(other Polygon) []Polygon {
	return pg.construct(polyclip.XOR, other)
}

// Boolean operations may split or merge shapes, so the result is a list
// of disjoint contours.
func (pg Polygon) construct(op polyclip.Op, other Polygon) []Polygon {
	result := pg.clipShape().Construct(op, other.clipShape())
	L().Debugf("clip op %v: %d contour(s)", op, len(result))
	return fromClipShape(result)
}

func (pg Polygon) clipShape() polyclip.Polygon {
	contour := make(polyclip.Contour, 0, pg.N())
	for _, p := range pg.knots {
		contour = append(contour, polyclip.Point{X: p.X(), Y: p.Y()})
	}
	return polyclip.Polygon{contour}
}

func fromClipShape(cp polyclip.Polygon) []Polygon {
	polygons := make([]Polygon, 0, len(cp))
	for _, contour := range cp {
		pg := NullPolygon()
		for _, p := range contour {
			pg = pg.Knot(geom.P(p.X, p.Y))
		}
		polygons = append(polygons, pg.Cycle())
	}
	return polygons
}
