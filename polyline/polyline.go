// Package polyline provides straight-segment paths over 2D points.
//
// A polyline is an ordered sequence of knots, either open or cyclic.
// For cyclic polylines the last knot implicitly connects back to the
// first one (the wraparound segment); the first knot is not repeated
// as a terminal knot.
//
// To construct a polyline, start with NullPolyline(), which creates an
// empty path, and then extend it:
//
//	pl := NullPolyline().Knot(geom.P(0, 0)).Knot(geom.P(1, 3)).Knot(geom.P(3, 0)).Cycle()
//
// Calling Cycle() or End() returns the finished polyline.
package polyline

import (
	"errors"
	"fmt"
	"math"

	"github.com/npillmayer/schuko/tracing"

	geom "github.com/Lerocko/fractal-spiro-paint"
)

// tracer writes to trace with key 'graphics'
func tracer() tracing.Trace {
	return tracing.Select("graphics")
}

var (
	// ErrOddCoordinateCount indicates a flat coordinate list with an odd length.
	ErrOddCoordinateCount = errors.New("flat coordinate list must have even length")
	// ErrInvalidCoordinate indicates a coordinate containing NaN/Inf.
	ErrInvalidCoordinate = errors.New("coordinate is not a finite number")
)

// Polyline is a sequence of knots connected by straight segments,
// open or cyclic.
type Polyline struct {
	points []geom.Pair // knot i
	closed bool        // is this polyline cyclic ?
}

// NullPolyline creates an empty polyline, to be extended by subsequent
// builder calls.
func NullPolyline() *Polyline {
	return &Polyline{}
}

// FromPoints creates a polyline from a knot sequence. The slice is copied.
func FromPoints(points []geom.Pair, closed bool) *Polyline {
	pl := &Polyline{
		points: make([]geom.Pair, len(points)),
		closed: closed,
	}
	copy(pl.points, points)
	return pl
}

// FromFlat creates a polyline from a flat coordinate list
// [x0,y0,x1,y1,…], the exchange format of the surrounding tool layer.
func FromFlat(coords []float64, closed bool) (*Polyline, error) {
	if len(coords)%2 != 0 {
		return nil, fmt.Errorf("%w: got %d values", ErrOddCoordinateCount, len(coords))
	}
	pl := &Polyline{
		points: make([]geom.Pair, 0, len(coords)/2),
		closed: closed,
	}
	for i := 0; i < len(coords); i += 2 {
		x, y := coords[i], coords[i+1]
		if math.IsNaN(x) || math.IsNaN(y) || math.IsInf(x, 0) || math.IsInf(y, 0) {
			tracer().Errorf("rejecting flat coordinate pair %d: (%g,%g)", i/2, x, y)
			return nil, fmt.Errorf("%w at knot %d", ErrInvalidCoordinate, i/2)
		}
		pl.points = append(pl.points, geom.P(x, y))
	}
	return pl, nil
}

// Knot adds a knot to a polyline. Part of builder functionality.
func (pl *Polyline) Knot(p geom.Pair) *Polyline {
	pl.points = append(pl.points, p)
	return pl
}

// End an open polyline. Part of builder functionality.
func (pl *Polyline) End() *Polyline {
	return pl
}

// Cycle closes a cyclic polyline. Part of builder functionality.
func (pl *Polyline) Cycle() *Polyline {
	pl.closed = true
	return pl
}

// IsCycle is a predicate: is this polyline cyclic?
func (pl *Polyline) IsCycle() bool {
	return pl.closed
}

// N returns the length of this polyline (knot count). For cyclic polylines,
// the wraparound knot does not count twice.
func (pl *Polyline) N() int {
	return len(pl.points)
}

// Z returns the knot at position (i mod N).
func (pl *Polyline) Z(i int) geom.Pair {
	n := pl.N()
	if i < 0 || i >= n {
		i = ((i % n) + n) % n
	}
	return pl.points[i]
}

// Points returns a copy of the knot sequence.
func (pl *Polyline) Points() []geom.Pair {
	pts := make([]geom.Pair, len(pl.points))
	copy(pts, pl.points)
	return pts
}

// SegmentCount returns the number of straight segments: N−1 for an open
// polyline, N for a cyclic one (including the wraparound segment).
// A degenerate polyline with fewer than 2 knots has no segments.
func (pl *Polyline) SegmentCount() int {
	n := pl.N()
	if n < 2 {
		return 0
	}
	if pl.closed {
		return n
	}
	return n - 1
}

// Segment returns the endpoints of segment i in path order. For a cyclic
// polyline, segment N−1 is the wraparound segment back to knot 0.
func (pl *Polyline) Segment(i int) (geom.Pair, geom.Pair) {
	return pl.Z(i), pl.Z(i + 1)
}

// Flat flattens the knot sequence to [x0,y0,x1,y1,…], the exchange format
// of the surrounding tool layer.
func (pl *Polyline) Flat() []float64 {
	coords := make([]float64, 0, 2*len(pl.points))
	for _, p := range pl.points {
		coords = append(coords, p.X(), p.Y())
	}
	return coords
}

// AsString returns a polyline as a (debugging) string, with "--" for the
// straight joins between knots.
//
// Example, a cyclic triangle:
//
//	(0,0) -- (1,3) -- (3,0) -- cycle
func AsString(pl *Polyline) string {
	var s string
	for i := 0; i < pl.N(); i++ {
		if i > 0 {
			s += " -- "
		}
		s += fmt.Sprintf("%v", pl.Z(i))
	}
	if pl.IsCycle() {
		s += " -- cycle"
	}
	return s
}
