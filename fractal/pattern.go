package fractal

import (
	geom "github.com/Lerocko/fractal-spiro-paint"
	"github.com/Lerocko/fractal-spiro-paint/polyline"
)

// Pattern is the unit-normalized substitution template: translated so its
// first knot is the origin, rotated so the chord from first to last knot
// lies along the positive x-axis, and scaled so that chord has length 1.
// It is derived once from a raw knot sequence and reused for every
// segment substitution.
type Pattern struct {
	unit       []geom.Pair // normalized template, unit[0]=(0,0), unit[last]=(1,0)
	degenerate bool
}

// NewPattern normalizes a raw template. A template with fewer than 2 knots,
// or whose first and last knots coincide, cannot be normalized; the pattern
// is then recorded as degenerate and every substitution passes segments
// through unchanged.
func NewPattern(points []geom.Pair) *Pattern {
	if len(points) < 2 {
		tracer().Infof("pattern with %d knots is degenerate", len(points))
		return &Pattern{degenerate: true}
	}
	first := points[0]
	chord := points[len(points)-1] - first
	length := chord.Length()
	if geom.Is0(length) {
		tracer().Infof("pattern chord has zero length, pattern is degenerate")
		return &Pattern{degenerate: true}
	}
	// translate first knot to origin, align chord with x-axis, chord length 1
	norm := geom.Translation(-first).
		Combine(geom.Rotation(-chord.Angle())).
		Combine(geom.Scaling(1/length, 1/length))
	unit := make([]geom.Pair, len(points))
	for i, p := range points {
		unit[i] = norm.Transform(p).Zap()
	}
	// pin the endpoints so transformed segments start and end exactly on
	// the segment endpoints
	unit[0] = geom.Origin
	unit[len(unit)-1] = geom.P(1, 0)
	return &Pattern{unit: unit}
}

// NewPatternFlat normalizes a raw template given as a flat coordinate list
// [x0,y0,x1,y1,…].
func NewPatternFlat(coords []float64) (*Pattern, error) {
	pl, err := polyline.FromFlat(coords, false)
	if err != nil {
		return nil, err
	}
	return NewPattern(pl.Points()), nil
}

// Degenerate is a predicate: does this pattern substitute as a no-op?
func (pat *Pattern) Degenerate() bool {
	return pat.degenerate
}

// N returns the number of template knots (0 for a degenerate pattern).
func (pat *Pattern) N() int {
	return len(pat.unit)
}

// Apply maps the template onto the segment from a to b: every template knot
// is scaled by |b−a|, rotated by the segment angle, and translated by a.
// The first returned knot is a and the last is b. Degenerate patterns and
// zero-length segments yield just [a, b].
func (pat *Pattern) Apply(a, b geom.Pair) []geom.Pair {
	length := a.Dist(b)
	if pat.degenerate || geom.Is0(length) {
		return []geom.Pair{a, b}
	}
	angle := (b - a).Angle()
	T := geom.Scaling(length, length).
		Combine(geom.Rotation(angle)).
		Combine(geom.Translation(a))
	out := make([]geom.Pair, len(pat.unit))
	for i, u := range pat.unit {
		out[i] = T.Transform(u)
	}
	// unit[0] is exactly (0,0) and unit[last] exactly (1,0), so the
	// endpoints land on a and b without rounding drift
	out[0] = a
	out[len(out)-1] = b
	return out
}
