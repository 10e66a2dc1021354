// Package spiro samples hypotrochoid curves: the track of a pen mounted
// at distance d from the center of a circle of radius r rolling inside a
// fixed circle of radius R.
package spiro

import (
	"math"

	"github.com/npillmayer/schuko/tracing"

	geom "github.com/Lerocko/fractal-spiro-paint"
)

// tracer writes to trace with key 'spiro'
func tracer() tracing.Trace {
	return tracing.Select("spiro")
}

// DefaultStep is the fallback angular step in degrees.
const DefaultStep = 5.0

// maxTurns bounds the number of full rotations for pathological radius
// ratios.
const maxTurns = 50

// Wheels holds the spirograph parameters: the fixed circle, the rolling
// circle, and the pen distance d, derived from the rolling-circle center
// and the pen point.
type Wheels struct {
	fixedCenter   geom.Pair
	rollingCenter geom.Pair
	R             float64 // fixed-circle radius
	r             float64 // rolling-circle radius
	d             float64 // pen distance from the rolling-circle center
}

// NewWheels derives spirograph parameters from the two circle definitions
// and a pen point. Non-positive radii or pen distance are flagged but
// construction succeeds; Generate then yields an empty curve.
func NewWheels(fixedCenter geom.Pair, R float64, rollingCenter geom.Pair, r float64, pen geom.Pair) *Wheels {
	d := rollingCenter.Dist(pen)
	if R <= 0 || r <= 0 || d <= 0 {
		tracer().Infof("degenerate spirograph parameters R=%g r=%g d=%g", R, r, d)
	}
	return &Wheels{
		fixedCenter:   fixedCenter,
		rollingCenter: rollingCenter,
		R:             R,
		r:             r,
		d:             d,
	}
}

// Params returns the derived parameters (R, r, d) for caller inspection.
func (w *Wheels) Params() (float64, float64, float64) {
	return w.R, w.r, w.d
}

// Generate samples the hypotrochoid over enough full rotations for the
// curve to close, stepping the rolling angle by stepDegrees. A step of 0
// or less falls back to DefaultStep. The returned knot sequence is not
// implicitly closed. Degenerate parameters yield an empty result.
func (w *Wheels) Generate(stepDegrees float64) []geom.Pair {
	if stepDegrees <= 0 {
		stepDegrees = DefaultStep
	}
	if w.R <= 0 || w.r <= 0 || w.d <= 0 {
		return nil
	}
	// very small radii lose precision in the ratio computations below;
	// sample on upscaled wheels and scale the curve back down
	R, r, d := w.R, w.r, w.d
	scale := rescale(math.Min(R, math.Min(r, d)))
	R *= scale
	r *= scale
	d *= scale
	k := r / R
	l := d / r
	if geom.Is0(k) || geom.Is0(l) {
		return nil
	}
	q := turns(R, r)
	tracer().Debugf("sampling %d rotation(s) of R=%g r=%g d=%g, step %g°", q, R, r, d, stepDegrees)
	limit := 360 * float64(q)
	points := make([]geom.Pair, 0, int(limit/stepDegrees)+1)
	for theta := 0.0; theta <= limit; theta += stepDegrees {
		t := theta * geom.Deg2Rad
		x := R * ((1-k)*math.Cos(t) + l*k*math.Cos((1-k)/k*t))
		y := R * ((1-k)*math.Sin(t) - l*k*math.Sin((1-k)/k*t))
		points = append(points, geom.P(x/scale, y/scale)+w.fixedCenter)
	}
	return points
}

// rescale returns the power-of-ten factor that lifts the smallest positive
// parameter above 1.0, or 1 if no lift is needed.
func rescale(smallest float64) float64 {
	scale := 1.0
	if smallest <= 0 {
		return scale
	}
	for smallest*scale < 1 {
		scale *= 10
	}
	return scale
}

// turns computes the number of full rotations after which the curve
// closes: r/gcd(R−r, r) on the rounded radii, clamped to maxTurns.
func turns(R, r float64) int {
	numerator := int(math.Round(math.Abs(R - r)))
	denominator := int(math.Round(r))
	g := gcd(numerator, denominator)
	if g == 0 {
		return 1
	}
	q := denominator / g
	if q < 1 {
		q = 1
	}
	if q > maxTurns {
		tracer().Debugf("clamping %d rotations to %d", q, maxTurns)
		q = maxTurns
	}
	return q
}

func gcd(a, b int) int {
	for b != 0 {
		a, b = b, a%b
	}
	return a
}
