// Package fractal implements the pattern-substitution engine: every
// straight segment of one or more base polylines is replaced by a
// length- and orientation-matched copy of a unit-normalized template,
// repeated over a caller-chosen number of rounds.
package fractal

import (
	"errors"

	"github.com/npillmayer/schuko/tracing"

	geom "github.com/Lerocko/fractal-spiro-paint"
	"github.com/Lerocko/fractal-spiro-paint/polyline"
)

// tracer writes to trace with key 'fractal'
func tracer() tracing.Trace {
	return tracing.Select("fractal")
}

// ErrNegativeDepth indicates a negative substitution round count.
var ErrNegativeDepth = errors.New("substitution depth must not be negative")

// Engine substitutes a pattern into the segments of base polylines.
// An engine is stateless apart from its construction arguments; Generate
// may be called repeatedly and concurrently.
type Engine struct {
	pattern *Pattern
	bases   []*polyline.Polyline
}

// NewEngine creates an engine for a pattern and one or more base polylines.
// Each base carries its own cyclic flag. A nil pattern is treated like a
// degenerate one.
func NewEngine(pattern *Pattern, bases ...*polyline.Polyline) *Engine {
	if pattern == nil {
		pattern = &Pattern{degenerate: true}
	}
	return &Engine{
		pattern: pattern,
		bases:   bases,
	}
}

// Generate runs depth substitution rounds over every base polyline and
// returns the resulting polylines, in base order. Depth 0 returns copies
// of the bases unchanged. Bases with fewer than 2 knots are skipped and
// omitted from the result.
//
// Knot counts grow with roughly (m−1)^depth per segment for an m-knot
// pattern; bounding depth is the caller's responsibility.
func (eng *Engine) Generate(depth int) ([]*polyline.Polyline, error) {
	if depth < 0 {
		return nil, ErrNegativeDepth
	}
	out := make([]*polyline.Polyline, 0, len(eng.bases))
	for i, base := range eng.bases {
		if base == nil || base.N() < 2 {
			tracer().Debugf("skipping degenerate base %d", i)
			continue
		}
		pts := base.Points()
		for round := 0; round < depth; round++ {
			pts = eng.substitute(pts, base.IsCycle())
		}
		tracer().Debugf("base %d: %d knots became %d after %d round(s)",
			i, base.N(), len(pts), depth)
		out = append(out, polyline.FromPoints(pts, base.IsCycle()))
	}
	return out, nil
}

// One substitution round: replace every segment with the mapped pattern.
// For every segment after the first, the leading knot duplicates the
// previous segment's trailing knot and is dropped; for a cyclic polyline
// the wraparound segment's trailing knot duplicates knot 0 and is
// dropped as well.
func (eng *Engine) substitute(pts []geom.Pair, cyclic bool) []geom.Pair {
	segments := len(pts) - 1
	if cyclic {
		segments = len(pts)
	}
	m := eng.pattern.N()
	if m < 2 {
		m = 2
	}
	next := make([]geom.Pair, 0, segments*(m-1)+1)
	for i := 0; i < segments; i++ {
		a := pts[i]
		b := pts[(i+1)%len(pts)]
		piece := eng.pattern.Apply(a, b)
		if i > 0 {
			piece = piece[1:]
		}
		next = append(next, piece...)
	}
	if cyclic {
		next = next[:len(next)-1]
	}
	return next
}
