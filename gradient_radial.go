package sweep

import "math"

// RadialGradientPaint is the two-circle SVG radial gradient: an inner
// circle around the focus with the focal radius, and an outer circle
// around the center with the outer radius.
//
// The gradient parameter t interpolates focus to center and focal
// radius to outer radius. Evaluation solves for the t whose circle
// passes exactly through the query point, which reduces to a quadratic
//
//	A*t^2 + 2*B*t + C = 0
//
// in coefficients derived from (center-focus), (focus-point), and the
// radius difference. Points with no solution lie outside the gradient's
// valid region and evaluate to transparent.
type RadialGradientPaint struct {
	center      Point
	focus       Point
	radius      float64
	focalRadius float64
	gradient    *Gradient
}

// NewRadialGradientPaint creates a radial gradient paint. The simple
// one-circle gradient is the special case focus == center with focal
// radius zero.
func NewRadialGradientPaint(center Point, radius float64, focus Point, focalRadius float64, gradient *Gradient) *RadialGradientPaint {
	return &RadialGradientPaint{
		center:      center,
		focus:       focus,
		radius:      radius,
		focalRadius: focalRadius,
		gradient:    gradient,
	}
}

// Evaluate implements the Paint interface.
func (g *RadialGradientPaint) Evaluate(p Point) RGBA {
	cd := g.center.Sub(g.focus)
	fp := g.focus.Sub(p)
	dr := g.radius - g.focalRadius

	// |p - (focus + t*cd)|^2 = (focalRadius + t*dr)^2
	a := cd.Dot(cd) - dr*dr
	b := fp.Dot(cd) - g.focalRadius*dr
	c := fp.Dot(fp) - g.focalRadius*g.focalRadius

	if a == 0 {
		// The quadratic degenerates to a linear equation.
		if b == 0 {
			return Transparent
		}
		return g.evaluateAt(-c / (2 * b))
	}

	discriminant := b*b - a*c
	if discriminant < 0 {
		return Transparent
	}
	sqrtD := math.Sqrt(discriminant)
	t0 := (-b + sqrtD) / a
	t1 := (-b - sqrtD) / a

	// Pick the branch with a non-negative interpolated radius,
	// preferring the larger parameter. Which branch that is depends on
	// whether the focal radius exceeds the outer radius.
	hi, lo := math.Max(t0, t1), math.Min(t0, t1)
	if g.focalRadius+hi*dr >= 0 {
		return g.evaluateAt(hi)
	}
	if g.focalRadius+lo*dr >= 0 {
		return g.evaluateAt(lo)
	}
	return Transparent
}

func (g *RadialGradientPaint) evaluateAt(t float64) RGBA {
	return g.gradient.evaluate(t)
}
