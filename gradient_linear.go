package sweep

// LinearGradientPaint is a linear color transition between two points.
//
// The query point is projected onto the axis from start to end:
//
//	t = dot(point-start, end-start) / dot(end-start, end-start)
//
// The direction vector is pre-divided by its squared length at
// construction, so evaluation is a subtraction and a dot product.
type LinearGradientPaint struct {
	start    Point
	scaled   Point // (end-start) / |end-start|^2
	gradient *Gradient
}

// NewLinearGradientPaint creates a linear gradient paint from start to
// end. A zero-length axis degenerates to the first stop's color.
func NewLinearGradientPaint(start, end Point, gradient *Gradient) *LinearGradientPaint {
	d := end.Sub(start)
	lengthSq := d.Dot(d)
	scaled := Point{}
	if lengthSq != 0 {
		scaled = d.Div(lengthSq)
	}
	return &LinearGradientPaint{start: start, scaled: scaled, gradient: gradient}
}

// Evaluate implements the Paint interface.
func (g *LinearGradientPaint) Evaluate(p Point) RGBA {
	return g.gradient.evaluate(g.scaled.Dot(p.Sub(g.start)))
}
