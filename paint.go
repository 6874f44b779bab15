package sweep

// Paint produces a premultiplied color for a query point. The point is
// in whatever coordinate space the paint was constructed for: device
// space for plain paints, paint-local space when wrapped in a
// TransformPaint.
//
// Evaluate must be a pure function of its inputs. Paints are never
// mutated after construction, so the same paint may safely back several
// shapes and wrappers at once.
type Paint interface {
	Evaluate(p Point) RGBA
}

// SolidPaint evaluates to a single color everywhere.
type SolidPaint struct {
	color RGBA
}

// NewSolidPaint creates a solid paint from a non-premultiplied color.
// The color is premultiplied once here, not per evaluation.
func NewSolidPaint(c RGBA) *SolidPaint {
	return &SolidPaint{color: c.Premultiply()}
}

// Evaluate implements the Paint interface.
func (s *SolidPaint) Evaluate(Point) RGBA {
	return s.color
}

// OpacityPaint wraps another paint and scales its output uniformly.
// Scaling a premultiplied color by the opacity scales both the color
// channels and alpha, which is exactly group opacity.
type OpacityPaint struct {
	paint   Paint
	opacity float64
}

// NewOpacityPaint wraps a paint with an opacity in [0, 1].
func NewOpacityPaint(paint Paint, opacity float64) *OpacityPaint {
	return &OpacityPaint{paint: paint, opacity: opacity}
}

// Evaluate implements the Paint interface.
func (o *OpacityPaint) Evaluate(p Point) RGBA {
	return o.paint.Evaluate(p).Scale(o.opacity)
}

// TransformPaint wraps another paint so it can be defined in a local
// coordinate space independent of the shape's placement. The forward
// transform is inverted once at construction; each query point is mapped
// back into the wrapped paint's space before delegating.
type TransformPaint struct {
	paint   Paint
	inverse Matrix
}

// NewTransformPaint wraps a paint with the forward transform m.
func NewTransformPaint(paint Paint, m Matrix) *TransformPaint {
	return &TransformPaint{paint: paint, inverse: m.Invert()}
}

// Evaluate implements the Paint interface.
func (t *TransformPaint) Evaluate(p Point) RGBA {
	return t.paint.Evaluate(t.inverse.TransformPoint(p))
}
