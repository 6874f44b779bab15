package sweep

// Line is a non-horizontal line parametrized by the vertical axis:
//
//	x = M*y + X0
//
// The sweep proceeds along y, and every non-horizontal segment has a
// well-defined line of this form. Two lines intersect at a unique y
// unless their slopes are equal.
type Line struct {
	M  float64 // dx/dy slope
	X0 float64 // x at y=0
}

// LineThrough returns the line through two points with distinct y
// coordinates.
func LineThrough(p0, p1 Point) Line {
	m := (p1.X - p0.X) / (p1.Y - p0.Y)
	return Line{M: m, X0: p0.X - m*p0.Y}
}

// vertical returns the vertical line x = x0.
func vertical(x float64) Line {
	return Line{M: 0, X0: x}
}

// XAt returns the x coordinate of the line at the given y.
func (l Line) XAt(y float64) float64 {
	return l.M*y + l.X0
}

// intersectY returns the y coordinate where two lines cross.
// The caller must ensure the slopes differ; parallel lines never cross.
func intersectY(l0, l1 Line) float64 {
	return (l1.X0 - l0.X0) / (l0.M - l1.M)
}

// Segment is a directed line segment spanning Y0 to Y1 on a Line.
// Y0 and Y1 are always distinct: a segment connecting two points with
// equal y contributes nothing to a y-sweep and must be dropped by the
// caller before construction.
type Segment struct {
	Y0, Y1 float64
	Line   Line
}

// SegmentBetween builds the segment connecting two points. The segment
// keeps the direction implied by the argument order; p0.Y must differ
// from p1.Y.
func SegmentBetween(p0, p1 Point) Segment {
	return Segment{Y0: p0.Y, Y1: p1.Y, Line: LineThrough(p0, p1)}
}
