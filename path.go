package sweep

import "math"

// FlattenTolerance is the maximum distance between a curve and its
// polyline approximation.
const FlattenTolerance = 0.1

// maxFlattenDepth caps curve subdivision. Pathological control points
// could otherwise recurse without bound before satisfying the flatness
// test; beyond the cap the remaining curve is emitted as a straight
// line.
const maxFlattenDepth = 16

// subpath is a run of connected points. Curves are flattened into the
// point list as they are appended, so by the time a subpath reaches the
// scene it is purely polygonal.
type subpath struct {
	points []Point
	closed bool
}

// Path accumulates move/line/curve/arc commands into subpaths.
// Curves are flattened to line segments within FlattenTolerance at
// append time.
type Path struct {
	subpaths []subpath
	start    Point // starting point of current subpath
	current  Point // current point
}

// NewPath creates a new empty path.
func NewPath() *Path {
	return &Path{}
}

// MoveTo starts a new subpath at the given position.
func (p *Path) MoveTo(x, y float64) {
	pt := Pt(x, y)
	p.subpaths = append(p.subpaths, subpath{points: []Point{pt}})
	p.start = pt
	p.current = pt
}

// active returns the subpath accepting points, implicitly starting one
// at the current point when the path is empty or just closed.
func (p *Path) active() *subpath {
	if len(p.subpaths) == 0 || p.subpaths[len(p.subpaths)-1].closed {
		p.subpaths = append(p.subpaths, subpath{points: []Point{p.current}})
		p.start = p.current
	}
	return &p.subpaths[len(p.subpaths)-1]
}

// LineTo draws a line to a position.
func (p *Path) LineTo(x, y float64) {
	pt := Pt(x, y)
	sp := p.active()
	sp.points = append(sp.points, pt)
	p.current = pt
}

// CubicTo draws a cubic Bezier curve to (x, y) with control points
// (c1x, c1y) and (c2x, c2y).
func (p *Path) CubicTo(c1x, c1y, c2x, c2y, x, y float64) {
	sp := p.active()
	flattenCubic(p.current, Pt(c1x, c1y), Pt(c2x, c2y), Pt(x, y), 0, &sp.points)
	p.current = Pt(x, y)
}

// QuadraticTo draws a quadratic Bezier curve to (x, y) with control
// point (cx, cy). The quadratic is degree-elevated to an exactly
// equivalent cubic.
func (p *Path) QuadraticTo(cx, cy, x, y float64) {
	c := Pt(cx, cy)
	c1 := p.current.Add(c.Sub(p.current).Mul(2.0 / 3.0))
	end := Pt(x, y)
	c2 := end.Add(c.Sub(end).Mul(2.0 / 3.0))
	p.CubicTo(c1.X, c1.Y, c2.X, c2.Y, x, y)
}

// Close closes the current subpath. The closing edge back to the
// subpath's first point is implied; the scene appends it when the path
// is filled or stroked.
func (p *Path) Close() {
	if len(p.subpaths) == 0 {
		return
	}
	p.subpaths[len(p.subpaths)-1].closed = true
	p.current = p.start
}

// CurrentPoint returns the current point.
func (p *Path) CurrentPoint() Point {
	return p.current
}

// IsEmpty returns true if the path has no subpaths.
func (p *Path) IsEmpty() bool {
	return len(p.subpaths) == 0
}

// Transform returns a copy of the path with all points transformed.
func (p *Path) Transform(m Matrix) *Path {
	result := &Path{
		subpaths: make([]subpath, len(p.subpaths)),
		start:    m.TransformPoint(p.start),
		current:  m.TransformPoint(p.current),
	}
	for i, sp := range p.subpaths {
		points := make([]Point, len(sp.points))
		for j, pt := range sp.points {
			points[j] = m.TransformPoint(pt)
		}
		result.subpaths[i] = subpath{points: points, closed: sp.closed}
	}
	return result
}

// flattenCubic subdivides a cubic Bezier at the midpoint until both
// control points are within FlattenTolerance of the chord, appending
// the resulting polyline (excluding p0) to points.
func flattenCubic(p0, p1, p2, p3 Point, depth int, points *[]Point) {
	if depth >= maxFlattenDepth || cubicIsFlat(p0, p1, p2, p3) {
		*points = append(*points, p3)
		return
	}

	// De Casteljau midpoint split.
	p01 := p0.Lerp(p1, 0.5)
	p12 := p1.Lerp(p2, 0.5)
	p23 := p2.Lerp(p3, 0.5)
	p012 := p01.Lerp(p12, 0.5)
	p123 := p12.Lerp(p23, 0.5)
	mid := p012.Lerp(p123, 0.5)

	flattenCubic(p0, p01, p012, mid, depth+1, points)
	flattenCubic(mid, p123, p23, p3, depth+1, points)
}

// cubicIsFlat reports whether the maximum squared perpendicular
// distance from the two interior control points to the chord p0-p3 is
// within the squared tolerance.
func cubicIsFlat(p0, p1, p2, p3 Point) bool {
	const tolSq = FlattenTolerance * FlattenTolerance

	chord := p3.Sub(p0)
	chordSq := chord.LengthSquared()
	if chordSq == 0 {
		// Degenerate chord: measure control point offsets directly.
		return p1.Sub(p0).LengthSquared() <= tolSq &&
			p2.Sub(p0).LengthSquared() <= tolSq
	}

	d1 := chord.Cross(p1.Sub(p0))
	d2 := chord.Cross(p2.Sub(p0))
	maxSq := math.Max(d1*d1, d2*d2)
	return maxSq <= tolSq*chordSq
}
