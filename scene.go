package sweep

// Shape is a bag of directed segments with a paint and a stacking
// index. The index equals the shape's append order in its Document and
// defines compositing: a later index paints over an earlier one.
//
// Shapes are built once by Document.Fill or Document.Stroke and never
// mutated afterwards. The paint may be shared with other shapes.
type Shape struct {
	Segments []Segment
	Paint    Paint
	Index    int
}

// Document is an ordered collection of shapes plus output dimensions.
// It is created empty, populated by Fill and Stroke calls, and consumed
// by Rasterize.
type Document struct {
	width  int
	height int
	shapes []*Shape
}

// NewDocument creates an empty document with the given output
// dimensions. Non-positive dimensions are clamped to zero, which yields
// an empty pixmap.
func NewDocument(width, height int) *Document {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	return &Document{width: width, height: height}
}

// Width returns the output width in pixels.
func (d *Document) Width() int {
	return d.width
}

// Height returns the output height in pixels.
func (d *Document) Height() int {
	return d.height
}

// Shapes returns the document's shapes in stacking order.
func (d *Document) Shapes() []*Shape {
	return d.shapes
}

// newShape appends an empty shape with the next stacking index.
func (d *Document) newShape(paint Paint) *Shape {
	s := &Shape{Paint: paint, Index: len(d.shapes)}
	d.shapes = append(d.shapes, s)
	return s
}

// appendSegment adds the directed segment from p0 to p1, dropping
// horizontal edges: a segment with equal y endpoints contributes
// nothing to a y-sweep.
func appendSegment(s *Shape, p0, p1 Point) {
	if p0.Y != p1.Y {
		s.Segments = append(s.Segments, SegmentBetween(p0, p1))
	}
}

// appendContour adds a closed polygon's edges, including the implied
// edge from the last point back to the first.
func appendContour(s *Shape, points []Point) {
	if len(points) < 2 {
		return
	}
	for i := 1; i < len(points); i++ {
		appendSegment(s, points[i-1], points[i])
	}
	appendSegment(s, points[len(points)-1], points[0])
}

// Fill appends a shape filling the path's subpaths with the paint under
// the nonzero winding rule. Open subpaths are implicitly closed.
func (d *Document) Fill(path *Path, paint Paint) {
	shape := d.newShape(paint)
	for _, sp := range path.subpaths {
		appendContour(shape, sp.points)
	}
}

// Stroke appends a shape outlining the path's subpaths with the given
// stroke width.
func (d *Document) Stroke(path *Path, width float64, paint Paint) {
	shape := d.newShape(paint)
	for _, sp := range path.subpaths {
		for _, contour := range strokeSubpath(sp.points, sp.closed, width) {
			appendContour(shape, contour)
		}
	}
}
