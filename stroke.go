package sweep

// Stroke outlines are built by offsetting each directed subpath edge by
// half the stroke width along its normal. A closed subpath yields two
// independent closed contours (one per side, wound in opposite
// directions) so that nonzero winding fills only the band between them.
// An open subpath yields a single capsule contour: the forward offset
// concatenated with the reverse offset.
//
// Joins and caps are not first-class; they emerge from the
// nonzero-winding self-union of the offset contours. This is a known
// approximation that degrades for very sharp angles or segments much
// shorter than the stroke width.

// strokeSubpath returns the outline contours of one stroked subpath.
// Each contour is a closed polygon.
func strokeSubpath(points []Point, closed bool, width float64) [][]Point {
	if len(points) < 2 {
		return nil
	}
	offset := width / 2

	if closed {
		outer := offsetPolyline(points, true, offset)
		inner := offsetPolyline(reversePoints(points), true, offset)
		var contours [][]Point
		if len(outer) > 0 {
			contours = append(contours, outer)
		}
		if len(inner) > 0 {
			contours = append(contours, inner)
		}
		return contours
	}

	capsule := offsetPolyline(points, false, offset)
	capsule = append(capsule, offsetPolyline(reversePoints(points), false, offset)...)
	if len(capsule) == 0 {
		return nil
	}
	return [][]Point{capsule}
}

// offsetPolyline offsets every edge of the polyline by the given
// distance along its left-hand normal, emitting both endpoints of each
// offset edge. Zero-length edges have no direction and are skipped.
func offsetPolyline(points []Point, closed bool, offset float64) []Point {
	var result []Point
	edges := len(points) - 1
	if closed {
		edges = len(points)
	}
	for i := 0; i < edges; i++ {
		p0 := points[i]
		p1 := points[(i+1)%len(points)]
		d := p1.Sub(p0)
		if d.LengthSquared() == 0 {
			continue
		}
		// Left-hand normal of the edge direction (y grows downward).
		n := Point{X: d.Y, Y: -d.X}.Normalize().Mul(offset)
		result = append(result, p0.Add(n), p1.Add(n))
	}
	return result
}

// reversePoints returns a reversed copy of the point slice.
func reversePoints(points []Point) []Point {
	result := make([]Point, len(points))
	for i, p := range points {
		result[len(points)-1-i] = p
	}
	return result
}
