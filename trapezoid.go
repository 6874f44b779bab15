package sweep

// trapezoid is the region swept by two lines over one y interval:
//
//	y1    --------
//	     /       /
//	    /       /
//	   /       /
//	y0 --------
//	  x0 x1   x2 x3
//
// The left edge runs from (x0, y0) to (x1, y1), the right edge from
// (x2, y0) to (x3, y1).
type trapezoid struct {
	y0, y1         float64
	x0, x1, x2, x3 float64
}

// trapezoidBetween builds the trapezoid bounded left and right by two
// lines over the interval [y0, y1].
func trapezoidBetween(y0, y1 float64, l0, l1 Line) trapezoid {
	return trapezoid{
		y0: y0, y1: y1,
		x0: l0.XAt(y0), x1: l0.XAt(y1),
		x2: l1.XAt(y0), x3: l1.XAt(y1),
	}
}

// area returns the signed area of the trapezoid.
func (t trapezoid) area() float64 {
	return (t.y1 - t.y0) * (t.x2 + t.x3 - t.x0 - t.x1) * 0.5
}

// pixelCoverage returns the intersection area of the trapezoid with the
// unit-width pixel column [x, x+1]. The corners of the trapezoid must
// be normalized so that x0 <= x1 and x2 <= x3.
//
// The area starts from the full column height, assuming the column lies
// strictly between the edges, and is corrected by adding or subtracting
// sub-trapezoid areas for every way a pixel boundary can fall inside an
// edge's x range.
func (t trapezoid) pixelCoverage(x int) float64 {
	y0 := t.y0
	y1 := t.y1
	x0 := t.x0
	x1 := t.x1
	x2 := t.x2
	x3 := t.x3
	x4 := float64(x)
	x5 := float64(x + 1)

	// Calculate the area assuming x4 >= x1 && x5 <= x2.
	area := y1 - y0

	// Correct it if the assumption is wrong.
	if x4 < x1 {
		l0 := LineThrough(Pt(x0, y0), Pt(x1, y1))
		if x4 < x0 {
			area -= trapezoid{y0: y0, y1: y1, x0: x4, x1: x4, x2: x0, x3: x1}.area()
		} else {
			iy := intersectY(l0, vertical(x4))
			area -= trapezoid{y0: iy, y1: y1, x0: x4, x1: x4, x2: x4, x3: x1}.area()
		}
		if x5 < x1 {
			iy := intersectY(l0, vertical(x5))
			area += trapezoid{y0: iy, y1: y1, x0: x5, x1: x5, x2: x5, x3: x1}.area()
		}
	}
	if x5 > x2 {
		l1 := LineThrough(Pt(x2, y0), Pt(x3, y1))
		if x5 > x3 {
			area -= trapezoid{y0: y0, y1: y1, x0: x2, x1: x3, x2: x5, x3: x5}.area()
		} else {
			iy := intersectY(l1, vertical(x5))
			area -= trapezoid{y0: y0, y1: iy, x0: x2, x1: x5, x2: x5, x3: x5}.area()
		}
		if x4 > x2 {
			iy := intersectY(l1, vertical(x4))
			area += trapezoid{y0: y0, y1: iy, x0: x2, x1: x4, x2: x4, x3: x4}.area()
		}
	}

	return area
}
