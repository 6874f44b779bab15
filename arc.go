package sweep

import "math"

// ArcTo draws an SVG-style elliptical arc from the current point to
// (x, y). rx and ry are the ellipse radii, rotation is the x-axis
// rotation in radians, and the large-arc and sweep flags select among
// the four candidate arcs.
//
// The endpoint parameters are converted to a center, start angle, and
// sweep angle (SVG endpoint-to-center parameterization), the arc is
// split into sub-arcs of at most 90 degrees, and each sub-arc is
// approximated by a single cubic Bezier.
func (p *Path) ArcTo(rx, ry, rotation float64, largeArc, sweep bool, x, y float64) {
	p0 := p.current
	p1 := Pt(x, y)
	if p0 == p1 {
		return
	}
	if rx == 0 || ry == 0 {
		p.LineTo(x, y)
		return
	}
	rx = math.Abs(rx)
	ry = math.Abs(ry)

	sinRot, cosRot := math.Sincos(rotation)

	// Step 1: half the vector between endpoints, in ellipse-local
	// coordinates.
	dx2 := (p0.X - p1.X) / 2
	dy2 := (p0.Y - p1.Y) / 2
	x1 := cosRot*dx2 + sinRot*dy2
	y1 := -sinRot*dx2 + cosRot*dy2

	// Step 2: scale radii up if the endpoints are too far apart for
	// any arc to reach.
	lambda := (x1*x1)/(rx*rx) + (y1*y1)/(ry*ry)
	if lambda > 1 {
		s := math.Sqrt(lambda)
		rx *= s
		ry *= s
	}

	// Step 3: center in local coordinates. The sign of the radical is
	// chosen by the large-arc and sweep flags.
	rxSq, rySq := rx*rx, ry*ry
	x1Sq, y1Sq := x1*x1, y1*y1
	radicand := (rxSq*rySq - rxSq*y1Sq - rySq*x1Sq) / (rxSq*y1Sq + rySq*x1Sq)
	if radicand < 0 {
		radicand = 0
	}
	coef := math.Sqrt(radicand)
	if largeArc == sweep {
		coef = -coef
	}
	cx1 := coef * rx * y1 / ry
	cy1 := -coef * ry * x1 / rx

	// Step 4: back to device coordinates, plus start and sweep angles.
	cx := cosRot*cx1 - sinRot*cy1 + (p0.X+p1.X)/2
	cy := sinRot*cx1 + cosRot*cy1 + (p0.Y+p1.Y)/2

	ux := (x1 - cx1) / rx
	uy := (y1 - cy1) / ry
	vx := (-x1 - cx1) / rx
	vy := (-y1 - cy1) / ry

	theta := vectorAngle(1, 0, ux, uy)
	delta := vectorAngle(ux, uy, vx, vy)
	if !sweep && delta > 0 {
		delta -= 2 * math.Pi
	} else if sweep && delta < 0 {
		delta += 2 * math.Pi
	}

	// Split into sub-arcs of at most 90 degrees, each a single cubic.
	segments := int(math.Ceil(math.Abs(delta) / (math.Pi / 2)))
	step := delta / float64(segments)
	k := 4.0 / 3.0 * math.Tan(step/4)

	pointAt := func(a float64) Point {
		sinA, cosA := math.Sincos(a)
		return Point{
			X: cx + rx*cosA*cosRot - ry*sinA*sinRot,
			Y: cy + rx*cosA*sinRot + ry*sinA*cosRot,
		}
	}
	derivativeAt := func(a float64) Point {
		sinA, cosA := math.Sincos(a)
		return Point{
			X: -rx*sinA*cosRot - ry*cosA*sinRot,
			Y: -rx*sinA*sinRot + ry*cosA*cosRot,
		}
	}

	for i := 0; i < segments; i++ {
		a1 := theta + float64(i)*step
		a2 := a1 + step
		start := pointAt(a1)
		end := pointAt(a2)
		c1 := start.Add(derivativeAt(a1).Mul(k))
		c2 := end.Sub(derivativeAt(a2).Mul(k))
		if i == segments-1 {
			// Land exactly on the requested endpoint.
			end = p1
		}
		p.CubicTo(c1.X, c1.Y, c2.X, c2.Y, end.X, end.Y)
	}
}

// vectorAngle returns the signed angle from vector u to vector v.
func vectorAngle(ux, uy, vx, vy float64) float64 {
	dot := ux*vx + uy*vy
	length := math.Sqrt((ux*ux + uy*uy) * (vx*vx + vy*vy))
	if length == 0 {
		return 0
	}
	cos := dot / length
	if cos > 1 {
		cos = 1
	} else if cos < -1 {
		cos = -1
	}
	angle := math.Acos(cos)
	if ux*vy-uy*vx < 0 {
		return -angle
	}
	return angle
}
