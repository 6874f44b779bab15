package sweep

import (
	"math"
	"testing"
)

// TestFlattenColinearCubic verifies a cubic whose control points lie on
// the chord flattens to a single straight segment without subdividing.
func TestFlattenColinearCubic(t *testing.T) {
	p := NewPath()
	p.MoveTo(0, 0)
	p.CubicTo(1, 1, 2, 2, 3, 3)

	if len(p.subpaths) != 1 {
		t.Fatalf("got %d subpaths, want 1", len(p.subpaths))
	}
	points := p.subpaths[0].points
	if len(points) != 2 {
		t.Errorf("got %d points, want 2 (start and end only)", len(points))
	}
	if points[len(points)-1] != Pt(3, 3) {
		t.Errorf("endpoint = %v, want (3, 3)", points[len(points)-1])
	}
}

// TestFlattenCurveTolerance verifies a flattened curve stays within the
// tolerance of the true curve at the subdivision points.
func TestFlattenCurveTolerance(t *testing.T) {
	p := NewPath()
	p.MoveTo(0, 0)
	p.CubicTo(0, 100, 100, 100, 100, 0)

	points := p.subpaths[0].points
	if len(points) < 8 {
		t.Fatalf("expected a strongly curved cubic to subdivide, got %d points", len(points))
	}
	// All polyline points must lie on or near the curve's convex hull:
	// for this symmetric arch, 0 <= y <= 75 and 0 <= x <= 100.
	for _, pt := range points {
		if pt.Y < -FlattenTolerance || pt.Y > 75+FlattenTolerance ||
			pt.X < -FlattenTolerance || pt.X > 100+FlattenTolerance {
			t.Errorf("point %v outside curve bounds", pt)
		}
	}
}

// TestQuadraticElevation verifies the quadratic curve ends at the
// requested endpoint and a colinear quadratic stays a straight line.
func TestQuadraticElevation(t *testing.T) {
	p := NewPath()
	p.MoveTo(0, 0)
	p.QuadraticTo(5, 5, 10, 10)

	if got := p.CurrentPoint(); got != Pt(10, 10) {
		t.Errorf("current point = %v, want (10, 10)", got)
	}
	if n := len(p.subpaths[0].points); n != 2 {
		t.Errorf("colinear quadratic produced %d points, want 2", n)
	}
}

// TestLineToAfterClose verifies a line after closing a subpath starts a
// new subpath at the current point.
func TestLineToAfterClose(t *testing.T) {
	p := NewPath()
	p.MoveTo(0, 0)
	p.LineTo(5, 0)
	p.Close()
	p.LineTo(5, 5)

	if len(p.subpaths) != 2 {
		t.Fatalf("got %d subpaths, want 2", len(p.subpaths))
	}
	if !p.subpaths[0].closed {
		t.Error("first subpath should be closed")
	}
	second := p.subpaths[1].points
	if second[0] != Pt(0, 0) || second[1] != Pt(5, 5) {
		t.Errorf("second subpath = %v, want [(0,0) (5,5)]", second)
	}
}

// TestLineToEmptyPath verifies a line on an empty path implicitly
// starts a subpath at the origin.
func TestLineToEmptyPath(t *testing.T) {
	p := NewPath()
	p.LineTo(3, 4)

	if len(p.subpaths) != 1 {
		t.Fatalf("got %d subpaths, want 1", len(p.subpaths))
	}
	points := p.subpaths[0].points
	if points[0] != Pt(0, 0) {
		t.Errorf("implicit start = %v, want origin", points[0])
	}
}

// TestArcToSemicircle verifies the arc lands exactly on the requested
// endpoint and its polyline stays on the circle.
func TestArcToSemicircle(t *testing.T) {
	p := NewPath()
	p.MoveTo(0, 0)
	p.ArcTo(5, 5, 0, false, true, 10, 0)

	if got := p.CurrentPoint(); got != Pt(10, 0) {
		t.Errorf("current point = %v, want (10, 0)", got)
	}
	points := p.subpaths[0].points
	if len(points) < 6 {
		t.Fatalf("expected a semicircle to flatten into several points, got %d", len(points))
	}
	center := Pt(5, 0)
	for _, pt := range points {
		r := pt.Distance(center)
		if math.Abs(r-5) > 0.2 {
			t.Errorf("point %v at radius %.3f, want 5 within 0.2", pt, r)
		}
	}
}

// TestArcToZeroRadius verifies a zero radius degrades to a straight
// line.
func TestArcToZeroRadius(t *testing.T) {
	p := NewPath()
	p.MoveTo(0, 0)
	p.ArcTo(0, 5, 0, false, false, 10, 0)

	points := p.subpaths[0].points
	if len(points) != 2 || points[1] != Pt(10, 0) {
		t.Errorf("got %v, want straight line to (10, 0)", points)
	}
}

// TestPathTransform verifies transforming a path maps every point.
func TestPathTransform(t *testing.T) {
	p := NewPath()
	p.MoveTo(1, 2)
	p.LineTo(3, 4)
	q := p.Transform(Translate(10, 20))

	points := q.subpaths[0].points
	if points[0] != Pt(11, 22) || points[1] != Pt(13, 24) {
		t.Errorf("got %v, want [(11,22) (13,24)]", points)
	}
	// Original untouched.
	if p.subpaths[0].points[0] != Pt(1, 2) {
		t.Error("Transform mutated receiver")
	}
}

// TestPathBuilderRect verifies the fluent builder produces one closed
// rectangular subpath.
func TestPathBuilderRect(t *testing.T) {
	p := BuildPath().Rect(1, 2, 3, 4).Path()
	if len(p.subpaths) != 1 || !p.subpaths[0].closed {
		t.Fatalf("want a single closed subpath, got %+v", p.subpaths)
	}
	if n := len(p.subpaths[0].points); n != 4 {
		t.Errorf("got %d points, want 4", n)
	}
}
