package sweep

import "testing"

// TestStrokeClosedSubpathContours verifies a closed subpath strokes
// into two independent closed contours, one per side.
func TestStrokeClosedSubpathContours(t *testing.T) {
	square := []Point{Pt(2, 2), Pt(8, 2), Pt(8, 8), Pt(2, 8)}
	contours := strokeSubpath(square, true, 2)
	if len(contours) != 2 {
		t.Fatalf("got %d contours, want 2", len(contours))
	}
	// Four edges, two offset points each.
	for i, c := range contours {
		if len(c) != 8 {
			t.Errorf("contour %d has %d points, want 8", i, len(c))
		}
	}
}

// TestStrokeOpenSubpathCapsule verifies an open subpath strokes into a
// single capsule contour combining both offsets.
func TestStrokeOpenSubpathCapsule(t *testing.T) {
	line := []Point{Pt(0, 0), Pt(10, 0)}
	contours := strokeSubpath(line, false, 4)
	if len(contours) != 1 {
		t.Fatalf("got %d contours, want 1", len(contours))
	}
	if len(contours[0]) != 4 {
		t.Errorf("capsule has %d points, want 4", len(contours[0]))
	}
}

// TestStrokeSkipsZeroLengthEdges verifies repeated points contribute no
// offset edges instead of dividing by zero.
func TestStrokeSkipsZeroLengthEdges(t *testing.T) {
	points := []Point{Pt(0, 0), Pt(0, 0), Pt(10, 0)}
	offset := offsetPolyline(points, false, 1)
	if len(offset) != 2 {
		t.Errorf("got %d offset points, want 2 (one real edge)", len(offset))
	}
	for _, p := range offset {
		if p.X != p.X || p.Y != p.Y { // NaN check
			t.Errorf("offset produced NaN point %v", p)
		}
	}
}

// TestStrokeDegenerateSubpath verifies a single point cannot be
// stroked.
func TestStrokeDegenerateSubpath(t *testing.T) {
	if got := strokeSubpath([]Point{Pt(1, 1)}, false, 2); got != nil {
		t.Errorf("got %v, want nil", got)
	}
}
