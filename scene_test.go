package sweep

import "testing"

// TestDocumentClampsSize verifies negative dimensions become zero.
func TestDocumentClampsSize(t *testing.T) {
	doc := NewDocument(-3, -1)
	if doc.Width() != 0 || doc.Height() != 0 {
		t.Errorf("got %dx%d, want 0x0", doc.Width(), doc.Height())
	}
}

// TestFillDropsHorizontalEdges verifies edges with equal endpoints in y
// contribute no segments.
func TestFillDropsHorizontalEdges(t *testing.T) {
	doc := NewDocument(10, 10)
	p := NewPath()
	p.MoveTo(0, 5)
	p.LineTo(10, 5)
	p.Close()
	doc.Fill(p, NewSolidPaint(Black))

	if n := len(doc.Shapes()[0].Segments); n != 0 {
		t.Errorf("got %d segments, want 0", n)
	}
}

// TestFillClosesOpenSubpath verifies filling adds the implicit closing
// edge back to the subpath start.
func TestFillClosesOpenSubpath(t *testing.T) {
	doc := NewDocument(10, 10)
	p := NewPath()
	p.MoveTo(0, 0)
	p.LineTo(10, 0)
	p.LineTo(10, 10) // no Close: the edge back to (0,0) is implied
	doc.Fill(p, NewSolidPaint(Black))

	// The horizontal top edge is dropped, leaving the right edge and the
	// closing diagonal.
	if n := len(doc.Shapes()[0].Segments); n != 2 {
		t.Errorf("got %d segments, want 2", n)
	}
}

// TestShapeStackingOrder verifies shapes receive ascending stacking
// indices in insertion order.
func TestShapeStackingOrder(t *testing.T) {
	doc := NewDocument(10, 10)
	p := buildRect(0, 0, 5, 5)
	doc.Fill(p, NewSolidPaint(Red))
	doc.Fill(p, NewSolidPaint(Blue))
	doc.Stroke(p, 1, NewSolidPaint(Green))

	for i, s := range doc.Shapes() {
		if s.Index != i {
			t.Errorf("shape %d has index %d", i, s.Index)
		}
	}
}

func buildRect(x, y, w, h float64) *Path {
	return BuildPath().Rect(x, y, w, h).Path()
}
