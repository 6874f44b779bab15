package sweep

import (
	"math"
	"testing"
)

// TestMatrixIdentity verifies the identity transform leaves points
// unchanged.
func TestMatrixIdentity(t *testing.T) {
	p := Pt(3, 4)
	got := Identity().TransformPoint(p)
	if got != p {
		t.Errorf("got %v, want %v", got, p)
	}
}

// TestMatrixTranslate verifies translation.
func TestMatrixTranslate(t *testing.T) {
	got := Translate(10, -5).TransformPoint(Pt(1, 2))
	want := Pt(11, -3)
	if got != want {
		t.Errorf("got %v, want %v", got, want)
	}
}

// TestMatrixRotate verifies a quarter turn.
func TestMatrixRotate(t *testing.T) {
	got := Rotate(math.Pi / 2).TransformPoint(Pt(1, 0))
	if !within(got.X, 0, 1e-12) || !within(got.Y, 1, 1e-12) {
		t.Errorf("got %v, want (0, 1)", got)
	}
}

// TestMatrixShear verifies a horizontal shear offsets x by y.
func TestMatrixShear(t *testing.T) {
	got := Shear(2, 0).TransformPoint(Pt(1, 3))
	want := Pt(7, 3)
	if got != want {
		t.Errorf("got %v, want %v", got, want)
	}
}

// TestMatrixInvert verifies that a composite transform and its inverse
// cancel.
func TestMatrixInvert(t *testing.T) {
	m := Translate(5, 7).Multiply(Rotate(0.3)).Multiply(Scale(2, 3))
	p := Pt(1.5, -2.5)
	got := m.Invert().TransformPoint(m.TransformPoint(p))
	if !within(got.X, p.X, 1e-9) || !within(got.Y, p.Y, 1e-9) {
		t.Errorf("got %v, want %v", got, p)
	}
}

// TestMatrixInvertSingular verifies a singular matrix inverts to the
// identity rather than producing NaNs.
func TestMatrixInvertSingular(t *testing.T) {
	m := Scale(0, 0)
	if got := m.Invert(); !got.IsIdentity() {
		t.Errorf("got %v, want identity", got)
	}
}
