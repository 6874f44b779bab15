package sweep

import "sort"

// ColorStop represents a color at a specific position in a gradient.
type ColorStop struct {
	Offset float64 // Position in gradient, 0.0 to 1.0
	Color  RGBA    // Non-premultiplied color at this position
}

// Gradient is an ascending-by-offset sequence of color stops shared by
// the gradient paints. Stops are sorted and premultiplied once at
// construction; evaluation is a binary search plus one interpolation.
type Gradient struct {
	stops []ColorStop // sorted, colors premultiplied
}

// NewGradient creates a gradient from color stops. The stops are copied
// and sorted by offset, so the caller's slice may be in any order.
func NewGradient(stops ...ColorStop) *Gradient {
	sorted := make([]ColorStop, len(stops))
	copy(sorted, stops)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Offset < sorted[j].Offset
	})
	for i := range sorted {
		sorted[i].Color = sorted[i].Color.Premultiply()
	}
	return &Gradient{stops: sorted}
}

// evaluate returns the premultiplied color at a gradient position.
// Positions at or before the first stop, or at or after the last, clamp
// to the endpoint color.
func (g *Gradient) evaluate(pos float64) RGBA {
	if len(g.stops) == 0 {
		return Transparent
	}
	if pos <= g.stops[0].Offset {
		return g.stops[0].Color
	}
	last := g.stops[len(g.stops)-1]
	if pos >= last.Offset {
		return last.Color
	}

	// First stop with offset >= pos; the checks above guarantee
	// 0 < idx < len(stops).
	idx := sort.Search(len(g.stops), func(i int) bool {
		return g.stops[i].Offset >= pos
	})

	s0 := g.stops[idx-1]
	s1 := g.stops[idx]
	if s1.Offset == s0.Offset {
		return s0.Color
	}
	t := (pos - s0.Offset) / (s1.Offset - s0.Offset)
	return s0.Color.Lerp(s1.Color, t)
}
