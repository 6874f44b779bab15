package sweep

import (
	"container/heap"
	"math"
	"sort"
)

// rasterLine is a directed line in the sweep: the segment's carrying
// line, a winding direction (+1 if the segment pointed down the sweep
// axis, -1 otherwise), and the owning shape for paint lookup and
// stacking order.
type rasterLine struct {
	Line
	direction int
	shape     *Shape
}

// strip is a maximal y interval over which the left-to-right order of
// the active lines is constant, together with those lines in sorted
// order. Within a strip the winding cells between adjacent lines do not
// change, so coverage reduces to per-row trapezoid areas.
type strip struct {
	y0, y1 float64
	lines  []rasterLine
}

type eventType uint8

const (
	lineStart eventType = iota
	lineEnd
)

// event marks the sweep position where a line enters or leaves the
// active set.
type event struct {
	typ   eventType
	y     float64
	index int // into the line table
}

// eventQueue is a min-heap of events ordered by y. Ties are broken by
// line index so the pop order is deterministic.
type eventQueue []event

func (q eventQueue) Len() int { return len(q) }

func (q eventQueue) Less(i, j int) bool {
	if q[i].y != q[j].y {
		return q[i].y < q[j].y
	}
	return q[i].index < q[j].index
}

func (q eventQueue) Swap(i, j int) { q[i], q[j] = q[j], q[i] }

func (q *eventQueue) Push(x any) { *q = append(*q, x.(event)) }

func (q *eventQueue) Pop() any {
	old := *q
	n := len(old)
	ev := old[n-1]
	*q = old[:n-1]
	return ev
}

// Rasterize renders the document into a new pixmap, shading strips
// sequentially.
func Rasterize(doc *Document) *Pixmap {
	pm := NewPixmap(doc.width, doc.height)
	strips := sweepStrips(doc)
	for _, st := range strips {
		shadeStrip(st, pm)
	}
	return pm
}

// RasterizeParallel renders the document like Rasterize but shades
// strips concurrently. Strip enumeration stays sequential; shading is
// split into batches that touch disjoint pixel rows, so the batches
// can write the shared pixmap without locking. The result is identical
// to Rasterize.
func RasterizeParallel(doc *Document) *Pixmap {
	pm := NewPixmap(doc.width, doc.height)
	strips := sweepStrips(doc)
	shadeStripsParallel(strips, pm)
	return pm
}

// sweepStrips runs the sweep over all shape segments and returns the
// resulting strips in ascending y order.
//
// Every segment contributes a directed line and a start/end event pair
// to a min-priority queue. The sweep maintains the set of lines
// crossing the current y; before advancing to the next event it emits
// strips, each ending either at the event or at the earliest crossing
// of two adjacent active lines, whichever comes first. The breakpoint
// search is exhaustive over all adjacent pairs: a missed crossing would
// corrupt the winding order of every strip after it.
func sweepStrips(doc *Document) []strip {
	var lines []rasterLine
	var events eventQueue
	for _, shape := range doc.shapes {
		for _, s := range shape.Segments {
			index := len(lines)
			if s.Y0 < s.Y1 {
				lines = append(lines, rasterLine{Line: s.Line, direction: 1, shape: shape})
				events = append(events, event{typ: lineStart, y: s.Y0, index: index})
				events = append(events, event{typ: lineEnd, y: s.Y1, index: index})
			} else {
				lines = append(lines, rasterLine{Line: s.Line, direction: -1, shape: shape})
				events = append(events, event{typ: lineStart, y: s.Y1, index: index})
				events = append(events, event{typ: lineEnd, y: s.Y0, index: index})
			}
		}
	}
	if len(events) == 0 {
		return nil
	}
	heap.Init(&events)

	var strips []strip
	var active []*rasterLine
	y := events[0].y
	for len(events) > 0 {
		ev := heap.Pop(&events).(event)
		for y < ev.y {
			sortActive(active, y)
			nextY := ev.y
			for i := 1; i < len(active); i++ {
				l0 := active[i-1]
				l1 := active[i]
				if l0.M == l1.M {
					// Parallel lines never cross.
					continue
				}
				if iy := intersectY(l0.Line, l1.Line); y < iy && iy < nextY {
					nextY = iy
				}
			}
			st := strip{y0: y, y1: nextY, lines: make([]rasterLine, len(active))}
			for i, l := range active {
				st.lines[i] = *l
			}
			strips = append(strips, st)
			y = nextY
		}
		switch ev.typ {
		case lineStart:
			active = append(active, &lines[ev.index])
		case lineEnd:
			for i, l := range active {
				if l == &lines[ev.index] {
					active = append(active[:i], active[i+1:]...)
					break
				}
			}
		}
	}

	Logger().Debug("sweep complete",
		"lines", len(lines),
		"strips", len(strips))
	return strips
}

// sortActive orders the active lines left to right by x at the sweep
// position. Lines meeting at the same x are ordered by slope, which is
// the order they will have just below the crossing.
func sortActive(active []*rasterLine, y float64) {
	sort.Slice(active, func(i, j int) bool {
		x0 := active[i].XAt(y)
		x1 := active[j].XAt(y)
		if x0 == x1 {
			return active[i].M < active[j].M
		}
		return x0 < x1
	})
}

// shadeStrip rasterizes one strip into the pixmap, row by row.
func shadeStrip(st strip, pm *Pixmap) {
	y0 := math.Max(st.y0, 0)
	y1 := math.Min(st.y1, float64(pm.height)-0.5)
	for y := int(y0); float64(y) < y1; y++ {
		shadeRow(st, pm, y)
	}
}

// shadeRow walks the strip's lines left to right across one pixel row.
// Each line crossed adjusts its shape's winding counter; the cell
// between two adjacent lines is covered by exactly the shapes whose
// counter is nonzero. Covered cells are clipped to the row, and every
// pixel column in range receives the composited color of the covering
// shapes scaled by the exact trapezoid intersection area.
func shadeRow(st strip, pm *Pixmap, y int) {
	rowY0 := math.Max(float64(y), st.y0)
	rowY1 := math.Min(float64(y+1), st.y1)
	var winding shapeSet
	for i := 1; i < len(st.lines); i++ {
		l0 := &st.lines[i-1]
		winding.modify(l0.shape, l0.direction)
		if len(winding.entries) == 0 {
			continue
		}
		l1 := &st.lines[i]
		t := trapezoidBetween(rowY0, rowY1, l0.Line, l1.Line)
		if t.x0 > t.x1 {
			t.x0, t.x1 = t.x1, t.x0
		}
		if t.x2 > t.x3 {
			t.x2, t.x3 = t.x3, t.x2
		}
		x0 := math.Max(t.x0, 0)
		x1 := math.Min(t.x3, float64(pm.width)-0.5)
		for x := int(x0); float64(x) < x1; x++ {
			factor := t.pixelCoverage(x)
			color := winding.color(Pt(float64(x)+0.5, float64(y)+0.5))
			pm.AddPixel(x, y, color.Scale(factor))
		}
	}
}

// shapeWinding is one shape's running winding counter.
type shapeWinding struct {
	shape *Shape
	count int
}

// shapeSet tracks the shapes with nonzero winding, kept sorted by
// stacking index so compositing iterates bottom to top.
type shapeSet struct {
	entries []shapeWinding
}

// modify adds a crossing of the shape's boundary in the given
// direction, inserting or removing the shape as its counter leaves or
// reaches zero.
func (s *shapeSet) modify(shape *Shape, direction int) {
	idx := sort.Search(len(s.entries), func(i int) bool {
		return s.entries[i].shape.Index >= shape.Index
	})
	if idx < len(s.entries) && s.entries[idx].shape == shape {
		s.entries[idx].count += direction
		if s.entries[idx].count == 0 {
			s.entries = append(s.entries[:idx], s.entries[idx+1:]...)
		}
		return
	}
	s.entries = append(s.entries, shapeWinding{})
	copy(s.entries[idx+1:], s.entries[idx:])
	s.entries[idx] = shapeWinding{shape: shape, count: direction}
}

// color composites the covering shapes' paints at a point, in
// ascending stacking order under Porter-Duff "over".
func (s *shapeSet) color(p Point) RGBA {
	var c RGBA
	for _, e := range s.entries {
		c = e.shape.Paint.Evaluate(p).Over(c)
	}
	return c
}
