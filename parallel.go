package sweep

import (
	"math"
	"runtime"

	"golang.org/x/sync/errgroup"
)

// Strips are disjoint in y but a strip boundary can fall inside a pixel
// row, in which case two neighboring strips accumulate into the same
// row. Batching consecutive strips until a row boundary separates them
// guarantees that distinct batches write disjoint rows, so the batches
// can shade the shared pixmap concurrently without locking.

// stripRows returns the first and last pixel rows a strip writes.
// ok is false when the strip is entirely outside the pixmap.
func stripRows(st strip, height int) (first, last int, ok bool) {
	y0 := math.Max(st.y0, 0)
	y1 := math.Min(st.y1, float64(height)-0.5)
	first = int(y0)
	if float64(first) >= y1 {
		return 0, 0, false
	}
	last = int(math.Ceil(y1)) - 1
	return first, last, true
}

// shadeStripsParallel batches the strips by pixel-row overlap and
// shades the batches concurrently.
func shadeStripsParallel(strips []strip, pm *Pixmap) {
	var batches [][]strip
	var current []strip
	lastRow := -1
	for _, st := range strips {
		first, last, ok := stripRows(st, pm.height)
		if !ok {
			continue
		}
		if current != nil && first > lastRow {
			batches = append(batches, current)
			current = nil
		}
		current = append(current, st)
		if last > lastRow {
			lastRow = last
		}
	}
	if current != nil {
		batches = append(batches, current)
	}

	Logger().Debug("parallel shading", "strips", len(strips), "batches", len(batches))

	var g errgroup.Group
	g.SetLimit(runtime.GOMAXPROCS(0))
	for _, batch := range batches {
		batch := batch
		g.Go(func() error {
			for _, st := range batch {
				shadeStrip(st, pm)
			}
			return nil
		})
	}
	_ = g.Wait() // shading itself cannot fail
}
