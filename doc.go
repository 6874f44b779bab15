// Package sweep is a 2D vector rasterizer with analytic anti-aliasing.
//
// # Overview
//
// sweep converts a resolution-independent scene of filled shapes into a
// raster of premultiplied colors. Coverage is computed exactly with a
// sweep-line algorithm over trapezoid areas rather than by supersampling,
// and overlapping shapes are composited under the nonzero winding rule.
//
// # Quick Start
//
//	import "github.com/gogpu/sweep"
//
//	doc := sweep.NewDocument(300, 300)
//
//	path := sweep.NewPath()
//	path.MoveTo(50, 250)
//	path.LineTo(100, 50)
//	path.LineTo(250, 200)
//	path.Close()
//	doc.Fill(path, sweep.NewSolidPaint(sweep.RGBA{B: 1, A: 0.85}))
//
//	pm := sweep.Rasterize(doc)
//	pm.SavePNG("result.png")
//
// # Architecture
//
// The library is organized into:
//   - Geometry: Point, Line, Segment, Matrix
//   - Paths: Path (curve flattening, arcs, stroking), PathBuilder
//   - Paints: Paint, SolidPaint, gradients, opacity and transform wrappers
//   - Scene: Document, Shape
//   - Engine: Rasterize / RasterizeParallel producing a Pixmap
//
// # Coordinate System
//
// Uses standard computer graphics coordinates:
//   - Origin (0,0) at top-left
//   - X increases right
//   - Y increases down
//   - Angles in radians
//
// The engine is a pure function from a Document to a Pixmap: it has no
// knowledge of files, markup, or user interaction. Encoding the pixel
// buffer is left to the caller (Pixmap implements image.Image).
package sweep
