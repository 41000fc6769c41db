// Package outline decodes FreeType-style glyph outlines into sequences of
// curve segments.
//
// Font scalers in the tradition of FreeType's [FT_Outline] describe a glyph
// as three parallel buffers: a flat list of fixed-point points, one tag per
// point classifying it as on-curve or as a quadratic or cubic control point,
// and a list of inclusive offsets marking the last point of each closed
// contour. Much of the geometry is implicit: a contour may begin on an
// off-curve point, two consecutive quadratic control points imply an
// on-curve point halfway between them, and every contour wraps around to
// close on its start point.
//
// This package makes the geometry explicit. [New] validates the three
// buffers and returns an [Outline] view over them. [Outline.Contours] yields
// one [Contour] per closed contour. [Contour.Start] resolves the contour's
// start point, and [Contour.Curves] decodes its segments one at a time as
// [Curve] values: lines, quadratic Béziers, and cubic Béziers.
//
// # Laziness and errors
//
// Decoding is lazy: segments are computed on demand, and nothing is
// precomputed or cached. The sequences returned by [Outline.Contours] and
// [Contour.Curves] follow the iter package's conventions; ranging over a
// sequence again decodes it again. Tag patterns that don't fit the curve
// grammar (for example a cubic control point that isn't followed by a second
// one and an on-curve point) surface a [TagError] from the iteration rather
// than panicking, so a single corrupt glyph doesn't take down the process.
//
// # Coordinates
//
// Points are [fixed.Point26_6] values, the x/image font stack's 26.6
// fixed-point representation, where the value n stands for n/64 of a unit.
// The decoder itself performs plain integer arithmetic on the raw values, so
// buffers holding unscaled font units work just as well; only the exporters
// below assume 26.6.
//
// # Exporters
//
// Two exporters bridge decoded outlines into the surrounding ecosystem.
// [Outline.Path] and [Outline.PathElements] produce honnef.co/go/curve
// paths with float64 coordinates, for geometry processing and rendering.
// [Outline.AppendSegments] produces the segment representation used by
// golang.org/x/image/font/sfnt, for interoperability with the x/image text
// stack.
//
// This package stops at decoding: it does not parse font files, compute
// glyph metrics, apply hinting, or rasterize. Pair it with a font parser
// that exposes raw outline buffers on one side and a rasterizer or path
// processor on the other.
//
// [FT_Outline]: https://freetype.org/freetype2/docs/reference/ft2-outline_processing.html
// [fixed.Point26_6]: https://pkg.go.dev/golang.org/x/image/math/fixed#Point26_6
package outline
