package outline

import (
	"fmt"
	"iter"

	"golang.org/x/image/math/fixed"
)

// A Contour is a view over one closed contour of an outline, as produced by
// [Outline.Contours] or [Outline.Contour].
type Contour struct {
	index  int
	points []fixed.Point26_6
	tags   []Tag
}

// Index returns the contour's position within its outline.
func (c Contour) Index() int { return c.index }

// Len returns the number of points in the contour.
func (c Contour) Len() int { return len(c.points) }

// Points returns the contour's points.
func (c Contour) Points() []fixed.Point26_6 { return c.points }

// Tags returns the contour's tags.
func (c Contour) Tags() []Tag { return c.tags }

// A TagError reports a point whose tag doesn't fit the outline format's
// curve grammar, for example a lone cubic control point or a tag with both
// low bits set.
type TagError struct {
	Contour int // index of the contour within the outline
	Point   int // index of the point within the contour
	Tag     Tag // the point's tag
}

func (err *TagError) Error() string {
	return fmt.Sprintf("outline: unexpected %v tag %#02x for point %d in contour %d",
		err.Tag, uint8(err.Tag), err.Point, err.Contour)
}

// wrap maps an index one or more positions past the end of a contour back
// onto the contour, making lookahead circular.
func wrap(i, length int) int {
	return i % length
}

// Start resolves the contour's start point.
//
// If the first point is on-curve, it is the start. If the first point is a
// quadratic control point, the start is implicit: it is the last point when
// that one is on-curve, or the midpoint of the last and first points when
// the last point is a quadratic control point too. Any other tag
// combination at the contour boundary reports a [TagError].
func (c Contour) Start() (fixed.Point26_6, error) {
	switch c.tags[0].kind() {
	case TagOnCurve:
		return c.points[0], nil
	case TagQuad:
		last := len(c.points) - 1
		switch c.tags[last].kind() {
		case TagOnCurve:
			return c.points[last], nil
		case TagQuad:
			return midpoint(c.points[last], c.points[0]), nil
		default:
			return fixed.Point26_6{}, &TagError{Contour: c.index, Point: last, Tag: c.tags[last]}
		}
	default:
		return fixed.Point26_6{}, &TagError{Contour: c.index, Point: 0, Tag: c.tags[0]}
	}
}

// Curves returns an iterator over the contour's curve segments. The first
// segment begins at the point reported by [Contour.Start]; each further
// segment begins at its predecessor's end point; and for well-formed
// contours the final segment ends back at the start point, closing the
// contour.
//
// The sequence is lazy and decodes one segment per step. Ranging over it
// again restarts the decode from the beginning. When the decoder hits a tag
// pattern that doesn't fit the curve grammar, the sequence yields the zero
// [Curve] together with a [*TagError] and stops.
func (c Contour) Curves() iter.Seq2[Curve, error] {
	return func(yield func(Curve, error) bool) {
		length := len(c.points)
		pt := func(i int) fixed.Point26_6 { return c.points[wrap(i, length)] }
		tg := func(i int) Tag { return c.tags[wrap(i, length)].kind() }
		fail := func(i int) {
			i = wrap(i, length)
			yield(Curve{}, &TagError{Contour: c.index, Point: i, Tag: c.tags[i]})
		}

		// A contour beginning on a quadratic control point effectively
		// begins on the implicit start point, one position before the
		// buffer. Beginning on a cubic control point is not decodable.
		idx := 0
		switch c.tags[0].kind() {
		case TagOnCurve:
		case TagQuad:
			idx = -1
		default:
			fail(0)
			return
		}

		for idx < length {
			switch tg(idx + 1) {
			case TagOnCurve:
				if !yield(Line(pt(idx+1)), nil) {
					return
				}
				idx += 1
			case TagQuad:
				if idx == length-1 {
					// The quadratic wrapping around the end of the buffer
					// is the one whose end point Start resolved; the
					// contour is already closed.
					return
				}
				switch tg(idx + 2) {
				case TagOnCurve:
					if !yield(Quad(pt(idx+1), pt(idx+2)), nil) {
						return
					}
					idx += 2
				case TagQuad:
					// Consecutive quadratic control points share an
					// implicit on-curve point halfway between them. The
					// cursor advances a single position so that the second
					// control point also begins the next segment.
					if !yield(Quad(pt(idx+1), midpoint(pt(idx+1), pt(idx+2))), nil) {
						return
					}
					idx += 1
				default:
					fail(idx + 2)
					return
				}
			case TagCubic:
				if tg(idx+2) != TagCubic {
					fail(idx + 2)
					return
				}
				if tg(idx+3) != TagOnCurve {
					fail(idx + 3)
					return
				}
				if !yield(Cubic(pt(idx+1), pt(idx+2), pt(idx+3)), nil) {
					return
				}
				idx += 3
			default:
				fail(idx + 1)
				return
			}
		}
	}
}
