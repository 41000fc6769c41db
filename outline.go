package outline

import (
	"fmt"
	"iter"

	"golang.org/x/exp/constraints"
	"golang.org/x/image/math/fixed"
)

// An Outline is a read-only view over the three buffers that describe a
// glyph outline. It borrows the caller's point and tag slices and never
// copies the point storage. Use [New] to construct one.
type Outline struct {
	points []fixed.Point26_6
	tags   []Tag
	ends   []int
}

// New returns an outline view over the given buffers. points and tags run
// in parallel, and contourEnds holds, for each contour, the inclusive index
// of the contour's last point. The points and tags slices are borrowed;
// contourEnds is converted once into the view's own representation.
//
// New validates the buffers and reports a descriptive error instead of a
// view when they are inconsistent: points and tags must have equal length,
// the contour ends must be non-negative and strictly increasing, and the
// last end must be len(points)-1, so that every point belongs to exactly
// one contour. An outline with no points and no contours is valid.
//
// Validation covers the buffer structure only. Whether the tags form
// decodable curves is checked lazily, by [Contour.Start] and
// [Contour.Curves].
func New[E constraints.Integer](points []fixed.Point26_6, tags []Tag, contourEnds []E) (*Outline, error) {
	if len(points) != len(tags) {
		return nil, fmt.Errorf("outline: %d points but %d tags", len(points), len(tags))
	}
	if len(contourEnds) == 0 && len(points) > 0 {
		return nil, fmt.Errorf("outline: %d points but no contours", len(points))
	}
	if len(points) == 0 && len(contourEnds) > 0 {
		return nil, fmt.Errorf("outline: %d contours but no points", len(contourEnds))
	}
	ends := make([]int, len(contourEnds))
	prev := -1
	for i, e := range contourEnds {
		end := int(e)
		switch {
		case end < 0:
			return nil, fmt.Errorf("outline: contour %d has negative end %d", i, end)
		case end <= prev:
			return nil, fmt.Errorf("outline: contour %d ends at %d, not after %d", i, end, prev)
		}
		ends[i] = end
		prev = end
	}
	if len(ends) > 0 && ends[len(ends)-1] != len(points)-1 {
		return nil, fmt.Errorf("outline: last contour ends at %d, but the outline has %d points", ends[len(ends)-1], len(points))
	}
	return &Outline{points: points, tags: tags, ends: ends}, nil
}

// Points returns the outline's points, one per tag.
func (o *Outline) Points() []fixed.Point26_6 { return o.points }

// Tags returns the outline's tags, one per point.
func (o *Outline) Tags() []Tag { return o.tags }

// ContourEnds returns the inclusive index of each contour's last point.
func (o *Outline) ContourEnds() []int { return o.ends }

// NumContours returns the number of contours in the outline.
func (o *Outline) NumContours() int { return len(o.ends) }

// Contour returns the idx'th contour of the outline.
func (o *Outline) Contour(idx int) Contour {
	start := 0
	if idx > 0 {
		start = o.ends[idx-1] + 1
	}
	end := o.ends[idx]
	return Contour{
		index:  idx,
		points: o.points[start : end+1],
		tags:   o.tags[start : end+1],
	}
}

// Contours returns an iterator over the outline's contours, in buffer
// order. Each contour covers the points between the previous contour's end
// offset (exclusive) and its own (inclusive).
func (o *Outline) Contours() iter.Seq[Contour] {
	return func(yield func(Contour) bool) {
		for i := range o.ends {
			if !yield(o.Contour(i)) {
				return
			}
		}
	}
}

// ControlBox returns the smallest rectangle containing all of the outline's
// points, control points included. Unlike a fitted bounding box, the
// control box can exceed the extent of the drawn curves, since off-curve
// points usually lie outside them. The control box of an empty outline is
// the zero rectangle.
func (o *Outline) ControlBox() fixed.Rectangle26_6 {
	if len(o.points) == 0 {
		return fixed.Rectangle26_6{}
	}
	cbox := fixed.Rectangle26_6{Min: o.points[0], Max: o.points[0]}
	for _, p := range o.points[1:] {
		cbox.Min.X = min(cbox.Min.X, p.X)
		cbox.Min.Y = min(cbox.Min.Y, p.Y)
		cbox.Max.X = max(cbox.Max.X, p.X)
		cbox.Max.Y = max(cbox.Max.Y, p.Y)
	}
	return cbox
}
