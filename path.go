package outline

import (
	"iter"

	"golang.org/x/image/math/fixed"
	"honnef.co/go/curve"
)

// pathPoint converts a 26.6 fixed-point point to a float64 point.
func pathPoint(p fixed.Point26_6) curve.Point {
	return curve.Pt(float64(p.X)/64, float64(p.Y)/64)
}

// PathElements returns the outline as a lazy sequence of
// [honnef.co/go/curve] path elements. Each contour becomes one subpath: a
// MoveTo to the contour's start point, one drawing element per decoded
// segment, and a terminating ClosePath. Coordinates are converted from 26.6
// fixed point to float64.
//
// When the outline is malformed, the sequence yields the zero element
// together with a [*TagError] and stops.
func (o *Outline) PathElements() iter.Seq2[curve.PathElement, error] {
	return func(yield func(curve.PathElement, error) bool) {
		for c := range o.Contours() {
			start, err := c.Start()
			if err != nil {
				yield(curve.PathElement{}, err)
				return
			}
			if !yield(curve.MoveTo(pathPoint(start)), nil) {
				return
			}
			for seg, err := range c.Curves() {
				if err != nil {
					yield(curve.PathElement{}, err)
					return
				}
				var el curve.PathElement
				switch seg.Kind {
				case LineKind:
					el = curve.LineTo(pathPoint(seg.P0))
				case QuadKind:
					el = curve.QuadTo(pathPoint(seg.P0), pathPoint(seg.P1))
				case CubicKind:
					el = curve.CubicTo(pathPoint(seg.P0), pathPoint(seg.P1), pathPoint(seg.P2))
				}
				if !yield(el, nil) {
					return
				}
			}
			if !yield(curve.ClosePath(), nil) {
				return
			}
		}
	}
}

// Path collects the outline's path elements into a [curve.BezPath]. On a
// malformed outline it returns a nil path and a [*TagError].
func (o *Outline) Path() (curve.BezPath, error) {
	var path curve.BezPath
	for el, err := range o.PathElements() {
		if err != nil {
			return nil, err
		}
		path.Push(el)
	}
	return path, nil
}
