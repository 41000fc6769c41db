package outline

import (
	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"
)

// AppendSegments decodes the outline and appends its segments to segs in
// the representation used by [golang.org/x/image/font/sfnt], returning the
// extended slice. Each contour contributes a MoveTo op followed by its
// drawing ops. Like the segments loaded by sfnt itself, contours carry no
// explicit closing op; a well-formed contour's final segment already ends
// at its start point.
//
// When the outline is malformed, AppendSegments returns nil and a
// [*TagError].
func (o *Outline) AppendSegments(segs []sfnt.Segment) ([]sfnt.Segment, error) {
	for c := range o.Contours() {
		start, err := c.Start()
		if err != nil {
			return nil, err
		}
		segs = append(segs, sfnt.Segment{
			Op:   sfnt.SegmentOpMoveTo,
			Args: [3]fixed.Point26_6{start},
		})
		for seg, err := range c.Curves() {
			if err != nil {
				return nil, err
			}
			var op sfnt.SegmentOp
			switch seg.Kind {
			case LineKind:
				op = sfnt.SegmentOpLineTo
			case QuadKind:
				op = sfnt.SegmentOpQuadTo
			case CubicKind:
				op = sfnt.SegmentOpCubeTo
			}
			segs = append(segs, sfnt.Segment{
				Op:   op,
				Args: [3]fixed.Point26_6{seg.P0, seg.P1, seg.P2},
			})
		}
	}
	return segs, nil
}
