package outline

import (
	"fmt"

	"golang.org/x/image/math/fixed"
)

type CurveKind int

const (
	// Draw a line from the current position to P0.
	LineKind CurveKind = iota + 1
	// Draw a quadratic Bézier from the current position with control point
	// P0, ending at P1.
	QuadKind
	// Draw a cubic Bézier from the current position with control points P0
	// and P1, ending at P2.
	CubicKind
)

// A Curve is one decoded segment of a contour. It carries control and end
// points only: each segment begins where the previous one ended, and the
// first segment of a contour begins at the contour's start point.
type Curve struct {
	Kind CurveKind
	P0   fixed.Point26_6
	P1   fixed.Point26_6
	P2   fixed.Point26_6
}

func (c Curve) String() string {
	var kind string
	switch c.Kind {
	case LineKind:
		kind = "Line"
	case QuadKind:
		kind = "Quad"
	case CubicKind:
		kind = "Cubic"
	default:
		kind = "InvalidCurve"
	}
	return fmt.Sprintf("%s(%v, %v, %v)", kind, c.P0, c.P1, c.P2)
}

// End returns the segment's end point.
func (c Curve) End() fixed.Point26_6 {
	switch c.Kind {
	case LineKind:
		return c.P0
	case QuadKind:
		return c.P1
	case CubicKind:
		return c.P2
	default:
		panic("unreachable")
	}
}

// Line returns a line segment ending at p0.
func Line(p0 fixed.Point26_6) Curve {
	return Curve{Kind: LineKind, P0: p0}
}

// Quad returns a quadratic Bézier segment with control point p0, ending at
// p1.
func Quad(p0, p1 fixed.Point26_6) Curve {
	return Curve{Kind: QuadKind, P0: p0, P1: p1}
}

// Cubic returns a cubic Bézier segment with control points p0 and p1,
// ending at p2.
func Cubic(p0, p1, p2 fixed.Point26_6) Curve {
	return Curve{Kind: CubicKind, P0: p0, P1: p1, P2: p2}
}

// midpoint returns the point halfway between a and b. The halving truncates
// toward zero, like the integer arithmetic of the scalers that produce
// outline data.
func midpoint(a, b fixed.Point26_6) fixed.Point26_6 {
	return fixed.Point26_6{
		X: (a.X + b.X) / 2,
		Y: (a.Y + b.Y) / 2,
	}
}
