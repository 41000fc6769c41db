package outline

// A Tag classifies one outline point. Only the two low bits take part in the
// classification; scalers use the higher bits for flags of their own, such
// as FreeType's dropout control bits, and this package ignores them
// throughout.
type Tag uint8

const (
	// TagQuad marks an off-curve control point of a quadratic Bézier.
	TagQuad Tag = 0
	// TagOnCurve marks a point that lies on the contour.
	TagOnCurve Tag = 1
	// TagCubic marks an off-curve control point of a cubic Bézier.
	TagCubic Tag = 2

	tagMask Tag = 0b11
)

// kind returns the tag's classification, i.e. its two low bits.
func (t Tag) kind() Tag { return t & tagMask }

func (t Tag) String() string {
	switch t.kind() {
	case TagQuad:
		return "quad"
	case TagOnCurve:
		return "on-curve"
	case TagCubic:
		return "cubic"
	default:
		return "invalid"
	}
}
