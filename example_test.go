package outline_test

import (
	"fmt"

	"golang.org/x/image/math/fixed"
	"honnef.co/go/curve"
	"honnef.co/go/outline"
)

func ExampleContour_Curves() {
	// A contour with no on-curve points at all. Its start point and the end
	// points of its segments are all implicit midpoints.
	points := []fixed.Point26_6{fixed.P(0, 0), fixed.P(5, 5)}
	tags := []outline.Tag{outline.TagQuad, outline.TagQuad}
	o, err := outline.New(points, tags, []int{1})
	if err != nil {
		panic(err)
	}

	c := o.Contour(0)
	start, err := c.Start()
	if err != nil {
		panic(err)
	}
	fmt.Println("start:", start)
	for seg, err := range c.Curves() {
		if err != nil {
			panic(err)
		}
		fmt.Println(seg)
	}
	// Output:
	// start: {2:32 2:32}
	// Quad({0:00 0:00}, {2:32 2:32}, {0:00 0:00})
	// Quad({5:00 5:00}, {2:32 2:32}, {0:00 0:00})
}

func ExampleOutline_Path() {
	// One contour alternating on-curve corners and quadratic control
	// points, the way TrueType fonts round corners.
	points := []fixed.Point26_6{
		fixed.P(0, 0),
		fixed.P(10, 0),
		fixed.P(10, 10),
		fixed.P(0, 10),
	}
	tags := []outline.Tag{
		outline.TagOnCurve,
		outline.TagQuad,
		outline.TagOnCurve,
		outline.TagQuad,
	}
	o, err := outline.New(points, tags, []int{3})
	if err != nil {
		panic(err)
	}

	path, err := o.Path()
	if err != nil {
		panic(err)
	}
	fmt.Println(curve.SVG(path.Elements(), curve.SVGOptions{}))
	// Output:
	// M0,0 Q10,0 10,10 Q0,10 0,0 Z
}
