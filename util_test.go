package outline

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"golang.org/x/image/math/fixed"
)

func diff(t *testing.T, want, got any, opts ...cmp.Option) {
	t.Helper()
	if d := cmp.Diff(want, got, opts...); d != "" {
		t.Error(d)
	}
}

// p returns the point (x, y) in 26.6 fixed point.
func p(x, y float64) fixed.Point26_6 {
	return fixed.Point26_6{
		X: fixed.Int26_6(x * 64),
		Y: fixed.Int26_6(y * 64),
	}
}

// single builds a one-contour outline over the given points and tags and
// returns its contour.
func single(t *testing.T, points []fixed.Point26_6, tags []Tag) Contour {
	t.Helper()
	o, err := New(points, tags, []int{len(points) - 1})
	if err != nil {
		t.Fatal(err)
	}
	return o.Contour(0)
}

// decode fully decodes a contour, failing the test on a decode error.
func decode(t *testing.T, c Contour) []Curve {
	t.Helper()
	var segs []Curve
	for seg, err := range c.Curves() {
		if err != nil {
			t.Fatal(err)
		}
		segs = append(segs, seg)
	}
	return segs
}

// decodeErr decodes a contour and returns the first error.
func decodeErr(c Contour) error {
	for _, err := range c.Curves() {
		if err != nil {
			return err
		}
	}
	return nil
}

// start resolves a contour's start point, failing the test on error.
func start(t *testing.T, c Contour) fixed.Point26_6 {
	t.Helper()
	s, err := c.Start()
	if err != nil {
		t.Fatal(err)
	}
	return s
}
