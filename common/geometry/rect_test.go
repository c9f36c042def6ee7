package geometry

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRect_nonPositiveSize(t *testing.T) {
	assert.PanicsWithError(t, "A size's width and/or height must be positive. Got (-1, 0)", func() {
		MakeRect(-1, 1, -1, 0)
	})
}

func TestRect_bounds(t *testing.T) {
	sut := MakeRect(1, 2, 6, 8)

	assert.Equal(t, MakePoint(7, 10), sut.UpperBound())
	assert.Equal(t, MakePoint(4, 6), sut.Center())
}

func TestRect_quarterSized(t *testing.T) {
	assert.Equal(t, MakeRect(2, 3, 5, 1), MakeRect(2, 3, 10, 2).quarterSized())
}

func TestRect_quadrants(t *testing.T) {
	sut := MakeRect(0, 0, 6, 8)

	nw, ne, sw, se := sut.Quadrants()

	assert.Equal(t, MakeRect(0, 4, 3, 4), nw)
	assert.Equal(t, MakeRect(3, 4, 3, 4), ne)
	assert.Equal(t, MakeRect(0, 0, 3, 4), sw)
	assert.Equal(t, MakeRect(3, 0, 3, 4), se)
}

func TestRect_quadrantsTileTheParent(t *testing.T) {
	examples := []Rect{
		MakeRect(0, 0, 6, 8),
		MakeRect(-3.3, 1.7, 0.9, 12.1),
		MakeRect(100.25, -50.5, 0.1, 0.3),
	}

	for _, sut := range examples {
		t.Run(sut.String(), func(t *testing.T) {
			nw, ne, sw, se := sut.Quadrants()
			half := Size{Width: sut.Size.Width / 2, Height: sut.Size.Height / 2}

			for _, q := range []Rect{nw, ne, sw, se} {
				assert.Equal(t, half, q.Size)
			}

			// shared edges are exact
			assert.Equal(t, sw.UpperBound().X, se.Origin.X)
			assert.Equal(t, nw.UpperBound().X, ne.Origin.X)
			assert.Equal(t, sw.UpperBound().Y, nw.Origin.Y)
			assert.Equal(t, se.UpperBound().Y, ne.Origin.Y)

			// outer corners are the parent's
			assert.Equal(t, sut.Origin, sw.Origin)
			assert.Equal(t, sut.Origin.X, nw.Origin.X)
			assert.Equal(t, sut.Origin.Y, se.Origin.Y)

			// every parent corner and the centre is covered
			upper := sut.UpperBound()
			for _, p := range []Point{sut.Origin, upper, MakePoint(sut.Origin.X, upper.Y), MakePoint(upper.X, sut.Origin.Y), ne.Origin} {
				_, ok := sut.WhichQuadrant(p)
				assert.True(t, ok, "%v not covered", p)
			}
		})
	}
}

func TestRect_containsPoint(t *testing.T) {
	sut := MakeRect(0, 0, 10, 5)

	assert.True(t, sut.Contains(MakePoint(0, 0)))
	assert.True(t, sut.Contains(MakePoint(3, 3)))
	assert.True(t, sut.Contains(MakePoint(10, 5)))
	assert.True(t, sut.Contains(MakePoint(10, 0)))
	assert.True(t, sut.Contains(MakePoint(0, 5)))

	assert.False(t, sut.Contains(MakePoint(-0.0001, 0)))
	assert.False(t, sut.Contains(MakePoint(10.00001, 5)))
	assert.False(t, sut.Contains(MakePoint(10, 5.00001)))
	assert.False(t, sut.Contains(MakePoint(14, 5.01)))
}

func TestRect_whichQuadrant(t *testing.T) {
	sut := MakeRect(0, 0, 5, 5)
	nw, ne, sw, se := sut.Quadrants()

	type testCase struct {
		Name     string
		Point    Point
		Expected Quadrant
		Found    bool
	}

	examples := []testCase{
		// bottom left of each quadrant
		{Name: "nw bottom left", Point: MakePoint(0, 2.5), Expected: Quadrant{NW, nw}, Found: true},
		{Name: "centre", Point: MakePoint(2.5, 2.5), Expected: Quadrant{NW, nw}, Found: true},
		{Name: "sw bottom left", Point: MakePoint(0, 0), Expected: Quadrant{SW, sw}, Found: true},
		{Name: "se bottom left", Point: MakePoint(2.5, 0), Expected: Quadrant{SW, sw}, Found: true},

		// top right of each quadrant
		{Name: "nw top right", Point: MakePoint(2.5, 5), Expected: Quadrant{NW, nw}, Found: true},
		{Name: "ne top right", Point: MakePoint(5, 5), Expected: Quadrant{NE, ne}, Found: true},
		{Name: "se top right", Point: MakePoint(5, 2.5), Expected: Quadrant{NE, ne}, Found: true},
		{Name: "se bottom right", Point: MakePoint(5, 0), Expected: Quadrant{SE, se}, Found: true},

		// anywhere in quadrant
		{Name: "inside nw", Point: MakePoint(0.3, 2.9), Expected: Quadrant{NW, nw}, Found: true},
		{Name: "inside ne", Point: MakePoint(2.6, 4.2), Expected: Quadrant{NE, ne}, Found: true},
		{Name: "inside sw", Point: MakePoint(1, 2), Expected: Quadrant{SW, sw}, Found: true},
		{Name: "inside se", Point: MakePoint(3.7, 2.4), Expected: Quadrant{SE, se}, Found: true},

		// vertical midline resolves west
		{Name: "midline upper", Point: MakePoint(2.5, 4), Expected: Quadrant{NW, nw}, Found: true},
		{Name: "midline lower", Point: MakePoint(2.5, 1), Expected: Quadrant{SW, sw}, Found: true},

		// horizontal midline resolves north
		{Name: "horizontal midline east", Point: MakePoint(4, 2.5), Expected: Quadrant{NE, ne}, Found: true},

		// outside
		{Name: "outside west", Point: MakePoint(-2.5, 5)},
		{Name: "outside east", Point: MakePoint(5.4, 0.4)},
		{Name: "outside south", Point: MakePoint(2.5, -4)},
		{Name: "outside north", Point: MakePoint(4, 6.5)},
	}

	for _, example := range examples {
		t.Run(example.Name, func(t *testing.T) {
			q, ok := sut.WhichQuadrant(example.Point)

			require.Equal(t, example.Found, ok)
			assert.Equal(t, example.Expected, q)
		})
	}
}

func TestRect_subspacesOrder(t *testing.T) {
	subspaces := MakeRect(0, 0, 2, 2).Subspaces()

	kinds := []QuadrantKind{}
	for _, q := range subspaces {
		kinds = append(kinds, q.Kind)
	}

	assert.Equal(t, []QuadrantKind{NW, NE, SW, SE}, kinds)
	assert.Equal(t, "NW", subspaces[0].Kind.String())
	assert.Equal(t, "UnknownQuadrant", QuadrantKind(0).String())
}

func TestBoundingRect(t *testing.T) {
	_, ok := BoundingRect()
	assert.False(t, ok)

	r, ok := BoundingRect(MakePoint(1, 5), MakePoint(-2, 3), MakePoint(4, -1))
	require.True(t, ok)
	assert.Equal(t, MakeRect(-2, -1, 6, 6), r)

	r, ok = BoundingRect(MakePoint(3, 3))
	require.True(t, ok)
	assert.Equal(t, MakeRect(3, 3, 1, 1), r)

	points := []Point{MakePoint(0.1, 0.7), MakePoint(1e4, 0.3), MakePoint(-33.3, 12.9)}
	r, ok = BoundingRect(points...)
	require.True(t, ok)
	for _, p := range points {
		assert.True(t, r.Contains(p), "%v outside %v", p, r)
	}
}

func TestBoundingRect_tinyExtentStillSplits(t *testing.T) {
	tiny := float32(math.SmallestNonzeroFloat32)

	r, ok := BoundingRect(MakePoint(0, 0), MakePoint(tiny, 0))
	require.True(t, ok)

	assert.True(t, r.Size.Width/2 > 0)
	assert.True(t, r.Contains(MakePoint(tiny, 0)))
	assert.NotPanics(t, func() { r.Quadrants() })

	q, ok := r.WhichQuadrant(MakePoint(tiny, 0))
	require.True(t, ok)
	assert.Equal(t, SW, q.Kind)
}
