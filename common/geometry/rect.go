package geometry

import "math"

// Rect is an axis-aligned rectangle whose origin is its bottom-left corner.
type Rect struct {
	Origin Point
	Size   Size
}

// MakeRect panics like MakeSize when width or height is not strictly
// positive.
func MakeRect(x, y, width, height float32) Rect {
	return Rect{
		Origin: MakePoint(x, y),
		Size:   MakeSize(width, height),
	}
}

// UpperBound returns the top-right corner.
func (r Rect) UpperBound() Point {
	return Point{
		X: r.Origin.X + r.Size.Width,
		Y: r.Origin.Y + r.Size.Height,
	}
}

func (r Rect) Center() Point {
	return Point{
		X: r.Origin.X + r.Size.Width/2,
		Y: r.Origin.Y + r.Size.Height/2,
	}
}

// Contains is inclusive on every edge, so a point on the line shared by two
// quadrants is contained by both.
func (r Rect) Contains(p Point) bool {
	upper := r.UpperBound()
	return p.X >= r.Origin.X && p.Y >= r.Origin.Y &&
		p.X <= upper.X && p.Y <= upper.Y
}

// Quadrants splits the rectangle into four equally sized rectangles sharing
// their inner edges.
//
// Each quadrant is derived by translating the previous one, starting from
// the south west, so adjacent quadrants have bit-identical shared edges.
func (r Rect) Quadrants() (nw, ne, sw, se Rect) {
	sw = r.quarterSized()
	size := sw.Size

	se = sw
	se.Origin.X += size.Width

	ne = se
	ne.Origin.Y += size.Height

	nw = ne
	nw.Origin.X -= size.Width

	return nw, ne, sw, se
}

// WhichQuadrant returns the first quadrant containing p, testing NW, NE, SW
// then SE. A point on a shared edge therefore goes to the earliest quadrant
// in that order: the vertical midline resolves west and the centre resolves
// to NW. ok is false when p lies outside the rectangle.
func (r Rect) WhichQuadrant(p Point) (q Quadrant, ok bool) {
	for _, q := range r.Subspaces() {
		if q.Rect.Contains(p) {
			return q, true
		}
	}

	return Quadrant{}, false
}

// Subspaces returns the four quadrants in classification order.
func (r Rect) Subspaces() [4]Quadrant {
	nw, ne, sw, se := r.Quadrants()
	return [4]Quadrant{
		{Kind: NW, Rect: nw},
		{Kind: NE, Rect: ne},
		{Kind: SW, Rect: sw},
		{Kind: SE, Rect: se},
	}
}

func (r Rect) quarterSized() Rect {
	return Rect{
		Origin: r.Origin,
		Size:   r.Size.Halved(),
	}
}

func (r Rect) String() string {
	return "<Rect(" + r.Origin.String() + ", " + r.UpperBound().String() + ")>"
}

// minExtent pads BoundingRect when every point shares a coordinate.
const minExtent float32 = 1

// BoundingRect returns the smallest splittable rectangle containing every
// point. An axis along which all points coincide is given an extent of 1 so
// that the result is still a valid Rect. ok is false when points is empty.
func BoundingRect(points ...Point) (r Rect, ok bool) {
	if len(points) == 0 {
		return Rect{}, false
	}

	lo, hi := points[0], points[0]
	for _, p := range points[1:] {
		if p.X < lo.X {
			lo.X = p.X
		}
		if p.Y < lo.Y {
			lo.Y = p.Y
		}
		if p.X > hi.X {
			hi.X = p.X
		}
		if p.Y > hi.Y {
			hi.Y = p.Y
		}
	}

	width := coveringExtent(lo.X, hi.X)
	height := coveringExtent(lo.Y, hi.Y)

	return MakeRect(lo.X, lo.Y, width, height), true
}

// coveringExtent returns an extent e such that lo+e >= hi and e/2 is still
// positive, so the resulting Rect can be split into quadrants. The rounded
// difference hi-lo can land one ulp short of hi once added back.
func coveringExtent(lo, hi float32) float32 {
	e := hi - lo
	if !(e > 0) {
		return minExtent
	}
	for lo+e < hi || !(e/2 > 0) {
		e = math.Nextafter32(e, float32(math.Inf(1)))
	}
	return e
}
