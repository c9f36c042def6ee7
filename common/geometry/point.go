package geometry

import (
	"github.com/johnxnguyen/Newton/common/utils/number"
)

// Point is an absolute position in 2-space. Equality is exact.
type Point struct {
	X float32
	Y float32
}

func MakePoint(x, y float32) Point {
	return Point{X: x, Y: y}
}

// Origin returns (0, 0).
func Origin() Point {
	return Point{}
}

func (p Point) IsOrigin() bool {
	return p == Origin()
}

func (p Point) Equals(other Point) bool {
	return p == other
}

// DistanceTo returns the Euclidean distance between the two points.
func (p Point) DistanceTo(other Point) float32 {
	return Difference(p, other).Magnitude()
}

// Translated returns a copy of the point moved by v.
func (p Point) Translated(v Vector) Point {
	p.X += v.DX
	p.Y += v.DY
	return p
}

func (p Point) MarshalJSON() ([]byte, error) {
	b := []byte{'['}
	b = number.AppendFloat(b, p.X)
	b = append(b, ',')
	b = number.AppendFloat(b, p.Y)
	return append(b, ']'), nil
}

func (p Point) String() string {
	return "<Point(" + number.FloatToStr(p.X, 5) + ", " + number.FloatToStr(p.Y, 5) + ")>"
}
