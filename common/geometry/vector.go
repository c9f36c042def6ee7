package geometry

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/johnxnguyen/Newton/common/utils/number"
)

// VectorEpsilon is the per-component threshold used by ApproxEquals.
const VectorEpsilon float32 = 1e-7

// Vector is a change of coordinates in 2-space. It is not anchored to any
// point.
type Vector struct {
	DX float32
	DY float32
}

func MakeVector(dx, dy float32) Vector {
	return Vector{DX: dx, DY: dy}
}

// ZeroVector returns the additive identity.
func ZeroVector() Vector {
	return Vector{}
}

// Difference returns the vector going from b to a.
func Difference(a, b Point) Vector {
	return Vector{
		DX: a.X - b.X,
		DY: a.Y - b.Y,
	}
}

func (a Vector) Add(b Vector) Vector {
	a.DX += b.DX
	a.DY += b.DY
	return a
}

// AddAssign accumulates b into the receiver.
func (a *Vector) AddAssign(b Vector) {
	a.DX += b.DX
	a.DY += b.DY
}

func (a Vector) Sub(b Vector) Vector {
	a.DX -= b.DX
	a.DY -= b.DY
	return a
}

func (a Vector) Neg() Vector {
	a.DX = -a.DX
	a.DY = -a.DY
	return a
}

func (a Vector) Scale(scale float32) Vector {
	a.DX *= scale
	a.DY *= scale
	return a
}

// DivScalar divides both components by f. Dividing by zero follows IEEE 754
// and yields infinities or NaN.
func (a Vector) DivScalar(f float32) Vector {
	a.DX /= f
	a.DY /= f
	return a
}

// Dot returns the inner product.
func (a Vector) Dot(b Vector) float32 {
	return float32(a.DX*b.DX) + float32(a.DY*b.DY)
}

func (a Vector) Magnitude() float32 {
	if m := number.Sqrt(a.Dot(a)); !math.IsInf(float64(m), 0) {
		return m
	}

	// The squares overflowed; the length itself may still fit.
	return float32(math.Hypot(float64(a.DX), float64(a.DY)))
}

// Normalized returns the unit vector pointing in the same direction. ok is
// false when a is the zero vector, which has no direction. A vector whose
// length does not fit in a float32 normalizes to the zero vector.
func (a Vector) Normalized() (unit Vector, ok bool) {
	if a.ApproxEquals(ZeroVector()) {
		return Vector{}, false
	}

	return a.DivScalar(a.Magnitude()), true
}

// Rotated returns a copy of the vector rotated counter-clockwise by radians.
func (a Vector) Rotated(radians float32) Vector {
	v := mgl32.Rotate2D(radians).Mul2x1(mgl32.Vec2{a.DX, a.DY})
	return Vector{DX: v.X(), DY: v.Y()}
}

// ApproxEquals reports whether both component differences are below
// VectorEpsilon. Use == for exact comparison.
func (a Vector) ApproxEquals(b Vector) bool {
	return number.ApproxEqual(a.DX, b.DX, VectorEpsilon) &&
		number.ApproxEqual(a.DY, b.DY, VectorEpsilon)
}

func (a Vector) MarshalJSON() ([]byte, error) {
	b := []byte{'['}
	b = number.AppendFloat(b, a.DX)
	b = append(b, ',')
	b = number.AppendFloat(b, a.DY)
	return append(b, ']'), nil
}

func (a Vector) String() string {
	return "<Vector(" + number.FloatToStr(a.DX, 5) + ", " + number.FloatToStr(a.DY, 5) + ")>"
}
