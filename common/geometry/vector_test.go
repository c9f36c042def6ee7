package geometry

import (
	"encoding/json"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVector_addAssigns(t *testing.T) {
	sut := Vector{DX: 3, DY: 4}

	sut.AddAssign(Vector{DX: 9.5, DY: -3.5})

	assert.True(t, sut.ApproxEquals(Vector{DX: 12.5, DY: 0.5}), "got %v", sut)
}

func TestVector_add(t *testing.T) {
	a := Vector{DX: 1, DY: -2}
	b := Vector{DX: 0.5, DY: 0.25}

	assert.Equal(t, Vector{DX: 1.5, DY: -1.75}, a.Add(b))
	assert.Equal(t, Vector{DX: 1, DY: -2}, a, "Add must not mutate its receiver")
	assert.Equal(t, Vector{DX: 0.5, DY: -2.25}, a.Sub(b))
	assert.Equal(t, Vector{DX: -1, DY: 2}, a.Neg())
}

func TestVector_scalarMultiplies(t *testing.T) {
	assert.Equal(t, Vector{DX: 9, DY: 12}, Vector{DX: 3, DY: 4}.Scale(3))
}

func TestVector_scalarDivides(t *testing.T) {
	assert.Equal(t, Vector{DX: 1, DY: 4}, Vector{DX: 3, DY: 12}.DivScalar(3))
}

func TestVector_divideByZero(t *testing.T) {
	result := Vector{DX: 3, DY: -3}.DivScalar(0)
	assert.True(t, math.IsInf(float64(result.DX), 1))
	assert.True(t, math.IsInf(float64(result.DY), -1))

	result = ZeroVector().DivScalar(0)
	assert.True(t, math.IsNaN(float64(result.DX)))
}

func TestVector_innerProduct(t *testing.T) {
	a := Vector{DX: 3.4, DY: -4.9}
	b := Vector{DX: 10, DY: 6.3}

	assert.InDelta(t, 3.13, a.Dot(b), 0.00001)
	assert.Equal(t, a.Dot(b), b.Dot(a))
}

func TestVector_magnitude(t *testing.T) {
	assert.Equal(t, float32(5), Vector{DX: 3, DY: 4}.Magnitude())
	assert.Equal(t, float32(5), Vector{DX: -3, DY: -4}.Magnitude())
	assert.Equal(t, float32(0), ZeroVector().Magnitude())
}

func TestVector_normalize(t *testing.T) {
	examples := []Vector{
		{DX: 3.3, DY: 5.2},
		{DX: 1, DY: 1},
		{DX: -2.5, DY: 7.1},
		{DX: 0.001, DY: 0},
		{DX: 0.1, DY: 0.2},
		{DX: 123.4, DY: -0.001},
	}

	for _, example := range examples {
		t.Run(example.String(), func(t *testing.T) {
			result, ok := example.Normalized()
			require.True(t, ok)

			assert.InDelta(t, 1, result.Magnitude(), 1e-7)
			assert.Equal(t, example.DX > 0, result.DX > 0)
			assert.Equal(t, example.DY > 0, result.DY > 0)
		})
	}
}

func TestVector_hugeComponents(t *testing.T) {
	v := Vector{DX: 3e19, DY: 4e19}

	assert.False(t, math.IsInf(float64(v.Magnitude()), 0))
	assert.InEpsilon(t, 5e19, v.Magnitude(), 1e-6)

	unit, ok := v.Normalized()
	require.True(t, ok)
	assert.InDelta(t, 0.6, unit.DX, 1e-6)
	assert.InDelta(t, 0.8, unit.DY, 1e-6)

	huge := Vector{DX: math.MaxFloat32, DY: math.MaxFloat32}
	assert.True(t, math.IsInf(float64(huge.Magnitude()), 1))
}

func TestVector_doesNotNormalizeIfZero(t *testing.T) {
	result, ok := ZeroVector().Normalized()
	assert.False(t, ok)
	assert.Equal(t, ZeroVector(), result)

	_, ok = Vector{DX: 5e-8, DY: -5e-8}.Normalized()
	assert.False(t, ok, "a vector within tolerance of zero has no direction")
}

func TestVector_approxEquals(t *testing.T) {
	a := Vector{DX: 1, DY: 2}

	assert.True(t, a.ApproxEquals(a))
	assert.True(t, a.ApproxEquals(Vector{DX: 1, DY: 2.0000001}))
	assert.False(t, a.ApproxEquals(Vector{DX: 1.001, DY: 2}))
	assert.False(t, a.ApproxEquals(Vector{DX: 1, DY: 1.999}))
}

func TestVector_difference(t *testing.T) {
	a := MakePoint(4, 1)
	b := MakePoint(1, 5)

	assert.Equal(t, Vector{DX: 3, DY: -4}, Difference(a, b))
	assert.Equal(t, Vector{DX: -3, DY: 4}, Difference(b, a))
	assert.Equal(t, ZeroVector(), Difference(a, a))
}

func TestVector_rotated(t *testing.T) {
	result := Vector{DX: 1, DY: 0}.Rotated(math.Pi / 2)

	assert.InDelta(t, 0, result.DX, 1e-6)
	assert.InDelta(t, 1, result.DY, 1e-6)
	assert.InDelta(t, 5, Vector{DX: 3, DY: 4}.Rotated(1.234).Magnitude(), 1e-5)
}

func TestVector_marshalJSON(t *testing.T) {
	data, err := json.Marshal(Vector{DX: 1.5, DY: -0.25})
	require.NoError(t, err)
	assert.Equal(t, "[1.5,-0.25]", string(data))
}
