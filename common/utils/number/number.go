package number

import (
	"math"
	"strconv"
)

func Abs(f float32) float32 {
	return float32(math.Abs(float64(f)))
}

// Sqrt is math.Sqrt in single precision. Rounding the float64 root back
// to float32 gives the correctly rounded float32 result.
func Sqrt(f float32) float32 {
	return float32(math.Sqrt(float64(f)))
}

// ApproxEqual reports whether a and b differ by strictly less than epsilon.
func ApproxEqual(a, b, epsilon float32) bool {
	return Abs(a-b) < epsilon
}

func FloatToStr(f float32, places int) string {
	return strconv.FormatFloat(float64(f), 'f', places, 32)
}

// AppendFloat appends the shortest representation of f that round-trips
// through float32.
func AppendFloat(b []byte, f float32) []byte {
	return strconv.AppendFloat(b, float64(f), 'f', -1, 32)
}
