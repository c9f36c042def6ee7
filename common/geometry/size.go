package geometry

import (
	"fmt"

	"github.com/johnxnguyen/Newton/common/assert"
)

// InvalidSizeError describes a width/height pair that is not strictly
// positive.
type InvalidSizeError struct {
	Width  float32
	Height float32
}

func (e *InvalidSizeError) Error() string {
	return fmt.Sprintf("A size's width and/or height must be positive. Got (%v, %v)", e.Width, e.Height)
}

// Size is a strictly positive width and height. The invariant is only
// checked by MakeSize.
type Size struct {
	Width  float32
	Height float32
}

// ValidateSize returns an *InvalidSizeError unless both width and height are
// strictly positive. NaN is rejected.
func ValidateSize(width, height float32) error {
	if !(width > 0) || !(height > 0) {
		return &InvalidSizeError{Width: width, Height: height}
	}

	return nil
}

// MakeSize panics with an *InvalidSizeError when width or height is not
// strictly positive.
func MakeSize(width, height float32) Size {
	err := ValidateSize(width, height)
	assert.Assert(err == nil, err)

	return Size{Width: width, Height: height}
}

// Halved returns the size of one quadrant.
func (s Size) Halved() Size {
	return MakeSize(s.Width/2, s.Height/2)
}

func (s Size) Area() float32 {
	return s.Width * s.Height
}
