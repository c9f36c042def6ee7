// Package gens provides the random value generators a population is built
// from. Generators are immutable; the randomness comes from the *rand.Rand
// passed to each call, which the caller may seed. A *rand.Rand is not safe
// for concurrent use, so neither is a generator call sharing one.
package gens

import (
	"math"
	"math/rand"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/pkg/errors"

	"github.com/johnxnguyen/Newton/common/geometry"
	"github.com/johnxnguyen/Newton/common/types"
)

// Scalar produces one float32 per call.
type Scalar interface {
	Float32(rng *rand.Rand) float32
}

// Placer produces an initial position and the velocity that comes with it.
type Placer interface {
	Place(rng *rand.Rand) (geometry.Point, geometry.Vector)
}

// VelocitySource produces an initial velocity.
type VelocitySource interface {
	Velocity(rng *rand.Rand) geometry.Vector
}

// Uniform draws uniformly from [Low, High].
type Uniform struct {
	Low  float32
	High float32
}

func MakeUniform(low, high float32) (Uniform, error) {
	if !isFinite(low) || !isFinite(high) {
		return Uniform{}, errors.Errorf("bounds must be finite, got [%v, %v]", low, high)
	}

	if low > high {
		return Uniform{}, errors.Errorf("low bound %v is greater than high bound %v", low, high)
	}

	return Uniform{Low: low, High: high}, nil
}

func (u Uniform) Float32(rng *rand.Rand) float32 {
	if u.Low == u.High {
		return u.Low
	}

	v := u.Low + rng.Float32()*(u.High-u.Low)
	if v > u.High {
		return u.High
	}
	return v
}

// Repeater returns the same value forever.
type Repeater struct {
	Value float32
}

func (r Repeater) Float32(rng *rand.Rand) float32 {
	return r.Value
}

type MassGen struct {
	Uniform
}

// MakeMassGen requires 0 < low <= high.
func MakeMassGen(low, high float32) (MassGen, error) {
	if !(low > 0) {
		return MassGen{}, errors.Errorf("mass must be positive, got low bound %v", low)
	}

	u, err := MakeUniform(low, high)
	if err != nil {
		return MassGen{}, err
	}

	return MassGen{u}, nil
}

func (g MassGen) Mass(rng *rand.Rand) types.Mass {
	return types.Mass(g.Float32(rng))
}

// RotationGen draws an angle in radians.
type RotationGen struct {
	Uniform
}

func MakeRotationGenDegrees(low, high float32) (RotationGen, error) {
	u, err := MakeUniform(mgl32.DegToRad(low), mgl32.DegToRad(high))
	if err != nil {
		return RotationGen{}, err
	}

	return RotationGen{u}, nil
}

// FullTurn draws from the whole circle.
func FullTurn() RotationGen {
	return RotationGen{Uniform{Low: 0, High: 2 * math.Pi}}
}

// DistanceGen places bodies at a random distance from the origin, in a
// random direction, at rest.
type DistanceGen struct {
	Uniform
}

// MakeDistanceGen requires 0 <= min <= max.
func MakeDistanceGen(min, max float32) (DistanceGen, error) {
	if min < 0 {
		return DistanceGen{}, errors.Errorf("distance must not be negative, got min %v", min)
	}

	u, err := MakeUniform(min, max)
	if err != nil {
		return DistanceGen{}, err
	}

	return DistanceGen{u}, nil
}

func (g DistanceGen) Place(rng *rand.Rand) (geometry.Point, geometry.Vector) {
	radius := geometry.MakeVector(g.Float32(rng), 0)
	direction := FullTurn().Float32(rng)

	return geometry.Origin().Translated(radius.Rotated(direction)), geometry.ZeroVector()
}

// VelocityGen draws a speed in [Speed.Low, Speed.High] along a heading in
// [Heading.Low, Heading.High] radians, measured counter-clockwise from +x.
type VelocityGen struct {
	Heading Uniform
	Speed   Uniform
}

// MakeVelocityGen requires headingLow <= headingHigh and 0 <= speedMin <=
// speedMax.
func MakeVelocityGen(headingLow, headingHigh, speedMin, speedMax float32) (VelocityGen, error) {
	heading, err := MakeUniform(headingLow, headingHigh)
	if err != nil {
		return VelocityGen{}, errors.Wrap(err, "invalid heading")
	}

	if speedMin < 0 {
		return VelocityGen{}, errors.Errorf("speed must not be negative, got min %v", speedMin)
	}

	speed, err := MakeUniform(speedMin, speedMax)
	if err != nil {
		return VelocityGen{}, errors.Wrap(err, "invalid speed")
	}

	return VelocityGen{Heading: heading, Speed: speed}, nil
}

func (g VelocityGen) Velocity(rng *rand.Rand) geometry.Vector {
	return geometry.MakeVector(g.Speed.Float32(rng), 0).Rotated(g.Heading.Float32(rng))
}

// RadialGen places bodies on a ring around the origin, each moving
// perpendicular to its radius (counter-clockwise).
type RadialGen struct {
	Distance DistanceGen
	Rotation RotationGen
	Velocity VelocityGen
}

func MakeRadialGen(distance DistanceGen, rotation RotationGen, velocity VelocityGen) RadialGen {
	return RadialGen{
		Distance: distance,
		Rotation: rotation,
		Velocity: velocity,
	}
}

func (g RadialGen) Place(rng *rand.Rand) (geometry.Point, geometry.Vector) {
	angle := g.Rotation.Float32(rng)
	radius := geometry.MakeVector(g.Distance.Float32(rng), 0)
	velocity := g.Velocity.Velocity(rng)

	position := geometry.Origin().Translated(radius.Rotated(angle))
	return position, velocity.Rotated(angle + math.Pi/2)
}

// FixedPoint always places at the same position, at rest.
type FixedPoint struct {
	Position geometry.Point
}

func (f FixedPoint) Place(rng *rand.Rand) (geometry.Point, geometry.Vector) {
	return f.Position, geometry.ZeroVector()
}

// FixedVelocity always returns the same velocity.
type FixedVelocity struct {
	Value geometry.Vector
}

func (f FixedVelocity) Velocity(rng *rand.Rand) geometry.Vector {
	return f.Value
}

func isFinite(f float32) bool {
	return !math.IsNaN(float64(f)) && !math.IsInf(float64(f), 0)
}
