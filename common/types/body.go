package types

import (
	uuid "github.com/satori/go.uuid"

	"github.com/johnxnguyen/Newton/common/geometry"
)

type Mass float32

// Body is one spawned member of a population. Name is the population entry
// the body was spawned from.
type Body struct {
	ID       uuid.UUID       `json:"id"`
	Name     string          `json:"name"`
	Mass     Mass            `json:"mass"`
	Position geometry.Point  `json:"position"`
	Velocity geometry.Vector `json:"velocity"`
	Rotation float32         `json:"rotation"`
}

func MakeBody(name string, mass Mass, position geometry.Point, velocity geometry.Vector, rotation float32) (Body, error) {
	id, err := uuid.NewV4()
	if err != nil {
		return Body{}, err
	}

	return Body{
		ID:       id,
		Name:     name,
		Mass:     mass,
		Position: position,
		Velocity: velocity,
		Rotation: rotation,
	}, nil
}

// Momentum returns mass times velocity.
func (b Body) Momentum() geometry.Vector {
	return b.Velocity.Scale(float32(b.Mass))
}
