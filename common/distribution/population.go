package distribution

import (
	"math"
	"math/rand"

	"github.com/pkg/errors"

	"github.com/johnxnguyen/Newton/common/gens"
	"github.com/johnxnguyen/Newton/common/types"
)

// Entry spawns Num bodies sharing a name. A nil Velocity means the velocity
// produced by the Placer is used.
type Entry struct {
	Name     string
	Num      int
	Mass     gens.Scalar
	Placer   gens.Placer
	Velocity gens.VelocitySource
	Rotation gens.Scalar
}

// MaxBodies bounds the size of a population.
const MaxBodies = 1 << 24

type Population struct {
	Entries []Entry
}

// Size is the number of bodies Spawn produces. It saturates at math.MaxInt.
func (p *Population) Size() int {
	size := 0
	for _, entry := range p.Entries {
		if entry.Num > math.MaxInt-size {
			return math.MaxInt
		}
		size += entry.Num
	}
	return size
}

// Spawn draws every body of the population from rng, in document order.
func (p *Population) Spawn(rng *rand.Rand) ([]types.Body, error) {
	size := p.Size()
	if size > MaxBodies {
		return nil, errors.Errorf("population of %d bodies exceeds the limit of %d", size, MaxBodies)
	}

	bodies := make([]types.Body, 0, size)

	for _, entry := range p.Entries {
		for i := 0; i < entry.Num; i++ {
			body, err := entry.spawn(rng)
			if err != nil {
				return nil, errors.Wrapf(err, "could not spawn body %d of %s", i, entry.Name)
			}
			bodies = append(bodies, body)
		}
	}

	return bodies, nil
}

func (e Entry) spawn(rng *rand.Rand) (types.Body, error) {
	mass := types.Mass(e.Mass.Float32(rng))
	position, velocity := e.Placer.Place(rng)
	if e.Velocity != nil {
		velocity = e.Velocity.Velocity(rng)
	}
	rotation := e.Rotation.Float32(rng)

	return types.MakeBody(e.Name, mass, position, velocity, rotation)
}
