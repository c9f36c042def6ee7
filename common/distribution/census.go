package distribution

import (
	"github.com/johnxnguyen/Newton/common/geometry"
	"github.com/johnxnguyen/Newton/common/types"
)

// Census counts bodies per quadrant of the rect bounding their positions.
type Census struct {
	Bounds  geometry.Rect
	Counts  map[geometry.QuadrantKind]int
	Outside int
}

// TakeCensus returns false when there are no bodies to bound.
func TakeCensus(bodies []types.Body) (Census, bool) {
	positions := make([]geometry.Point, len(bodies))
	for i, body := range bodies {
		positions[i] = body.Position
	}

	bounds, ok := geometry.BoundingRect(positions...)
	if !ok {
		return Census{}, false
	}

	census := Census{
		Bounds: bounds,
		Counts: make(map[geometry.QuadrantKind]int),
	}

	for _, quadrant := range bounds.Subspaces() {
		census.Counts[quadrant.Kind] = 0
	}

	for _, position := range positions {
		quadrant, ok := bounds.WhichQuadrant(position)
		if !ok {
			census.Outside++
			continue
		}
		census.Counts[quadrant.Kind]++
	}

	return census, true
}

func (c Census) Total() int {
	total := c.Outside
	for _, count := range c.Counts {
		total += count
	}
	return total
}
