package geometry

// QuadrantKind names one of the four compass sub-regions of a Rect.
type QuadrantKind uint8

const (
	NW QuadrantKind = iota + 1
	NE
	SW
	SE
)

func (k QuadrantKind) String() string {
	switch k {
	case NW:
		return "NW"
	case NE:
		return "NE"
	case SW:
		return "SW"
	case SE:
		return "SE"
	}

	return "UnknownQuadrant"
}

// Quadrant is a classification result: which sub-region, and the rectangle
// covering it.
type Quadrant struct {
	Kind QuadrantKind
	Rect Rect
}

func (q Quadrant) String() string {
	return q.Kind.String() + q.Rect.String()
}
