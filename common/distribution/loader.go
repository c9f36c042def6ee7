// Package distribution loads a population description: named random value
// generators and the bodies that reference them. Malformed input never
// aborts the process; it is reported as a *ParseError, possibly wrapped with
// context (use IsKind or errors.Cause to inspect it).
//
// A document looks like:
//
//	gens:
//	  - name: heavy
//	    type: mass
//	    low: 10
//	    high: 20
//	  - name: disc
//	    type: radial
//	    dist: {min: 100, max: 200}
//	    vel: {min: 3, max: 4}
//	bodies:
//	  - name: sun
//	    mass: 1000
//	  - name: planets
//	    num: 12
//	    mass: heavy
//	    trans: disc
package distribution

import (
	"fmt"
	"io/ioutil"
	"os"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/johnxnguyen/Newton/common/geometry"
	"github.com/johnxnguyen/Newton/common/gens"
	"github.com/johnxnguyen/Newton/common/utils"
)

// Generator type tags.
const (
	TypeMass     = "mass"
	TypeDistance = "distance"
	TypeVelocity = "velocity"
	TypeRotation = "rotation"
	TypeRadial   = "radial"
)

// Loader parses population documents. Each Parse starts from an empty set
// of generators; the generators of the last document stay available for
// inspection.
type Loader struct {
	massGens     map[string]gens.MassGen
	distanceGens map[string]gens.DistanceGen
	velocityGens map[string]gens.VelocityGen
	rotationGens map[string]gens.RotationGen
	radialGens   map[string]gens.RadialGen

	debug bool
}

// NewLoader returns a Loader. With debug set, a JSON summary line is emitted
// through utils.Debug after every successful parse.
func NewLoader(debug bool) *Loader {
	l := &Loader{debug: debug}
	l.reset()
	return l
}

func (l *Loader) reset() {
	l.massGens = make(map[string]gens.MassGen)
	l.distanceGens = make(map[string]gens.DistanceGen)
	l.velocityGens = make(map[string]gens.VelocityGen)
	l.rotationGens = make(map[string]gens.RotationGen)
	l.radialGens = make(map[string]gens.RadialGen)
}

// GeneratorCounts returns how many generators of each type were loaded.
func (l *Loader) GeneratorCounts() map[string]int {
	return map[string]int{
		TypeMass:     len(l.massGens),
		TypeDistance: len(l.distanceGens),
		TypeVelocity: len(l.velocityGens),
		TypeRotation: len(l.rotationGens),
		TypeRadial:   len(l.radialGens),
	}
}

func (l *Loader) Load(path string) (*Population, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, errors.Errorf("missing population file: %s", path)
	}

	data, err := ioutil.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "could not read population file %s", path)
	}

	population, err := l.Parse(data)
	if err != nil {
		return nil, errors.Wrapf(err, "could not load population file %s", path)
	}

	return population, nil
}

func (l *Loader) Parse(data []byte) (*Population, error) {
	l.reset()

	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, &ParseError{Kind: MalformedDocument, Path: "$", Msg: err.Error()}
	}

	if doc.Kind != yaml.DocumentNode || len(doc.Content) == 0 {
		return nil, &ParseError{Kind: MissingKey, Path: "$.bodies", Msg: "document is empty"}
	}

	root, err := asMapping(resolve(doc.Content[0]), "$")
	if err != nil {
		return nil, err
	}

	if gensNode := lookup(root, "gens"); gensNode != nil {
		seq, err := asSequence(gensNode, "$.gens")
		if err != nil {
			return nil, err
		}

		for i, gen := range seq.Content {
			if err := l.parseGen(resolve(gen), index("$.gens", i)); err != nil {
				return nil, err
			}
		}
	}

	bodiesNode, err := requireKey(root, "bodies", "$")
	if err != nil {
		return nil, err
	}

	seq, err := asSequence(bodiesNode, "$.bodies")
	if err != nil {
		return nil, err
	}

	population := &Population{}
	total := 0
	for i, body := range seq.Content {
		body = resolve(body)
		bodyPath := index("$.bodies", i)

		entry, err := l.parseBody(body, bodyPath)
		if err != nil {
			return nil, err
		}

		if total += entry.Num; total > MaxBodies {
			return nil, invalid(body, bodyPath, errors.Errorf("population exceeds %d bodies", MaxBodies))
		}
		population.Entries = append(population.Entries, entry)
	}

	if l.debug {
		context := utils.Context{"bodies": population.Size()}
		for k, v := range l.GeneratorCounts() {
			context[k+" gens"] = v
		}
		utils.DebugWith("distribution", "population loaded", context)
	}

	return population, nil
}

func (l *Loader) defined(name string) bool {
	_, mass := l.massGens[name]
	_, distance := l.distanceGens[name]
	_, velocity := l.velocityGens[name]
	_, rotation := l.rotationGens[name]
	_, radial := l.radialGens[name]
	return mass || distance || velocity || rotation || radial
}

func (l *Loader) parseGen(n *yaml.Node, path string) error {
	gen, err := asMapping(n, path)
	if err != nil {
		return err
	}

	name, nameNode, err := requireString(gen, "name", path)
	if err != nil {
		return err
	}

	genType, typeNode, err := requireString(gen, "type", path)
	if err != nil {
		return err
	}

	if l.defined(name) {
		return &ParseError{
			Kind: DuplicateGenerator,
			Path: child(path, "name"),
			Line: nameNode.Line,
			Msg:  fmt.Sprintf("generator %q is already defined", name),
		}
	}

	switch genType {
	case TypeMass:
		low, high, err := parseBounds(gen, path)
		if err != nil {
			return err
		}
		g, err := gens.MakeMassGen(low, high)
		if err != nil {
			return invalid(gen, path, err)
		}
		l.massGens[name] = g

	case TypeDistance:
		g, err := parseDistance(gen, path)
		if err != nil {
			return err
		}
		l.distanceGens[name] = g

	case TypeVelocity:
		g, err := parseVelocity(gen, path)
		if err != nil {
			return err
		}
		l.velocityGens[name] = g

	case TypeRotation:
		low, high, err := parseBounds(gen, path)
		if err != nil {
			return err
		}
		g, err := gens.MakeRotationGenDegrees(low, high)
		if err != nil {
			return invalid(gen, path, err)
		}
		l.rotationGens[name] = g

	case TypeRadial:
		distance, err := parseDistance(gen, path)
		if err != nil {
			return err
		}
		velocity, err := parseVelocity(gen, path)
		if err != nil {
			return err
		}
		l.radialGens[name] = gens.MakeRadialGen(distance, gens.FullTurn(), velocity)

	default:
		return &ParseError{
			Kind: UnknownGeneratorType,
			Path: child(path, "type"),
			Line: typeNode.Line,
			Msg:  fmt.Sprintf("unknown generator type %q", genType),
		}
	}

	return nil
}

func parseBounds(gen *yaml.Node, path string) (low, high float32, err error) {
	if low, err = requireFloat(gen, "low", path); err != nil {
		return
	}
	high, err = requireFloat(gen, "high", path)
	return
}

// parseRange reads a {min, max} mapping stored under key.
func parseRange(gen *yaml.Node, key, path string) (lo, hi float32, n *yaml.Node, err error) {
	if n, err = requireKey(gen, key, path); err != nil {
		return
	}

	rangePath := child(path, key)
	if n, err = asMapping(n, rangePath); err != nil {
		return
	}

	if lo, err = requireFloat(n, "min", rangePath); err != nil {
		return
	}
	hi, err = requireFloat(n, "max", rangePath)
	return
}

func parseDistance(gen *yaml.Node, path string) (gens.DistanceGen, error) {
	lo, hi, n, err := parseRange(gen, "dist", path)
	if err != nil {
		return gens.DistanceGen{}, err
	}

	g, err := gens.MakeDistanceGen(lo, hi)
	if err != nil {
		return gens.DistanceGen{}, invalid(n, child(path, "dist"), err)
	}

	return g, nil
}

func parseVelocity(gen *yaml.Node, path string) (gens.VelocityGen, error) {
	lo, hi, n, err := parseRange(gen, "vel", path)
	if err != nil {
		return gens.VelocityGen{}, err
	}

	g, err := gens.MakeVelocityGen(0, 0, lo, hi)
	if err != nil {
		return gens.VelocityGen{}, invalid(n, child(path, "vel"), err)
	}

	return g, nil
}

func (l *Loader) parseBody(n *yaml.Node, path string) (Entry, error) {
	body, err := asMapping(n, path)
	if err != nil {
		return Entry{}, err
	}

	entry := Entry{
		Num:      1,
		Placer:   gens.FixedPoint{Position: geometry.Origin()},
		Rotation: gens.Repeater{Value: 0},
	}

	if entry.Name, _, err = requireString(body, "name", path); err != nil {
		return Entry{}, err
	}

	if numNode := lookup(body, "num"); numNode != nil {
		numPath := child(path, "num")
		if entry.Num, err = asInt(numNode, numPath); err != nil {
			return Entry{}, err
		}
		if entry.Num <= 0 {
			return Entry{}, invalid(numNode, numPath, errors.Errorf("num must be positive, got %d", entry.Num))
		}
		if entry.Num > MaxBodies {
			return Entry{}, invalid(numNode, numPath, errors.Errorf("num must be at most %d, got %d", MaxBodies, entry.Num))
		}
	}

	massNode, err := requireKey(body, "mass", path)
	if err != nil {
		return Entry{}, err
	}
	if entry.Mass, err = l.parseMass(massNode, child(path, "mass")); err != nil {
		return Entry{}, err
	}

	if transNode := lookup(body, "trans"); transNode != nil {
		if entry.Placer, err = l.parseTrans(transNode, child(path, "trans")); err != nil {
			return Entry{}, err
		}
	}

	if velNode := lookup(body, "vel"); velNode != nil {
		if entry.Velocity, err = l.parseVel(velNode, child(path, "vel")); err != nil {
			return Entry{}, err
		}
	}

	if rotNode := lookup(body, "rot"); rotNode != nil {
		if entry.Rotation, err = l.parseRot(rotNode, child(path, "rot")); err != nil {
			return Entry{}, err
		}
	}

	return entry, nil
}

func unknownGenerator(n *yaml.Node, path, expected string) error {
	return &ParseError{
		Kind: UnknownGenerator,
		Path: path,
		Line: n.Line,
		Msg:  fmt.Sprintf("no %s generator named %q", expected, n.Value),
	}
}

func (l *Loader) parseMass(n *yaml.Node, path string) (gens.Scalar, error) {
	switch {
	case isString(n):
		if g, ok := l.massGens[n.Value]; ok {
			return g, nil
		}
		return nil, unknownGenerator(n, path, TypeMass)

	case isNumber(n):
		mass, err := asFloat(n, path)
		if err != nil {
			return nil, err
		}
		if !(mass > 0) {
			return nil, invalid(n, path, errors.Errorf("mass must be positive, got %v", mass))
		}
		return gens.Repeater{Value: mass}, nil
	}

	return nil, mismatch(n, path, "number or mass generator name")
}

func (l *Loader) parseTrans(n *yaml.Node, path string) (gens.Placer, error) {
	switch {
	case isString(n):
		if g, ok := l.distanceGens[n.Value]; ok {
			return g, nil
		}
		if g, ok := l.radialGens[n.Value]; ok {
			return g, nil
		}
		return nil, unknownGenerator(n, path, "distance or radial")

	case isMapping(n):
		x, err := requireFloat(n, "x", path)
		if err != nil {
			return nil, err
		}
		y, err := requireFloat(n, "y", path)
		if err != nil {
			return nil, err
		}
		return gens.FixedPoint{Position: geometry.MakePoint(x, y)}, nil
	}

	return nil, mismatch(n, path, "{x, y} or generator name")
}

func (l *Loader) parseVel(n *yaml.Node, path string) (gens.VelocitySource, error) {
	switch {
	case isString(n):
		if g, ok := l.velocityGens[n.Value]; ok {
			return g, nil
		}
		return nil, unknownGenerator(n, path, TypeVelocity)

	case isMapping(n):
		dx, err := requireFloat(n, "dx", path)
		if err != nil {
			return nil, err
		}
		dy, err := requireFloat(n, "dy", path)
		if err != nil {
			return nil, err
		}
		return gens.FixedVelocity{Value: geometry.MakeVector(dx, dy)}, nil
	}

	return nil, mismatch(n, path, "{dx, dy} or velocity generator name")
}

func (l *Loader) parseRot(n *yaml.Node, path string) (gens.Scalar, error) {
	switch {
	case isString(n):
		if g, ok := l.rotationGens[n.Value]; ok {
			return g, nil
		}
		return nil, unknownGenerator(n, path, TypeRotation)

	case isNumber(n):
		degrees, err := asFloat(n, path)
		if err != nil {
			return nil, err
		}
		return gens.Repeater{Value: mgl32.DegToRad(degrees)}, nil
	}

	return nil, mismatch(n, path, "degrees or rotation generator name")
}
