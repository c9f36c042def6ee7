package distribution

import (
	"fmt"
	"math"

	"gopkg.in/yaml.v3"
)

func resolve(n *yaml.Node) *yaml.Node {
	for n != nil && n.Kind == yaml.AliasNode && n.Alias != nil {
		n = n.Alias
	}
	return n
}

func child(path, key string) string {
	return path + "." + key
}

func index(path string, i int) string {
	return fmt.Sprintf("%s[%d]", path, i)
}

// lookup returns the value for key in a mapping node, or nil.
func lookup(m *yaml.Node, key string) *yaml.Node {
	for i := 0; i+1 < len(m.Content); i += 2 {
		if m.Content[i].Value == key {
			return resolve(m.Content[i+1])
		}
	}
	return nil
}

func requireKey(m *yaml.Node, key, path string) (*yaml.Node, error) {
	if n := lookup(m, key); n != nil {
		return n, nil
	}

	return nil, &ParseError{
		Kind: MissingKey,
		Path: child(path, key),
		Line: m.Line,
		Msg:  fmt.Sprintf("%q is required", key),
	}
}

func describe(n *yaml.Node) string {
	switch n.Kind {
	case yaml.MappingNode:
		return "mapping"
	case yaml.SequenceNode:
		return "sequence"
	case yaml.ScalarNode:
		switch n.ShortTag() {
		case "!!int", "!!float":
			return "number"
		case "!!str":
			return "string"
		case "!!bool":
			return "boolean"
		case "!!null":
			return "null"
		}
		return "scalar " + n.ShortTag()
	}

	return "unknown node"
}

func mismatch(n *yaml.Node, path, expected string) error {
	return &ParseError{
		Kind: TypeMismatch,
		Path: path,
		Line: n.Line,
		Msg:  fmt.Sprintf("expected %s, got %s", expected, describe(n)),
	}
}

func invalid(n *yaml.Node, path string, err error) error {
	return &ParseError{
		Kind: InvalidValue,
		Path: path,
		Line: n.Line,
		Msg:  err.Error(),
	}
}

func isMapping(n *yaml.Node) bool {
	return n.Kind == yaml.MappingNode
}

func isString(n *yaml.Node) bool {
	return n.Kind == yaml.ScalarNode && n.ShortTag() == "!!str"
}

func isNumber(n *yaml.Node) bool {
	if n.Kind != yaml.ScalarNode {
		return false
	}

	tag := n.ShortTag()
	return tag == "!!int" || tag == "!!float"
}

func asMapping(n *yaml.Node, path string) (*yaml.Node, error) {
	if !isMapping(n) {
		return nil, mismatch(n, path, "mapping")
	}
	return n, nil
}

func asSequence(n *yaml.Node, path string) (*yaml.Node, error) {
	if n.Kind != yaml.SequenceNode {
		return nil, mismatch(n, path, "sequence")
	}
	return n, nil
}

func asString(n *yaml.Node, path string) (string, error) {
	if !isString(n) {
		return "", mismatch(n, path, "string")
	}
	return n.Value, nil
}

// asFloat accepts integers and floats that are finite in single precision.
func asFloat(n *yaml.Node, path string) (float32, error) {
	if !isNumber(n) {
		return 0, mismatch(n, path, "number")
	}

	var f float64
	if err := n.Decode(&f); err != nil {
		return 0, mismatch(n, path, "number")
	}

	if math.IsNaN(f) || math.IsInf(f, 0) || math.Abs(f) > math.MaxFloat32 {
		return 0, &ParseError{
			Kind: InvalidValue,
			Path: path,
			Line: n.Line,
			Msg:  fmt.Sprintf("%s is not a finite single precision number", n.Value),
		}
	}

	return float32(f), nil
}

func asInt(n *yaml.Node, path string) (int, error) {
	if n.Kind != yaml.ScalarNode || n.ShortTag() != "!!int" {
		return 0, mismatch(n, path, "integer")
	}

	var i int
	if err := n.Decode(&i); err != nil {
		return 0, invalid(n, path, err)
	}

	return i, nil
}

func requireFloat(m *yaml.Node, key, path string) (float32, error) {
	n, err := requireKey(m, key, path)
	if err != nil {
		return 0, err
	}

	return asFloat(n, child(path, key))
}

func requireString(m *yaml.Node, key, path string) (string, *yaml.Node, error) {
	n, err := requireKey(m, key, path)
	if err != nil {
		return "", nil, err
	}

	s, err := asString(n, child(path, key))
	return s, n, err
}
