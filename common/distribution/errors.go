package distribution

import (
	"fmt"

	"github.com/pkg/errors"
)

type ErrorKind int

const (
	MalformedDocument ErrorKind = iota + 1
	MissingKey
	TypeMismatch
	UnknownGeneratorType
	UnknownGenerator
	DuplicateGenerator
	InvalidValue
)

func (k ErrorKind) String() string {
	switch k {
	case MalformedDocument:
		return "malformed document"
	case MissingKey:
		return "missing key"
	case TypeMismatch:
		return "type mismatch"
	case UnknownGeneratorType:
		return "unknown generator type"
	case UnknownGenerator:
		return "unknown generator"
	case DuplicateGenerator:
		return "duplicate generator"
	case InvalidValue:
		return "invalid value"
	}

	return "unknown error"
}

// ParseError locates a problem in a population document. Path is the
// dotted path of the offending key, e.g. "gens[1].dist.min"; Line is 1-based
// and 0 when unknown.
type ParseError struct {
	Kind ErrorKind
	Path string
	Line int
	Msg  string
}

func (e *ParseError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("%s at %s (line %d): %s", e.Kind, e.Path, e.Line, e.Msg)
	}

	return fmt.Sprintf("%s at %s: %s", e.Kind, e.Path, e.Msg)
}

// IsKind reports whether the root cause of err is a *ParseError of the given
// kind.
func IsKind(err error, kind ErrorKind) bool {
	pe, ok := errors.Cause(err).(*ParseError)
	return ok && pe.Kind == kind
}
