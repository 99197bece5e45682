package schema

import (
	"fmt"
	"strings"

	"github.com/llehouerou/go-graphql-schema/types"
)

// Type is a GraphQL type reference: a named type or a List/NonNull wrapper.
type Type interface {
	types.GraphQLType
}

// NamedType is a type that is declared once in a schema under its name.
type NamedType interface {
	Type
	TypeName() string
	Description() string
}

// Scalar is a leaf type.
type Scalar struct {
	Name string
	Desc string
}

func (s *Scalar) GetGraphQLType() string { return s.Name }
func (s *Scalar) TypeName() string       { return s.Name }
func (s *Scalar) Description() string    { return s.Desc }
func (s *Scalar) String() string         { return s.Name }

// builtinScalar returns the scalar every schema has under name, if any.
func builtinScalar(name string) (*Scalar, bool) {
	for _, s := range builtinScalars {
		if s.Name == name {
			return s, true
		}
	}
	return nil, false
}

// Built-in scalars.
var (
	String  = &Scalar{Name: "String"}
	Int     = &Scalar{Name: "Int"}
	Float   = &Scalar{Name: "Float"}
	Boolean = &Scalar{Name: "Boolean"}
	ID      = &Scalar{Name: "ID"}

	builtinScalars = []*Scalar{String, Int, Float, Boolean, ID}
)

// UUIDScalar is the custom scalar backing the UUID shorthand. Schemas that
// use it declare `scalar UUID`.
var UUIDScalar = &Scalar{Name: "UUID", Desc: "A universally unique identifier (RFC 4122)."}

// NonNull wraps a type that never resolves to null.
type NonNull struct {
	OfType Type
}

func (n NonNull) GetGraphQLType() string { return n.OfType.GetGraphQLType() + "!" }
func (n NonNull) String() string         { return n.GetGraphQLType() }

// List wraps a type in a list.
type List struct {
	OfType Type
}

func (l List) GetGraphQLType() string { return "[" + l.OfType.GetGraphQLType() + "]" }
func (l List) String() string         { return l.GetGraphQLType() }

// typeName renders t for messages; nil is reported as "<nil>".
func typeName(t Type) string {
	if t == nil {
		return "<nil>"
	}
	return t.GetGraphQLType()
}

// namedOf strips the List and NonNull wrappers of t.
func namedOf(t Type) Type {
	for {
		switch w := t.(type) {
		case NonNull:
			t = w.OfType
		case List:
			t = w.OfType
		default:
			return t
		}
	}
}

// required wraps t in NonNull unless it already is.
func required(t Type) Type {
	if _, ok := t.(NonNull); ok {
		return t
	}
	return NonNull{OfType: t}
}

// ParseTypeRef parses a type expression such as "[Person!]!" and resolves its
// named type through lookup.
func ParseTypeRef(expr string, lookup func(name string) (Type, bool)) (Type, error) {
	expr = strings.TrimSpace(expr)
	t, rest, err := parseTypeRef(expr, lookup)
	if err != nil {
		return nil, err
	}
	if rest != "" {
		return nil, fmt.Errorf("type %q: unexpected %q", expr, rest)
	}
	return t, nil
}

func parseTypeRef(s string, lookup func(string) (Type, bool)) (Type, string, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, "", fmt.Errorf("type expression: missing type")
	}

	var t Type
	if s[0] == '[' {
		inner, rest, err := parseTypeRef(s[1:], lookup)
		if err != nil {
			return nil, "", err
		}
		rest = strings.TrimSpace(rest)
		if rest == "" || rest[0] != ']' {
			return nil, "", fmt.Errorf("type expression: missing ]")
		}
		t, s = List{OfType: inner}, rest[1:]
	} else {
		end := 0
		for end < len(s) && isNameByte(s[end], end == 0) {
			end++
		}
		if end == 0 {
			return nil, "", fmt.Errorf("type expression: unexpected %q", s)
		}
		named, ok := lookup(s[:end])
		if !ok {
			return nil, "", fmt.Errorf("type %q: not defined", s[:end])
		}
		t, s = named, s[end:]
	}

	s = strings.TrimSpace(s)
	if strings.HasPrefix(s, "!") {
		t, s = NonNull{OfType: t}, s[1:]
	}
	return t, s, nil
}

func isNameByte(c byte, first bool) bool {
	switch {
	case c == '_', 'a' <= c && c <= 'z', 'A' <= c && c <= 'Z':
		return true
	case '0' <= c && c <= '9':
		return !first
	}
	return false
}
