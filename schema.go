package schema

import (
	"github.com/graph-gophers/graphql-go"
)

// Schema is the result of a successful Build: the named types in
// declaration order, their mounted members, and the SDL rendering.
type Schema struct {
	query        string
	mutation     string
	subscription string

	types   []NamedType
	byName  map[string]NamedType
	members map[string][]Member

	sdl string
}

func (s *Schema) add(t NamedType) {
	s.types = append(s.types, t)
	s.byName[t.TypeName()] = t
}

// QueryType returns the name of the query root type.
func (s *Schema) QueryType() string { return s.query }

// MutationType returns the name of the mutation root type, or "".
func (s *Schema) MutationType() string { return s.mutation }

// SubscriptionType returns the name of the subscription root type, or "".
func (s *Schema) SubscriptionType() string { return s.subscription }

// Types returns the named types the schema declares, built-in scalars
// excluded.
func (s *Schema) Types() []NamedType {
	return s.types
}

// Type returns the named type called name, or nil.
func (s *Schema) Type(name string) NamedType {
	return s.byName[name]
}

// Members returns the mounted members of the container called name, in
// declaration order.
func (s *Schema) Members(name string) []Member {
	return s.members[name]
}

// Field returns the field name of the object or interface typeName, or nil.
func (s *Schema) Field(typeName, name string) *Field {
	for _, m := range s.members[typeName] {
		if f, ok := m.(*Field); ok && f.Name == name {
			return f
		}
	}
	return nil
}

// InputField returns the input field name of the input object typeName, or nil.
func (s *Schema) InputField(typeName, name string) *InputField {
	for _, m := range s.members[typeName] {
		if f, ok := m.(*InputField); ok && f.Name == name {
			return f
		}
	}
	return nil
}

// String returns the schema in the GraphQL schema definition language.
func (s *Schema) String() string {
	return s.sdl
}

// Parse turns the schema into an executable graphql-go schema backed by
// resolver. Descriptions are exposed to introspection.
func (s *Schema) Parse(resolver any, opts ...graphql.SchemaOpt) (*graphql.Schema, error) {
	opts = append([]graphql.SchemaOpt{graphql.UseStringDescriptions()}, opts...)
	gs, err := graphql.ParseSchema(s.sdl, resolver, opts...)
	if err != nil {
		return nil, newError(ErrSchemaValidation, "parse schema: %v", err)
	}
	return gs, nil
}

// references reports whether any member of the schema uses t.
func (s *Schema) references(t NamedType) bool {
	for _, members := range s.members {
		for _, m := range members {
			switch v := m.(type) {
			case *Field:
				if namedOf(v.Type) == Type(t) {
					return true
				}
				for _, a := range v.Args {
					if namedOf(a.Type) == Type(t) {
						return true
					}
				}
			case *InputField:
				if namedOf(v.Type) == Type(t) {
					return true
				}
			}
		}
	}
	return false
}
