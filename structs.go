package schema

import (
	"reflect"
	"unicode"

	"github.com/llehouerou/go-graphql-schema/internal/reflectutil"
	"github.com/llehouerou/go-graphql-schema/internal/tagparser"
	"github.com/llehouerou/go-graphql-schema/types"
)

// ObjectOf registers an object type described by the struct v. Every
// exported field becomes a proxy declared in field order:
//
//	type Person struct {
//		ID      schema.UUID `description:"Primary key"`
//		Name    *string
//		Friends []Person    `graphql:"friends(first: Int)"`
//		Email   *string     `deprecated:"use contacts"`
//		secret  string
//		Cache   any         `graphql:"-"`
//	}
//
// Field types map as they do in query variables: values are non-null,
// pointers nullable, slices lists. Struct types must already be registered
// under their Go name, or implement types.GraphQLType.
func (b *Builder) ObjectOf(v any, opts ...ContainerOption) (*Container, error) {
	return b.registerStruct(v, BaseObjectType, opts)
}

// InterfaceOf registers an interface described by the struct v.
func (b *Builder) InterfaceOf(v any, opts ...ContainerOption) (*Container, error) {
	return b.registerStruct(v, BaseInterface, opts)
}

// InputObjectOf registers an input object type described by the struct v.
// Argument lists and deprecations are rejected.
func (b *Builder) InputObjectOf(v any, opts ...ContainerOption) (*Container, error) {
	return b.registerStruct(v, BaseInputObjectType, opts)
}

func (b *Builder) registerStruct(v any, base Base, opts []ContainerOption) (*Container, error) {
	t := reflect.TypeOf(v)
	if t == nil {
		return nil, newError(ErrConfiguration, "cannot register a container from nil")
	}
	for t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	if t.Kind() != reflect.Struct {
		return nil, newError(ErrConfiguration, "cannot register a container from %s, want a struct", t)
	}

	name, ok := reflectutil.GetGraphQLTypeFromType(t)
	if !ok {
		name = t.Name()
	}
	if name == "" {
		return nil, newError(ErrConfiguration, "cannot register a container from an anonymous struct")
	}

	// Resolve every member before registering so that a failure leaves the
	// builder untouched. The container may refer to itself.
	c := newContainer(name, []Base{base}, opts...)
	lookup := func(n string) (Type, bool) {
		if n == name {
			return c, true
		}
		return b.Lookup(n)
	}
	type declaration struct {
		name  string
		proxy *Proxy
	}
	var decls []declaration
	input := base == BaseInputObjectType

	for i := 0; i < t.NumField(); i++ {
		sf := t.Field(i)
		if sf.PkgPath != "" || sf.Anonymous {
			continue
		}

		parsed, err := tagparser.ParseGraphQLTag(sf.Tag.Get(types.GraphQLTag))
		if err != nil {
			return nil, newError(ErrConfiguration, "%s.%s: %v", name, sf.Name, err)
		}
		if parsed.Skip {
			continue
		}
		memberName := parsed.FieldName
		if memberName == "" {
			memberName = lowerCamel(sf.Name)
		}

		ft, err := ParseTypeRef(reflectutil.TypeExpression(sf.Type), lookup)
		if err != nil {
			return nil, newError(ErrConfiguration, "%s.%s: %v", name, sf.Name, err)
		}

		kw := Keywords{paramName: memberName}
		if desc := sf.Tag.Get(types.DescriptionTag); desc != "" {
			kw[paramDescription] = desc
		}
		if reason, ok := sf.Tag.Lookup(types.DeprecatedTag); ok {
			if input {
				return nil, newError(ErrConfiguration, "%s.%s: input fields cannot be deprecated", name, sf.Name)
			}
			if reason == "" {
				reason = "No longer supported"
			}
			kw[paramDeprecationReason] = reason
		}

		specs, err := tagparser.ParseArguments(parsed.Arguments)
		if err != nil {
			return nil, newError(ErrConfiguration, "%s.%s: %v", name, sf.Name, err)
		}
		if len(specs) > 0 && input {
			return nil, newError(ErrConfiguration, "%s.%s: input fields take no arguments", name, sf.Name)
		}

		// The field proxy is created before its arguments so that the
		// struct field order is the member order.
		proxy := NewProxy(b.session.Sequence(), ft, nil, kw)
		if len(specs) > 0 {
			args := Arguments{}
			for _, spec := range specs {
				at, err := ParseTypeRef(spec.Type, lookup)
				if err != nil {
					return nil, newError(ErrConfiguration, "%s.%s(%s:): %v", name, sf.Name, spec.Name, err)
				}
				args[spec.Name] = b.session.Of(at, Keywords{paramName: spec.Name})
			}
			kw[paramArgs] = args
		}
		decls = append(decls, declaration{name: memberName, proxy: proxy})
	}

	if err := b.add(c); err != nil {
		return nil, *err
	}
	for _, d := range decls {
		c.Set(d.name, d.proxy)
	}
	return c, nil
}

// lowerCamel lowers the leading upper-case run of a Go identifier:
// "Name" -> "name", "ID" -> "id", "URLPath" -> "urlPath".
func lowerCamel(s string) string {
	rs := []rune(s)
	for i := 0; i < len(rs) && unicode.IsUpper(rs[i]); i++ {
		if i > 0 && i+1 < len(rs) && unicode.IsLower(rs[i+1]) {
			break
		}
		rs[i] = unicode.ToLower(rs[i])
	}
	return string(rs)
}
