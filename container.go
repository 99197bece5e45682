package schema

import (
	"sort"
	"strings"

	"github.com/llehouerou/go-graphql-schema/types"
)

// ContainerKind tells which members a container can hold.
type ContainerKind uint8

const (
	KindOther ContainerKind = iota
	KindObject
	KindInterface
	KindInputObject
)

func (k ContainerKind) String() string {
	switch k {
	case KindObject:
		return "object type"
	case KindInterface:
		return "interface"
	case KindInputObject:
		return "input object type"
	default:
		return "container"
	}
}

// Base names a capability a container is declared with.
type Base string

const (
	BaseObjectType      Base = "ObjectType"
	BaseInterface       Base = "Interface"
	BaseInputObjectType Base = "InputObjectType"
)

// KindOf computes the kind of a container declared with bases. Output
// capabilities win over input ones.
func KindOf(bases ...Base) ContainerKind {
	var object, iface, input bool
	for _, b := range bases {
		switch b {
		case BaseObjectType:
			object = true
		case BaseInterface:
			iface = true
		case BaseInputObjectType:
			input = true
		}
	}
	switch {
	case object:
		return KindObject
	case iface:
		return KindInterface
	case input:
		return KindInputObject
	default:
		return KindOther
	}
}

// Container is a named type whose body declares members: an object type, an
// interface, an input object type, or anything else registered with a
// Builder.
type Container struct {
	name        string
	kind        ContainerKind
	bases       []Base
	description string
	interfaces  []*Container

	declared map[string]any
}

// ContainerOption configures a container at registration.
type ContainerOption func(c *Container)

// Description sets the container description.
func Description(desc string) ContainerOption {
	return func(c *Container) {
		c.description = desc
	}
}

// Implements lists the interfaces an object type implements.
func Implements(ifaces ...*Container) ContainerOption {
	return func(c *Container) {
		c.interfaces = append(c.interfaces, ifaces...)
	}
}

func newContainer(name string, bases []Base, opts ...ContainerOption) *Container {
	c := &Container{
		name:     name,
		kind:     KindOf(bases...),
		bases:    bases,
		declared: make(map[string]any),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Container) Name() string             { return c.name }
func (c *Container) Kind() ContainerKind      { return c.kind }
func (c *Container) Bases() []Base            { return c.bases }
func (c *Container) Interfaces() []*Container { return c.interfaces }
func (c *Container) GetGraphQLType() string   { return c.name }
func (c *Container) TypeName() string         { return c.name }
func (c *Container) Description() string      { return c.description }
func (c *Container) String() string           { return c.name }

// Set declares member under name. member is a Mountable (usually a *Proxy),
// a *Field or an *InputField. Declaring a name twice keeps the last one.
func (c *Container) Set(name string, member any) *Container {
	c.declared[name] = member
	return c
}

// Declared returns the raw declaration for name.
func (c *Container) Declared(name string) (any, bool) {
	m, ok := c.declared[name]
	return m, ok
}

// declaredMember is a mounted member with the name it was declared under.
type declaredMember struct {
	Member
	decl string
}

// members mounts every declaration and returns them in declaration order.
// Names of members and of their arguments are derived from the declaration
// name with rename unless they set their own.
func (c *Container) members(rename func(string) string) ([]Member, Errors) {
	var (
		all  []declaredMember
		errs Errors
	)
	for name, d := range c.declared {
		m, err := c.mount(name, d)
		if err != nil {
			errs = append(errs, asError(err).with("member", name))
			continue
		}
		switch v := m.(type) {
		case *Field:
			mounted := *v
			if mounted.Name == "" {
				mounted.Name = rename(name)
			}
			mounted.Args = renameArguments(v.Args, rename)
			m = &mounted
		case *InputField:
			mounted := *v
			if mounted.Name == "" {
				mounted.Name = rename(name)
			}
			m = &mounted
		}
		all = append(all, declaredMember{Member: m, decl: name})
	}

	sort.SliceStable(all, func(i, j int) bool {
		if all[i].CreationOrder() != all[j].CreationOrder() {
			return all[i].CreationOrder() < all[j].CreationOrder()
		}
		return all[i].MemberName() < all[j].MemberName()
	})
	errs = append(errs, c.checkNames(all)...)
	sortErrors(errs)

	out := make([]Member, len(all))
	for i, d := range all {
		out[i] = d.Member
	}
	return out, errs
}

func renameArguments(args []*Argument, rename func(string) string) []*Argument {
	if len(args) == 0 {
		return args
	}
	out := make([]*Argument, len(args))
	for i, a := range args {
		renamed := *a
		if renamed.implicit {
			renamed.Name = rename(renamed.key)
		}
		out[i] = &renamed
	}
	return out
}

// checkNames rejects reserved names and names taken twice, among members and
// among the arguments of each field.
func (c *Container) checkNames(all []declaredMember) Errors {
	var errs Errors
	report := func(decl, format string, args ...any) {
		errs = append(errs, newError(ErrSchemaValidation, format, args...).
			with("container", c.name).with("member", decl))
	}

	taken := make(map[string]string, len(all))
	for _, d := range all {
		name := d.MemberName()
		if r, ok := reserved(d.decl, name); ok {
			report(d.decl, "%s.%s: name %q is reserved for introspection", c.name, d.decl, r)
		}
		if first, dup := taken[name]; dup {
			report(d.decl, "%s.%s is declared by both %q and %q", c.name, name, first, d.decl)
			continue
		}
		taken[name] = d.decl

		f, ok := d.Member.(*Field)
		if !ok {
			continue
		}
		argTaken := make(map[string]string, len(f.Args))
		for _, a := range f.Args {
			if r, ok := reserved(a.key, a.Name); ok {
				report(d.decl, "%s.%s(%s:): name %q is reserved for introspection", c.name, name, a.key, r)
			}
			if first, dup := argTaken[a.Name]; dup {
				report(d.decl, "%s.%s: argument %q is declared by both %q and %q", c.name, name, a.Name, first, a.key)
				continue
			}
			argTaken[a.Name] = a.key
		}
	}
	return errs
}

// reserved returns the first of names that starts with the introspection
// prefix. Both the declaration name and the exposed one are checked, since
// camel casing turns "__x" into "_X".
func reserved(names ...string) (string, bool) {
	for _, n := range names {
		if strings.HasPrefix(n, types.IntrospectionPrefix) {
			return n, true
		}
	}
	return "", false
}

func (c *Container) mount(name string, d any) (Member, error) {
	switch v := d.(type) {
	case Mountable:
		return v.Mount(c)
	case *Field:
		if c.kind != KindObject && c.kind != KindInterface {
			return nil, newError(ErrConfiguration, "field %q cannot be declared in %s %q", name, c.kind, c.name).
				with("container", c.name)
		}
		return v, nil
	case *InputField:
		if c.kind != KindInputObject {
			return nil, newError(ErrConfiguration, "input field %q cannot be declared in %s %q", name, c.kind, c.name).
				with("container", c.name)
		}
		return v, nil
	default:
		return nil, newError(ErrConfiguration, "member %q of %q: unsupported declaration %T", name, c.name, d).
			with("container", c.name)
	}
}

// asError turns any error into an Error, keeping the code of wrapped ones.
func asError(err error) Error {
	if e, ok := err.(Error); ok {
		return e
	}
	return newError(ErrConfiguration, "%s", err.Error())
}

func sortErrors(errs Errors) {
	sort.SliceStable(errs, func(i, j int) bool {
		return errs[i].Message < errs[j].Message
	})
}
