package schema

import (
	"io"
	"log/slog"
	"strings"

	"github.com/graph-gophers/graphql-go"

	"github.com/llehouerou/go-graphql-schema/types"
)

// Builder registers containers and scalars and assembles them into a Schema.
//
// # Mutable Pattern
//
// The Builder's With* methods modify the receiver and return it so calls can
// be chained:
//
//	b := schema.NewBuilder().WithLogger(logger).WithAutoCamelCase(false)
//
// A Builder is meant to be used by one goroutine; its Session may be shared.
type Builder struct {
	session       *Session
	logger        *slog.Logger
	autoCamelCase bool

	containers []*Container
	scalars    []*Scalar
	byName     map[string]NamedType

	query        *Container
	mutation     *Container
	subscription *Container

	errs Errors
}

// NewBuilder creates a builder with its own Session.
func NewBuilder() *Builder {
	return &Builder{
		session:       NewSession(),
		logger:        slog.New(slog.NewTextHandler(io.Discard, nil)),
		autoCamelCase: true,
		byName:        make(map[string]NamedType),
	}
}

// Session returns the session proxies for this builder are declared with.
func (b *Builder) Session() *Session {
	return b.session
}

// WithLogger sets the logger mounting is reported to.
func (b *Builder) WithLogger(logger *slog.Logger) *Builder {
	if logger != nil {
		b.logger = logger
	}
	return b
}

// WithAutoCamelCase turns the snake_case to camelCase conversion of
// declaration names on or off. It is on by default.
func (b *Builder) WithAutoCamelCase(on bool) *Builder {
	b.autoCamelCase = on
	return b
}

// Register adds a container declared with bases. Its kind is computed once,
// here. A container that cannot be registered is still returned so that
// declarations can go on; the problem is reported by Build.
func (b *Builder) Register(name string, bases []Base, opts ...ContainerOption) *Container {
	c := newContainer(name, bases, opts...)
	if err := b.add(c); err != nil {
		b.errs = append(b.errs, *err)
	}
	return c
}

func (b *Builder) add(c *Container) *Error {
	if err := b.claim(c.Name()); err != nil {
		return err
	}
	b.containers = append(b.containers, c)
	b.byName[c.Name()] = c
	return nil
}

// Object registers an object type.
func (b *Builder) Object(name string, opts ...ContainerOption) *Container {
	return b.Register(name, []Base{BaseObjectType}, opts...)
}

// Interface registers an interface.
func (b *Builder) Interface(name string, opts ...ContainerOption) *Container {
	return b.Register(name, []Base{BaseInterface}, opts...)
}

// InputObject registers an input object type.
func (b *Builder) InputObject(name string, opts ...ContainerOption) *Container {
	return b.Register(name, []Base{BaseInputObjectType}, opts...)
}

// Scalar registers a custom scalar.
func (b *Builder) Scalar(name, description string) *Scalar {
	s := &Scalar{Name: name, Desc: description}
	if name == UUIDScalar.Name {
		s = UUIDScalar
	}
	if err := b.claim(name); err != nil {
		b.errs = append(b.errs, *err)
		return s
	}
	b.scalars = append(b.scalars, s)
	b.byName[name] = s
	return s
}

// Query sets the query root type.
func (b *Builder) Query(c *Container) *Builder {
	b.query = c
	return b
}

// Mutation sets the mutation root type.
func (b *Builder) Mutation(c *Container) *Builder {
	b.mutation = c
	return b
}

// Subscription sets the subscription root type.
func (b *Builder) Subscription(c *Container) *Builder {
	b.subscription = c
	return b
}

// Lookup resolves a type name: built-in scalars, the UUID scalar, registered
// scalars and containers.
func (b *Builder) Lookup(name string) (Type, bool) {
	if s, ok := builtinScalar(name); ok {
		return s, true
	}
	if t, ok := b.byName[name]; ok {
		return t, true
	}
	if name == UUIDScalar.Name {
		return UUIDScalar, true
	}
	return nil, false
}

// TypeRef parses a type expression against the registered types.
func (b *Builder) TypeRef(expr string) (Type, error) {
	return ParseTypeRef(expr, b.Lookup)
}

// claim reserves name for a new named type.
func (b *Builder) claim(name string) *Error {
	var err Error
	switch {
	case name == "":
		err = newError(ErrConfiguration, "type name is required")
	case strings.HasPrefix(name, types.IntrospectionPrefix):
		err = newError(ErrConfiguration, "type name %q is reserved for introspection", name)
	default:
		if _, ok := builtinScalar(name); ok {
			err = newError(ErrConfiguration, "type %q is a built-in scalar", name)
			return &err
		}
		if _, taken := b.byName[name]; taken {
			err = newError(ErrConfiguration, "type %q is already defined", name)
			return &err
		}
		return nil
	}
	return &err
}

func (b *Builder) rename(name string) string {
	if b.autoCamelCase {
		return ToCamelCase(name)
	}
	return name
}

// Build mounts every container and assembles the schema. Every problem found
// is reported; the returned error is then an Errors value.
func (b *Builder) Build() (*Schema, error) {
	errs := append(Errors(nil), b.errs...)

	s := &Schema{
		members: make(map[string][]Member),
		byName:  make(map[string]NamedType),
	}

	if b.query == nil {
		errs = append(errs, newError(ErrConfiguration, "schema has no query type"))
	}
	roots := []struct {
		op   string
		root *Container
	}{
		{"query", b.query},
		{"mutation", b.mutation},
		{"subscription", b.subscription},
	}
	for _, r := range roots {
		op, root := r.op, r.root
		if root == nil {
			continue
		}
		if root.Kind() != KindObject {
			errs = append(errs, newError(ErrConfiguration, "%s root %q must be an object type, got %s", op, root.Name(), root.Kind()).
				with("container", root.Name()))
		} else if b.byName[root.Name()] != root {
			errs = append(errs, newError(ErrConfiguration, "%s root %q is not registered", op, root.Name()).
				with("container", root.Name()))
		}
	}
	if b.query != nil {
		s.query = b.query.Name()
	}
	if b.mutation != nil {
		s.mutation = b.mutation.Name()
	}
	if b.subscription != nil {
		s.subscription = b.subscription.Name()
	}

	log := b.logger.With(slog.String("session", b.session.Identifier().String()))

	var containers []*Container
	for _, c := range b.containers {
		if c.Kind() == KindOther {
			// Nothing can be mounted here; report every declaration.
			if len(c.declared) == 0 {
				log.Debug("skipping container", slog.String("container", c.Name()), slog.String("kind", c.Kind().String()))
				continue
			}
			_, merrs := c.members(b.rename)
			errs = append(errs, merrs...)
			continue
		}

		members, merrs := c.members(b.rename)
		errs = append(errs, merrs...)
		if len(merrs) > 0 {
			continue
		}
		if len(members) == 0 {
			errs = append(errs, newError(ErrSchemaValidation, "%s %q declares no fields", c.Kind(), c.Name()).
				with("container", c.Name()))
			continue
		}
		errs = append(errs, b.check(c, members)...)

		log.Debug("mounted container",
			slog.String("container", c.Name()),
			slog.String("kind", c.Kind().String()),
			slog.Int("members", len(members)),
		)
		s.members[c.Name()] = members
		containers = append(containers, c)
	}

	if len(errs) > 0 {
		log.Debug("schema build failed", slog.Int("errors", len(errs)))
		return nil, errs
	}

	for _, sc := range b.scalars {
		s.add(sc)
	}
	if _, registered := b.byName[UUIDScalar.Name]; !registered && s.references(UUIDScalar) {
		s.add(UUIDScalar)
	}
	for _, c := range containers {
		s.add(c)
	}

	s.sdl = printSchema(s)
	if _, err := graphql.ParseSchema(s.sdl, nil, graphql.UseStringDescriptions()); err != nil {
		return nil, Errors{newError(ErrSchemaValidation, "invalid schema: %v", err)}
	}

	log.Info("schema built", slog.Int("types", len(s.types)))
	return s, nil
}

// check validates the types members of c refer to.
func (b *Builder) check(c *Container, members []Member) Errors {
	var errs Errors
	for _, iface := range c.Interfaces() {
		if c.Kind() != KindObject {
			errs = append(errs, newError(ErrConfiguration, "%s %q cannot implement interfaces", c.Kind(), c.Name()).
				with("container", c.Name()))
			break
		}
		if iface.Kind() != KindInterface {
			errs = append(errs, newError(ErrConfiguration, "%q implements %q which is a %s", c.Name(), iface.Name(), iface.Kind()).
				with("container", c.Name()))
		}
		if b.byName[iface.Name()] != iface {
			errs = append(errs, newError(ErrConfiguration, "%q implements unregistered interface %q", c.Name(), iface.Name()).
				with("container", c.Name()))
		}
	}

	for _, m := range members {
		switch v := m.(type) {
		case *Field:
			if err := b.checkRef(c, v.Name, v.Type, false); err != nil {
				errs = append(errs, *err)
			}
			for _, a := range v.Args {
				if err := b.checkRef(c, v.Name+"("+a.Name+":)", a.Type, true); err != nil {
					errs = append(errs, *err)
				}
			}
		case *InputField:
			if err := b.checkRef(c, v.Name, v.Type, true); err != nil {
				errs = append(errs, *err)
			}
		}
	}
	return errs
}

// checkRef reports a member type that is not registered or not usable in
// its position.
func (b *Builder) checkRef(c *Container, member string, t Type, input bool) *Error {
	named := namedOf(t)
	name := typeName(named)
	known, ok := b.Lookup(name)
	if !ok || known != named {
		err := newError(ErrSchemaValidation, "%s.%s: type %q is not registered", c.Name(), member, name).
			with("container", c.Name())
		return &err
	}

	var valid bool
	switch n := named.(type) {
	case *Scalar:
		valid = true
	case *Container:
		if input {
			valid = n.Kind() == KindInputObject
		} else {
			valid = n.Kind() == KindObject || n.Kind() == KindInterface
		}
	}
	if !valid {
		position := "output"
		if input {
			position = "input"
		}
		err := newError(ErrSchemaValidation, "%s.%s: %q is not an %s type", c.Name(), member, name, position).
			with("container", c.Name())
		return &err
	}
	return nil
}
