package config

import (
	"errors"
	"fmt"
	"log/slog"

	schema "github.com/llehouerou/go-graphql-schema"
)

// Conventional root type names, used when the definition names none.
const (
	defaultQuery        = "Query"
	defaultMutation     = "Mutation"
	defaultSubscription = "Subscription"
)

// Build declares d on a new builder logging to logger and builds the schema.
func (d *Definition) Build(logger *slog.Logger) (*schema.Schema, error) {
	b := schema.NewBuilder().WithLogger(logger)
	if err := d.Apply(b); err != nil {
		return nil, err
	}
	return b.Build()
}

// Apply declares every scalar, type and field of d on b. Types are
// registered in file order before any field is declared, so fields may refer
// to types declared further down. Interfaces must come before the types
// implementing them.
func (d *Definition) Apply(b *schema.Builder) error {
	if d.AutoCamelCase != nil {
		b.WithAutoCamelCase(*d.AutoCamelCase)
	}

	for i, sc := range d.Scalars {
		if sc.Name == "" {
			return fmt.Errorf("scalars[%d]: name is required", i)
		}
		b.Scalar(sc.Name, sc.Description)
	}

	containers := make(map[string]*schema.Container, len(d.Types))
	for _, t := range d.Types {
		var opts []schema.ContainerOption
		if t.Description != "" {
			opts = append(opts, schema.Description(t.Description))
		}
		if len(t.Implements) > 0 {
			ifaces := make([]*schema.Container, 0, len(t.Implements))
			for _, name := range t.Implements {
				iface, ok := containers[name]
				if !ok {
					return fmt.Errorf("line %d: type %q implements %q, which must be declared before it", t.Line, t.Name, name)
				}
				ifaces = append(ifaces, iface)
			}
			opts = append(opts, schema.Implements(ifaces...))
		}
		containers[t.Name] = b.Register(t.Name, []schema.Base{baseOf(t.Kind)}, opts...)
	}

	for _, t := range d.Types {
		c := containers[t.Name]
		for _, f := range t.Fields {
			p, err := declare(b, f)
			if err != nil {
				return fmt.Errorf("line %d: %s.%s: %w", f.Line, t.Name, f.Name, err)
			}
			c.Set(f.Name, p)
		}
	}

	roots := []struct {
		name, fallback string
		set            func(*schema.Container) *schema.Builder
	}{
		{d.Query, defaultQuery, b.Query},
		{d.Mutation, defaultMutation, b.Mutation},
		{d.Subscription, defaultSubscription, b.Subscription},
	}
	for _, r := range roots {
		if r.name == "" {
			if c, ok := containers[r.fallback]; ok {
				r.set(c)
			}
			continue
		}
		c, ok := containers[r.name]
		if !ok {
			return fmt.Errorf("root type %q is not declared", r.name)
		}
		r.set(c)
	}
	return nil
}

func baseOf(kind string) schema.Base {
	switch kind {
	case "", "object":
		return schema.BaseObjectType
	case "interface":
		return schema.BaseInterface
	case "input":
		return schema.BaseInputObjectType
	default:
		return schema.Base(kind)
	}
}

// declare turns f into a proxy; its arguments become argument proxies.
func declare(b *schema.Builder, f FieldDef) (*schema.Proxy, error) {
	t, err := b.TypeRef(f.Type)
	if err != nil {
		return nil, err
	}

	kw := schema.Keywords{}
	if f.Description != "" {
		kw["description"] = f.Description
	}
	if f.Required {
		kw["required"] = true
	}
	if f.Default != nil {
		kw["default_value"] = f.Default
	}
	if f.DeprecationReason != "" {
		kw["deprecation_reason"] = f.DeprecationReason
	}

	if len(f.Args) > 0 {
		args := schema.Arguments{}
		for _, a := range f.Args {
			if len(a.Args) > 0 {
				return nil, errors.New("arguments cannot declare arguments")
			}
			p, err := declare(b, a)
			if err != nil {
				return nil, fmt.Errorf("argument %q: %w", a.Name, err)
			}
			args[a.Name] = p
		}
		kw["args"] = args
	}

	return b.Session().Of(t, kw), nil
}
