package schema

import (
	"reflect"
	"sort"
	"strings"
)

// Parameter names understood by the wrapper constructors.
const (
	paramArgs              = "args"
	paramDeprecationReason = "deprecation_reason"
	paramName              = "name"
	paramDescription       = "description"
	paramRequired          = "required"
	paramDefaultValue      = "default_value"
)

// params binds positional values to named slots and merges keywords, the
// way a constructor with keyword parameters does.
type params struct {
	wrapper string
	values  map[string]any
	// extra holds keywords that name no slot.
	extra Keywords
}

func bindParams(wrapper string, slots []string, args []any, kw Keywords) (*params, error) {
	if len(args) > len(slots) {
		return nil, newError(
			ErrInvalidArguments,
			"%s takes at most %d positional values (%s), got %d",
			wrapper, len(slots), strings.Join(slots, ", "), len(args),
		)
	}

	p := &params{
		wrapper: wrapper,
		values:  make(map[string]any, len(slots)),
	}
	for i, v := range args {
		p.values[slots[i]] = v
	}

	known := make(map[string]struct{}, len(slots))
	for _, s := range slots {
		known[s] = struct{}{}
	}
	for name, v := range kw {
		if _, ok := known[name]; !ok {
			if p.extra == nil {
				p.extra = make(Keywords)
			}
			p.extra[name] = v
			continue
		}
		if _, dup := p.values[name]; dup {
			return nil, newError(ErrInvalidArguments, "%s got multiple values for %q", wrapper, name)
		}
		p.values[name] = v
	}
	return p, nil
}

// noExtra fails on keywords that name no slot.
func (p *params) noExtra() error {
	if len(p.extra) == 0 {
		return nil
	}
	names := make([]string, 0, len(p.extra))
	for name := range p.extra {
		names = append(names, name)
	}
	sort.Strings(names)
	return newError(ErrInvalidArguments, "%s got unexpected keywords: %s", p.wrapper, strings.Join(names, ", "))
}

func (p *params) has(name string) bool {
	_, ok := p.values[name]
	return ok
}

func (p *params) value(name string) any {
	return p.values[name]
}

func (p *params) string(name string) (string, error) {
	v, ok := p.values[name]
	if !ok || v == nil {
		return "", nil
	}
	s, ok := v.(string)
	if !ok {
		return "", newError(ErrInvalidArguments, "%s: %s must be a string, got %T", p.wrapper, name, v)
	}
	return s, nil
}

func (p *params) bool(name string) (bool, error) {
	v, ok := p.values[name]
	if !ok || v == nil {
		return false, nil
	}
	b, ok := v.(bool)
	if !ok {
		return false, newError(ErrInvalidArguments, "%s: %s must be a bool, got %T", p.wrapper, name, v)
	}
	return b, nil
}

// literal returns a value that is printed as a GraphQL literal, such as a
// default value. NaN and infinities have no literal form.
func (p *params) literal(name string) (any, error) {
	v := p.values[name]
	if f, bad := nonFinite(reflect.ValueOf(v)); bad {
		return nil, newError(ErrInvalidArguments, "%s: %s must be finite, got %v", p.wrapper, name, f)
	}
	return v, nil
}
