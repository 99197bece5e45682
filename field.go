package schema

import (
	"sort"
)

// Arguments declares field arguments by name. Values are *Argument or
// Mountable declarations, the latter converted with AsArgument.
type Arguments map[string]any

// Field is a member of an object or interface type.
type Field struct {
	// Name overrides the name the field is declared under.
	Name              string
	Type              Type
	Description       string
	DeprecationReason string
	Args              []*Argument

	order int64
}

var (
	fieldSlots      = []string{paramArgs, paramDeprecationReason, paramName, paramDescription, paramRequired}
	inputFieldSlots = []string{paramName, paramDefaultValue, paramDescription, paramRequired}
	argumentSlots   = []string{paramDefaultValue, paramDescription, paramName, paramRequired}
)

// NewField creates a field of type t with the given creation order.
// Positional values fill args, deprecation_reason, name, description and
// required in that order. Keywords naming none of these declare extra
// arguments and must hold an *Argument or a Mountable.
func NewField(t Type, order int64, args []any, kw Keywords) (*Field, error) {
	if t == nil {
		return nil, newError(ErrInvalidArguments, "Field: type is required")
	}
	p, err := bindParams("Field", fieldSlots, args, kw)
	if err != nil {
		return nil, err
	}

	f := &Field{Type: t, order: order}
	if f.Name, err = p.string(paramName); err != nil {
		return nil, err
	}
	if f.Description, err = p.string(paramDescription); err != nil {
		return nil, err
	}
	if f.DeprecationReason, err = p.string(paramDeprecationReason); err != nil {
		return nil, err
	}
	req, err := p.bool(paramRequired)
	if err != nil {
		return nil, err
	}
	if req {
		f.Type = required(f.Type)
	}

	declared := Arguments{}
	if p.has(paramArgs) && p.value(paramArgs) != nil {
		as, ok := p.value(paramArgs).(Arguments)
		if !ok {
			return nil, newError(ErrInvalidArguments, "Field: args must be Arguments, got %T", p.value(paramArgs))
		}
		for name, a := range as {
			declared[name] = a
		}
	}
	for name, v := range p.extra {
		switch v.(type) {
		case *Argument, Mountable:
		default:
			return nil, newError(ErrInvalidArguments, "Field got unexpected keyword %q of type %T", name, v)
		}
		if _, dup := declared[name]; dup {
			return nil, newError(ErrInvalidArguments, "Field: argument %q declared twice", name)
		}
		declared[name] = v
	}

	if f.Args, err = buildArguments(declared); err != nil {
		return nil, err
	}
	return f, nil
}

// CreationOrder returns the declaration order of the field.
func (f *Field) CreationOrder() int64 { return f.order }

// MemberName returns the name the field is exposed under.
func (f *Field) MemberName() string { return f.Name }

// Argument returns the argument named name, or nil.
func (f *Field) Argument(name string) *Argument {
	for _, a := range f.Args {
		if a.Name == name {
			return a
		}
	}
	return nil
}

// buildArguments converts declared arguments and orders them by creation
// order, then name.
func buildArguments(declared Arguments) ([]*Argument, error) {
	if len(declared) == 0 {
		return nil, nil
	}
	out := make([]*Argument, 0, len(declared))
	seen := make(map[string]struct{}, len(declared))
	for key, v := range declared {
		var a *Argument
		switch d := v.(type) {
		case *Argument:
			a = d
		case Mountable:
			var err error
			if a, err = d.AsArgument(); err != nil {
				return nil, err
			}
		default:
			return nil, newError(ErrInvalidArguments, "argument %q: expected *Argument or a proxy, got %T", key, v)
		}
		if a == nil {
			return nil, newError(ErrInvalidArguments, "argument %q: nil", key)
		}
		named := *a
		named.key = key
		if named.Name == "" {
			named.Name = key
			named.implicit = true
		}
		if _, dup := seen[named.Name]; dup {
			return nil, newError(ErrInvalidArguments, "argument %q declared twice", named.Name)
		}
		seen[named.Name] = struct{}{}
		out = append(out, &named)
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].order != out[j].order {
			return out[i].order < out[j].order
		}
		return out[i].Name < out[j].Name
	})
	return out, nil
}

// InputField is a member of an input object type.
type InputField struct {
	// Name overrides the name the input field is declared under.
	Name         string
	Type         Type
	Description  string
	DefaultValue any

	order int64
}

// NewInputField creates an input field of type t with the given creation
// order. Positional values fill name, default_value, description and required.
func NewInputField(t Type, order int64, args []any, kw Keywords) (*InputField, error) {
	if t == nil {
		return nil, newError(ErrInvalidArguments, "InputField: type is required")
	}
	p, err := bindParams("InputField", inputFieldSlots, args, kw)
	if err != nil {
		return nil, err
	}
	if err := p.noExtra(); err != nil {
		return nil, err
	}

	f := &InputField{Type: t, order: order}
	if f.DefaultValue, err = p.literal(paramDefaultValue); err != nil {
		return nil, err
	}
	if f.Name, err = p.string(paramName); err != nil {
		return nil, err
	}
	if f.Description, err = p.string(paramDescription); err != nil {
		return nil, err
	}
	req, err := p.bool(paramRequired)
	if err != nil {
		return nil, err
	}
	if req {
		f.Type = required(f.Type)
	}
	return f, nil
}

// CreationOrder returns the declaration order of the input field.
func (f *InputField) CreationOrder() int64 { return f.order }

// MemberName returns the name the input field is exposed under.
func (f *InputField) MemberName() string { return f.Name }

// Argument is a named parameter of a field.
type Argument struct {
	// Name overrides the name the argument is declared under.
	Name         string
	Type         Type
	Description  string
	DefaultValue any

	order int64

	// key is the name the argument was declared under on its field; implicit
	// is set when Name was taken from it.
	key      string
	implicit bool
}

// NewArgument creates an argument of type t with the given creation order.
// Positional values fill default_value, description, name and required.
func NewArgument(t Type, order int64, args []any, kw Keywords) (*Argument, error) {
	if t == nil {
		return nil, newError(ErrInvalidArguments, "Argument: type is required")
	}
	p, err := bindParams("Argument", argumentSlots, args, kw)
	if err != nil {
		return nil, err
	}
	if err := p.noExtra(); err != nil {
		return nil, err
	}

	a := &Argument{Type: t, order: order}
	if a.DefaultValue, err = p.literal(paramDefaultValue); err != nil {
		return nil, err
	}
	if a.Name, err = p.string(paramName); err != nil {
		return nil, err
	}
	if a.Description, err = p.string(paramDescription); err != nil {
		return nil, err
	}
	req, err := p.bool(paramRequired)
	if err != nil {
		return nil, err
	}
	if req {
		a.Type = required(a.Type)
	}
	return a, nil
}

// CreationOrder returns the declaration order of the argument.
func (a *Argument) CreationOrder() int64 { return a.order }
