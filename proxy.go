package schema

// Keywords are the named values forwarded to a wrapper constructor.
type Keywords map[string]any

// HasResolvedType is implemented by anything that knows the concrete type it
// stands for.
type HasResolvedType interface {
	ResolvedType() (Type, error)
}

// Member is what a container holds once its declarations are mounted: a
// *Field or an *InputField.
type Member interface {
	MemberName() string
	CreationOrder() int64
}

// Mountable is a declaration that becomes a field, an input field or an
// argument depending on where it is used.
type Mountable interface {
	HasResolvedType
	CreationOrder() int64
	Mount(c *Container) (Member, error)
	AsArgument() (*Argument, error)
}

var _ Mountable = (*Proxy)(nil)

// Proxy is a bare type expression declared on a container, for example
//
//	person.Set("name", s.String(schema.Keywords{"description": "Name"}))
//
// instead of an explicit field. It remembers its constructor values and the
// order it was declared in; mounting turns it into a *Field, an *InputField
// or an *Argument that keeps that order.
type Proxy struct {
	Args     []any
	Keywords Keywords

	order int64
	typ   Type
}

// NewProxy stores args and kw as given and takes the proxy's creation order
// from seq. A nil t yields a proxy without type metadata; resolving it fails.
func NewProxy(seq *Sequence, t Type, args []any, kw Keywords) *Proxy {
	return &Proxy{
		Args:     args,
		Keywords: kw,
		order:    seq.Next(),
		typ:      t,
	}
}

// CreationOrder returns the order assigned at construction.
func (p *Proxy) CreationOrder() int64 {
	return p.order
}

// ResolvedType returns the type this proxy stands for.
func (p *Proxy) ResolvedType() (Type, error) {
	if p.typ == nil {
		return nil, newError(ErrConfiguration, "proxy #%d has no type", p.order)
	}
	return p.typ, nil
}

// AsField builds a field around the resolved type.
func (p *Proxy) AsField() (*Field, error) {
	t, err := p.ResolvedType()
	if err != nil {
		return nil, err
	}
	return NewField(t, p.order, p.Args, p.Keywords)
}

// AsInputField builds an input field around the resolved type.
func (p *Proxy) AsInputField() (*InputField, error) {
	t, err := p.ResolvedType()
	if err != nil {
		return nil, err
	}
	return NewInputField(t, p.order, p.Args, p.Keywords)
}

// AsArgument builds an argument around the resolved type. Unlike Mount it
// does not depend on any container.
func (p *Proxy) AsArgument() (*Argument, error) {
	t, err := p.ResolvedType()
	if err != nil {
		return nil, err
	}
	return NewArgument(t, p.order, p.Args, p.Keywords)
}

// Mount builds the wrapper c can hold: a field in an object or interface
// container, an input field in an input object container.
func (p *Proxy) Mount(c *Container) (Member, error) {
	t, err := p.ResolvedType()
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, newError(ErrConfiguration, "proxy %q cannot be mounted without a container", typeName(t)).
			with("type", typeName(t))
	}

	switch c.Kind() {
	case KindObject, KindInterface:
		f, err := p.AsField()
		if err != nil {
			return nil, err
		}
		return f, nil
	case KindInputObject:
		f, err := p.AsInputField()
		if err != nil {
			return nil, err
		}
		return f, nil
	default:
		return nil, mountError(t, c)
	}
}
