package schema

import (
	"sync/atomic"

	"github.com/google/uuid"
)

// Sequence hands out strictly increasing creation orders. It is safe for
// concurrent use.
type Sequence struct {
	n atomic.Int64
}

// Next returns the next creation order.
func (s *Sequence) Next() int64 {
	return s.n.Add(1)
}

// Session is the scope of one schema-building run. It owns the sequence that
// orders every proxy and wrapper declared through it.
type Session struct {
	id  uuid.UUID
	seq *Sequence
}

// NewSession creates a session with a fresh sequence.
func NewSession() *Session {
	return &Session{
		id:  uuid.New(),
		seq: &Sequence{},
	}
}

// Identifier identifies the session in logs.
func (s *Session) Identifier() uuid.UUID {
	return s.id
}

// Sequence returns the session's creation-order sequence.
func (s *Session) Sequence() *Sequence {
	return s.seq
}

// Of declares a proxy for t. Keywords values among args are merged into the
// proxy keywords, every other value is kept as a positional value:
//
//	s.Of(schema.String, schema.Keywords{"description": "Name"})
func (s *Session) Of(t Type, args ...any) *Proxy {
	positional, kw := splitArgs(args)
	return NewProxy(s.seq, t, positional, kw)
}

func (s *Session) String(args ...any) *Proxy  { return s.Of(String, args...) }
func (s *Session) Int(args ...any) *Proxy     { return s.Of(Int, args...) }
func (s *Session) Float(args ...any) *Proxy   { return s.Of(Float, args...) }
func (s *Session) Boolean(args ...any) *Proxy { return s.Of(Boolean, args...) }
func (s *Session) ID(args ...any) *Proxy      { return s.Of(ID, args...) }
func (s *Session) UUID(args ...any) *Proxy    { return s.Of(UUIDScalar, args...) }

// List declares a proxy for a list of t.
func (s *Session) List(t Type, args ...any) *Proxy {
	return s.Of(List{OfType: t}, args...)
}

// NonNull declares a proxy for a non-null t.
func (s *Session) NonNull(t Type, args ...any) *Proxy {
	return s.Of(NonNull{OfType: t}, args...)
}

// Field declares a field directly, without going through a proxy.
func (s *Session) Field(t Type, args ...any) (*Field, error) {
	positional, kw := splitArgs(args)
	return NewField(t, s.seq.Next(), positional, kw)
}

// InputField declares an input field directly.
func (s *Session) InputField(t Type, args ...any) (*InputField, error) {
	positional, kw := splitArgs(args)
	return NewInputField(t, s.seq.Next(), positional, kw)
}

// Argument declares an argument directly.
func (s *Session) Argument(t Type, args ...any) (*Argument, error) {
	positional, kw := splitArgs(args)
	return NewArgument(t, s.seq.Next(), positional, kw)
}

func splitArgs(args []any) ([]any, Keywords) {
	var (
		positional []any
		kw         Keywords
	)
	for _, a := range args {
		k, ok := a.(Keywords)
		if !ok {
			positional = append(positional, a)
			continue
		}
		if kw == nil {
			kw = make(Keywords, len(k))
		}
		for name, v := range k {
			kw[name] = v
		}
	}
	return positional, kw
}
