package schema

import (
	"errors"
	"fmt"
	"strings"
)

const (
	ErrConfiguration    = "configuration_error"
	ErrInvalidArguments = "invalid_arguments"
	ErrSchemaValidation = "schema_validation_error"
)

// Errors collects every error met while building a schema.
// If returned via error interface, the slice is expected to contain at least 1 element.
type Errors []Error

// Error is a schema building error. The error code is stored in the
// extensions under "code", together with any context the error carries.
type Error struct {
	Message    string         `json:"message"`
	Extensions map[string]any `json:"extensions"`
}

// Error implements error interface.
func (e Error) Error() string {
	return e.Message
}

// Error implements error interface.
func (e Errors) Error() string {
	b := strings.Builder{}
	for i, err := range e {
		if i > 0 {
			b.WriteString("; ")
		}
		b.WriteString(err.Error())
	}
	return b.String()
}

// Unwrap exposes the individual errors to errors.Is and errors.As.
func (e Errors) Unwrap() []error {
	errs := make([]error, len(e))
	for i, err := range e {
		errs[i] = err
	}
	return errs
}

// GetCode returns the error code from the extensions, or an empty string if
// not present.
func (e Error) GetCode() string {
	if e.Extensions == nil {
		return ""
	}
	code, ok := e.Extensions["code"].(string)
	if !ok {
		return ""
	}
	return code
}

// newError creates a new Error with the given code and message.
func newError(code string, format string, args ...any) Error {
	return Error{
		Message: fmt.Sprintf(format, args...),
		Extensions: map[string]any{
			"code": code,
		},
	}
}

// with returns a copy of e carrying an extra extension value.
func (e Error) with(key string, value any) Error {
	ext := make(map[string]any, len(e.Extensions)+1)
	for k, v := range e.Extensions {
		ext[k] = v
	}
	ext[key] = value
	e.Extensions = ext
	return e
}

// mountError reports a proxy declared in a container that can hold neither
// fields nor input fields.
func mountError(t Type, c *Container) Error {
	return newError(
		ErrConfiguration,
		"proxy %q cannot be mounted in %s %q",
		typeName(t), c.Kind(), c.Name(),
	).with("type", typeName(t)).with("container", c.Name())
}

// IsConfigurationError reports whether err, or any error it wraps, is a
// schema authoring mistake.
func IsConfigurationError(err error) bool {
	return hasCode(err, ErrConfiguration)
}

// IsInvalidArguments reports whether err, or any error it wraps, was raised by
// a wrapper rejecting its forwarded arguments.
func IsInvalidArguments(err error) bool {
	return hasCode(err, ErrInvalidArguments)
}

func hasCode(err error, code string) bool {
	var e Error
	if errors.As(err, &e) && e.GetCode() == code {
		return true
	}
	var es Errors
	if errors.As(err, &es) {
		for _, e := range es {
			if e.GetCode() == code {
				return true
			}
		}
	}
	return false
}
