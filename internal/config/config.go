// Package config reads schema definitions from YAML files.
//
// A definition lists types in the order they are printed, and fields in the
// order they are declared:
//
//	scalars:
//	  - name: Date
//	    description: Calendar date
//	types:
//	  Person:
//	    kind: object
//	    fields:
//	      id: ID!
//	      first_name:
//	        type: String
//	        description: Given name
//	      friends:
//	        type: "[Person]"
//	        args:
//	          first: {type: Int, default: 10}
//	  Query:
//	    fields:
//	      me: Person
//	query: Query
package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"slices"

	"gopkg.in/yaml.v3"
)

// Definition is a schema described in YAML.
type Definition struct {
	AutoCamelCase *bool       `yaml:"auto_camel_case"`
	Scalars       []ScalarDef `yaml:"scalars"`
	Types         Types       `yaml:"types"`
	Query         string      `yaml:"query"`
	Mutation      string      `yaml:"mutation"`
	Subscription  string      `yaml:"subscription"`
}

// ScalarDef declares a custom scalar.
type ScalarDef struct {
	Name        string `yaml:"name"`
	Description string `yaml:"description"`
}

// TypeDef declares a container. Kind is object (the default), interface,
// input, or any other name, which registers a container nothing can be
// mounted in.
type TypeDef struct {
	Name        string   `yaml:"-"`
	Line        int      `yaml:"-"`
	Kind        string   `yaml:"kind"`
	Description string   `yaml:"description"`
	Implements  []string `yaml:"implements"`
	Fields      Fields   `yaml:"fields"`
}

// FieldDef declares a field, an input field or an argument. In YAML it is
// either a type expression or a mapping.
type FieldDef struct {
	Name              string `yaml:"-"`
	Line              int    `yaml:"-"`
	Type              string `yaml:"type"`
	Description       string `yaml:"description"`
	Required          bool   `yaml:"required"`
	Default           any    `yaml:"default"`
	DeprecationReason string `yaml:"deprecation_reason"`
	Args              Fields `yaml:"args"`
}

// Types keeps the order of the types mapping.
type Types []TypeDef

// UnmarshalYAML implements yaml.Unmarshaler.
func (t *Types) UnmarshalYAML(value *yaml.Node) error {
	return eachPair(value, "types", func(key, val *yaml.Node) error {
		def := TypeDef{Name: key.Value, Line: key.Line}
		if val.Kind != yaml.MappingNode {
			return fmt.Errorf("line %d: type %q: expected a mapping", val.Line, key.Value)
		}
		if err := decodeStrict(val, &def, typeKeys); err != nil {
			return fmt.Errorf("type %q: %w", key.Value, err)
		}
		*t = append(*t, def)
		return nil
	})
}

// Fields keeps the order of a fields or args mapping.
type Fields []FieldDef

// UnmarshalYAML implements yaml.Unmarshaler.
func (f *Fields) UnmarshalYAML(value *yaml.Node) error {
	return eachPair(value, "fields", func(key, val *yaml.Node) error {
		def := FieldDef{Name: key.Value, Line: key.Line}
		switch val.Kind {
		case yaml.ScalarNode:
			def.Type = val.Value
		case yaml.MappingNode:
			if err := decodeStrict(val, &def, fieldKeys); err != nil {
				return fmt.Errorf("field %q: %w", key.Value, err)
			}
		default:
			return fmt.Errorf("line %d: field %q: expected a type or a mapping", val.Line, key.Value)
		}
		if def.Type == "" {
			return fmt.Errorf("line %d: field %q: type is required", key.Line, key.Value)
		}
		*f = append(*f, def)
		return nil
	})
}

func eachPair(value *yaml.Node, what string, fn func(key, val *yaml.Node) error) error {
	if value.Kind != yaml.MappingNode {
		return fmt.Errorf("line %d: %s: expected a mapping", value.Line, what)
	}
	seen := make(map[string]int, len(value.Content)/2)
	for i := 0; i+1 < len(value.Content); i += 2 {
		key, val := value.Content[i], value.Content[i+1]
		if line, dup := seen[key.Value]; dup {
			return fmt.Errorf("line %d: %q already declared on line %d", key.Line, key.Value, line)
		}
		seen[key.Value] = key.Line
		if err := fn(key, val); err != nil {
			return err
		}
	}
	return nil
}

var (
	typeKeys  = []string{"kind", "description", "implements", "fields"}
	fieldKeys = []string{"type", "description", "required", "default", "deprecation_reason", "args"}
)

// decodeStrict decodes the mapping node into v after checking that it only
// uses known keys. Decoding the node itself keeps line numbers.
func decodeStrict(node *yaml.Node, v any, known []string) error {
	for i := 0; i+1 < len(node.Content); i += 2 {
		key := node.Content[i]
		if !slices.Contains(known, key.Value) {
			return fmt.Errorf("line %d: unknown key %q", key.Line, key.Value)
		}
	}
	return node.Decode(v)
}

// Load reads the definition at path.
func Load(path string) (*Definition, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read schema definition: %w", err)
	}
	defer f.Close()

	def, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return def, nil
}

// Parse decodes a definition, rejecting unknown keys.
func Parse(r io.Reader) (*Definition, error) {
	var def Definition
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&def); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, errors.New("empty schema definition")
		}
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}
	if len(def.Types) == 0 {
		return nil, errors.New("no types declared")
	}
	return &def, nil
}
