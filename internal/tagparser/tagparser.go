package tagparser

import (
	"fmt"
	"strings"

	"github.com/llehouerou/go-graphql-schema/types"
)

// ParsedTag represents a parsed GraphQL member tag.
type ParsedTag struct {
	// FieldName is the GraphQL member name, empty when the tag only carries arguments.
	FieldName string
	// Arguments contains the content inside parentheses, if any.
	Arguments string
	// Skip is set for the "-" tag.
	Skip bool
}

// ArgumentSpec is one entry of a tag argument list: "first: Int".
type ArgumentSpec struct {
	Name string
	Type string
}

// ParseGraphQLTag parses a GraphQL struct tag value and returns structured information.
// Examples:
//   - "name" -> {FieldName: "name"}
//   - "friends(first: Int, after: String)" -> {FieldName: "friends", Arguments: "first: Int, after: String"}
//   - "-" -> {Skip: true}
func ParseGraphQLTag(tag string) (ParsedTag, error) {
	tag = strings.TrimSpace(tag)

	var parsed ParsedTag

	// Handle empty string
	if tag == "" {
		return parsed, nil
	}

	// Handle skip field
	if tag == types.SkipTag {
		parsed.Skip = true
		return parsed, nil
	}

	fieldPart := tag
	if parenIdx := strings.Index(tag, "("); parenIdx != -1 {
		closeIdx := strings.LastIndex(tag, ")")
		if closeIdx < parenIdx || strings.TrimSpace(tag[closeIdx+1:]) != "" {
			return parsed, fmt.Errorf("tag %q: unbalanced argument list", tag)
		}
		parsed.Arguments = strings.TrimSpace(tag[parenIdx+1 : closeIdx])
		fieldPart = tag[:parenIdx]
	}

	parsed.FieldName = strings.TrimSpace(fieldPart)
	if strings.ContainsAny(parsed.FieldName, " :,") {
		return parsed, fmt.Errorf("tag %q: invalid member name %q", tag, parsed.FieldName)
	}

	return parsed, nil
}

// ParseArguments splits an argument list such as "first: Int!, ids: [ID!]" into
// its entries, in declaration order.
func ParseArguments(s string) ([]ArgumentSpec, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}

	var specs []ArgumentSpec
	seen := make(map[string]struct{})
	for _, part := range strings.Split(s, ",") {
		name, typ, ok := strings.Cut(part, ":")
		if !ok {
			return nil, fmt.Errorf("argument %q: expected name: Type", strings.TrimSpace(part))
		}
		name, typ = strings.TrimSpace(name), strings.TrimSpace(typ)
		if name == "" || typ == "" {
			return nil, fmt.Errorf("argument %q: expected name: Type", strings.TrimSpace(part))
		}
		if _, dup := seen[name]; dup {
			return nil, fmt.Errorf("argument %q: declared twice", name)
		}
		seen[name] = struct{}{}
		specs = append(specs, ArgumentSpec{Name: name, Type: typ})
	}
	return specs, nil
}
