package reflectutil

import (
	"reflect"
	"strings"

	"github.com/llehouerou/go-graphql-schema/types"
)

// ImplementsGraphQLType reports whether the given type implements the GraphQLType interface.
// This checks if the type provides a custom GraphQL type name via GetGraphQLType().
func ImplementsGraphQLType(t reflect.Type) bool {
	return t.Implements(types.GraphqlTypeInterface)
}

// GetGraphQLTypeFromType extracts the GraphQL type name from a type (not value).
// This creates a zero value or pointer to call GetGraphQLType().
// Pointer receivers are honoured for both T and *T.
func GetGraphQLTypeFromType(t reflect.Type) (string, bool) {
	if !ImplementsGraphQLType(t) {
		if t.Kind() != reflect.Ptr && ImplementsGraphQLType(reflect.PointerTo(t)) {
			return GetGraphQLTypeFromType(reflect.PointerTo(t))
		}
		return "", false
	}

	var graphqlType types.GraphQLType
	var ok bool

	if t.Kind() == reflect.Ptr {
		graphqlType, ok = reflect.New(t.Elem()).Interface().(types.GraphQLType)
	} else {
		graphqlType, ok = reflect.Zero(t).Interface().(types.GraphQLType)
	}

	if !ok {
		return "", false
	}

	return graphqlType.GetGraphQLType(), true
}

// TypeExpression returns the GraphQL type expression for a Go type, for example
// "[Int!]!" for []int. Values are required types, pointers optional ones.
// Named struct types map to their Go name; the caller resolves the name.
func TypeExpression(t reflect.Type) string {
	var sb strings.Builder
	writeTypeExpression(&sb, t, true)
	return sb.String()
}

func writeTypeExpression(sb *strings.Builder, t reflect.Type, value bool) {
	if name, ok := GetGraphQLTypeFromType(t); ok {
		sb.WriteString(name)
		if value && t.Kind() != reflect.Ptr {
			sb.WriteString("!")
		}
		return
	}

	if t.Kind() == reflect.Ptr {
		// Pointer is an optional type, so no "!" at the end of the pointer's underlying type.
		writeTypeExpression(sb, t.Elem(), false)
		return
	}

	switch {
	case t.Kind() == reflect.Slice || t.Kind() == reflect.Array:
		sb.WriteString("[")
		writeTypeExpression(sb, t.Elem(), true)
		sb.WriteString("]")
	case IsIntegerKind(t.Kind()):
		sb.WriteString("Int")
	case t.Kind() == reflect.Float32 || t.Kind() == reflect.Float64:
		sb.WriteString("Float")
	case t.Kind() == reflect.Bool:
		sb.WriteString("Boolean")
	case t.Kind() == reflect.String && t.Name() == "string":
		sb.WriteString("String")
	default:
		sb.WriteString(t.Name())
	}

	if value {
		sb.WriteString("!")
	}
}
