package types

import "reflect"

// GraphQLType is implemented by anything that names a GraphQL type.
// Schema types implement it, and so can Go types used as struct fields or
// default values to provide a custom GraphQL type name.
type GraphQLType interface {
	GetGraphQLType() string
}

// GraphqlTypeInterface is the reflect.Type of GraphQLType.
var GraphqlTypeInterface = reflect.TypeOf((*GraphQLType)(nil)).Elem()
