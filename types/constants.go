package types

// Constants shared by the struct-tag driven container registration.
// Centralizing these prevents typos and makes refactoring safer.
const (
	// GraphQLTag is the struct tag name holding the GraphQL member name and,
	// optionally, its argument list: `graphql:"friends(first: Int)"`.
	GraphQLTag = "graphql"

	// DescriptionTag is the struct tag name holding a member description.
	DescriptionTag = "description"

	// DeprecatedTag is the struct tag name holding a deprecation reason.
	DeprecatedTag = "deprecated"

	// SkipTag is the GraphQLTag value that excludes a struct field.
	SkipTag = "-"

	// IntrospectionPrefix is reserved by GraphQL introspection and may not
	// start a type or member name.
	IntrospectionPrefix = "__"
)
