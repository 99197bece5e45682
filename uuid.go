package schema

import (
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
)

// UUID is the Go value of the UUID scalar. It can be used as a struct field
// type with ObjectOf and as a resolver argument or result with graphql-go.
type UUID struct {
	uuid.UUID
}

// NewUUID returns a random (version 4) UUID.
func NewUUID() UUID {
	return UUID{UUID: uuid.New()}
}

// GetGraphQLType names the scalar for struct-driven registration.
func (UUID) GetGraphQLType() string {
	return UUIDScalar.Name
}

// ImplementsGraphQLType maps this type to the UUID scalar for graphql-go.
func (UUID) ImplementsGraphQLType(name string) bool {
	return name == UUIDScalar.Name
}

// UnmarshalGraphQL decodes an input value of the UUID scalar.
func (u *UUID) UnmarshalGraphQL(input any) error {
	s, ok := input.(string)
	if !ok {
		return fmt.Errorf("UUID: wrong input type %T", input)
	}
	parsed, err := uuid.Parse(s)
	if err != nil {
		return fmt.Errorf("UUID: %w", err)
	}
	u.UUID = parsed
	return nil
}

// MarshalJSON encodes the UUID in its canonical string form.
func (u UUID) MarshalJSON() ([]byte, error) {
	return json.Marshal(u.String())
}
