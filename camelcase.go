package schema

import (
	"strings"
	"unicode/utf8"
)

// ToCamelCase converts a snake_case declaration name to the camelCase
// GraphQL convention the way graphene does: every segment after the first
// is capitalized, and an empty segment stays an underscore, so
// "snakes_on_a__plane" becomes "snakesOnA_Plane" and "_id" becomes "Id".
func ToCamelCase(name string) string {
	parts := strings.Split(name, "_")
	var sb strings.Builder
	sb.WriteString(parts[0])
	for _, part := range parts[1:] {
		if part == "" {
			sb.WriteByte('_')
			continue
		}
		r, size := utf8.DecodeRuneInString(part)
		sb.WriteString(strings.ToUpper(string(r)))
		sb.WriteString(strings.ToLower(part[size:]))
	}
	return sb.String()
}
