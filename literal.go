package schema

import (
	"fmt"
	"math"
	"reflect"
	"sort"
	"strconv"
	"strings"

	"github.com/llehouerou/go-graphql-schema/internal/reflectutil"
)

// RawLiteral is printed as is in default values, for enum values:
//
//	schema.Keywords{"default_value": schema.RawLiteral("ASC")}
type RawLiteral string

// Literal renders v as a GraphQL value literal. Pointers are followed, nil is
// null, fmt.Stringer values are strings, slices are lists and maps with
// string keys are objects with sorted keys.
func Literal(v any) string {
	var sb strings.Builder
	writeLiteral(&sb, reflect.ValueOf(v))
	return sb.String()
}

var stringerType = reflect.TypeOf((*fmt.Stringer)(nil)).Elem()

func writeLiteral(sb *strings.Builder, v reflect.Value) {
	v, ok := reflectutil.Indirect(v)
	if !ok {
		sb.WriteString("null")
		return
	}

	if raw, ok := v.Interface().(RawLiteral); ok {
		sb.WriteString(string(raw))
		return
	}
	if v.Kind() != reflect.String && v.Type().Implements(stringerType) {
		sb.WriteString(quote(v.Interface().(fmt.Stringer).String()))
		return
	}

	switch {
	case v.Kind() == reflect.String:
		sb.WriteString(quote(v.String()))
	case v.Kind() == reflect.Bool:
		sb.WriteString(strconv.FormatBool(v.Bool()))
	case reflectutil.IsIntegerKind(v.Kind()) && v.CanInt():
		sb.WriteString(strconv.FormatInt(v.Int(), 10))
	case reflectutil.IsIntegerKind(v.Kind()):
		sb.WriteString(strconv.FormatUint(v.Uint(), 10))
	case v.Kind() == reflect.Float32 || v.Kind() == reflect.Float64:
		s := strconv.FormatFloat(v.Float(), 'g', -1, 64)
		if !strings.ContainsAny(s, ".eEn") {
			s += ".0"
		}
		sb.WriteString(s)
	case v.Kind() == reflect.Slice || v.Kind() == reflect.Array:
		sb.WriteString("[")
		for i := 0; i < v.Len(); i++ {
			if i > 0 {
				sb.WriteString(", ")
			}
			writeLiteral(sb, v.Index(i))
		}
		sb.WriteString("]")
	case v.Kind() == reflect.Map && v.Type().Key().Kind() == reflect.String:
		keys := v.MapKeys()
		sort.Slice(keys, func(i, j int) bool { return keys[i].String() < keys[j].String() })
		sb.WriteString("{")
		for i, k := range keys {
			if i > 0 {
				sb.WriteString(", ")
			}
			sb.WriteString(k.String())
			sb.WriteString(": ")
			writeLiteral(sb, v.MapIndex(k))
		}
		sb.WriteString("}")
	default:
		sb.WriteString(quote(fmt.Sprint(v.Interface())))
	}
}

// nonFinite returns the first NaN or infinite float in v, looking through
// pointers, lists and map values the way writeLiteral does.
func nonFinite(v reflect.Value) (float64, bool) {
	v, ok := reflectutil.Indirect(v)
	if !ok {
		return 0, false
	}
	if _, raw := v.Interface().(RawLiteral); raw {
		return 0, false
	}
	if v.Kind() != reflect.String && v.Type().Implements(stringerType) {
		return 0, false
	}

	switch v.Kind() {
	case reflect.Float32, reflect.Float64:
		f := v.Float()
		return f, math.IsNaN(f) || math.IsInf(f, 0)
	case reflect.Slice, reflect.Array:
		for i := 0; i < v.Len(); i++ {
			if f, bad := nonFinite(v.Index(i)); bad {
				return f, true
			}
		}
	case reflect.Map:
		iter := v.MapRange()
		for iter.Next() {
			if f, bad := nonFinite(iter.Value()); bad {
				return f, true
			}
		}
	}
	return 0, false
}

// quote renders s as a GraphQL string value.
func quote(s string) string {
	var sb strings.Builder
	sb.WriteByte('"')
	for _, r := range s {
		switch r {
		case '"':
			sb.WriteString(`\"`)
		case '\\':
			sb.WriteString(`\\`)
		case '\n':
			sb.WriteString(`\n`)
		case '\r':
			sb.WriteString(`\r`)
		case '\t':
			sb.WriteString(`\t`)
		default:
			if r < 0x20 {
				fmt.Fprintf(&sb, `\u%04x`, r)
				continue
			}
			sb.WriteRune(r)
		}
	}
	sb.WriteByte('"')
	return sb.String()
}
