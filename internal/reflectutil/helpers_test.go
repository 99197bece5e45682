package reflectutil

import (
	"reflect"
	"testing"
)

func TestIsIntegerKind(t *testing.T) {
	tests := []struct {
		name     string
		kind     reflect.Kind
		expected bool
	}{
		// Integer types (should return true)
		{"Int", reflect.Int, true},
		{"Int8", reflect.Int8, true},
		{"Int16", reflect.Int16, true},
		{"Int32", reflect.Int32, true},
		{"Int64", reflect.Int64, true},
		{"Uint", reflect.Uint, true},
		{"Uint8", reflect.Uint8, true},
		{"Uint16", reflect.Uint16, true},
		{"Uint32", reflect.Uint32, true},
		{"Uint64", reflect.Uint64, true},

		// Non-integer types (should return false)
		{"Uintptr", reflect.Uintptr, false},
		{"Float32", reflect.Float32, false},
		{"Float64", reflect.Float64, false},
		{"Bool", reflect.Bool, false},
		{"String", reflect.String, false},
		{"Slice", reflect.Slice, false},
		{"Struct", reflect.Struct, false},
		{"Ptr", reflect.Ptr, false},
		{"Invalid", reflect.Invalid, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := IsIntegerKind(tt.kind)
			if result != tt.expected {
				t.Errorf(
					"IsIntegerKind(%v) = %v, expected %v",
					tt.kind,
					result,
					tt.expected,
				)
			}
		})
	}
}

func TestIndirect(t *testing.T) {
	n := 42
	p := &n
	var nilPtr *int
	var nilMap map[string]int
	var iface any = p

	tests := []struct {
		name      string
		value     reflect.Value
		wantOk    bool
		wantValue any
	}{
		{"plain int", reflect.ValueOf(7), true, 7},
		{"zero int", reflect.ValueOf(0), true, 0},
		{"empty string", reflect.ValueOf(""), true, ""},
		{"pointer", reflect.ValueOf(p), true, 42},
		{"double pointer", reflect.ValueOf(&p), true, 42},
		{"interface holding pointer", reflect.ValueOf(&iface).Elem(), true, 42},
		{"nil pointer", reflect.ValueOf(nilPtr), false, nil},
		{"pointer to nil pointer", reflect.ValueOf(&nilPtr), false, nil},
		{"nil map", reflect.ValueOf(nilMap), false, nil},
		{"invalid", reflect.Value{}, false, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Indirect(tt.value)
			if ok != tt.wantOk {
				t.Fatalf("Indirect() ok = %v, want %v", ok, tt.wantOk)
			}
			if tt.wantOk && got.Interface() != tt.wantValue {
				t.Errorf("Indirect() = %v, want %v", got.Interface(), tt.wantValue)
			}
		})
	}

	t.Run("empty slice is not nil", func(t *testing.T) {
		if _, ok := Indirect(reflect.ValueOf([]int{})); !ok {
			t.Error("Indirect([]int{}) ok = false, want true")
		}
	})
}
