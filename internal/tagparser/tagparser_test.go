package tagparser

import (
	"reflect"
	"testing"
)

func TestParseGraphQLTag(t *testing.T) {
	tests := []struct {
		name    string
		tag     string
		want    ParsedTag
		wantErr bool
	}{
		{
			name: "simple field name",
			tag:  "name",
			want: ParsedTag{FieldName: "name"},
		},
		{
			name: "surrounding whitespace",
			tag:  "  name  ",
			want: ParsedTag{FieldName: "name"},
		},
		{
			name: "empty tag",
			tag:  "",
			want: ParsedTag{},
		},
		{
			name: "skip",
			tag:  "-",
			want: ParsedTag{Skip: true},
		},
		{
			name: "field with arguments",
			tag:  "friends(first: Int, after: String)",
			want: ParsedTag{FieldName: "friends", Arguments: "first: Int, after: String"},
		},
		{
			name: "arguments only",
			tag:  "(first: Int)",
			want: ParsedTag{Arguments: "first: Int"},
		},
		{
			name: "empty argument list",
			tag:  "friends()",
			want: ParsedTag{FieldName: "friends"},
		},
		{
			name:    "unbalanced parentheses",
			tag:     "friends(first: Int",
			wantErr: true,
		},
		{
			name:    "trailing text after arguments",
			tag:     "friends(first: Int) extra",
			wantErr: true,
		},
		{
			name:    "alias is not a declaration",
			tag:     "node1: node",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseGraphQLTag(tt.tag)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseGraphQLTag(%q) error = %v, wantErr %v", tt.tag, err, tt.wantErr)
			}
			if tt.wantErr {
				return
			}
			if got != tt.want {
				t.Errorf("ParseGraphQLTag(%q) = %+v, want %+v", tt.tag, got, tt.want)
			}
		})
	}
}

func TestParseArguments(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    []ArgumentSpec
		wantErr bool
	}{
		{
			name:  "empty",
			input: "",
			want:  nil,
		},
		{
			name:  "single",
			input: "first: Int",
			want:  []ArgumentSpec{{Name: "first", Type: "Int"}},
		},
		{
			name:  "keeps declaration order",
			input: "first: Int!, ids: [ID!], after: String",
			want: []ArgumentSpec{
				{Name: "first", Type: "Int!"},
				{Name: "ids", Type: "[ID!]"},
				{Name: "after", Type: "String"},
			},
		},
		{
			name:    "missing type",
			input:   "first",
			wantErr: true,
		},
		{
			name:    "empty name",
			input:   ": Int",
			wantErr: true,
		},
		{
			name:    "duplicate",
			input:   "first: Int, first: String",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseArguments(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseArguments(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("ParseArguments(%q) = %+v, want %+v", tt.input, got, tt.want)
			}
		})
	}
}
