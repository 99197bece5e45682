package schema

import (
	"io"
	"strings"
)

// printSchema renders s in the GraphQL schema definition language.
func printSchema(s *Schema) string {
	var sb strings.Builder

	_, _ = io.WriteString(&sb, "schema {\n")
	writeRoot(&sb, "query", s.query)
	writeRoot(&sb, "mutation", s.mutation)
	writeRoot(&sb, "subscription", s.subscription)
	_, _ = io.WriteString(&sb, "}\n")

	for _, t := range s.types {
		_, _ = io.WriteString(&sb, "\n")
		writeDescription(&sb, "", t.Description())
		switch v := t.(type) {
		case *Scalar:
			_, _ = io.WriteString(&sb, "scalar ")
			_, _ = io.WriteString(&sb, v.Name)
			_, _ = io.WriteString(&sb, "\n")
		case *Container:
			writeContainer(&sb, v, s.members[v.Name()])
		}
	}

	return sb.String()
}

func writeRoot(w io.Writer, op, name string) {
	if name == "" {
		return
	}
	_, _ = io.WriteString(w, "\t")
	_, _ = io.WriteString(w, op)
	_, _ = io.WriteString(w, ": ")
	_, _ = io.WriteString(w, name)
	_, _ = io.WriteString(w, "\n")
}

func writeContainer(w io.Writer, c *Container, members []Member) {
	switch c.Kind() {
	case KindInterface:
		_, _ = io.WriteString(w, "interface ")
	case KindInputObject:
		_, _ = io.WriteString(w, "input ")
	default:
		_, _ = io.WriteString(w, "type ")
	}
	_, _ = io.WriteString(w, c.Name())

	for i, iface := range c.Interfaces() {
		if i == 0 {
			_, _ = io.WriteString(w, " implements ")
		} else {
			_, _ = io.WriteString(w, " & ")
		}
		_, _ = io.WriteString(w, iface.Name())
	}
	_, _ = io.WriteString(w, " {\n")

	for _, m := range members {
		switch v := m.(type) {
		case *Field:
			writeField(w, v)
		case *InputField:
			writeDescription(w, "\t", v.Description)
			_, _ = io.WriteString(w, "\t")
			writeInputValue(w, v.Name, v.Type, v.DefaultValue)
			_, _ = io.WriteString(w, "\n")
		}
	}
	_, _ = io.WriteString(w, "}\n")
}

func writeField(w io.Writer, f *Field) {
	writeDescription(w, "\t", f.Description)
	_, _ = io.WriteString(w, "\t")
	_, _ = io.WriteString(w, f.Name)

	if len(f.Args) > 0 {
		multiline := false
		for _, a := range f.Args {
			if a.Description != "" {
				multiline = true
				break
			}
		}

		_, _ = io.WriteString(w, "(")
		for i, a := range f.Args {
			if multiline {
				_, _ = io.WriteString(w, "\n")
				writeDescription(w, "\t\t", a.Description)
				_, _ = io.WriteString(w, "\t\t")
			} else if i > 0 {
				_, _ = io.WriteString(w, ", ")
			}
			writeInputValue(w, a.Name, a.Type, a.DefaultValue)
		}
		if multiline {
			_, _ = io.WriteString(w, "\n\t")
		}
		_, _ = io.WriteString(w, ")")
	}

	_, _ = io.WriteString(w, ": ")
	_, _ = io.WriteString(w, f.Type.GetGraphQLType())

	if f.DeprecationReason != "" {
		_, _ = io.WriteString(w, " @deprecated(reason: ")
		_, _ = io.WriteString(w, quote(f.DeprecationReason))
		_, _ = io.WriteString(w, ")")
	}
	_, _ = io.WriteString(w, "\n")
}

// writeInputValue writes "name: Type" and, if set, " = default".
func writeInputValue(w io.Writer, name string, t Type, def any) {
	_, _ = io.WriteString(w, name)
	_, _ = io.WriteString(w, ": ")
	_, _ = io.WriteString(w, t.GetGraphQLType())
	if def != nil {
		_, _ = io.WriteString(w, " = ")
		_, _ = io.WriteString(w, Literal(def))
	}
}

func writeDescription(w io.Writer, indent, desc string) {
	if desc == "" {
		return
	}
	_, _ = io.WriteString(w, indent)
	_, _ = io.WriteString(w, quote(desc))
	_, _ = io.WriteString(w, "\n")
}
